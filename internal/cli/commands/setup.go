// Package commands implements the raql subcommands.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/raql-dev/raql/internal/cli/config"
	"github.com/raql-dev/raql/internal/cli/output"
	"github.com/raql-dev/raql/internal/engine"
	"github.com/raql-dev/raql/pkg/schema"
)

// Context keys for values shared between the root command and
// subcommands.
type (
	configKey   struct{}
	rendererKey struct{}
	loggerKey   struct{}
)

// WithConfig stores the config in the context.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// GetConfig retrieves the config from the context, falling back to
// defaults when none was stored.
func GetConfig(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return &config.Config{
		Grammar:      config.DefaultGrammar,
		Semantics:    config.DefaultSemantics,
		OutputFormat: config.DefaultOutput,
	}
}

// WithRenderer stores the renderer in the context.
func WithRenderer(ctx context.Context, r *output.Renderer) context.Context {
	return context.WithValue(ctx, rendererKey{}, r)
}

// GetRenderer retrieves the renderer from the context.
func GetRenderer(ctx context.Context) *output.Renderer {
	if r, ok := ctx.Value(rendererKey{}).(*output.Renderer); ok {
		return r
	}
	return output.NewRenderer(os.Stdout, os.Stderr, output.ModeText)
}

// WithLogger stores the logger in the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// newEngine creates an engine from the configuration.
func newEngine(ctx context.Context) (*engine.Engine, error) {
	cfg := GetConfig(ctx)
	return engine.New(engine.Config{
		Grammar:   cfg.Grammar,
		Semantics: cfg.Semantics,
		Logger:    GetLogger(ctx),
	})
}

// loadSchema loads the configured schema file, or an empty schema when
// none is configured. Each call returns an independent copy so that
// assignment statements in one input cannot leak into another.
func loadSchema(cfg *config.Config) (*schema.Schema, error) {
	if cfg.SchemaPath == "" {
		return schema.New(), nil
	}
	s, err := engine.LoadSchemaFile(cfg.SchemaPath)
	if err != nil {
		return nil, err
	}
	return s, nil
}
