package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/raql-dev/raql/internal/engine"
	"github.com/raql-dev/raql/pkg/schema"
)

// translateFunc compiles one source text against a schema.
type translateFunc func(e *engine.Engine, input string, s *schema.Schema) ([]string, error)

// sourceResult holds the translated statements of one input source.
type sourceResult struct {
	source string
	stmts  []string
}

// compileSources translates the given input files, or stdin when no
// files are named, and renders the results. Files compile concurrently
// but results keep argument order. Each file starts from a fresh copy
// of the configured schema, so assignments in one file do not affect
// another.
func compileSources(cmd *cobra.Command, args []string, key string, translate translateFunc) error {
	ctx := cmd.Context()
	cfg := GetConfig(ctx)
	renderer := GetRenderer(ctx)
	logger := GetLogger(ctx)

	eng, err := newEngine(ctx)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		input, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		s, err := loadSchema(cfg)
		if err != nil {
			return err
		}
		stmts, err := translate(eng, string(input), s)
		if err != nil {
			return err
		}
		return renderer.Statements("", key, stmts)
	}

	results := make([]sourceResult, len(args))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range args {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			s, err := loadSchema(cfg)
			if err != nil {
				return err
			}
			stmts, err := translate(eng, string(data), s)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = sourceResult{source: path, stmts: stmts}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Debug("compiled sources", "files", len(args))

	for _, res := range results {
		source := res.source
		if len(args) == 1 {
			source = ""
		}
		if err := renderer.Statements(source, key, res.stmts); err != nil {
			return err
		}
	}
	return nil
}
