package config

import (
	"fmt"

	"github.com/raql-dev/raql/pkg/sqlgen"
	"github.com/raql-dev/raql/pkg/syntax"
)

// Validate checks the loaded configuration for values the compiler
// cannot work with.
func Validate(cfg *Config) error {
	if _, ok := syntax.Get(cfg.Grammar); !ok {
		return fmt.Errorf("invalid grammar %q (available: %v)", cfg.Grammar, syntax.List())
	}
	if _, ok := sqlgen.ParseSemantics(cfg.Semantics); !ok {
		return fmt.Errorf("invalid semantics %q (want bag or set)", cfg.Semantics)
	}
	switch cfg.OutputFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid output format %q (want text or json)", cfg.OutputFormat)
	}
	return nil
}
