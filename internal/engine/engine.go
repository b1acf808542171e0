// Package engine wires the compiler pipeline behind one facade: parse,
// build, translate. It also loads schema and constraint files for
// batch compilation.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/raql-dev/raql/pkg/parser"
	"github.com/raql-dev/raql/pkg/qtree"
	"github.com/raql-dev/raql/pkg/schema"
	"github.com/raql-dev/raql/pkg/sqlgen"
	"github.com/raql-dev/raql/pkg/syntax"
	"github.com/raql-dev/raql/pkg/tree"
)

// Engine compiles relational algebra input to SQL and LaTeX qtrees.
type Engine struct {
	syntax    *syntax.Config
	semantics sqlgen.Semantics
	logger    *slog.Logger
}

// Config holds engine configuration.
type Config struct {
	// Grammar selects the syntax configuration: "core", "extended",
	// "threevl" or "dependency". Defaults to "extended".
	Grammar string
	// Semantics is "bag" or "set". Defaults to "set".
	Semantics string
	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger
}

// New creates an engine.
func New(cfg Config) (*Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	grammar := cfg.Grammar
	if grammar == "" {
		grammar = "extended"
	}
	syn, ok := syntax.Get(grammar)
	if !ok {
		return nil, fmt.Errorf("unknown grammar %q (available: %v)", grammar, syntax.List())
	}

	semantics := sqlgen.Set
	if cfg.Semantics != "" {
		var ok bool
		semantics, ok = sqlgen.ParseSemantics(cfg.Semantics)
		if !ok {
			return nil, fmt.Errorf("unknown semantics %q (want bag or set)", cfg.Semantics)
		}
	}

	logger.Debug("initializing engine", "grammar", grammar, "semantics", semantics.String())

	return &Engine{
		syntax:    syn,
		semantics: semantics,
		logger:    logger,
	}, nil
}

// Grammar returns the name of the active grammar.
func (e *Engine) Grammar() string {
	return e.syntax.Name
}

// Semantics returns the active duplicate-row semantics.
func (e *Engine) Semantics() sqlgen.Semantics {
	return e.semantics
}

// Build parses the input and constructs validated trees against the
// schema. The schema grows as assignment and definition statements are
// processed.
func (e *Engine) Build(input string, s *schema.Schema) ([]tree.Node, error) {
	stmts, err := parser.Parse(input, e.syntax)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("parsed input", "statements", len(stmts))
	return tree.NewBuilder(s).Build(stmts)
}

// ToSQL compiles the input into SQL statements. Statements with no SQL
// form (definitions, non-key dependencies) are omitted.
func (e *Engine) ToSQL(input string, s *schema.Schema) ([]string, error) {
	roots, err := e.Build(input, s)
	if err != nil {
		return nil, err
	}
	out, err := sqlgen.Translate(roots, e.semantics)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("translated to sql", "statements", len(out))
	return out, nil
}

// ToQTree compiles the input into LaTeX qtree strings, one per input
// statement.
func (e *Engine) ToQTree(input string, s *schema.Schema) ([]string, error) {
	roots, err := e.Build(input, s)
	if err != nil {
		return nil, err
	}
	out, err := qtree.Translate(roots)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("translated to qtree", "statements", len(out))
	return out, nil
}

// Check parses and builds the input without translating, reporting the
// first error found.
func (e *Engine) Check(input string, s *schema.Schema) (int, error) {
	roots, err := e.Build(input, s)
	if err != nil {
		return 0, err
	}
	return len(roots), nil
}
