// Package syntax provides grammar configurations for the relational
// algebra language.
//
// A Config maps every operator and delimiter token to the literal string
// recognized by the lexer. Configurations are layered: each grammar
// extends its parent's token set, and individual literals may be
// overridden to build custom notations. Concrete configurations are
// registered in a process-wide registry and looked up by name.
package syntax

import (
	"strings"

	"github.com/raql-dev/raql/pkg/token"
)

// Config maps grammar tokens to their literal spellings.
//
// A zero-value field means the token is not part of the grammar; the
// lexer will not recognize it and the parser will reject statements
// that need it.
type Config struct {
	Name string

	// General tokens.
	Terminator  string // ";"
	Delim       string // ","
	ParamsStart string // "_{"
	ParamsStop  string // "}"
	ParenLeft   string // "("
	ParenRight  string // ")"

	// Logical tokens.
	NotOp string
	AndOp string
	OrOp  string

	// Comparison operators.
	EqualOp            string
	NotEqualOp         string
	NotEqualAltOp      string
	LessThanOp         string
	LessThanEqualOp    string
	GreaterThanOp      string
	GreaterThanEqualOp string

	// Relational algebra operators.
	ProjectOp    string
	RenameOp     string
	SelectOp     string
	AssignOp     string
	JoinOp       string
	DifferenceOp string
	UnionOp      string

	// Extended join operators.
	ThetaJoinOp      string
	NaturalJoinOp    string
	FullOuterJoinOp  string
	LeftOuterJoinOp  string
	RightOuterJoinOp string
	IntersectOp      string

	// Three-valued logic.
	DefinedOp string

	// Dependency operators.
	PKOp       string
	MVDOp      string
	FDOp       string
	IncEquivOp string
	IncSubsetOp string
}

// tokenLiterals returns every (literal, token type) pair the configuration
// defines. Absent (empty) literals are skipped.
func (c *Config) tokenLiterals() map[string]token.TokenType {
	pairs := map[string]token.TokenType{}
	add := func(lit string, t token.TokenType) {
		if lit != "" {
			pairs[lit] = t
		}
	}

	add(c.Terminator, token.SEMI)
	add(c.Delim, token.COMMA)
	add(c.ParamsStart, token.PARAMS)
	add(c.ParamsStop, token.RBRACE)
	add(c.ParenLeft, token.LPAREN)
	add(c.ParenRight, token.RPAREN)

	add(c.NotOp, token.NOT)
	add(c.AndOp, token.AND)
	add(c.OrOp, token.OR)

	add(c.EqualOp, token.EQ)
	add(c.NotEqualOp, token.NE)
	add(c.NotEqualAltOp, token.NE)
	add(c.LessThanOp, token.LT)
	add(c.LessThanEqualOp, token.LE)
	add(c.GreaterThanOp, token.GT)
	add(c.GreaterThanEqualOp, token.GE)

	add(c.ProjectOp, token.PROJECT)
	add(c.RenameOp, token.RENAME)
	add(c.SelectOp, token.SELECT)
	add(c.AssignOp, token.ASSIGN)
	add(c.JoinOp, token.JOIN)
	add(c.DifferenceOp, token.DIFFERENCE)
	add(c.UnionOp, token.UNION)

	add(c.ThetaJoinOp, token.THETA_JOIN)
	add(c.NaturalJoinOp, token.NATURAL_JOIN)
	add(c.FullOuterJoinOp, token.FULL_OUTER_JOIN)
	add(c.LeftOuterJoinOp, token.LEFT_OUTER_JOIN)
	add(c.RightOuterJoinOp, token.RIGHT_OUTER_JOIN)
	add(c.IntersectOp, token.INTERSECT)

	add(c.DefinedOp, token.DEFINED)

	add(c.PKOp, token.PK)
	add(c.MVDOp, token.MVD)
	add(c.FDOp, token.FD)
	add(c.IncEquivOp, token.INC_EQUIV)
	add(c.IncSubsetOp, token.INC_SUBSET)

	return pairs
}

// Symbols returns the literals that must be matched by the lexer's
// longest-match symbol scan: anything that is not a plain identifier
// word (operators spelled with a leading backslash, punctuation, and
// mixed forms like "inc=").
func (c *Config) Symbols() map[string]token.TokenType {
	symbols := map[string]token.TokenType{}
	for lit, t := range c.tokenLiterals() {
		if !isWordLiteral(lit) {
			symbols[lit] = t
		}
	}
	return symbols
}

// Keywords returns the literals recognized as case-insensitive keywords
// after identifier scanning (e.g. "and", "or", "not", "pk").
func (c *Config) Keywords() map[string]token.TokenType {
	keywords := map[string]token.TokenType{}
	for lit, t := range c.tokenLiterals() {
		if isWordLiteral(lit) {
			keywords[strings.ToLower(lit)] = t
		}
	}
	return keywords
}

// LookupKeyword resolves a lower-cased identifier to a keyword token.
func (c *Config) LookupKeyword(ident string) (token.TokenType, bool) {
	t, ok := c.Keywords()[ident]
	return t, ok
}

// isWordLiteral reports whether a literal reads as a bare identifier,
// which the lexer would otherwise scan as IDENT.
func isWordLiteral(lit string) bool {
	for i := 0; i < len(lit); i++ {
		ch := lit[i]
		switch {
		case ch >= 'a' && ch <= 'z':
		case ch >= 'A' && ch <= 'Z':
		case ch == '_':
		case ch >= '0' && ch <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(lit) > 0
}
