// Package token defines the lexical token types for the relational
// algebra language.
//
// Operator token literals are not fixed here: each syntax configuration
// (pkg/syntax) maps its own literal strings onto these types, so the same
// token set serves every grammar dialect.
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

//nolint:revive // ALL_CAPS names follow lexer token conventions
const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT  // alpha, q.a
	NUMBER // 42, -7, 3.14
	STRING // 'hello'

	// Punctuation
	SEMI   // ;
	COMMA  // ,
	LPAREN // (
	RPAREN // )
	PARAMS // _{
	RBRACE // }
	ASSIGN // :=
	DOT    // .

	// Comparison operators
	EQ // =
	NE // != or <>
	LT // <
	GT // >
	LE // <=
	GE // >=

	// Relational algebra operators
	SELECT
	PROJECT
	RENAME
	JOIN
	THETA_JOIN
	NATURAL_JOIN
	FULL_OUTER_JOIN
	LEFT_OUTER_JOIN
	RIGHT_OUTER_JOIN
	UNION
	DIFFERENCE
	INTERSECT

	// Condition keywords
	AND
	OR
	NOT
	DEFINED

	// Dependency operators
	PK
	MVD
	FD
	INC_EQUIV
	INC_SUBSET
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",

	SEMI:   ";",
	COMMA:  ",",
	LPAREN: "(",
	RPAREN: ")",
	PARAMS: "_{",
	RBRACE: "}",
	ASSIGN: ":=",
	DOT:    ".",

	EQ: "=",
	NE: "!=",
	LT: "<",
	GT: ">",
	LE: "<=",
	GE: ">=",

	SELECT:           "SELECT",
	PROJECT:          "PROJECT",
	RENAME:           "RENAME",
	JOIN:             "JOIN",
	THETA_JOIN:       "THETA_JOIN",
	NATURAL_JOIN:     "NATURAL_JOIN",
	FULL_OUTER_JOIN:  "FULL_OUTER_JOIN",
	LEFT_OUTER_JOIN:  "LEFT_OUTER_JOIN",
	RIGHT_OUTER_JOIN: "RIGHT_OUTER_JOIN",
	UNION:            "UNION",
	DIFFERENCE:       "DIFFERENCE",
	INTERSECT:        "INTERSECT",

	AND:     "AND",
	OR:      "OR",
	NOT:     "NOT",
	DEFINED: "DEFINED",

	PK:         "PK",
	MVD:        "MVD",
	FD:         "FD",
	INC_EQUIV:  "INC_EQUIV",
	INC_SUBSET: "INC_SUBSET",
}

// IsComparison returns true if the token type is a comparison operator.
func IsComparison(t TokenType) bool {
	return t >= EQ && t <= GE
}

// IsBinaryOp returns true if the token type is a binary relational
// algebra operator.
func IsBinaryOp(t TokenType) bool {
	return t >= JOIN && t <= INTERSECT
}

// IsUnaryOp returns true if the token type is a unary relational
// algebra operator.
func IsUnaryOp(t TokenType) bool {
	return t == SELECT || t == PROJECT || t == RENAME
}

// IsDependencyOp returns true if the token type starts a dependency statement.
func IsDependencyOp(t TokenType) bool {
	return t >= PK && t <= INC_SUBSET
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}
