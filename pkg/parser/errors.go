package parser

import (
	"fmt"

	"github.com/raql-dev/raql/pkg/token"
)

// SyntaxError represents a parsing error with position information.
// Parsing never partially accepts: the first syntax error aborts the
// whole batch.
type SyntaxError struct {
	Pos     token.Position
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Common error messages
const (
	errUnexpectedToken = "unexpected token %s, expected %s"
	errTrailingInput   = "unexpected token %s after statement"
)
