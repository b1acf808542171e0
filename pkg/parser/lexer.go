package parser

import (
	"sort"
	"strings"

	"github.com/raql-dev/raql/pkg/syntax"
	"github.com/raql-dev/raql/pkg/token"
)

// Lexer tokenizes relational algebra input against a syntax configuration.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)

	symbols  []symbolEntry // non-word literals, longest first
	keywords map[string]token.TokenType
}

type symbolEntry struct {
	literal string
	typ     token.TokenType
}

// NewLexer creates a Lexer for the given input and syntax configuration.
func NewLexer(input string, cfg *syntax.Config) *Lexer {
	l := &Lexer{
		input:    input,
		line:     1,
		col:      0,
		keywords: cfg.Keywords(),
	}
	for lit, t := range cfg.Symbols() {
		l.symbols = append(l.symbols, symbolEntry{literal: lit, typ: t})
	}
	// Longest match first, with a stable order for equal lengths.
	sort.Slice(l.symbols, func(i, j int) bool {
		if len(l.symbols[i].literal) != len(l.symbols[j].literal) {
			return len(l.symbols[i].literal) > len(l.symbols[j].literal)
		}
		return l.symbols[i].literal < l.symbols[j].literal
	})
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	pos := l.currentPos()

	// Configured literals first (longest match). This covers the
	// backslash operators, punctuation, comparisons, and the mixed
	// forms like "inc=" that identifier scanning would split.
	if tok, ok := l.matchSymbol(pos); ok {
		return tok
	}

	var tok token.Token
	tok.Pos = pos

	switch {
	case l.ch == 0:
		tok.Type = token.EOF
		tok.Literal = ""
		return tok
	case l.ch == '\'' || l.ch == '"':
		tok.Type = token.STRING
		tok.Literal = l.readString(l.ch)
		return tok
	case l.ch == '.':
		if isDigit(l.peekChar()) {
			tok.Type = token.NUMBER
			tok.Literal = l.readNumber()
			return tok
		}
		tok.Type = token.DOT
		tok.Literal = "."
		l.readChar()
		return tok
	case l.ch == '+' || l.ch == '-':
		if isDigit(l.peekChar()) || (l.peekChar() == '.' && isDigit(l.peekByteAt(2))) {
			tok.Type = token.NUMBER
			tok.Literal = l.readNumber()
			return tok
		}
		tok.Type = token.ILLEGAL
		tok.Literal = string(l.ch)
		l.readChar()
		return tok
	case isLetter(l.ch):
		tok.Literal = strings.ToLower(l.readIdentifier())
		tok.Type = token.IDENT
		if t, ok := l.keywords[tok.Literal]; ok {
			tok.Type = t
		}
		return tok
	case isDigit(l.ch):
		tok.Type = token.NUMBER
		tok.Literal = l.readNumber()
		return tok
	default:
		tok.Type = token.ILLEGAL
		tok.Literal = string(l.ch)
		l.readChar()
		return tok
	}
}

// matchSymbol checks if the current position starts a configured literal.
func (l *Lexer) matchSymbol(pos token.Position) (token.Token, bool) {
	if l.pos >= len(l.input) {
		return token.Token{}, false
	}
	remaining := l.input[l.pos:]
	for _, sym := range l.symbols {
		if strings.HasPrefix(remaining, sym.literal) {
			// Advance byte-wise; literals like "inc⊆" are multi-byte.
			for i := 0; i < len(sym.literal); i++ {
				l.readChar()
			}
			return token.Token{Type: sym.typ, Literal: sym.literal, Pos: pos}, true
		}
	}
	return token.Token{}, false
}

// skipWhitespace skips spaces, tabs and line breaks.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readString reads a quoted string literal delimited by the given quote
// character. Doubled quotes escape: 'it''s' -> it's. Both quote styles
// produce the same STRING token, normalizing the input to one canonical
// form.
func (l *Lexer) readString(quote byte) string {
	l.readChar() // skip opening quote

	var result strings.Builder
	for l.ch != 0 {
		if l.ch == quote {
			if l.peekChar() == quote {
				result.WriteByte(quote)
				l.readChar() // skip first quote
				l.readChar() // skip second quote
			} else {
				l.readChar() // skip closing quote
				break
			}
		} else {
			result.WriteByte(l.ch)
			l.readChar()
		}
	}
	return result.String()
}

// readIdentifier reads an identifier: a letter followed by letters,
// digits or underscores. An underscore that opens a parameter block
// ("pk_{a} r") terminates the identifier so the block lexes on its own.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || (l.ch == '_' && l.peekChar() != '{') {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads an optionally signed integer or decimal literal.
func (l *Lexer) readNumber() string {
	start := l.pos

	if l.ch == '+' || l.ch == '-' {
		l.readChar()
	}
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // skip '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[start:l.pos]
}

// peekByteAt returns the byte n positions ahead of the current char.
func (l *Lexer) peekByteAt(n int) byte {
	idx := l.pos + n
	if idx >= len(l.input) {
		return 0
	}
	return l.input[idx]
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
