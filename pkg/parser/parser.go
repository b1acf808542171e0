// Package parser provides lexing and parsing of relational algebra
// statements.
//
// # Usage
//
//	cfg, _ := syntax.Get("extended")
//	stmts, err := parser.Parse(`\project_{a} r;`, cfg)
//
// # Grammar Overview
//
//	statements  → statement+
//	statement   → definition | assignment | dependency | expression ";"
//	definition  → ident "(" ident_list ")" ";"
//	assignment  → ident [ "(" ident_list ")" ] ":=" expression ";"
//	expression  → precedence-climbing over: unary ops (tightest), the
//	              join family, intersect, then union/difference
//	dependency  → pk/mvd/fd/inc statements (dependency grammar only)
//
// Conditions inside parameter blocks are parsed by a separate
// sub-grammar; see parser_cond.go.
package parser

import (
	"fmt"

	"github.com/raql-dev/raql/pkg/ast"
	"github.com/raql-dev/raql/pkg/syntax"
	"github.com/raql-dev/raql/pkg/token"
)

// Parser parses relational algebra statements into an AST.
type Parser struct {
	lexer  *Lexer
	token  token.Token // current token
	peek   token.Token // lookahead token
	errors []error
	syntax *syntax.Config
}

// NewParser creates a parser for the given input and syntax configuration.
func NewParser(input string, cfg *syntax.Config) *Parser {
	p := &Parser{
		lexer:  NewLexer(input, cfg),
		syntax: cfg,
	}
	// Read two tokens to initialize current and peek.
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses the input and returns one AST statement per
// semicolon-terminated statement in source order.
func Parse(input string, cfg *syntax.Config) ([]ast.Stmt, error) {
	p := NewParser(input, cfg)
	stmts := p.parseStatements()
	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	return stmts, nil
}

// Syntax returns the parser's syntax configuration.
func (p *Parser) Syntax() *syntax.Config {
	return p.syntax
}

// ---------- Token Helpers ----------

// nextToken advances to the next token.
func (p *Parser) nextToken() {
	p.token = p.peek
	p.peek = p.lexer.NextToken()
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.TokenType) bool {
	return p.token.Type == t
}

// checkPeek returns true if the peek token is of the given type.
func (p *Parser) checkPeek(t token.TokenType) bool {
	return p.peek.Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	return false
}

// expect consumes the current token if it matches, otherwise adds an error.
func (p *Parser) expect(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	p.addError(fmt.Sprintf(errUnexpectedToken, p.token.Type, t))
	return false
}

// expectIdent consumes and returns the current identifier.
func (p *Parser) expectIdent() string {
	if !p.check(token.IDENT) {
		p.addError(fmt.Sprintf(errUnexpectedToken, p.token.Type, token.IDENT))
		return ""
	}
	name := p.token.Literal
	p.nextToken()
	return name
}

// addError adds a syntax error at the current position.
func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, &SyntaxError{
		Pos:     p.token.Pos,
		Message: msg,
	})
}

// failed reports whether any error has been recorded.
func (p *Parser) failed() bool {
	return len(p.errors) > 0
}

// ---------- Statements ----------

// parseStatements parses until EOF. The first error stops parsing; no
// partial recovery is attempted.
func (p *Parser) parseStatements() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.EOF) && !p.failed() {
		stmt := p.parseStatement()
		if stmt == nil || p.failed() {
			break
		}
		stmts = append(stmts, stmt)
	}
	if !p.failed() && !p.check(token.EOF) {
		p.addError(fmt.Sprintf(errTrailingInput, p.token.Type))
	}
	return stmts
}

// parseStatement dispatches on the leading token.
func (p *Parser) parseStatement() ast.Stmt {
	switch {
	case token.IsDependencyOp(p.token.Type):
		return p.parseDependency()
	case p.check(token.IDENT) && p.checkPeek(token.ASSIGN):
		return p.parseAssign(p.expectIdent(), nil)
	case p.check(token.IDENT) && p.checkPeek(token.LPAREN):
		return p.parseDefinitionOrAssign()
	default:
		return p.parseExprStatement()
	}
}

// parseDefinitionOrAssign handles the shared `ident ( ident_list )`
// prefix of definition and attribute-naming assignment statements.
func (p *Parser) parseDefinitionOrAssign() ast.Stmt {
	name := p.expectIdent()
	p.expect(token.LPAREN)
	attrs := p.parseIdentList()
	p.expect(token.RPAREN)
	if p.failed() {
		return nil
	}

	if p.check(token.ASSIGN) {
		return p.parseAssign(name, attrs)
	}

	p.expect(token.SEMI)
	if p.failed() {
		return nil
	}
	return &ast.DefinitionStmt{Name: name, Attrs: attrs}
}

// parseAssign parses the `:= expression ;` tail of an assignment.
func (p *Parser) parseAssign(name string, attrs []string) ast.Stmt {
	p.expect(token.ASSIGN)
	expr := p.parseExpression()
	p.expect(token.SEMI)
	if p.failed() {
		return nil
	}
	return &ast.AssignStmt{Name: name, Attrs: attrs, Expr: expr}
}

// parseExprStatement parses a bare expression statement.
func (p *Parser) parseExprStatement() ast.Stmt {
	expr := p.parseExpression()
	p.expect(token.SEMI)
	if p.failed() {
		return nil
	}
	return &ast.ExprStmt{Expr: expr}
}

// parseIdentList parses a comma-separated identifier list.
func (p *Parser) parseIdentList() []string {
	var names []string
	names = append(names, p.expectIdent())
	for p.match(token.COMMA) {
		names = append(names, p.expectIdent())
	}
	return names
}

// parseAttrRef parses a bare or relation-qualified attribute reference.
func (p *Parser) parseAttrRef() string {
	name := p.expectIdent()
	if p.match(token.DOT) {
		return name + "." + p.expectIdent()
	}
	return name
}

// parseAttrRefList parses a comma-separated attribute reference list.
func (p *Parser) parseAttrRefList() []string {
	var refs []string
	refs = append(refs, p.parseAttrRef())
	for p.match(token.COMMA) {
		refs = append(refs, p.parseAttrRef())
	}
	return refs
}
