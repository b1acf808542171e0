package parser

import (
	"fmt"
	"strings"

	"github.com/raql-dev/raql/pkg/ast"
	"github.com/raql-dev/raql/pkg/token"
)

// Condition sub-grammar. Conditions live inside `_{ ... }` parameter
// blocks and have their own precedence ladder: comparisons, then not,
// then and, then or. Both logical operators are left-associative.

// parseConditionParams parses a `_{ condition }` parameter block.
func (p *Parser) parseConditionParams() ast.Condition {
	p.expect(token.PARAMS)
	cond := p.parseCondition()
	p.expect(token.RBRACE)
	return cond
}

// parseCondition parses a full condition expression.
func (p *Parser) parseCondition() ast.Condition {
	return p.parseOr()
}

func (p *Parser) parseOr() ast.Condition {
	left := p.parseAnd()
	for left != nil && p.match(token.OR) {
		right := p.parseAnd()
		if right == nil {
			return nil
		}
		left = &ast.BinaryCondition{Op: ast.CondOr, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAnd() ast.Condition {
	left := p.parseNot()
	for left != nil && p.match(token.AND) {
		right := p.parseNot()
		if right == nil {
			return nil
		}
		left = &ast.BinaryCondition{Op: ast.CondAnd, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseNot() ast.Condition {
	if p.match(token.NOT) {
		child := p.parseNot()
		if child == nil {
			return nil
		}
		return &ast.UnaryCondition{Op: ast.CondNot, Child: child}
	}
	return p.parseConditionPrimary()
}

// parseConditionPrimary parses a comparison, a defined() predicate, or
// a parenthesized condition. A bare operand is not a condition.
func (p *Parser) parseConditionPrimary() ast.Condition {
	switch p.token.Type {
	case token.DEFINED:
		p.nextToken()
		p.expect(token.LPAREN)
		operand := p.parseOperand()
		p.expect(token.RPAREN)
		if p.failed() {
			return nil
		}
		return &ast.UnaryCondition{Op: ast.CondDefined, Child: operand}

	case token.LPAREN:
		p.nextToken()
		cond := p.parseOr()
		p.expect(token.RPAREN)
		if p.failed() {
			return nil
		}
		return cond

	default:
		return p.parseComparison()
	}
}

// parseComparison parses `operand comparator operand`.
func (p *Parser) parseComparison() ast.Condition {
	left := p.parseOperand()
	if left == nil {
		return nil
	}

	op, ok := comparisonOp(p.token.Type)
	if !ok {
		p.addError(fmt.Sprintf(errUnexpectedToken, p.token.Type, "comparison operator"))
		return nil
	}
	p.nextToken()

	right := p.parseOperand()
	if right == nil {
		return nil
	}
	return &ast.BinaryCondition{Op: op, Left: left, Right: right}
}

// parseOperand parses a condition leaf: an attribute reference, a
// number, or a string literal. Strings keep their canonical
// single-quoted form so identity leaves render unchanged.
func (p *Parser) parseOperand() ast.Condition {
	switch p.token.Type {
	case token.IDENT:
		return &ast.Identity{Text: p.parseAttrRef()}
	case token.NUMBER:
		text := p.token.Literal
		p.nextToken()
		return &ast.Identity{Text: text}
	case token.STRING:
		// Embedded quotes were unescaped by the lexer; re-double them.
		text := "'" + strings.ReplaceAll(p.token.Literal, "'", "''") + "'"
		p.nextToken()
		return &ast.Identity{Text: text}
	default:
		p.addError(fmt.Sprintf(errUnexpectedToken, p.token.Type, "operand"))
		return nil
	}
}

// comparisonOp maps a comparison token to its condition operator.
func comparisonOp(t token.TokenType) (ast.CondBinaryOp, bool) {
	switch t {
	case token.EQ:
		return ast.CondEqual, true
	case token.NE:
		return ast.CondNotEqual, true
	case token.LT:
		return ast.CondLessThan, true
	case token.LE:
		return ast.CondLessThanEqual, true
	case token.GT:
		return ast.CondGreaterThan, true
	case token.GE:
		return ast.CondGreaterThanEqual, true
	default:
		return 0, false
	}
}
