package parser

import (
	"fmt"

	"github.com/raql-dev/raql/pkg/ast"
	"github.com/raql-dev/raql/pkg/token"
)

// Binary operator precedence levels, loosest to tightest. The join
// family shares one level and is mutually chainable; unary operators
// bind tighter than any binary operator.
const (
	precNone      = 0
	precUnion     = 1 // union, difference
	precIntersect = 2
	precJoin      = 3 // cross, natural, theta, outer joins
)

// binaryPrecedence returns the precedence level for a binary operator
// token, or precNone if the token is not a binary operator.
func binaryPrecedence(t token.TokenType) int {
	switch t {
	case token.UNION, token.DIFFERENCE:
		return precUnion
	case token.INTERSECT:
		return precIntersect
	case token.JOIN, token.THETA_JOIN, token.NATURAL_JOIN,
		token.FULL_OUTER_JOIN, token.LEFT_OUTER_JOIN, token.RIGHT_OUTER_JOIN:
		return precJoin
	default:
		return precNone
	}
}

// parseExpression parses a relational algebra expression.
func (p *Parser) parseExpression() ast.Expr {
	return p.parseBinaryExpr(precUnion)
}

// parseBinaryExpr implements precedence climbing. Binary operators are
// left-associative, so the right operand is parsed at one precedence
// level higher.
func (p *Parser) parseBinaryExpr(minPrecedence int) ast.Expr {
	left := p.parseUnaryExpr()

	for left != nil && !p.failed() {
		op := p.token.Type
		prec := binaryPrecedence(op)
		if prec < minPrecedence || prec == precNone {
			break
		}
		p.nextToken()

		var cond ast.Condition
		switch op {
		case token.THETA_JOIN, token.FULL_OUTER_JOIN,
			token.LEFT_OUTER_JOIN, token.RIGHT_OUTER_JOIN:
			cond = p.parseConditionParams()
		case token.JOIN:
			// `\join_{cond}` is shorthand for a theta join.
			if p.check(token.PARAMS) {
				cond = p.parseConditionParams()
				op = token.THETA_JOIN
			}
		}

		right := p.parseBinaryExpr(prec + 1)
		if right == nil {
			return nil
		}
		left = &ast.BinaryExpr{Left: left, Op: op, Condition: cond, Right: right}
	}
	return left
}

// parseUnaryExpr parses select/project/rename prefixes, relation
// references and parenthesized sub-expressions. Unary operators are
// right-associative and bind to the next unary expression, not to a
// binary chain.
func (p *Parser) parseUnaryExpr() ast.Expr {
	switch p.token.Type {
	case token.SELECT:
		p.nextToken()
		cond := p.parseConditionParams()
		child := p.parseUnaryExpr()
		if p.failed() {
			return nil
		}
		return &ast.SelectExpr{Condition: cond, Child: child}

	case token.PROJECT:
		p.nextToken()
		p.expect(token.PARAMS)
		attrs := p.parseAttrRefList()
		p.expect(token.RBRACE)
		child := p.parseUnaryExpr()
		if p.failed() {
			return nil
		}
		return &ast.ProjectExpr{Attrs: attrs, Child: child}

	case token.RENAME:
		p.nextToken()
		p.expect(token.PARAMS)
		name := p.expectIdent()
		var attrs []string
		if p.match(token.LPAREN) {
			attrs = p.parseIdentList()
			p.expect(token.RPAREN)
		}
		p.expect(token.RBRACE)
		child := p.parseUnaryExpr()
		if p.failed() {
			return nil
		}
		return &ast.RenameExpr{Name: name, Attrs: attrs, Child: child}

	case token.IDENT:
		name := p.token.Literal
		p.nextToken()
		return &ast.RelationExpr{Name: name}

	case token.LPAREN:
		p.nextToken()
		expr := p.parseBinaryExpr(precUnion)
		p.expect(token.RPAREN)
		if p.failed() {
			return nil
		}
		return expr

	default:
		p.addError(fmt.Sprintf(errUnexpectedToken, p.token.Type, "expression"))
		return nil
	}
}
