package parser

import (
	"github.com/raql-dev/raql/pkg/ast"
	"github.com/raql-dev/raql/pkg/token"
)

// Dependency statement grammar, layered on the extended grammar so
// ordinary relational algebra statements stay parseable in the same
// input stream:
//
//	pk_dep  → pk "_{" attr_ref_list "}" relation ";"
//	mvd_dep → mvd "_{" attr "," attr "}" target ";"
//	fd_dep  → fd "_{" attr "," attr "}" target ";"
//	inc_dep → (inc= | inc⊆) "_{" attr "," attr "}" "(" target "," target ")" ";"
//	target  → relation | select "_{" condition "}" relation

// parseDependency parses one dependency statement.
func (p *Parser) parseDependency() ast.Stmt {
	op := p.token.Type
	p.nextToken()

	switch op {
	case token.PK:
		return p.parsePrimaryKey()
	case token.MVD, token.FD:
		return p.parseConditionalDep(op)
	default:
		return p.parseInclusion(op)
	}
}

func (p *Parser) parsePrimaryKey() ast.Stmt {
	p.expect(token.PARAMS)
	attrs := p.parseAttrRefList()
	p.expect(token.RBRACE)
	relation := p.expectIdent()
	p.expect(token.SEMI)
	if p.failed() {
		return nil
	}
	return &ast.PrimaryKeyStmt{Attrs: attrs, Relation: relation}
}

func (p *Parser) parseConditionalDep(op token.TokenType) ast.Stmt {
	p.expect(token.PARAMS)
	left := p.expectIdent()
	p.expect(token.COMMA)
	right := p.expectIdent()
	p.expect(token.RBRACE)
	target := p.parseRelationTarget()
	p.expect(token.SEMI)
	if p.failed() {
		return nil
	}
	if op == token.MVD {
		return &ast.MultivaluedDepStmt{Left: left, Right: right, Target: target}
	}
	return &ast.FunctionalDepStmt{Left: left, Right: right, Target: target}
}

func (p *Parser) parseInclusion(op token.TokenType) ast.Stmt {
	p.expect(token.PARAMS)
	left := p.expectIdent()
	p.expect(token.COMMA)
	right := p.expectIdent()
	p.expect(token.RBRACE)
	p.expect(token.LPAREN)
	leftTarget := p.parseRelationTarget()
	p.expect(token.COMMA)
	rightTarget := p.parseRelationTarget()
	p.expect(token.RPAREN)
	p.expect(token.SEMI)
	if p.failed() {
		return nil
	}
	if op == token.INC_EQUIV {
		return &ast.InclusionEquivStmt{
			Left: left, Right: right,
			LeftTarget: leftTarget, RightTarget: rightTarget,
		}
	}
	return &ast.InclusionSubStmt{
		Left: left, Right: right,
		LeftTarget: leftTarget, RightTarget: rightTarget,
	}
}

// parseRelationTarget parses a bare relation or a select-filtered
// relation name.
func (p *Parser) parseRelationTarget() ast.RelationTarget {
	if p.match(token.SELECT) {
		cond := p.parseConditionParams()
		return ast.RelationTarget{Name: p.expectIdent(), Condition: cond}
	}
	return ast.RelationTarget{Name: p.expectIdent()}
}
