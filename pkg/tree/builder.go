package tree

import (
	"fmt"

	"github.com/raql-dev/raql/pkg/ast"
	"github.com/raql-dev/raql/pkg/schema"
	"github.com/raql-dev/raql/pkg/token"
)

// Builder turns parsed statements into validated trees against one
// mutable schema. Statements must be processed in textual order:
// assignment and definition register names that later statements may
// reference. A Builder owns its schema for the duration of one batch
// and must not be shared across goroutines.
type Builder struct {
	schema *schema.Schema
}

// NewBuilder creates a builder over the given schema.
func NewBuilder(s *schema.Schema) *Builder {
	return &Builder{schema: s}
}

// Schema returns the builder's schema.
func (b *Builder) Schema() *schema.Schema {
	return b.schema
}

// Build constructs one tree per statement, in order. The first failure
// aborts the batch.
func (b *Builder) Build(stmts []ast.Stmt) ([]Node, error) {
	roots := make([]Node, 0, len(stmts))
	for _, stmt := range stmts {
		root, err := b.BuildStatement(stmt)
		if err != nil {
			return nil, err
		}
		roots = append(roots, root)
	}
	return roots, nil
}

// BuildStatement constructs the tree for a single statement.
func (b *Builder) BuildStatement(stmt ast.Stmt) (Node, error) {
	switch stmt := stmt.(type) {
	case *ast.ExprStmt:
		return b.buildExpr(stmt.Expr)

	case *ast.DefinitionStmt:
		return NewDefinitionNode(stmt.Name, stmt.Attrs, b.schema)

	case *ast.AssignStmt:
		child, err := b.buildExpr(stmt.Expr)
		if err != nil {
			return nil, err
		}
		return NewAssignNode(child, stmt.Name, stmt.Attrs, b.schema)

	case *ast.PrimaryKeyStmt:
		return NewPrimaryKeyNode(stmt.Relation, stmt.Attrs, b.schema)

	case *ast.MultivaluedDepStmt:
		target, err := b.buildTarget(stmt.Target)
		if err != nil {
			return nil, err
		}
		return NewMultivaluedDepNode(stmt.Target.Name, stmt.Left, stmt.Right, target), nil

	case *ast.FunctionalDepStmt:
		target, err := b.buildTarget(stmt.Target)
		if err != nil {
			return nil, err
		}
		return NewFunctionalDepNode(stmt.Target.Name, stmt.Left, stmt.Right, target), nil

	case *ast.InclusionEquivStmt:
		return b.buildInclusion(OpInclusionEquivalence, stmt.Left, stmt.Right, stmt.LeftTarget, stmt.RightTarget)

	case *ast.InclusionSubStmt:
		return b.buildInclusion(OpInclusionSubsumption, stmt.Left, stmt.Right, stmt.LeftTarget, stmt.RightTarget)

	default:
		return nil, fmt.Errorf("unsupported statement type %T", stmt)
	}
}

// buildExpr constructs the tree for an expression.
func (b *Builder) buildExpr(expr ast.Expr) (Node, error) {
	switch expr := expr.(type) {
	case *ast.RelationExpr:
		return NewRelationNode(expr.Name, b.schema)

	case *ast.SelectExpr:
		child, err := b.buildExpr(expr.Child)
		if err != nil {
			return nil, err
		}
		return NewSelectNode(child, expr.Condition)

	case *ast.ProjectExpr:
		child, err := b.buildExpr(expr.Child)
		if err != nil {
			return nil, err
		}
		return NewProjectNode(child, expr.Attrs)

	case *ast.RenameExpr:
		child, err := b.buildExpr(expr.Child)
		if err != nil {
			return nil, err
		}
		return NewRenameNode(child, expr.Name, expr.Attrs, b.schema)

	case *ast.BinaryExpr:
		left, err := b.buildExpr(expr.Left)
		if err != nil {
			return nil, err
		}
		right, err := b.buildExpr(expr.Right)
		if err != nil {
			return nil, err
		}
		op, ok := binaryOperator(expr.Op)
		if !ok {
			return nil, fmt.Errorf("unsupported binary operator %s", expr.Op)
		}
		if op.IsSetOp() {
			return NewSetNode(op, left, right)
		}
		return NewJoinNode(op, left, right, expr.Condition)

	default:
		return nil, fmt.Errorf("unsupported expression type %T", expr)
	}
}

// buildTarget constructs a dependency target: a bare relation or a
// select over one, validating the relation and any condition.
func (b *Builder) buildTarget(target ast.RelationTarget) (Node, error) {
	relation, err := NewRelationNode(target.Name, b.schema)
	if err != nil {
		return nil, err
	}
	if target.Condition == nil {
		return relation, nil
	}
	return NewSelectNode(relation, target.Condition)
}

func (b *Builder) buildInclusion(op Operator, left, right string, leftTarget, rightTarget ast.RelationTarget) (Node, error) {
	lt, err := b.buildTarget(leftTarget)
	if err != nil {
		return nil, err
	}
	rt, err := b.buildTarget(rightTarget)
	if err != nil {
		return nil, err
	}
	return NewInclusionNode(op, left, right, lt, rt), nil
}

// binaryOperator maps a parse-level binary operator token to its node
// operator.
func binaryOperator(t token.TokenType) (Operator, bool) {
	switch t {
	case token.JOIN:
		return OpCrossJoin, true
	case token.NATURAL_JOIN:
		return OpNaturalJoin, true
	case token.THETA_JOIN:
		return OpThetaJoin, true
	case token.FULL_OUTER_JOIN:
		return OpFullOuterJoin, true
	case token.LEFT_OUTER_JOIN:
		return OpLeftOuterJoin, true
	case token.RIGHT_OUTER_JOIN:
		return OpRightOuterJoin, true
	case token.UNION:
		return OpUnion, true
	case token.DIFFERENCE:
		return OpDifference, true
	case token.INTERSECT:
		return OpIntersect, true
	default:
		return 0, false
	}
}
