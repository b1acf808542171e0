// Package qtree translates relational algebra trees into LaTeX qtree
// bracket notation.
//
// Each node renders as `[.$label$ child... ]`, one bracket level per
// tree node; the full statement is prefixed with `\Tree`. Every output
// string is bracket-balanced.
package qtree

import (
	"fmt"
	"strings"

	"github.com/raql-dev/raql/pkg/ast"
	"github.com/raql-dev/raql/pkg/tree"
)

// Translate renders a batch of trees, one `\Tree...` string per tree,
// one-to-one with input statements.
func Translate(roots []tree.Node) ([]string, error) {
	results := make([]string, 0, len(roots))
	for _, root := range roots {
		s, err := translateNode(root)
		if err != nil {
			return nil, err
		}
		results = append(results, `\Tree`+s)
	}
	return results, nil
}

// translateNode renders one subtree.
func translateNode(n tree.Node) (string, error) {
	switch n := n.(type) {
	case *tree.RelationNode:
		return fmt.Sprintf("[.$%s$ ]", escape(n.Name())), nil

	case *tree.DefinitionNode:
		return fmt.Sprintf("[.$%s(%s)$ ]", escape(n.Name()), attrList(n.Attributes().Names())), nil

	case *tree.SelectNode:
		child, err := translateNode(n.Child)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[.$%s_{%s}$ %s ]", selectOp, conditionLatex(n.Condition), child), nil

	case *tree.ProjectNode:
		child, err := translateNode(n.Child)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[.$%s_{%s}$ %s ]", projectOp, attrList(n.Attributes().Names()), child), nil

	case *tree.RenameNode:
		child, err := translateNode(n.Child)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[.$%s_{%s(%s)}$ %s ]",
			renameOp, escape(n.Name()), attrList(n.Attributes().Names()), child), nil

	case *tree.AssignNode:
		child, err := translateNode(n.Child)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[.$%s(%s)$ %s ]",
			escape(n.Name()), attrList(n.Attributes().Names()), child), nil

	case *tree.JoinNode:
		return translateBinary(n.Operator(), n.Condition, n.Left, n.Right)

	case *tree.SetNode:
		return translateBinary(n.Operator(), nil, n.Left, n.Right)

	case *tree.PrimaryKeyNode:
		return fmt.Sprintf(`[.$%s(%s) \eq {%s}$ ]`,
			primaryKeyOp, n.Relation, attrList(n.Attrs)), nil

	case *tree.MultivaluedDepNode:
		return fmt.Sprintf("[.$%s : %s %s %s$ ]",
			targetLatex(n.Target), n.Left, multivaluedDepOp, n.Right), nil

	case *tree.FunctionalDepNode:
		return fmt.Sprintf("[.$%s : %s %s %s$ ]",
			targetLatex(n.Target), n.Left, functionalDepOp, n.Right), nil

	case *tree.InclusionNode:
		op := inclusionEquivOp
		if n.Operator() == tree.OpInclusionSubsumption {
			op = inclusionSubOp
		}
		return fmt.Sprintf("[.$%s[%s] %s %s[%s]$ ]",
			targetLatex(n.LeftTarget), n.Left, op, targetLatex(n.RightTarget), n.Right), nil

	default:
		return "", &tree.TranslationError{Op: n.Operator()}
	}
}

// translateBinary renders a join or set operator node, with a condition
// subscript for theta and outer joins.
func translateBinary(op tree.Operator, cond ast.Condition, left, right tree.Node) (string, error) {
	l, err := translateNode(left)
	if err != nil {
		return "", err
	}
	r, err := translateNode(right)
	if err != nil {
		return "", err
	}
	if cond != nil {
		return fmt.Sprintf("[.$%s_{%s}$ %s %s ]", binaryOperators[op], conditionLatex(cond), l, r), nil
	}
	return fmt.Sprintf("[.$%s$ %s %s ]", binaryOperators[op], l, r), nil
}

// targetLatex renders a dependency target: the relation name, or the
// select-filtered form `\sigma_{cond} (name)`.
func targetLatex(n tree.Node) string {
	if sel, ok := n.(*tree.SelectNode); ok {
		return fmt.Sprintf("%s_{%s} (%s)", selectOp, conditionLatex(sel.Condition), sel.Name())
	}
	return n.Name()
}

// attrList joins attribute names with the LaTeX thin-space comma.
func attrList(names []string) string {
	return strings.Join(names, `,\,`)
}

// escape escapes underscores for the relation-name position.
func escape(name string) string {
	return strings.ReplaceAll(name, "_", `\_`)
}

// conditionLatex renders a condition tree in LaTeX form. Binary
// applications are fully parenthesized.
func conditionLatex(c ast.Condition) string {
	switch c := c.(type) {
	case *ast.Identity:
		return c.Text
	case *ast.UnaryCondition:
		if c.Op == ast.CondDefined {
			return fmt.Sprintf("%s(%s)", definedOp, conditionLatex(c.Child))
		}
		return fmt.Sprintf("%s %s", notOp, conditionLatex(c.Child))
	case *ast.BinaryCondition:
		return fmt.Sprintf("(%s %s %s)",
			conditionLatex(c.Left), conditionBinaryOps[c.Op], conditionLatex(c.Right))
	default:
		return ""
	}
}
