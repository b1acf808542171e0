package tree

import "github.com/raql-dev/raql/pkg/ast"

// Shared node behavior lives here as free functions over the node
// variants rather than as methods on a class hierarchy.

// PostOrder returns the tree's nodes in post-order. Dependency nodes
// count as leaves: their targets are declarations, not subtrees of a
// data-producing expression.
func PostOrder(n Node) []Node {
	switch n := n.(type) {
	case *SelectNode:
		return append(PostOrder(n.Child), n)
	case *ProjectNode:
		return append(PostOrder(n.Child), n)
	case *RenameNode:
		return append(PostOrder(n.Child), n)
	case *AssignNode:
		return append(PostOrder(n.Child), n)
	case *JoinNode:
		return append(append(PostOrder(n.Left), PostOrder(n.Right)...), n)
	case *SetNode:
		return append(append(PostOrder(n.Left), PostOrder(n.Right)...), n)
	default:
		return []Node{n}
	}
}

// Equal reports structural equality: operator, name, attributes,
// conditions, and children, recursively.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Operator() != b.Operator() || a.Name() != b.Name() {
		return false
	}
	if !a.Attributes().Equal(b.Attributes()) {
		return false
	}

	switch a := a.(type) {
	case *RelationNode, *DefinitionNode:
		return true
	case *SelectNode:
		b := b.(*SelectNode)
		return ast.ConditionEqual(a.Condition, b.Condition) && Equal(a.Child, b.Child)
	case *ProjectNode:
		return Equal(a.Child, b.(*ProjectNode).Child)
	case *RenameNode:
		return Equal(a.Child, b.(*RenameNode).Child)
	case *AssignNode:
		return Equal(a.Child, b.(*AssignNode).Child)
	case *JoinNode:
		b := b.(*JoinNode)
		return ast.ConditionEqual(a.Condition, b.Condition) &&
			Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case *SetNode:
		b := b.(*SetNode)
		return Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case *PrimaryKeyNode:
		b := b.(*PrimaryKeyNode)
		return a.Relation == b.Relation && stringsEqual(a.Attrs, b.Attrs)
	case *MultivaluedDepNode:
		b := b.(*MultivaluedDepNode)
		return a.Relation == b.Relation && a.Left == b.Left && a.Right == b.Right &&
			Equal(a.Target, b.Target)
	case *FunctionalDepNode:
		b := b.(*FunctionalDepNode)
		return a.Relation == b.Relation && a.Left == b.Left && a.Right == b.Right &&
			Equal(a.Target, b.Target)
	case *InclusionNode:
		b := b.(*InclusionNode)
		return a.Left == b.Left && a.Right == b.Right &&
			Equal(a.LeftTarget, b.LeftTarget) && Equal(a.RightTarget, b.RightTarget)
	default:
		return false
	}
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
