package tree

import "github.com/raql-dev/raql/pkg/schema"

// Dependency nodes declare constraints rather than produce rows.
// They carry raw attribute references instead of a resolved attribute
// list, and a relation name (or a pair for inclusion dependencies).

// PrimaryKeyNode declares a primary key over a relation.
type PrimaryKeyNode struct {
	nodeBase
	Relation string
	Attrs    []string
}

// NewPrimaryKeyNode validates that the relation exists and that every
// key attribute resolves against it.
func NewPrimaryKeyNode(relation string, attrs []string, s *schema.Schema) (*PrimaryKeyNode, error) {
	names, err := s.Attributes(relation)
	if err != nil {
		return nil, err
	}
	list := schema.NewAttributeList(names, relation)
	if err := list.Validate(attrs); err != nil {
		return nil, err
	}
	return &PrimaryKeyNode{
		nodeBase: nodeBase{op: OpPrimaryKey},
		Relation: relation,
		Attrs:    attrs,
	}, nil
}

// MultivaluedDepNode declares a multivalued dependency over a target
// relation, which may be select-filtered.
type MultivaluedDepNode struct {
	nodeBase
	Relation string
	Left     string
	Right    string
	Target   Node
}

// NewMultivaluedDepNode builds a multivalued dependency node.
func NewMultivaluedDepNode(relation, left, right string, target Node) *MultivaluedDepNode {
	return &MultivaluedDepNode{
		nodeBase: nodeBase{op: OpMultivaluedDependency},
		Relation: relation,
		Left:     left,
		Right:    right,
		Target:   target,
	}
}

// FunctionalDepNode declares a functional dependency over a target
// relation, which may be select-filtered.
type FunctionalDepNode struct {
	nodeBase
	Relation string
	Left     string
	Right    string
	Target   Node
}

// NewFunctionalDepNode builds a functional dependency node.
func NewFunctionalDepNode(relation, left, right string, target Node) *FunctionalDepNode {
	return &FunctionalDepNode{
		nodeBase: nodeBase{op: OpFunctionalDependency},
		Relation: relation,
		Left:     left,
		Right:    right,
		Target:   target,
	}
}

// InclusionNode declares inclusion equivalence or subsumption between
// two relation sides, each of which may be select-filtered.
type InclusionNode struct {
	nodeBase
	Left        string
	Right       string
	LeftTarget  Node
	RightTarget Node
}

// NewInclusionNode builds an inclusion dependency node. op must be
// OpInclusionEquivalence or OpInclusionSubsumption.
func NewInclusionNode(op Operator, left, right string, leftTarget, rightTarget Node) *InclusionNode {
	return &InclusionNode{
		nodeBase:    nodeBase{op: op},
		Left:        left,
		Right:       right,
		LeftTarget:  leftTarget,
		RightTarget: rightTarget,
	}
}
