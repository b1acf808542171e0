package tree

import "fmt"

// Operator tags the relational algebra operation a node represents.
type Operator int

// Node operators.
const (
	OpRelation Operator = iota
	OpDefinition

	OpSelect
	OpProject
	OpRename
	OpAssign

	OpCrossJoin
	OpNaturalJoin
	OpThetaJoin
	OpFullOuterJoin
	OpLeftOuterJoin
	OpRightOuterJoin

	OpUnion
	OpDifference
	OpIntersect

	OpPrimaryKey
	OpMultivaluedDependency
	OpFunctionalDependency
	OpInclusionEquivalence
	OpInclusionSubsumption
)

var operatorNames = map[Operator]string{
	OpRelation:   "relation",
	OpDefinition: "definition",

	OpSelect:  "select",
	OpProject: "project",
	OpRename:  "rename",
	OpAssign:  "assign",

	OpCrossJoin:      "cross_join",
	OpNaturalJoin:    "natural_join",
	OpThetaJoin:      "theta_join",
	OpFullOuterJoin:  "full_outer_join",
	OpLeftOuterJoin:  "left_outer_join",
	OpRightOuterJoin: "right_outer_join",

	OpUnion:      "union",
	OpDifference: "difference",
	OpIntersect:  "intersect",

	OpPrimaryKey:            "primary_key",
	OpMultivaluedDependency: "multivalued_dependency",
	OpFunctionalDependency:  "functional_dependency",
	OpInclusionEquivalence:  "inclusion_equivalence",
	OpInclusionSubsumption:  "inclusion_subsumption",
}

func (o Operator) String() string {
	if name, ok := operatorNames[o]; ok {
		return name
	}
	return fmt.Sprintf("operator(%d)", o)
}

// IsJoin reports whether the operator belongs to the join family.
func (o Operator) IsJoin() bool {
	return o >= OpCrossJoin && o <= OpRightOuterJoin
}

// IsSetOp reports whether the operator is a set operation.
func (o Operator) IsSetOp() bool {
	return o >= OpUnion && o <= OpIntersect
}

// IsDependency reports whether the operator is a dependency declaration.
func (o Operator) IsDependency() bool {
	return o >= OpPrimaryKey
}

// TranslationError reports a node operator that a translator has no
// arm for. With exhaustive switches over the node variants this is
// unreachable; it signals an implementation gap, not a user error.
type TranslationError struct {
	Op Operator
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translation error: no translation for operator %s", e.Op)
}
