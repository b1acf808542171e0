package qtree

import (
	"github.com/raql-dev/raql/pkg/ast"
	"github.com/raql-dev/raql/pkg/tree"
)

// LaTeX spellings for relational algebra operators.
const (
	projectOp = `\pi`
	renameOp  = `\rho`
	selectOp  = `\sigma`

	crossJoinOp      = `\times`
	thetaJoinOp      = `\times`
	naturalJoinOp    = `\bowtie`
	fullOuterJoinOp  = `\fullouterjoin`
	leftOuterJoinOp  = `\leftouterjoin`
	rightOuterJoinOp = `\rightouterjoin`

	unionOp      = `\cup`
	differenceOp = `-`
	intersectOp  = `\cap`

	primaryKeyOp     = `\text{PK}`
	multivaluedDepOp = `\twoheadrightarrow`
	functionalDepOp  = `\rightarrow`
	inclusionEquivOp = `\equiv`
	inclusionSubOp   = `\subseteq`
)

var binaryOperators = map[tree.Operator]string{
	tree.OpCrossJoin:      crossJoinOp,
	tree.OpNaturalJoin:    naturalJoinOp,
	tree.OpThetaJoin:      thetaJoinOp,
	tree.OpFullOuterJoin:  fullOuterJoinOp,
	tree.OpLeftOuterJoin:  leftOuterJoinOp,
	tree.OpRightOuterJoin: rightOuterJoinOp,
	tree.OpUnion:          unionOp,
	tree.OpDifference:     differenceOp,
	tree.OpIntersect:      intersectOp,
}

// LaTeX spellings for condition operators.
var conditionBinaryOps = map[ast.CondBinaryOp]string{
	ast.CondAnd:              `\land`,
	ast.CondOr:               `\lor`,
	ast.CondEqual:            `\eq`,
	ast.CondNotEqual:         `\neq`,
	ast.CondLessThan:         `\lt`,
	ast.CondLessThanEqual:    `\leq`,
	ast.CondGreaterThan:      `\gt`,
	ast.CondGreaterThanEqual: `\geq`,
}

const (
	notOp     = `\neg`
	definedOp = `\text{defined}`
)
