package ast

import "regexp"

// CondUnaryOp is a unary condition operator.
type CondUnaryOp int

// Unary condition operators.
const (
	CondNot CondUnaryOp = iota
	CondDefined
)

// CondBinaryOp is a binary condition operator.
type CondBinaryOp int

// Binary condition operators.
const (
	CondAnd CondBinaryOp = iota
	CondOr
	CondEqual
	CondNotEqual
	CondLessThan
	CondLessThanEqual
	CondGreaterThan
	CondGreaterThanEqual
)

// Condition is a node in a condition expression tree.
//
// Conditions appear inside the parameter blocks of select, theta join and
// outer join operators and inside dependency statements. They render
// differently per target (SQL text, LaTeX text), so the tree keeps only
// structure and leaves rendering to the translators.
type Condition interface {
	condNode()
	// AttributeRefs returns every leaf whose text is a syntactically
	// valid, possibly relation-qualified, attribute reference. Numeric
	// and string literals are excluded.
	AttributeRefs() []string
}

// Identity is a condition leaf: an attribute reference, number or string
// literal, carried as its literal text.
type Identity struct {
	Text string
}

// UnaryCondition applies not or defined() to a child condition.
type UnaryCondition struct {
	Op    CondUnaryOp
	Child Condition
}

// BinaryCondition applies a logical or comparison operator to two children.
type BinaryCondition struct {
	Op    CondBinaryOp
	Left  Condition
	Right Condition
}

func (*Identity) condNode()        {}
func (*UnaryCondition) condNode()  {}
func (*BinaryCondition) condNode() {}

// attrRefPattern matches a bare or relation-qualified attribute
// reference: identifiers start with a letter and continue with letters,
// digits or underscores.
var attrRefPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*(\.[A-Za-z][A-Za-z0-9_]*)?$`)

// IsAttributeRef reports whether text parses as an attribute reference.
func IsAttributeRef(text string) bool {
	return attrRefPattern.MatchString(text)
}

// AttributeRefs implements Condition.
func (c *Identity) AttributeRefs() []string {
	if IsAttributeRef(c.Text) {
		return []string{c.Text}
	}
	return nil
}

// AttributeRefs implements Condition.
func (c *UnaryCondition) AttributeRefs() []string {
	return c.Child.AttributeRefs()
}

// AttributeRefs implements Condition.
func (c *BinaryCondition) AttributeRefs() []string {
	return append(c.Left.AttributeRefs(), c.Right.AttributeRefs()...)
}

// ConditionEqual reports structural equality of two condition trees.
func ConditionEqual(a, b Condition) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case *Identity:
		b, ok := b.(*Identity)
		return ok && a.Text == b.Text
	case *UnaryCondition:
		b, ok := b.(*UnaryCondition)
		return ok && a.Op == b.Op && ConditionEqual(a.Child, b.Child)
	case *BinaryCondition:
		b, ok := b.(*BinaryCondition)
		return ok && a.Op == b.Op &&
			ConditionEqual(a.Left, b.Left) && ConditionEqual(a.Right, b.Right)
	default:
		return false
	}
}
