// Package ast defines the parse-level representation of relational
// algebra statements.
//
// The parser produces a sequence of Stmt values whose nesting mirrors
// operator precedence in the source text. Statements are purely
// syntactic: no schema validation happens here. The tree builder
// (pkg/tree) consumes them together with a schema to produce validated
// semantic nodes.
package ast

import "github.com/raql-dev/raql/pkg/token"

// Expr is a marker interface for relational algebra expression nodes.
type Expr interface {
	exprNode()
}

// Stmt is a marker interface for statement nodes.
type Stmt interface {
	stmtNode()
}

// ---------- Expressions ----------

// RelationExpr is a bare relation reference.
type RelationExpr struct {
	Name string
}

// SelectExpr filters a child expression by a condition.
type SelectExpr struct {
	Condition Condition
	Child     Expr
}

// ProjectExpr trims a child expression to the listed attributes.
// Attribute references may be relation-qualified.
type ProjectExpr struct {
	Attrs []string
	Child Expr
}

// RenameExpr renames the child's relation and, optionally, every
// attribute. Attrs is either empty or a complete positional list.
type RenameExpr struct {
	Name  string
	Attrs []string
	Child Expr
}

// BinaryExpr is a join or set operation over two child expressions.
// Op is one of JOIN, THETA_JOIN, NATURAL_JOIN, the outer join tokens,
// UNION, DIFFERENCE or INTERSECT. Condition is set only for theta and
// outer joins.
type BinaryExpr struct {
	Left      Expr
	Op        token.TokenType
	Condition Condition
	Right     Expr
}

func (*RelationExpr) exprNode() {}
func (*SelectExpr) exprNode()   {}
func (*ProjectExpr) exprNode()  {}
func (*RenameExpr) exprNode()   {}
func (*BinaryExpr) exprNode()   {}

// ---------- Statements ----------

// DefinitionStmt declares a relation and its attributes: `r(a, b);`.
type DefinitionStmt struct {
	Name  string
	Attrs []string
}

// AssignStmt names the result of an expression: `r := expr;` or
// `r(a, b) := expr;`.
type AssignStmt struct {
	Name  string
	Attrs []string
	Expr  Expr
}

// ExprStmt is a bare expression statement.
type ExprStmt struct {
	Expr Expr
}

// RelationTarget is the subject of a dependency statement: a relation,
// optionally filtered by a select condition.
type RelationTarget struct {
	Name      string
	Condition Condition // nil when the target is a bare relation
}

// PrimaryKeyStmt declares a primary key: `pk_{a, b} r;`.
type PrimaryKeyStmt struct {
	Attrs    []string
	Relation string
}

// MultivaluedDepStmt declares a multivalued dependency: `mvd_{a, b} r;`.
type MultivaluedDepStmt struct {
	Left   string
	Right  string
	Target RelationTarget
}

// FunctionalDepStmt declares a functional dependency: `fd_{a, b} r;`.
type FunctionalDepStmt struct {
	Left   string
	Right  string
	Target RelationTarget
}

// InclusionEquivStmt declares inclusion equivalence between two
// relation sides: `inc=_{a, b} (r, s);`.
type InclusionEquivStmt struct {
	Left        string
	Right       string
	LeftTarget  RelationTarget
	RightTarget RelationTarget
}

// InclusionSubStmt declares inclusion subsumption between two relation
// sides: `inc⊆_{a, b} (r, s);`.
type InclusionSubStmt struct {
	Left        string
	Right       string
	LeftTarget  RelationTarget
	RightTarget RelationTarget
}

func (*DefinitionStmt) stmtNode()     {}
func (*AssignStmt) stmtNode()         {}
func (*ExprStmt) stmtNode()           {}
func (*PrimaryKeyStmt) stmtNode()     {}
func (*MultivaluedDepStmt) stmtNode() {}
func (*FunctionalDepStmt) stmtNode()  {}
func (*InclusionEquivStmt) stmtNode() {}
func (*InclusionSubStmt) stmtNode()   {}
