// Package tree builds and represents validated relational algebra trees.
//
// Node constructors enforce every well-formedness rule at construction
// time: attribute existence, ambiguous-relation detection, set-operation
// schema compatibility, and rename conflicts. A constructed node is
// immutable; translators only read it. The only mutable state touched
// during construction is the Schema, and only by definition, assignment
// and the duplicate-name checks of rename.
package tree

import (
	"fmt"

	"github.com/raql-dev/raql/pkg/ast"
	"github.com/raql-dev/raql/pkg/schema"
)

// Node is one node of a relational algebra tree.
type Node interface {
	Operator() Operator
	// Name returns the relation name the node's result is known by.
	// Unary nodes inherit their child's name unless they introduce
	// their own; joins and set operations are anonymous.
	Name() string
	// Attributes returns the node's resolved attribute list, or nil
	// for dependency declarations.
	Attributes() *schema.AttributeList
}

// nodeBase carries the fields every node shares.
type nodeBase struct {
	op    Operator
	name  string
	attrs *schema.AttributeList
}

func (n *nodeBase) Operator() Operator                { return n.op }
func (n *nodeBase) Name() string                      { return n.name }
func (n *nodeBase) Attributes() *schema.AttributeList { return n.attrs }

// RelationNode references a stored relation.
type RelationNode struct {
	nodeBase
}

// NewRelationNode builds a relation reference, pulling the attribute
// list from the schema.
func NewRelationNode(name string, s *schema.Schema) (*RelationNode, error) {
	attrs, err := s.Attributes(name)
	if err != nil {
		return nil, err
	}
	return &RelationNode{nodeBase{
		op:    OpRelation,
		name:  name,
		attrs: schema.NewAttributeList(attrs, name),
	}}, nil
}

// DefinitionNode declares a relation schema. Building it registers the
// relation; it produces no rows and no SQL.
type DefinitionNode struct {
	nodeBase
}

// NewDefinitionNode registers the relation into the schema.
func NewDefinitionNode(name string, attrs []string, s *schema.Schema) (*DefinitionNode, error) {
	if err := s.Add(name, attrs); err != nil {
		return nil, err
	}
	return &DefinitionNode{nodeBase{
		op:    OpDefinition,
		name:  name,
		attrs: schema.NewAttributeList(attrs, name),
	}}, nil
}

// SelectNode filters its child by a condition.
type SelectNode struct {
	nodeBase
	Child     Node
	Condition ast.Condition
}

// NewSelectNode validates the condition's attribute references against
// the child's attribute list.
func NewSelectNode(child Node, cond ast.Condition) (*SelectNode, error) {
	attrs := child.Attributes().Clone()
	if err := attrs.Validate(cond.AttributeRefs()); err != nil {
		return nil, err
	}
	return &SelectNode{
		nodeBase:  nodeBase{op: OpSelect, name: child.Name(), attrs: attrs},
		Child:     child,
		Condition: cond,
	}, nil
}

// ProjectNode trims its child to a subset of attributes.
type ProjectNode struct {
	nodeBase
	Child Node
}

// NewProjectNode trims the child's attribute list to the requested
// subset, failing on unknown or ambiguous attributes.
func NewProjectNode(child Node, refs []string) (*ProjectNode, error) {
	attrs := child.Attributes().Clone()
	if err := attrs.Trim(refs); err != nil {
		return nil, err
	}
	return &ProjectNode{
		nodeBase: nodeBase{op: OpProject, name: child.Name(), attrs: attrs},
		Child:    child,
	}, nil
}

// RenameNode renames its child's relation and, optionally, attributes.
type RenameNode struct {
	nodeBase
	Child Node
}

// NewRenameNode fails if the new name already exists in the schema;
// rename does not register the name (assignment is the registering form).
func NewRenameNode(child Node, name string, attrNames []string, s *schema.Schema) (*RenameNode, error) {
	if s.Contains(name) {
		return nil, &schema.RelationError{Msg: fmt.Sprintf("relation %q already exists", name)}
	}
	attrs := child.Attributes().Clone()
	if err := attrs.Rename(attrNames, name); err != nil {
		return nil, err
	}
	return &RenameNode{
		nodeBase: nodeBase{op: OpRename, name: name, attrs: attrs},
		Child:    child,
	}, nil
}

// AssignNode names the result of an expression and registers it.
type AssignNode struct {
	nodeBase
	Child Node
}

// NewAssignNode requires a non-empty name; explicit attribute names, if
// any, must cover every attribute. The new name is registered into the
// schema for later statements in the batch.
func NewAssignNode(child Node, name string, attrNames []string, s *schema.Schema) (*AssignNode, error) {
	if name == "" {
		return nil, &schema.InputError{Msg: "a name is required for assignment"}
	}
	if len(attrNames) > 0 && len(attrNames) != child.Attributes().Len() {
		return nil, &schema.InputError{Msg: "assignment requires naming all attributes"}
	}
	attrs := child.Attributes().Clone()
	if err := attrs.Rename(attrNames, name); err != nil {
		return nil, err
	}
	if err := s.Add(name, attrs.Names()); err != nil {
		return nil, err
	}
	return &AssignNode{
		nodeBase: nodeBase{op: OpAssign, name: name, attrs: attrs},
		Child:    child,
	}, nil
}

// JoinNode covers the whole join family; Condition is set only for
// theta and outer joins.
type JoinNode struct {
	nodeBase
	Left      Node
	Right     Node
	Condition ast.Condition
}

// NewJoinNode merges the children's attribute lists. Both children
// carrying the same non-empty relation name is an ambiguous reference.
// A natural join drops right-side attributes whose unqualified name
// duplicates a left-side one; theta and outer joins validate their
// condition against the merged list.
func NewJoinNode(op Operator, left, right Node, cond ast.Condition) (*JoinNode, error) {
	if left.Name() != "" && left.Name() == right.Name() {
		return nil, &schema.RelationError{Msg: "ambiguous relation reference"}
	}

	attrs := schema.Merge(left.Attributes(), right.Attributes())

	switch op {
	case OpNaturalJoin:
		keep := left.Attributes().Prefixed()
		leftNames := map[string]bool{}
		for _, name := range left.Attributes().Names() {
			leftNames[name] = true
		}
		for _, a := range right.Attributes().Prefixed() {
			if !leftNames[unqualified(a)] {
				keep = append(keep, a)
			}
		}
		if err := attrs.Trim(keep); err != nil {
			return nil, err
		}
	case OpThetaJoin, OpFullOuterJoin, OpLeftOuterJoin, OpRightOuterJoin:
		if err := attrs.Validate(cond.AttributeRefs()); err != nil {
			return nil, err
		}
	}

	return &JoinNode{
		nodeBase:  nodeBase{op: op, attrs: attrs},
		Left:      left,
		Right:     right,
		Condition: cond,
	}, nil
}

func unqualified(ref string) string {
	for i := len(ref) - 1; i >= 0; i-- {
		if ref[i] == '.' {
			return ref[i+1:]
		}
	}
	return ref
}

// SetNode is a union, difference or intersection.
type SetNode struct {
	nodeBase
	Left  Node
	Right Node
}

// NewSetNode requires both children to expose identical attribute-name
// sequences; the result's attributes carry no relation qualifier.
func NewSetNode(op Operator, left, right Node) (*SetNode, error) {
	names := left.Attributes().Names()
	other := right.Attributes().Names()
	if len(names) != len(other) {
		return nil, &schema.InputError{Msg: "set operations require identical relation schemas"}
	}
	for i := range names {
		if names[i] != other[i] {
			return nil, &schema.InputError{Msg: "set operations require identical relation schemas"}
		}
	}
	return &SetNode{
		nodeBase: nodeBase{op: op, attrs: schema.NewAttributeList(names, "")},
		Left:     left,
		Right:    right,
	}, nil
}
