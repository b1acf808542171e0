package sqlgen

import (
	"fmt"
	"strings"

	"github.com/raql-dev/raql/pkg/ast"
	"github.com/raql-dev/raql/pkg/tree"
)

// Translator walks validated trees and emits SQL. One Translator serves
// one statement batch: synthetic derived-table names are unique within
// it.
type Translator struct {
	semantics Semantics
	names     map[tree.Node]string
	counter   int
}

// NewTranslator creates a translator with the given semantics.
func NewTranslator(semantics Semantics) *Translator {
	return &Translator{
		semantics: semantics,
		names:     map[tree.Node]string{},
	}
}

// Translate renders a batch of trees into SQL statements, one per tree.
// Trees with no SQL mapping (definitions and the non-key dependency
// declarations) are omitted from the result.
func Translate(roots []tree.Node, semantics Semantics) ([]string, error) {
	t := NewTranslator(semantics)
	results := make([]string, 0, len(roots))
	for _, root := range roots {
		q, err := t.TranslateNode(root)
		if err != nil {
			return nil, err
		}
		if q == nil {
			continue
		}
		results = append(results, q.SQL())
	}
	return results, nil
}

// TranslateNode builds the query for one tree. A nil query (with nil
// error) means the node has no SQL form.
func (t *Translator) TranslateNode(n tree.Node) (*Query, error) {
	switch n := n.(type) {
	case *tree.RelationNode:
		return t.newQuery(n.Attributes().String(), n.Name(), ""), nil

	case *tree.DefinitionNode:
		// Schema declarations have no SQL form.
		return nil, nil

	case *tree.SelectNode:
		q, err := t.TranslateNode(n.Child)
		if err != nil {
			return nil, err
		}
		where := conditionSQL(n.Condition)
		if q.Where != "" {
			where = fmt.Sprintf("(%s) AND (%s)", q.Where, where)
		}
		q.Where = where
		if q.Select == "" {
			q.Select = n.Attributes().String()
		}
		return q, nil

	case *tree.ProjectNode:
		q, err := t.TranslateNode(n.Child)
		if err != nil {
			return nil, err
		}
		q.Select = n.Attributes().String()
		return q, nil

	case *tree.RenameNode:
		q, err := t.TranslateNode(n.Child)
		if err != nil {
			return nil, err
		}
		from := fmt.Sprintf("(%s) AS %s(%s)",
			q.SQL(), n.Name(), strings.Join(n.Attributes().Names(), ", "))
		return t.newQuery(n.Attributes().String(), from, ""), nil

	case *tree.AssignNode:
		q, err := t.TranslateNode(n.Child)
		if err != nil {
			return nil, err
		}
		q.Prefix = fmt.Sprintf("CREATE TEMPORARY TABLE %s(%s) AS ",
			n.Name(), strings.Join(n.Attributes().Names(), ", "))
		return q, nil

	case *tree.JoinNode:
		return t.join(n)

	case *tree.SetNode:
		return t.setOp(n)

	case *tree.PrimaryKeyNode:
		return &Query{Raw: fmt.Sprintf("ALTER TABLE %s ADD PRIMARY KEY (%s)",
			n.Relation, strings.Join(n.Attrs, ", "))}, nil

	case *tree.MultivaluedDepNode, *tree.FunctionalDepNode, *tree.InclusionNode:
		// No SQL equivalent; the batch driver skips these.
		return nil, nil

	default:
		return nil, &tree.TranslationError{Op: n.Operator()}
	}
}

// join renders the join family. A side that is itself a join is inlined
// directly; any other side is wrapped as a named derived table.
func (t *Translator) join(n *tree.JoinNode) (*Query, error) {
	left, err := t.joinSide(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := t.joinSide(n.Right)
	if err != nil {
		return nil, err
	}

	from := fmt.Sprintf("%s %s %s", left, joinOperators[n.Operator()], right)
	if n.Condition != nil {
		from = fmt.Sprintf("%s ON %s", from, conditionSQL(n.Condition))
	}
	return t.newQuery(n.Attributes().String(), from, ""), nil
}

func (t *Translator) joinSide(n tree.Node) (string, error) {
	q, err := t.TranslateNode(n)
	if err != nil {
		return "", err
	}
	if n.Operator().IsJoin() {
		return q.From, nil
	}
	return fmt.Sprintf("(%s) AS %s", q.SQL(), t.tempName(n)), nil
}

// setOp renders union, difference and intersection. Bag semantics keeps
// duplicates with ALL; set semantics omits it.
func (t *Translator) setOp(n *tree.SetNode) (*Query, error) {
	left, err := t.TranslateNode(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := t.TranslateNode(n.Right)
	if err != nil {
		return nil, err
	}

	op := setOperators[n.Operator()]
	if t.semantics == Bag {
		op += " ALL"
	}
	from := fmt.Sprintf("(%s %s %s) AS %s", left.SQL(), op, right.SQL(), t.tempName(n))
	return t.newQuery(n.Attributes().String(), from, ""), nil
}

// newQuery builds a query under the translator's semantics.
func (t *Translator) newQuery(selectBlock, from, where string) *Query {
	return &Query{
		Select:   selectBlock,
		From:     from,
		Where:    where,
		Distinct: t.semantics == Set,
	}
}

// tempName returns the node's own name, or a synthetic name unique
// within the batch.
func (t *Translator) tempName(n tree.Node) string {
	if n.Name() != "" {
		return n.Name()
	}
	if name, ok := t.names[n]; ok {
		return name
	}
	t.counter++
	name := fmt.Sprintf("_t%d", t.counter)
	t.names[n] = name
	return name
}

var joinOperators = map[tree.Operator]string{
	tree.OpCrossJoin:      "CROSS JOIN",
	tree.OpNaturalJoin:    "NATURAL JOIN",
	tree.OpThetaJoin:      "JOIN",
	tree.OpFullOuterJoin:  "FULL OUTER JOIN",
	tree.OpLeftOuterJoin:  "LEFT OUTER JOIN",
	tree.OpRightOuterJoin: "RIGHT OUTER JOIN",
}

var setOperators = map[tree.Operator]string{
	tree.OpUnion:      "UNION",
	tree.OpDifference: "EXCEPT",
	tree.OpIntersect:  "INTERSECT",
}

// conditionSQL renders a condition tree as SQL. Every binary
// application is fully parenthesized; precedence never elides parens.
func conditionSQL(c ast.Condition) string {
	switch c := c.(type) {
	case *ast.Identity:
		return c.Text
	case *ast.UnaryCondition:
		if c.Op == ast.CondDefined {
			return conditionSQL(c.Child) + " IS NOT NULL"
		}
		return "NOT " + conditionSQL(c.Child)
	case *ast.BinaryCondition:
		return fmt.Sprintf("(%s %s %s)",
			conditionSQL(c.Left), sqlConditionOps[c.Op], conditionSQL(c.Right))
	default:
		return ""
	}
}

var sqlConditionOps = map[ast.CondBinaryOp]string{
	ast.CondAnd:              "AND",
	ast.CondOr:               "OR",
	ast.CondEqual:            "=",
	ast.CondNotEqual:         "!=",
	ast.CondLessThan:         "<",
	ast.CondLessThanEqual:    "<=",
	ast.CondGreaterThan:      ">",
	ast.CondGreaterThanEqual: ">=",
}
