// Package sqlgen translates relational algebra trees into SQL.
//
// Translation walks a tree bottom-up, composing a Query value per node.
// Bag semantics keeps duplicate rows (plain SELECT, set operators with
// ALL); set semantics eliminates them (SELECT DISTINCT, plain set
// operators).
package sqlgen

import "strings"

// Semantics selects duplicate handling for generated SQL.
type Semantics int

// Duplicate-row semantics.
const (
	Bag Semantics = iota
	Set
)

// ParseSemantics resolves a semantics name ("bag" or "set").
func ParseSemantics(name string) (Semantics, bool) {
	switch strings.ToLower(name) {
	case "bag":
		return Bag, true
	case "set":
		return Set, true
	default:
		return 0, false
	}
}

func (s Semantics) String() string {
	if s == Set {
		return "set"
	}
	return "bag"
}

// Query holds the composable building blocks of one SQL statement.
// Raw, when set, short-circuits assembly for statements that are not
// SELECTs (ALTER TABLE for primary keys).
type Query struct {
	Prefix   string
	Select   string
	From     string
	Where    string
	Distinct bool
	Raw      string
}

// SQL assembles the query text. Without a select block the from block
// passes through bare, prefixed only.
func (q *Query) SQL() string {
	if q.Raw != "" {
		return q.Raw
	}
	if q.Select == "" {
		return q.Prefix + q.From
	}

	var b strings.Builder
	b.WriteString(q.Prefix)
	b.WriteString("SELECT ")
	if q.Distinct {
		b.WriteString("DISTINCT ")
	}
	b.WriteString(q.Select)
	b.WriteString(" FROM ")
	b.WriteString(q.From)
	if q.Where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(q.Where)
	}
	return b.String()
}
