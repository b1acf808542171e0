package sqlgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raql-dev/raql/pkg/parser"
	"github.com/raql-dev/raql/pkg/schema"
	"github.com/raql-dev/raql/pkg/syntax"
	"github.com/raql-dev/raql/pkg/tree"
)

func testSchema() *schema.Schema {
	return schema.FromMap(map[string][]string{
		"alpha": {"a1", "a2", "a3"},
		"beta":  {"b1", "b2"},
		"gamma": {"a1", "g1"},
		"r":     {"x", "y"},
		"s":     {"x", "y"},
	})
}

func translate(t *testing.T, input string, semantics Semantics) []string {
	t.Helper()
	cfg, ok := syntax.Get("dependency")
	require.True(t, ok)
	stmts, err := parser.Parse(input, cfg)
	require.NoError(t, err)
	roots, err := tree.NewBuilder(testSchema()).Build(stmts)
	require.NoError(t, err)
	out, err := Translate(roots, semantics)
	require.NoError(t, err)
	return out
}

func translateOne(t *testing.T, input string, semantics Semantics) string {
	t.Helper()
	out := translate(t, input, semantics)
	require.Len(t, out, 1)
	return out[0]
}

func TestParseSemantics(t *testing.T) {
	got, ok := ParseSemantics("bag")
	require.True(t, ok)
	assert.Equal(t, Bag, got)

	got, ok = ParseSemantics("SET")
	require.True(t, ok)
	assert.Equal(t, Set, got)

	_, ok = ParseSemantics("multiset")
	assert.False(t, ok)
}

func TestTranslateRelation(t *testing.T) {
	assert.Equal(t,
		"SELECT alpha.a1, alpha.a2, alpha.a3 FROM alpha",
		translateOne(t, `alpha;`, Bag))
	assert.Equal(t,
		"SELECT DISTINCT alpha.a1, alpha.a2, alpha.a3 FROM alpha",
		translateOne(t, `alpha;`, Set))
}

func TestTranslateSelect(t *testing.T) {
	assert.Equal(t,
		"SELECT alpha.a1, alpha.a2, alpha.a3 FROM alpha WHERE (a1 = 1)",
		translateOne(t, `\select_{a1 = 1} alpha;`, Bag))
}

func TestTranslateNestedSelectMergesConditions(t *testing.T) {
	assert.Equal(t,
		"SELECT alpha.a1, alpha.a2, alpha.a3 FROM alpha WHERE ((a2 = 2)) AND ((a1 = 1))",
		translateOne(t, `\select_{a1 = 1} \select_{a2 = 2} alpha;`, Bag))
}

func TestTranslateProject(t *testing.T) {
	assert.Equal(t,
		"SELECT alpha.a1 FROM alpha",
		translateOne(t, `\project_{a1} alpha;`, Bag))
}

func TestTranslateProjectOverSelect(t *testing.T) {
	assert.Equal(t,
		"SELECT alpha.a1 FROM alpha WHERE (a2 = 2)",
		translateOne(t, `\project_{a1} \select_{a2 = 2} alpha;`, Bag))
}

func TestTranslateRename(t *testing.T) {
	assert.Equal(t,
		"SELECT delta.d1, delta.d2, delta.d3 FROM (SELECT alpha.a1, alpha.a2, alpha.a3 FROM alpha) AS delta(d1, d2, d3)",
		translateOne(t, `\rename_{delta(d1, d2, d3)} alpha;`, Bag))
}

func TestTranslateAssign(t *testing.T) {
	assert.Equal(t,
		"CREATE TEMPORARY TABLE recent(a1, a2, a3) AS SELECT alpha.a1, alpha.a2, alpha.a3 FROM alpha WHERE (a1 = 1)",
		translateOne(t, `recent := \select_{a1 = 1} alpha;`, Bag))
}

func TestTranslateCrossJoin(t *testing.T) {
	assert.Equal(t,
		"SELECT alpha.a1, alpha.a2, alpha.a3, beta.b1, beta.b2 FROM "+
			"(SELECT alpha.a1, alpha.a2, alpha.a3 FROM alpha) AS alpha CROSS JOIN "+
			"(SELECT beta.b1, beta.b2 FROM beta) AS beta",
		translateOne(t, `alpha \join beta;`, Bag))
}

func TestTranslateThetaJoin(t *testing.T) {
	assert.Equal(t,
		"SELECT alpha.a1, alpha.a2, alpha.a3, beta.b1, beta.b2 FROM "+
			"(SELECT alpha.a1, alpha.a2, alpha.a3 FROM alpha) AS alpha JOIN "+
			"(SELECT beta.b1, beta.b2 FROM beta) AS beta ON (a1 = b1)",
		translateOne(t, `alpha \join_{a1 = b1} beta;`, Bag))
}

func TestTranslateNaturalJoin(t *testing.T) {
	assert.Equal(t,
		"SELECT alpha.a1, alpha.a2, alpha.a3, gamma.g1 FROM "+
			"(SELECT alpha.a1, alpha.a2, alpha.a3 FROM alpha) AS alpha NATURAL JOIN "+
			"(SELECT gamma.a1, gamma.g1 FROM gamma) AS gamma",
		translateOne(t, `alpha \natural_join gamma;`, Bag))
}

func TestTranslateChainedJoinsInline(t *testing.T) {
	// A join side that is itself a join inlines rather than nesting a
	// derived table.
	got := translateOne(t, `alpha \join beta \join gamma;`, Bag)
	assert.Contains(t, got, "AS alpha CROSS JOIN (SELECT beta.b1, beta.b2 FROM beta) AS beta CROSS JOIN")
	assert.NotContains(t, got, "FROM ((")
}

func TestTranslateOuterJoins(t *testing.T) {
	for _, tt := range []struct {
		input string
		want  string
	}{
		{`alpha \full_outer_join_{a1 = b1} beta;`, "FULL OUTER JOIN"},
		{`alpha \left_outer_join_{a1 = b1} beta;`, "LEFT OUTER JOIN"},
		{`alpha \right_outer_join_{a1 = b1} beta;`, "RIGHT OUTER JOIN"},
	} {
		t.Run(tt.want, func(t *testing.T) {
			assert.Contains(t, translateOne(t, tt.input, Bag), tt.want)
		})
	}
}

func TestTranslateSetOperationsBag(t *testing.T) {
	assert.Equal(t,
		"SELECT x, y FROM (SELECT r.x, r.y FROM r UNION ALL SELECT s.x, s.y FROM s) AS _t1",
		translateOne(t, `r \union s;`, Bag))
	assert.Contains(t, translateOne(t, `r \difference s;`, Bag), "EXCEPT ALL")
	assert.Contains(t, translateOne(t, `r \intersect s;`, Bag), "INTERSECT ALL")
}

func TestTranslateSetOperationsSet(t *testing.T) {
	assert.Equal(t,
		"SELECT DISTINCT x, y FROM (SELECT DISTINCT r.x, r.y FROM r UNION SELECT DISTINCT s.x, s.y FROM s) AS _t1",
		translateOne(t, `r \union s;`, Set))
}

func TestTranslateTempNamesAreUniqueWithinBatch(t *testing.T) {
	out := translate(t, `r \union s; r \intersect s;`, Bag)
	require.Len(t, out, 2)
	assert.Contains(t, out[0], "AS _t1")
	assert.Contains(t, out[1], "AS _t2")
}

func TestTranslatePrimaryKey(t *testing.T) {
	assert.Equal(t,
		"ALTER TABLE alpha ADD PRIMARY KEY (a1, a2)",
		translateOne(t, `pk_{a1, a2} alpha;`, Bag))
}

func TestTranslateSkipsNonSQLStatements(t *testing.T) {
	out := translate(t, `delta(d1, d2); fd_{a1, a2} alpha; mvd_{a1, a2} alpha; inc=_{a1, b1} (alpha, beta); delta;`, Bag)
	require.Len(t, out, 1)
	assert.Equal(t, "SELECT delta.d1, delta.d2 FROM delta", out[0])
}

func TestConditionSQL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`\select_{a1 = 1 and a2 = 2} alpha;`, "WHERE ((a1 = 1) AND (a2 = 2))"},
		{`\select_{a1 = 1 or a2 = 2} alpha;`, "WHERE ((a1 = 1) OR (a2 = 2))"},
		{`\select_{not a1 = 1} alpha;`, "WHERE NOT (a1 = 1)"},
		{`\select_{defined(a1)} alpha;`, "WHERE a1 IS NOT NULL"},
		{`\select_{a1 != 1} alpha;`, "WHERE (a1 != 1)"},
		{`\select_{a1 <> 1} alpha;`, "WHERE (a1 != 1)"},
		{`\select_{a1 = 'x''y'} alpha;`, "WHERE (a1 = 'x''y')"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Contains(t, translateOne(t, tt.input, Bag), tt.want)
		})
	}
}

func TestQuerySQL(t *testing.T) {
	q := &Query{Select: "a", From: "r", Where: "(a = 1)"}
	assert.Equal(t, "SELECT a FROM r WHERE (a = 1)", q.SQL())

	q = &Query{Select: "a", From: "r", Distinct: true}
	assert.Equal(t, "SELECT DISTINCT a FROM r", q.SQL())

	q = &Query{Prefix: "CREATE TEMPORARY TABLE x(a) AS ", Select: "a", From: "r"}
	assert.Equal(t, "CREATE TEMPORARY TABLE x(a) AS SELECT a FROM r", q.SQL())

	q = &Query{Raw: "ALTER TABLE r ADD PRIMARY KEY (a)"}
	assert.Equal(t, "ALTER TABLE r ADD PRIMARY KEY (a)", q.SQL())
}
