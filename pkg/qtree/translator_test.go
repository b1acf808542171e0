package qtree

import (
	"strings"
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
	})
}

func translateOne(t *testing.T, input string) string {
	t.Helper()
	cfg, ok := syntax.Get("dependency")
	require.True(t, ok)
	stmts, err := parser.Parse(input, cfg)
	require.NoError(t, err)
	roots, err := tree.NewBuilder(testSchema()).Build(stmts)
	require.NoError(t, err)
	out, err := Translate(roots)
	require.NoError(t, err)
	require.Len(t, out, 1)
	return out[0]
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"relation",
			`alpha;`,
			`\Tree[.$alpha$ ]`,
		},
		{
			"definition",
			`delta(d1, d2);`,
			`\Tree[.$delta(d1,\,d2)$ ]`,
		},
		{
			"select",
			`\select_{a1 = 1} alpha;`,
			`\Tree[.$\sigma_{(a1 \eq 1)}$ [.$alpha$ ] ]`,
		},
		{
			"project",
			`\project_{a1, a2} alpha;`,
			`\Tree[.$\pi_{a1,\,a2}$ [.$alpha$ ] ]`,
		},
		{
			"rename",
			`\rename_{delta(d1, d2, d3)} alpha;`,
			`\Tree[.$\rho_{delta(d1,\,d2,\,d3)}$ [.$alpha$ ] ]`,
		},
		{
			"assignment escapes underscores",
			`new_alpha := alpha;`,
			`\Tree[.$new\_alpha(a1,\,a2,\,a3)$ [.$alpha$ ] ]`,
		},
		{
			"cross join",
			`alpha \join beta;`,
			`\Tree[.$\times$ [.$alpha$ ] [.$beta$ ] ]`,
		},
		{
			"theta join",
			`alpha \join_{a1 = b1} beta;`,
			`\Tree[.$\times_{(a1 \eq b1)}$ [.$alpha$ ] [.$beta$ ] ]`,
		},
		{
			"natural join",
			`alpha \natural_join gamma;`,
			`\Tree[.$\bowtie$ [.$alpha$ ] [.$gamma$ ] ]`,
		},
		{
			"left outer join",
			`alpha \left_outer_join_{a1 = b1} beta;`,
			`\Tree[.$\leftouterjoin_{(a1 \eq b1)}$ [.$alpha$ ] [.$beta$ ] ]`,
		},
		{
			"union",
			`alpha \union alpha;`,
			`\Tree[.$\cup$ [.$alpha$ ] [.$alpha$ ] ]`,
		},
		{
			"difference",
			`alpha \difference alpha;`,
			`\Tree[.$-$ [.$alpha$ ] [.$alpha$ ] ]`,
		},
		{
			"intersection",
			`alpha \intersect alpha;`,
			`\Tree[.$\cap$ [.$alpha$ ] [.$alpha$ ] ]`,
		},
		{
			"nested operators",
			`\project_{a1} \select_{a2 = 2} alpha;`,
			`\Tree[.$\pi_{a1}$ [.$\sigma_{(a2 \eq 2)}$ [.$alpha$ ] ] ]`,
		},
		{
			"primary key",
			`pk_{a1, a2} alpha;`,
			`\Tree[.$\text{PK}(alpha) \eq {a1,\,a2}$ ]`,
		},
		{
			"multivalued dependency",
			`mvd_{a1, a2} alpha;`,
			`\Tree[.$alpha : a1 \twoheadrightarrow a2$ ]`,
		},
		{
			"functional dependency",
			`fd_{a1, a2} alpha;`,
			`\Tree[.$alpha : a1 \rightarrow a2$ ]`,
		},
		{
			"functional dependency with filtered target",
			`fd_{a1, a2} \select_{a3 = 3} alpha;`,
			`\Tree[.$\sigma_{(a3 \eq 3)} (alpha) : a1 \rightarrow a2$ ]`,
		},
		{
			"inclusion equivalence",
			`inc=_{a1, b1} (alpha, beta);`,
			`\Tree[.$alpha[a1] \equiv beta[b1]$ ]`,
		},
		{
			"inclusion subsumption",
			`inc⊆_{a1, b1} (alpha, beta);`,
			`\Tree[.$alpha[a1] \subseteq beta[b1]$ ]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translateOne(t, tt.input))
		})
	}
}

func TestTranslateConditionOperators(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`\select_{a1 != 1} alpha;`, `(a1 \neq 1)`},
		{`\select_{a1 < 1} alpha;`, `(a1 \lt 1)`},
		{`\select_{a1 <= 1} alpha;`, `(a1 \leq 1)`},
		{`\select_{a1 > 1} alpha;`, `(a1 \gt 1)`},
		{`\select_{a1 >= 1} alpha;`, `(a1 \geq 1)`},
		{`\select_{a1 = 1 and a2 = 2} alpha;`, `((a1 \eq 1) \land (a2 \eq 2))`},
		{`\select_{a1 = 1 or a2 = 2} alpha;`, `((a1 \eq 1) \lor (a2 \eq 2))`},
		{`\select_{not a1 = 1} alpha;`, `\neg (a1 \eq 1)`},
		{`\select_{defined(a1)} alpha;`, `\text{defined}(a1)`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Contains(t, translateOne(t, tt.input), tt.want)
		})
	}
}

func TestTranslateOnePerStatement(t *testing.T) {
	cfg, _ := syntax.Get("extended")
	stmts, err := parser.Parse(`alpha; beta; alpha \union alpha;`, cfg)
	require.NoError(t, err)
	roots, err := tree.NewBuilder(testSchema()).Build(stmts)
	require.NoError(t, err)

	out, err := Translate(roots)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for _, s := range out {
		assert.True(t, strings.HasPrefix(s, `\Tree[.$`))
	}
}

func TestTranslateBracketsBalanced(t *testing.T) {
	inputs := []string{
		`alpha;`,
		`\project_{a1} \select_{a1 = 1} (alpha \join_{a1 = b1} beta) \union \project_{a1} (gamma \join beta);`,
		`recent := \rename_{delta(d1, d2, d3)} \project_{a1, a2, a3} alpha;`,
	}

	for _, input := range inputs {
		depth := 0
		for _, ch := range translateOne(t, input) {
			switch ch {
			case '[':
				depth++
			case ']':
				depth--
			}
			require.GreaterOrEqual(t, depth, 0, "input %q", input)
		}
		assert.Zero(t, depth, "input %q", input)
	}
}
