package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raql-dev/raql/pkg/token"
)

func TestGetBuiltins(t *testing.T) {
	for _, name := range []string{"core", "extended", "threevl", "dependency"} {
		cfg, ok := Get(name)
		require.True(t, ok, "grammar %q should be registered", name)
		assert.Equal(t, name, cfg.Name)
	}

	_, ok := Get("missing")
	assert.False(t, ok)
}

func TestGetIsCaseInsensitive(t *testing.T) {
	cfg, ok := Get("Extended")
	require.True(t, ok)
	assert.Equal(t, "extended", cfg.Name)
}

func TestList(t *testing.T) {
	names := List()
	assert.Contains(t, names, "core")
	assert.Contains(t, names, "extended")
	assert.Contains(t, names, "threevl")
	assert.Contains(t, names, "dependency")
	assert.IsIncreasing(t, names)
}

func TestCoreOperators(t *testing.T) {
	cfg := Core()

	assert.Equal(t, `\select`, cfg.SelectOp)
	assert.Equal(t, `\project`, cfg.ProjectOp)
	assert.Equal(t, `\rename`, cfg.RenameOp)
	assert.Equal(t, `:=`, cfg.AssignOp)
	assert.Equal(t, `\join`, cfg.JoinOp)
	assert.Equal(t, `\union`, cfg.UnionOp)
	assert.Equal(t, `\difference`, cfg.DifferenceOp)

	// Extended operators are absent from the core grammar
	assert.Empty(t, cfg.ThetaJoinOp)
	assert.Empty(t, cfg.IntersectOp)
	assert.Empty(t, cfg.DefinedOp)
}

func TestExtendedOperators(t *testing.T) {
	cfg := Extended()

	assert.Equal(t, `\theta_join`, cfg.ThetaJoinOp)
	assert.Equal(t, `\natural_join`, cfg.NaturalJoinOp)
	assert.Equal(t, `\full_outer_join`, cfg.FullOuterJoinOp)
	assert.Equal(t, `\left_outer_join`, cfg.LeftOuterJoinOp)
	assert.Equal(t, `\right_outer_join`, cfg.RightOuterJoinOp)
	assert.Equal(t, `\intersect`, cfg.IntersectOp)
	assert.Equal(t, "defined", cfg.DefinedOp)
}

func TestThreeVLOperators(t *testing.T) {
	cfg := ThreeVL()

	assert.Equal(t, "defined", cfg.DefinedOp)
	assert.Empty(t, cfg.ThetaJoinOp)
}

func TestDependencyOperators(t *testing.T) {
	cfg := Dependency()

	assert.Equal(t, "pk", cfg.PKOp)
	assert.Equal(t, "mvd", cfg.MVDOp)
	assert.Equal(t, "fd", cfg.FDOp)
	assert.Equal(t, "inc=", cfg.IncEquivOp)
	assert.Equal(t, "inc⊆", cfg.IncSubsetOp)
	// The dependency grammar contains the full extended operator set
	assert.Equal(t, `\theta_join`, cfg.ThetaJoinOp)
}

func TestSymbolsAndKeywords(t *testing.T) {
	cfg := Extended()

	symbols := cfg.Symbols()
	assert.Contains(t, symbols, `\select`)
	assert.Contains(t, symbols, `_{`)
	assert.Contains(t, symbols, `:=`)
	assert.Contains(t, symbols, `<>`)
	assert.NotContains(t, symbols, "and")

	keywords := cfg.Keywords()
	assert.Contains(t, keywords, "and")
	assert.Contains(t, keywords, "or")
	assert.Contains(t, keywords, "not")
	assert.Contains(t, keywords, "defined")
	assert.NotContains(t, keywords, `\select`)
}

func TestLookupKeyword(t *testing.T) {
	cfg := Extended()

	tok, ok := cfg.LookupKeyword("and")
	require.True(t, ok)
	assert.Equal(t, token.AND, tok)

	_, ok = cfg.LookupKeyword("pk")
	assert.False(t, ok, "pk is only a keyword in the dependency grammar")
}

func TestRegisterCustomNotation(t *testing.T) {
	c := Core()
	c.Name = "custom-notation"
	c.SelectOp = `\sigma`
	Register(c)

	got, ok := Get("custom-notation")
	require.True(t, ok)
	assert.Equal(t, `\sigma`, got.SelectOp)
}
