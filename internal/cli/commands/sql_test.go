package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raql-dev/raql/internal/cli/config"
	"github.com/raql-dev/raql/internal/cli/output"
)

// newTestContext builds a context carrying config and a renderer over
// the returned buffers.
func newTestContext(t *testing.T, cfg *config.Config) (context.Context, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	ctx := WithConfig(context.Background(), cfg)
	ctx = WithRenderer(ctx, output.NewRenderer(out, errOut, output.Mode(cfg.OutputFormat)))
	return ctx, out, errOut
}

func writeInputFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testConfig(schemaPath string) *config.Config {
	return &config.Config{
		Grammar:      config.DefaultGrammar,
		Semantics:    config.DefaultSemantics,
		SchemaPath:   schemaPath,
		OutputFormat: config.DefaultOutput,
	}
}

func execute(t *testing.T, cmd *cobra.Command, ctx context.Context, args ...string) error {
	t.Helper()
	cmd.SetArgs(args)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	return cmd.ExecuteContext(ctx)
}

func TestSQLCommandFromFile(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeInputFile(t, dir, "schema.yaml", "movies: [title, year]\n")
	input := writeInputFile(t, dir, "query.ra", `\project_{title} movies;`)

	ctx, out, _ := newTestContext(t, testConfig(schemaPath))
	require.NoError(t, execute(t, NewSQLCommand(), ctx, input))

	assert.Equal(t, "SELECT DISTINCT movies.title FROM movies\n", out.String())
}

func TestSQLCommandFromStdin(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeInputFile(t, dir, "schema.yaml", "movies: [title, year]\n")

	ctx, out, _ := newTestContext(t, testConfig(schemaPath))
	cmd := NewSQLCommand()
	cmd.SetIn(strings.NewReader(`movies;`))
	require.NoError(t, execute(t, cmd, ctx))

	assert.Equal(t, "SELECT DISTINCT movies.title, movies.year FROM movies\n", out.String())
}

func TestSQLCommandPreservesFileOrder(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeInputFile(t, dir, "schema.yaml", "movies: [title, year]\nwatched: [title, year]\n")
	first := writeInputFile(t, dir, "first.ra", `\project_{title} movies;`)
	second := writeInputFile(t, dir, "second.ra", `watched;`)

	ctx, out, _ := newTestContext(t, testConfig(schemaPath))
	require.NoError(t, execute(t, NewSQLCommand(), ctx, first, second))

	text := out.String()
	firstAt := strings.Index(text, "-- "+first)
	secondAt := strings.Index(text, "-- "+second)
	require.GreaterOrEqual(t, firstAt, 0)
	require.Greater(t, secondAt, firstAt)
}

func TestSQLCommandSchemaIsolation(t *testing.T) {
	// An assignment in one file must not register the relation for the
	// next file.
	dir := t.TempDir()
	schemaPath := writeInputFile(t, dir, "schema.yaml", "movies: [title, year]\n")
	first := writeInputFile(t, dir, "first.ra", `recent := \select_{year > 1999} movies;`)
	second := writeInputFile(t, dir, "second.ra", `recent;`)

	ctx, _, _ := newTestContext(t, testConfig(schemaPath))
	err := execute(t, NewSQLCommand(), ctx, first, second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestSQLCommandReportsFileInError(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeInputFile(t, dir, "schema.yaml", "movies: [title, year]\n")
	input := writeInputFile(t, dir, "bad.ra", `movies`)

	ctx, _, _ := newTestContext(t, testConfig(schemaPath))
	err := execute(t, NewSQLCommand(), ctx, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.ra")
}

func TestQTreeCommandFromFile(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeInputFile(t, dir, "schema.yaml", "movies: [title, year]\n")
	input := writeInputFile(t, dir, "query.ra", `\project_{title} movies;`)

	ctx, out, _ := newTestContext(t, testConfig(schemaPath))
	require.NoError(t, execute(t, NewQTreeCommand(), ctx, input))

	assert.Equal(t, `\Tree[.$\pi_{title}$ [.$movies$ ] ]`+"\n", out.String())
}

func TestSQLCommandJSONOutput(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeInputFile(t, dir, "schema.yaml", "movies: [title, year]\n")
	input := writeInputFile(t, dir, "query.ra", `movies;`)

	cfg := testConfig(schemaPath)
	cfg.OutputFormat = "json"
	ctx, out, _ := newTestContext(t, cfg)
	require.NoError(t, execute(t, NewSQLCommand(), ctx, input))

	assert.Contains(t, out.String(), `"sql"`)
	assert.Contains(t, out.String(), "SELECT DISTINCT movies.title, movies.year FROM movies")
}
