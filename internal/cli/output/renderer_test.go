package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raql-dev/raql/pkg/schema"
)

func TestStatementsText(t *testing.T) {
	out := new(bytes.Buffer)
	r := NewRenderer(out, out, ModeText)

	require.NoError(t, r.Statements("queries.ra", "sql", []string{"SELECT 1", "SELECT 2"}))
	assert.Equal(t, "-- queries.ra\nSELECT 1\nSELECT 2\n", out.String())
}

func TestStatementsTextNoSource(t *testing.T) {
	out := new(bytes.Buffer)
	r := NewRenderer(out, out, ModeText)

	require.NoError(t, r.Statements("", "sql", []string{"SELECT 1"}))
	assert.Equal(t, "SELECT 1\n", out.String())
}

func TestStatementsJSON(t *testing.T) {
	out := new(bytes.Buffer)
	r := NewRenderer(out, out, ModeJSON)

	require.NoError(t, r.Statements("queries.ra", "sql", []string{"SELECT 1"}))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &payload))
	assert.Equal(t, "queries.ra", payload["source"])
	assert.Equal(t, []any{"SELECT 1"}, payload["sql"])
}

func TestSchemaTable(t *testing.T) {
	out := new(bytes.Buffer)
	r := NewRenderer(out, out, ModeText)

	s := schema.FromMap(map[string][]string{"movies": {"title", "year"}})
	require.NoError(t, r.Schema(s))

	assert.Contains(t, out.String(), "movies")
	assert.Contains(t, out.String(), "title, year")
}

func TestSchemaJSON(t *testing.T) {
	out := new(bytes.Buffer)
	r := NewRenderer(out, out, ModeJSON)

	s := schema.FromMap(map[string][]string{"movies": {"title", "year"}})
	require.NoError(t, r.Schema(s))

	var payload map[string][]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &payload))
	assert.Equal(t, []string{"title", "year"}, payload["movies"])
}

func TestSuccessfSuppressedInJSONMode(t *testing.T) {
	out := new(bytes.Buffer)
	r := NewRenderer(out, out, ModeJSON)

	r.Successf("done")
	assert.Empty(t, out.String())
}
