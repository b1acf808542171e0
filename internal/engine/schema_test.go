package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSchemaFileYAML(t *testing.T) {
	path := writeTestFile(t, "schema.yaml", `
movies:
  - title
  - year
watched:
  - title
  - year
`)

	s, err := LoadSchemaFile(path)
	require.NoError(t, err)

	attrs, err := s.Attributes("movies")
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "year"}, attrs)
	assert.True(t, s.Contains("watched"))
}

func TestLoadSchemaFileDefinitions(t *testing.T) {
	path := writeTestFile(t, "schema.ra", `
movies(title, year);
watched(title, year);
`)

	s, err := LoadSchemaFile(path)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"movies", "watched"}, s.Relations())
	attrs, err := s.Attributes("watched")
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "year"}, attrs)
}

func TestLoadSchemaFileRejectsQueries(t *testing.T) {
	path := writeTestFile(t, "schema.ra", `
movies(title, year);
movies;
`)

	_, err := LoadSchemaFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "definition statements")
}

func TestLoadSchemaFileMissing(t *testing.T) {
	_, err := LoadSchemaFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadSchemaFileBadYAML(t *testing.T) {
	path := writeTestFile(t, "schema.yaml", "movies: {title")

	_, err := LoadSchemaFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema yaml")
}
