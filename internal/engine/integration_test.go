package engine

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raql-dev/raql/internal/testutil"
	"github.com/raql-dev/raql/pkg/schema"
)

// TestCompileAndExecutePostgres runs compiled statements against a real
// PostgreSQL instance. Set TEST_DATABASE_URL to enable it.
func TestCompileAndExecutePostgres(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, url)
	require.NoError(t, err)
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx, `CREATE TEMPORARY TABLE movies (title text, year int)`)
	require.NoError(t, err)
	_, err = conn.Exec(ctx, `INSERT INTO movies VALUES ('Magnolia', 1999), ('Memento', 2000), ('Memento', 2000)`)
	require.NoError(t, err)

	e, err := New(Config{Logger: testutil.NewTestLogger(t)})
	require.NoError(t, err)

	s := schema.FromMap(map[string][]string{"movies": {"title", "year"}})
	stmts, err := e.ToSQL(`recent := \select_{year > 1999} movies; \project_{title} recent;`, s)
	require.NoError(t, err)
	require.Len(t, stmts, 2)

	_, err = conn.Exec(ctx, stmts[0])
	require.NoError(t, err)

	rows, err := conn.Query(ctx, stmts[1])
	require.NoError(t, err)
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		require.NoError(t, rows.Scan(&title))
		titles = append(titles, title)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"Memento"}, titles)
}
