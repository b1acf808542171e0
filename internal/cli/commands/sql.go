package commands

import (
	"github.com/spf13/cobra"

	"github.com/raql-dev/raql/internal/engine"
	"github.com/raql-dev/raql/pkg/schema"
)

// NewSQLCommand creates the sql command.
func NewSQLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sql [file...]",
		Short: "Translate relational algebra to SQL",
		Long: `Translate relational algebra statements to SQL.

Reads the named files, or standard input when no files are given, and
prints one SQL statement per input statement. Definition statements and
non-key dependency declarations produce no SQL.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return compileSources(cmd, args, "sql",
				func(e *engine.Engine, input string, s *schema.Schema) ([]string, error) {
					return e.ToSQL(input, s)
				})
		},
	}
}
