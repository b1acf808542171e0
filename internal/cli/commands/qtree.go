package commands

import (
	"github.com/spf13/cobra"

	"github.com/raql-dev/raql/internal/engine"
	"github.com/raql-dev/raql/pkg/schema"
)

// NewQTreeCommand creates the qtree command.
func NewQTreeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "qtree [file...]",
		Short: "Translate relational algebra to LaTeX qtree markup",
		Long: `Translate relational algebra statements to LaTeX trees.

Each input statement becomes one \Tree line suitable for the tikz-qtree
package. Reads the named files, or standard input when no files are
given.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return compileSources(cmd, args, "qtree",
				func(e *engine.Engine, input string, s *schema.Schema) ([]string, error) {
					return e.ToQTree(input, s)
				})
		},
	}
}
