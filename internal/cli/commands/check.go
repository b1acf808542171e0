package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	var showSchema bool

	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Validate relational algebra input without translating",
		Long: `Parse and validate relational algebra statements.

Reports the first syntax or semantic error found. With --show-schema
the relation schema after processing, including relations added by
assignment and definition statements, is printed.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := GetConfig(ctx)
			renderer := GetRenderer(ctx)

			eng, err := newEngine(ctx)
			if err != nil {
				return err
			}

			sources := args
			if len(sources) == 0 {
				sources = []string{"-"}
			}

			for _, path := range sources {
				var input []byte
				if path == "-" {
					input, err = io.ReadAll(cmd.InOrStdin())
				} else {
					input, err = os.ReadFile(path)
				}
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", path, err)
				}

				s, err := loadSchema(cfg)
				if err != nil {
					return err
				}
				n, err := eng.Check(string(input), s)
				if err != nil {
					if path != "-" {
						return fmt.Errorf("%s: %w", path, err)
					}
					return err
				}

				label := path
				if label == "-" {
					label = "stdin"
				}
				renderer.Successf("%s: %d statements ok", label, n)
				if showSchema {
					if err := renderer.Schema(s); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSchema, "show-schema", false, "Print the schema after processing each input")
	return cmd
}
