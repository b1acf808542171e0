package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/raql-dev/raql/pkg/schema"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive relational algebra session",
		Long: `Start an interactive session.

Statements are translated as soon as a terminating semicolon is read.
Assignment and definition statements extend the schema for the rest of
the session. Type .help for the session commands.`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
}

func runREPL(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := GetConfig(ctx)
	renderer := GetRenderer(ctx)

	eng, err := newEngine(ctx)
	if err != nil {
		return err
	}
	s, err := loadSchema(cfg)
	if err != nil {
		return err
	}

	historyFile := filepath.Join(os.TempDir(), "raql_history")
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "raql> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize session: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "raql (%s grammar, %s semantics)\n", eng.Grammar(), eng.Semantics())
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	// mode is "sql" or "qtree", switched with .mode
	mode := "sql"

	var buffer strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buffer.Reset()
			rl.SetPrompt("raql> ")
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if buffer.Len() == 0 && strings.HasPrefix(line, ".") {
			quit, err := handleSessionCommand(cmd, line, &mode, s)
			if err != nil {
				renderer.Errorf("Error: %v", err)
			}
			if quit {
				break
			}
			continue
		}

		// Accumulate until the statement terminator
		buffer.WriteString(line)
		if !strings.HasSuffix(line, ";") {
			buffer.WriteString(" ")
			rl.SetPrompt(" ...> ")
			continue
		}
		rl.SetPrompt("raql> ")

		input := buffer.String()
		buffer.Reset()

		var stmts []string
		if mode == "qtree" {
			stmts, err = eng.ToQTree(input, s)
		} else {
			stmts, err = eng.ToSQL(input, s)
		}
		if err != nil {
			renderer.Errorf("Error: %v", err)
			continue
		}
		if err := renderer.Statements("", mode, stmts); err != nil {
			return err
		}
	}
	return nil
}

func handleSessionCommand(cmd *cobra.Command, line string, mode *string, s *schema.Schema) (bool, error) {
	renderer := GetRenderer(cmd.Context())

	parts := strings.Fields(line)
	switch strings.ToLower(parts[0]) {
	case ".quit", ".exit":
		return true, nil

	case ".help":
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(out, "Commands:")
		_, _ = fmt.Fprintln(out, "  .schema         Show the current schema")
		_, _ = fmt.Fprintln(out, "  .mode sql|qtree Switch the output format")
		_, _ = fmt.Fprintln(out, "  .quit           Exit the session")
		return false, nil

	case ".schema":
		return false, renderer.Schema(s)

	case ".mode":
		if len(parts) != 2 || (parts[1] != "sql" && parts[1] != "qtree") {
			return false, fmt.Errorf("usage: .mode sql|qtree")
		}
		*mode = parts[1]
		renderer.Successf("output mode: %s", *mode)
		return false, nil

	default:
		return false, fmt.Errorf("unknown command %s", parts[0])
	}
}
