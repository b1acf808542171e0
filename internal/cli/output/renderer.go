// Package output renders compiler results for the terminal.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/raql-dev/raql/pkg/schema"
)

// Mode selects the rendering format.
type Mode string

// Rendering modes.
const (
	ModeText Mode = "text"
	ModeJSON Mode = "json"
)

// Renderer writes compiler output in the configured mode.
type Renderer struct {
	out  io.Writer
	err  io.Writer
	mode Mode
}

// NewRenderer creates a renderer over the given writers.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeText
	}
	return &Renderer{out: out, err: errOut, mode: mode}
}

// Statements renders one translated statement per line. In JSON mode
// the statements appear as an array under the given key, tagged with
// the source name when one is set.
func (r *Renderer) Statements(source, key string, stmts []string) error {
	if r.mode == ModeJSON {
		payload := map[string]any{key: stmts}
		if source != "" {
			payload["source"] = source
		}
		return r.renderJSON(payload)
	}
	if source != "" {
		_, _ = fmt.Fprintf(r.out, "-- %s\n", source)
	}
	for _, stmt := range stmts {
		_, _ = fmt.Fprintln(r.out, stmt)
	}
	return nil
}

// Schema renders the relation schema as a table, or as a name to
// attribute-list mapping in JSON mode.
func (r *Renderer) Schema(s *schema.Schema) error {
	if r.mode == ModeJSON {
		return r.renderJSON(s.ToMap())
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Relation", "Attributes"})
	for _, name := range s.Relations() {
		attrs, err := s.Attributes(name)
		if err != nil {
			return err
		}
		t.AppendRow(table.Row{name, strings.Join(attrs, ", ")})
	}
	t.Render()
	return nil
}

// Successf prints a formatted status line on stdout in text mode.
// JSON mode suppresses it so the output stays machine-readable.
func (r *Renderer) Successf(format string, args ...any) {
	if r.mode == ModeJSON {
		return
	}
	_, _ = fmt.Fprintf(r.out, format+"\n", args...)
}

// Errorf prints a formatted error line on stderr.
func (r *Renderer) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.err, format+"\n", args...)
}

func (r *Renderer) renderJSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
