// Package output prints decoded log records for the filelog CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/philipp01105/filelog/core"
)

// Renderer writes records to an output stream.
type Renderer interface {
	Render(rec core.Record) error
}

// New returns the renderer for format ("json" or anything else for text).
func New(format string, w io.Writer) Renderer {
	if format == "json" {
		return NewJSONRenderer(w)
	}
	return NewTextRenderer(w)
}

// ---------------------------------------------------------------------------
// Text Renderer (colorized terminal output)
// ---------------------------------------------------------------------------

// TextRenderer prints records with severity-based colors.
// Colors are dropped automatically when w is not a terminal.
type TextRenderer struct {
	w      io.Writer
	styles map[string]lipgloss.Style
	def    lipgloss.Style
	ts     lipgloss.Style
}

// NewTextRenderer returns a Renderer that writes colorized text to w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	r := lipgloss.NewRenderer(w)
	return &TextRenderer{
		w: w,
		styles: map[string]lipgloss.Style{
			"TRACE": r.NewStyle().Foreground(lipgloss.Color("245")).Faint(true),
			"DEBUG": r.NewStyle().Foreground(lipgloss.Color("245")).Faint(true),
			"WARN":  r.NewStyle().Foreground(lipgloss.Color("220")),            // yellow
			"ERROR": r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // red bold
			"FATAL": r.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("196")).
				Bold(true), // white on red
		},
		def: r.NewStyle().Foreground(lipgloss.Color("245")), // gray
		ts:  r.NewStyle().Foreground(lipgloss.Color("39")).Faint(true),
	}
}

func (r *TextRenderer) Render(rec core.Record) error {
	style, ok := r.styles[rec.Level]
	if !ok {
		style = r.def
	}
	tag := style.Render(fmt.Sprintf("%-5s", rec.Level))

	_, err := fmt.Fprintf(r.w, "%s %s %s\n", r.ts.Render(rec.TimeStamp), tag, rec.Message)
	return err
}

// ---------------------------------------------------------------------------
// JSON Renderer (structured output for piping)
// ---------------------------------------------------------------------------

// JSONRenderer prints each record as a single JSON object per line.
type JSONRenderer struct {
	enc *json.Encoder
}

// NewJSONRenderer returns a Renderer that writes JSON lines to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{enc: json.NewEncoder(w)}
}

func (r *JSONRenderer) Render(rec core.Record) error {
	return r.enc.Encode(rec)
}
