package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"onec/compiler-go/pkg/ast"
)

// ColorMode selects whether rendered diagnostics carry ANSI styling.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// RenderOptions configures RenderHuman.
type RenderOptions struct {
	// Path is shown in the location line; empty means "<input>".
	Path      string
	Color     ColorMode
	MaxErrors int
}

type palette struct {
	plain    bool
	severity lipgloss.Style
	message  lipgloss.Style
	location lipgloss.Style
	gutter   lipgloss.Style
	caret    lipgloss.Style
}

func newPalette(w io.Writer, mode ColorMode) palette {
	if mode == ColorNever {
		return palette{plain: true}
	}
	r := lipgloss.NewRenderer(w)
	if mode == ColorAlways {
		r.SetColorProfile(termenv.ANSI)
	}
	return palette{
		severity: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		message:  r.NewStyle().Bold(true),
		location: r.NewStyle().Foreground(lipgloss.Color("12")),
		gutter:   r.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		caret:    r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

func (p palette) paint(style lipgloss.Style, text string) string {
	if p.plain || text == "" {
		return text
	}
	return style.Render(text)
}

// RenderHuman writes diags in a compiler-style layout with a source excerpt.
func RenderHuman(w io.Writer, src string, diags []Diagnostic, opts RenderOptions) error {
	p := newPalette(w, opts.Color)
	lines := strings.Split(src, "\n")
	path := opts.Path
	if path == "" {
		path = "<input>"
	}

	shown := diags
	if opts.MaxErrors > 0 && len(diags) > opts.MaxErrors {
		shown = diags[:opts.MaxErrors]
	}

	var b strings.Builder
	for _, d := range shown {
		header := d.Severity.String()
		if d.Code != "" {
			header += "[" + string(d.Code) + "]"
		}
		fmt.Fprintf(&b, "%s: %s\n", p.paint(p.severity, header), p.paint(p.message, d.Message))

		start := d.Span.Start
		if start.Line <= 0 {
			continue
		}
		gutterWidth := len(fmt.Sprint(start.Line))
		pad := strings.Repeat(" ", gutterWidth)
		fmt.Fprintf(&b, "%s%s %s\n", pad, p.paint(p.gutter, "-->"), p.paint(p.location, fmt.Sprintf("%s:%d:%d", path, start.Line, start.Column)))
		if start.Line > len(lines) {
			continue
		}
		line := lines[start.Line-1]
		bar := p.paint(p.gutter, "|")
		fmt.Fprintf(&b, "%s %s\n", pad, bar)
		fmt.Fprintf(&b, "%s %s %s\n", p.paint(p.gutter, fmt.Sprint(start.Line)), bar, line)
		fmt.Fprintf(&b, "%s %s %s%s\n", pad, bar, caretIndent(line, start.Column), p.paint(p.caret, strings.Repeat("^", caretWidth(d.Span))))
		for _, label := range d.Labels {
			fmt.Fprintf(&b, "%s %s note: %d:%d %s\n", pad, p.paint(p.gutter, "="), label.Span.Start.Line, label.Span.Start.Column, label.Message)
		}
	}
	if hidden := len(diags) - len(shown); hidden > 0 {
		fmt.Fprintf(&b, "... and %d more\n", hidden)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderCodes writes one diagnostic code per line.
func RenderCodes(w io.Writer, diags []Diagnostic) error {
	var b strings.Builder
	for _, d := range diags {
		if d.Code == "" {
			continue
		}
		b.WriteString(string(d.Code))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// caretIndent mirrors the characters before column so tabs line up.
func caretIndent(line string, column int) string {
	var b strings.Builder
	n := 1
	for _, r := range line {
		if n >= column {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteByte(' ')
		}
		n++
	}
	for ; n < column; n++ {
		b.WriteByte(' ')
	}
	return b.String()
}

func caretWidth(span ast.Span) int {
	if span.End.Line == span.Start.Line && span.End.Column > span.Start.Column {
		return span.End.Column - span.Start.Column
	}
	return 1
}
