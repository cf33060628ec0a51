package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes command results, one line per call. Styling is applied only
// when color is enabled, so piped output stays plain and machine-readable.
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a Printer for w, detecting color support with ColorEnabled.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{out: w, color: ColorEnabled(w)}
}

// NewPlainPrinter creates a Printer that never styles its output.
func NewPlainPrinter(w io.Writer) *Printer {
	return &Printer{out: w}
}

// Styled reports whether output is styled for a terminal.
func (p *Printer) Styled() bool { return p.color }

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

// Line prints s unstyled.
func (p *Printer) Line(s string) {
	fmt.Fprintln(p.out, s)
}

// Path prints a bare path, styled as a path.
func (p *Printer) Path(path string) {
	fmt.Fprintln(p.out, p.render(PathStyle, path))
}

// Success prints "✓ <path> <note>".
func (p *Printer) Success(path, note string) {
	fmt.Fprintf(p.out, "%s %s %s\n",
		p.render(SuccessStyle, SymbolCheck), p.render(PathStyle, path), p.render(MutedStyle, note))
}

// Skipped prints "• <path> <note>" for paths where nothing was done.
func (p *Printer) Skipped(path, note string) {
	fmt.Fprintf(p.out, "%s %s %s\n",
		p.render(MutedStyle, SymbolBullet), p.render(PathStyle, path), p.render(MutedStyle, note))
}

// Failure prints "✗ <subject> <note>".
func (p *Printer) Failure(subject, note string) {
	fmt.Fprintf(p.out, "%s %s %s\n",
		p.render(ErrorStyle, SymbolCross), subject, p.render(WarningStyle, note))
}

// Mapping prints "<from> → <to>".
func (p *Printer) Mapping(from, to string) {
	fmt.Fprintf(p.out, "%s %s %s\n", from, p.render(MutedStyle, SymbolArrowRight), p.render(PathStyle, to))
}
