// Package render styles the narration printed by the demonstrations.
// Colours degrade to plain text when the writer is not a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type Styles struct {
	Banner  lipgloss.Style
	Header  lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Muted   lipgloss.Style
}

func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Banner: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8BC34A")).
			Padding(0, 2).
			Bold(true),
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#2196F3")).
			Bold(true),
		Success: r.NewStyle().
			Foreground(lipgloss.Color("#8BC34A")).
			Bold(true),
		Failure: r.NewStyle().
			Foreground(lipgloss.Color("#e53935")).
			Bold(true),
		Muted: r.NewStyle().
			Faint(true),
	}
}

// Printer writes styled lines to the underlying writer
type Printer struct {
	out      *termenv.Output
	renderer *lipgloss.Renderer
	styles   Styles
}

func New(w io.Writer, noColor bool) *Printer {
	var opts []termenv.OutputOption
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	out := termenv.NewOutput(w, opts...)

	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(out.Profile)
	return &Printer{out: out, renderer: renderer, styles: NewStyles(renderer)}
}

// Plain printer, used by tests and when output is redirected
func Plain(w io.Writer) *Printer {
	return New(w, true)
}

func (p *Printer) Writer() io.Writer {
	return p.out
}

func (p *Printer) Profile() termenv.Profile {
	return p.out.Profile
}

func (p *Printer) Styles() Styles {
	return p.styles
}

func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// Framed title opening a demonstration
func (p *Printer) Banner(title string) {
	fmt.Fprintln(p.out, p.styles.Banner.Render(title))
}

func (p *Printer) Header(format string, args ...any) {
	p.styled(p.styles.Header, format, args...)
}

func (p *Printer) Success(format string, args ...any) {
	p.styled(p.styles.Success, format, args...)
}

func (p *Printer) Failure(format string, args ...any) {
	p.styled(p.styles.Failure, format, args...)
}

func (p *Printer) Muted(format string, args ...any) {
	p.styled(p.styles.Muted, format, args...)
}

// Lines are styled one by one, lipgloss would pad a block to equal widths
func (p *Printer) styled(style lipgloss.Style, format string, args ...any) {
	lines := strings.Split(fmt.Sprintf(format, args...), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	fmt.Fprintln(p.out, strings.Join(lines, "\n"))
}

// Emphasised inline text, the termenv way, for use inside Printf
func (p *Printer) Bold(s string) string {
	return p.out.String(s).Bold().String()
}
