package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal colors (ANSI palette indexes)
const (
	colorRed    = lipgloss.Color("1")
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorBlue   = lipgloss.Color("4")
	colorCyan   = lipgloss.Color("6")
	colorGray   = lipgloss.Color("8")
)

// Printer writes user-facing messages. Results go to out, failures to errOut.
// Styles are resolved per writer, so output to a pipe or buffer is plain text.
type Printer struct {
	out    io.Writer
	errOut io.Writer

	success lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	info    lipgloss.Style
	header  lipgloss.Style
	muted   lipgloss.Style
}

// NewPrinter creates a printer for the given writers
func NewPrinter(out, errOut io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	re := lipgloss.NewRenderer(errOut)

	return &Printer{
		out:     out,
		errOut:  errOut,
		success: r.NewStyle().Foreground(colorGreen),
		failure: re.NewStyle().Foreground(colorRed).Bold(true),
		warning: r.NewStyle().Foreground(colorYellow),
		info:    r.NewStyle().Foreground(colorBlue),
		header:  r.NewStyle().Foreground(colorCyan).Bold(true),
		muted:   r.NewStyle().Foreground(colorGray),
	}
}

// Success prints a success message
func (p *Printer) Success(message string) {
	fmt.Fprintln(p.out, p.success.Render("✅ "+message))
}

// Error prints an error message to the error writer
func (p *Printer) Error(message string) {
	fmt.Fprintln(p.errOut, p.failure.Render("❌ "+message))
}

// Hint prints an unstyled follow-up line to the error writer
func (p *Printer) Hint(message string) {
	fmt.Fprintln(p.errOut, message)
}

// Warning prints a warning message
func (p *Printer) Warning(message string) {
	fmt.Fprintln(p.out, p.warning.Render("⚠️  "+message))
}

// Info prints an informational message
func (p *Printer) Info(message string) {
	fmt.Fprintln(p.out, p.info.Render("ℹ️  "+message))
}

// Header prints a section header
func (p *Printer) Header(message string) {
	fmt.Fprintln(p.out, p.header.Render(message))
}

// Entry prints one listing line, indented under a header. detail, when not
// empty, is appended in a muted style.
func (p *Printer) Entry(icon, name, detail string) {
	line := "  " + icon + " " + name
	if detail != "" {
		line += "  " + p.muted.Render(detail)
	}
	fmt.Fprintln(p.out, line)
}

// Plain prints text as is
func (p *Printer) Plain(text string) {
	fmt.Fprint(p.out, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(p.out)
	}
}
