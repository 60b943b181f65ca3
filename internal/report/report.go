// Package report prints the human-readable progress of a sync run. Lines are
// styled with lipgloss when the writer is a terminal and left plain otherwise.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Reporter writes status lines to an io.Writer.
type Reporter struct {
	w io.Writer

	title   lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	fail    lipgloss.Style
	muted   lipgloss.Style
}

// New returns a Reporter writing to w.
func New(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		w:       w,
		title:   r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("3")),
		fail:    r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		muted:   r.NewStyle().Faint(true),
	}
}

// Title prints a bold heading followed by a rule.
func (r *Reporter) Title(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	r.line(r.title.Render(text))
	r.Rule()
}

// Rule prints a horizontal separator.
func (r *Reporter) Rule() {
	r.line(r.muted.Render(strings.Repeat("=", 40)))
}

// Section starts a new block preceded by a blank line.
func (r *Reporter) Section(format string, args ...any) {
	r.line("")
	r.line(r.title.Render(fmt.Sprintf(format, args...)))
}

// Info prints a plain status line.
func (r *Reporter) Info(format string, args ...any) {
	r.line(fmt.Sprintf(format, args...))
}

// Success prints a line marking a completed step.
func (r *Reporter) Success(format string, args ...any) {
	r.line(r.success.Render("✅ " + fmt.Sprintf(format, args...)))
}

// Warn prints a non-fatal problem; the run continues.
func (r *Reporter) Warn(format string, args ...any) {
	r.line(r.warn.Render("⚠️  " + fmt.Sprintf(format, args...)))
}

// Error prints a failure of a single step.
func (r *Reporter) Error(format string, args ...any) {
	r.line(r.fail.Render("❌ " + fmt.Sprintf(format, args...)))
}

// Item prints an indented list entry.
func (r *Reporter) Item(format string, args ...any) {
	r.line("   - " + fmt.Sprintf(format, args...))
}

func (r *Reporter) line(s string) {
	fmt.Fprintln(r.w, s)
}
