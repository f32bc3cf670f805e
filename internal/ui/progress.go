package ui

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

var (
	stepStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Progress reports the files a run writes as a numbered step list.
// Steps are reported in order from a single goroutine.
type Progress struct {
	out   io.Writer
	total int
	n     int
	root  string
	color bool
}

// NewProgress creates a progress reporter for total steps. Paths under root
// are printed relative to it.
func NewProgress(out io.Writer, total int, root string) *Progress {
	return &Progress{out: out, total: total, root: root}
}

// WithColor enables styled step markers.
func (p *Progress) WithColor(on bool) *Progress {
	p.color = on
	return p
}

// Wrote records one written file.
func (p *Progress) Wrote(path string) {
	p.n++
	marker := fmt.Sprintf("[%d/%d]", p.n, p.total)
	if p.color {
		marker = stepStyle.Render(marker)
	}
	_, _ = fmt.Fprintf(p.out, "%s wrote %s\n", marker, p.rel(path))
}

// Warn prints a highlighted message.
func (p *Progress) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.color {
		msg = warnStyle.Render(msg)
	}
	_, _ = fmt.Fprintln(p.out, msg)
}

// Log prints an informational message within the progress context.
func (p *Progress) Log(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Progress) rel(path string) string {
	if p.root == "" {
		return path
	}
	if r, err := filepath.Rel(p.root, path); err == nil {
		return filepath.ToSlash(r)
	}
	return path
}
