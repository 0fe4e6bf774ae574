package progress

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Lines writes one line per step. Used when output is not a terminal.
type Lines struct {
	w     io.Writer
	style lipgloss.Style
}

func NewLines(w io.Writer) *Lines {
	renderer := lipgloss.NewRenderer(w)
	return &Lines{
		w:     w,
		style: renderer.NewStyle().Foreground(lipgloss.Color("39")),
	}
}

func (l *Lines) Step(message string) {
	_, _ = fmt.Fprintln(l.w, l.style.Render("▶ "+message))
}

func (l *Lines) Stop() {}
