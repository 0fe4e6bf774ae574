// Package progress shows the user which step of the publish is running.
package progress

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Reporter receives a message before each step.
// Stop clears any transient output and must be safe to call more than once.
type Reporter interface {
	Step(message string)
	Stop()
}

// New picks an animated spinner when f is a terminal and plain lines otherwise.
func New(f *os.File) Reporter {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return NewSpinner(f)
	}
	return NewLines(f)
}
