package tui

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Styler colours command output. Without colour every method returns its
// input unchanged.
type Styler struct {
	out *termenv.Output
}

// NewStyler creates a Styler writing to w. Colour is only used when color is
// true; callers usually pass IsTerminal for the destination.
func NewStyler(w io.Writer, color bool) *Styler {
	profile := termenv.Ascii
	if color {
		profile = termenv.EnvColorProfile()
	}
	return &Styler{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// OK styles a success line.
func (s *Styler) OK(text string) string {
	return s.out.String(text).Foreground(s.out.Color("#34d399")).String()
}

// Fail styles a diagnostic.
func (s *Styler) Fail(text string) string {
	return s.out.String(text).Foreground(s.out.Color("#fb7185")).Bold().String()
}

// Faint styles secondary information such as a signature.
func (s *Styler) Faint(text string) string {
	return s.out.String(text).Foreground(s.out.Color("#a78bfa")).Faint().String()
}
