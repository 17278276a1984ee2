package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aretw0/insist/pkg/remover"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// StripReport describes, as markdown, which calls of source the remover
// deletes and which it keeps.
func StripReport(name string, source []byte, refs []remover.Reference) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", name)
	if len(refs) == 0 {
		b.WriteString("No assertion calls found.\n")
		return b.String()
	}

	b.WriteString("| Line | Call | Action |\n")
	b.WriteString("|-----:|------|--------|\n")
	removed := 0
	for _, ref := range refs {
		action := "removed"
		if ref.Shifting {
			action = "kept (result used)"
		} else {
			removed++
		}
		fmt.Fprintf(&b, "| %d | `%s` | %s |\n", Line(source, ref.Start), ref.Alias, action)
	}
	fmt.Fprintf(&b, "\n%d of %d calls removed.\n", removed, len(refs))
	return b.String()
}

// Line returns the 1-based line of offset. A leading newline belongs to the
// statement that follows it.
func Line(source []byte, offset int) int {
	if offset < len(source) && source[offset] == '\n' {
		offset++
	}
	if offset > len(source) {
		offset = len(source)
	}
	return bytes.Count(source[:offset], []byte("\n")) + 1
}
