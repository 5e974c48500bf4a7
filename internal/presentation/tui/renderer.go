package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/arbor/pkg/behavior"
)

// NewRenderer returns a function that renders markdown using glamour.
// It falls back to the raw markdown if no renderer can be built.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// Report summarizes a finished run.
type Report struct {
	Tree    string
	Ticks   uint64
	Last    behavior.Status
	Stopped bool
	// Counts holds how many ticks ended in each status.
	Counts map[behavior.Status]uint64
	Summary string
}

// Markdown renders the report as a markdown table.
func (r Report) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Run of `%s`\n\n", r.Tree)
	b.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Ticks | %d |\n", r.Ticks)
	fmt.Fprintf(&b, "| Last status | %s |\n", r.Last)
	fmt.Fprintf(&b, "| Stopped by condition | %t |\n", r.Stopped)
	for _, s := range []behavior.Status{behavior.Success, behavior.Failure, behavior.Running} {
		fmt.Fprintf(&b, "| %s ticks | %d |\n", s, r.Counts[s])
	}
	if r.Summary != "" {
		fmt.Fprintf(&b, "\n%s\n", r.Summary)
	}
	return b.String()
}
