package tui

import (
	"fmt"

	"github.com/muesli/termenv"

	"github.com/aretw0/arbor/pkg/behavior"
)

// Status colors s for the given profile: green for success, red for failure
// and yellow while running.
func Status(p termenv.Profile, s behavior.Status) string {
	out := p.String(s.String())
	switch s {
	case behavior.Success:
		out = out.Foreground(p.Color("#22c55e")).Bold()
	case behavior.Failure:
		out = out.Foreground(p.Color("#ef4444")).Bold()
	case behavior.Running:
		out = out.Foreground(p.Color("#eab308"))
	}
	return out.String()
}

// TickLine formats one tick for the run output.
func TickLine(p termenv.Profile, n uint64, s behavior.Status, summary string) string {
	return fmt.Sprintf("tick %3d  %s  %s", n, Status(p, s), summary)
}
