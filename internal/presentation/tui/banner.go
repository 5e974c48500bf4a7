package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the arbor banner and version to w, colored for p.
func PrintBanner(w io.Writer, p termenv.Profile, version string) {
	// Greens, darkening toward the roots.
	lines := []struct {
		text, color string
	}{
		{"    _         _                ", "#86efac"},
		{"   /_\\  _ _ | |__  ___  _ _   ", "#4ade80"},
		{"  / _ \\| '_|| '_ \\/ _ \\| '_|  ", "#22c55e"},
		{" /_/ \\_\\_|  |_.__/\\___/|_|    ", "#16a34a"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, p.String("  v"+version).Faint())
	fmt.Fprintln(w)
}
