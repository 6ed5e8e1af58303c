// Package theme turns a progress snapshot into styled display lines in
// one of a small, fixed set of visual styles. Themes are pure: the same
// (progress, title, width) input always yields the same lines, and all
// terminal I/O stays with the caller.
package theme

import (
	"math"
	"sort"
	"strings"

	"timebar/internal/progress"
)

const (
	cellFilled = "█"
	cellEmpty  = "░"
)

type Theme interface {
	Name() string

	// Render produces the frame for one tick, top to bottom. The line
	// count is len(result). Width is sampled by the caller per render
	// and must not be cached here; it can change between ticks.
	Render(p progress.Progress, title string, width int) []string
}

var registry = map[string]Theme{
	"default":   DefaultTheme{},
	"retro":     RetroTheme{},
	"synthwave": SynthwaveTheme{},
	"hourglass": HourglassTheme{},
}

// FromName resolves a theme by name, case-insensitively. Unrecognized
// names fall back to the default theme.
func FromName(name string) Theme {
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return DefaultTheme{}
}

// Names lists the registered theme names, sorted, for help text.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fillCells maps a ratio onto a cell count, rounding half away from zero.
// Every theme uses this one rule so bars agree on boundary behavior:
// ratio 0 is fully empty and ratio 1 is fully full at any width.
func fillCells(ratio float64, width int) int {
	if width <= 0 {
		return 0
	}
	n := int(math.Round(ratio * float64(width)))
	if n < 0 {
		n = 0
	}
	if n > width {
		n = width
	}
	return n
}

func buildBar(ratio float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := fillCells(ratio, width)
	return strings.Repeat(cellFilled, filled) + strings.Repeat(cellEmpty, width-filled)
}

// padClip right-pads s with spaces to exactly width cells, clipping when
// it is too long. Widths below zero collapse to the empty string rather
// than underflowing.
func padClip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

// repeatAtLeast repeats s max(0, n) times.
func repeatAtLeast(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}
