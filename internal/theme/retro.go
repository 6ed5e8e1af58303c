package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"timebar/internal/progress"
)

const retroTimeLayout = "2006-01-02 15:04:05"

var retroBoldStyle = lipgloss.NewStyle().Bold(true)

// RetroTheme renders the session as a bracketed mission readout.
type RetroTheme struct{}

func (RetroTheme) Name() string { return "retro" }

func (t RetroTheme) Render(p progress.Progress, title string, width int) []string {
	var lines []string
	divider := repeatAtLeast("=", width)

	if title != "" {
		banner := fmt.Sprintf("[%s] FOCUS SESSION INITIATED", strings.ToUpper(title))
		lines = append(lines, retroBoldStyle.Render(banner))
	}

	lines = append(lines, divider)
	lines = append(lines, "[START]     "+p.Span.FormatFromAs(retroTimeLayout))
	lines = append(lines, "[END]       "+p.Span.FormatToAs(retroTimeLayout))
	lines = append(lines, fmt.Sprintf("[ELAPSED]   %d%% | %s", p.Percent(), p.FormatElapsed()))
	lines = append(lines, "[REMAINING] "+p.FormatRemaining())
	lines = append(lines, "")
	lines = append(lines, "[PROGRESS]")
	lines = append(lines, t.buildBar(p, width))
	lines = append(lines, divider)
	lines = append(lines, retroBoldStyle.Render("STATUS: > "+statusMessage(p.Percent())))
	lines = append(lines, divider)
	lines = append(lines, "(Q) QUIT | (CTRL+C) ABORT")
	return lines
}

func (RetroTheme) buildBar(p progress.Progress, width int) string {
	return "[" + buildBar(p.Ratio, width-2) + "]"
}

// statusMessage buckets the display percentage; every bucket boundary is
// inclusive on its upper end except the final catch-all.
func statusMessage(percent int) string {
	switch {
	case percent <= 10:
		return "MISSION INITIATED. LOCK AND LOAD, SOLDIER!"
	case percent <= 25:
		return "ENGAGING TARGET. MAINTAIN FOCUS AND DISCIPLINE."
	case percent <= 50:
		return "BATTLE IN PROGRESS. HOLD YOUR POSITION, WARRIOR!"
	case percent <= 75:
		return "VICTORY IS WITHIN REACH. PUSH FORWARD!"
	case percent <= 90:
		return "ALMOST THERE, SOLDIER! HOLD YOUR POSITION."
	case percent <= 99:
		return "FINAL ASSAULT! BREAK THROUGH THE ENEMY LINES!"
	default:
		return "MISSION ACCOMPLISHED! EXCELLENT WORK, SOLDIER!"
	}
}
