package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"timebar/internal/progress"
)

var (
	synthText   = lipgloss.NewStyle().Foreground(lipgloss.Color("#30C0B7")).Background(lipgloss.Color("#3B3255"))
	synthBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("#498099")).Background(lipgloss.Color("#3B3255"))
	synthBar    = lipgloss.NewStyle().Foreground(lipgloss.Color("#EE227D")).Background(lipgloss.Color("#3B3255"))
	synthAccent = lipgloss.NewStyle().Foreground(lipgloss.Color("#FD8083")).Background(lipgloss.Color("#3B3255"))
	synthFill   = lipgloss.NewStyle().Background(lipgloss.Color("#3B3255"))
)

// SynthwaveTheme is the neon box layout: the bar runs between the two
// boundary labels inside a double-ruled frame.
type SynthwaveTheme struct{}

func (SynthwaveTheme) Name() string { return "synthwave" }

func (t SynthwaveTheme) Render(p progress.Progress, title string, width int) []string {
	var lines []string

	if title != "" {
		banner := fmt.Sprintf("═ %s ═", strings.ToUpper(title))
		lines = append(lines, synthText.Bold(true).Render(banner))
	}

	lines = append(lines, synthBorder.Render("╔"+repeatAtLeast("═", width-2)+"╗"))
	lines = append(lines, t.buildBarLine(p, width))
	lines = append(lines, t.buildInfoLine(p, width))
	lines = append(lines, synthBorder.Render("╚"+repeatAtLeast("═", width-2)+"╝"))
	lines = append(lines, t.buildMessage(p, width))
	return lines
}

// barWidth is what remains of the row once the frame, the boundary labels
// and their surrounding spaces are accounted for.
func (SynthwaveTheme) barWidth(p progress.Progress, width int) int {
	w := width - 8 - len(p.Span.FormatFrom()) - len(p.Span.FormatTo())
	if w < 0 {
		w = 0
	}
	return w
}

func (t SynthwaveTheme) buildBarLine(p progress.Progress, width int) string {
	bar := buildBar(p.Ratio, t.barWidth(p, width))
	return synthBorder.Render("║") +
		synthFill.Render(" ") +
		synthText.Bold(true).Render(p.Span.FormatFrom()) +
		synthFill.Render("  ") +
		synthBar.Render(bar) +
		synthFill.Render("  ") +
		synthText.Bold(true).Render(p.Span.FormatTo()) +
		synthFill.Render(" ") +
		synthBorder.Render("║")
}

func (t SynthwaveTheme) buildInfoLine(p progress.Progress, width int) string {
	info := fmt.Sprintf("%d%% | %s elapsed | %s remaining",
		p.Percent(), p.FormatElapsed(), p.FormatRemaining())

	// Align the info text with the start of the bar above it.
	leftPad := 1 + len(p.Span.FormatFrom()) + 2
	rightPad := width - 2 - leftPad - len(info)
	if rightPad < 0 {
		rightPad = 0
	}
	return synthBorder.Render("║") +
		synthFill.Render(strings.Repeat(" ", leftPad)) +
		synthText.Bold(true).Render(info) +
		synthFill.Render(strings.Repeat(" ", rightPad)) +
		synthBorder.Render("║")
}

func (t SynthwaveTheme) buildMessage(p progress.Progress, width int) string {
	symbol, message := "⚡", "KEEP THE ENERGY FLOWING"
	if p.IsComplete() {
		symbol, message = "✔", "COMPLETED"
	}
	full := fmt.Sprintf("%s %s %s", symbol, message, symbol)

	leftPad := (width - len([]rune(full))) / 2
	if leftPad < 0 {
		leftPad = 0
	}
	return synthFill.Render(strings.Repeat(" ", leftPad)) +
		synthAccent.Bold(true).Render(full)
}
