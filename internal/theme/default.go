package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"timebar/internal/progress"
)

var (
	defaultTitleStyle = lipgloss.NewStyle().Bold(true)
	defaultHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// DefaultTheme is the plain triple-bar layout with a boxed summary.
type DefaultTheme struct{}

func (DefaultTheme) Name() string { return "default" }

func (t DefaultTheme) Render(p progress.Progress, title string, width int) []string {
	var lines []string

	if title != "" {
		lines = append(lines, defaultTitleStyle.Render(title))
		lines = append(lines, repeatAtLeast("─", width))
	}

	bar := buildBar(p.Ratio, width)
	lines = append(lines, bar, bar, bar)

	// Box interior: two border runes plus one padding space a side.
	inner := width - 4
	lines = append(lines, "┌"+repeatAtLeast("─", width-2)+"┐")
	lines = append(lines, t.boxLine("Start  "+p.Span.FormatFrom(), inner))
	lines = append(lines, t.boxLine("End    "+p.Span.FormatTo(), inner))
	lines = append(lines, "├"+repeatAtLeast("─", width-2)+"┤")
	lines = append(lines, t.boxLine(t.summary(p), inner))
	lines = append(lines, "└"+repeatAtLeast("─", width-2)+"┘")

	lines = append(lines, defaultHelpStyle.Render("(q) quit"))
	return lines
}

func (DefaultTheme) boxLine(content string, inner int) string {
	return "│ " + padClip(content, inner) + " │"
}

func (DefaultTheme) summary(p progress.Progress) string {
	if p.IsComplete() {
		return fmt.Sprintf("%d%%  completed", p.Percent())
	}
	return fmt.Sprintf("%d%%  %s elapsed", p.Percent(), p.FormatElapsed())
}
