package theme

import (
	"strings"
	"testing"
)

func TestDefaultBarGlyphCounts(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{0.0, strings.Repeat("░", 20)},
		{0.5, strings.Repeat("█", 10) + strings.Repeat("░", 10)},
		{1.0, strings.Repeat("█", 20)},
	}
	for _, tt := range tests {
		if got := buildBar(tt.ratio, 20); got != tt.want {
			t.Errorf("buildBar(%v, 20) = %q, want %q", tt.ratio, got, tt.want)
		}
	}
}

func TestDefaultBarAlwaysFillsWidth(t *testing.T) {
	for _, ratio := range []float64{0, 0.01, 0.33, 0.5, 0.99, 1} {
		for _, width := range []int{1, 7, 20, 80} {
			bar := buildBar(ratio, width)
			if n := len([]rune(bar)); n != width {
				t.Errorf("buildBar(%v, %d): %d glyphs", ratio, width, n)
			}
		}
	}
}

func TestDefaultRenderLayout(t *testing.T) {
	p := progressAt(t, "2025-06-01 10:00:00", "2025-06-01 12:00:00", "2025-06-01 11:00:00")
	lines := DefaultTheme{}.Render(p, "", 40)

	// Three bars, six box lines, quit hint.
	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10", len(lines))
	}

	bar := strings.Repeat("█", 20) + strings.Repeat("░", 20)
	for i := 0; i < 3; i++ {
		if lines[i] != bar {
			t.Errorf("line %d = %q, want full-width bar", i, lines[i])
		}
	}

	if lines[3] != "┌"+strings.Repeat("─", 38)+"┐" {
		t.Errorf("box top = %q", lines[3])
	}
	if !strings.HasPrefix(lines[4], "│ Start  10:00") {
		t.Errorf("start line = %q", lines[4])
	}
	if !strings.HasPrefix(lines[5], "│ End    12:00") {
		t.Errorf("end line = %q", lines[5])
	}
	if lines[6] != "├"+strings.Repeat("─", 38)+"┤" {
		t.Errorf("separator = %q", lines[6])
	}
	if !strings.Contains(lines[7], "50%") || !strings.Contains(lines[7], "1 h elapsed") {
		t.Errorf("summary = %q", lines[7])
	}
	if lines[8] != "└"+strings.Repeat("─", 38)+"┘" {
		t.Errorf("box bottom = %q", lines[8])
	}
	if !strings.Contains(lines[9], "(q) quit") {
		t.Errorf("quit hint = %q", lines[9])
	}
}

func TestDefaultBoxLinesMatchWidth(t *testing.T) {
	p := progressAt(t, "2025-06-01 10:00:00", "2025-06-01 12:00:00", "2025-06-01 11:00:00")
	lines := DefaultTheme{}.Render(p, "", 40)
	for i := 3; i <= 8; i++ {
		if n := len([]rune(lines[i])); n != 40 {
			t.Errorf("line %d is %d cells, want 40: %q", i, n, lines[i])
		}
	}
}

func TestDefaultTitleAddsHeader(t *testing.T) {
	p := progressAt(t, "2025-06-01 10:00:00", "2025-06-01 12:00:00", "2025-06-01 11:00:00")
	without := DefaultTheme{}.Render(p, "", 40)
	with := DefaultTheme{}.Render(p, "deep work", 40)

	if len(with) != len(without)+2 {
		t.Fatalf("title should add a title and rule line: %d vs %d", len(with), len(without))
	}
	if !strings.Contains(with[0], "deep work") {
		t.Errorf("first line = %q, want title", with[0])
	}
	if with[1] != strings.Repeat("─", 40) {
		t.Errorf("second line = %q, want rule", with[1])
	}
}

func TestDefaultCompletedSummary(t *testing.T) {
	p := progressAt(t, "2025-06-01 10:00:00", "2025-06-01 12:00:00", "2025-06-01 13:00:00")
	lines := DefaultTheme{}.Render(p, "", 40)
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "100%  completed") {
		t.Errorf("completed render missing summary: %q", joined)
	}
}
