package theme

import (
	"strings"
	"testing"
)

func TestStatusMessageBuckets(t *testing.T) {
	tests := []struct {
		percent int
		want    string
	}{
		{0, "MISSION INITIATED. LOCK AND LOAD, SOLDIER!"},
		{5, "MISSION INITIATED. LOCK AND LOAD, SOLDIER!"},
		{10, "MISSION INITIATED. LOCK AND LOAD, SOLDIER!"},
		{11, "ENGAGING TARGET. MAINTAIN FOCUS AND DISCIPLINE."},
		{25, "ENGAGING TARGET. MAINTAIN FOCUS AND DISCIPLINE."},
		{26, "BATTLE IN PROGRESS. HOLD YOUR POSITION, WARRIOR!"},
		{50, "BATTLE IN PROGRESS. HOLD YOUR POSITION, WARRIOR!"},
		{51, "VICTORY IS WITHIN REACH. PUSH FORWARD!"},
		{75, "VICTORY IS WITHIN REACH. PUSH FORWARD!"},
		{76, "ALMOST THERE, SOLDIER! HOLD YOUR POSITION."},
		{90, "ALMOST THERE, SOLDIER! HOLD YOUR POSITION."},
		{91, "FINAL ASSAULT! BREAK THROUGH THE ENEMY LINES!"},
		{99, "FINAL ASSAULT! BREAK THROUGH THE ENEMY LINES!"},
		{100, "MISSION ACCOMPLISHED! EXCELLENT WORK, SOLDIER!"},
	}
	for _, tt := range tests {
		if got := statusMessage(tt.percent); got != tt.want {
			t.Errorf("statusMessage(%d) = %q, want %q", tt.percent, got, tt.want)
		}
	}
}

func TestRetroStatusFromRatio(t *testing.T) {
	early := progressAtRatio(t, 0.05)
	if got := statusMessage(early.Percent()); !strings.HasPrefix(got, "MISSION INITIATED") {
		t.Errorf("ratio 0.05 status = %q", got)
	}
	done := progressAtRatio(t, 1.0)
	if got := statusMessage(done.Percent()); !strings.HasPrefix(got, "MISSION ACCOMPLISHED") {
		t.Errorf("ratio 1.0 status = %q", got)
	}
}

func TestRetroBar(t *testing.T) {
	p := progressAtRatio(t, 0.5)
	bar := RetroTheme{}.buildBar(p, 20)

	want := "[" + strings.Repeat("█", 9) + strings.Repeat("░", 9) + "]"
	if bar != want {
		t.Errorf("buildBar = %q, want %q", bar, want)
	}
	if n := len([]rune(bar)); n != 20 {
		t.Errorf("bar is %d cells, want 20", n)
	}
}

func TestRetroBarBoundaries(t *testing.T) {
	empty := RetroTheme{}.buildBar(progressAtRatio(t, 0), 12)
	if empty != "["+strings.Repeat("░", 10)+"]" {
		t.Errorf("empty bar = %q", empty)
	}
	full := RetroTheme{}.buildBar(progressAtRatio(t, 1), 12)
	if full != "["+strings.Repeat("█", 10)+"]" {
		t.Errorf("full bar = %q", full)
	}
}

func TestRetroRenderLayout(t *testing.T) {
	p := progressAt(t, "2025-06-01 10:00:00", "2025-06-01 12:00:00", "2025-06-01 11:00:00")
	lines := RetroTheme{}.Render(p, "", 40)

	if len(lines) != 12 {
		t.Fatalf("got %d lines, want 12", len(lines))
	}
	if lines[0] != strings.Repeat("=", 40) {
		t.Errorf("top rule = %q", lines[0])
	}
	if lines[1] != "[START]     2025-06-01 10:00:00" {
		t.Errorf("start line = %q", lines[1])
	}
	if lines[2] != "[END]       2025-06-01 12:00:00" {
		t.Errorf("end line = %q", lines[2])
	}
	if lines[3] != "[ELAPSED]   50% | 1 h" {
		t.Errorf("elapsed line = %q", lines[3])
	}
	if lines[4] != "[REMAINING] 1 h" {
		t.Errorf("remaining line = %q", lines[4])
	}
	if lines[6] != "[PROGRESS]" {
		t.Errorf("progress label = %q", lines[6])
	}
	if lines[11] != "(Q) QUIT | (CTRL+C) ABORT" {
		t.Errorf("quit line = %q", lines[11])
	}
}

func TestRetroTitleBanner(t *testing.T) {
	p := progressAtRatio(t, 0.5)
	lines := RetroTheme{}.Render(p, "just do it", 40)
	if !strings.Contains(lines[0], "[JUST DO IT] FOCUS SESSION INITIATED") {
		t.Errorf("title banner = %q", lines[0])
	}
}
