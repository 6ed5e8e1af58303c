package progress

import (
	"math"
	"time"

	"timebar/internal/timespan"
)

// State is the session phase derived from the sample time. Complete is
// terminal: once the window has elapsed no later sample leaves it.
type State int

const (
	StatePending State = iota
	StateActive
	StateComplete
)

// Progress is a per-tick snapshot of elapsed/remaining/ratio for a given
// instant. It is rebuilt fresh on every render tick and never mutated;
// the computation is cheap enough that caching would only invite drift.
type Progress struct {
	Span      timespan.Span
	At        time.Time
	Ratio     float64
	Elapsed   time.Duration
	Remaining time.Duration
}

// New derives a snapshot for now. It is total: a sample before the window
// pins the ratio at 0, a sample after it pins the ratio at 1. Clock drift
// and slow ticks are expected in a polling loop, not errors.
func New(span timespan.Span, now time.Time) Progress {
	elapsed := now.Sub(span.From)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > span.Duration {
		elapsed = span.Duration
	}

	// Full nanosecond resolution before the float division, then rounded
	// to hundredths at storage so two snapshots in the same hundredth
	// compare equal for display.
	ratio := float64(elapsed) / float64(span.Duration)
	ratio = math.Round(ratio*100) / 100

	return Progress{
		Span:      span,
		At:        now,
		Ratio:     ratio,
		Elapsed:   elapsed,
		Remaining: span.Duration - elapsed,
	}
}

func (p Progress) IsComplete() bool {
	return p.Span.HasExpired(p.At)
}

func (p Progress) State() State {
	switch {
	case p.At.Before(p.Span.From):
		return StatePending
	case p.IsComplete():
		return StateComplete
	default:
		return StateActive
	}
}

// Percent is the display percentage in [0, 100].
func (p Progress) Percent() int {
	return int(math.Round(p.Ratio * 100))
}

func (p Progress) FormatElapsed() string {
	return timespan.FormatDuration(p.Elapsed)
}

func (p Progress) FormatRemaining() string {
	return timespan.FormatDuration(p.Remaining)
}
