package timespan

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidWindow is returned when the window's start is not strictly
// before its end. A zero-length window is rejected.
var ErrInvalidWindow = errors.New("invalid time window")

// Span is an immutable time window a session tracks progress against.
// It is constructed once at startup and never mutated.
type Span struct {
	From     time.Time
	To       time.Time
	Duration time.Duration
}

func New(from, to time.Time) (Span, error) {
	if !from.Before(to) {
		return Span{}, fmt.Errorf("%w: end %s must be after start %s",
			ErrInvalidWindow,
			to.Format("2006-01-02 15:04:05"),
			from.Format("2006-01-02 15:04:05"))
	}
	return Span{From: from, To: to, Duration: to.Sub(from)}, nil
}

// HasExpired reports whether t is at or past the end of the window.
func (s Span) HasExpired(t time.Time) bool {
	return !t.Before(s.To)
}

func (s Span) FormatFrom() string {
	return s.From.Format(s.layout())
}

func (s Span) FormatTo() string {
	return s.To.Format(s.layout())
}

func (s Span) FormatFromAs(layout string) string {
	return s.From.Format(layout)
}

func (s Span) FormatToAs(layout string) string {
	return s.To.Format(layout)
}

func (s Span) FormatDuration() string {
	return FormatDuration(s.Duration)
}

// layout picks a boundary format proportional to the window length:
// short sessions get clock times, multi-week sessions get calendar dates.
func (s Span) layout() string {
	switch {
	case s.Duration < 24*time.Hour:
		return "15:04"
	case s.Duration < 3*7*24*time.Hour:
		return "01-02 15:04"
	default:
		return "2006-01-02"
	}
}

// FormatDuration renders d in the largest unit pair that reads naturally.
// Years are days/365 with no leap-year correction; the drift is accepted
// since anything at that scale is displayed as a whole number of years.
func FormatDuration(d time.Duration) string {
	minutes := int64(d / time.Minute)
	hours := int64(d / time.Hour)
	days := hours / 24

	switch {
	case minutes < 60:
		return fmt.Sprintf("%d m", minutes)
	case hours < 24:
		if m := minutes % 60; m != 0 {
			return fmt.Sprintf("%d h %d m", hours, m)
		}
		return fmt.Sprintf("%d h", hours)
	case days < 7:
		if h := hours % 24; h != 0 {
			return fmt.Sprintf("%d d %d h", days, h)
		}
		return fmt.Sprintf("%d d", days)
	case days < 365:
		return fmt.Sprintf("%d d", days)
	default:
		return fmt.Sprintf("%d y", days/365)
	}
}
