package history

import "time"

// Session is one recorded run of the progress display: the window it
// tracked and how the run ended. The window itself is never resumed;
// this is a log, not saved state.
type Session struct {
	ID           int64
	Title        string
	Theme        string
	From         time.Time
	To           time.Time
	StartedRunAt time.Time
	EndedRunAt   time.Time
	Outcome      string
}

const (
	OutcomeCompleted = "completed"
	OutcomeQuit      = "quit"
)
