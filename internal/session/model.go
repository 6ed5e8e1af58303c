package session

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"timebar/internal/history"
	"timebar/internal/progress"
	"timebar/internal/theme"
	"timebar/internal/timespan"
)

// MsgTick is sent by the refresh ticker in main; each one resamples the
// wall clock for the next frame.
type MsgTick struct{}

// Model drives one render loop over an immutable window. All per-tick
// state is derived in View; the only mutable pieces are the sampled
// clock and the terminal width.
type Model struct {
	span  timespan.Span
	theme theme.Theme
	title string

	width int
	now   time.Time

	hist      *history.Repository // nil when history is disabled
	sessionID int64
	finalized bool
}

func NewModel(span timespan.Span, th theme.Theme, title string, hist *history.Repository, sessionID int64) *Model {
	return &Model{
		span:      span,
		theme:     th,
		title:     title,
		width:     80,
		now:       time.Now(),
		hist:      hist,
		sessionID: sessionID,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgTick:
		m.now = time.Now()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) View() string {
	p := progress.New(m.span, m.now)
	lines := m.theme.Render(p, m.title, m.width)
	return strings.Join(lines, "\n")
}

// Close finalizes the history row once, recording whether the window ran
// out or the user quit early. Safe to call with history disabled.
func (m *Model) Close() error {
	if m.hist == nil || m.finalized {
		return nil
	}
	m.finalized = true

	endedAt := time.Now()
	outcome := history.OutcomeQuit
	if m.span.HasExpired(endedAt) {
		outcome = history.OutcomeCompleted
	}
	return m.hist.Finalize(m.sessionID, outcome, endedAt)
}
