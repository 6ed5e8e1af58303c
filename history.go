package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"timebar/internal/history"
	"timebar/internal/timespan"
)

var flagHistoryLimit int

var (
	historyHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	historyTimeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	historyQuitStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently recorded sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := history.NewRepository(historyDBPath)
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer repo.Close()

		sessions, err := repo.Recent(flagHistoryLimit)
		if err != nil {
			return fmt.Errorf("loading history: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		fmt.Println(historyHeaderStyle.Render("Recent Sessions"))
		for _, s := range sessions {
			fmt.Println(formatSession(s))
		}
		return nil
	},
}

func formatSession(s history.Session) string {
	started := historyTimeStyle.Render(s.StartedRunAt.Format("Jan 02 15:04"))
	window := timespan.FormatDuration(s.To.Sub(s.From))

	title := s.Title
	if title == "" {
		title = "(untitled)"
	}

	outcome := s.Outcome
	if outcome == "" {
		outcome = "-"
	}
	if outcome == history.OutcomeQuit {
		outcome = historyQuitStyle.Render(outcome)
	}

	return fmt.Sprintf("  %s  %-20s %-10s %s  %s", started, title, s.Theme, window, outcome)
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Maximum number of sessions to list")
}
