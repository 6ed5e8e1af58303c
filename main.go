package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"timebar/internal/config"
	"timebar/internal/history"
	"timebar/internal/session"
	"timebar/internal/theme"
	"timebar/internal/timespan"
)

const historyDBPath = "timebar.db"

var (
	flagStart     string
	flagEnd       string
	flagDuration  string
	flagInterval  int
	flagTitle     string
	flagTheme     string
	flagNoHistory bool
)

var rootCmd = &cobra.Command{
	Use:   "timebar",
	Short: "Terminal progress bar for a fixed time window",
	Long: `Timebar renders a live terminal view of how far along you are
between a start and an end time, refreshing until the window elapses
or you quit with q, esc or ctrl+c.

Give it an end time (or a duration from now) and pick a theme:

  timebar --end "2026-08-31 18:00"
  timebar --duration 90m --theme hourglass --title "deep work"`,
	SilenceUsage: true,
	RunE:         runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	defaults, err := config.LoadDefaults()
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(cmd, defaults)
	if err != nil {
		return err
	}

	span, err := timespan.New(cfg.From, cfg.To)
	if err != nil {
		return err
	}

	th := theme.FromName(cfg.Theme)

	var hist *history.Repository
	var sessionID int64
	if !cfg.NoHistory {
		hist, err = history.NewRepository(historyDBPath)
		if err != nil {
			// A broken log must not block the session itself.
			fmt.Fprintf(os.Stderr, "Warning: session history disabled: %v\n", err)
			hist = nil
		} else {
			defer hist.Close()
			rec := &history.Session{
				Title:        cfg.Title,
				Theme:        th.Name(),
				From:         cfg.From,
				To:           cfg.To,
				StartedRunAt: time.Now(),
			}
			if err := hist.Record(rec); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: session history disabled: %v\n", err)
				hist = nil
			}
			sessionID = rec.ID
		}
	}

	m := session.NewModel(span, th, cfg.Title, hist, sessionID)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-ticker.C:
				p.Send(session.MsgTick{})
			case <-done:
				return
			}
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// resolveConfig merges flags over the user defaults file and validates
// the result. Exactly one of --end and --duration must be given.
func resolveConfig(cmd *cobra.Command, defaults config.Defaults) (config.Config, error) {
	var cfg config.Config

	start := time.Now().Truncate(time.Second)
	if flagStart != "" {
		var err error
		start, err = config.ParseStartTime(flagStart)
		if err != nil {
			return cfg, err
		}
	}

	var end time.Time
	switch {
	case flagEnd != "":
		var err error
		end, err = config.ParseEndTime(flagEnd)
		if err != nil {
			return cfg, err
		}
	case flagDuration != "":
		d, err := config.ParseWindowDuration(flagDuration)
		if err != nil {
			return cfg, err
		}
		end = start.Add(d)
	default:
		return cfg, errors.New("either --end or --duration is required")
	}

	seconds := defaults.Interval
	if cmd.Flags().Changed("interval") {
		seconds = flagInterval
	}
	interval, err := config.ValidateInterval(seconds)
	if err != nil {
		return cfg, err
	}

	cfg.From = start
	cfg.To = end
	cfg.Interval = interval
	cfg.Title = flagTitle
	if cfg.Title == "" {
		cfg.Title = defaults.Title
	}
	cfg.Theme = flagTheme
	if cfg.Theme == "" {
		cfg.Theme = defaults.Theme
	}
	cfg.NoHistory = flagNoHistory
	return cfg, nil
}

func init() {
	rootCmd.Flags().StringVarP(&flagStart, "start", "s", "", "Start time (default: now)")
	rootCmd.Flags().StringVarP(&flagEnd, "end", "e", "", "End time")
	rootCmd.Flags().StringVarP(&flagDuration, "duration", "d", "", "Window length from start, e.g. 90m, 2h, 1d")
	rootCmd.Flags().IntVarP(&flagInterval, "interval", "i", config.DefaultInterval, "Refresh interval in seconds (1-60)")
	rootCmd.Flags().StringVarP(&flagTitle, "title", "t", "", "Title shown above the progress display")
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "Display theme ["+strings.Join(theme.Names(), "|")+"]")
	rootCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record this session in the history log")
	rootCmd.MarkFlagsMutuallyExclusive("end", "duration")

	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
