// Package config validates the raw CLI input into the tuple the render
// loop consumes, and loads optional user defaults from a config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

const (
	MinInterval     = 1
	MaxInterval     = 60
	DefaultInterval = 5
	DefaultTheme    = "default"
)

// Config is the validated session input. End strictly after start is
// checked here and re-checked by timespan.New.
type Config struct {
	From      time.Time
	To        time.Time
	Interval  time.Duration
	Title     string
	Theme     string
	NoHistory bool
}

var (
	datetimeSecLayouts = []string{"2006-01-02 15:04:05", "2006-01-02T15:04:05", "20060102150405"}
	datetimeMinLayouts = []string{"2006-01-02 15:04", "2006-01-02T15:04", "200601021504"}
	dateLayouts        = []string{"2006-01-02", "20060102"}
)

// ParseStartTime accepts second, minute and date precision. A date-only
// start means the beginning of that day.
func ParseStartTime(s string) (time.Time, error) {
	if t, ok := parseAny(s, datetimeSecLayouts); ok {
		return t, nil
	}
	if t, ok := parseAny(s, datetimeMinLayouts); ok {
		return t, nil
	}
	if t, ok := parseAny(s, dateLayouts); ok {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid start time format: %q", s)
}

// ParseEndTime accepts the same shapes as ParseStartTime but rounds the
// coarser ones up: minute precision gets :59 seconds, a date-only end
// means the last second of that day.
func ParseEndTime(s string) (time.Time, error) {
	if t, ok := parseAny(s, datetimeSecLayouts); ok {
		return t, nil
	}
	if t, ok := parseAny(s, datetimeMinLayouts); ok {
		return t.Add(59 * time.Second), nil
	}
	if t, ok := parseAny(s, dateLayouts); ok {
		return t.Add(23*time.Hour + 59*time.Minute + 59*time.Second), nil
	}
	return time.Time{}, fmt.Errorf("invalid end time format: %q", s)
}

func parseAny(s string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var durationPattern = regexp.MustCompile(`^(\d+)([smhd])$`)

// ParseWindowDuration parses the --duration shorthand, e.g. "90m" or "2d".
func ParseWindowDuration(s string) (time.Duration, error) {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid duration format: %q (want e.g. 30s, 90m, 2h, 1d)", s)
	}
	var value int64
	if _, err := fmt.Sscanf(m[1], "%d", &value); err != nil {
		return 0, fmt.Errorf("invalid duration value: %q", s)
	}
	switch m[2] {
	case "s":
		return time.Duration(value) * time.Second, nil
	case "m":
		return time.Duration(value) * time.Minute, nil
	case "h":
		return time.Duration(value) * time.Hour, nil
	default:
		return time.Duration(value) * 24 * time.Hour, nil
	}
}

// ValidateInterval bounds the refresh cadence in whole seconds.
func ValidateInterval(seconds int) (time.Duration, error) {
	if seconds < MinInterval || seconds > MaxInterval {
		return 0, fmt.Errorf("interval must be between %d and %d seconds, got %d",
			MinInterval, MaxInterval, seconds)
	}
	return time.Duration(seconds) * time.Second, nil
}

// Defaults are the user-configurable fallbacks applied when the
// corresponding flag is not set.
type Defaults struct {
	Theme    string
	Interval int
	Title    string
}

// LoadDefaults reads ~/.config/timebar/config.yaml when present. A
// missing file is not an error; a malformed one is.
func LoadDefaults() (Defaults, error) {
	v := viper.New()
	v.SetDefault("theme", DefaultTheme)
	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("title", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Defaults{}, fmt.Errorf("reading user config: %w", err)
		}
	}

	return Defaults{
		Theme:    v.GetString("theme"),
		Interval: v.GetInt("interval"),
		Title:    v.GetString("title"),
	}, nil
}

// LoadDefaultsFrom reads defaults from a specific file (for testing).
func LoadDefaultsFrom(path string) (Defaults, error) {
	v := viper.New()
	v.SetDefault("theme", DefaultTheme)
	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("title", "")

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Defaults{}, fmt.Errorf("reading config from %s: %w", path, err)
	}

	return Defaults{
		Theme:    v.GetString("theme"),
		Interval: v.GetInt("interval"),
		Title:    v.GetString("title"),
	}, nil
}

func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "timebar")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "timebar")
}
