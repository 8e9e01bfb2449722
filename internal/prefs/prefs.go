// Package prefs holds the appearance and layout settings record.
package prefs

import (
	"fmt"
	"slices"

	"github.com/zarlcorp/zsettings/internal/i18n"
)

// Theme is the color scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Themes lists the selectable themes.
var Themes = []Theme{Light, Dark}

// GridColumnOptions lists the selectable grid column counts.
var GridColumnOptions = []int{1, 2, 3, 4}

// RefreshIntervals lists the selectable refresh intervals in seconds.
var RefreshIntervals = []int{10, 30, 60, 300, 600}

// Settings is the full preferences record. Field names match the persisted
// JSON. Panels always send the whole record, never a diff.
type Settings struct {
	Theme           Theme     `json:"theme"`
	GridColumns     int       `json:"gridColumns"`
	AutoRefresh     bool      `json:"autoRefresh"`
	RefreshInterval int       `json:"refreshInterval"`
	Language        i18n.Lang `json:"language"`
}

// Defaults returns the settings used when nothing is persisted.
func Defaults() Settings {
	return Settings{
		Theme:           Light,
		GridColumns:     3,
		AutoRefresh:     false,
		RefreshInterval: 30,
		Language:        i18n.English,
	}
}

// Validate reports the first field holding a value outside its choices.
func (s Settings) Validate() error {
	if !slices.Contains(Themes, s.Theme) {
		return fmt.Errorf("invalid theme %q", s.Theme)
	}
	if !slices.Contains(GridColumnOptions, s.GridColumns) {
		return fmt.Errorf("invalid grid columns %d", s.GridColumns)
	}
	if !slices.Contains(RefreshIntervals, s.RefreshInterval) {
		return fmt.Errorf("invalid refresh interval %d", s.RefreshInterval)
	}
	if _, err := i18n.Parse(string(s.Language)); err != nil {
		return err
	}
	return nil
}

// Normalize replaces out-of-range fields with their defaults.
func (s Settings) Normalize() Settings {
	d := Defaults()
	if !slices.Contains(Themes, s.Theme) {
		s.Theme = d.Theme
	}
	if !slices.Contains(GridColumnOptions, s.GridColumns) {
		s.GridColumns = d.GridColumns
	}
	if !slices.Contains(RefreshIntervals, s.RefreshInterval) {
		s.RefreshInterval = d.RefreshInterval
	}
	if _, err := i18n.Parse(string(s.Language)); err != nil {
		s.Language = d.Language
	}
	return s
}

// WithTheme returns s with the theme replaced.
func (s Settings) WithTheme(t Theme) Settings {
	s.Theme = t
	return s
}

// WithGridColumns returns s with the grid column count replaced.
func (s Settings) WithGridColumns(n int) Settings {
	s.GridColumns = n
	return s
}

// WithAutoRefresh returns s with auto refresh replaced.
func (s Settings) WithAutoRefresh(on bool) Settings {
	s.AutoRefresh = on
	return s
}

// WithRefreshInterval returns s with the refresh interval replaced.
func (s Settings) WithRefreshInterval(seconds int) Settings {
	s.RefreshInterval = seconds
	return s
}

// WithLanguage returns s with the language replaced.
func (s Settings) WithLanguage(l i18n.Lang) Settings {
	s.Language = l
	return s
}

// FormatInterval renders a refresh interval for display, e.g. "30s" or "5m".
func FormatInterval(seconds int) string {
	if seconds >= 60 && seconds%60 == 0 {
		return fmt.Sprintf("%dm", seconds/60)
	}
	return fmt.Sprintf("%ds", seconds)
}
