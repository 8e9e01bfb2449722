package tui

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zsettings/internal/i18n"
	"github.com/zarlcorp/zsettings/internal/prefs"
)

const (
	rowTheme = iota
	rowGridColumns
	rowAutoRefresh
	rowRefreshInterval
	appearanceRowCount
)

var appearanceLabels = [appearanceRowCount]string{
	"theme", "grid columns", "auto refresh", "refresh interval",
}

// changeSettingsMsg carries the full updated settings record and the toast
// to show once it is saved. String toast arguments are message keys.
type changeSettingsMsg struct {
	settings  prefs.Settings
	toastKey  string
	toastArgs []any
}

// appearanceModel edits theme and layout preferences. Each row cycles
// through its choices and every change is reported immediately.
type appearanceModel struct {
	lang     i18n.Lang
	settings prefs.Settings
	cursor   int
	flash    flash
}

func newAppearanceModel(l i18n.Lang, s prefs.Settings) appearanceModel {
	return appearanceModel{lang: l, settings: s}
}

func (m appearanceModel) Update(msg tea.Msg) (appearanceModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, zstyle.KeyQuit):
			return m, tea.Quit
		case key.Matches(msg, zstyle.KeyBack):
			return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
		case key.Matches(msg, zstyle.KeyUp):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, zstyle.KeyDown):
			if m.cursor < appearanceRowCount-1 {
				m.cursor++
			}
		case msg.String() == "left" || msg.String() == "h":
			return m.cycle(-1)
		case msg.String() == "right" || msg.String() == "l",
			msg.String() == " ", key.Matches(msg, zstyle.KeyEnter):
			return m.cycle(1)
		}

	case flashMsg:
		m.flash = m.flash.clear(msg)
	}

	return m, nil
}

// cycle moves the value of the row under the cursor by step.
func (m appearanceModel) cycle(step int) (appearanceModel, tea.Cmd) {
	s := m.settings
	var change changeSettingsMsg

	switch m.cursor {
	case rowTheme:
		t := next(prefs.Themes, s.Theme, step)
		change = changeSettingsMsg{
			settings:  s.WithTheme(t),
			toastKey:  "theme set to %s",
			toastArgs: []any{string(t)},
		}
	case rowGridColumns:
		n := next(prefs.GridColumnOptions, s.GridColumns, step)
		change = changeSettingsMsg{
			settings:  s.WithGridColumns(n),
			toastKey:  "grid columns set to %d",
			toastArgs: []any{n},
		}
	case rowAutoRefresh:
		on := !s.AutoRefresh
		change = changeSettingsMsg{
			settings:  s.WithAutoRefresh(on),
			toastKey:  "auto refresh %s",
			toastArgs: []any{onOff(on)},
		}
	case rowRefreshInterval:
		sec := next(prefs.RefreshIntervals, s.RefreshInterval, step)
		change = changeSettingsMsg{
			settings:  s.WithRefreshInterval(sec),
			toastKey:  "refresh interval set to %s",
			toastArgs: []any{prefs.FormatInterval(sec)},
		}
	}

	return m, func() tea.Msg { return change }
}

// next returns the choice step positions after cur, wrapping around. An
// unknown cur starts from the first choice.
func next[T comparable](choices []T, cur T, step int) T {
	i := slices.Index(choices, cur)
	if i < 0 {
		return choices[0]
	}
	n := len(choices)
	return choices[((i+step)%n+n)%n]
}

// onOff returns the message key for a toggle state.
func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func (m appearanceModel) value(row int, l i18n.Lang) string {
	s := m.settings
	switch row {
	case rowTheme:
		return i18n.T(l, string(s.Theme))
	case rowGridColumns:
		return fmt.Sprintf("%d", s.GridColumns)
	case rowAutoRefresh:
		return i18n.T(l, onOff(s.AutoRefresh))
	case rowRefreshInterval:
		return prefs.FormatInterval(s.RefreshInterval)
	}
	return ""
}

func (m appearanceModel) View() string {
	l := m.lang
	s := fmt.Sprintf("\n  %s\n\n", zstyle.Title.Render(i18n.T(l, "appearance")))

	for i := range appearanceRowCount {
		label := fmt.Sprintf("%-20s", i18n.T(l, appearanceLabels[i]))
		val := "< " + m.value(i, l) + " >"
		if i == m.cursor {
			s += "  " + zstyle.Highlight.Render("> "+label) + zstyle.Highlight.Render(val) + "\n"
		} else {
			s += "    " + zstyle.MutedText.Render(label) + val + "\n"
		}
	}

	s += "\n" + m.flash.render()
	return s
}
