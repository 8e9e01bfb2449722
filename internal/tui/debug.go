package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zsettings/internal/i18n"
	"github.com/zarlcorp/zsettings/internal/inspect"
)

// reloadMsg asks the root model to re-derive state from the store.
type reloadMsg struct{}

// clearAllMsg asks the root model to wipe every application key and reload.
type clearAllMsg struct{}

// autoRefreshMsg re-reads the store while the inspector is open. Ticks
// from an older generation are dropped.
type autoRefreshMsg struct {
	gen int
}

// debugModel shows the raw persisted state.
type debugModel struct {
	lang       i18n.Lang
	report     inspect.Report
	cursor     int
	confirming bool
	flash      flash
}

func newDebugModel(l i18n.Lang, r inspect.Report) debugModel {
	return debugModel{lang: l, report: r}
}

// clampCursor keeps the cursor on an existing entry after a re-read.
func (m *debugModel) clampCursor() {
	if m.cursor >= len(m.report.Entries) {
		m.cursor = len(m.report.Entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m debugModel) Update(msg tea.Msg) (debugModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirming {
			return m.handleConfirm(msg)
		}
		return m.handleKey(msg)

	case flashMsg:
		m.flash = m.flash.clear(msg)
	}

	return m, nil
}

func (m debugModel) handleKey(msg tea.KeyMsg) (debugModel, tea.Cmd) {
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
		if m.cursor < len(m.report.Entries)-1 {
			m.cursor++
		}
	}

	switch msg.String() {
	case "r":
		return m, func() tea.Msg { return reloadMsg{} }
	case "x":
		m.confirming = true
	case "c":
		return m.copySelected()
	}

	return m, nil
}

func (m debugModel) handleConfirm(msg tea.KeyMsg) (debugModel, tea.Cmd) {
	m.confirming = false
	if msg.String() == "y" {
		return m, func() tea.Msg { return clearAllMsg{} }
	}
	return m, nil
}

func (m debugModel) copySelected() (debugModel, tea.Cmd) {
	if m.report.Err != nil || len(m.report.Entries) == 0 {
		return m, nil
	}

	if err := copyToClipboard(m.report.Entries[m.cursor].Raw); err != nil {
		m.flash = errFlash(i18n.T(m.lang, "copy failed"))
		return m, m.flash.expire()
	}
	m.flash = okFlash(i18n.T(m.lang, "copied %s", m.report.Entries[m.cursor].Key))
	return m, m.flash.expire()
}

func (m debugModel) View() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("\n  %s\n\n", zstyle.Title.Render(i18n.T(m.lang, "stored state"))))

	switch {
	case m.report.Err != nil:
		b.WriteString("  " + zstyle.StatusErr.Render(i18n.T(m.lang, "storage error: %s", m.report.Err.Error())) + "\n")
	case len(m.report.Entries) == 0:
		b.WriteString("  " + zstyle.MutedText.Render(i18n.T(m.lang, "no stored values")) + "\n")
	default:
		b.WriteString(m.entries())
	}

	b.WriteString("\n")
	if m.confirming {
		b.WriteString("  " + zstyle.StatusWarn.Render(i18n.T(m.lang, "clear all stored values? (y/n)")) + "\n")
	} else {
		b.WriteString(m.flash.render())
	}
	return b.String()
}

func (m debugModel) entries() string {
	var b strings.Builder

	for i, e := range m.report.Entries {
		line := fmt.Sprintf("%-14s %s", e.Key, inspect.FormatBytes(len(e.Raw)))
		if i == m.cursor {
			b.WriteString("  " + zstyle.Highlight.Render("> "+line) + "\n")
		} else {
			b.WriteString("    " + zstyle.MutedText.Render(line) + "\n")
		}
	}

	total := i18n.T(m.lang, "total size")
	b.WriteString(fmt.Sprintf("\n    %s %s\n\n", zstyle.MutedText.Render(total), inspect.FormatBytes(m.report.TotalBytes)))

	for _, line := range strings.Split(m.report.Entries[m.cursor].Pretty(), "\n") {
		b.WriteString("    " + line + "\n")
	}
	return b.String()
}
