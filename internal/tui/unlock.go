package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zsettings/internal/i18n"
	"github.com/zarlcorp/zsettings/internal/kv"
)

const (
	unlockPassphrase = iota
	unlockConfirm
)

// unlockSubmitMsg carries the passphrase to the root model.
type unlockSubmitMsg struct {
	passphrase string
}

// unlockErrMsg reports a store that could not be opened.
type unlockErrMsg struct {
	err error
}

// unlockModel asks for the passphrase of the configured storage backend.
// Until a stored language is readable it speaks the configured default
// language. A new store takes the passphrase and its confirmation
// together.
type unlockModel struct {
	lang     i18n.Lang
	backend  string
	firstRun bool
	inputs   []textinput.Model
	focus    int
	errMsg   string
}

func newUnlockModel(l i18n.Lang, backend string, firstRun bool) unlockModel {
	if backend == "" {
		backend = kv.BackendVault
	}
	inputs := []textinput.Model{newInput("", true)}
	if firstRun {
		inputs = append(inputs, newInput("", true))
	}
	focusInput(inputs, unlockPassphrase)
	return unlockModel{lang: l, backend: backend, firstRun: firstRun, inputs: inputs}
}

func (m unlockModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m unlockModel) Update(msg tea.Msg) (unlockModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch msg.Type {
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyDown, tea.KeyUp:
			if len(m.inputs) > 1 {
				m.focus = (m.focus + 1) % len(m.inputs)
				focusInput(m.inputs, m.focus)
				return m, textinput.Blink
			}
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			return m.submit()
		}

	case unlockErrMsg:
		m.errMsg = m.describe(msg.err)
		m.reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m unlockModel) submit() (unlockModel, tea.Cmd) {
	pass := m.inputs[unlockPassphrase].Value()

	if m.firstRun && m.focus == unlockPassphrase && pass != "" {
		m.focus = unlockConfirm
		focusInput(m.inputs, m.focus)
		return m, textinput.Blink
	}

	if pass == "" {
		m.errMsg = i18n.T(m.lang, "passphrase is required")
		return m, nil
	}
	if m.firstRun && m.inputs[unlockConfirm].Value() != pass {
		m.errMsg = i18n.T(m.lang, "passphrases do not match")
		m.reset()
		return m, nil
	}

	m.errMsg = ""
	return m, func() tea.Msg { return unlockSubmitMsg{passphrase: pass} }
}

// reset clears every field and refocuses the first.
func (m *unlockModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.focus = unlockPassphrase
	focusInput(m.inputs, m.focus)
}

func (m unlockModel) describe(err error) string {
	if errors.Is(err, kv.ErrWrongPassphrase) {
		return i18n.T(m.lang, "wrong passphrase")
	}
	return i18n.T(m.lang, "could not open storage: %s", err.Error())
}

func (m unlockModel) View() string {
	indent := lipgloss.NewStyle().MarginLeft(2)
	title := indent.Render(lipgloss.NewStyle().Foreground(accent).Bold(true).Render("zsettings"))
	sub := indent.Render(zstyle.MutedText.Render(i18n.T(m.lang, "storage: %s", i18n.T(m.lang, m.backend))))

	labels := []string{i18n.T(m.lang, "passphrase")}
	heading := i18n.T(m.lang, "unlock settings")
	if m.firstRun {
		labels = append(labels, i18n.T(m.lang, "confirm passphrase"))
		heading = i18n.T(m.lang, "create a passphrase")
	}

	s := fmt.Sprintf("\n%s\n%s\n\n  %s\n\n", title, sub, zstyle.Title.Render(heading))
	for i, input := range m.inputs {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-20s", labels[i]))
		if i == m.focus {
			s += "  " + zstyle.Highlight.Render("> ") + label + input.View() + "\n"
		} else {
			s += "    " + label + input.View() + "\n"
		}
	}

	if m.errMsg != "" {
		s += "\n  " + zstyle.StatusErr.Render(m.errMsg)
	}
	return s + "\n"
}
