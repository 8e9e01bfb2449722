package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zsettings/internal/i18n"
)

const (
	loginEmail = iota
	loginPassword
	loginFieldCount
)

// signInMsg asks the root model to check credentials.
type signInMsg struct {
	email    string
	password string
}

// signInResultMsg reports a rejected sign in. A nil err means the
// credentials did not match.
type signInResultMsg struct {
	err error
}

// loginModel is the sign-in form shown while the loggedIn flag is unset.
type loginModel struct {
	lang   i18n.Lang
	inputs []textinput.Model
	focus  int
	flash  flash
}

func newLoginModel(l i18n.Lang) loginModel {
	inputs := []textinput.Model{
		newInput("you@example.com", false),
		newInput("", true),
	}
	focusInput(inputs, loginEmail)
	return loginModel{lang: l, inputs: inputs}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch msg.Type {
		case tea.KeyTab, tea.KeyDown:
			m.focus = (m.focus + 1) % loginFieldCount
			focusInput(m.inputs, m.focus)
			return m, textinput.Blink
		case tea.KeyShiftTab, tea.KeyUp:
			m.focus = (m.focus - 1 + loginFieldCount) % loginFieldCount
			focusInput(m.inputs, m.focus)
			return m, textinput.Blink
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			return m.submit()
		}

	case signInResultMsg:
		m.inputs[loginPassword].SetValue("")
		if msg.err != nil {
			m.flash = errFlash(msg.err.Error())
		} else {
			m.flash = errFlash(i18n.T(m.lang, "invalid email or password"))
		}
		return m, nil

	case flashMsg:
		m.flash = m.flash.clear(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	email := strings.TrimSpace(m.inputs[loginEmail].Value())
	password := m.inputs[loginPassword].Value()
	if email == "" || password == "" {
		m.flash = errFlash(i18n.T(m.lang, "all fields are required"))
		return m, m.flash.expire()
	}
	return m, func() tea.Msg { return signInMsg{email: email, password: password} }
}

func (m loginModel) View() string {
	labels := []string{i18n.T(m.lang, "email"), i18n.T(m.lang, "password")}

	s := fmt.Sprintf("\n  %s\n\n", zstyle.Title.Render(i18n.T(m.lang, "sign in")))
	for i, input := range m.inputs {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-18s", labels[i]))
		if i == m.focus {
			s += "  " + zstyle.Highlight.Render("> ") + label + input.View() + "\n"
		} else {
			s += "    " + label + input.View() + "\n"
		}
	}

	s += "\n" + m.flash.render()
	return s
}
