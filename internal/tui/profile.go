package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zsettings/internal/account"
	"github.com/zarlcorp/zsettings/internal/i18n"
)

const (
	profileName = iota
	profileEmail
	profileFieldCount
)

var profileFields = [profileFieldCount]string{"name", "email"}

// saveProfileMsg asks the root model to run a profile update.
type saveProfileMsg struct {
	patch account.ProfilePatch
}

// profileDoneMsg carries the outcome of the update operation.
type profileDoneMsg struct {
	patch account.ProfilePatch
	err   error
}

// profileResultMsg tells the panel how the save ended.
type profileResultMsg struct {
	err     error
	profile account.Profile
}

// profileModel edits the display name and email.
type profileModel struct {
	lang       i18n.Lang
	profile    account.Profile
	inputs     []textinput.Model
	focus      int
	fieldErrs  map[string]*account.ValidationError
	submitting bool
	flash      flash
}

func newProfileModel(l i18n.Lang, p account.Profile) profileModel {
	inputs := []textinput.Model{
		newInput("", false),
		newInput("you@example.com", false),
	}
	inputs[profileName].SetValue(p.Name)
	inputs[profileEmail].SetValue(p.Email)
	focusInput(inputs, profileName)

	return profileModel{lang: l, profile: p, inputs: inputs}
}

func (m profileModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m profileModel) Update(msg tea.Msg) (profileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case profileResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.flash = errFlash(i18n.T(m.lang, "profile update failed"))
			return m, m.flash.expire()
		}
		m.profile = msg.profile
		m.flash = okFlash(i18n.T(m.lang, "profile updated"))
		return m, m.flash.expire()

	case flashMsg:
		m.flash = m.flash.clear(msg)
		return m, nil
	}

	return m.updateInput(msg)
}

func (m profileModel) handleKey(msg tea.KeyMsg) (profileModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		m.focus = (m.focus + 1) % profileFieldCount
		focusInput(m.inputs, m.focus)
		return m, textinput.Blink
	case tea.KeyShiftTab, tea.KeyUp:
		m.focus = (m.focus - 1 + profileFieldCount) % profileFieldCount
		focusInput(m.inputs, m.focus)
		return m, textinput.Blink
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.submit()
	}

	return m.updateInput(msg)
}

func (m profileModel) submit() (profileModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	in := account.ProfileInput{
		Name:  m.inputs[profileName].Value(),
		Email: m.inputs[profileEmail].Value(),
	}
	m.fieldErrs = in.Validate()
	if m.fieldErrs != nil {
		return m, nil
	}

	m.submitting = true
	m.flash = okFlash(i18n.T(m.lang, "saving..."))
	patch := in.Patch()
	return m, func() tea.Msg { return saveProfileMsg{patch: patch} }
}

func (m profileModel) updateInput(msg tea.Msg) (profileModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m profileModel) View() string {
	s := fmt.Sprintf("\n  %s\n\n", zstyle.Title.Render(i18n.T(m.lang, "profile")))

	for i, input := range m.inputs {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-18s", i18n.T(m.lang, profileFields[i])))
		cursor := "  "
		if i == m.focus {
			cursor = zstyle.Highlight.Render("> ")
		}
		s += "  " + cursor + label + input.View() + "\n"

		if fe, ok := m.fieldErrs[profileFields[i]]; ok {
			s += "    " + zstyle.StatusErr.Render(i18n.T(m.lang, fe.Key)) + "\n"
		}
	}

	s += "\n"
	s += "  " + zstyle.MutedText.Render(fmt.Sprintf("%-18s", i18n.T(m.lang, "joined"))) + formatDate(m.profile.JoinDate) + "\n"
	s += "  " + zstyle.MutedText.Render(fmt.Sprintf("%-18s", i18n.T(m.lang, "last login"))) + formatDate(m.profile.LastLogin) + "\n"
	s += "\n" + m.flash.render()
	return s
}
