package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zcrypto"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zsettings/internal/account"
	"github.com/zarlcorp/zsettings/internal/i18n"
)

// credentialKind selects one of the two credential sub-forms.
type credentialKind int

const (
	changeEmail credentialKind = iota
	changePassword
)

func (k credentialKind) String() string {
	if k == changePassword {
		return "password"
	}
	return "email"
}

const (
	emailNew = iota
	emailConfirm
	emailFieldCount
)

const (
	passwordCurrent = iota
	passwordNew
	passwordConfirm
	passwordFieldCount
)

const suggestedLength = 20

// saveCredentialsMsg asks the root model to run a credential change.
type saveCredentialsMsg struct {
	kind  credentialKind
	patch account.CredentialsPatch
}

// credentialsDoneMsg carries the outcome of the change operation.
type credentialsDoneMsg struct {
	kind  credentialKind
	patch account.CredentialsPatch
	err   error
}

// credentialsResultMsg tells the panel how a change ended.
type credentialsResultMsg struct {
	kind        credentialKind
	err         error
	credentials account.Credentials
}

// accountModel rotates the account email and password.
type accountModel struct {
	lang        i18n.Lang
	credentials account.Credentials
	form        credentialKind

	emailInputs    []textinput.Model
	passwordInputs []textinput.Model
	focus          int

	// in-flight flags, one per sub-form
	emailBusy    bool
	passwordBusy bool

	flash flash
}

func newAccountModel(l i18n.Lang, c account.Credentials) accountModel {
	m := accountModel{
		lang:        l,
		credentials: c,
		form:        changeEmail,
		emailInputs: []textinput.Model{
			newInput("you@example.com", false),
			newInput("", true),
		},
		passwordInputs: []textinput.Model{
			newInput("", true),
			newInput("", true),
			newInput("", true),
		},
	}
	m.refocus()
	return m
}

func (m accountModel) Init() tea.Cmd {
	return textinput.Blink
}

// inputs returns the active sub-form's inputs.
func (m accountModel) inputs() []textinput.Model {
	if m.form == changePassword {
		return m.passwordInputs
	}
	return m.emailInputs
}

func (m *accountModel) refocus() {
	focusInput(m.emailInputs, -1)
	focusInput(m.passwordInputs, -1)
	focusInput(m.inputs(), m.focus)
}

func (m accountModel) Update(msg tea.Msg) (accountModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case credentialsResultMsg:
		return m.handleResult(msg)

	case flashMsg:
		m.flash = m.flash.clear(msg)
		return m, nil
	}

	return m.updateInput(msg)
}

func (m accountModel) handleKey(msg tea.KeyMsg) (accountModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	n := len(m.inputs())
	switch msg.String() {
	case "ctrl+e":
		return m.switchForm(changeEmail)
	case "ctrl+p":
		return m.switchForm(changePassword)
	case "ctrl+g":
		return m.suggest()
	case "tab", "down":
		m.focus = (m.focus + 1) % n
		m.refocus()
		return m, textinput.Blink
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + n) % n
		m.refocus()
		return m, textinput.Blink
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.submit()
	}

	return m.updateInput(msg)
}

func (m accountModel) switchForm(k credentialKind) (accountModel, tea.Cmd) {
	if m.form == k {
		return m, nil
	}
	m.form = k
	m.focus = 0
	m.refocus()
	return m, textinput.Blink
}

// suggest fills the new and confirm password fields with a generated
// password that meets every strength criterion.
func (m accountModel) suggest() (accountModel, tea.Cmd) {
	if m.form != changePassword {
		return m, nil
	}

	pw := zcrypto.GeneratePassword(suggestedLength)
	for i := 0; i < 32 && account.MeasureStrength(pw).Level != account.Strong; i++ {
		pw = zcrypto.GeneratePassword(suggestedLength)
	}

	m.passwordInputs[passwordNew].SetValue(pw)
	m.passwordInputs[passwordConfirm].SetValue(pw)
	m.flash = okFlash(i18n.T(m.lang, "password suggested"))
	return m, m.flash.expire()
}

func (m accountModel) submit() (accountModel, tea.Cmd) {
	if m.form == changePassword {
		return m.submitPassword()
	}
	return m.submitEmail()
}

func (m accountModel) submitEmail() (accountModel, tea.Cmd) {
	if m.emailBusy {
		return m, nil
	}

	req := account.EmailChange{
		NewEmail:        m.emailInputs[emailNew].Value(),
		ConfirmPassword: m.emailInputs[emailConfirm].Value(),
	}
	if err := req.Validate(m.credentials); err != nil {
		return m.rejected(err)
	}

	m.emailBusy = true
	m.flash = okFlash(i18n.T(m.lang, "saving..."))
	patch := req.Patch()
	return m, func() tea.Msg { return saveCredentialsMsg{kind: changeEmail, patch: patch} }
}

func (m accountModel) submitPassword() (accountModel, tea.Cmd) {
	if m.passwordBusy {
		return m, nil
	}

	req := account.PasswordChange{
		Current: m.passwordInputs[passwordCurrent].Value(),
		New:     m.passwordInputs[passwordNew].Value(),
		Confirm: m.passwordInputs[passwordConfirm].Value(),
	}
	if err := req.Validate(m.credentials); err != nil {
		return m.rejected(err)
	}

	m.passwordBusy = true
	m.flash = okFlash(i18n.T(m.lang, "saving..."))
	patch := req.Patch()
	return m, func() tea.Msg { return saveCredentialsMsg{kind: changePassword, patch: patch} }
}

// rejected shows a validation failure as a localized error toast.
func (m accountModel) rejected(err error) (accountModel, tea.Cmd) {
	text := err.Error()
	var ve *account.ValidationError
	if errors.As(err, &ve) {
		text = i18n.T(m.lang, ve.Key)
	}
	m.flash = errFlash(text)
	return m, m.flash.expire()
}

func (m accountModel) handleResult(msg credentialsResultMsg) (accountModel, tea.Cmd) {
	switch msg.kind {
	case changeEmail:
		m.emailBusy = false
	case changePassword:
		m.passwordBusy = false
	}

	if msg.err != nil {
		m.flash = errFlash(i18n.T(m.lang, msg.kind.String()+" update failed"))
		return m, m.flash.expire()
	}

	m.credentials = msg.credentials
	switch msg.kind {
	case changeEmail:
		for i := range m.emailInputs {
			m.emailInputs[i].SetValue("")
		}
	case changePassword:
		for i := range m.passwordInputs {
			m.passwordInputs[i].SetValue("")
		}
	}

	m.flash = okFlash(i18n.T(m.lang, msg.kind.String()+" updated"))
	return m, m.flash.expire()
}

func (m accountModel) updateInput(msg tea.Msg) (accountModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.form == changePassword {
		m.passwordInputs[m.focus], cmd = m.passwordInputs[m.focus].Update(msg)
	} else {
		m.emailInputs[m.focus], cmd = m.emailInputs[m.focus].Update(msg)
	}
	return m, cmd
}

func (m accountModel) View() string {
	var b strings.Builder

	b.WriteString("\n  " + m.tabs() + "\n\n")

	current := zstyle.MutedText.Render(fmt.Sprintf("%-18s", i18n.T(m.lang, "email")))
	b.WriteString("    " + current + m.credentials.Email + "\n")
	updated := zstyle.MutedText.Render(fmt.Sprintf("%-18s", i18n.T(m.lang, "last updated")))
	b.WriteString("    " + updated + formatDate(m.credentials.LastUpdated) + "\n\n")

	labels := []string{"new email", "confirm password"}
	if m.form == changePassword {
		labels = []string{"current password", "new password", "confirm password"}
	}

	for i, input := range m.inputs() {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-18s", i18n.T(m.lang, labels[i])))
		cursor := "  "
		if i == m.focus {
			cursor = zstyle.Highlight.Render("> ")
		}
		b.WriteString("  " + cursor + label + input.View() + "\n")
	}

	if m.form == changePassword {
		b.WriteString("\n    " + m.meter() + "\n")
	}

	b.WriteString("\n" + m.flash.render())
	return b.String()
}

func (m accountModel) tabs() string {
	render := func(k credentialKind, label string) string {
		text := i18n.T(m.lang, label)
		if m.form == k {
			return zstyle.Highlight.Render("[" + text + "]")
		}
		return zstyle.MutedText.Render(" " + text + " ")
	}
	return render(changeEmail, "change email") + "  " + render(changePassword, "change password")
}

// meter renders the live strength of the new password field.
func (m accountModel) meter() string {
	pw := m.passwordInputs[passwordNew].Value()
	label := zstyle.MutedText.Render(fmt.Sprintf("%-18s", i18n.T(m.lang, "strength")))
	if pw == "" {
		return label + zstyle.MutedText.Render("-")
	}

	st := account.MeasureStrength(pw)
	bar := strings.Repeat("■", st.Score) + strings.Repeat("□", 5-st.Score)

	style := zstyle.StatusErr
	switch st.Level {
	case account.Fair:
		style = zstyle.StatusWarn
	case account.Good, account.Strong:
		style = zstyle.StatusOK
	}
	return label + lipgloss.JoinHorizontal(lipgloss.Top, style.Render(bar), " ", style.Render(i18n.T(m.lang, st.Level.String())))
}
