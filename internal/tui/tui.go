// Package tui implements the root Bubble Tea model for zsettings. The root
// model is the host: it owns the application state, persists every change
// the panels report, and applies theme and text direction globally.
package tui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zsettings/internal/account"
	"github.com/zarlcorp/zsettings/internal/config"
	"github.com/zarlcorp/zsettings/internal/i18n"
	"github.com/zarlcorp/zsettings/internal/inspect"
	"github.com/zarlcorp/zsettings/internal/kv"
	"github.com/zarlcorp/zsettings/internal/prefs"
	"github.com/zarlcorp/zsettings/internal/state"
)

type viewID int

const (
	viewUnlock viewID = iota
	viewLogin
	viewMenu
	viewProfile
	viewAccount
	viewLanguage
	viewAppearance
	viewDebug
)

// accent colors the header and the active tile.
var accent = zstyle.ZburnAccent

// Model is the root TUI model.
type Model struct {
	version  string
	dataDir  string
	cfg      config.Config
	firstRun bool
	svc      account.Service

	vault kv.StoreCloser
	state *state.State

	active     viewID
	unlock     unlockModel
	login      loginModel
	menu       menuModel
	profile    profileModel
	account    accountModel
	language   languageModel
	appearance appearanceModel
	debug      debugModel

	// refreshGen invalidates pending auto refresh ticks.
	refreshGen int

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model. The vault in dataDir is opened once the
// user enters the passphrase.
func New(version, dataDir string, cfg config.Config, firstRun bool) Model {
	l, err := i18n.Parse(cfg.DefaultLanguage)
	if err != nil {
		l = i18n.English
	}
	return Model{
		version:  version,
		dataDir:  dataDir,
		cfg:      cfg,
		firstRun: firstRun,
		svc:      account.Simulated{Delay: cfg.Delay},
		active:   viewUnlock,
		unlock:   newUnlockModel(l, cfg.Backend, firstRun),
	}
}

func (m Model) Init() tea.Cmd {
	return m.unlock.Init()
}

func (m Model) lang() i18n.Lang {
	if m.state == nil {
		return i18n.English
	}
	return m.state.Language
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case unlockSubmitMsg:
		return m.openVault(msg.passphrase)

	case signInMsg:
		return m.handleSignIn(msg.email, msg.password)

	case signOutMsg:
		return m.handleSignOut()

	case navigateMsg:
		return m.navigate(msg.view)

	case saveProfileMsg:
		return m, m.runProfileUpdate(msg.patch)

	case profileDoneMsg:
		return m.handleProfileDone(msg)

	case saveCredentialsMsg:
		return m, m.runCredentialsUpdate(msg.kind, msg.patch)

	case credentialsDoneMsg:
		return m.handleCredentialsDone(msg)

	case changeLanguageMsg:
		return m.handleLanguageChange(msg.lang)

	case changeSettingsMsg:
		return m.handleSettingsChange(msg)

	case reloadMsg:
		return m.reload()

	case clearAllMsg:
		return m.handleClearAll()

	case autoRefreshMsg:
		return m.handleAutoRefresh(msg)
	}

	return m.updateActive(msg)
}

func (m Model) View() string {
	if m.active == viewUnlock {
		return m.unlock.View()
	}

	var content string
	switch m.active {
	case viewLogin:
		content = m.login.View()
	case viewMenu:
		content = m.menu.View()
	case viewProfile:
		content = m.profile.View()
	case viewAccount:
		content = m.account.View()
	case viewLanguage:
		content = m.language.View()
	case viewAppearance:
		content = m.appearance.View()
	case viewDebug:
		content = m.debug.View()
	}

	l := m.lang()
	if l.RTL() && m.width > 0 {
		content = alignRight(content, m.width)
	}

	header := zstyle.RenderHeader("zsettings", i18n.T(l, viewTitle(m.active)), accent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// alignRight right-aligns every line of s within width columns.
func alignRight(s string, width int) string {
	style := lipgloss.NewStyle().Width(width - 2).Align(lipgloss.Right)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines[i] = style.Render(strings.TrimSpace(line))
	}
	return strings.Join(lines, "\n")
}

// viewTitle returns the message key of each view's title.
func viewTitle(id viewID) string {
	switch id {
	case viewLogin:
		return "sign in"
	case viewMenu:
		return "settings"
	case viewProfile:
		return "profile"
	case viewAccount:
		return "account"
	case viewLanguage:
		return "language"
	case viewAppearance:
		return "appearance"
	case viewDebug:
		return "debug"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewLogin:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "next"},
			{Key: "enter", Desc: "sign in"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	case viewMenu:
		return []zstyle.HelpPair{
			{Key: "arrows/hjkl", Desc: "navigate"},
			{Key: "enter", Desc: "select"},
			{Key: "q", Desc: "quit"},
		}
	case viewProfile:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "next"},
			{Key: "enter", Desc: "save"},
			{Key: "esc", Desc: "back"},
		}
	case viewAccount:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "next"},
			{Key: "ctrl+e/ctrl+p", Desc: "email/password"},
			{Key: "ctrl+g", Desc: "suggest"},
			{Key: "enter", Desc: "save"},
			{Key: "esc", Desc: "back"},
		}
	case viewLanguage, viewAppearance:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter/space", Desc: "select"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewDebug:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "c", Desc: "copy"},
			{Key: "r", Desc: "reload"},
			{Key: "x", Desc: "clear all"},
			{Key: "esc", Desc: "back"},
		}
	}
	return nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewUnlock:
		m.unlock, cmd = m.unlock.Update(msg)
	case viewLogin:
		m.login, cmd = m.login.Update(msg)
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewProfile:
		m.profile, cmd = m.profile.Update(msg)
	case viewAccount:
		m.account, cmd = m.account.Update(msg)
	case viewLanguage:
		m.language, cmd = m.language.Update(msg)
	case viewAppearance:
		m.appearance, cmd = m.appearance.Update(msg)
	case viewDebug:
		m.debug, cmd = m.debug.Update(msg)
	}

	return m, cmd
}

func (m Model) openVault(passphrase string) (tea.Model, tea.Cmd) {
	v, err := kv.OpenDir(m.cfg.Backend, m.dataDir, passphrase)
	if err != nil {
		m.unlock, _ = m.unlock.Update(unlockErrMsg{err: err})
		return m, nil
	}

	st, err := state.Load(v, m.cfg.StateDefaults(), time.Now)
	if err != nil {
		v.Close()
		m.unlock, _ = m.unlock.Update(unlockErrMsg{err: err})
		return m, nil
	}

	m.vault = v
	return m.attach(st)
}

// attach installs loaded state and shows the first view for it.
func (m Model) attach(st *state.State) (tea.Model, tea.Cmd) {
	m.state = st
	applyTheme(st.Settings.Theme)
	m.refreshGen++

	if !st.LoggedIn {
		m.login = newLoginModel(st.Language)
		m.active = viewLogin
		return m, tea.Batch(m.login.Init(), tea.ClearScreen)
	}

	m.menu = newMenuModel(m.version, st.Language, st.Settings.GridColumns)
	m.active = viewMenu
	return m, tea.ClearScreen
}

// applyTheme sets the global style scope for the theme.
func applyTheme(t prefs.Theme) {
	lipgloss.SetHasDarkBackground(t == prefs.Dark)
}

func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	if m.state == nil {
		return m, nil
	}
	st := m.state
	l := st.Language
	m.refreshGen++

	switch view {
	case viewMenu:
		mm := newMenuModel(m.version, l, st.Settings.GridColumns)
		mm.cursor = m.menu.cursor
		m.menu = mm
		m.active = viewMenu
		return m, tea.ClearScreen

	case viewProfile:
		m.profile = newProfileModel(l, st.Profile)
		m.active = viewProfile
		return m, tea.Batch(m.profile.Init(), tea.ClearScreen)

	case viewAccount:
		m.account = newAccountModel(l, st.Credentials)
		m.active = viewAccount
		return m, tea.Batch(m.account.Init(), tea.ClearScreen)

	case viewLanguage:
		m.language = newLanguageModel(l)
		m.active = viewLanguage
		return m, tea.ClearScreen

	case viewAppearance:
		m.appearance = newAppearanceModel(l, st.Settings)
		m.active = viewAppearance
		return m, tea.ClearScreen

	case viewDebug:
		m.debug = newDebugModel(l, inspect.Read(st.Store()))
		m.active = viewDebug
		return m, tea.Batch(tea.ClearScreen, m.scheduleRefresh())
	}

	return m, nil
}

func (m Model) handleSignIn(email, password string) (tea.Model, tea.Cmd) {
	ok, err := m.state.SignIn(email, password)
	if err != nil {
		slog.Error("sign in", "err", err)
		m.login, _ = m.login.Update(signInResultMsg{err: err})
		return m, m.login.flash.expire()
	}
	if !ok {
		m.login, _ = m.login.Update(signInResultMsg{})
		return m, m.login.flash.expire()
	}

	l := m.state.Language
	m.menu = newMenuModel(m.version, l, m.state.Settings.GridColumns)
	m.menu.flash = okFlash(i18n.T(l, "welcome back, %s", m.state.Profile.Name))
	m.active = viewMenu
	return m, tea.Batch(tea.ClearScreen, m.menu.flash.expire())
}

func (m Model) handleSignOut() (tea.Model, tea.Cmd) {
	if err := m.state.SignOut(); err != nil {
		slog.Error("sign out", "err", err)
		m.menu.flash = errFlash(err.Error())
		return m, m.menu.flash.expire()
	}
	m.login = newLoginModel(m.state.Language)
	m.active = viewLogin
	return m, tea.Batch(m.login.Init(), tea.ClearScreen)
}

// runProfileUpdate performs the update off the event loop. Exactly one
// profileDoneMsg is delivered.
func (m Model) runProfileUpdate(p account.ProfilePatch) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		err := svc.UpdateProfile(context.Background(), p)
		return profileDoneMsg{patch: p, err: err}
	}
}

func (m Model) handleProfileDone(msg profileDoneMsg) (tea.Model, tea.Cmd) {
	err := msg.err
	if err == nil {
		err = m.state.OnProfileChange(msg.patch)
	}
	if err != nil {
		slog.Error("profile update", "err", err)
	}

	res := profileResultMsg{err: err, profile: m.state.Profile}
	if m.active != viewProfile {
		return m, nil
	}
	var cmd tea.Cmd
	m.profile, cmd = m.profile.Update(res)
	return m, cmd
}

func (m Model) runCredentialsUpdate(kind credentialKind, p account.CredentialsPatch) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		var err error
		switch kind {
		case changeEmail:
			err = svc.ChangeEmail(context.Background(), *p.Email)
		case changePassword:
			err = svc.ChangePassword(context.Background(), *p.Password)
		}
		return credentialsDoneMsg{kind: kind, patch: p, err: err}
	}
}

func (m Model) handleCredentialsDone(msg credentialsDoneMsg) (tea.Model, tea.Cmd) {
	err := msg.err
	if err == nil {
		err = m.state.OnCredentialsChange(msg.patch)
	}
	if err != nil {
		slog.Error("credentials update", "kind", msg.kind, "err", err)
	}

	if m.active != viewAccount {
		return m, nil
	}
	var cmd tea.Cmd
	m.account, cmd = m.account.Update(credentialsResultMsg{
		kind:        msg.kind,
		err:         err,
		credentials: m.state.Credentials,
	})
	return m, cmd
}

func (m Model) handleLanguageChange(l i18n.Lang) (tea.Model, tea.Cmd) {
	if l == m.state.Language {
		return m, nil
	}
	if err := m.state.OnLanguageChange(l); err != nil {
		slog.Error("language change", "err", err)
		m.language.flash = errFlash(err.Error())
		return m, m.language.flash.expire()
	}

	m.language = newLanguageModel(l)
	m.language.flash = okFlash(i18n.T(l, "language changed to %s", l.SelfName()))
	return m, m.language.flash.expire()
}

func (m Model) handleSettingsChange(msg changeSettingsMsg) (tea.Model, tea.Cmd) {
	l := m.state.Language
	if err := m.state.OnSettingsChange(msg.settings); err != nil {
		slog.Error("settings change", "err", err)
		m.appearance.settings = m.state.Settings
		m.appearance.flash = errFlash(i18n.T(l, "settings save failed"))
		return m, m.appearance.flash.expire()
	}

	applyTheme(m.state.Settings.Theme)
	m.appearance.settings = m.state.Settings
	m.appearance.flash = okFlash(i18n.T(l, msg.toastKey, localizeArgs(l, msg.toastArgs)...))
	return m, m.appearance.flash.expire()
}

// localizeArgs translates string arguments, which are message keys.
func localizeArgs(l i18n.Lang, args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		if s, ok := a.(string); ok {
			out[i] = i18n.T(l, s)
			continue
		}
		out[i] = a
	}
	return out
}

// reload re-derives all state from the store, like a fresh start.
func (m Model) reload() (tea.Model, tea.Cmd) {
	if err := m.state.Reload(); err != nil {
		slog.Error("reload", "err", err)
		m.debug.flash = errFlash(err.Error())
		return m, m.debug.flash.expire()
	}
	return m.attach(m.state)
}

func (m Model) handleClearAll() (tea.Model, tea.Cmd) {
	if err := inspect.ClearAll(m.state.Store()); err != nil {
		slog.Error("clear all", "err", err)
		m.debug.flash = errFlash(err.Error())
		m.debug.report = inspect.Read(m.state.Store())
		return m, m.debug.flash.expire()
	}
	return m.reload()
}

// scheduleRefresh starts an auto refresh tick for the debug view when
// enabled in settings.
func (m Model) scheduleRefresh() tea.Cmd {
	s := m.state.Settings
	if !s.AutoRefresh || s.RefreshInterval <= 0 {
		return nil
	}
	gen := m.refreshGen
	return tea.Tick(time.Duration(s.RefreshInterval)*time.Second, func(time.Time) tea.Msg {
		return autoRefreshMsg{gen: gen}
	})
}

func (m Model) handleAutoRefresh(msg autoRefreshMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.refreshGen || m.active != viewDebug {
		return m, nil
	}
	m.debug.report = inspect.Read(m.state.Store())
	m.debug.clampCursor()
	return m, m.scheduleRefresh()
}

// Close cleans up resources. Call after the program exits.
func (m Model) Close() {
	if m.vault != nil {
		m.vault.Close()
	}
}
