package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/zarlcorp/zsettings/internal/account"
	"github.com/zarlcorp/zsettings/internal/config"
	"github.com/zarlcorp/zsettings/internal/i18n"
	"github.com/zarlcorp/zsettings/internal/inspect"
	"github.com/zarlcorp/zsettings/internal/kv"
	"github.com/zarlcorp/zsettings/internal/prefs"
)

// helpers

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func specialKey(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func escKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}

func testCredentials() account.Credentials {
	return account.Credentials{
		Email:       "admin@example.com",
		Password:    "Admin@123",
		LastUpdated: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testProfile() account.Profile {
	return account.Profile{
		Name:     "Admin",
		Email:    "admin@example.com",
		JoinDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// unlock view tests

func TestUnlockViewShowsPrompt(t *testing.T) {
	m := newUnlockModel(i18n.English, kv.BackendFiles, false)
	view := m.View()

	for _, want := range []string{"zsettings", "unlock settings", "passphrase", "storage: files"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "confirm passphrase") {
		t.Error("unlock view should not ask for confirmation")
	}
}

func TestUnlockViewDefaultsToVault(t *testing.T) {
	m := newUnlockModel(i18n.English, "", true)
	view := m.View()

	if !strings.Contains(view, "storage: vault") {
		t.Error("view should name the vault backend")
	}
	if !strings.Contains(view, "create a passphrase") || !strings.Contains(view, "confirm passphrase") {
		t.Error("first run should show both fields")
	}
}

func TestUnlockViewArabic(t *testing.T) {
	m := newUnlockModel(i18n.Arabic, kv.BackendVault, true)
	view := m.View()

	if !strings.Contains(view, "تأكيد عبارة المرور") {
		t.Error("confirm label should be arabic")
	}
	if !strings.Contains(view, "خزنة مشفرة") {
		t.Error("backend name should be arabic")
	}
}

func TestUnlockFirstRunMismatch(t *testing.T) {
	m := newUnlockModel(i18n.English, kv.BackendVault, true)

	m.inputs[unlockPassphrase].SetValue("secret1")
	m, _ = m.Update(enterKey())
	if m.focus != unlockConfirm {
		t.Fatal("enter should move to the confirm field")
	}

	m.inputs[unlockConfirm].SetValue("secret2")
	m, cmd := m.Update(enterKey())

	if cmd != nil {
		t.Error("mismatch should not submit")
	}
	if !strings.Contains(m.View(), "passphrases do not match") {
		t.Error("should show mismatch error")
	}
	if m.focus != unlockPassphrase || m.inputs[unlockConfirm].Value() != "" {
		t.Error("mismatch should reset the form")
	}
}

func TestUnlockFirstRunMatch(t *testing.T) {
	m := newUnlockModel(i18n.English, kv.BackendVault, true)

	m.inputs[unlockPassphrase].SetValue("secret")
	m, _ = m.Update(specialKey(tea.KeyTab))
	m.inputs[unlockConfirm].SetValue("secret")
	_, cmd := m.Update(enterKey())

	if cmd == nil {
		t.Fatal("should emit command on matching passphrases")
	}
	submit, ok := cmd().(unlockSubmitMsg)
	if !ok {
		t.Fatal("should emit unlockSubmitMsg")
	}
	if submit.passphrase != "secret" {
		t.Errorf("passphrase = %q, want %q", submit.passphrase, "secret")
	}
}

func TestUnlockEmptyRejected(t *testing.T) {
	m := newUnlockModel(i18n.English, kv.BackendVault, false)
	m, cmd := m.Update(enterKey())

	if cmd != nil {
		t.Error("empty passphrase should not submit")
	}
	if !strings.Contains(m.View(), "passphrase is required") {
		t.Error("should show required error")
	}
}

func TestUnlockQKeyReachesInput(t *testing.T) {
	m := newUnlockModel(i18n.English, kv.BackendVault, false)
	m, _ = m.Update(keyMsg('q'))

	if got := m.inputs[unlockPassphrase].Value(); got != "q" {
		t.Fatalf("input = %q, want %q", got, "q")
	}
}

func TestUnlockErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		lang i18n.Lang
		err  error
		want string
	}{
		{
			name: "wrong passphrase",
			lang: i18n.English,
			err:  fmt.Errorf("open files: %w", kv.ErrWrongPassphrase),
			want: "wrong passphrase",
		},
		{
			name: "wrong passphrase arabic",
			lang: i18n.Arabic,
			err:  fmt.Errorf("open vault: %w", kv.ErrWrongPassphrase),
			want: "عبارة مرور خاطئة",
		},
		{
			name: "other failure",
			lang: i18n.English,
			err:  errors.New("disk full"),
			want: "could not open storage: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newUnlockModel(tt.lang, kv.BackendVault, false)
			m.inputs[unlockPassphrase].SetValue("wrong")
			m, _ = m.Update(unlockErrMsg{err: tt.err})

			if m.inputs[unlockPassphrase].Value() != "" {
				t.Error("input should be cleared after an error")
			}
			if m.errMsg != tt.want {
				t.Errorf("error = %q, want %q", m.errMsg, tt.want)
			}
		})
	}
}

func TestUnlockWrongPassphraseOnDisk(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Backend = kv.BackendFiles

	s, err := kv.OpenDir(cfg.Backend, dir, "right")
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	m := New("1.0", dir, cfg, false)
	result, _ := m.Update(unlockSubmitMsg{passphrase: "wrong"})
	m = result.(Model)

	if m.active != viewUnlock {
		t.Fatalf("active = %v, want unlock", m.active)
	}
	if m.unlock.errMsg != "wrong passphrase" {
		t.Errorf("error = %q, want localized wrong passphrase", m.unlock.errMsg)
	}
}

// login view tests

func TestLoginEmptyFieldsRejected(t *testing.T) {
	m := newLoginModel(i18n.English)
	m, _ = m.Update(enterKey())

	if !strings.Contains(m.View(), "all fields are required") {
		t.Error("should show required fields error")
	}
}

func TestLoginSubmitTrimsEmail(t *testing.T) {
	m := newLoginModel(i18n.English)
	m.inputs[loginEmail].SetValue("  admin@example.com ")
	m.inputs[loginPassword].SetValue("Admin@123")

	_, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("expected command")
	}
	msg, ok := cmd().(signInMsg)
	if !ok {
		t.Fatal("expected signInMsg")
	}
	if msg.email != "admin@example.com" {
		t.Errorf("email = %q, want trimmed", msg.email)
	}
}

func TestLoginRejectedClearsPassword(t *testing.T) {
	m := newLoginModel(i18n.English)
	m.inputs[loginPassword].SetValue("nope")
	m, _ = m.Update(signInResultMsg{})

	if m.inputs[loginPassword].Value() != "" {
		t.Error("password should be cleared")
	}
	if !strings.Contains(m.View(), "invalid email or password") {
		t.Error("should show rejection")
	}
}

// menu view tests

func TestMenuGridNavigation(t *testing.T) {
	tests := []struct {
		name    string
		columns int
		start   int
		key     tea.KeyMsg
		want    int
	}{
		{"right", 3, 0, keyMsg('l'), 1},
		{"left at start stays", 3, 0, keyMsg('h'), 0},
		{"down moves a row", 3, 1, specialKey(tea.KeyDown), 4},
		{"down off grid stays", 3, 5, specialKey(tea.KeyDown), 5},
		{"up moves a row", 2, 3, specialKey(tea.KeyUp), 1},
		{"single column down", 1, 0, keyMsg('j'), 1},
		{"four columns down", 4, 2, keyMsg('j'), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMenuModel("1.0", i18n.English, tt.columns)
			m.cursor = tt.start
			m, _ = m.Update(tt.key)
			if m.cursor != tt.want {
				t.Errorf("cursor = %d, want %d", m.cursor, tt.want)
			}
		})
	}
}

func TestMenuSelectNavigates(t *testing.T) {
	tests := []struct {
		choice menuChoice
		want   viewID
	}{
		{menuProfile, viewProfile},
		{menuAccount, viewAccount},
		{menuLanguage, viewLanguage},
		{menuAppearance, viewAppearance},
		{menuDebug, viewDebug},
	}

	for _, tt := range tests {
		m := newMenuModel("1.0", i18n.English, 3)
		m.cursor = int(tt.choice)
		_, cmd := m.Update(enterKey())
		if cmd == nil {
			t.Fatalf("choice %d: expected command", tt.choice)
		}
		nav, ok := cmd().(navigateMsg)
		if !ok {
			t.Fatalf("choice %d: expected navigateMsg", tt.choice)
		}
		if nav.view != tt.want {
			t.Errorf("choice %d: view = %d, want %d", tt.choice, nav.view, tt.want)
		}
	}
}

func TestMenuSignOut(t *testing.T) {
	m := newMenuModel("1.0", i18n.English, 3)
	m.cursor = int(menuSignOut)
	_, cmd := m.Update(enterKey())
	if _, ok := cmd().(signOutMsg); !ok {
		t.Error("expected signOutMsg")
	}
}

func TestMenuViewLocalized(t *testing.T) {
	m := newMenuModel("1.0", i18n.Arabic, 2)
	view := m.View()
	if !strings.Contains(view, "الملف الشخصي") {
		t.Error("arabic menu should show translated labels")
	}
}

// profile view tests

func TestProfileSubmitInvalidShowsFieldErrors(t *testing.T) {
	m := newProfileModel(i18n.English, testProfile())
	m.inputs[profileName].SetValue("  ")
	m.inputs[profileEmail].SetValue("not-an-email")

	m, cmd := m.Update(enterKey())
	if cmd != nil {
		t.Error("invalid input should not submit")
	}
	if m.submitting {
		t.Error("should not be in flight")
	}

	view := m.View()
	if !strings.Contains(view, "name is required") {
		t.Error("should show name error")
	}
	if !strings.Contains(view, "invalid email address") {
		t.Error("should show email error")
	}
}

func TestProfileSubmitTrims(t *testing.T) {
	m := newProfileModel(i18n.English, testProfile())
	m.inputs[profileName].SetValue("  Jane Doe  ")
	m.inputs[profileEmail].SetValue(" jane@example.com ")

	m, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("expected save command")
	}
	if !m.submitting {
		t.Error("should be in flight")
	}

	save, ok := cmd().(saveProfileMsg)
	if !ok {
		t.Fatal("expected saveProfileMsg")
	}
	if *save.patch.Name != "Jane Doe" || *save.patch.Email != "jane@example.com" {
		t.Errorf("patch = %q %q, want trimmed", *save.patch.Name, *save.patch.Email)
	}
}

func TestProfileSubmitWhileInFlightIgnored(t *testing.T) {
	m := newProfileModel(i18n.English, testProfile())
	m.submitting = true

	_, cmd := m.Update(enterKey())
	if cmd != nil {
		t.Error("second submit should be ignored")
	}
}

func TestProfileResult(t *testing.T) {
	m := newProfileModel(i18n.English, testProfile())
	m.submitting = true

	m, _ = m.Update(profileResultMsg{err: errors.New("boom")})
	if m.submitting {
		t.Error("failure should clear in-flight flag")
	}
	if !m.flash.err || !strings.Contains(m.flash.text, "profile update failed") {
		t.Errorf("flash = %+v, want failure toast", m.flash)
	}

	m.submitting = true
	m, _ = m.Update(profileResultMsg{profile: testProfile()})
	if m.flash.err || !strings.Contains(m.flash.text, "profile updated") {
		t.Errorf("flash = %+v, want success toast", m.flash)
	}
}

func TestStaleFlashTickKeepsNewerFlash(t *testing.T) {
	m := newProfileModel(i18n.English, testProfile())
	m.submitting = true
	m, _ = m.Update(profileResultMsg{err: errors.New("boom")})
	first := m.flash

	m.submitting = true
	m, _ = m.Update(profileResultMsg{profile: testProfile()})
	second := m.flash
	if second.id == first.id {
		t.Fatal("flashes should get distinct ids")
	}

	m, _ = m.Update(flashMsg{id: first.id})
	if m.flash.text != "profile updated" {
		t.Errorf("stale tick cleared newer flash: %+v", m.flash)
	}

	m, _ = m.Update(flashMsg{id: second.id})
	if m.flash.text != "" {
		t.Errorf("flash = %+v, want cleared", m.flash)
	}
}

func TestProfileEscNavigatesBack(t *testing.T) {
	m := newProfileModel(i18n.English, testProfile())
	_, cmd := m.Update(escKey())
	if nav, ok := cmd().(navigateMsg); !ok || nav.view != viewMenu {
		t.Error("esc should navigate to menu")
	}
}

// account view tests

func passwordForm(t *testing.T, current, next, confirm string) accountModel {
	t.Helper()
	m := newAccountModel(i18n.English, testCredentials())
	m, _ = m.Update(specialKey(tea.KeyCtrlP))
	if m.form != changePassword {
		t.Fatal("ctrl+p should switch to the password form")
	}
	m.passwordInputs[passwordCurrent].SetValue(current)
	m.passwordInputs[passwordNew].SetValue(next)
	m.passwordInputs[passwordConfirm].SetValue(confirm)
	return m
}

func emailForm(newEmail, confirm string) accountModel {
	m := newAccountModel(i18n.English, testCredentials())
	m.emailInputs[emailNew].SetValue(newEmail)
	m.emailInputs[emailConfirm].SetValue(confirm)
	return m
}

func TestAccountPasswordRejections(t *testing.T) {
	tests := []struct {
		name             string
		current, n, conf string
		want             string
	}{
		{"missing", "", "Str0ng!pw", "Str0ng!pw", account.MsgFieldsRequired},
		{"wrong current", "nope", "Str0ng!pw", "Str0ng!pw", account.MsgWrongCurrent},
		{"mismatch", "Admin@123", "Str0ng!pw", "Str0ng!px", account.MsgPasswordsMismatch},
		{"same", "Admin@123", "Admin@123", "Admin@123", account.MsgSamePassword},
		{"weak", "Admin@123", "abcdefgh", "abcdefgh", account.MsgWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := passwordForm(t, tt.current, tt.n, tt.conf)
			m, _ = m.Update(enterKey())

			if m.passwordBusy {
				t.Error("rejected submit should not be in flight")
			}
			if !m.flash.err || m.flash.text != tt.want {
				t.Errorf("flash = %+v, want error %q", m.flash, tt.want)
			}
		})
	}
}

func TestAccountPasswordSubmit(t *testing.T) {
	m := passwordForm(t, "Admin@123", "N3w!Passw0rd", "N3w!Passw0rd")
	m, cmd := m.Update(enterKey())

	if !m.passwordBusy {
		t.Error("should be in flight")
	}
	save, ok := cmd().(saveCredentialsMsg)
	if !ok {
		t.Fatal("expected saveCredentialsMsg")
	}
	if save.kind != changePassword || *save.patch.Password != "N3w!Passw0rd" {
		t.Errorf("save = %+v", save)
	}
	if save.patch.Email != nil {
		t.Error("password change should not touch email")
	}

	// a second submit while in flight does nothing
	_, cmd = m.Update(enterKey())
	if cmd != nil {
		t.Error("submit while in flight should be ignored")
	}
}

func TestAccountEmailRejections(t *testing.T) {
	tests := []struct {
		name          string
		email, confir string
		want          string
	}{
		{"missing", "new@example.com", "", account.MsgFieldsRequired},
		{"format", "new@example", "Admin@123", account.MsgInvalidEmail},
		{"wrong password", "new@example.com", "Admin@124", account.MsgWrongPassword},
		{"same email", "ADMIN@example.com", "Admin@123", account.MsgSameEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := emailForm(tt.email, tt.confir)
			m, _ = m.Update(enterKey())

			if m.emailBusy {
				t.Error("rejected submit should not be in flight")
			}
			if !m.flash.err || m.flash.text != tt.want {
				t.Errorf("flash = %+v, want error %q", m.flash, tt.want)
			}
		})
	}
}

func TestAccountEmailSubmit(t *testing.T) {
	m := emailForm(" new@example.com ", "Admin@123")
	m, cmd := m.Update(enterKey())

	if !m.emailBusy {
		t.Error("should be in flight")
	}
	save, ok := cmd().(saveCredentialsMsg)
	if !ok {
		t.Fatal("expected saveCredentialsMsg")
	}
	if save.kind != changeEmail || *save.patch.Email != "new@example.com" {
		t.Errorf("save = %+v", save)
	}
}

func TestAccountFormsInFlightIndependently(t *testing.T) {
	m := emailForm("new@example.com", "Admin@123")
	m, _ = m.Update(enterKey())

	m, _ = m.Update(specialKey(tea.KeyCtrlP))
	m.passwordInputs[passwordCurrent].SetValue("Admin@123")
	m.passwordInputs[passwordNew].SetValue("N3w!Passw0rd")
	m.passwordInputs[passwordConfirm].SetValue("N3w!Passw0rd")
	_, cmd := m.Update(enterKey())

	if cmd == nil {
		t.Error("password form should submit while the email form is in flight")
	}
}

func TestAccountResultResetsForm(t *testing.T) {
	m := emailForm("new@example.com", "Admin@123")
	m.emailBusy = true

	updated := testCredentials()
	updated.Email = "new@example.com"
	m, _ = m.Update(credentialsResultMsg{kind: changeEmail, credentials: updated})

	if m.emailBusy {
		t.Error("in-flight flag should clear")
	}
	for i, in := range m.emailInputs {
		if in.Value() != "" {
			t.Errorf("email input %d = %q, want empty", i, in.Value())
		}
	}
	if m.credentials.Email != "new@example.com" {
		t.Error("snapshot should update")
	}
	if m.flash.text != "email updated" {
		t.Errorf("flash = %q", m.flash.text)
	}
}

func TestAccountResultFailureKeepsFields(t *testing.T) {
	m := passwordForm(t, "Admin@123", "N3w!Passw0rd", "N3w!Passw0rd")
	m.passwordBusy = true
	m, _ = m.Update(credentialsResultMsg{kind: changePassword, err: errors.New("boom")})

	if m.passwordInputs[passwordNew].Value() == "" {
		t.Error("failure should keep input")
	}
	if !m.flash.err || m.flash.text != "password update failed" {
		t.Errorf("flash = %+v", m.flash)
	}
}

func TestAccountSuggestFillsStrongPassword(t *testing.T) {
	m := passwordForm(t, "", "", "")
	m, _ = m.Update(specialKey(tea.KeyCtrlG))

	pw := m.passwordInputs[passwordNew].Value()
	if pw == "" {
		t.Fatal("suggestion should fill the new password")
	}
	if m.passwordInputs[passwordConfirm].Value() != pw {
		t.Error("suggestion should fill the confirmation")
	}
}

func TestAccountMeterShowsLevel(t *testing.T) {
	m := passwordForm(t, "", "abcdefgH1", "")
	if !strings.Contains(m.View(), "good") {
		t.Error("meter should show level good for score 4")
	}
}

func TestAccountArabicToast(t *testing.T) {
	m := newAccountModel(i18n.Arabic, testCredentials())
	m, _ = m.Update(enterKey())
	if m.flash.text != "جميع الحقول مطلوبة" {
		t.Errorf("flash = %q, want arabic", m.flash.text)
	}
}

// language view tests

func TestLanguageSelectActiveIsNoop(t *testing.T) {
	m := newLanguageModel(i18n.English)
	_, cmd := m.Update(enterKey())
	if cmd != nil {
		t.Error("selecting the active language should do nothing")
	}
}

func TestLanguageSelectOther(t *testing.T) {
	m := newLanguageModel(i18n.English)
	m, _ = m.Update(keyMsg('j'))
	_, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("expected change command")
	}
	msg, ok := cmd().(changeLanguageMsg)
	if !ok || msg.lang != i18n.Arabic {
		t.Errorf("msg = %+v, want arabic", msg)
	}
}

func TestLanguageViewShowsSelfNames(t *testing.T) {
	view := newLanguageModel(i18n.Arabic).View()
	for _, want := range []string{"English", "العربية"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

// appearance view tests

func appearanceChange(t *testing.T, m appearanceModel, k tea.KeyMsg) changeSettingsMsg {
	t.Helper()
	_, cmd := m.Update(k)
	if cmd == nil {
		t.Fatal("expected change command")
	}
	msg, ok := cmd().(changeSettingsMsg)
	if !ok {
		t.Fatal("expected changeSettingsMsg")
	}
	return msg
}

func TestAppearanceGridColumnsKeepsOtherFields(t *testing.T) {
	s := prefs.Settings{
		Theme:           prefs.Dark,
		GridColumns:     2,
		AutoRefresh:     true,
		RefreshInterval: 300,
		Language:        i18n.Arabic,
	}
	m := newAppearanceModel(i18n.English, s)
	m.cursor = rowGridColumns

	msg := appearanceChange(t, m, keyMsg('l'))

	want := s
	want.GridColumns = 3
	if diff := cmp.Diff(want, msg.settings); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestAppearanceCycles(t *testing.T) {
	tests := []struct {
		name  string
		row   int
		key   tea.KeyMsg
		check func(prefs.Settings) bool
	}{
		{"theme", rowTheme, enterKey(), func(s prefs.Settings) bool { return s.Theme == prefs.Dark }},
		{"columns back", rowGridColumns, keyMsg('h'), func(s prefs.Settings) bool { return s.GridColumns == 2 }},
		{"auto refresh", rowAutoRefresh, keyMsg(' '), func(s prefs.Settings) bool { return s.AutoRefresh }},
		{"interval", rowRefreshInterval, keyMsg('l'), func(s prefs.Settings) bool { return s.RefreshInterval == 60 }},
		{"interval back", rowRefreshInterval, keyMsg('h'), func(s prefs.Settings) bool { return s.RefreshInterval == 10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newAppearanceModel(i18n.English, prefs.Defaults())
			m.cursor = tt.row
			msg := appearanceChange(t, m, tt.key)
			if !tt.check(msg.settings) {
				t.Errorf("unexpected settings %+v", msg.settings)
			}
			if msg.toastKey == "" {
				t.Error("change should carry a toast")
			}
		})
	}
}

func TestNextWraps(t *testing.T) {
	if got := next(prefs.RefreshIntervals, 600, 1); got != 10 {
		t.Errorf("next(600) = %d, want 10", got)
	}
	if got := next(prefs.GridColumnOptions, 1, -1); got != 4 {
		t.Errorf("prev(1) = %d, want 4", got)
	}
	if got := next(prefs.RefreshIntervals, 7, 1); got != 10 {
		t.Errorf("unknown value = %d, want first choice", got)
	}
}

// debug view tests

func testReport() inspect.Report {
	return inspect.Report{
		Entries: []inspect.Entry{
			{Key: "settings", Raw: `{"theme":"light"}`, Parsed: map[string]any{"theme": "light"}},
			{Key: "loggedIn", Raw: "true"},
		},
		TotalBytes: 21,
	}
}

func TestDebugViewShowsEntries(t *testing.T) {
	view := newDebugModel(i18n.English, testReport()).View()
	for _, want := range []string{"settings", "loggedIn", "21 B", `"theme": "light"`} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDebugViewErrorSuppressesDetail(t *testing.T) {
	r := inspect.Report{Err: errors.New("parse settings: bad json")}
	view := newDebugModel(i18n.English, r).View()

	if !strings.Contains(view, "storage error") {
		t.Error("view should show error")
	}
	if strings.Contains(view, "total size") {
		t.Error("error view should not show details")
	}
}

func TestDebugClearAllNeedsConfirm(t *testing.T) {
	m := newDebugModel(i18n.English, testReport())

	m, cmd := m.Update(keyMsg('x'))
	if cmd != nil || !m.confirming {
		t.Fatal("x should ask for confirmation")
	}

	m, cmd = m.Update(keyMsg('n'))
	if cmd != nil || m.confirming {
		t.Fatal("n should cancel")
	}

	m, _ = m.Update(keyMsg('x'))
	_, cmd = m.Update(keyMsg('y'))
	if _, ok := cmd().(clearAllMsg); !ok {
		t.Error("y should emit clearAllMsg")
	}
}

func TestDebugReload(t *testing.T) {
	m := newDebugModel(i18n.English, testReport())
	_, cmd := m.Update(keyMsg('r'))
	if _, ok := cmd().(reloadMsg); !ok {
		t.Error("r should emit reloadMsg")
	}
}

func TestDebugCopy(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = orig })

	m := newDebugModel(i18n.English, testReport())
	m, _ = m.Update(keyMsg('j'))
	m, _ = m.Update(keyMsg('c'))

	if copied != "true" {
		t.Errorf("copied %q, want raw loggedIn value", copied)
	}
	if m.flash.err {
		t.Errorf("flash = %+v", m.flash)
	}
}

func TestDebugCopyFailure(t *testing.T) {
	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { writeClipboard = orig })

	m := newDebugModel(i18n.English, testReport())
	m, _ = m.Update(keyMsg('c'))
	if !m.flash.err {
		t.Error("copy failure should show an error")
	}
}

func TestDebugClampCursor(t *testing.T) {
	m := newDebugModel(i18n.English, testReport())
	m.cursor = 1
	m.report = inspect.Report{Entries: testReport().Entries[:1]}
	m.clampCursor()
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}

	m.report = inspect.Report{}
	m.clampCursor()
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 for empty report", m.cursor)
	}
}
