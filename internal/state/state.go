// Package state owns the application's durable records and persists every
// accepted change to the key/value store. Panels read copies and report
// changes back through the On* methods.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/zarlcorp/zsettings/internal/account"
	"github.com/zarlcorp/zsettings/internal/i18n"
	"github.com/zarlcorp/zsettings/internal/kv"
	"github.com/zarlcorp/zsettings/internal/prefs"
)

// Defaults seeds records that are missing from the store.
type Defaults struct {
	Name     string
	Email    string
	Password string
	Language i18n.Lang
}

// State is the host-owned application state.
type State struct {
	store    kv.Store
	defaults Defaults
	now      func() time.Time

	Settings    prefs.Settings
	Credentials account.Credentials
	Profile     account.Profile
	Language    i18n.Lang
	LoggedIn    bool
}

// Load reads every record from store. Missing records are created from
// defaults; unreadable ones fall back to defaults in memory only.
func Load(store kv.Store, d Defaults, now func() time.Time) (*State, error) {
	if now == nil {
		now = time.Now
	}
	if _, err := i18n.Parse(string(d.Language)); err != nil {
		d.Language = i18n.English
	}

	st := &State{store: store, defaults: d, now: now}
	if err := st.Reload(); err != nil {
		return nil, err
	}
	return st, nil
}

// Reload discards in-memory records and re-derives them from the store.
func (st *State) Reload() error {
	t := st.now().UTC()

	settings := prefs.Defaults()
	settings.Language = st.defaults.Language
	creds := account.Credentials{
		Email:       st.defaults.Email,
		Password:    st.defaults.Password,
		LastUpdated: t,
	}
	profile := account.Profile{
		Name:     st.defaults.Name,
		Email:    st.defaults.Email,
		JoinDate: t,
	}

	if err := st.loadJSON(kv.KeySettings, &settings); err != nil {
		return err
	}
	settings = settings.Normalize()

	if err := st.loadJSON(kv.KeyCredentials, &creds); err != nil {
		return err
	}
	if err := st.loadJSON(kv.KeyProfile, &profile); err != nil {
		return err
	}

	lang := settings.Language
	raw, err := st.store.Get(kv.KeyLanguage)
	switch {
	case err == nil:
		if l, perr := i18n.Parse(raw); perr == nil {
			lang = l
		} else {
			slog.Warn("ignoring stored language", "value", raw)
		}
	case errors.Is(err, kv.ErrNotFound):
		if err := st.store.Set(kv.KeyLanguage, string(lang)); err != nil {
			return fmt.Errorf("load state: %w", err)
		}
	default:
		return fmt.Errorf("load state: %w", err)
	}
	settings.Language = lang

	loggedIn := false
	raw, err = st.store.Get(kv.KeyLoggedIn)
	switch {
	case err == nil:
		loggedIn = strings.TrimSpace(raw) == "true"
	case !errors.Is(err, kv.ErrNotFound):
		return fmt.Errorf("load state: %w", err)
	}

	st.Settings = settings
	st.Credentials = creds
	st.Profile = profile
	st.Language = lang
	st.LoggedIn = loggedIn
	return nil
}

// loadJSON decodes key into v. A missing value keeps v as given and writes
// it so the record exists from now on. A corrupt value also keeps v but is
// left in the store untouched for the inspector to report.
func (st *State) loadJSON(key string, v any) error {
	raw, err := st.store.Get(key)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		if err := st.putJSON(key, v); err != nil {
			return fmt.Errorf("load %s: %w", key, err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("load %s: %w", key, err)
	}

	fallback, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if jerr := json.Unmarshal([]byte(raw), v); jerr != nil {
		slog.Warn("using defaults for unreadable record", "key", key, "err", jerr)
		// a failed decode may have filled v partially
		return json.Unmarshal(fallback, v)
	}
	return nil
}

func (st *State) putJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return st.store.Set(key, string(data))
}

// Store returns the backing store.
func (st *State) Store() kv.Store { return st.store }

// OnSettingsChange persists a full settings record.
func (st *State) OnSettingsChange(s prefs.Settings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	if err := st.putJSON(kv.KeySettings, s); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	st.Settings = s
	return nil
}

// OnLanguageChange persists a new language. Selecting the current language
// does nothing.
func (st *State) OnLanguageChange(l i18n.Lang) error {
	if _, err := i18n.Parse(string(l)); err != nil {
		return fmt.Errorf("change language: %w", err)
	}
	if l == st.Language {
		return nil
	}

	s := st.Settings.WithLanguage(l)
	if err := st.putJSON(kv.KeySettings, s); err != nil {
		return fmt.Errorf("change language: %w", err)
	}
	if err := st.store.Set(kv.KeyLanguage, string(l)); err != nil {
		if rerr := st.putJSON(kv.KeySettings, st.Settings); rerr != nil {
			slog.Error("restore settings", "err", rerr)
		}
		return fmt.Errorf("change language: %w", err)
	}

	st.Language = l
	st.Settings = s
	return nil
}

// OnCredentialsChange applies and persists a partial credentials update.
func (st *State) OnCredentialsChange(p account.CredentialsPatch) error {
	c := p.Apply(st.Credentials, st.now().UTC())
	if c.Password == "" {
		return errors.New("save credentials: empty password")
	}
	if !account.ValidEmail(c.Email) {
		return fmt.Errorf("save credentials: invalid email %q", c.Email)
	}
	if err := st.putJSON(kv.KeyCredentials, c); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	st.Credentials = c
	return nil
}

// OnProfileChange applies and persists a partial profile update.
func (st *State) OnProfileChange(p account.ProfilePatch) error {
	prof := p.Apply(st.Profile)
	if strings.TrimSpace(prof.Name) == "" {
		return errors.New("save profile: empty name")
	}
	if err := st.putJSON(kv.KeyProfile, prof); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	st.Profile = prof
	return nil
}

// SignIn checks email and password against the stored credentials. On
// success it records the login time and sets the logged in flag.
func (st *State) SignIn(email, password string) (bool, error) {
	if !account.Authenticate(st.Credentials, email, password) {
		return false, nil
	}

	t := st.now().UTC()
	if err := st.OnProfileChange(account.ProfilePatch{LastLogin: &t}); err != nil {
		return false, fmt.Errorf("sign in: %w", err)
	}
	if err := st.store.Set(kv.KeyLoggedIn, "true"); err != nil {
		return false, fmt.Errorf("sign in: %w", err)
	}
	st.LoggedIn = true
	return true, nil
}

// SignOut clears the logged in flag.
func (st *State) SignOut() error {
	if err := st.store.Set(kv.KeyLoggedIn, "false"); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	st.LoggedIn = false
	return nil
}
