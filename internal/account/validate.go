package account

import (
	"errors"
	"strings"
)

// Message keys for validation failures. They double as English text and are
// localized at display time.
const (
	MsgNameRequired      = "name is required"
	MsgInvalidEmail      = "invalid email address"
	MsgFieldsRequired    = "all fields are required"
	MsgWrongPassword     = "password is incorrect"
	MsgWrongCurrent      = "current password is incorrect"
	MsgSameEmail         = "new email must differ from current"
	MsgPasswordsMismatch = "passwords do not match"
	MsgSamePassword      = "new password must differ from current"
	MsgWeakPassword      = "password is too weak"
)

// ValidationError is a user-correctable input problem. Key is a message key.
type ValidationError struct {
	Field string
	Key   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Key
	}
	return e.Field + ": " + e.Key
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func invalid(field, key string) error {
	return &ValidationError{Field: field, Key: key}
}

// ProfileInput is a submitted profile form.
type ProfileInput struct {
	Name  string
	Email string
}

// Validate checks every field and returns one error per failing field,
// keyed by field name. A nil map means the input is valid.
func (in ProfileInput) Validate() map[string]*ValidationError {
	var errs map[string]*ValidationError
	add := func(field, key string) {
		if errs == nil {
			errs = make(map[string]*ValidationError)
		}
		errs[field] = &ValidationError{Field: field, Key: key}
	}

	if strings.TrimSpace(in.Name) == "" {
		add("name", MsgNameRequired)
	}
	if !ValidEmail(strings.TrimSpace(in.Email)) {
		add("email", MsgInvalidEmail)
	}
	return errs
}

// Patch returns the trimmed input as a profile patch.
func (in ProfileInput) Patch() ProfilePatch {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	return ProfilePatch{Name: &name, Email: &email}
}

// EmailChange is a submitted email change request.
type EmailChange struct {
	NewEmail        string
	ConfirmPassword string
}

// Validate checks the request against the stored credentials. Checks run in
// order and the first failure is returned.
func (c EmailChange) Validate(cur Credentials) error {
	email := strings.TrimSpace(c.NewEmail)
	if email == "" || c.ConfirmPassword == "" {
		return invalid("", MsgFieldsRequired)
	}
	if !ValidEmail(email) {
		return invalid("new email", MsgInvalidEmail)
	}
	if c.ConfirmPassword != cur.Password {
		return invalid("confirm password", MsgWrongPassword)
	}
	if strings.EqualFold(email, cur.Email) {
		return invalid("new email", MsgSameEmail)
	}
	return nil
}

// Patch returns the change as a credentials patch.
func (c EmailChange) Patch() CredentialsPatch {
	email := strings.TrimSpace(c.NewEmail)
	return CredentialsPatch{Email: &email}
}

// PasswordChange is a submitted password change request.
type PasswordChange struct {
	Current string
	New     string
	Confirm string
}

// Validate checks the request against the stored credentials. Checks run in
// order and the first failure is returned.
func (c PasswordChange) Validate(cur Credentials) error {
	if c.Current == "" || c.New == "" || c.Confirm == "" {
		return invalid("", MsgFieldsRequired)
	}
	if c.Current != cur.Password {
		return invalid("current password", MsgWrongCurrent)
	}
	if c.New != c.Confirm {
		return invalid("confirm password", MsgPasswordsMismatch)
	}
	if c.New == cur.Password {
		return invalid("new password", MsgSamePassword)
	}
	if MeasureStrength(c.New).Score < MinScore {
		return invalid("new password", MsgWeakPassword)
	}
	return nil
}

// Patch returns the change as a credentials patch.
func (c PasswordChange) Patch() CredentialsPatch {
	pw := c.New
	return CredentialsPatch{Password: &pw}
}
