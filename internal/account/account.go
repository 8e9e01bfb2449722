// Package account holds the credentials and profile records and the rules
// for changing them.
package account

import (
	"regexp"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Credentials is the sign-in record. Field names match the persisted JSON.
type Credentials struct {
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Profile is the display profile. JoinDate never changes after creation.
type Profile struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	LastLogin time.Time `json:"lastLogin"`
	JoinDate  time.Time `json:"joinDate"`
}

// CredentialsPatch is a partial credentials update. Nil fields are unchanged.
type CredentialsPatch struct {
	Email    *string
	Password *string
}

// Apply returns c with the patch applied and LastUpdated set to now.
func (p CredentialsPatch) Apply(c Credentials, now time.Time) Credentials {
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Password != nil {
		c.Password = *p.Password
	}
	c.LastUpdated = now
	return c
}

// ProfilePatch is a partial profile update. Nil fields are unchanged.
type ProfilePatch struct {
	Name      *string
	Email     *string
	LastLogin *time.Time
}

// Apply returns p with the patch applied. JoinDate is never touched.
func (pp ProfilePatch) Apply(p Profile) Profile {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Email != nil {
		p.Email = *pp.Email
	}
	if pp.LastLogin != nil {
		p.LastLogin = *pp.LastLogin
	}
	return p
}

// ValidEmail reports whether s has the basic address shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Authenticate reports whether email and password match c.
// Email comparison ignores case and surrounding space.
func Authenticate(c Credentials, email, password string) bool {
	return strings.EqualFold(strings.TrimSpace(email), c.Email) && password == c.Password
}
