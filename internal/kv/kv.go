// Package kv defines the key/value storage capability shared by the settings
// host and the debug inspector, plus the persisted key layout.
package kv

import "errors"

// Persisted keys. The host and the inspector must agree on these exactly.
const (
	KeyCredentials = "credentials"
	KeySettings    = "settings"
	KeyProfile     = "profile"
	KeyLoggedIn    = "loggedIn"
	KeyLanguage    = "language"
	KeySuppliers   = "suppliers"
)

// AppKeys lists every key owned by the application, in display order.
// Clearing the store removes exactly these.
var AppKeys = []string{
	KeyCredentials,
	KeySettings,
	KeyProfile,
	KeyLoggedIn,
	KeyLanguage,
	KeySuppliers,
}

// ErrNotFound is returned when a key has no value.
var ErrNotFound = errors.New("key not found")

// Store is a flat string key/value store.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
	Keys() ([]string, error)
}
