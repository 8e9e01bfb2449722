// Package inspect reads and repairs the persisted application state for
// debugging. It talks to the store directly rather than through the host.
package inspect

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zarlcorp/zsettings/internal/kv"
)

// inspected lists the keys read by Read, in display order.
var inspected = []string{
	kv.KeyCredentials,
	kv.KeySettings,
	kv.KeyProfile,
	kv.KeyLoggedIn,
	kv.KeyLanguage,
}

// jsonKeys holds the keys whose values are JSON documents.
var jsonKeys = map[string]bool{
	kv.KeyCredentials: true,
	kv.KeySettings:    true,
	kv.KeyProfile:     true,
}

// Entry is one persisted value.
type Entry struct {
	Key    string
	Raw    string
	Parsed any // decoded JSON for document keys, nil otherwise
}

// Pretty returns the value for display: indented JSON for documents, the
// raw string otherwise.
func (e Entry) Pretty() string {
	if e.Parsed == nil {
		return e.Raw
	}
	b, err := json.MarshalIndent(e.Parsed, "", "  ")
	if err != nil {
		return e.Raw
	}
	return string(b)
}

// Report is the result of a read. When Err is set, Entries is empty.
type Report struct {
	Entries    []Entry
	TotalBytes int
	Err        error
}

// Read fetches the inspected keys that are present, decodes the JSON ones
// and sums the byte size of the raw values. Any read or parse failure turns
// the whole report into an error.
func Read(store kv.Store) Report {
	var r Report

	for _, key := range inspected {
		raw, err := store.Get(key)
		if errors.Is(err, kv.ErrNotFound) {
			continue
		}
		if err != nil {
			return Report{Err: fmt.Errorf("read %s: %w", key, err)}
		}

		e := Entry{Key: key, Raw: raw}
		if jsonKeys[key] {
			var v any
			if err := json.Unmarshal([]byte(raw), &v); err != nil {
				return Report{Err: fmt.Errorf("parse %s: %w", key, err)}
			}
			e.Parsed = v
		}

		r.Entries = append(r.Entries, e)
		r.TotalBytes += len(raw)
	}

	return r
}

// ClearAll removes every application key. Keys that are already absent are
// skipped; other keys in the store are left alone.
func ClearAll(store kv.Store) error {
	var errs []error
	for _, key := range kv.AppKeys {
		if err := store.Remove(key); err != nil && !errors.Is(err, kv.ErrNotFound) {
			errs = append(errs, fmt.Errorf("clear %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

// FormatBytes renders a byte count as B or KB with two decimals.
func FormatBytes(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.2f KB", float64(n)/1024)
}
