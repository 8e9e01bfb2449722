package kv

import (
	"fmt"
	"sort"

	"github.com/zarlcorp/core/pkg/zstore"
)

const vaultCollection = "kv"

// entry is the record stored per key. The key is repeated in the record
// because collection listings return values only.
type entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Vault is a Store backed by an encrypted zstore collection.
type Vault struct {
	store *zstore.Store
	col   *zstore.Collection[entry]
}

// OpenVault opens the kv collection inside an already unlocked zstore.
// The vault takes ownership of s and closes it on Close.
func OpenVault(s *zstore.Store) (*Vault, error) {
	col, err := zstore.NewCollection[entry](s, vaultCollection)
	if err != nil {
		return nil, fmt.Errorf("open vault: %w", err)
	}
	return &Vault{store: s, col: col}, nil
}

func (v *Vault) Get(key string) (string, error) {
	e, err := v.col.Get(key)
	if err != nil {
		if !v.has(key) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return e.Value, nil
}

func (v *Vault) Set(key, value string) error {
	if err := v.col.Put(key, entry{Key: key, Value: value}); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (v *Vault) Remove(key string) error {
	if !v.has(key) {
		return ErrNotFound
	}
	if err := v.col.Delete(key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// Keys returns all keys in lexical order.
func (v *Vault) Keys() ([]string, error) {
	all, err := v.col.List()
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}

	keys := make([]string, 0, len(all))
	for _, e := range all {
		keys = append(keys, e.Key)
	}
	sort.Strings(keys)
	return keys, nil
}

// Close locks the vault and erases the key material.
func (v *Vault) Close() error {
	if v.store == nil {
		return nil
	}
	v.store.Close()
	v.store = nil
	return nil
}

func (v *Vault) has(key string) bool {
	keys, err := v.Keys()
	if err != nil {
		return false
	}
	i := sort.SearchStrings(keys, key)
	return i < len(keys) && keys[i] == key
}
