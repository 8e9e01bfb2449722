package kv

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zarlcorp/core/pkg/zcrypto"
	"github.com/zarlcorp/core/pkg/zfilesystem"
)

const (
	saltFile    = "salt"
	verifyFile  = "verify"
	valuesDir   = "values"
	valueExt    = ".enc"
	verifyToken = "zsettings-kv-ok"
)

// ErrWrongPassphrase is returned when the passphrase does not decrypt the
// verification token.
var ErrWrongPassphrase = errors.New("wrong passphrase")

// Files is a Store that keeps each value in its own AES-256-GCM encrypted
// file under values/.
type Files struct {
	fs  zfilesystem.ReadWriteFileFS
	key []byte
}

// OpenFiles opens or initializes an encrypted file store. On first run it
// creates the salt and verification token; later runs verify the
// passphrase against the token.
func OpenFiles(fsys zfilesystem.ReadWriteFileFS, passphrase string) (*Files, error) {
	salt, err := readOrCreateSalt(fsys)
	if err != nil {
		return nil, fmt.Errorf("open files: %w", err)
	}

	key, _, err := zcrypto.DeriveKey([]byte(passphrase), salt)
	if err != nil {
		return nil, fmt.Errorf("open files: derive key: %w", err)
	}

	if err := verifyOrCreateToken(fsys, key); err != nil {
		zcrypto.Erase(key)
		return nil, fmt.Errorf("open files: %w", err)
	}

	if err := fsys.MkdirAll(valuesDir, 0o700); err != nil {
		zcrypto.Erase(key)
		return nil, fmt.Errorf("open files: create values dir: %w", err)
	}

	return &Files{fs: fsys, key: key}, nil
}

func (f *Files) Get(key string) (string, error) {
	path, err := valuePath(key)
	if err != nil {
		return "", err
	}

	ct, err := f.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("get %s: %w", key, err)
	}

	plain, err := zcrypto.Decrypt(f.key, ct)
	if err != nil {
		return "", fmt.Errorf("get %s: decrypt: %w", key, err)
	}
	return string(plain), nil
}

func (f *Files) Set(key, value string) error {
	path, err := valuePath(key)
	if err != nil {
		return err
	}

	ct, err := zcrypto.Encrypt(f.key, []byte(value))
	if err != nil {
		return fmt.Errorf("set %s: encrypt: %w", key, err)
	}
	if err := f.fs.WriteFile(path, ct, 0o600); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (f *Files) Remove(key string) error {
	path, err := valuePath(key)
	if err != nil {
		return err
	}

	if err := f.fs.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// Keys returns all keys in lexical order.
func (f *Files) Keys() ([]string, error) {
	var keys []string

	err := f.fs.WalkDir(valuesDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || filepath.Ext(path) != valueExt {
			return nil
		}
		keys = append(keys, strings.TrimSuffix(filepath.Base(path), valueExt))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}

	sort.Strings(keys)
	return keys, nil
}

// Close erases the encryption key from memory.
func (f *Files) Close() error {
	zcrypto.Erase(f.key)
	f.key = nil
	return nil
}

// valuePath maps a key to its file. Keys must be plain names.
func valuePath(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return valuesDir + "/" + key + valueExt, nil
}

func readOrCreateSalt(fsys zfilesystem.ReadWriteFileFS) ([]byte, error) {
	salt, err := fsys.ReadFile(saltFile)
	if err == nil {
		return salt, nil
	}

	salt, err = zcrypto.RandBytes(zcrypto.SaltSize)
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	if err := fsys.WriteFile(saltFile, salt, 0o600); err != nil {
		return nil, fmt.Errorf("write salt: %w", err)
	}
	return salt, nil
}

func verifyOrCreateToken(fsys zfilesystem.ReadWriteFileFS, key []byte) error {
	ct, err := fsys.ReadFile(verifyFile)
	if err != nil {
		ct, err = zcrypto.Encrypt(key, []byte(verifyToken))
		if err != nil {
			return fmt.Errorf("encrypt verify token: %w", err)
		}
		if err := fsys.WriteFile(verifyFile, ct, 0o600); err != nil {
			return fmt.Errorf("write verify token: %w", err)
		}
		return nil
	}

	plain, err := zcrypto.Decrypt(key, ct)
	if err != nil || string(plain) != verifyToken {
		return ErrWrongPassphrase
	}
	return nil
}
