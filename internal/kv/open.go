package kv

import (
	"errors"
	"fmt"
	"os"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstore"
)

// Storage backends selectable in the config file.
const (
	BackendVault = "vault"
	BackendFiles = "files"
)

// Backends lists the valid backend names.
var Backends = []string{BackendVault, BackendFiles}

// StoreCloser is a Store holding key material that must be released.
type StoreCloser interface {
	Store
	Close() error
}

// OpenDir unlocks the store of the given backend in dir, creating it on
// first use. A passphrase that does not match an existing store yields
// ErrWrongPassphrase for every backend.
func OpenDir(backend, dir, passphrase string) (StoreCloser, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	fsys := zfilesystem.NewOSFileSystem(dir)

	switch backend {
	case BackendFiles:
		f, err := OpenFiles(fsys, passphrase)
		if err != nil {
			return nil, err
		}
		return f, nil
	case BackendVault, "":
		s, err := zstore.Open(fsys, []byte(passphrase))
		if errors.Is(err, zstore.ErrWrongPassword) {
			return nil, fmt.Errorf("open vault: %w", ErrWrongPassphrase)
		}
		if err != nil {
			return nil, fmt.Errorf("open vault: %w", err)
		}
		v, err := OpenVault(s)
		if err != nil {
			s.Close()
			return nil, err
		}
		return v, nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", backend)
}
