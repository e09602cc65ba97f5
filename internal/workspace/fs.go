package workspace

import (
	"bytes"
	iofs "io/fs"
	"os"

	"github.com/natefinch/atomic"
)

// FS is the subset of filesystem operations Materialize needs.
// Implementations must be safe for stubbing in tests.
type FS interface {
	MkdirAll(path string, perm os.FileMode) error
	Stat(path string) (iofs.FileInfo, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
}

// OSFS is the production FS. Writes go through a temp file and rename so a
// failed write never leaves a truncated document behind.
type OSFS struct{}

// MkdirAll creates path and any missing parents.
func (OSFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (iofs.FileInfo, error) {
	return os.Stat(path)
}

// WriteFile atomically writes data to path and applies perm.
func (OSFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return err
	}
	return os.Chmod(path, perm)
}
