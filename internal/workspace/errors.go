package workspace

import (
	"errors"
	"fmt"
)

// ErrAlreadyExists is returned when the primary document path is occupied.
var ErrAlreadyExists = errors.New("file already exists")

// ExistsError reports the occupied primary document path.
type ExistsError struct {
	Path string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("file %q already exists; aborting to avoid overwrite", e.Path)
}

// Unwrap lets errors.Is match ErrAlreadyExists.
func (e *ExistsError) Unwrap() error {
	return ErrAlreadyExists
}

// IOError wraps a filesystem failure with the operation and path involved.
type IOError struct {
	Op   string // "mkdir", "stat", "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *IOError) Unwrap() error {
	return e.Err
}
