package pathmap

import (
	"errors"
	"fmt"
)

// ErrNotMounted marks a path outside every directory mounted into the container.
var ErrNotMounted = errors.New("path is not mounted in the container")

// InvalidPathError reports a launch directory that cannot be used at all:
// relative, missing, or not a directory.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Reason)
}

// UnsupportedPathError reports a path that exists but cannot be expressed in
// the container's mount namespace, such as a UNC network share.
type UnsupportedPathError struct {
	Path   string
	Reason string
	// Err is an optional sentinel such as ErrNotMounted.
	Err error
}

func (e *UnsupportedPathError) Error() string {
	return fmt.Sprintf("unsupported path %q: %s", e.Path, e.Reason)
}

func (e *UnsupportedPathError) Unwrap() error {
	return e.Err
}
