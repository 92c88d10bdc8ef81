package pathmap

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Resolve validates a candidate project directory and returns its canonical
// form: absolute, cleaned, with symlinks resolved.
func Resolve(dir string) (string, error) {
	if isUNC(dir, HostPlatform()) {
		return "", &UnsupportedPathError{
			Path:   dir,
			Reason: "network share paths cannot be mounted; copy the project locally or map a network drive",
		}
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &InvalidPathError{Path: dir, Reason: err.Error()}
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &InvalidPathError{Path: abs, Reason: "path does not exist"}
		}
		return "", &InvalidPathError{Path: abs, Reason: err.Error()}
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", &InvalidPathError{Path: resolved, Reason: err.Error()}
	}
	if !info.IsDir() {
		return "", &InvalidPathError{Path: resolved, Reason: "path is not a directory"}
	}

	// A mapped drive may resolve to its UNC target.
	if isUNC(resolved, HostPlatform()) {
		return "", &UnsupportedPathError{
			Path:   resolved,
			Reason: "network share paths cannot be mounted; copy the project locally",
		}
	}

	return resolved, nil
}
