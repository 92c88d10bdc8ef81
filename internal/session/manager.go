// Package session manages session identity and the host-side Claude directory.
package session

import (
	"fmt"
	"os"
	"path/filepath"
)

// ClaudeDir returns the host ~/.claude directory that is bind-mounted into
// the container so credentials and history survive container rebuilds.
func ClaudeDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".claude"), nil
}

// EnsureClaudeDir ensures ~/.claude exists for bind mounting and returns it.
func EnsureClaudeDir() (string, error) {
	claudeDir, err := ClaudeDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(claudeDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", claudeDir, err)
	}

	return claudeDir, nil
}
