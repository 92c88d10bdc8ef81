package container

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rickgorman/claude-persistent/internal/pathmap"
)

// VolumeMount represents a Docker bind mount.
type VolumeMount struct {
	Source     string // host path
	Target     string // container path
	ReadOnly   bool
	CreateHost bool // whether to create host directory if it doesn't exist
}

// MountLayout decides which host locations are visible inside the container.
// It lays drives out with the same Convention the pathmap.Translator uses,
// so a translated project path always lands inside one of these mounts.
type MountLayout struct {
	Platform   pathmap.Platform
	Convention pathmap.Convention

	// Roots are POSIX host directories mounted at identical paths.
	Roots []string
	// Drives are Windows drive letters mounted under the convention's root.
	Drives []string

	// ClaudeDir is the host ~/.claude, mounted at ClaudeTarget.
	ClaudeDir    string
	ClaudeTarget string
}

// Mounts returns the bind mounts for the layout, deduplicated by target.
func (l MountLayout) Mounts() []VolumeMount {
	var mounts []VolumeMount
	seen := make(map[string]bool)

	add := func(m VolumeMount) {
		if m.Source == "" || seen[m.Target] {
			return
		}
		seen[m.Target] = true
		mounts = append(mounts, m)
	}

	if l.Platform == pathmap.PlatformWindows {
		for _, drive := range l.Drives {
			letter := strings.ToUpper(strings.TrimSuffix(strings.TrimSpace(drive), ":"))
			if letter == "" {
				continue
			}
			add(VolumeMount{
				Source: letter + `:\`,
				Target: l.Convention.DriveTarget(letter),
			})
		}
	} else {
		for _, root := range l.Roots {
			source := expandPath(root)
			if source == "" {
				continue
			}
			add(VolumeMount{
				Source: source,
				Target: path.Clean(filepath.ToSlash(source)),
			})
		}
	}

	if l.ClaudeDir != "" && l.ClaudeTarget != "" {
		add(VolumeMount{
			Source:     l.ClaudeDir,
			Target:     l.ClaudeTarget,
			CreateHost: true,
		})
	}

	return mounts
}

// PrepareVolumeMounts prepares volume mounts, creating host directories as needed.
func PrepareVolumeMounts(mounts []VolumeMount) error {
	for _, mount := range mounts {
		if mount.CreateHost {
			source := expandPath(mount.Source)

			if err := os.MkdirAll(source, 0755); err != nil {
				return fmt.Errorf("failed to create bind mount directory %s: %w", source, err)
			}
		}
	}

	return nil
}

// ToDockerFormat converts volume mounts to Docker CLI format (e.g., "source:target" or "source:target:ro").
func ToDockerFormat(mounts []VolumeMount) []string {
	var result []string

	for _, mount := range mounts {
		volumeSpec := fmt.Sprintf("%s:%s", expandPath(mount.Source), mount.Target)
		if mount.ReadOnly {
			volumeSpec += ":ro"
		}

		result = append(result, volumeSpec)
	}

	return result
}

// expandPath expands ~ to home directory in paths.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}

	return path
}
