package container

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rickgorman/claude-persistent/internal/pathmap"
)

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"home dir", "~", home},
		{"home subdir", "~/test", filepath.Join(home, "test")},
		{"absolute path", "/tmp/test", "/tmp/test"},
		{"relative path", "test", "test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expandPath(tt.input)
			if got != tt.want {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToDockerFormat(t *testing.T) {
	home, _ := os.UserHomeDir()

	mounts := []VolumeMount{
		{Source: "/tmp/test", Target: "/workspace"},
		{Source: "~/config", Target: "/config", ReadOnly: true},
	}

	result := ToDockerFormat(mounts)

	if len(result) != 2 {
		t.Fatalf("Expected 2 volume specs, got %d", len(result))
	}

	if result[0] != "/tmp/test:/workspace" {
		t.Errorf("Expected '/tmp/test:/workspace', got %q", result[0])
	}

	expectedConfig := filepath.Join(home, "config") + ":/config:ro"
	if result[1] != expectedConfig {
		t.Errorf("Expected %q, got %q", expectedConfig, result[1])
	}
}

func TestMountLayoutPOSIX(t *testing.T) {
	layout := MountLayout{
		Platform:     pathmap.PlatformPOSIX,
		Convention:   pathmap.ConventionMnt,
		Roots:        []string{"/home/alice", "/srv/projects/", "/home/alice"},
		ClaudeDir:    "/home/alice/.claude",
		ClaudeTarget: "/root/.claude",
	}

	mounts := layout.Mounts()

	if len(mounts) != 3 {
		t.Fatalf("Expected 3 mounts (duplicates dropped), got %d: %+v", len(mounts), mounts)
	}
	if mounts[0].Source != "/home/alice" || mounts[0].Target != "/home/alice" {
		t.Errorf("Unexpected root mount: %+v", mounts[0])
	}
	if mounts[1].Target != "/srv/projects" {
		t.Errorf("Root target should be cleaned, got %+v", mounts[1])
	}
	if !mounts[2].CreateHost || mounts[2].Target != "/root/.claude" {
		t.Errorf("Unexpected claude mount: %+v", mounts[2])
	}
}

func TestMountLayoutWindows(t *testing.T) {
	layout := MountLayout{
		Platform:   pathmap.PlatformWindows,
		Convention: pathmap.ConventionMnt,
		Drives:     []string{"c", "D:", " "},
	}

	mounts := layout.Mounts()

	if len(mounts) != 2 {
		t.Fatalf("Expected 2 drive mounts, got %d: %+v", len(mounts), mounts)
	}
	if mounts[0].Source != `C:\` || mounts[0].Target != "/mnt/c" {
		t.Errorf("Unexpected C: mount: %+v", mounts[0])
	}
	if mounts[1].Source != `D:\` || mounts[1].Target != "/mnt/d" {
		t.Errorf("Unexpected D: mount: %+v", mounts[1])
	}
}

// Translated project paths must land inside a mount produced by the same
// convention; otherwise the tool would start in a directory that does not exist.
func TestTranslatedPathsAreMounted(t *testing.T) {
	tests := []struct {
		name     string
		layout   MountLayout
		hostPath string
	}{
		{
			name:     "windows mnt convention",
			layout:   MountLayout{Platform: pathmap.PlatformWindows, Convention: pathmap.ConventionMnt, Drives: []string{"c"}},
			hostPath: `C:\Users\bob\app`,
		},
		{
			name:     "windows root convention",
			layout:   MountLayout{Platform: pathmap.PlatformWindows, Convention: pathmap.ConventionRoot, Drives: []string{"c", "e"}},
			hostPath: `E:\src\service`,
		},
		{
			name:     "posix home root",
			layout:   MountLayout{Platform: pathmap.PlatformPOSIX, Convention: pathmap.ConventionMnt, Roots: []string{"/home/alice"}},
			hostPath: "/home/alice/proj",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := pathmap.Translator{Platform: tt.layout.Platform, Convention: tt.layout.Convention}
			containerPath, err := tr.Translate(tt.hostPath)
			if err != nil {
				t.Fatalf("Translate(%q) error = %v", tt.hostPath, err)
			}

			covered := false
			for _, m := range tt.layout.Mounts() {
				if containerPath == m.Target || strings.HasPrefix(containerPath, m.Target+"/") {
					covered = true
				}
			}
			if !covered {
				t.Errorf("container path %q is not under any mount of %+v", containerPath, tt.layout.Mounts())
			}
		})
	}
}

func TestPrepareVolumeMounts(t *testing.T) {
	dir := t.TempDir()
	create := filepath.Join(dir, "claude")
	skip := filepath.Join(dir, "skip")

	err := PrepareVolumeMounts([]VolumeMount{
		{Source: create, Target: "/root/.claude", CreateHost: true},
		{Source: skip, Target: "/skip"},
	})
	if err != nil {
		t.Fatalf("PrepareVolumeMounts() error = %v", err)
	}

	if info, err := os.Stat(create); err != nil || !info.IsDir() {
		t.Errorf("expected %s to be created", create)
	}
	if _, err := os.Stat(skip); !os.IsNotExist(err) {
		t.Errorf("expected %s not to be created", skip)
	}
}
