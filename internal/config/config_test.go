package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rickgorman/claude-persistent/internal/pathmap"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvConfig, EnvContainer, EnvComposeFile, EnvCommand} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
container: work
images: [my-image:latest]
mount_convention: root
mounts: [/srv/code]
ports: ["3000", "8080:80"]
env:
  EDITOR: vim
ready_attempts: 3
ready_interval: 250ms
buildkit: false
log_level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Container != "work" {
		t.Errorf("Container = %q", cfg.Container)
	}
	if !reflect.DeepEqual(cfg.Images, []string{"my-image:latest"}) {
		t.Errorf("Images = %v", cfg.Images)
	}
	if cfg.Convention() != pathmap.ConventionRoot {
		t.Errorf("Convention() = %q", cfg.Convention())
	}
	if cfg.ReadyAttempts != 3 || cfg.ReadyInterval != 250*time.Millisecond {
		t.Errorf("readiness = %d x %s", cfg.ReadyAttempts, cfg.ReadyInterval)
	}
	if cfg.BuildKit {
		t.Error("BuildKit should be disabled")
	}
	if cfg.Env["EDITOR"] != "vim" {
		t.Errorf("Env = %v", cfg.Env)
	}
	if cfg.Level() != logrus.DebugLevel {
		t.Errorf("Level() = %v", cfg.Level())
	}
	// Unset keys keep their defaults.
	if cfg.Command != DefaultCommand {
		t.Errorf("Command = %q, want default", cfg.Command)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "container: [unterminated\n")

	if _, err := Load(path); err == nil {
		t.Error("Load() expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "container: from-file\n")
	t.Setenv(EnvContainer, "from-env")
	t.Setenv(EnvComposeFile, "/opt/compose.yml")
	t.Setenv(EnvCommand, "/bin/tool")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Container != "from-env" || cfg.ComposeFile != "/opt/compose.yml" || cfg.Command != "/bin/tool" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestPath(t *testing.T) {
	clearEnv(t)

	t.Setenv(EnvConfig, "/custom/config.yaml")
	if got, _ := Path(); got != "/custom/config.yaml" {
		t.Errorf("Path() = %q with %s set", got, EnvConfig)
	}

	t.Setenv(EnvConfig, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got, _ := Path(); got != filepath.Join("/xdg", AppName, FileName) {
		t.Errorf("Path() = %q with XDG_CONFIG_HOME set", got)
	}

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	if got, _ := Path(); got != filepath.Join(home, ".config", AppName, FileName) {
		t.Errorf("Path() = %q, want under %s", got, home)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty container", func(c *Config) { c.Container = " " }, "container"},
		{"empty command", func(c *Config) { c.Command = "" }, "command"},
		{"no image source", func(c *Config) { c.Images = nil }, "images"},
		{"unknown convention", func(c *Config) { c.MountConvention = "drives" }, "mount convention"},
		{"zero attempts", func(c *Config) { c.ReadyAttempts = 0 }, "ready_attempts"},
		{"negative interval", func(c *Config) { c.ReadyInterval = -time.Second }, "ready_interval"},
		{"zero probe timeout", func(c *Config) { c.ProbeTimeout = 0 }, "probe_timeout"},
		{"bad port", func(c *Config) { c.Ports = []string{"http"} }, "ports"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"bad env name", func(c *Config) { c.Env = map[string]string{"A=B": "x"} }, "env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestComposeFileWithoutImagesIsValid(t *testing.T) {
	cfg := Default()
	cfg.Images = nil
	cfg.ComposeFile = "docker-compose.yml"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestSpec(t *testing.T) {
	cfg := Default()
	cfg.Drives = []string{"c", "d"}
	cfg.Ports = []string{"3000"}

	spec, err := cfg.Spec(pathmap.PlatformWindows, `C:\Users\bob\.claude`)
	if err != nil {
		t.Fatalf("Spec() error = %v", err)
	}

	if spec.Name != DefaultContainer {
		t.Errorf("Name = %q", spec.Name)
	}
	if !spec.BuildKit {
		t.Error("BuildKit should default on")
	}
	if len(spec.PortMappings) != 1 || spec.PortMappings[0].Host != 3000 {
		t.Errorf("PortMappings = %+v", spec.PortMappings)
	}

	targets := make([]string, 0, len(spec.Mounts))
	for _, m := range spec.Mounts {
		targets = append(targets, m.Target)
	}
	want := []string{"/mnt/c", "/mnt/d", DefaultClaudeHomeTarget}
	if !reflect.DeepEqual(targets, want) {
		t.Errorf("mount targets = %v, want %v", targets, want)
	}
}
