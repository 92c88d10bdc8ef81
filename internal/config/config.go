// Package config loads the launcher's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rickgorman/claude-persistent/internal/container"
	"github.com/rickgorman/claude-persistent/internal/pathmap"
)

const (
	AppName  = "claude-persistent"
	FileName = "config.yaml"

	DefaultContainer        = "claude-persistent"
	DefaultCommand          = "/usr/local/bin/claude-namespace-launcher"
	DefaultClaudeHomeTarget = "/root/.claude"
)

// Environment overrides, applied after the file.
const (
	EnvConfig      = "CLAUDE_PERSISTENT_CONFIG"
	EnvContainer   = "CLAUDE_PERSISTENT_CONTAINER"
	EnvComposeFile = "CLAUDE_PERSISTENT_COMPOSE_FILE"
	EnvCommand     = "CLAUDE_PERSISTENT_COMMAND"
)

// DefaultImages are tried in order when creating the container.
var DefaultImages = []string{"claude-code-container:full", "claude-code-container:slim"}

type Config struct {
	Container   string   `yaml:"container"`
	Images      []string `yaml:"images"`
	ComposeFile string   `yaml:"compose_file"`
	Command     string   `yaml:"command"`

	MountConvention  string   `yaml:"mount_convention"`
	Mounts           []string `yaml:"mounts"`
	Drives           []string `yaml:"drives"`
	ClaudeHomeTarget string   `yaml:"claude_home_target"`

	Ports []string          `yaml:"ports"`
	Env   map[string]string `yaml:"env"`

	ReadyAttempts int           `yaml:"ready_attempts"`
	ReadyInterval time.Duration `yaml:"ready_interval"`
	ProbeTimeout  time.Duration `yaml:"probe_timeout"`

	BuildKit           bool   `yaml:"buildkit"`
	ForwardGitIdentity bool   `yaml:"forward_git_identity"`
	LogLevel           string `yaml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Container:          DefaultContainer,
		Images:             append([]string(nil), DefaultImages...),
		Command:            DefaultCommand,
		MountConvention:    string(pathmap.ConventionMnt),
		Mounts:             []string{"~"},
		Drives:             []string{"c"},
		ClaudeHomeTarget:   DefaultClaudeHomeTarget,
		Env:                map[string]string{},
		ReadyAttempts:      container.DefaultReadyAttempts,
		ReadyInterval:      container.DefaultReadyInterval,
		ProbeTimeout:       container.DefaultProbeTimeout,
		BuildKit:           true,
		ForwardGitIdentity: true,
		LogLevel:           "warn",
	}
}

// Path returns the config file location: $CLAUDE_PERSISTENT_CONFIG, then
// $XDG_CONFIG_HOME/claude-persistent/config.yaml, then
// ~/.config/claude-persistent/config.yaml.
func Path() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName, FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating config: %w", err)
	}
	return filepath.Join(home, ".config", AppName, FileName), nil
}

// Load reads the config at path over the defaults and applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if cfg.Env == nil {
		cfg.Env = map[string]string{}
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvContainer); v != "" {
		c.Container = v
	}
	if v := os.Getenv(EnvComposeFile); v != "" {
		c.ComposeFile = v
	}
	if v := os.Getenv(EnvCommand); v != "" {
		c.Command = v
	}
}

// Validate reports the first setting the launcher cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Container) == "" {
		return fmt.Errorf("container name must not be empty")
	}
	if strings.TrimSpace(c.Command) == "" {
		return fmt.Errorf("command must not be empty")
	}
	if len(c.Images) == 0 && c.ComposeFile == "" {
		return fmt.Errorf("either images or compose_file must be set")
	}
	if _, err := pathmap.ParseConvention(c.MountConvention); err != nil {
		return err
	}
	if c.ReadyAttempts <= 0 {
		return fmt.Errorf("ready_attempts must be positive, got %d", c.ReadyAttempts)
	}
	if c.ReadyInterval <= 0 {
		return fmt.Errorf("ready_interval must be positive, got %s", c.ReadyInterval)
	}
	if c.ProbeTimeout <= 0 {
		return fmt.Errorf("probe_timeout must be positive, got %s", c.ProbeTimeout)
	}
	if _, err := container.ParsePortMappings(c.Ports); err != nil {
		return fmt.Errorf("ports: %w", err)
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
	}
	for key := range c.Env {
		if key == "" || strings.Contains(key, "=") {
			return fmt.Errorf("invalid env name %q", key)
		}
	}
	return nil
}

// Convention returns the parsed mount convention. Call Validate first.
func (c *Config) Convention() pathmap.Convention {
	conv, err := pathmap.ParseConvention(c.MountConvention)
	if err != nil {
		return pathmap.ConventionMnt
	}
	return conv
}

// Level returns the configured log level, falling back to warn.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}

// Layout returns the bind mounts for the persistent container on platform.
func (c *Config) Layout(platform pathmap.Platform, claudeDir string) container.MountLayout {
	return container.MountLayout{
		Platform:     platform,
		Convention:   c.Convention(),
		Roots:        c.Mounts,
		Drives:       c.Drives,
		ClaudeDir:    claudeDir,
		ClaudeTarget: c.ClaudeHomeTarget,
	}
}

// Spec builds the container definition. Call Validate first.
func (c *Config) Spec(platform pathmap.Platform, claudeDir string) (container.Spec, error) {
	ports, err := container.ParsePortMappings(c.Ports)
	if err != nil {
		return container.Spec{}, err
	}
	return container.Spec{
		Name:         c.Container,
		Images:       c.Images,
		ComposeFile:  c.ComposeFile,
		BuildKit:     c.BuildKit,
		Mounts:       c.Layout(platform, claudeDir).Mounts(),
		PortMappings: ports,
		Labels: map[string]string{
			"com.claude-persistent.managed": "true",
		},
	}, nil
}
