package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/rickgorman/claude-persistent/internal/config"
	"github.com/rickgorman/claude-persistent/internal/container"
	"github.com/rickgorman/claude-persistent/internal/launcher"
	"github.com/rickgorman/claude-persistent/internal/pathmap"
	"github.com/rickgorman/claude-persistent/internal/session"
)

// exitCodeError carries a process exit code out of a command without an
// error message of its own.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func exitWith(code int) error {
	if code == 0 {
		return nil
	}
	return &exitCodeError{code: code}
}

type app struct {
	cfg      *config.Config
	log      *logrus.Logger
	platform pathmap.Platform
}

// loadApp reads and validates configuration and sets up logging.
func loadApp(flags globalFlags) (*app, error) {
	path := flags.configPath
	if path == "" {
		var err error
		if path, err = config.Path(); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if flags.container != "" {
		cfg.Container = flags.container
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	log := newLogger(cfg.Level(), flags.debug)
	log.WithField("path", path).Debug("Loaded config")

	return &app{cfg: cfg, log: log, platform: pathmap.HostPlatform()}, nil
}

func newLogger(level logrus.Level, debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if debug {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)
	return log
}

// containerSpec creates the host ~/.claude and returns the container definition.
func (a *app) containerSpec() (container.Spec, error) {
	claudeDir, err := session.EnsureClaudeDir()
	if err != nil {
		a.log.WithError(err).Warn("Claude config directory unavailable; it will not be mounted")
		claudeDir = ""
	}
	return a.cfg.Spec(a.platform, claudeDir)
}

func (a *app) newRuntime(engine container.Engine, spec container.Spec, progress container.ProgressFunc) *container.Runtime {
	return container.NewRuntime(engine, spec,
		container.WithReadiness(a.cfg.ReadyAttempts, a.cfg.ReadyInterval),
		container.WithProbeTimeout(a.cfg.ProbeTimeout),
		container.WithLogger(a.log),
		container.WithProgress(progress),
	)
}

func (a *app) compose() *container.Compose {
	return &container.Compose{
		File:     a.cfg.ComposeFile,
		BuildKit: a.cfg.BuildKit,
		Stdout:   os.Stderr,
		Stderr:   os.Stderr,
	}
}

// signalContext cancels the returned context on the first interrupt. A
// second interrupt exits immediately.
func signalContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	var interrupted int32
	go func() {
		for range sigCh {
			if atomic.CompareAndSwapInt32(&interrupted, 0, 1) {
				cancel()
				continue
			}
			os.Exit(launcher.ExitUserCancelled)
		}
	}()

	return ctx, func() {
		signal.Stop(sigCh)
		cancel()
	}
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
