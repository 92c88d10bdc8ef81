package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/rickgorman/claude-persistent/internal/container"
	"github.com/rickgorman/claude-persistent/internal/pathmap"
	"github.com/rickgorman/claude-persistent/internal/session"
)

// Environment variables set for every session.
const (
	EnvProjectPath     = "PROJECT_PATH"
	EnvSessionID       = "SESSION_ID"
	EnvHostProjectPath = "HOST_PROJECT_PATH"
)

// Runtime is the part of container.Runtime the launcher drives.
type Runtime interface {
	EnsureReady(ctx context.Context) error
	ExecInteractive(ctx context.Context, inv container.Invocation) (int, error)
}

// Launcher runs one tool session for the current directory.
type Launcher struct {
	runtime       Runtime
	containerName string
	command       string
	env           map[string]string

	translator pathmap.Translator
	generator  *session.Generator
	getwd      func() (string, error)
	resolve    func(string) (string, error)

	// Container directories host paths are visible under. Nil skips the
	// check, as in compose mode where the mounts are not known.
	mountTargets []string

	log logrus.FieldLogger
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithEnv adds variables to every session. Session variables win on conflict.
func WithEnv(env map[string]string) Option {
	return func(l *Launcher) {
		for k, v := range env {
			l.env[k] = v
		}
	}
}

// WithTranslator overrides the host platform translator.
func WithTranslator(t pathmap.Translator) Option {
	return func(l *Launcher) { l.translator = t }
}

// WithMountTargets rejects projects whose container path falls outside
// every target before the engine is contacted.
func WithMountTargets(targets []string) Option {
	return func(l *Launcher) { l.mountTargets = targets }
}

// WithGenerator overrides the session ID generator.
func WithGenerator(g *session.Generator) Option {
	return func(l *Launcher) { l.generator = g }
}

// WithWorkingDir replaces how the launch directory is found and canonicalized.
func WithWorkingDir(getwd func() (string, error), resolve func(string) (string, error)) Option {
	return func(l *Launcher) {
		if getwd != nil {
			l.getwd = getwd
		}
		if resolve != nil {
			l.resolve = resolve
		}
	}
}

// WithLogger sets the logger for phase transitions.
func WithLogger(log logrus.FieldLogger) Option {
	return func(l *Launcher) { l.log = log }
}

// New returns a Launcher that execs command in the container behind runtime.
func New(runtime Runtime, containerName, command string, opts ...Option) *Launcher {
	l := &Launcher{
		runtime:       runtime,
		containerName: containerName,
		command:       command,
		env:           make(map[string]string),
		translator:    pathmap.NewTranslator(pathmap.ConventionMnt),
		generator:     session.NewGenerator(),
		getwd:         os.Getwd,
		resolve:       pathmap.Resolve,
		log:           logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch validates the working directory, makes sure the container is
// ready, and runs the tool with args. The engine is not contacted when
// validation fails.
func (l *Launcher) Launch(ctx context.Context, args []string) Result {
	phase := PhaseInit
	enter := func(next Phase) {
		l.log.WithFields(logrus.Fields{"from": phase, "to": next}).Debug("Launch phase")
		phase = next
	}

	enter(PhaseValidating)
	target, err := l.validate()
	if err != nil {
		enter(PhaseFailed)
		return l.fail(OutcomeInvalidPath, ExitFailure, err)
	}

	id := l.generator.Generate(target.host)
	log := l.log.WithFields(logrus.Fields{
		"session":   id,
		"project":   target.host,
		"container": target.container,
	})
	log.Debug("Session prepared")

	enter(PhaseEnsuringContainer)
	if err := l.runtime.EnsureReady(ctx); err != nil {
		enter(PhaseFailed)
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			return l.cancelled(ctx, err)
		}
		return l.fail(OutcomeContainerUnavailable, ExitFailure, err)
	}

	env := make(map[string]string, len(l.env)+3)
	for k, v := range l.env {
		env[k] = v
	}
	env[EnvProjectPath] = target.container
	env[EnvSessionID] = id.String()
	env[EnvHostProjectPath] = target.host

	enter(PhaseExecuting)
	code, err := l.runtime.ExecInteractive(ctx, container.Invocation{
		SessionID: id.String(),
		Command: l.command,
		Args:    args,
		Env:     env,
		WorkDir: target.container,
	})
	log.WithField("exit_code", code).Debug("Tool exited")

	result := l.classify(ctx, code, err)
	if result.Outcome == OutcomeSuccess {
		enter(PhaseSucceeded)
	} else {
		enter(PhaseFailed)
	}
	return result
}

type projectTarget struct {
	host      string
	container string
}

func (l *Launcher) validate() (projectTarget, error) {
	cwd, err := l.getwd()
	if err != nil {
		return projectTarget{}, &pathmap.InvalidPathError{Path: ".", Reason: "cannot determine working directory: " + err.Error()}
	}
	host, err := l.resolve(cwd)
	if err != nil {
		return projectTarget{}, err
	}
	containerPath, err := l.translator.Translate(host)
	if err != nil {
		return projectTarget{}, err
	}
	if l.mountTargets != nil && !pathmap.Within(containerPath, l.mountTargets) {
		return projectTarget{}, &pathmap.UnsupportedPathError{
			Path:   host,
			Reason: fmt.Sprintf("%s is not under any directory mounted into the container", containerPath),
			Err:    pathmap.ErrNotMounted,
		}
	}
	return projectTarget{host: host, container: containerPath}, nil
}

func (l *Launcher) classify(ctx context.Context, code int, err error) Result {
	switch {
	case ctx.Err() != nil || errors.Is(err, context.Canceled):
		return l.cancelled(ctx, err)
	case err != nil:
		return l.fail(OutcomeUnexpectedError, ExitFailure, err)
	case code == ExitSuccess:
		return Result{Outcome: OutcomeSuccess, ExitCode: ExitSuccess}
	case code == ExitCannotExecute || code == ExitCommandNotFound:
		return l.fail(OutcomeCommandNotFound, code, fmt.Errorf("%w: %s exited with %d", ErrToolNotFound, l.command, code))
	case code == ExitUserCancelled:
		return Result{Outcome: OutcomeUserCancelled, ExitCode: ExitUserCancelled}
	default:
		return Result{Outcome: OutcomeToolExited, ExitCode: code}
	}
}

func (l *Launcher) cancelled(ctx context.Context, err error) Result {
	if err == nil {
		err = ctx.Err()
	}
	return Result{Outcome: OutcomeUserCancelled, ExitCode: ExitUserCancelled, Err: err}
}

func (l *Launcher) fail(outcome Outcome, code int, err error) Result {
	return Result{
		Outcome:     outcome,
		ExitCode:    code,
		Err:         err,
		Remediation: remediation(err, l.containerName),
	}
}
