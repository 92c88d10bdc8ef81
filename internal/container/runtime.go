package container

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultReadyAttempts is how many times readiness is polled after a create or start.
	DefaultReadyAttempts = 10
	// DefaultReadyInterval is the pause between readiness polls.
	DefaultReadyInterval = time.Second
	// DefaultProbeTimeout bounds each engine reachability check.
	DefaultProbeTimeout = 5 * time.Second
)

var livenessCmd = []string{"echo", "ready"}

// The tool is started through sh so its pid lands in a file the launcher can
// later target; "$@" keeps the argument vector intact. With a TTY the exec is
// a session leader, so signalling the negative pid reaches its whole group.
const (
	pidWrapperScript = `echo $$ >"$0" 2>/dev/null; exec "$@"`
	terminateScript  = `pid=$(cat "$0" 2>/dev/null) || exit 0; kill -TERM -"$pid" 2>/dev/null || kill -TERM "$pid" 2>/dev/null; rm -f "$0"`
	cleanupScript    = `rm -f "$0"`
)

// pidFile is where the tool's pid is recorded for a session.
func pidFile(sessionID string) string {
	return "/tmp/claude-persistent-" + sessionID + ".pid"
}

// ProgressFunc is called with status updates during container creation.
type ProgressFunc func(phase string)

// Invocation is the tool command run inside the container for one session.
type Invocation struct {
	// SessionID names the session's pid file. Without it the tool cannot be
	// signalled on cancellation.
	SessionID string

	Command string
	Args    []string
	Env     map[string]string
	WorkDir string
}

// Runtime drives the persistent container through its lifecycle:
// probe, create or start, wait until it accepts commands, then exec.
// It holds no container state between calls.
type Runtime struct {
	engine Engine
	spec   Spec

	readyAttempts int
	readyInterval time.Duration
	probeTimeout  time.Duration

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	progress ProgressFunc
	log      logrus.FieldLogger
	sleep    func(ctx context.Context, d time.Duration) error
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithReadiness sets the readiness poll budget.
func WithReadiness(attempts int, interval time.Duration) Option {
	return func(r *Runtime) {
		if attempts > 0 {
			r.readyAttempts = attempts
		}
		if interval > 0 {
			r.readyInterval = interval
		}
	}
}

// WithProbeTimeout bounds each reachability probe.
func WithProbeTimeout(d time.Duration) Option {
	return func(r *Runtime) {
		if d > 0 {
			r.probeTimeout = d
		}
	}
}

// WithStdio attaches interactive execs to the given streams.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(r *Runtime) {
		r.stdin, r.stdout, r.stderr = stdin, stdout, stderr
	}
}

// WithProgress reports create/start phases to the caller.
func WithProgress(fn ProgressFunc) Option {
	return func(r *Runtime) { r.progress = fn }
}

// WithLogger sets the diagnostics logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(r *Runtime) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRuntime creates a Runtime for the container described by spec.
func NewRuntime(engine Engine, spec Spec, opts ...Option) *Runtime {
	r := &Runtime{
		engine:        engine,
		spec:          spec,
		readyAttempts: DefaultReadyAttempts,
		readyInterval: DefaultReadyInterval,
		probeTimeout:  DefaultProbeTimeout,
		stdin:         os.Stdin,
		stdout:        os.Stdout,
		stderr:        os.Stderr,
		log:           logrus.StandardLogger(),
		sleep:         sleepContext,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.WithField("container", spec.Name)
	return r
}

// Name returns the container name.
func (r *Runtime) Name() string {
	return r.spec.Name
}

// Probe asks the engine for the container's current state. An unreachable
// engine yields StateUnknown and an error wrapping ErrEngineUnreachable; a
// reachable engine that cannot inspect the container yields ErrInspectFailed.
func (r *Runtime) Probe(ctx context.Context) (State, error) {
	probeCtx, cancel := context.WithTimeout(ctx, r.probeTimeout)
	defer cancel()

	if err := r.engine.Ping(probeCtx); err != nil {
		if ctx.Err() != nil {
			return StateUnknown, ctx.Err()
		}
		return StateUnknown, fmt.Errorf("%w: %w", ErrEngineUnreachable, err)
	}

	state, err := r.engine.Inspect(probeCtx, r.spec.Name)
	if err != nil {
		if ctx.Err() != nil {
			return StateUnknown, ctx.Err()
		}
		return StateUnknown, fmt.Errorf("%w: %s: %w", ErrInspectFailed, r.spec.Name, err)
	}

	return state, nil
}

// EnsureReady brings the container to a state where it accepts exec calls.
// A nil return means ready; any error is terminal for this launch.
func (r *Runtime) EnsureReady(ctx context.Context) error {
	state, err := r.Probe(ctx)
	if err != nil {
		return err
	}
	r.log.WithField("state", state).Debug("Probed container")

	switch state {
	case StateRunning:
		r.log.Debug("Container already running")
	case StateNotExists:
		if err := r.create(ctx); err != nil {
			return err
		}
	case StateStopped:
		if err := r.start(ctx); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: container %s in state %s", ErrInspectFailed, r.spec.Name, state)
	}

	return r.waitReady(ctx)
}

// create creates and starts the container. Losing a creation race to
// another launcher is not an error: the re-probe picks up its container.
func (r *Runtime) create(ctx context.Context) error {
	r.report("Creating persistent container (first run may take a few minutes)...")
	r.log.WithField("mounts", ToDockerFormat(r.spec.Mounts)).Debug("Creating container")

	err := r.engine.Create(ctx, r.spec)
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if !errors.Is(err, ErrAlreadyExists) {
		return fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	r.log.Debug("Container created concurrently, re-probing")
	state, perr := r.Probe(ctx)
	if perr != nil {
		return perr
	}

	switch state {
	case StateRunning:
		return nil
	case StateStopped:
		return r.start(ctx)
	default:
		return fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}
}

func (r *Runtime) start(ctx context.Context) error {
	r.report("Starting existing container...")

	if err := r.engine.Start(ctx, r.spec.Name); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %w", ErrStartFailed, err)
	}
	return nil
}

// waitReady polls up to readyAttempts times for a running container that
// also answers a liveness exec.
func (r *Runtime) waitReady(ctx context.Context) error {
	for attempt := 1; attempt <= r.readyAttempts; attempt++ {
		state, err := r.Probe(ctx)
		if err != nil {
			return err
		}

		if state == StateRunning && r.live(ctx) {
			r.log.WithField("attempt", attempt).Debug("Container is ready")
			return nil
		}
		r.log.WithFields(logrus.Fields{"attempt": attempt, "state": state}).Debug("Container not ready yet")

		if attempt < r.readyAttempts {
			if err := r.sleep(ctx, r.readyInterval); err != nil {
				return err
			}
		}
	}

	return fmt.Errorf("%w: %s did not accept commands after %d attempts", ErrReadinessTimeout, r.spec.Name, r.readyAttempts)
}

// live reports whether the container actually executes commands. An engine
// can report running before the container's process tree accepts execs.
func (r *Runtime) live(ctx context.Context) bool {
	code, err := r.engine.Exec(ctx, r.spec.Name, ExecRequest{Cmd: livenessCmd})
	if err != nil {
		r.log.WithError(err).Debug("Liveness check failed")
		return false
	}
	return code == 0
}

// ExecInteractive runs the invocation attached to the runtime's stdio and
// returns the command's exit code. The argument vector reaches the tool
// untouched; the wrapper shell only forwards "$@". If ctx is cancelled while the
// tool runs, the engine keeps the process alive after the stream closes, so
// it is sent SIGTERM through a second exec.
func (r *Runtime) ExecInteractive(ctx context.Context, inv Invocation) (int, error) {
	cmd := append([]string{inv.Command}, inv.Args...)
	var pid string
	if inv.SessionID != "" {
		pid = pidFile(inv.SessionID)
		cmd = append([]string{"sh", "-c", pidWrapperScript, pid}, cmd...)
	}

	req := ExecRequest{
		Cmd:     cmd,
		Env:     envList(inv.Env),
		WorkDir: inv.WorkDir,
		TTY:     isTerminal(r.stdin),
		Stdin:   r.stdin,
		Stdout:  r.stdout,
		Stderr:  r.stderr,
	}

	r.log.WithFields(logrus.Fields{
		"cmd":     req.Cmd,
		"workdir": req.WorkDir,
		"tty":     req.TTY,
	}).Debug("Executing in container")

	code, err := r.engine.Exec(ctx, r.spec.Name, req)
	if pid == "" {
		return code, err
	}

	if ctx.Err() != nil {
		r.signal(terminateScript, pid)
		return code, err
	}
	r.signal(cleanupScript, pid)
	return code, err
}

// signal runs a short housekeeping script against a session's pid file. It
// must work after the caller's context is gone, so it gets its own deadline.
func (r *Runtime) signal(script, pid string) {
	ctx, cancel := context.WithTimeout(context.Background(), r.probeTimeout)
	defer cancel()

	code, err := r.engine.Exec(ctx, r.spec.Name, ExecRequest{Cmd: []string{"sh", "-c", script, pid}})
	if err != nil || code != 0 {
		r.log.WithError(err).WithField("exit_code", code).Debug("Session housekeeping exec failed")
	}
}

func (r *Runtime) report(phase string) {
	if r.progress != nil {
		r.progress(phase)
	}
}

// envList renders env as sorted KEY=VALUE pairs.
func envList(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	list := make([]string, 0, len(keys))
	for _, k := range keys {
		list = append(list, k+"="+env[k])
	}
	return list
}

func isTerminal(r io.Reader) bool {
	_, ok := terminalFd(r)
	return ok
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
