package container

import (
	"context"
	"io"
)

// Engine is the subset of container engine operations the runtime needs.
// Client implements it against the Docker daemon.
type Engine interface {
	// Ping checks that the engine is reachable.
	Ping(ctx context.Context) error
	// Inspect reports the state of the named container. A missing container
	// is StateNotExists with a nil error.
	Inspect(ctx context.Context, name string) (State, error)
	// Create creates and starts the container described by spec. It returns
	// an error wrapping ErrAlreadyExists when the name is taken.
	Create(ctx context.Context, spec Spec) error
	// Start starts an existing container.
	Start(ctx context.Context, name string) error
	// Exec runs a command inside the running container and returns its exit code.
	Exec(ctx context.Context, name string, req ExecRequest) (int, error)
}

// Spec describes the long-lived container.
type Spec struct {
	Name string
	// Images are tried in order; the first one present locally is used.
	Images []string
	// ComposeFile, when set, creates the container with docker compose instead.
	ComposeFile string
	// BuildKit is passed to compose as DOCKER_BUILDKIT/COMPOSE_DOCKER_CLI_BUILD.
	BuildKit     bool
	Mounts       []VolumeMount
	PortMappings []PortMapping
	Labels       map[string]string
}

// ExecRequest is one command run inside the container.
type ExecRequest struct {
	// Cmd is the argument vector. It is never joined into a shell string.
	Cmd     []string
	Env     []string
	WorkDir string
	TTY     bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}
