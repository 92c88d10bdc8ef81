package container

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Compose drives docker compose for the container's image and lifecycle.
type Compose struct {
	File string
	// BuildKit enables the BuildKit builder for this invocation only.
	BuildKit bool

	Stdout io.Writer
	Stderr io.Writer

	// run executes the prepared command; tests replace it.
	run func(cmd *exec.Cmd) error
}

// Up creates and starts the compose services in the background.
func (c *Compose) Up(ctx context.Context) error {
	if err := c.exec(ctx, "up", "-d"); err != nil {
		return fmt.Errorf("docker compose up failed: %w", err)
	}
	return nil
}

// Build builds the compose images.
func (c *Compose) Build(ctx context.Context, noCache bool) error {
	args := []string{"build"}
	if noCache {
		args = append(args, "--no-cache")
	}
	if err := c.exec(ctx, args...); err != nil {
		return fmt.Errorf("docker compose build failed: %w", err)
	}
	return nil
}

func (c *Compose) exec(ctx context.Context, args ...string) error {
	if c.File == "" {
		return fmt.Errorf("no compose file configured")
	}

	cmd := c.command(ctx, args...)
	run := c.run
	if run == nil {
		run = func(cmd *exec.Cmd) error { return cmd.Run() }
	}
	return run(cmd)
}

// command builds the docker compose invocation. The BuildKit setting goes
// into the child's environment only; the launcher's own env is untouched.
func (c *Compose) command(ctx context.Context, args ...string) *exec.Cmd {
	full := append([]string{"compose", "-f", c.File}, args...)
	cmd := exec.CommandContext(ctx, "docker", full...)
	cmd.Env = append(os.Environ(), buildKitEnv(c.BuildKit)...)
	cmd.Stdout = writerOrDiscard(c.Stdout)
	cmd.Stderr = writerOrDiscard(c.Stderr)
	return cmd
}

func buildKitEnv(enabled bool) []string {
	value := "0"
	if enabled {
		value = "1"
	}
	return []string{"DOCKER_BUILDKIT=" + value, "COMPOSE_DOCKER_CLI_BUILD=" + value}
}
