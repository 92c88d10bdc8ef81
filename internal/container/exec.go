package container

import (
	"context"
	"fmt"
	"io"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/pkg/stdcopy"
	"golang.org/x/term"
)

// ExitInterrupted is reported when the caller cancels an attached exec.
const ExitInterrupted = 130

// Exec runs req.Cmd inside the named container and waits for it to finish.
// With TTY set and a terminal on stdin, the terminal is put into raw mode
// for the duration and window size changes are forwarded.
func (c *Client) Exec(ctx context.Context, name string, req ExecRequest) (int, error) {
	stdout := writerOrDiscard(req.Stdout)
	stderr := writerOrDiscard(req.Stderr)

	inFd, inIsTerm := terminalFd(req.Stdin)
	outFd, outIsTerm := terminalFd(req.Stdout)

	var consoleSize *[2]uint
	if req.TTY && outIsTerm {
		if width, height, err := term.GetSize(outFd); err == nil {
			consoleSize = &[2]uint{uint(height), uint(width)}
		}
	}

	created, err := c.cli.ContainerExecCreate(ctx, name, container.ExecOptions{
		Cmd:          req.Cmd,
		Env:          req.Env,
		WorkingDir:   req.WorkDir,
		Tty:          req.TTY,
		ConsoleSize:  consoleSize,
		AttachStdin:  req.Stdin != nil,
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		return -1, fmt.Errorf("failed to create exec: %w", err)
	}

	hijacked, err := c.cli.ContainerExecAttach(ctx, created.ID, container.ExecAttachOptions{
		Tty:         req.TTY,
		ConsoleSize: consoleSize,
	})
	if err != nil {
		return -1, fmt.Errorf("failed to attach to exec: %w", err)
	}
	defer hijacked.Close()

	if req.TTY && inIsTerm {
		oldState, err := term.MakeRaw(inFd)
		if err != nil {
			return -1, fmt.Errorf("failed to set terminal raw mode: %w", err)
		}
		defer func() { _ = term.Restore(inFd, oldState) }()
	}

	if req.TTY && outIsTerm {
		execID := created.ID
		stop := watchResize(func() {
			width, height, err := term.GetSize(outFd)
			if err != nil {
				return
			}
			_ = c.cli.ContainerExecResize(ctx, execID, container.ResizeOptions{
				Height: uint(height),
				Width:  uint(width),
			})
		})
		defer stop()
	}

	return c.stream(ctx, created.ID, hijacked, req.TTY, req.Stdin, stdout, stderr)
}

// stream copies the exec's streams until it ends or ctx is cancelled, then
// reports the exit code.
func (c *Client) stream(ctx context.Context, execID string, hijacked types.HijackedResponse, tty bool, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	outputDone := make(chan error, 1)
	go func() {
		var err error
		if tty {
			_, err = io.Copy(stdout, hijacked.Reader)
		} else {
			_, err = stdcopy.StdCopy(stdout, stderr, hijacked.Reader)
		}
		outputDone <- err
	}()

	if stdin != nil {
		go func() {
			_, _ = io.Copy(hijacked.Conn, stdin)
			_ = hijacked.CloseWrite()
		}()
	}

	select {
	case err := <-outputDone:
		if err != nil {
			return -1, fmt.Errorf("exec stream failed: %w", err)
		}
	case <-ctx.Done():
		// Closing the connection only detaches; the engine leaves the
		// exec'd process running. Runtime.ExecInteractive signals it.
		hijacked.Close()
		return ExitInterrupted, ctx.Err()
	}

	inspect, err := c.cli.ContainerExecInspect(ctx, execID)
	if err != nil {
		return -1, fmt.Errorf("failed to inspect exec: %w", err)
	}
	return inspect.ExitCode, nil
}

// terminalFd returns the file descriptor behind v when it is a terminal.
func terminalFd(v any) (int, bool) {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
