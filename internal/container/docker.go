// Package container handles Docker operations for the persistent container.
package container

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/errdefs"
)

// Client wraps the Docker client with our operations.
type Client struct {
	cli *client.Client
}

// NewClient creates a new Docker client wrapper.
func NewClient() (*Client, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, err
	}
	return &Client{cli: cli}, nil
}

// Close closes the underlying Docker client.
func (c *Client) Close() error {
	return c.cli.Close()
}

// Ping checks that the Docker daemon answers.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.cli.Ping(ctx)
	return err
}

// Inspect reports the state of a container by name.
func (c *Client) Inspect(ctx context.Context, name string) (State, error) {
	inspect, err := c.cli.ContainerInspect(ctx, name)
	if err != nil {
		if isNotFoundError(err) {
			return StateNotExists, nil
		}
		return StateUnknown, err
	}
	if inspect.State == nil {
		return StateUnknown, fmt.Errorf("container %s has no state", name)
	}

	if inspect.State.Running && !inspect.State.Paused {
		return StateRunning, nil
	}
	return StateStopped, nil
}

// Create creates and starts the container. With a compose file it delegates
// to docker compose; otherwise it uses the first available image. Either way
// one of spec.Images must already exist when any are listed.
func (c *Client) Create(ctx context.Context, spec Spec) error {
	var image string
	if len(spec.Images) > 0 {
		var err error
		if image, err = c.FirstAvailableImage(ctx, spec.Images); err != nil {
			return err
		}
	}

	if spec.ComposeFile != "" {
		compose := &Compose{File: spec.ComposeFile, BuildKit: spec.BuildKit, Stdout: os.Stderr, Stderr: os.Stderr}
		return compose.Up(ctx)
	}
	if image == "" {
		return fmt.Errorf("%w: no images configured", ErrImageMissing)
	}

	if err := PrepareVolumeMounts(spec.Mounts); err != nil {
		return err
	}

	resp, err := c.cli.ContainerCreate(
		ctx,
		buildContainerConfig(spec, image),
		buildHostConfig(spec),
		nil,
		nil,
		spec.Name,
	)
	if err != nil {
		if errdefs.IsConflict(err) {
			return fmt.Errorf("%w: %v", ErrAlreadyExists, err)
		}
		return fmt.Errorf("failed to create container: %w", err)
	}

	if err := c.cli.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		return fmt.Errorf("failed to start container: %w", err)
	}

	return nil
}

// Start starts a stopped container, unpausing it if it was paused.
func (c *Client) Start(ctx context.Context, name string) error {
	inspect, err := c.cli.ContainerInspect(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to inspect container: %w", err)
	}

	if inspect.State != nil && inspect.State.Paused {
		return c.cli.ContainerUnpause(ctx, name)
	}

	return c.cli.ContainerStart(ctx, name, container.StartOptions{})
}

// ImageExists checks if an image reference exists locally.
func (c *Client) ImageExists(ctx context.Context, imageName string) (bool, error) {
	_, _, err := c.cli.ImageInspectWithRaw(ctx, imageName)
	if err != nil {
		if isNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// FirstAvailableImage returns the first of images present locally.
func (c *Client) FirstAvailableImage(ctx context.Context, images []string) (string, error) {
	for _, image := range images {
		exists, err := c.ImageExists(ctx, image)
		if err != nil {
			return "", fmt.Errorf("failed to check image %s: %w", image, err)
		}
		if exists {
			return image, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrImageMissing, strings.Join(images, ", "))
}

// Remove removes a container.
func (c *Client) Remove(ctx context.Context, nameOrID string, force bool) error {
	options := container.RemoveOptions{
		Force:         force,
		RemoveVolumes: false,
	}

	err := c.cli.ContainerRemove(ctx, nameOrID, options)
	if err != nil && !isNotFoundError(err) {
		return fmt.Errorf("failed to remove container: %w", err)
	}

	return nil
}
