package container

import (
	"context"
	"fmt"
	"time"
)

// Uptime returns the uptime of a container as a human-readable string.
func (c *Client) Uptime(ctx context.Context, name string) (string, error) {
	inspect, err := c.cli.ContainerInspect(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to inspect container: %w", err)
	}

	if inspect.State == nil || !inspect.State.Running {
		return "", fmt.Errorf("container is not running")
	}

	startedAt, err := parseDockerTimestamp(inspect.State.StartedAt)
	if err != nil {
		return "", fmt.Errorf("failed to parse start time: %w", err)
	}

	return formatUptime(time.Since(startedAt)), nil
}

// formatUptime formats a duration into a human-readable uptime string.
func formatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
