package container

import (
	"fmt"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
)

// keepAliveCmd keeps the container running between sessions; the tool
// itself is always started through exec.
var keepAliveCmd = []string{"sleep", "infinity"}

// buildContainerConfig creates a container.Config from a Spec.
func buildContainerConfig(spec Spec, image string) *container.Config {
	config := &container.Config{
		Image:      image,
		Cmd:        keepAliveCmd,
		WorkingDir: "/",
		Labels:     spec.Labels,
	}

	// Add exposed ports for port mappings
	if len(spec.PortMappings) > 0 {
		exposedPorts := make(nat.PortSet)
		for _, pm := range spec.PortMappings {
			port := nat.Port(fmt.Sprintf("%d/tcp", pm.Container))
			exposedPorts[port] = struct{}{}
		}
		config.ExposedPorts = exposedPorts
	}

	return config
}

// buildHostConfig creates a container.HostConfig from a Spec.
func buildHostConfig(spec Spec) *container.HostConfig {
	hostConfig := &container.HostConfig{
		RestartPolicy: container.RestartPolicy{
			Name: container.RestartPolicyMode("unless-stopped"),
		},
		Init: boolPtr(true),
	}

	// Add port mappings
	if len(spec.PortMappings) > 0 {
		portBindings := make(nat.PortMap)
		for _, pm := range spec.PortMappings {
			containerPort := nat.Port(fmt.Sprintf("%d/tcp", pm.Container))
			portBindings[containerPort] = []nat.PortBinding{
				{
					HostIP:   "127.0.0.1",
					HostPort: fmt.Sprintf("%d", pm.Host),
				},
			}
		}
		hostConfig.PortBindings = portBindings
	}

	// Add volume mounts
	if len(spec.Mounts) > 0 {
		mounts := make([]mount.Mount, 0, len(spec.Mounts))
		for _, v := range spec.Mounts {
			mounts = append(mounts, mount.Mount{
				Type:     mount.TypeBind,
				Source:   expandPath(v.Source),
				Target:   v.Target,
				ReadOnly: v.ReadOnly,
			})
		}
		hostConfig.Mounts = mounts
	}

	return hostConfig
}

func boolPtr(b bool) *bool {
	return &b
}

// isNotFoundError checks if an error is a "not found" error from Docker.
func isNotFoundError(err error) bool {
	return client.IsErrNotFound(err)
}

// parseDockerTimestamp parses a Docker timestamp string.
func parseDockerTimestamp(ts string) (time.Time, error) {
	// Docker timestamps are in RFC3339Nano format
	return time.Parse(time.RFC3339Nano, ts)
}
