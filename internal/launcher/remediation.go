package launcher

import (
	"errors"
	"fmt"

	"github.com/rickgorman/claude-persistent/internal/container"
	"github.com/rickgorman/claude-persistent/internal/pathmap"
)

// ErrToolNotFound means the tool could not be executed inside the container.
var ErrToolNotFound = errors.New("command not found in container")

// remediation returns the next action for err. Image and container names
// are filled in from the launcher's configuration.
func remediation(err error, containerName string) string {
	var invalid *pathmap.InvalidPathError
	var unsupported *pathmap.UnsupportedPathError

	switch {
	case errors.Is(err, pathmap.ErrNotMounted):
		return "Add the project's root to mounts (or its drive to drives) in the config, then run: claude-persistent reset"
	case errors.As(err, &unsupported):
		return "Network paths cannot be mounted; clone or copy the project to a local drive."
	case errors.As(err, &invalid):
		return "Run claude-persistent from inside an existing project directory."
	case errors.Is(err, container.ErrEngineUnreachable):
		return "Start Docker (Docker Desktop on Windows and macOS) and try again."
	case errors.Is(err, container.ErrInspectFailed):
		return fmt.Sprintf("Check the container with: docker inspect %s", containerName)
	case errors.Is(err, container.ErrImageMissing):
		return "Build the image first: claude-persistent build"
	case errors.Is(err, container.ErrCreateFailed):
		return "Remove the broken container and retry: claude-persistent reset"
	case errors.Is(err, container.ErrStartFailed):
		return fmt.Sprintf("Check why it stopped: docker logs %s", containerName)
	case errors.Is(err, container.ErrReadinessTimeout):
		return "Recreate the container: claude-persistent reset"
	case errors.Is(err, ErrToolNotFound):
		return "Rebuild the image: claude-persistent build --no-cache"
	default:
		return "Re-run with --debug for details."
	}
}
