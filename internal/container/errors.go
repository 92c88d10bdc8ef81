package container

import "errors"

var (
	// ErrEngineUnreachable means the Docker daemon did not answer.
	ErrEngineUnreachable = errors.New("container engine unreachable")
	// ErrInspectFailed means the engine answered but could not report the
	// container's state.
	ErrInspectFailed = errors.New("container inspect failed")
	// ErrAlreadyExists is returned by Engine.Create when another process
	// created the container first.
	ErrAlreadyExists = errors.New("container already exists")
	// ErrCreateFailed means the container could not be created.
	ErrCreateFailed = errors.New("container create failed")
	// ErrStartFailed means the stopped container could not be started.
	ErrStartFailed = errors.New("container start failed")
	// ErrReadinessTimeout means the container never accepted commands
	// within the readiness budget.
	ErrReadinessTimeout = errors.New("container not ready")
	// ErrImageMissing means none of the configured images exist locally.
	ErrImageMissing = errors.New("no container image found")
)
