// Package container manages the single persistent container that hosts
// every tool session.
//
// The package provides four main components:
//
// 1. Engine (engine.go, docker.go)
//    - Narrow interface over the container engine: ping, inspect, create, start, exec
//    - Docker SDK implementation with compose and direct-image creation paths
//    - Image discovery across the configured fallback list
//
// 2. Runtime (runtime.go)
//    - EnsureReady: probe, create or start, then poll until the container accepts commands
//    - ExecInteractive: run the tool with the session environment and terminal attached
//
// 3. Interactive exec (exec.go, resize_*.go)
//    - Raw-mode terminal handling and window resize forwarding
//    - Exit code retrieval after the stream closes
//
// 4. Mounts and ports (volumes.go, ports.go)
//    - MountLayout keeps drive mounts consistent with path translation
//    - Loopback-only port publishing
//
// Basic usage:
//
//	client, err := container.NewClient()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	rt := container.NewRuntime(client, container.Spec{
//	    Name:   "claude-persistent",
//	    Images: []string{"claude-code-container:full", "claude-code-container:slim"},
//	})
//	if err := rt.EnsureReady(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	code, err := rt.ExecInteractive(ctx, container.Invocation{
//	    Command: "/usr/local/bin/claude-namespace-launcher",
//	    Env:     map[string]string{"PROJECT_PATH": "/home/alice/proj"},
//	})
package container
