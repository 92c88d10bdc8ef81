// Package session handles per-launch identity and host session state.
//
// This package handles:
//   - Session ID generation from the project path and launch time
//   - The host ~/.claude directory shared with the container
//
// Every launch gets a fresh ID. It is passed into the container as
// SESSION_ID so concurrent sessions from different projects can be told
// apart in the tool's logs and history. IDs are never persisted or reused.
//
// Example usage:
//
//	gen := session.NewGenerator()
//	id := gen.Generate("/home/alice/proj")
//
//	// Make sure the bind-mount source exists before creating the container
//	claudeDir, err := session.EnsureClaudeDir()
package session
