// Package hash provides the digest helpers behind session identifiers.
//
// A session identifier labels one launch of the tool for one project. It is
// the first 8 hex characters of SHA-256("<project path>:<unix nanos>"):
// short enough to read in logs, wide enough that two sessions running at the
// same time practically never share one.
//
// The identifier is not a secret and not a lock key. Two launches of the same
// project within the same nanosecond would collide; that is accepted.
//
// Example usage:
//
//	id := hash.SessionID("/home/alice/proj", time.Now())
//	// Returns: "3f9a12c0"
package hash
