// Package hash provides hashing utilities for path-based identifiers.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strconv"
	"time"
)

// SessionIDLength is the number of hex characters kept from the digest.
const SessionIDLength = 8

// SHA256Sum returns the full SHA-256 hash of a string.
func SHA256Sum(s string) string {
	hasher := sha256.New()
	_, _ = io.WriteString(hasher, s)
	return hex.EncodeToString(hasher.Sum(nil))
}

// SessionID derives a short identifier from a project path and a point in time.
// The digest input is "<path>:<unix nanoseconds>", so distinct paths at the same
// instant and the same path at distinct instants yield different IDs.
func SessionID(path string, at time.Time) string {
	return SHA256Sum(path + ":" + strconv.FormatInt(at.UnixNano(), 10))[:SessionIDLength]
}
