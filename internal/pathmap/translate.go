package pathmap

import (
	"fmt"
	"path"
	"runtime"
	"strings"
)

// Platform identifies how host paths are rooted.
type Platform int

const (
	// PlatformPOSIX hosts have a single "/" root.
	PlatformPOSIX Platform = iota
	// PlatformWindows hosts have drive-letter roots (C:\).
	PlatformWindows
)

// HostPlatform returns the Platform of the running process.
func HostPlatform() Platform {
	if runtime.GOOS == "windows" {
		return PlatformWindows
	}
	return PlatformPOSIX
}

func (p Platform) String() string {
	if p == PlatformWindows {
		return "windows"
	}
	return "posix"
}

// Convention is the container-side layout for host drives.
type Convention string

const (
	// ConventionMnt mounts drive C: at /mnt/c.
	ConventionMnt Convention = "mnt"
	// ConventionRoot mounts drive C: at /c.
	ConventionRoot Convention = "root"
)

// ParseConvention converts a config value into a Convention.
// An empty string selects ConventionMnt.
func ParseConvention(s string) (Convention, error) {
	switch Convention(strings.ToLower(strings.TrimSpace(s))) {
	case "", ConventionMnt:
		return ConventionMnt, nil
	case ConventionRoot:
		return ConventionRoot, nil
	default:
		return "", fmt.Errorf("unknown mount convention %q (want %q or %q)", s, ConventionMnt, ConventionRoot)
	}
}

// DriveTarget returns the container path a host drive is mounted at.
func (c Convention) DriveTarget(drive string) string {
	drive = strings.ToLower(strings.TrimSuffix(drive, ":"))
	if c == ConventionRoot {
		return "/" + drive
	}
	return "/mnt/" + drive
}

// Translator maps host paths to container paths.
type Translator struct {
	Platform   Platform
	Convention Convention
}

// NewTranslator returns a Translator for the host platform.
func NewTranslator(convention Convention) Translator {
	return Translator{Platform: HostPlatform(), Convention: convention}
}

// Translate rewrites an absolute host path into the container's namespace.
// It is pure: the filesystem is never consulted.
func (t Translator) Translate(hostPath string) (string, error) {
	if isUNC(hostPath, t.Platform) {
		return "", &UnsupportedPathError{
			Path:   hostPath,
			Reason: "network share paths cannot be mounted; copy the project locally or map a network drive",
		}
	}

	if t.Platform == PlatformWindows {
		return t.translateWindows(hostPath)
	}

	if !strings.HasPrefix(hostPath, "/") {
		return "", &InvalidPathError{Path: hostPath, Reason: "path is not absolute"}
	}
	return path.Clean(hostPath), nil
}

func (t Translator) translateWindows(hostPath string) (string, error) {
	p := strings.TrimPrefix(hostPath, `\\?\`)

	drive, rest, ok := splitDrive(p)
	if !ok {
		return "", &InvalidPathError{Path: hostPath, Reason: "path is not absolute (expected a drive letter such as C:\\)"}
	}

	rest = path.Clean(strings.ReplaceAll(rest, `\`, "/"))
	target := t.Convention.DriveTarget(drive)
	if rest == "/" {
		return target, nil
	}
	return target + rest, nil
}

// splitDrive splits "C:\foo" into ("c", "\foo"). Drive-relative paths such
// as "C:foo" are rejected.
func splitDrive(p string) (string, string, bool) {
	if len(p) < 3 || p[1] != ':' || !isLetter(p[0]) {
		return "", "", false
	}
	if p[2] != '\\' && p[2] != '/' {
		return "", "", false
	}
	return strings.ToLower(p[:1]), p[2:], true
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isUNC reports whether p addresses a network share.
func isUNC(p string, platform Platform) bool {
	if strings.HasPrefix(p, `\\?\`) {
		return strings.HasPrefix(strings.ToUpper(p[4:]), `UNC\`)
	}
	if strings.HasPrefix(p, `\\`) {
		return true
	}
	return platform == PlatformWindows && strings.HasPrefix(p, "//")
}

// Within reports whether the container path p lies at or below one of roots.
func Within(p string, roots []string) bool {
	p = path.Clean(p)
	for _, root := range roots {
		root = path.Clean(root)
		if root == "/" || p == root || strings.HasPrefix(p, root+"/") {
			return true
		}
	}
	return false
}
