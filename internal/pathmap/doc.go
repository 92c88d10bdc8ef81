// Package pathmap validates the project directory and maps it into the
// container's mount namespace.
//
// A single long-lived container serves every project on the host, so the
// directory a session is launched from has to be expressed as a path the
// container can see. This package handles:
//   - Validating the launch directory (exists, is a directory, not a network share)
//   - Canonicalizing it (absolute, ".." removed, symlinks resolved)
//   - Rewriting it into the container path for the host platform
//
// On POSIX hosts the container path is the host path: host roots are
// bind-mounted at identical paths. On drive-letter hosts each drive is
// bind-mounted under a fixed root chosen by the Convention:
//
//	ConventionMnt:  C:\Users\me\app -> /mnt/c/Users/me/app
//	ConventionRoot: C:\Users\me\app -> /c/Users/me/app
//
// Convention.DriveTarget is the single source of truth for where a drive is
// mounted; the container package lays out its bind mounts with it.
//
// Example usage:
//
//	projectPath, err := pathmap.Resolve(cwd)
//	if err != nil {
//	    return err
//	}
//	containerPath, err := pathmap.NewTranslator(pathmap.ConventionMnt).Translate(projectPath)
package pathmap
