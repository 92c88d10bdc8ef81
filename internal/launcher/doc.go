// Package launcher orchestrates one tool session: it validates the working
// directory, derives the session identity, makes sure the persistent
// container is ready, and runs the tool inside it.
//
// Launch never exits the process. It returns a Result whose ExitCode the
// caller hands to os.Exit:
//
//	0         success
//	1         invalid directory, container unavailable, or engine error
//	126, 127  tool missing from the image
//	130       interrupted
//	other     the tool's own exit code
package launcher
