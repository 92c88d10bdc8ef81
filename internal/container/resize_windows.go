//go:build windows

package container

// watchResize only sets the initial size; Windows consoles have no SIGWINCH.
func watchResize(resize func()) (stop func()) {
	resize()
	return func() {}
}
