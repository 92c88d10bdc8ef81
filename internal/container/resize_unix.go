//go:build !windows

package container

import (
	"os"
	"os/signal"
	"syscall"
)

// watchResize calls resize once and again on every SIGWINCH until stop is called.
func watchResize(resize func()) (stop func()) {
	resize()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-sigCh:
				resize()
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}
