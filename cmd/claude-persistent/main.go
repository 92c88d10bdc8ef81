package main

import (
	"errors"
	"os"

	"github.com/rickgorman/claude-persistent/internal/ui"
)

var version = "0.1.0-dev"

func main() {
	if err := run(newRootCommand(), os.Args[1:]); err != nil {
		var exitErr *exitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		ui.Fail("%v", err)
		os.Exit(1)
	}
}
