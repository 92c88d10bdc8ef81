package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/rickgorman/claude-persistent/internal/container"
	"github.com/rickgorman/claude-persistent/internal/ui"
)

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the persistent container's state, uptime and image",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := loadApp(readGlobalFlags(cmd))
	if err != nil {
		return err
	}
	ctx, stop := signalContext()
	defer stop()

	client, err := container.NewClient()
	if err != nil {
		return err
	}
	defer client.Close()

	spec, err := a.cfg.Spec(a.platform, "")
	if err != nil {
		return err
	}
	rt := a.newRuntime(client, spec, nil)

	ui.Header()
	defer ui.Footer()

	state, err := rt.Probe(ctx)
	switch {
	case errors.Is(err, container.ErrEngineUnreachable):
		ui.Fail("Docker is not running")
		ui.Hint("Start Docker (Docker Desktop on Windows and macOS) and try again.")
		return exitWith(1)
	case err != nil:
		ui.Fail("%v", err)
		ui.Hint("Check the container with: docker inspect %s", rt.Name())
		return exitWith(1)
	}

	switch state {
	case container.StateRunning:
		uptime, err := client.Uptime(ctx, rt.Name())
		if err != nil {
			ui.Success("%s is running", rt.Name())
		} else {
			ui.Success("%s is running (up %s)", rt.Name(), uptime)
		}
	case container.StateStopped:
		ui.Warn("%s is stopped; the next launch starts it", rt.Name())
	default:
		ui.Warn("%s does not exist; the next launch creates it", rt.Name())
	}

	if len(spec.Images) > 0 {
		image, err := client.FirstAvailableImage(ctx, spec.Images)
		switch {
		case errors.Is(err, container.ErrImageMissing):
			ui.Fail("No image found (tried %d)", len(spec.Images))
		case err != nil:
			ui.Warn("Could not check images: %v", err)
		default:
			ui.Info("Image %s", ui.Bold(image))
		}
	}
	if a.cfg.ComposeFile != "" {
		ui.DimMsg("compose file: %s", a.cfg.ComposeFile)
	}

	return nil
}
