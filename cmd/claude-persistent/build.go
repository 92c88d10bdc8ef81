package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rickgorman/claude-persistent/internal/config"
	"github.com/rickgorman/claude-persistent/internal/ui"
)

func newBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the container image with docker compose",
		Args:  cobra.NoArgs,
		RunE:  runBuild,
	}

	cmd.Flags().Bool("no-cache", false, "Do not use the build cache")

	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}

	a, err := loadApp(readGlobalFlags(cmd))
	if err != nil {
		return err
	}
	if a.cfg.ComposeFile == "" {
		return fmt.Errorf("no compose_file configured; set it in the config file or %s", config.EnvComposeFile)
	}

	ctx, stop := signalContext()
	defer stop()

	ui.Info("Building image from %s", a.cfg.ComposeFile)
	if err := a.compose().Build(ctx, noCache); err != nil {
		return err
	}
	ui.Success("Image built")
	return nil
}
