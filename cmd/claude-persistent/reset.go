package main

import (
	"github.com/spf13/cobra"

	"github.com/rickgorman/claude-persistent/internal/container"
	"github.com/rickgorman/claude-persistent/internal/ui"
)

func newResetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove the persistent container so the next launch recreates it",
		Args:  cobra.NoArgs,
		RunE:  runReset,
	}

	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	yes, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return err
	}

	a, err := loadApp(readGlobalFlags(cmd))
	if err != nil {
		return err
	}

	if !yes && stdinIsTerminal() {
		if !ui.AskYesNo("Remove container "+a.cfg.Container+"? Running sessions will end.", false) {
			return nil
		}
	}

	ctx, stop := signalContext()
	defer stop()

	client, err := container.NewClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Remove(ctx, a.cfg.Container, true); err != nil {
		return err
	}
	ui.Success("Removed %s", a.cfg.Container)
	return nil
}
