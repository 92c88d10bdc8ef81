package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/rickgorman/claude-persistent/internal/cli"
	"github.com/rickgorman/claude-persistent/internal/container"
	"github.com/rickgorman/claude-persistent/internal/git"
	"github.com/rickgorman/claude-persistent/internal/launcher"
	"github.com/rickgorman/claude-persistent/internal/pathmap"
	"github.com/rickgorman/claude-persistent/internal/ui"
)

func runLaunch(cmd *cobra.Command, rawArgs []string) error {
	args, err := cli.Parse(rawArgs)
	if err != nil {
		ui.Fail("%v", err)
		return exitWith(launcher.ExitFailure)
	}

	a, err := loadApp(globalFlags{debug: args.Debug, container: args.Container, configPath: args.ConfigPath})
	if err != nil {
		ui.Fail("%v", err)
		return exitWith(launcher.ExitFailure)
	}

	ctx, stop := signalContext()
	defer stop()

	spec, err := a.containerSpec()
	if err != nil {
		ui.Fail("%v", err)
		return exitWith(launcher.ExitFailure)
	}

	client, err := container.NewClient()
	if err != nil {
		ui.Fail("Failed to connect to Docker: %v", err)
		ui.Hint("Start Docker (Docker Desktop on Windows and macOS) and try again.")
		return exitWith(launcher.ExitFailure)
	}
	defer client.Close()

	rt := a.newRuntime(client, spec, func(phase string) { ui.Info("%s", phase) })
	l := launcher.New(rt, a.cfg.Container, a.cfg.Command,
		launcher.WithEnv(a.cfg.Env),
		launcher.WithEnv(a.gitIdentity()),
		launcher.WithTranslator(pathmap.Translator{Platform: a.platform, Convention: a.cfg.Convention()}),
		launcher.WithMountTargets(a.mountTargets(spec)),
		launcher.WithLogger(a.log),
	)

	result := l.Launch(ctx, args.ToolArgs)
	if a.offerBuild(result) {
		if err := a.compose().Build(ctx, false); err != nil {
			ui.Fail("%v", err)
			return exitWith(launcher.ExitFailure)
		}
		ui.Success("Image built")
		result = l.Launch(ctx, args.ToolArgs)
	}

	report(result)
	return exitWith(result.ExitCode)
}

// mountTargets lists where host directories appear in the container. A
// compose file declares its own volumes, so nothing is checked there.
func (a *app) mountTargets(spec container.Spec) []string {
	if a.cfg.ComposeFile != "" {
		return nil
	}
	targets := make([]string, 0, len(spec.Mounts))
	for _, m := range spec.Mounts {
		targets = append(targets, m.Target)
	}
	return targets
}

// gitIdentity returns the host git author variables when forwarding is on.
func (a *app) gitIdentity() map[string]string {
	if !a.cfg.ForwardGitIdentity {
		return nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	identity, err := git.ExtractUserConfig(home)
	if err != nil {
		a.log.WithError(err).Debug("Could not read git identity")
		return nil
	}
	return identity.Env()
}

// offerBuild asks whether to build a missing image. Only compose builds are
// supported and only an interactive user is asked.
func (a *app) offerBuild(result launcher.Result) bool {
	if result.Outcome != launcher.OutcomeContainerUnavailable || !errors.Is(result.Err, container.ErrImageMissing) {
		return false
	}
	if a.cfg.ComposeFile == "" || !stdinIsTerminal() {
		return false
	}
	ui.Warn("Container image not found")
	return ui.AskYesNo("Build it now?", true)
}

func report(result launcher.Result) {
	switch result.Outcome {
	case launcher.OutcomeSuccess, launcher.OutcomeToolExited:
		return
	case launcher.OutcomeUserCancelled:
		ui.BlankLine()
		ui.Info("Goodbye!")
		return
	case launcher.OutcomeCommandNotFound:
		ui.Fail("Claude command not found in container")
	default:
		ui.Fail("%v", result.Err)
	}
	if result.Remediation != "" {
		ui.Hint("%s", result.Remediation)
	}
}
