package main

import (
	"github.com/spf13/cobra"

	"github.com/rickgorman/claude-persistent/internal/cli"
)

const (
	flagDebug     = "debug"
	flagVerbose   = "verbose"
	flagContainer = "container"
	flagConfig    = "config"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "claude-persistent [flags] [--] [tool args...]",
		Short: "Run Claude Code for the current directory inside a persistent container",
		Long: `claude-persistent starts (or reuses) one long-lived container and runs a
Claude Code session in it for the current directory. Arguments that are not
launcher flags are forwarded to the tool unchanged; put them after "--" to
forward words that collide with a subcommand name.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               runLaunch,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Declared so subcommands accept them and cobra knows which take values
	// when locating a subcommand; the root command splits its own argv.
	rootCmd.PersistentFlags().BoolP(flagDebug, "v", false, "Enable diagnostic logging")
	rootCmd.PersistentFlags().Bool(flagVerbose, false, "Alias for --debug")
	rootCmd.PersistentFlags().String(flagContainer, "", "Persistent container name")
	rootCmd.PersistentFlags().String(flagConfig, "", "Config file path")

	rootCmd.AddCommand(newStatusCommand())
	rootCmd.AddCommand(newBuildCommand())
	rootCmd.AddCommand(newResetCommand())
	rootCmd.AddCommand(newVersionCommand())
	rootCmd.InitDefaultHelpCmd()

	return rootCmd
}

// commandFor picks the command args run. A subcommand is chosen only when
// it is the first argument after launcher flags, so "--model opus status"
// reaches the tool instead of cobra's flag-stripping lookup.
func commandFor(root *cobra.Command, args []string) *cobra.Command {
	word, ok := cli.FirstOperand(args)
	if !ok {
		return root
	}
	for _, sub := range root.Commands() {
		if sub.Name() == word || sub.HasAlias(word) {
			return sub
		}
	}
	return root
}

// run dispatches args to a subcommand or launches the tool.
func run(root *cobra.Command, args []string) error {
	if commandFor(root, args) == root {
		return root.RunE(root, args)
	}
	root.SetArgs(args)
	return root.Execute()
}

type globalFlags struct {
	debug      bool
	container  string
	configPath string
}

func readGlobalFlags(cmd *cobra.Command) globalFlags {
	debug, _ := cmd.Flags().GetBool(flagDebug)
	verbose, _ := cmd.Flags().GetBool(flagVerbose)
	containerName, _ := cmd.Flags().GetString(flagContainer)
	configPath, _ := cmd.Flags().GetString(flagConfig)
	return globalFlags{
		debug:      debug || verbose,
		container:  containerName,
		configPath: configPath,
	}
}
