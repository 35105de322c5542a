package cmd

import (
	"os"

	"github.com/juanibiapina/sideswipe/internal/config"
	"github.com/juanibiapina/sideswipe/internal/paths"
	"github.com/juanibiapina/sideswipe/internal/telemetry"
	"github.com/juanibiapina/sideswipe/internal/version"
	"github.com/spf13/cobra"
)

// skipTelemetry lists commands that handle their own telemetry or shouldn't be tracked
var skipTelemetry = map[string]bool{
	"mcp":        true, // has own telemetry
	"view":       true, // has own telemetry
	"completion": true, // shell completion
	"__complete": true, // internal completion
}

var configPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "sideswipe",
	Short: "Horizontally paging carousel for the terminal",
	Long: `Page through a deck of cards by dragging them sideways with the mouse,
or step through them with the keyboard.

A drag follows the pointer one to one and snaps to the nearest page on
release; a fast flick carries it further. The last page viewed in each deck
is remembered.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Track CLI command usage (skip commands with own telemetry or completion)
		name := cmd.Name()
		if skipTelemetry[name] {
			return
		}
		if parent := cmd.Parent(); parent != nil && parent.Name() == "completion" {
			return
		}
		telemetry.CLICommandStart(name)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		telemetry.CLICommandEnd()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// When called without subcommands, show overview
		return overviewCmd.RunE(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	telemetry.Init()
	defer telemetry.Flush()

	err := RootCmd.Execute()
	if err != nil {
		telemetry.Flush()
		os.Exit(1)
	}
}

// loadConfig reads the config selected by --config
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = paths.GetConfigPath()
	}
	return config.Load(path)
}

func init() {
	// Set version for --version flag
	RootCmd.Version = version.Version

	// Don't show usage on errors - only show it when explicitly requested
	RootCmd.SilenceUsage = true

	RootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file (default is $XDG_CONFIG_HOME/sideswipe/config.toml)")
}
