package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	// build time date
	buildDate = "unknown"
)

func main() {
	var (
		configPath   string
		portPattern  string
		settingsPath string
		prettyLog    bool
	)

	rootCmd := &cobra.Command{
		Use:   "midimacro",
		Short: "MIDI macro pad rule engine",
		Long: `midimacro turns a MIDI device into a macro pad. It reads a declarative
configuration of macro rules, listens to a MIDI input port, and dispatches
actions (key sequences, typed text, shell commands) when incoming events
match a rule.`,
		Version: fmt.Sprintf("%s (built: %s)", version, buildDate),
		// Default to listen command when no subcommand is provided
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListen(configPath, portPattern, settingsPath, prettyLog)
		},
	}

	// Add listen flags to root command so `midimacro --config x.yaml` works
	// the same as `midimacro listen --config x.yaml`
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to macro configuration file")
	rootCmd.Flags().StringVar(&portPattern, "port-pattern", "", "Substring to select the MIDI input port (overrides config)")
	rootCmd.Flags().StringVar(&settingsPath, "settings", "", "Path to app settings file (default: ~/.midimacro/config.yaml, ./midimacro.yaml)")
	rootCmd.Flags().BoolVar(&prettyLog, "pretty", false, "Use pretty-printed logs instead of JSON")

	// Add subcommands
	rootCmd.AddCommand(newListenCmd())
	rootCmd.AddCommand(newPortsCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newMacrosCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
