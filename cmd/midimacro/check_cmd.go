package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/macrokit/midimacro/internal/config"
	_ "github.com/macrokit/midimacro/internal/config/version1"
	"github.com/macrokit/midimacro/internal/core"
)

// newCheckCmd creates the check command
func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check CONFIG_FILE",
		Short: "Validate a macro configuration file",
		Long: `Parse and resolve a macro configuration file without opening any MIDI
device. Exits non-zero and reports the first error when the file is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return fmt.Errorf("configuration invalid: %w", err)
			}

			core.MustFprintf(os.Stdout, "Configuration OK: %d macro(s)\n", len(cfg.Macros))
			return nil
		},
	}

	return cmd
}
