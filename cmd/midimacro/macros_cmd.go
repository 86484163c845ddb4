package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/macrokit/midimacro/internal/config"
	_ "github.com/macrokit/midimacro/internal/config/version1"
	"github.com/macrokit/midimacro/internal/core"
	"github.com/macrokit/midimacro/internal/tui"
)

// newMacrosCmd creates the macros command
func newMacrosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "macros CONFIG_FILE",
		Short: "List the macros defined in a configuration file",
		Long: `Resolve a macro configuration file and print its macros in evaluation
order, with matcher, precondition, and scope counts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return fmt.Errorf("configuration invalid: %w", err)
			}

			core.MustFprintf(os.Stdout, "%s", tui.RenderMacroList(cfg.Macros))
			return nil
		},
	}

	return cmd
}
