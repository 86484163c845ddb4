package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/macrokit/midimacro/internal/core"
	"github.com/macrokit/midimacro/internal/midi"
	"github.com/macrokit/midimacro/internal/tui"
)

// newPortsCmd creates the ports command
func newPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List available MIDI input ports",
		Long: `List the names of the MIDI input ports the backend can see. Use a
substring of one of these names as the port pattern for listen.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := midi.NewAdapter()
			if err != nil {
				return fmt.Errorf("MIDI backend unavailable: %w", err)
			}

			ports, err := adapter.ListPorts()
			if err != nil {
				return fmt.Errorf("failed to list MIDI ports: %w", err)
			}

			core.MustFprintf(os.Stdout, "%s", tui.RenderPortList(ports))
			return nil
		},
	}
}
