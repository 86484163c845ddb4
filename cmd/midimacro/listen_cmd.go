package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/macrokit/midimacro/internal/config"
	_ "github.com/macrokit/midimacro/internal/config/version1"
	"github.com/macrokit/midimacro/internal/core"
	"github.com/macrokit/midimacro/internal/engine"
	"github.com/macrokit/midimacro/internal/midi"
	"github.com/macrokit/midimacro/internal/runner"
	"github.com/macrokit/midimacro/internal/state"
)

// newListenCmd creates the listen command
func newListenCmd() *cobra.Command {
	var (
		configPath   string
		portPattern  string
		settingsPath string
		prettyLog    bool
	)

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Listen to a MIDI device and run matching macros",
		Long: `Listen to a MIDI input port and run macros from the configuration file.
This is the default command when no subcommand is specified.

The port pattern is resolved with the following precedence: the
--port-pattern flag, then the port_pattern app setting, then the device
field of the macro configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListen(configPath, portPattern, settingsPath, prettyLog)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to macro configuration file")
	cmd.Flags().StringVar(&portPattern, "port-pattern", "", "Substring to select the MIDI input port (overrides config)")
	cmd.Flags().StringVar(&settingsPath, "settings", "", "Path to app settings file (default: ~/.midimacro/config.yaml, ./midimacro.yaml)")
	cmd.Flags().BoolVar(&prettyLog, "pretty", false, "Use pretty-printed logs instead of JSON")

	return cmd
}

// runListen wires the full listening pipeline: settings, logger, macro
// configuration, device and focus adapters, state tracker, action runner,
// and finally the engine loop.
func runListen(configPath, portPattern, settingsPath string, prettyLog bool) error {
	settings, err := config.LoadAppSettings(settingsPath)
	if err != nil {
		fmt.Printf("Failed to load settings: %v\n", err)
		return err
	}

	if err := core.Init(resolveLogFormat(settings, prettyLog), settings.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		return err
	}
	defer zap.L().Sync() //nolint:errcheck // Ignore sync errors on stdout/stderr, they're not critical and common in test environments

	cfg, err := loadMacroConfig(configPath, settings)
	if err != nil {
		zap.L().Error("Failed to load macro configuration", zap.Error(err))
		return err
	}

	pattern := resolvePortPattern(portPattern, settings, cfg)

	adapter, err := midi.NewAdapter()
	if err != nil {
		return fmt.Errorf("MIDI backend unavailable: %w", err)
	}

	focus, err := state.NewFocusAdapter()
	if err != nil {
		return fmt.Errorf("focus backend unavailable: %w", err)
	}

	keyboard, err := runner.NewKeyboardAdapter()
	if err != nil {
		return fmt.Errorf("keyboard backend unavailable: %w", err)
	}

	messages, err := adapter.Listen(pattern)
	if err != nil {
		return fmt.Errorf("failed to open MIDI port matching %q: %w", pattern, err)
	}

	tracker := state.NewTracker(focus)
	eng := engine.New(cfg.Macros, cfg.Settings.Stop, tracker, runner.New(keyboard))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	zap.L().Info("Listening for MIDI events",
		zap.String("port_pattern", pattern),
		zap.Int("macros", len(cfg.Macros)))

	if err := eng.Run(ctx, messages, adapter.Stop); err != nil {
		if errors.Is(err, context.Canceled) {
			zap.L().Info("Received shutdown signal, exiting gracefully")
			adapter.Stop()
			return nil
		}
		return fmt.Errorf("engine error: %w", err)
	}

	return nil
}

// loadMacroConfig loads the macro configuration from the --config flag, or
// falls back to the config_path app setting.
func loadMacroConfig(configPath string, settings *config.AppSettings) (*config.Config, error) {
	if configPath == "" {
		configPath = settings.ConfigPath
	}
	if configPath == "" {
		return nil, fmt.Errorf("no configuration file given: pass --config or set config_path in settings")
	}
	return config.Load(configPath)
}

// resolveLogFormat determines the log format based on CLI flag and settings
func resolveLogFormat(settings *config.AppSettings, prettyLog bool) bool {
	if !prettyLog && settings.LogFormat == "pretty" {
		return true
	}
	return prettyLog
}

// resolvePortPattern applies the documented precedence: flag, app setting,
// then the device field of the macro configuration.
func resolvePortPattern(flag string, settings *config.AppSettings, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	if settings.PortPattern != "" {
		return settings.PortPattern
	}
	return cfg.Settings.DevicePattern
}
