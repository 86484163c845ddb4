package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// AppSettings are the runtime settings of the midimacro process itself, as
// opposed to the macro configuration file. They are loaded with precedence:
// environment variables > project settings file > user settings file >
// defaults.
type AppSettings struct {
	// ConfigPath is the default macro configuration file used when the
	// --config flag is not given.
	ConfigPath string `mapstructure:"config_path"`

	// PortPattern overrides the macro configuration's device pattern.
	PortPattern string `mapstructure:"port_pattern"`

	LogFormat string `mapstructure:"log_format" validate:"omitempty,oneof=pretty json"`
	LogLevel  string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error fatal"`
}

var validate = validator.New()

// UserSettingsPath returns the path to the user settings file
// (~/.midimacro/config.yaml).
func UserSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".midimacro", "config.yaml"), nil
}

// ProjectSettingsPath returns the path to the project settings file
// (./midimacro.yaml) relative to the current working directory.
func ProjectSettingsPath() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	return filepath.Join(cwd, "midimacro.yaml"), nil
}

// setupViper configures Viper with defaults, settings file locations, and
// environment variables. If settingsPath is non-empty, only that file is
// read.
func setupViper(settingsPath string) error {
	viper.Reset()
	viper.SetDefault("config_path", "")
	viper.SetDefault("port_pattern", "")
	viper.SetDefault("log_format", "json")
	viper.SetDefault("log_level", "info")

	viper.SetEnvPrefix("MIDIMACRO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if settingsPath != "" {
		viper.SetConfigFile(settingsPath)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read settings file: %w", err)
		}
		return nil
	}

	// Precedence: user settings first, project settings merged on top.
	if userPath, err := UserSettingsPath(); err == nil {
		if _, statErr := os.Stat(userPath); statErr == nil {
			viper.SetConfigFile(userPath)
			if readErr := viper.ReadInConfig(); readErr != nil {
				zap.L().Debug("Failed to read user settings file",
					zap.String("path", userPath), zap.Error(readErr))
			}
		}
	}

	if projectPath, err := ProjectSettingsPath(); err == nil {
		if _, statErr := os.Stat(projectPath); statErr == nil {
			viper.SetConfigFile(projectPath)
			if mergeErr := viper.MergeInConfig(); mergeErr != nil {
				zap.L().Debug("Failed to merge project settings file",
					zap.String("path", projectPath), zap.Error(mergeErr))
			}
		}
	}

	return nil
}

// LoadAppSettings loads process settings with the documented precedence.
// If settingsPath is non-empty, that file is loaded instead.
func LoadAppSettings(settingsPath string) (*AppSettings, error) {
	if err := setupViper(settingsPath); err != nil {
		return nil, err
	}

	settings := &AppSettings{}
	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if err := validate.Struct(settings); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return settings, nil
}
