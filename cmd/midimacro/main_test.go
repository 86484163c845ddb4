package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macrokit/midimacro/internal/config"
)

const testConfig = `version: 1
device: "Test Pad"
macros:
  - name: play
    matches:
      - type: note_on
        data:
          key: 60
    actions:
      - type: key_sequence
        data: "ctrl+p"
`

// TestResolveLogFormat tests log format resolution logic
func TestResolveLogFormat(t *testing.T) {
	// Test: prettyLog flag wins
	settings := &config.AppSettings{LogFormat: "json"}
	assert.True(t, resolveLogFormat(settings, true))

	// Test: settings log_format = "pretty" when flag is false
	settings = &config.AppSettings{LogFormat: "pretty"}
	assert.True(t, resolveLogFormat(settings, false))

	// Test: settings log_format != "pretty" and flag is false
	settings = &config.AppSettings{LogFormat: "json"}
	assert.False(t, resolveLogFormat(settings, false))
}

// TestResolvePortPattern tests port pattern precedence
func TestResolvePortPattern(t *testing.T) {
	settings := &config.AppSettings{PortPattern: "Settings Pad"}
	cfg := &config.Config{Settings: config.Settings{DevicePattern: "Config Pad"}}

	// Flag wins over everything
	assert.Equal(t, "Flag Pad", resolvePortPattern("Flag Pad", settings, cfg))

	// App setting wins over config
	assert.Equal(t, "Settings Pad", resolvePortPattern("", settings, cfg))

	// Config device is the fallback
	settings = &config.AppSettings{}
	assert.Equal(t, "Config Pad", resolvePortPattern("", settings, cfg))
}

// TestLoadMacroConfig tests macro configuration loading
func TestLoadMacroConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "macros.yaml")
	// #nosec G306 -- test file permissions are acceptable for temporary test files
	err := os.WriteFile(configPath, []byte(testConfig), 0644)
	require.NoError(t, err)

	// Explicit flag path
	cfg, err := loadMacroConfig(configPath, &config.AppSettings{})
	require.NoError(t, err)
	require.Len(t, cfg.Macros, 1)
	assert.Equal(t, "play", cfg.Macros[0].Name())
	assert.Equal(t, "Test Pad", cfg.Settings.DevicePattern)

	// Fall back to settings config_path when the flag is empty
	cfg, err = loadMacroConfig("", &config.AppSettings{ConfigPath: configPath})
	require.NoError(t, err)
	assert.Len(t, cfg.Macros, 1)

	// No path anywhere is an error
	_, err = loadMacroConfig("", &config.AppSettings{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no configuration file given")

	// Non-existent file is an error
	_, err = loadMacroConfig("/nonexistent/macros.yaml", &config.AppSettings{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
