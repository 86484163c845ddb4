package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves the test into an empty directory so no stray
// midimacro.yaml leaks into settings precedence.
func chdirTemp(t *testing.T) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(originalDir) })
	require.NoError(t, os.Chdir(t.TempDir()))
}

func TestLoadAppSettings_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("HOME", t.TempDir())

	settings, err := LoadAppSettings("")
	require.NoError(t, err)

	assert.Equal(t, "json", settings.LogFormat)
	assert.Equal(t, "info", settings.LogLevel)
	assert.Empty(t, settings.ConfigPath)
	assert.Empty(t, settings.PortPattern)
}

func TestLoadAppSettings_FromFile(t *testing.T) {
	chdirTemp(t)
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "log_format: pretty\nlog_level: debug\nconfig_path: /etc/midimacro/macros.yaml\nport_pattern: LPD8\n"
	// #nosec G306 -- test file permissions are acceptable for temporary test files
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings, err := LoadAppSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "pretty", settings.LogFormat)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, "/etc/midimacro/macros.yaml", settings.ConfigPath)
	assert.Equal(t, "LPD8", settings.PortPattern)
}

func TestLoadAppSettings_EnvOverride(t *testing.T) {
	chdirTemp(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MIDIMACRO_LOG_FORMAT", "pretty")

	settings, err := LoadAppSettings("")
	require.NoError(t, err)
	assert.Equal(t, "pretty", settings.LogFormat)
}

func TestLoadAppSettings_InvalidValuesRejected(t *testing.T) {
	chdirTemp(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MIDIMACRO_LOG_LEVEL", "chatty")

	_, err := LoadAppSettings("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings")
}

func TestLoadAppSettings_MissingExplicitFile(t *testing.T) {
	chdirTemp(t)

	_, err := LoadAppSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
