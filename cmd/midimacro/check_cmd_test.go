package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mmTesting "github.com/macrokit/midimacro/internal/testing"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "macros.yaml")
	// #nosec G306 -- test file permissions are acceptable for temporary test files
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestCheckCmd tests config validation via the check subcommand
func TestCheckCmd(t *testing.T) {
	path := writeTestConfig(t, testConfig)

	captured, err := mmTesting.NewCapturedOutput()
	require.NoError(t, err)

	cmd := newCheckCmd()
	cmd.SetArgs([]string{path})
	runErr := cmd.Execute()

	stdout, _, err := captured.Stop()
	require.NoError(t, err)
	require.NoError(t, runErr)
	assert.Contains(t, stdout, "Configuration OK: 1 macro(s)")
}

// TestCheckCmd_Invalid tests that a broken config is reported as an error
func TestCheckCmd_Invalid(t *testing.T) {
	path := writeTestConfig(t, "version: 1\nmacros: not-a-list\n")

	cmd := newCheckCmd()
	cmd.SetArgs([]string{path})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration invalid")
}

// TestMacrosCmd tests macro listing output
func TestMacrosCmd(t *testing.T) {
	path := writeTestConfig(t, testConfig)

	captured, err := mmTesting.NewCapturedOutput()
	require.NoError(t, err)

	cmd := newMacrosCmd()
	cmd.SetArgs([]string{path})
	runErr := cmd.Execute()

	stdout, _, err := captured.Stop()
	require.NoError(t, err)
	require.NoError(t, runErr)
	assert.Contains(t, stdout, "play")
}
