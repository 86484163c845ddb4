// Package testing provides utilities for testing midimacro.
package testing

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/macrokit/midimacro/internal/core"
)

type CapturedOutput struct {
	OriginalStdout *os.File
	OriginalStderr *os.File
	CapturedStdout *os.File // Read end
	CapturedStderr *os.File // Read end
	stdoutW        *os.File // Write end (needed to close for ReadAll to complete)
	stderrW        *os.File // Write end (needed to close for ReadAll to complete)
}

// NewCapturedOutput captures both stdout and stderr output and returns them separately.
// Useful for asserting on CLI command output that writes directly to os.Stdout.
func NewCapturedOutput() (*CapturedOutput, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout pipe: %w", err)
	}

	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		core.LogDeferredError(stdoutR.Close)
		core.LogDeferredError(stdoutW.Close)
		return nil, fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	os.Stdout = stdoutW
	os.Stderr = stderrW

	return &CapturedOutput{
		OriginalStdout: originalStdout,
		OriginalStderr: originalStderr,
		CapturedStdout: stdoutR,
		CapturedStderr: stderrR,
		stdoutW:        stdoutW,
		stderrW:        stderrW,
	}, nil
}

// Stop stops capturing output and returns the captured stdout and stderr.
func (capturedOutput *CapturedOutput) Stop() (string, string, error) {
	// Restore original streams first so any goroutines writing will write to original streams
	os.Stdout = capturedOutput.OriginalStdout
	os.Stderr = capturedOutput.OriginalStderr

	// Close write ends to signal EOF to ReadAll
	core.LogDeferredError(capturedOutput.stdoutW.Close)
	core.LogDeferredError(capturedOutput.stderrW.Close)

	// Small delay to let any pending goroutine writes complete
	time.Sleep(10 * time.Millisecond)

	capturedStdout, err := io.ReadAll(capturedOutput.CapturedStdout)
	if err != nil {
		core.LogDeferredError(capturedOutput.CapturedStdout.Close)
		core.LogDeferredError(capturedOutput.CapturedStderr.Close)
		return "", "", fmt.Errorf("failed to read captured stdout: %w", err)
	}

	capturedStderr, err := io.ReadAll(capturedOutput.CapturedStderr)
	if err != nil {
		core.LogDeferredError(capturedOutput.CapturedStdout.Close)
		core.LogDeferredError(capturedOutput.CapturedStderr.Close)
		return "", "", fmt.Errorf("failed to read captured stderr: %w", err)
	}

	core.LogDeferredError(capturedOutput.CapturedStdout.Close)
	core.LogDeferredError(capturedOutput.CapturedStderr.Close)

	return string(capturedStdout), string(capturedStderr), nil
}
