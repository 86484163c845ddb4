package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// TestInit_PrettyLog tests logger initialization with pretty logging
func TestInit_PrettyLog(t *testing.T) {
	err := Init(true, "")
	require.NoError(t, err)

	logger := zap.L()
	assert.NotNil(t, logger)

	logger.Info("Test message")
}

func TestInit_WithLevel(t *testing.T) {
	require.NoError(t, Init(false, "debug"))
	assert.True(t, zap.L().Core().Enabled(zap.DebugLevel))

	require.NoError(t, Init(false, "error"))
	assert.False(t, zap.L().Core().Enabled(zap.InfoLevel))
}

func TestInit_InvalidLevel(t *testing.T) {
	err := Init(false, "chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

// TestLogDeferredError_WithError tests LogDeferredError when the function returns an error
func TestLogDeferredError_WithError(t *testing.T) {
	observed, logs := observer.New(zap.ErrorLevel)
	restore := zap.ReplaceGlobals(zap.New(observed))
	defer restore()

	LogDeferredError(func() error {
		return errors.New("close failed")
	})

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Deferred call failed", logs.All()[0].Message)
}

// TestLogDeferredError_NoError tests LogDeferredError when the function succeeds
func TestLogDeferredError_NoError(t *testing.T) {
	observed, logs := observer.New(zap.ErrorLevel)
	restore := zap.ReplaceGlobals(zap.New(observed))
	defer restore()

	LogDeferredError(func() error { return nil })

	assert.Equal(t, 0, logs.Len())
}

func TestLogMacroDispatch(t *testing.T) {
	observed, logs := observer.New(zap.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(observed))
	defer restore()

	LogMacroDispatch("open terminal", 2, nil)
	LogMacroDispatch("", 1, errors.New("boom"))

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "Macro dispatched", logs.All()[0].Message)
	assert.Equal(t, "Macro dispatch failed", logs.All()[1].Message)
	assert.Equal(t, "(unnamed)", logs.All()[1].ContextMap()["macro"])
}

func TestJoinMapKeys(t *testing.T) {
	joined := JoinMapKeys(map[string]struct{}{"b": {}, "a": {}})
	assert.Equal(t, "a, b", joined)
}
