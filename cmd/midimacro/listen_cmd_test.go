package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macrokit/midimacro/internal/midi"
	"github.com/macrokit/midimacro/internal/state"
)

type fakeMidiAdapter struct{}

func (fakeMidiAdapter) ListPorts() ([]string, error)               { return nil, nil }
func (fakeMidiAdapter) Listen(string) (<-chan midi.Message, error) { return nil, nil }
func (fakeMidiAdapter) Stop()                                      {}

// TestRunListen_MissingBackendsAreFatal tests that absent adapter backends
// abort startup before the evaluation loop.
func TestRunListen_MissingBackendsAreFatal(t *testing.T) {
	path := writeTestConfig(t, testConfig)

	// No MIDI backend registered: fails at adapter construction.
	err := runListen(path, "", "", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, midi.ErrNoBackend)

	// With a MIDI backend but no focus backend, startup still fails
	// before listening.
	midi.RegisterBackend(func() (midi.Adapter, error) { return fakeMidiAdapter{}, nil })
	defer midi.RegisterBackend(nil)

	err = runListen(path, "", "", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, state.ErrNoFocusBackend)
	assert.Contains(t, err.Error(), "focus backend unavailable")
}
