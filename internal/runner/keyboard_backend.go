package runner

import "errors"

// ErrNoKeyboardBackend is returned when no keyboard synthesis backend
// registered itself. Fatal at startup: key_sequence and enter_text actions
// would have nowhere to go.
var ErrNoKeyboardBackend = errors.New("runner: no keyboard backend available on this platform")

// KeyboardBackendFactory constructs a platform keyboard adapter.
type KeyboardBackendFactory func() (KeyboardAdapter, error)

var keyboardBackend KeyboardBackendFactory

// RegisterKeyboardBackend installs the platform keyboard adapter. Platform
// packages call this from init; the last registration wins.
func RegisterKeyboardBackend(factory KeyboardBackendFactory) {
	keyboardBackend = factory
}

// NewKeyboardAdapter returns the registered platform keyboard adapter.
func NewKeyboardAdapter() (KeyboardAdapter, error) {
	if keyboardBackend == nil {
		return nil, ErrNoKeyboardBackend
	}
	return keyboardBackend()
}
