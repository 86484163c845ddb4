package midi

import "errors"

// ErrNoBackend is returned when no MIDI backend registered itself. This is
// fatal at startup: without a device there is nothing to listen to.
var ErrNoBackend = errors.New("midi: no backend available on this platform")

// BackendFactory constructs a platform adapter.
type BackendFactory func() (Adapter, error)

var backend BackendFactory

// RegisterBackend installs the platform backend. Platform packages call
// this from init; the last registration wins.
func RegisterBackend(factory BackendFactory) {
	backend = factory
}

// NewAdapter returns the registered platform adapter.
func NewAdapter() (Adapter, error) {
	if backend == nil {
		return nil, ErrNoBackend
	}
	return backend()
}
