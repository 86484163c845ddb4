package state

import "errors"

// ErrNoFocusBackend is returned when no window tracker registered itself.
// This is fatal at startup: window scopes would silently never match.
var ErrNoFocusBackend = errors.New("state: no focus backend available on this platform")

// FocusBackendFactory constructs a platform focus adapter.
type FocusBackendFactory func() (FocusAdapter, error)

var focusBackend FocusBackendFactory

// RegisterFocusBackend installs the platform focus tracker. Platform
// packages call this from init; the last registration wins.
func RegisterFocusBackend(factory FocusBackendFactory) {
	focusBackend = factory
}

// NewFocusAdapter returns the registered platform focus adapter.
func NewFocusAdapter() (FocusAdapter, error) {
	if focusBackend == nil {
		return nil, ErrNoFocusBackend
	}
	return focusBackend()
}
