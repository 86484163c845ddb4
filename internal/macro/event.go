// Package macro implements the rule vocabulary: events, event matchers,
// scopes, preconditions, actions, and the immutable Macro record tying them
// together. Evaluation is pure; nothing in this package performs I/O.
package macro

import "github.com/macrokit/midimacro/internal/midi"

// Event is one occurrence the engine can match macros against. The variant
// set is closed; MIDI messages are the only producer today.
type Event interface {
	isEvent()
}

// MidiEvent wraps an incoming MIDI message.
type MidiEvent struct {
	Message midi.Message
}

func (MidiEvent) isEvent() {}

// State is the runtime context macros are gated on. It is implemented by
// the state tracker and consumed here; evaluation only ever reads from it.
type State interface {
	// MatchesScope reports whether the currently focused window satisfies
	// the scope. A nil scope matches unconditionally.
	MatchesScope(scope *Scope) bool

	// MatchesPrecondition reports whether the tracked device state
	// satisfies the precondition.
	MatchesPrecondition(p *Precondition) bool
}
