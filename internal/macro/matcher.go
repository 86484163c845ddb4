package macro

import (
	"github.com/macrokit/midimacro/internal/match"
	"github.com/macrokit/midimacro/internal/midi"
)

// EventMatcher is a predicate over an incoming event. State is accepted for
// forward extensibility (matchers conditioned on recent history); the
// current matcher set tests event fields only.
type EventMatcher interface {
	Matches(event Event, state State) bool
}

// fieldMatches treats a nil sub-matcher as "don't care".
func fieldMatches(m *match.NumberMatcher, candidate int) bool {
	return m == nil || m.Matches(candidate)
}

// midiMessage extracts the MIDI message from an event if it has the wanted
// kind. A mismatched event shape never matches.
func midiMessage(event Event, kind midi.Kind) (midi.Message, bool) {
	me, ok := event.(MidiEvent)
	if !ok || me.Message.Kind != kind {
		return midi.Message{}, false
	}
	return me.Message, true
}

// NoteOnMatcher matches note-on messages. Nil fields impose no constraint.
type NoteOnMatcher struct {
	Channel  *match.NumberMatcher
	Key      *match.NumberMatcher
	Velocity *match.NumberMatcher
}

func (m *NoteOnMatcher) Matches(event Event, _ State) bool {
	msg, ok := midiMessage(event, midi.KindNoteOn)
	return ok &&
		fieldMatches(m.Channel, msg.Channel) &&
		fieldMatches(m.Key, msg.Num) &&
		fieldMatches(m.Velocity, msg.Value)
}

// NoteOffMatcher matches note-off messages.
type NoteOffMatcher struct {
	Channel  *match.NumberMatcher
	Key      *match.NumberMatcher
	Velocity *match.NumberMatcher
}

func (m *NoteOffMatcher) Matches(event Event, _ State) bool {
	msg, ok := midiMessage(event, midi.KindNoteOff)
	return ok &&
		fieldMatches(m.Channel, msg.Channel) &&
		fieldMatches(m.Key, msg.Num) &&
		fieldMatches(m.Velocity, msg.Value)
}

// ControlChangeMatcher matches control-change messages.
type ControlChangeMatcher struct {
	Channel *match.NumberMatcher
	Control *match.NumberMatcher
	Value   *match.NumberMatcher
}

func (m *ControlChangeMatcher) Matches(event Event, _ State) bool {
	msg, ok := midiMessage(event, midi.KindControlChange)
	return ok &&
		fieldMatches(m.Channel, msg.Channel) &&
		fieldMatches(m.Control, msg.Num) &&
		fieldMatches(m.Value, msg.Value)
}

// ProgramChangeMatcher matches program-change messages.
type ProgramChangeMatcher struct {
	Channel *match.NumberMatcher
	Program *match.NumberMatcher
}

func (m *ProgramChangeMatcher) Matches(event Event, _ State) bool {
	msg, ok := midiMessage(event, midi.KindProgramChange)
	return ok &&
		fieldMatches(m.Channel, msg.Channel) &&
		fieldMatches(m.Program, msg.Num)
}

// PitchBendMatcher matches pitch-bend messages.
type PitchBendMatcher struct {
	Channel *match.NumberMatcher
	Value   *match.NumberMatcher
}

func (m *PitchBendMatcher) Matches(event Event, _ State) bool {
	msg, ok := midiMessage(event, midi.KindPitchBend)
	return ok &&
		fieldMatches(m.Channel, msg.Channel) &&
		fieldMatches(m.Value, msg.Value)
}

// AftertouchMatcher matches polyphonic aftertouch messages.
type AftertouchMatcher struct {
	Channel  *match.NumberMatcher
	Key      *match.NumberMatcher
	Pressure *match.NumberMatcher
}

func (m *AftertouchMatcher) Matches(event Event, _ State) bool {
	msg, ok := midiMessage(event, midi.KindAftertouch)
	return ok &&
		fieldMatches(m.Channel, msg.Channel) &&
		fieldMatches(m.Key, msg.Num) &&
		fieldMatches(m.Pressure, msg.Value)
}

// Interface guards.
var (
	_ EventMatcher = &NoteOnMatcher{}
	_ EventMatcher = &NoteOffMatcher{}
	_ EventMatcher = &ControlChangeMatcher{}
	_ EventMatcher = &ProgramChangeMatcher{}
	_ EventMatcher = &PitchBendMatcher{}
	_ EventMatcher = &AftertouchMatcher{}
)
