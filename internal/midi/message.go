// Package midi defines the device message model and the adapter boundary to
// physical MIDI backends. The engine only ever sees immutable Message values
// coming off a channel; port enumeration and OS-level listening live behind
// the Adapter interface.
package midi

import "fmt"

// Kind classifies a MIDI message. The names double as the event matcher
// type vocabulary in configuration files.
type Kind string

// Message kinds.
const (
	KindNoteOn        Kind = "note_on"
	KindNoteOff       Kind = "note_off"
	KindControlChange Kind = "control_change"
	KindProgramChange Kind = "program_change"
	KindPitchBend     Kind = "pitch_bend_change"
	KindAftertouch    Kind = "aftertouch"

	// KindOther covers raw messages the listener could not classify.
	// No event matcher exists for it; such messages never fire a macro.
	KindOther Kind = "other"
)

// Message is one immutable MIDI message. Num and Value carry the two data
// bytes; their meaning depends on Kind:
//
//	note_on/note_off:   Num = key, Value = velocity
//	control_change:     Num = controller number, Value = controller value
//	program_change:     Num = program number, Value unused
//	pitch_bend_change:  Num unused, Value = 14-bit bend amount
//	aftertouch:         Num = key, Value = pressure
type Message struct {
	Kind    Kind
	Channel int
	Num     int
	Value   int
}

// NoteOn constructs a note-on message.
func NoteOn(channel, key, velocity int) Message {
	return Message{Kind: KindNoteOn, Channel: channel, Num: key, Value: velocity}
}

// NoteOff constructs a note-off message.
func NoteOff(channel, key, velocity int) Message {
	return Message{Kind: KindNoteOff, Channel: channel, Num: key, Value: velocity}
}

// ControlChange constructs a control-change message.
func ControlChange(channel, control, value int) Message {
	return Message{Kind: KindControlChange, Channel: channel, Num: control, Value: value}
}

// ProgramChange constructs a program-change message.
func ProgramChange(channel, program int) Message {
	return Message{Kind: KindProgramChange, Channel: channel, Num: program}
}

// PitchBend constructs a pitch-bend message.
func PitchBend(channel, value int) Message {
	return Message{Kind: KindPitchBend, Channel: channel, Value: value}
}

// Aftertouch constructs a polyphonic aftertouch message.
func Aftertouch(channel, key, pressure int) Message {
	return Message{Kind: KindAftertouch, Channel: channel, Num: key, Value: pressure}
}

// String renders a message for logs.
func (m Message) String() string {
	return fmt.Sprintf("%s ch=%d num=%d val=%d", m.Kind, m.Channel, m.Num, m.Value)
}
