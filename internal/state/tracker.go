// Package state tracks the mutable runtime context macros are gated on:
// the focused window identity and the device values seen so far. Listeners
// write, the evaluation engine reads; every read observes a consistent
// snapshot.
package state

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/zap"

	"github.com/macrokit/midimacro/internal/macro"
	"github.com/macrokit/midimacro/internal/match"
	"github.com/macrokit/midimacro/internal/midi"
)

// Window identifies a focused window by its class and name.
type Window struct {
	Class string
	Name  string
}

// FocusAdapter is the boundary to the OS window tracker. Implementations
// live outside this module's core.
type FocusAdapter interface {
	// FocusedWindow returns the currently focused window identity. ok is
	// false when no window information is available.
	FocusedWindow() (Window, bool)
}

// controlKey packs a (channel, control) pair into one map key.
func controlKey(channel, control int) uint32 {
	return uint32(channel)<<8 | uint32(control)&0xff
}

// noteKey packs a (channel, key) pair into one set member.
func noteKey(channel, key int) uint32 {
	return uint32(channel)<<8 | uint32(key)&0xff
}

// Tracker is the shared runtime state. It implements macro.State. Writers
// (the listening loop) call Observe and SetFocusedWindow; the engine only
// calls the read-side methods.
type Tracker struct {
	focus FocusAdapter

	mu     sync.RWMutex
	window Window

	controls  *xsync.MapOf[uint32, int]
	heldNotes mapset.Set[uint32]
}

// Interface guard.
var _ macro.State = &Tracker{}

// NewTracker creates a tracker. focus may be nil, in which case the window
// snapshot only changes through SetFocusedWindow.
func NewTracker(focus FocusAdapter) *Tracker {
	return &Tracker{
		focus:     focus,
		controls:  xsync.NewMapOf[uint32, int](),
		heldNotes: mapset.NewSet[uint32](),
	}
}

// Observe folds an incoming message into the tracked device state. The
// engine calls this before evaluating the message, so preconditions see
// values up to and including the triggering event.
func (t *Tracker) Observe(msg midi.Message) {
	switch msg.Kind {
	case midi.KindControlChange:
		t.controls.Store(controlKey(msg.Channel, msg.Num), msg.Value)
	case midi.KindNoteOn:
		t.heldNotes.Add(noteKey(msg.Channel, msg.Num))
	case midi.KindNoteOff:
		t.heldNotes.Remove(noteKey(msg.Channel, msg.Num))
	}
}

// SetFocusedWindow replaces the window snapshot. The whole identity is
// swapped under one lock so readers never see a half-updated pair.
func (t *Tracker) SetFocusedWindow(w Window) {
	t.mu.Lock()
	t.window = w
	t.mu.Unlock()
}

// currentWindow returns the focused window, consulting the focus adapter
// when one is present and falling back to the last known snapshot.
func (t *Tracker) currentWindow() Window {
	if t.focus != nil {
		if w, ok := t.focus.FocusedWindow(); ok {
			t.SetFocusedWindow(w)
			return w
		}
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.window
}

// MatchesScope reports whether the focused window satisfies the scope.
// A nil scope is global and always matches.
func (t *Tracker) MatchesScope(scope *macro.Scope) bool {
	if scope == nil {
		return true
	}
	w := t.currentWindow()
	return scope.MatchesWindow(w.Class, w.Name)
}

// MatchesPrecondition reports whether the tracked device state satisfies
// the precondition. Unknown kinds never hold; the resolver is expected to
// have rejected them.
func (t *Tracker) MatchesPrecondition(p *macro.Precondition) bool {
	switch p.Kind {
	case macro.PreconditionControlValue:
		return t.anyControlMatches(p.Channel, p.Control, p.Value)
	case macro.PreconditionNoteHeld:
		return t.anyNoteHeld(p.Channel, p.Key)
	default:
		zap.L().Warn("Unknown precondition kind", zap.String("kind", string(p.Kind)))
		return false
	}
}

// anyControlMatches reports whether some tracked controller value satisfies
// all present matchers.
func (t *Tracker) anyControlMatches(channel, control, value *match.NumberMatcher) bool {
	found := false
	t.controls.Range(func(key uint32, val int) bool {
		ch := int(key >> 8)
		ctl := int(key & 0xff)
		if numberOK(channel, ch) && numberOK(control, ctl) && numberOK(value, val) {
			found = true
			return false
		}
		return true
	})
	return found
}

// anyNoteHeld reports whether some held note satisfies all present matchers.
func (t *Tracker) anyNoteHeld(channel, key *match.NumberMatcher) bool {
	found := false
	t.heldNotes.Each(func(member uint32) bool {
		ch := int(member >> 8)
		note := int(member & 0xff)
		if numberOK(channel, ch) && numberOK(key, note) {
			found = true
			return true // stop iteration
		}
		return false
	})
	return found
}

// numberOK treats a nil matcher as "don't care".
func numberOK(m *match.NumberMatcher, candidate int) bool {
	return m == nil || m.Matches(candidate)
}
