// Package engine implements rule selection and the event loop: one incoming
// message at a time, first-match-wins over the ordered macro list, dispatch
// of the winning actions, and recognition of the stop matcher.
package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/macrokit/midimacro/internal/core"
	"github.com/macrokit/midimacro/internal/macro"
	"github.com/macrokit/midimacro/internal/midi"
)

// Dispatcher executes one action value. Satisfied by runner.ActionRunner.
type Dispatcher interface {
	Run(action macro.Action)
}

// StateTracker is the engine's view of the runtime state: the read side
// macros are gated on, plus the write side the engine feeds incoming
// messages into.
type StateTracker interface {
	macro.State
	Observe(msg midi.Message)
}

// Engine evaluates incoming events against an ordered macro list. The
// macro list order is declaration order from the resolved configuration;
// that equality is what makes first-match-wins predictable for the user.
type Engine struct {
	macros     []*macro.Macro
	state      StateTracker
	dispatcher Dispatcher
	stop       macro.EventMatcher
}

// New creates an engine. stop may be nil, in which case no event ever
// stops the loop from the device side.
func New(macros []*macro.Macro, stop macro.EventMatcher, state StateTracker, dispatcher Dispatcher) *Engine {
	return &Engine{
		macros:     macros,
		state:      state,
		dispatcher: dispatcher,
		stop:       stop,
	}
}

// Select returns the first macro whose evaluation succeeds for the event,
// together with its action list. It performs no dispatch and no state
// mutation, so it is safe to call repeatedly against one state snapshot.
func (e *Engine) Select(event macro.Event) (*macro.Macro, []macro.Action) {
	for _, m := range e.macros {
		if actions := m.Evaluate(event, e.state); actions != nil {
			return m, actions
		}
	}
	return nil, nil
}

// Handle processes one incoming message to completion: fold it into the
// tracked state, select at most one macro, and dispatch its actions. It
// returns true when the message matched the stop matcher.
func (e *Engine) Handle(msg midi.Message) bool {
	e.state.Observe(msg)

	event := macro.MidiEvent{Message: msg}

	if m, actions := e.Select(event); m != nil {
		core.LogMacroDispatch(m.Name(), len(actions), nil)
		for _, action := range actions {
			e.dispatcher.Run(action)
		}
	} else {
		// Silence is the expected common case.
		zap.L().Debug("No macro matched", zap.Stringer("message", msg))
	}

	return e.stop != nil && e.stop.Matches(event, e.state)
}

// Run consumes the ordered message channel until the stop matcher fires,
// the channel closes, or the context is canceled. The stopListener
// callback tears down the upstream device listener; in-flight action
// execution always finishes first because Handle is synchronous.
func (e *Engine) Run(ctx context.Context, messages <-chan midi.Message, stopListener func()) error {
	zap.L().Info("Engine running", zap.Int("macros", len(e.macros)))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				zap.L().Info("Message channel closed, engine exiting")
				return nil
			}
			if e.Handle(msg) {
				zap.L().Info("Stop event matched, shutting down", zap.Stringer("message", msg))
				if stopListener != nil {
					stopListener()
				}
				return nil
			}
		}
	}
}
