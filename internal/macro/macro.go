package macro

import "fmt"

// Macro is one immutable rule: trigger matchers, gating conditions, and the
// actions to dispatch when it fires. Construct via Builder.
type Macro struct {
	name          string
	matchEvents   []EventMatcher
	preconditions []*Precondition
	scope         *Scope
	actions       []Action
}

// Name returns the macro's configured name, or "" when none was given.
func (m *Macro) Name() string { return m.name }

// Actions returns the macro's action list. Callers must not mutate it.
func (m *Macro) Actions() []Action { return m.actions }

// MatcherCount returns how many event matchers the macro carries.
func (m *Macro) MatcherCount() int { return len(m.matchEvents) }

// PreconditionCount returns how many preconditions gate the macro.
func (m *Macro) PreconditionCount() int { return len(m.preconditions) }

// Scoped reports whether the macro is restricted to a window scope.
func (m *Macro) Scoped() bool { return m.scope != nil }

// Evaluate checks the macro against an incoming event and the current
// state. It returns the macro's action list when the macro fires, nil
// otherwise; a firing macro with zero actions returns an empty non-nil
// list. Checks run cheapest-computed first: scope, then preconditions,
// then event matchers.
func (m *Macro) Evaluate(event Event, state State) []Action {
	if !state.MatchesScope(m.scope) {
		return nil
	}

	for _, p := range m.preconditions {
		if !state.MatchesPrecondition(p) {
			return nil
		}
	}

	if !m.matchesEvent(event, state) {
		return nil
	}

	return m.actions
}

// matchesEvent reports whether any of the macro's event matchers accepts
// the event. Within one matcher every present field must match; across the
// list any single hit suffices.
func (m *Macro) matchesEvent(event Event, state State) bool {
	for _, matcher := range m.matchEvents {
		if matcher.Matches(event, state) {
			return true
		}
	}
	return false
}

// Builder stages a macro's fields before freezing them into an immutable
// Macro. A builder must not be reused after Build.
type Builder struct {
	name          string
	matchEvents   []EventMatcher
	preconditions []*Precondition
	scope         *Scope
	actions       []Action
	built         bool
}

// NewBuilder creates an empty macro builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// FromEventMatcher creates a builder seeded with one event matcher.
func FromEventMatcher(matcher EventMatcher) *Builder {
	return &Builder{matchEvents: []EventMatcher{matcher}}
}

// SetName sets the macro's name.
func (b *Builder) SetName(name string) *Builder {
	b.name = name
	return b
}

// SetEventMatchers replaces the staged event matcher list.
func (b *Builder) SetEventMatchers(matchers []EventMatcher) *Builder {
	b.matchEvents = matchers
	return b
}

// AddEventMatcher appends one event matcher.
func (b *Builder) AddEventMatcher(matcher EventMatcher) *Builder {
	b.matchEvents = append(b.matchEvents, matcher)
	return b
}

// SetPreconditions replaces the staged precondition list.
func (b *Builder) SetPreconditions(preconditions []*Precondition) *Builder {
	b.preconditions = preconditions
	return b
}

// AddPrecondition appends one precondition.
func (b *Builder) AddPrecondition(p *Precondition) *Builder {
	b.preconditions = append(b.preconditions, p)
	return b
}

// SetScope sets the macro's scope.
func (b *Builder) SetScope(scope *Scope) *Builder {
	b.scope = scope
	return b
}

// SetActions replaces the staged action list.
func (b *Builder) SetActions(actions []Action) *Builder {
	b.actions = actions
	return b
}

// AddAction appends one action.
func (b *Builder) AddAction(action Action) *Builder {
	b.actions = append(b.actions, action)
	return b
}

// Build freezes the staged fields into a Macro and consumes the builder.
// A macro without event matchers can never fire, so that is a construction
// error rather than a silently dead rule.
func (b *Builder) Build() (*Macro, error) {
	if b.built {
		return nil, fmt.Errorf("macro builder already consumed")
	}
	if len(b.matchEvents) == 0 {
		return nil, fmt.Errorf("macro %q has no event matchers", b.name)
	}
	b.built = true

	// Never leave actions nil: Evaluate signals "no match" with a nil
	// return, so a matching macro with zero actions must still hand back a
	// non-nil (empty) list.
	if b.actions == nil {
		b.actions = []Action{}
	}

	m := &Macro{
		name:          b.name,
		matchEvents:   b.matchEvents,
		preconditions: b.preconditions,
		scope:         b.scope,
		actions:       b.actions,
	}

	// Drop the builder's references so later misuse cannot alias the
	// frozen macro's contents.
	b.matchEvents = nil
	b.preconditions = nil
	b.actions = nil
	b.scope = nil

	return m, nil
}
