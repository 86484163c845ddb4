package macro

import "github.com/macrokit/midimacro/internal/match"

// PreconditionKind selects the precondition vocabulary entry. The set is
// open for extension; each instance is immutable once built.
type PreconditionKind string

// Precondition kinds. The names are the version-1 schema spelling.
const (
	// PreconditionControlValue holds when some tracked controller value
	// satisfies the present channel/control/value matchers.
	PreconditionControlValue PreconditionKind = "control_value"

	// PreconditionNoteHeld holds when a note satisfying the present
	// channel/key matchers is currently held down.
	PreconditionNoteHeld PreconditionKind = "note_held"
)

// Precondition is a named gate over runtime state, independent of the
// triggering event. Nil field matchers impose no constraint.
type Precondition struct {
	Kind    PreconditionKind
	Channel *match.NumberMatcher
	Control *match.NumberMatcher
	Value   *match.NumberMatcher
	Key     *match.NumberMatcher
}
