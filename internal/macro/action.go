package macro

// Action is one side-effecting operation a macro dispatches. Actions are
// pure data; execution belongs to the action runner, which maps each
// variant to exactly one adapter call.
type Action interface {
	isAction()
}

// KeySequence sends a key combination, in X keysym notation such as
// "ctrl+shift+t", Count times. A Count of zero sends nothing.
type KeySequence struct {
	Sequence string
	Count    int
}

func (KeySequence) isAction() {}

// EnterText types the literal text as keyboard input, Count times.
type EnterText struct {
	Text  string
	Count int
}

func (EnterText) isAction() {}

// EnvVar is one environment entry for a Shell action. A slice of these
// preserves the declaration order from the configuration.
type EnvVar struct {
	Key   string
	Value string
}

// Shell runs an external program with the given arguments and extra
// environment.
type Shell struct {
	Command string
	Args    []string
	Env     []EnvVar
}

func (Shell) isAction() {}

// Combination runs its children strictly in order. A failing child does not
// abort the remainder.
type Combination struct {
	Actions []Action
}

func (Combination) isAction() {}
