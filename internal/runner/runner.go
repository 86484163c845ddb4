// Package runner executes resolved actions against the external adapters:
// keyboard synthesis and process spawning. Execution is best-effort; a
// failing action is logged and never aborts the engine or sibling actions.
package runner

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/macrokit/midimacro/internal/macro"
)

// delayBetweenKeys is the fixed inter-keystroke delay handed to the
// keyboard adapter and used between repeats of the same action.
const delayBetweenKeys = 100 * time.Microsecond

// KeyboardAdapter is the boundary to keyboard synthesis. Implementations
// live outside this module's core.
type KeyboardAdapter interface {
	// SendKeySequence emulates pressing a key combination in X keysym
	// notation, e.g. "ctrl+shift+t", with the given delay between keys.
	SendKeySequence(sequence string, delay time.Duration) error

	// SendText types the literal text with the given delay between keys.
	SendText(text string, delay time.Duration) error
}

// CommandRunner is an interface for spawning external processes, allowing
// for testing with mocks.
type CommandRunner interface {
	Run(command string, args []string, env []macro.EnvVar) error
}

// execCommandRunner wraps os/exec to implement CommandRunner.
type execCommandRunner struct{}

func (execCommandRunner) Run(command string, args []string, env []macro.EnvVar) error {
	// #nosec G204 -- the command comes from the user's own configuration
	cmd := exec.Command(command, args...)

	if len(env) > 0 {
		cmd.Env = os.Environ()
		for _, e := range env {
			cmd.Env = append(cmd.Env, e.Key+"="+e.Value)
		}
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("command %q exited with status %d", command, exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run command %q: %w", command, err)
	}
	return nil
}

// Interface guard for execCommandRunner
var _ CommandRunner = execCommandRunner{}

// ActionRunner executes macro actions. One Run call handles one action
// value; dispatch is an exhaustive switch over the action variants.
type ActionRunner struct {
	keyboard KeyboardAdapter
	commands CommandRunner
	clock    clockwork.Clock
}

// New creates an action runner with a real clock and a real process
// spawner.
func New(keyboard KeyboardAdapter) *ActionRunner {
	return NewWithClockAndRunner(keyboard, clockwork.NewRealClock(), execCommandRunner{})
}

// NewWithClockAndRunner creates an action runner with a custom clock and
// command runner. This is useful for testing with a fake clock and mocked
// command execution.
func NewWithClockAndRunner(keyboard KeyboardAdapter, clock clockwork.Clock, commands CommandRunner) *ActionRunner {
	return &ActionRunner{
		keyboard: keyboard,
		commands: commands,
		clock:    clock,
	}
}

// Run executes one action. Failures are logged, never returned: action
// execution has no error channel back into matching.
func (r *ActionRunner) Run(action macro.Action) {
	switch a := action.(type) {
	case macro.KeySequence:
		r.repeat(a.Count, func() error {
			return r.keyboard.SendKeySequence(a.Sequence, delayBetweenKeys)
		}, "key_sequence", a.Sequence)

	case macro.EnterText:
		r.repeat(a.Count, func() error {
			return r.keyboard.SendText(a.Text, delayBetweenKeys)
		}, "enter_text", a.Text)

	case macro.Shell:
		if err := r.commands.Run(a.Command, a.Args, a.Env); err != nil {
			zap.L().Error("Shell action failed",
				zap.String("command", a.Command),
				zap.Error(err))
		}

	case macro.Combination:
		// Children run strictly in order; a failing child was already
		// logged by its own dispatch and the rest still run.
		for _, child := range a.Actions {
			r.Run(child)
		}

	default:
		zap.L().Error("Unknown action variant", zap.Any("action", action))
	}
}

// repeat invokes send count times with the inter-keystroke delay between
// repeats. A count of zero sends nothing.
func (r *ActionRunner) repeat(count int, send func() error, kind, payload string) {
	for i := 0; i < count; i++ {
		if i > 0 {
			r.clock.Sleep(delayBetweenKeys)
		}
		if err := send(); err != nil {
			zap.L().Error("Keyboard action failed",
				zap.String("kind", kind),
				zap.String("payload", payload),
				zap.Int("repeat", i),
				zap.Error(err))
			return
		}
	}
}
