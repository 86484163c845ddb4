package runner

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macrokit/midimacro/internal/macro"
)

// fakeKeyboard records keyboard adapter calls.
type fakeKeyboard struct {
	sequences []string
	texts     []string
	fail      bool
}

func (f *fakeKeyboard) SendKeySequence(sequence string, _ time.Duration) error {
	if f.fail {
		return errors.New("keyboard unavailable")
	}
	f.sequences = append(f.sequences, sequence)
	return nil
}

func (f *fakeKeyboard) SendText(text string, _ time.Duration) error {
	if f.fail {
		return errors.New("keyboard unavailable")
	}
	f.texts = append(f.texts, text)
	return nil
}

// fakeCommands records command invocations and can simulate failure.
type fakeCommands struct {
	invocations []string
	failFor     string
}

func (f *fakeCommands) Run(command string, _ []string, _ []macro.EnvVar) error {
	f.invocations = append(f.invocations, command)
	if command == f.failFor {
		return errors.New("exit status 1")
	}
	return nil
}

func newTestRunner() (*ActionRunner, *fakeKeyboard, *fakeCommands) {
	kb := &fakeKeyboard{}
	cmds := &fakeCommands{}
	r := NewWithClockAndRunner(kb, clockwork.NewFakeClock(), cmds)
	return r, kb, cmds
}

func TestRun_KeySequenceRepeatsCountTimes(t *testing.T) {
	kb := &fakeKeyboard{}
	cmds := &fakeCommands{}
	clock := clockwork.NewFakeClock()
	r := NewWithClockAndRunner(kb, clock, cmds)

	done := make(chan struct{})
	go func() {
		r.Run(macro.KeySequence{Sequence: "ctrl+shift+t", Count: 3})
		close(done)
	}()

	// Two inter-repeat delays for three sends.
	for i := 0; i < 2; i++ {
		require.NoError(t, clock.BlockUntilContext(t.Context(), 1))
		clock.Advance(delayBetweenKeys)
	}
	<-done

	assert.Equal(t, []string{"ctrl+shift+t", "ctrl+shift+t", "ctrl+shift+t"}, kb.sequences)
}

func TestRun_CountZeroSendsNothing(t *testing.T) {
	r, kb, _ := newTestRunner()

	r.Run(macro.KeySequence{Sequence: "ctrl+c", Count: 0})
	r.Run(macro.EnterText{Text: "hello", Count: 0})

	assert.Empty(t, kb.sequences)
	assert.Empty(t, kb.texts)
}

func TestRun_EnterText(t *testing.T) {
	r, kb, _ := newTestRunner()

	r.Run(macro.EnterText{Text: "hello", Count: 1})

	assert.Equal(t, []string{"hello"}, kb.texts)
}

func TestRun_Shell(t *testing.T) {
	r, _, cmds := newTestRunner()

	r.Run(macro.Shell{Command: "/usr/bin/notify-send", Args: []string{"hi"}})

	assert.Equal(t, []string{"/usr/bin/notify-send"}, cmds.invocations)
}

func TestRun_CombinationRunsInOrder(t *testing.T) {
	r, kb, cmds := newTestRunner()

	r.Run(macro.Combination{Actions: []macro.Action{
		macro.EnterText{Text: "first", Count: 1},
		macro.Shell{Command: "/bin/true"},
		macro.EnterText{Text: "second", Count: 1},
	}})

	assert.Equal(t, []string{"first", "second"}, kb.texts)
	assert.Equal(t, []string{"/bin/true"}, cmds.invocations)
}

func TestRun_CombinationContinuesPastFailingChild(t *testing.T) {
	r, kb, cmds := newTestRunner()
	cmds.failFor = "/bin/false"

	r.Run(macro.Combination{Actions: []macro.Action{
		macro.Shell{Command: "/bin/false"},
		macro.EnterText{Text: "x", Count: 1},
	}})

	// The failing shell command was attempted and the sibling still ran.
	assert.Equal(t, []string{"/bin/false"}, cmds.invocations)
	assert.Equal(t, []string{"x"}, kb.texts)
}

func TestRun_KeyboardFailureDoesNotPanic(t *testing.T) {
	kb := &fakeKeyboard{fail: true}
	r := NewWithClockAndRunner(kb, clockwork.NewFakeClock(), &fakeCommands{})

	r.Run(macro.KeySequence{Sequence: "ctrl+c", Count: 1})
	assert.Empty(t, kb.sequences)
}
