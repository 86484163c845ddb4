package version1

import (
	"github.com/macrokit/midimacro/internal/config"
	"github.com/macrokit/midimacro/internal/core"
	"github.com/macrokit/midimacro/internal/document"
	"github.com/macrokit/midimacro/internal/macro"
	"github.com/macrokit/midimacro/internal/match"
	"github.com/macrokit/midimacro/internal/midi"
)

var eventMatcherTypes = []string{
	string(midi.KindNoteOn),
	string(midi.KindNoteOff),
	string(midi.KindControlChange),
	string(midi.KindProgramChange),
	string(midi.KindPitchBend),
	string(midi.KindAftertouch),
}

// resolveEventMatcher resolves a {type, data} section into an event
// matcher. Absent data means every field is "don't care".
func resolveEventMatcher(v document.Value, path string) (macro.EventMatcher, error) {
	typ, data, err := typedSection(v, path)
	if err != nil {
		return nil, err
	}

	if !data.IsNull() {
		if _, ok := data.AsMap(); !ok {
			return nil, config.InvalidConfigf("%s.data: expected a map, got %s", path, data.Kind())
		}
	}

	dataPath := path + ".data"

	switch midi.Kind(typ) {
	case midi.KindNoteOn:
		channel, err := resolveNumberField(data, "channel", dataPath)
		if err != nil {
			return nil, err
		}
		key, err := resolveNumberField(data, "key", dataPath)
		if err != nil {
			return nil, err
		}
		velocity, err := resolveNumberField(data, "velocity", dataPath)
		if err != nil {
			return nil, err
		}
		return &macro.NoteOnMatcher{Channel: channel, Key: key, Velocity: velocity}, nil

	case midi.KindNoteOff:
		channel, err := resolveNumberField(data, "channel", dataPath)
		if err != nil {
			return nil, err
		}
		key, err := resolveNumberField(data, "key", dataPath)
		if err != nil {
			return nil, err
		}
		velocity, err := resolveNumberField(data, "velocity", dataPath)
		if err != nil {
			return nil, err
		}
		return &macro.NoteOffMatcher{Channel: channel, Key: key, Velocity: velocity}, nil

	case midi.KindControlChange:
		channel, err := resolveNumberField(data, "channel", dataPath)
		if err != nil {
			return nil, err
		}
		control, err := resolveNumberField(data, "control", dataPath)
		if err != nil {
			return nil, err
		}
		value, err := resolveNumberField(data, "value", dataPath)
		if err != nil {
			return nil, err
		}
		return &macro.ControlChangeMatcher{Channel: channel, Control: control, Value: value}, nil

	case midi.KindProgramChange:
		channel, err := resolveNumberField(data, "channel", dataPath)
		if err != nil {
			return nil, err
		}
		program, err := resolveNumberField(data, "program", dataPath)
		if err != nil {
			return nil, err
		}
		return &macro.ProgramChangeMatcher{Channel: channel, Program: program}, nil

	case midi.KindPitchBend:
		channel, err := resolveNumberField(data, "channel", dataPath)
		if err != nil {
			return nil, err
		}
		value, err := resolveNumberField(data, "value", dataPath)
		if err != nil {
			return nil, err
		}
		return &macro.PitchBendMatcher{Channel: channel, Value: value}, nil

	case midi.KindAftertouch:
		channel, err := resolveNumberField(data, "channel", dataPath)
		if err != nil {
			return nil, err
		}
		key, err := resolveNumberField(data, "key", dataPath)
		if err != nil {
			return nil, err
		}
		pressure, err := resolveNumberField(data, "pressure", dataPath)
		if err != nil {
			return nil, err
		}
		return &macro.AftertouchMatcher{Channel: channel, Key: key, Pressure: pressure}, nil

	default:
		return nil, config.InvalidConfigf("%s.type: unknown event matcher type %q%s",
			path, typ, didYouMean(typ, eventMatcherTypes))
	}
}

// resolveNumberField resolves an optional number matcher field inside a
// data map. An absent field imposes no constraint.
func resolveNumberField(data document.Value, field, dataPath string) (*match.NumberMatcher, error) {
	v, ok := data.Get(field)
	if !ok || v.IsNull() {
		return nil, nil
	}
	return resolveNumberMatcher(v, dataPath+"."+field)
}

// resolveNumberMatcher resolves a number matcher spec: a bare integer for
// an exact value, or a {min, max} map for an inclusive range.
func resolveNumberMatcher(v document.Value, path string) (*match.NumberMatcher, error) {
	if i, ok := v.AsInt(); ok {
		return match.NumberVal(int(i)), nil
	}

	if _, ok := v.AsMap(); ok {
		min, ok := v.GetInt("min")
		if !ok {
			return nil, config.InvalidConfigf("%s.min: required integer field is missing", path)
		}
		max, ok := v.GetInt("max")
		if !ok {
			return nil, config.InvalidConfigf("%s.max: required integer field is missing", path)
		}
		if min > max {
			return nil, config.InvalidConfigf("%s: min %d is greater than max %d", path, min, max)
		}
		return match.NumberRange(int(min), int(max)), nil
	}

	return nil, config.InvalidConfigf("%s: expected an integer or a {min, max} map, got %s", path, v.Kind())
}

// resolveStringMatcher resolves a string matcher spec: a bare string for
// exact equality, or a single-key map selecting the match mode, e.g.
// {contains: "term"}.
func resolveStringMatcher(v document.Value, path string) (*match.StringMatcher, error) {
	if s, ok := v.AsString(); ok {
		return match.StringEquals(s), nil
	}

	m, ok := v.AsMap()
	if !ok {
		return nil, config.InvalidConfigf("%s: expected a string or a single-key map, got %s", path, v.Kind())
	}
	if len(m) != 1 {
		return nil, config.InvalidConfigf("%s: expected exactly one match mode key, got %d", path, len(m))
	}

	for mode, patternVal := range m {
		if _, valid := match.ValidStringModes()[match.StringMode(mode)]; !valid {
			return nil, config.InvalidConfigf("%s: unknown match mode %q (valid: %s)%s",
				path, mode, core.JoinMapKeys(match.ValidStringModes()), didYouMean(mode, stringModeNames()))
		}
		pattern, ok := patternVal.AsString()
		if !ok {
			return nil, config.InvalidConfigf("%s.%s: expected a string, got %s", path, mode, patternVal.Kind())
		}
		return match.NewStringMatcher(match.StringMode(mode), pattern), nil
	}

	// Unreachable: the map has exactly one entry.
	return nil, config.InvalidConfigf("%s: empty match mode map", path)
}

func stringModeNames() []string {
	names := make([]string, 0, len(match.ValidStringModes()))
	for mode := range match.ValidStringModes() {
		names = append(names, string(mode))
	}
	return names
}
