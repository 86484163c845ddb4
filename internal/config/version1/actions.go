package version1

import (
	"fmt"
	"sort"

	"github.com/macrokit/midimacro/internal/config"
	"github.com/macrokit/midimacro/internal/document"
	"github.com/macrokit/midimacro/internal/macro"
)

var actionTypes = []string{"key_sequence", "enter_text", "shell", "combination"}

// resolveAction resolves a {type, data} section into an action value.
func resolveAction(v document.Value, path string) (macro.Action, error) {
	typ, data, err := typedSection(v, path)
	if err != nil {
		return nil, err
	}

	dataPath := path + ".data"

	switch typ {
	case "key_sequence":
		return resolveKeySequence(data, dataPath)
	case "enter_text":
		return resolveEnterText(data, dataPath)
	case "shell":
		return resolveShell(data, dataPath)
	case "combination":
		return resolveCombination(data, dataPath)
	default:
		return nil, config.InvalidConfigf("%s.type: unknown action type %q%s",
			path, typ, didYouMean(typ, actionTypes))
	}
}

// resolveKeySequence accepts a bare string (count 1) or a map with a
// required sequence and an optional count.
func resolveKeySequence(data document.Value, path string) (macro.Action, error) {
	if sequence, ok := data.AsString(); ok {
		return macro.KeySequence{Sequence: sequence, Count: 1}, nil
	}

	if _, ok := data.AsMap(); ok {
		sequence, ok := data.GetString("sequence")
		if !ok {
			return nil, config.InvalidConfigf("%s.sequence: required string field is missing", path)
		}
		count, err := resolveCount(data, path)
		if err != nil {
			return nil, err
		}
		return macro.KeySequence{Sequence: sequence, Count: count}, nil
	}

	return nil, config.InvalidConfigf("%s: key_sequence data must be a string or a map, got %s", path, data.Kind())
}

// resolveEnterText accepts a bare string (count 1) or a map with a
// required text and an optional count.
func resolveEnterText(data document.Value, path string) (macro.Action, error) {
	if text, ok := data.AsString(); ok {
		return macro.EnterText{Text: text, Count: 1}, nil
	}

	if _, ok := data.AsMap(); ok {
		text, ok := data.GetString("text")
		if !ok {
			return nil, config.InvalidConfigf("%s.text: required string field is missing", path)
		}
		count, err := resolveCount(data, path)
		if err != nil {
			return nil, err
		}
		return macro.EnterText{Text: text, Count: count}, nil
	}

	return nil, config.InvalidConfigf("%s: enter_text data must be a string or a map, got %s", path, data.Kind())
}

// resolveShell resolves the command, optional args and optional env of a
// shell action.
func resolveShell(data document.Value, path string) (macro.Action, error) {
	if _, ok := data.AsMap(); !ok {
		return nil, config.InvalidConfigf("%s: shell data must be a map, got %s", path, data.Kind())
	}

	command, ok := data.GetString("command")
	if !ok {
		return nil, config.InvalidConfigf("%s.command: required string field is missing", path)
	}

	action := macro.Shell{Command: command}

	if argsVal, ok := data.Get("args"); ok && !argsVal.IsNull() {
		items, ok := argsVal.AsList()
		if !ok {
			return nil, config.InvalidConfigf("%s.args: expected a list, got %s", path, argsVal.Kind())
		}
		for i, item := range items {
			arg, ok := item.AsString()
			if !ok {
				return nil, config.InvalidConfigf("%s.args[%d]: expected a string, got %s", path, i, item.Kind())
			}
			action.Args = append(action.Args, arg)
		}
	}

	if envVal, ok := data.Get("env"); ok && !envVal.IsNull() {
		entries, ok := envVal.AsMap()
		if !ok {
			return nil, config.InvalidConfigf("%s.env: expected a map, got %s", path, envVal.Kind())
		}
		// Map iteration order is unstable; sort by key so the spawned
		// process always sees the same environment.
		keys := make([]string, 0, len(entries))
		for key := range entries {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			value, ok := entries[key].AsString()
			if !ok {
				return nil, config.InvalidConfigf("%s.env.%s: expected a string, got %s", path, key, entries[key].Kind())
			}
			action.Env = append(action.Env, macro.EnvVar{Key: key, Value: value})
		}
	}

	return action, nil
}

// resolveCombination resolves an ordered list of nested action specs.
func resolveCombination(data document.Value, path string) (macro.Action, error) {
	items, ok := data.AsList()
	if !ok {
		return nil, config.InvalidConfigf("%s: combination data must be a list, got %s", path, data.Kind())
	}

	combination := macro.Combination{}
	for i, item := range items {
		child, err := resolveAction(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		combination.Actions = append(combination.Actions, child)
	}
	return combination, nil
}

// resolveCount reads the optional count field of a count-bearing action.
// Absent defaults to 1; zero is legal and means "execute nothing".
func resolveCount(data document.Value, path string) (int, error) {
	v, ok := data.Get("count")
	if !ok || v.IsNull() {
		return 1, nil
	}
	count, ok := v.AsInt()
	if !ok {
		return 0, config.InvalidConfigf("%s.count: expected an integer, got %s", path, v.Kind())
	}
	if count < 0 {
		return 0, config.InvalidConfigf("%s.count: must be 0 or more, got %d", path, count)
	}
	return int(count), nil
}
