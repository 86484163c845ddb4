// Package version1 resolves schema-version-1 configuration documents into
// the shared config model. It registers itself with the config package;
// importing it for side effects is enough to enable version 1.
package version1

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"

	"github.com/macrokit/midimacro/internal/config"
	"github.com/macrokit/midimacro/internal/document"
	"github.com/macrokit/midimacro/internal/macro"
	"github.com/macrokit/midimacro/internal/match"
)

// Default stop matcher: control change on controller 51 with value 127.
const (
	defaultStopControl = 51
	defaultStopValue   = 127
)

func init() {
	config.RegisterResolver(1, Resolve)
}

// Resolve turns a version-1 document into a Config. No partially resolved
// configuration ever escapes: the first field error aborts the whole load.
func Resolve(doc document.Value) (*config.Config, error) {
	settings, err := resolveSettings(doc)
	if err != nil {
		return nil, err
	}

	macrosVal, ok := doc.Get("macros")
	if !ok {
		return nil, config.InvalidConfigf("macros: required list field is missing")
	}
	list, ok := macrosVal.AsList()
	if !ok {
		return nil, config.InvalidConfigf("macros: expected a list, got %s", macrosVal.Kind())
	}

	macros := make([]*macro.Macro, 0, len(list))
	seenNames := mapset.NewSet[string]()
	for i, item := range list {
		m, err := resolveMacro(item, fmt.Sprintf("macros[%d]", i))
		if err != nil {
			return nil, err
		}
		if m.Name() != "" && !seenNames.Add(m.Name()) {
			// Not an error: later duplicates are legal but can never win
			// over the earlier declaration for the same event.
			zap.L().Warn("Duplicate macro name",
				zap.String("name", m.Name()),
				zap.Int("index", i))
		}
		macros = append(macros, m)
	}

	return &config.Config{Macros: macros, Settings: settings}, nil
}

// resolveSettings resolves the global fields: the optional device port
// pattern and the optional stop matcher.
func resolveSettings(doc document.Value) (config.Settings, error) {
	var settings config.Settings

	if deviceVal, ok := doc.Get("device"); ok && !deviceVal.IsNull() {
		device, ok := deviceVal.AsString()
		if !ok {
			return settings, config.InvalidConfigf("device: expected a string, got %s", deviceVal.Kind())
		}
		settings.DevicePattern = device
	}

	if stopVal, ok := doc.Get("stop"); ok && !stopVal.IsNull() {
		stop, err := resolveEventMatcher(stopVal, "stop")
		if err != nil {
			return settings, err
		}
		settings.Stop = stop
	} else {
		settings.Stop = &macro.ControlChangeMatcher{
			Control: match.NumberVal(defaultStopControl),
			Value:   match.NumberVal(defaultStopValue),
		}
	}

	return settings, nil
}

// resolveMacro resolves one macro entry, staging each section into a
// builder and freezing it only once every section resolved.
func resolveMacro(v document.Value, path string) (*macro.Macro, error) {
	if _, ok := v.AsMap(); !ok {
		return nil, config.InvalidConfigf("%s: expected a map, got %s", path, v.Kind())
	}

	builder := macro.NewBuilder()

	if nameVal, ok := v.Get("name"); ok && !nameVal.IsNull() {
		name, ok := nameVal.AsString()
		if !ok {
			return nil, config.InvalidConfigf("%s.name: expected a string, got %s", path, nameVal.Kind())
		}
		builder.SetName(name)
	}

	matchesVal, ok := v.Get("matches")
	if !ok {
		return nil, config.InvalidConfigf("%s.matches: required list field is missing", path)
	}
	matches, ok := matchesVal.AsList()
	if !ok {
		return nil, config.InvalidConfigf("%s.matches: expected a list, got %s", path, matchesVal.Kind())
	}
	if len(matches) == 0 {
		return nil, config.InvalidConfigf("%s.matches: a macro needs at least one event matcher", path)
	}
	for i, item := range matches {
		matcher, err := resolveEventMatcher(item, fmt.Sprintf("%s.matches[%d]", path, i))
		if err != nil {
			return nil, err
		}
		builder.AddEventMatcher(matcher)
	}

	if preVal, ok := v.Get("required_preconditions"); ok && !preVal.IsNull() {
		items, ok := preVal.AsList()
		if !ok {
			return nil, config.InvalidConfigf("%s.required_preconditions: expected a list, got %s", path, preVal.Kind())
		}
		for i, item := range items {
			p, err := resolvePrecondition(item, fmt.Sprintf("%s.required_preconditions[%d]", path, i))
			if err != nil {
				return nil, err
			}
			builder.AddPrecondition(p)
		}
	}

	if scopeVal, ok := v.Get("scope"); ok && !scopeVal.IsNull() {
		scope, err := resolveScope(scopeVal, path+".scope")
		if err != nil {
			return nil, err
		}
		builder.SetScope(scope)
	}

	actionsVal, ok := v.Get("actions")
	if !ok {
		return nil, config.InvalidConfigf("%s.actions: required list field is missing", path)
	}
	actions, ok := actionsVal.AsList()
	if !ok {
		return nil, config.InvalidConfigf("%s.actions: expected a list, got %s", path, actionsVal.Kind())
	}
	for i, item := range actions {
		action, err := resolveAction(item, fmt.Sprintf("%s.actions[%d]", path, i))
		if err != nil {
			return nil, err
		}
		builder.AddAction(action)
	}

	m, err := builder.Build()
	if err != nil {
		return nil, config.InvalidConfigf("%s: %v", path, err)
	}
	return m, nil
}

// resolveScope resolves the optional window_class / window_name matchers.
func resolveScope(v document.Value, path string) (*macro.Scope, error) {
	if _, ok := v.AsMap(); !ok {
		return nil, config.InvalidConfigf("%s: expected a map, got %s", path, v.Kind())
	}

	scope := &macro.Scope{}

	if classVal, ok := v.Get("window_class"); ok && !classVal.IsNull() {
		m, err := resolveStringMatcher(classVal, path+".window_class")
		if err != nil {
			return nil, err
		}
		scope.WindowClass = m
	}

	if nameVal, ok := v.Get("window_name"); ok && !nameVal.IsNull() {
		m, err := resolveStringMatcher(nameVal, path+".window_name")
		if err != nil {
			return nil, err
		}
		scope.WindowName = m
	}

	return scope, nil
}

// typedSection extracts the {type, data} shape shared by event matchers,
// preconditions, and actions. data is null when absent.
func typedSection(v document.Value, path string) (string, document.Value, error) {
	if _, ok := v.AsMap(); !ok {
		return "", document.Value{}, config.InvalidConfigf("%s: expected a map, got %s", path, v.Kind())
	}
	typ, ok := v.GetString("type")
	if !ok {
		return "", document.Value{}, config.InvalidConfigf("%s.type: required string field is missing", path)
	}
	data, _ := v.Get("data")
	return typ, data, nil
}
