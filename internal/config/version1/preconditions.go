package version1

import (
	"github.com/macrokit/midimacro/internal/config"
	"github.com/macrokit/midimacro/internal/document"
	"github.com/macrokit/midimacro/internal/macro"
)

var preconditionTypes = []string{
	string(macro.PreconditionControlValue),
	string(macro.PreconditionNoteHeld),
}

// resolvePrecondition resolves a {type, data} section into a precondition.
func resolvePrecondition(v document.Value, path string) (*macro.Precondition, error) {
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

	switch macro.PreconditionKind(typ) {
	case macro.PreconditionControlValue:
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
		return &macro.Precondition{
			Kind:    macro.PreconditionControlValue,
			Channel: channel,
			Control: control,
			Value:   value,
		}, nil

	case macro.PreconditionNoteHeld:
		channel, err := resolveNumberField(data, "channel", dataPath)
		if err != nil {
			return nil, err
		}
		key, err := resolveNumberField(data, "key", dataPath)
		if err != nil {
			return nil, err
		}
		return &macro.Precondition{
			Kind:    macro.PreconditionNoteHeld,
			Channel: channel,
			Key:     key,
		}, nil

	default:
		return nil, config.InvalidConfigf("%s.type: unknown precondition type %q%s",
			path, typ, didYouMean(typ, preconditionTypes))
	}
}
