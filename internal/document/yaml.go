package document

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// FromYAML parses YAML bytes into a Value tree. This is the only place the
// textual configuration format is known; everything downstream works on the
// Value tree alone.
func FromYAML(data []byte) (Value, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Value{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	return fromAny(raw)
}

// fromAny converts the yaml.v3 generic decoding into a Value tree.
func fromAny(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return Value{}, fmt.Errorf("integer %d out of range", v)
		}
		return Int(int64(v)), nil
	case float64:
		return Float(v), nil
	case string:
		return String(v), nil
	case []any:
		items := make([]Value, 0, len(v))
		for i, item := range v {
			child, err := fromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("list index %d: %w", i, err)
			}
			items = append(items, child)
		}
		return List(items...), nil
	case map[string]any:
		entries := make(map[string]Value, len(v))
		for key, item := range v {
			child, err := fromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", key, err)
			}
			entries[key] = child
		}
		return Map(entries), nil
	case map[any]any:
		return Value{}, fmt.Errorf("mapping keys must be strings")
	default:
		return Value{}, fmt.Errorf("unsupported yaml value of type %T", raw)
	}
}
