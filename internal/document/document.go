// Package document provides the untyped value tree the configuration
// resolvers walk. A tree is produced once per configuration load, read from
// during resolution, and discarded; nothing mutates a Value after
// construction.
package document

// Kind identifies the variant held by a Value.
type Kind int

// Value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is one node of a parsed configuration tree. The zero value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	list []Value
	m    map[string]Value
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps an integer.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float wraps a float.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// List wraps an ordered sequence of values.
func List(items ...Value) Value { return Value{kind: KindList, list: items} }

// Map wraps a string-keyed mapping of values.
func Map(entries map[string]Value) Value { return Value{kind: KindMap, m: entries} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload, and whether v holds one.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsInt returns the integer payload, and whether v holds one.
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

// AsFloat returns the float payload, and whether v holds one.
func (v Value) AsFloat() (float64, bool) {
	return v.f, v.kind == KindFloat
}

// AsString returns the string payload, and whether v holds one.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsList returns the list payload, and whether v holds one.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.list, true
}

// AsMap returns the map payload, and whether v holds one.
func (v Value) AsMap() (map[string]Value, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.m, true
}

// Get looks up a key in a map value. It returns false when v is not a map
// or the key is absent.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	child, ok := v.m[key]
	return child, ok
}

// GetString looks up a key and returns its string payload, if both exist.
func (v Value) GetString(key string) (string, bool) {
	child, ok := v.Get(key)
	if !ok {
		return "", false
	}
	return child.AsString()
}

// GetInt looks up a key and returns its integer payload, if both exist.
func (v Value) GetInt(key string) (int64, bool) {
	child, ok := v.Get(key)
	if !ok {
		return 0, false
	}
	return child.AsInt()
}

// GetList looks up a key and returns its list payload, if both exist.
func (v Value) GetList(key string) ([]Value, bool) {
	child, ok := v.Get(key)
	if !ok {
		return nil, false
	}
	return child.AsList()
}

// GetMap looks up a key and returns its map payload, if both exist.
func (v Value) GetMap(key string) (map[string]Value, bool) {
	child, ok := v.Get(key)
	if !ok {
		return nil, false
	}
	return child.AsMap()
}
