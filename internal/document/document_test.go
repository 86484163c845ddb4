package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_ZeroValueIsNull(t *testing.T) {
	var v Value
	assert.Equal(t, KindNull, v.Kind())
	assert.True(t, v.IsNull())
}

func TestValue_Accessors(t *testing.T) {
	b, ok := Bool(true).AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	i, ok := Int(42).AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(42), i)

	f, ok := Float(1.5).AsFloat()
	assert.True(t, ok)
	assert.Equal(t, 1.5, f)

	s, ok := String("hello").AsString()
	assert.True(t, ok)
	assert.Equal(t, "hello", s)

	// Accessors on the wrong kind report absence.
	_, ok = Int(42).AsString()
	assert.False(t, ok)
	_, ok = String("x").AsInt()
	assert.False(t, ok)
}

func TestValue_MapHelpers(t *testing.T) {
	v := Map(map[string]Value{
		"name":  String("volume"),
		"count": Int(3),
		"items": List(Int(1), Int(2)),
		"inner": Map(map[string]Value{"k": String("v")}),
	})

	name, ok := v.GetString("name")
	assert.True(t, ok)
	assert.Equal(t, "volume", name)

	count, ok := v.GetInt("count")
	assert.True(t, ok)
	assert.Equal(t, int64(3), count)

	items, ok := v.GetList("items")
	assert.True(t, ok)
	assert.Len(t, items, 2)

	inner, ok := v.GetMap("inner")
	assert.True(t, ok)
	assert.Contains(t, inner, "k")

	// Missing key and wrong kind both report absence.
	_, ok = v.GetString("missing")
	assert.False(t, ok)
	_, ok = v.GetString("count")
	assert.False(t, ok)

	// Map helpers on a non-map value report absence.
	_, ok = Int(1).Get("anything")
	assert.False(t, ok)
}

func TestFromYAML_Scalars(t *testing.T) {
	v, err := FromYAML([]byte("version: 1\nname: test\nratio: 0.5\nenabled: true\nempty:\n"))
	require.NoError(t, err)

	version, ok := v.GetInt("version")
	assert.True(t, ok)
	assert.Equal(t, int64(1), version)

	name, ok := v.GetString("name")
	assert.True(t, ok)
	assert.Equal(t, "test", name)

	ratio, hasRatio := v.Get("ratio")
	require.True(t, hasRatio)
	f, ok := ratio.AsFloat()
	assert.True(t, ok)
	assert.Equal(t, 0.5, f)

	enabled, hasEnabled := v.Get("enabled")
	require.True(t, hasEnabled)
	b, ok := enabled.AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	empty, hasEmpty := v.Get("empty")
	require.True(t, hasEmpty)
	assert.True(t, empty.IsNull())
}

func TestFromYAML_NestedStructure(t *testing.T) {
	text := `
macros:
  - name: first
    actions:
      - type: key_sequence
        data: ctrl+shift+t
  - name: second
`
	v, err := FromYAML([]byte(text))
	require.NoError(t, err)

	macros, ok := v.GetList("macros")
	require.True(t, ok)
	require.Len(t, macros, 2)

	first, ok := macros[0].GetString("name")
	assert.True(t, ok)
	assert.Equal(t, "first", first)

	actions, ok := macros[0].GetList("actions")
	require.True(t, ok)
	require.Len(t, actions, 1)

	actionType, ok := actions[0].GetString("type")
	assert.True(t, ok)
	assert.Equal(t, "key_sequence", actionType)
}

func TestFromYAML_InvalidSyntax(t *testing.T) {
	_, err := FromYAML([]byte(":\n  - ]["))
	assert.Error(t, err)
}
