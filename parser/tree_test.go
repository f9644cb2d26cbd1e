package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_PreservesInsertionOrder(t *testing.T) {
	m := NewMap()
	m.Set("zeta", 1)
	m.Set("alpha", 2)
	m.Set("mid", 3)
	m.Set("zeta", 4) // overwrite keeps position

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Keys())
	v, ok := m.Get("zeta")
	require.True(t, ok)
	assert.Equal(t, 4, v)
	assert.Equal(t, 3, m.Len())
}

func TestMap_TypedAccessors(t *testing.T) {
	m := MapOf(
		"name", "pet",
		"flag", true,
		"nested", MapOf("inner", "x"),
		"list", []any{"a", 1, "b"},
	)

	s, ok := m.GetString("name")
	assert.True(t, ok)
	assert.Equal(t, "pet", s)

	_, ok = m.GetString("flag")
	assert.False(t, ok, "non-string value")

	assert.Equal(t, "fallback", m.StringOr("missing", "fallback"))
	assert.True(t, m.GetBool("flag"))
	assert.False(t, m.GetBool("name"))

	nested, ok := m.GetMap("nested")
	require.True(t, ok)
	assert.Equal(t, "x", nested.StringOr("inner", ""))

	list, ok := m.GetSlice("list")
	require.True(t, ok)
	assert.Len(t, list, 3)
	assert.Equal(t, []string{"a", "b"}, m.GetStrings("list"))
}

func TestMap_NilReceiver(t *testing.T) {
	var m *Map
	_, ok := m.Get("x")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Keys())
	assert.Nil(t, m.ToAny())
	m.Range(func(string, any) bool {
		t.Fatal("Range on nil map must not call fn")
		return true
	})
}

func TestMap_Lookup(t *testing.T) {
	m := MapOf("components", MapOf("schemas", MapOf("Pet", MapOf("type", "object"))))

	schemas, ok := m.Lookup("components", "schemas")
	require.True(t, ok)
	assert.Equal(t, []string{"Pet"}, schemas.Keys())

	_, ok = m.Lookup("components", "parameters")
	assert.False(t, ok)
}

func TestMap_RangeStopsEarly(t *testing.T) {
	m := MapOf("a", 1, "b", 2, "c", 3)
	var seen []string
	m.Range(func(k string, _ any) bool {
		seen = append(seen, k)
		return k != "b"
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestMap_ToAny(t *testing.T) {
	m := MapOf("a", MapOf("b", []any{MapOf("c", 1)}))
	assert.Equal(t, map[string]any{
		"a": map[string]any{"b": []any{map[string]any{"c": 1}}},
	}, m.ToAny())
}

func TestMapOf_Panics(t *testing.T) {
	assert.Panics(t, func() { MapOf("odd") })
	assert.Panics(t, func() { MapOf(1, "x") })
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "null"},
		{"map with type", MapOf("type", "array", "items", MapOf()), "{type=array, items}"},
		{"ref", MapOf("$ref", "#/x", "description", "d"), "{$ref, description}"},
		{"sequence", []any{1, 2, 3}, "sequence(3)"},
		{"string", "abc", `string "abc"`},
		{"int", 7, "int 7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.in))
		})
	}
}

func TestMap_MarshalJSON(t *testing.T) {
	m := MapOf("zeta", 1, "alpha", []any{MapOf("y", true, "x", nil)}, "s", "q\"")
	data, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":1,"alpha":[{"y":true,"x":null}],"s":"q\""}`, string(data))

	var nilMap *Map
	data, err = nilMap.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestPlain(t *testing.T) {
	assert.Equal(t, []any{map[string]any{"a": 1}, "b"}, Plain([]any{MapOf("a", 1), "b"}))
	assert.Equal(t, 3.5, Plain(3.5))
}
