package parser

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-json"
)

// Map is a string-keyed mapping that remembers the order in which keys were
// inserted. It is the mapping type of the generic document tree: values are
// *Map, []any, string, int, float64, bool, or nil.
//
// A Map is built once by the decoder and treated as read-only afterwards.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{values: make(map[string]any)}
}

// MapOf builds a Map from alternating key/value arguments. It panics on an odd
// argument count or a non-string key, so it is intended for fixtures and tests.
func MapOf(kv ...any) *Map {
	if len(kv)%2 != 0 {
		panic("parser.MapOf: odd number of arguments")
	}
	m := NewMap()
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("parser.MapOf: key %v is not a string", kv[i]))
		}
		m.Set(k, kv[i+1])
	}
	return m
}

// Set stores v under k. A new key is appended to the key order; an existing
// key keeps its position.
func (m *Map) Set(k string, v any) {
	if _, exists := m.values[k]; !exists {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
}

// Get returns the value stored under k.
func (m *Map) Get(k string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[k]
	return v, ok
}

// Has reports whether k is present.
func (m *Map) Has(k string) bool {
	_, ok := m.Get(k)
	return ok
}

// Keys returns the keys in source order. The returned slice is a copy.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// GetString returns the value under k when it is a string.
func (m *Map) GetString(k string) (string, bool) {
	v, ok := m.Get(k)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// StringOr returns the string under k, or fallback when absent or not a string.
func (m *Map) StringOr(k, fallback string) string {
	if s, ok := m.GetString(k); ok {
		return s
	}
	return fallback
}

// GetBool returns the boolean under k, or false when absent or not a boolean.
func (m *Map) GetBool(k string) bool {
	v, _ := m.Get(k)
	b, _ := v.(bool)
	return b
}

// GetMap returns the nested mapping under k.
func (m *Map) GetMap(k string) (*Map, bool) {
	v, ok := m.Get(k)
	if !ok {
		return nil, false
	}
	sub, ok := v.(*Map)
	return sub, ok
}

// GetSlice returns the sequence under k.
func (m *Map) GetSlice(k string) ([]any, bool) {
	v, ok := m.Get(k)
	if !ok {
		return nil, false
	}
	s, ok := v.([]any)
	return s, ok
}

// GetStrings returns the string elements of the sequence under k. Non-string
// elements are skipped.
func (m *Map) GetStrings(k string) []string {
	items, _ := m.GetSlice(k)
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Lookup walks a chain of nested mappings and returns the Map at the end.
func (m *Map) Lookup(keys ...string) (*Map, bool) {
	cur := m
	for _, k := range keys {
		next, ok := cur.GetMap(k)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, cur != nil
}

// Range calls fn for every entry in source order until fn returns false.
func (m *Map) Range(fn func(k string, v any) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// ToAny converts the Map and everything below it into plain map[string]any
// values, dropping key order. Useful for JSON encoding.
func (m *Map) ToAny() map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m.keys))
	for _, k := range m.keys {
		out[k] = Plain(m.values[k])
	}
	return out
}

// Plain converts a tree value into plain Go values: *Map becomes
// map[string]any and sequences are converted element-wise.
func Plain(v any) any {
	switch t := v.(type) {
	case *Map:
		return t.ToAny()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Plain(e)
		}
		return out
	default:
		return v
	}
}

// MarshalJSON encodes the Map as a JSON object with keys in source order.
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Describe renders a short, single-line summary of a raw value for error
// messages, e.g. "{$ref, description}" or "sequence(3)".
func Describe(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case *Map:
		parts := make([]string, 0, t.Len())
		for _, k := range t.keys {
			if k == "type" {
				if s, ok := t.values[k].(string); ok {
					parts = append(parts, "type="+s)
					continue
				}
			}
			parts = append(parts, k)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case []any:
		return fmt.Sprintf("sequence(%d)", len(t))
	case string:
		return fmt.Sprintf("string %q", t)
	default:
		return fmt.Sprintf("%T %v", v, v)
	}
}
