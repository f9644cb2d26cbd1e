package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	reg, err := NewRegistry([]ComponentSchema{
		{Name: "Zeta", Required: []Property{{Name: "id", Type: Scalar{Name: "integer"}, Required: true}}},
		{Name: "Alpha", Alias: Scalar{Name: "string"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"Zeta", "Alpha"}, reg.Names())
	assert.True(t, reg.Has("Alpha"))
	assert.False(t, reg.Has("Missing"))

	z, ok := reg.Lookup("Zeta")
	require.True(t, ok)
	assert.Len(t, z.Required, 1)
	assert.False(t, z.IsAlias())

	a, _ := reg.Lookup("Alpha")
	assert.True(t, a.IsAlias())

	comps := reg.Components()
	require.Len(t, comps, 2)
	assert.Equal(t, "Zeta", comps[0].Name)
}

func TestNewRegistry_Errors(t *testing.T) {
	_, err := NewRegistry([]ComponentSchema{{Name: "A"}, {Name: "A"}})
	assert.ErrorContains(t, err, "duplicate component")

	_, err = NewRegistry([]ComponentSchema{{}})
	assert.ErrorContains(t, err, "no name")
}

func TestRegistry_NamesIsACopy(t *testing.T) {
	reg, err := NewRegistry([]ComponentSchema{{Name: "A"}})
	require.NoError(t, err)
	names := reg.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"A"}, reg.Names())
}

func TestRegistry_Nil(t *testing.T) {
	var reg *Registry
	assert.Equal(t, 0, reg.Len())
	assert.Nil(t, reg.Names())
	assert.Nil(t, reg.Components())
	_, ok := reg.Lookup("A")
	assert.False(t, ok)
}

func TestComponentSchema_Properties(t *testing.T) {
	c := ComponentSchema{
		Required: []Property{{Name: "b"}},
		Optional: []Property{{Name: "a"}, {Name: "c"}},
	}
	var names []string
	for _, p := range c.Properties() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"b", "a", "c"}, names)
}

func TestDocumentation_Groups(t *testing.T) {
	doc := &Documentation{Operations: []Operation{
		{Name: "list_models", Group: "models"},
		{Name: "create_chat", Group: "chat"},
		{Name: "get_model", Group: "models"},
	}}
	assert.Equal(t, []string{"models", "chat"}, doc.Groups())

	op, ok := doc.Operation("create_chat")
	require.True(t, ok)
	assert.Equal(t, "chat", op.Group)

	_, ok = doc.Operation("missing")
	assert.False(t, ok)
}
