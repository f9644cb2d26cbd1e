package mcpserver

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasir/internal/testutil"
)

const emptySpec = `openapi: "3.0.0"
info:
  title: Test
  version: "1.0"
paths: {}
`

func TestSpecInput_ResolveFile(t *testing.T) {
	specCache.reset()
	path := testutil.WriteTempFile(t, "models.yaml", testutil.ModelServiceYAML)

	state, err := specInput{File: path}.resolve(defaultSettings())
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", state.parsed.Version)
	assert.Equal(t, 9, state.result.Documentation.Components.Len())
	assert.Len(t, state.result.Documentation.Operations, 5)
	assert.Equal(t, 26, state.universe.Len())
}

func TestSpecInput_ResolveContent(t *testing.T) {
	specCache.reset()
	state, err := specInput{Content: emptySpec}.resolve(defaultSettings())
	require.NoError(t, err)
	assert.Equal(t, "3.0.0", state.parsed.Version)
	assert.Empty(t, state.result.Documentation.Operations)
	assert.Equal(t, 0, state.universe.Len())
}

func TestSpecInput_ResolveNoneProvided(t *testing.T) {
	_, err := specInput{}.resolve(defaultSettings())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content must be provided")
}

func TestSpecInput_ResolveMultipleProvided(t *testing.T) {
	_, err := specInput{File: "foo.yaml", Content: "bar"}.resolve(defaultSettings())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content must be provided")
}

func TestSpecInput_ResolveFileNotFound(t *testing.T) {
	specCache.reset()
	_, err := specInput{File: "/nonexistent/path.yaml"}.resolve(defaultSettings())
	assert.Error(t, err)
}

func TestSpecInput_ResolveInlineTooLarge(t *testing.T) {
	orig := cfg.MaxInlineSize
	cfg.MaxInlineSize = 8
	t.Cleanup(func() { cfg.MaxInlineSize = orig })

	_, err := specInput{Content: emptySpec}.resolve(defaultSettings())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}

func TestSpecCache_HitOnSameFile(t *testing.T) {
	specCache.reset()
	input := specInput{File: testutil.WriteTempFile(t, "models.yaml", testutil.ModelServiceYAML)}

	state1, err := input.resolve(defaultSettings())
	require.NoError(t, err)
	assert.Equal(t, 1, specCache.size())

	state2, err := input.resolve(defaultSettings())
	require.NoError(t, err)
	assert.Same(t, state1, state2, "expected same pointer from cache hit")
}

func TestSpecCache_MissOnModifiedFile(t *testing.T) {
	specCache.reset()
	path := testutil.WriteTempFile(t, "spec.yaml", emptySpec)

	input := specInput{File: path}
	state1, err := input.resolve(defaultSettings())
	require.NoError(t, err)
	assert.Empty(t, state1.result.Documentation.Components.Names())

	require.NoError(t, os.WriteFile(path, []byte(testutil.ModelServiceYAML), 0o600))
	// Ensure mtime differs from the first write on coarse-grained filesystems.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	state2, err := input.resolve(defaultSettings())
	require.NoError(t, err)
	assert.NotSame(t, state1, state2)
	assert.Equal(t, 9, state2.result.Documentation.Components.Len())
}

func TestSpecCache_ContentHash(t *testing.T) {
	specCache.reset()
	input := specInput{Content: emptySpec}

	state1, err := input.resolve(defaultSettings())
	require.NoError(t, err)
	state2, err := input.resolve(defaultSettings())
	require.NoError(t, err)
	assert.Same(t, state1, state2)
}

func TestSpecCache_SettingsAreKeyed(t *testing.T) {
	specCache.reset()
	input := specInput{Content: emptySpec}

	state1, err := input.resolve(assembleSettings{InlineResponses: false})
	require.NoError(t, err)
	state2, err := input.resolve(assembleSettings{InlineResponses: true})
	require.NoError(t, err)
	assert.NotSame(t, state1, state2)
	assert.Equal(t, 2, specCache.size())
}

func TestSpecCache_LRUEviction(t *testing.T) {
	specCache.reset()

	var firstKey string
	for i := range 11 {
		content := `openapi: "3.0.0"
info:
  title: "Spec ` + string(rune('A'+i)) + `"
  version: "1.0"
paths: {}
`
		input := specInput{Content: content}
		if i == 0 {
			firstKey = makeCacheKey(input, defaultSettings())
		}
		_, err := input.resolve(defaultSettings())
		require.NoError(t, err)
	}

	assert.Equal(t, 10, specCache.size())
	assert.Nil(t, specCache.get(firstKey), "expected oldest entry to be evicted")
}

func TestSpecCache_Sweep(t *testing.T) {
	specCache.reset()
	specCache.putWithTTL("expired", &specState{}, time.Nanosecond)
	specCache.putWithTTL("live", &specState{}, time.Hour)
	time.Sleep(time.Millisecond)

	specCache.sweep()
	assert.Equal(t, 1, specCache.size())
	assert.NotNil(t, specCache.get("live"))
}
