package testutil

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelServiceYAML_Parses(t *testing.T) {
	doc := MustParseMap(t, ModelServiceYAML)

	schemas, ok := doc.Lookup("components", "schemas")
	require.True(t, ok)
	assert.Equal(t, 9, schemas.Len())

	paths, ok := doc.GetMap("paths")
	require.True(t, ok)
	assert.Equal(t, []string{"/models", "/models/{model}", "/chat/completions", "/files", "/files/{file_id}/content"}, paths.Keys())
}

func TestWriteTempFile(t *testing.T) {
	path := WriteTempFile(t, "spec.yaml", "openapi: 3.0.3\n")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "openapi: 3.0.3\n", string(data))
}

func TestCaptureLogger(t *testing.T) {
	log := NewCaptureLogger()
	log.Debug("d")
	log.With("component", "Pet").Warn("w", "key", "value")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Info("concurrent")
		}()
	}
	wg.Wait()

	assert.Len(t, log.Entries(""), 12)
	assert.Equal(t, 10, log.Count("info", "concurrent"))

	warns := log.Entries("warn")
	require.Len(t, warns, 1)
	v, ok := warns[0].Attr("component")
	assert.True(t, ok)
	assert.Equal(t, "Pet", v)
	v, _ = warns[0].Attr("key")
	assert.Equal(t, "value", v)

	_, ok = warns[0].Attr("missing")
	assert.False(t, ok)
}
