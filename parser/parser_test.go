package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasir/oaserrors"
)

const petstoreYAML = `openapi: "3.0.3"
info:
  title: Pets
  version: "1"
paths:
  /pets:
    parameters:
      - name: limit
        in: query
        schema: {type: integer}
    get:
      operationId: listPets
    post:
      operationId: createPet
  /pets/{id}:
    delete:
      operationId: deletePet
components:
  schemas:
    Pet:
      type: object
    Error:
      type: object
`

func TestParseBytes(t *testing.T) {
	result, err := New().ParseBytes([]byte(petstoreYAML))
	require.NoError(t, err)

	assert.Equal(t, "3.0.3", result.Version)
	assert.Equal(t, SourceFormatYAML, result.SourceFormat)
	assert.Equal(t, "ParseBytes.yaml", result.SourcePath)
	assert.Equal(t, int64(len(petstoreYAML)), result.SourceSize)
	assert.Equal(t, DocumentStats{SchemaCount: 2, PathCount: 2, OperationCount: 3}, result.Stats)
	assert.Equal(t, []string{"Pet", "Error"}, result.Components().Keys())
	assert.Equal(t, []string{"/pets", "/pets/{id}"}, result.Paths().Keys())
}

func TestParseReader_JSON(t *testing.T) {
	result, err := New().ParseReader(strings.NewReader(`{"openapi":"3.1.0","paths":{}}`))
	require.NoError(t, err)
	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	assert.Equal(t, "ParseReader.json", result.SourcePath)
	assert.Equal(t, 0, result.Components().Len())
}

func TestParse_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "api.yml")
	require.NoError(t, os.WriteFile(path, []byte(petstoreYAML), 0o600))

	result, err := New().Parse(path)
	require.NoError(t, err)
	assert.Equal(t, path, result.SourcePath)
	assert.Equal(t, SourceFormatYAML, result.SourceFormat)
	assert.Equal(t, 3, result.Stats.OperationCount)
}

func TestParse_MissingFile(t *testing.T) {
	_, err := New().Parse(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrParse)
}

func TestParse_SizeLimit(t *testing.T) {
	p := &Parser{MaxFileSize: 10}
	_, err := p.ParseBytes([]byte(petstoreYAML))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit")

	_, err = p.ParseReader(strings.NewReader(petstoreYAML))
	require.Error(t, err)
}

func TestParseWithOptions(t *testing.T) {
	t.Run("bytes with source name", func(t *testing.T) {
		result, err := ParseWithOptions(WithBytes([]byte(petstoreYAML)), WithSourceName("petstore.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "petstore.yaml", result.SourcePath)
	})

	t.Run("no source", func(t *testing.T) {
		_, err := ParseWithOptions()
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrConfig)
	})

	t.Run("two sources", func(t *testing.T) {
		_, err := ParseWithOptions(WithBytes([]byte("a: 1")), WithReader(strings.NewReader("b: 2")))
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrConfig)
	})

	t.Run("invalid max size", func(t *testing.T) {
		_, err := ParseWithOptions(WithBytes([]byte("a: 1")), WithMaxFileSize(0))
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrConfig)
	})

	t.Run("nil reader", func(t *testing.T) {
		_, err := ParseWithOptions(WithReader(nil))
		require.Error(t, err)
	})
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{-1, "-1 B"},
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{10 * 1024 * 1024, "10.0 MiB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBytes(tt.in))
	}
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, detectFormatFromPath("a/b.JSON"))
	assert.Equal(t, SourceFormatYAML, detectFormatFromPath("a.yml"))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromPath("a.txt"))
	assert.Equal(t, SourceFormatJSON, detectFormatFromContent([]byte("  \n{")))
	assert.Equal(t, SourceFormatYAML, detectFormatFromContent([]byte("a: b")))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromContent([]byte("   ")))
}

func TestIsHTTPMethod(t *testing.T) {
	assert.True(t, IsHTTPMethod("get"))
	assert.True(t, IsHTTPMethod("delete"))
	assert.False(t, IsHTTPMethod("parameters"))
	assert.False(t, IsHTTPMethod("GET"))
}
