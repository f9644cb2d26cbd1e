package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callEmitTypes(t *testing.T, input emitTypesInput) (*mcp.CallToolResult, emitTypesOutput) {
	t.Helper()
	result, output, err := handleEmitTypes(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	return result, output
}

func TestHandleEmitTypes_Inline(t *testing.T) {
	specCache.reset()
	result, output := callEmitTypes(t, emitTypesInput{Spec: modelService()})
	require.Nil(t, result)

	golden, err := os.ReadFile("../../emitter/testdata/golden/model_service.golden")
	require.NoError(t, err)

	assert.Equal(t, "api", output.Package)
	assert.Equal(t, 9, output.Components)
	assert.Equal(t, 5, output.Operations)
	assert.Equal(t, 0, output.Fallbacks)
	assert.Equal(t, string(golden), output.Source)
	assert.Equal(t, len(golden), output.Size)
	assert.Empty(t, output.WrittenTo)
}

func TestHandleEmitTypes_Options(t *testing.T) {
	specCache.reset()
	off := false
	result, output := callEmitTypes(t, emitTypesInput{
		Spec:       modelService(),
		Package:    "models",
		Pointers:   &off,
		Operations: &off,
	})
	require.Nil(t, result)

	assert.Equal(t, "models", output.Package)
	assert.Contains(t, output.Source, "package models\n")
	assert.NotContains(t, output.Source, "var Operations")
	assert.NotContains(t, output.Source, "*string")
}

func TestHandleEmitTypes_Output(t *testing.T) {
	specCache.reset()
	path := filepath.Join(t.TempDir(), "types.go")

	result, output := callEmitTypes(t, emitTypesInput{Spec: modelService(), Output: path})
	require.Nil(t, result)

	assert.Equal(t, path, output.WrittenTo)
	assert.Empty(t, output.Source)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, output.Size, len(data))
	assert.Contains(t, string(data), "type Model struct {")
}

func TestHandleEmitTypes_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input emitTypesInput
	}{
		{"invalid package", emitTypesInput{Spec: modelService(), Package: "func"}},
		{"missing spec", emitTypesInput{}},
		{"unwritable output", emitTypesInput{Spec: modelService(), Output: filepath.Join(t.TempDir(), "missing", "types.go")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specCache.reset()
			result, _ := callEmitTypes(t, tt.input)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}
