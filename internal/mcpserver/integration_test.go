package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasir/internal/testutil"
)

// startTestSession creates an in-process MCP server/client pair and returns
// the connected client session. The server is shut down when the test ends.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	// Start server in background. It blocks until the connection closes.
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- RunTransport(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

func callTool(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err, "MCP protocol call should succeed even on tool error")
	require.NotNil(t, result)
	return result
}

func specArg() map[string]any {
	return map[string]any{"content": testutil.ModelServiceYAML}
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.NotNil(t, result)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %q has empty description", tool.Name)
	}
	assert.ElementsMatch(t, []string{"inspect", "emit_types", "decode_payload"}, names)
}

func TestIntegration_CallTool_Inspect(t *testing.T) {
	specCache.reset()
	session := startTestSession(t)

	result := callTool(t, session, "inspect", map[string]any{"spec": specArg(), "group": "Models"})
	assert.False(t, result.IsError, "inspect should succeed on a valid spec")

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "3.0.3", structured["version"])
	assert.Equal(t, float64(2), structured["operation_count"])

	ops, ok := structured["operations"].([]any)
	require.True(t, ok, "operations should be an array")
	require.Len(t, ops, 2)
	first, ok := ops[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "list_models", first["name"])
	assert.Equal(t, "listModels", first["operation_id"])

	issues, ok := structured["issues"].([]any)
	require.True(t, ok, "issues should be an array")
	assert.Len(t, issues, 2)
}

func TestIntegration_CallTool_EmitTypes(t *testing.T) {
	specCache.reset()
	session := startTestSession(t)

	result := callTool(t, session, "emit_types", map[string]any{"spec": specArg(), "package": "models"})
	assert.False(t, result.IsError, "emit_types should succeed")

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "models", structured["package"])
	source, ok := structured["source"].(string)
	require.True(t, ok)
	assert.Contains(t, source, "package models")
	assert.Contains(t, source, "type ChatMessage struct {")
}

func TestIntegration_CallTool_DecodePayload(t *testing.T) {
	specCache.reset()
	session := startTestSession(t)

	result := callTool(t, session, "decode_payload", map[string]any{
		"spec":    specArg(),
		"payload": `{"object":"list","data":[{"id":"gpt-4o","tier":"pro"}],"has_more":false}`,
	})
	assert.False(t, result.IsError, "decode_payload should succeed")

	structured := unmarshalStructured(t, result)
	assert.Equal(t, []any{"tier", "has_more"}, structured["unknown_keys"])
	assert.Equal(t, float64(26), structured["universe_size"])

	value, ok := structured["value"].(map[string]any)
	require.True(t, ok, "value should be an object")
	assert.Equal(t, "list", value["object"])
}

func TestIntegration_CallTool_Error_InvalidSpec(t *testing.T) {
	specCache.reset()
	session := startTestSession(t)

	result := callTool(t, session, "inspect", map[string]any{
		"spec": map[string]any{"content": "- this is a list, not an OAS document"},
	})
	assert.True(t, result.IsError, "inspect should return IsError for a non-mapping document")

	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "error content should be TextContent")
	assert.NotEmpty(t, text.Text)
}

func TestIntegration_CallTool_Error_MissingSpec(t *testing.T) {
	session := startTestSession(t)

	result := callTool(t, session, "inspect", map[string]any{"spec": map[string]any{}})
	assert.True(t, result.IsError, "inspect should return IsError when no spec source is provided")
}

// unmarshalStructured extracts the structured output from a CallToolResult.
// It first checks StructuredContent, then falls back to parsing the first TextContent.
func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	// Prefer structured content if available.
	if result.StructuredContent != nil {
		data, err := json.Marshal(result.StructuredContent)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	// Fall back to parsing text content.
	require.NotEmpty(t, result.Content, "expected at least one content item")
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &m), "failed to parse text content as JSON")
	return m
}
