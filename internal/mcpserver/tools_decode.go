package mcpserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasir/keydecode"
	"github.com/erraggy/oasir/parser"
)

type decodePayloadInput struct {
	Spec            specInput `json:"spec"                       jsonschema:"The OAS document whose field names form the known set"`
	InlineResponses *bool     `json:"inline_responses,omitempty" jsonschema:"Model inline response schemas (default from OASIR_INLINE_RESPONSES)"`
	Payload         string    `json:"payload"                    jsonschema:"JSON payload to decode"`
}

type decodePayloadOutput struct {
	Value        any      `json:"value"`
	UnknownKeys  []string `json:"unknown_keys,omitempty"`
	UniverseSize int      `json:"universe_size"`
}

func handleDecodePayload(_ context.Context, _ *mcp.CallToolRequest, input decodePayloadInput) (*mcp.CallToolResult, decodePayloadOutput, error) {
	if int64(len(input.Payload)) > cfg.MaxInlineSize {
		return errResult(fmt.Errorf("payload size %d bytes exceeds maximum %d bytes", len(input.Payload), cfg.MaxInlineSize)), decodePayloadOutput{}, nil
	}

	state, err := input.Spec.resolve(settingsFrom(input.InlineResponses))
	if err != nil {
		return errResult(err), decodePayloadOutput{}, nil
	}

	dec, err := keydecode.NewDecoder(state.universe,
		keydecode.WithMaxDepth(cfg.PayloadMaxDepth),
		keydecode.WithMaxSize(cfg.MaxInlineSize),
		keydecode.WithLogger(parser.NewSlogAdapter(slog.Default())),
	)
	if err != nil {
		return errResult(err), decodePayloadOutput{}, nil
	}

	result, err := dec.DecodeJSON([]byte(input.Payload))
	if err != nil {
		return errResult(err), decodePayloadOutput{}, nil
	}

	return nil, decodePayloadOutput{
		Value:        result.Value,
		UnknownKeys:  result.UnknownKeys,
		UniverseSize: state.universe.Len(),
	}, nil
}
