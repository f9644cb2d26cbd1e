package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasir/emitter"
	"github.com/erraggy/oasir/parser"
)

type emitTypesInput struct {
	Spec            specInput `json:"spec"                       jsonschema:"The OAS document to render"`
	InlineResponses *bool     `json:"inline_responses,omitempty" jsonschema:"Model inline response schemas (default from OASIR_INLINE_RESPONSES)"`
	Package         string    `json:"package,omitempty"          jsonschema:"Go package name (default api)"`
	Pointers        *bool     `json:"pointers,omitempty"         jsonschema:"Render optional fields as pointers (default true)"`
	Operations      *bool     `json:"operations,omitempty"       jsonschema:"Render the Operations metadata table (default true)"`
	Output          string    `json:"output,omitempty"           jsonschema:"Write the file to this path instead of returning the source"`
}

type emitTypesOutput struct {
	Package    string `json:"package"`
	Components int    `json:"components"`
	Operations int    `json:"operations"`
	Fallbacks  int    `json:"fallbacks"`
	Size       int    `json:"size"`
	WrittenTo  string `json:"written_to,omitempty"`
	Source     string `json:"source,omitempty"`
}

func handleEmitTypes(_ context.Context, _ *mcp.CallToolRequest, input emitTypesInput) (*mcp.CallToolResult, emitTypesOutput, error) {
	var printerOpts []emitter.PrinterOption
	pkg := emitter.DefaultPackageName
	if input.Package != "" {
		pkg = input.Package
		printerOpts = append(printerOpts, emitter.WithPackageName(pkg))
	}
	if input.Pointers != nil {
		printerOpts = append(printerOpts, emitter.WithPointers(*input.Pointers))
	}
	if input.Operations != nil {
		printerOpts = append(printerOpts, emitter.WithOperations(*input.Operations))
	}
	printer, err := emitter.NewPrinter(printerOpts...)
	if err != nil {
		return errResult(err), emitTypesOutput{}, nil
	}

	state, err := input.Spec.resolve(settingsFrom(input.InlineResponses))
	if err != nil {
		return errResult(err), emitTypesOutput{}, nil
	}

	log := &fallbackCounter{Logger: parser.NewSlogAdapter(slog.Default())}
	em, err := emitter.New(emitter.WithLogger(log))
	if err != nil {
		return errResult(err), emitTypesOutput{}, nil
	}
	file := em.EmitDocumentation(state.result.Documentation)

	src, err := printer.Print(file)
	if err != nil {
		return errResult(err), emitTypesOutput{}, nil
	}

	output := emitTypesOutput{
		Package:    pkg,
		Components: len(file.Components),
		Operations: len(file.Operations),
		Fallbacks:  log.warnings,
		Size:       len(src),
	}
	if input.Output == "" {
		output.Source = string(src)
		return nil, output, nil
	}

	path := filepath.Clean(input.Output)
	if err := os.WriteFile(path, src, 0o600); err != nil {
		return errResult(fmt.Errorf("writing output: %w", err)), emitTypesOutput{}, nil
	}
	output.WrittenTo = path
	return nil, output, nil
}

// fallbackCounter counts warnings while forwarding every record to Logger.
type fallbackCounter struct {
	parser.Logger
	warnings int
}

func (c *fallbackCounter) Warn(msg string, attrs ...any) {
	c.warnings++
	c.Logger.Warn(msg, attrs...)
}
