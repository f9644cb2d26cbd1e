package mcpserver

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasir/ir"
)

type inspectInput struct {
	Spec            specInput `json:"spec"                       jsonschema:"The OAS document to inspect"`
	InlineResponses *bool     `json:"inline_responses,omitempty" jsonschema:"Model inline response schemas (default from OASIR_INLINE_RESPONSES)"`
	Group           string    `json:"group,omitempty"            jsonschema:"Only list operations in this group (first tag), case-insensitive"`
	Component       string    `json:"component,omitempty"        jsonschema:"Only list components whose name matches this glob"`
	GroupBy         string    `json:"group_by,omitempty"         jsonschema:"Count operations by group or method instead of listing them"`
	Offset          int       `json:"offset,omitempty"           jsonschema:"Skip the first N operations"`
	Limit           int       `json:"limit,omitempty"            jsonschema:"Maximum number of operations to return"`
}

type componentSummary struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Alias       string `json:"alias,omitempty"`
	Required    int    `json:"required"`
	Optional    int    `json:"optional"`
	Description string `json:"description,omitempty"`
}

type operationSummary struct {
	Name        string   `json:"name"`
	OperationID string   `json:"operation_id"`
	Method      string   `json:"method"`
	Endpoint    string   `json:"endpoint"`
	Group       string   `json:"group,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Deprecated  bool     `json:"deprecated,omitempty"`
	Arguments   []string `json:"arguments,omitempty"`
	Request     string   `json:"request,omitempty"`
	Response    string   `json:"response"`
}

type issueSummary struct {
	Path        string `json:"path"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	Method      string `json:"method,omitempty"`
	OperationID string `json:"operation_id,omitempty"`
}

type inspectStats struct {
	Components int    `json:"components"`
	Operations int    `json:"operations"`
	Skipped    int    `json:"skipped"`
	Duration   string `json:"duration"`
}

type inspectOutput struct {
	Version        string             `json:"version,omitempty"`
	Format         string             `json:"format"`
	Components     []componentSummary `json:"components,omitempty"`
	OperationCount int                `json:"operation_count"`
	Returned       int                `json:"returned"`
	Operations     []operationSummary `json:"operations,omitempty"`
	Groups         []groupCount       `json:"groups,omitempty"`
	Issues         []issueSummary     `json:"issues,omitempty"`
	Stats          inspectStats       `json:"stats"`
}

func handleInspect(_ context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspectOutput, error) {
	if err := validateGroupBy(input.GroupBy, []string{"group", "method"}); err != nil {
		return errResult(err), inspectOutput{}, nil
	}
	if err := validateGlobPattern(input.Component); err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	state, err := input.Spec.resolve(settingsFrom(input.InlineResponses))
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}
	doc := state.result.Documentation
	stats := state.result.Stats

	output := inspectOutput{
		Version: state.parsed.Version,
		Format:  string(state.parsed.SourceFormat),
		Stats: inspectStats{
			Components: stats.Components,
			Operations: stats.Operations,
			Skipped:    stats.Skipped,
			Duration:   stats.Duration.String(),
		},
	}

	for _, cs := range doc.Components.Components() {
		if matchGlob(input.Component, cs.Name) {
			output.Components = append(output.Components, summarizeComponent(cs))
		}
	}

	var ops []ir.Operation
	for _, op := range doc.Operations {
		if input.Group == "" || strings.EqualFold(input.Group, op.Group) {
			ops = append(ops, op)
		}
	}
	output.OperationCount = len(ops)

	switch strings.ToLower(input.GroupBy) {
	case "group":
		output.Groups = groupAndSort(ops, func(op ir.Operation) string { return op.Group })
	case "method":
		output.Groups = groupAndSort(ops, func(op ir.Operation) string { return string(op.Method) })
	default:
		page := paginate(ops, input.Offset, input.Limit)
		output.Operations = makeSlice[operationSummary](len(page))
		for _, op := range page {
			output.Operations = append(output.Operations, summarizeOperation(op))
		}
		output.Returned = len(page)
	}

	output.Issues = makeSlice[issueSummary](len(state.result.Issues))
	for _, iss := range state.result.Issues {
		output.Issues = append(output.Issues, issueSummary{
			Path:        iss.Path,
			Severity:    iss.Severity.String(),
			Message:     iss.Message,
			Method:      iss.Method,
			OperationID: iss.OperationID,
		})
	}

	return nil, output, nil
}

func settingsFrom(inline *bool) assembleSettings {
	s := defaultSettings()
	if inline != nil {
		s.InlineResponses = *inline
	}
	return s
}

func summarizeComponent(cs ir.ComponentSchema) componentSummary {
	out := componentSummary{
		Name:        cs.Name,
		Kind:        "record",
		Required:    len(cs.Required),
		Optional:    len(cs.Optional),
		Description: cs.Description,
	}
	if cs.IsAlias() {
		out.Kind = "alias"
		out.Alias = cs.Alias.String()
	}
	return out
}

func summarizeOperation(op ir.Operation) operationSummary {
	out := operationSummary{
		Name:        op.Name,
		OperationID: op.OperationID,
		Method:      string(op.Method),
		Endpoint:    op.Endpoint,
		Group:       op.Group,
		Summary:     op.Summary,
		Deprecated:  op.Deprecated,
	}
	for _, p := range op.Arguments {
		arg := p.Location + ":" + p.Name
		if p.Required {
			arg += "!"
		}
		out.Arguments = append(out.Arguments, arg)
	}
	if rb := op.RequestBody; rb != nil {
		out.Request = "inline"
		if rb.Ref != "" {
			out.Request = ir.ComponentRef{Name: rb.Ref}.String()
		}
	}
	if op.ResponseType != nil {
		out.Response = op.ResponseType.String()
	}
	return out
}
