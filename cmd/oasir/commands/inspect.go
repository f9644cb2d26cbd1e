package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/erraggy/oasir/assembler"
	"github.com/erraggy/oasir/internal/cliutil"
	"github.com/erraggy/oasir/internal/issues"
	"github.com/erraggy/oasir/ir"
)

// InspectReport is the structured output of the inspect command.
type InspectReport struct {
	Source     string            `json:"source" yaml:"source"`
	Components []ComponentReport `json:"components" yaml:"components"`
	Operations []OperationReport `json:"operations" yaml:"operations"`
	Skipped    []issues.Issue    `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Stats      assembler.Stats   `json:"stats" yaml:"stats"`
}

// ComponentReport summarizes one component.
type ComponentReport struct {
	Name     string   `json:"name" yaml:"name"`
	Alias    string   `json:"alias,omitempty" yaml:"alias,omitempty"`
	Required []string `json:"required,omitempty" yaml:"required,omitempty"`
	Optional []string `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// OperationReport summarizes one modeled operation.
type OperationReport struct {
	Name       string `json:"name" yaml:"name"`
	Method     string `json:"method" yaml:"method"`
	Endpoint   string `json:"endpoint" yaml:"endpoint"`
	Group      string `json:"group" yaml:"group"`
	Request    string `json:"request,omitempty" yaml:"request,omitempty"`
	Response   string `json:"response" yaml:"response"`
	Deprecated bool   `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	var flags *specFlags
	cmd := &cobra.Command{
		Use:   "inspect <file|->",
		Short: "Summarize the components and operations of a document",
		Long: `Assemble an OpenAPI document and print its components, the operations
that were modeled, and the operations that were skipped with the reason.`,
		Example: `  oasir inspect openapi.yaml
  oasir inspect --format json openapi.yaml
  cat openapi.yaml | oasir inspect -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := rootOpts.Logger(cmd.ErrOrStderr())
			result, err := loadSpec(cmd, args[0], flags, log)
			if err != nil {
				return err
			}
			report := buildInspectReport(args[0], result)
			if rootOpts.Format != FormatText {
				return OutputStructured(cmd.OutOrStdout(), report, rootOpts.Format)
			}
			writeInspectText(cmd.OutOrStdout(), report)
			return nil
		},
	}
	flags = addSpecFlags(cmd)
	return cmd
}

func buildInspectReport(source string, result *assembler.Result) *InspectReport {
	doc := result.Documentation
	report := &InspectReport{
		Source:     source,
		Components: make([]ComponentReport, 0, doc.Components.Len()),
		Operations: make([]OperationReport, 0, len(doc.Operations)),
		Skipped:    result.Issues,
		Stats:      result.Stats,
	}
	for _, cs := range doc.Components.Components() {
		c := ComponentReport{Name: cs.Name}
		if cs.IsAlias() {
			c.Alias = cs.Alias.String()
		}
		for _, p := range cs.Required {
			c.Required = append(c.Required, p.Name)
		}
		for _, p := range cs.Optional {
			c.Optional = append(c.Optional, p.Name)
		}
		report.Components = append(report.Components, c)
	}
	for _, op := range doc.Operations {
		report.Operations = append(report.Operations, operationReport(op))
	}
	return report
}

func operationReport(op ir.Operation) OperationReport {
	r := OperationReport{
		Name:       op.Name,
		Method:     string(op.Method),
		Endpoint:   op.Endpoint,
		Group:      op.Group,
		Deprecated: op.Deprecated,
	}
	if rb := op.RequestBody; rb != nil {
		r.Request = "inline"
		if rb.Ref != "" {
			r.Request = ir.ComponentRef{Name: rb.Ref}.String()
		}
	}
	if op.ResponseType != nil {
		r.Response = op.ResponseType.String()
	}
	return r
}

func writeInspectText(w io.Writer, r *InspectReport) {
	cliutil.Writef(w, "Source: %s\n", r.Source)
	cliutil.Writef(w, "Components: %d\n", r.Stats.Components)
	cliutil.Writef(w, "Operations: %d (%d skipped)\n", r.Stats.Operations, r.Stats.Skipped)

	if len(r.Components) > 0 {
		cliutil.Writef(w, "\nComponents:\n")
		for _, c := range r.Components {
			if c.Alias != "" {
				cliutil.Writef(w, "  %s = %s\n", c.Name, c.Alias)
				continue
			}
			cliutil.Writef(w, "  %s {%s}\n", c.Name, fieldList(c))
		}
	}

	if len(r.Operations) > 0 {
		cliutil.Writef(w, "\nOperations:\n")
		for _, op := range r.Operations {
			line := fmt.Sprintf("  %-4s %s  %s", op.Method, op.Endpoint, op.Name)
			if op.Request != "" {
				line += "(" + op.Request + ")"
			}
			line += " -> " + op.Response
			if op.Deprecated {
				line += " [deprecated]"
			}
			cliutil.Writef(w, "%s\n", line)
		}
	}

	if len(r.Skipped) > 0 {
		cliutil.Writef(w, "\nSkipped:\n")
		for _, iss := range r.Skipped {
			cliutil.Writef(w, "  %s\n", iss.String())
		}
	}
}

func fieldList(c ComponentReport) string {
	fields := make([]string, 0, len(c.Required)+len(c.Optional))
	fields = append(fields, c.Required...)
	for _, name := range c.Optional {
		fields = append(fields, name+"?")
	}
	return strings.Join(fields, ", ")
}
