// Package commands provides the cobra command tree of the oasir CLI.
package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/erraggy/oasir/internal/env"
	"github.com/erraggy/oasir/parser"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string
}

// NewRootCommand creates the root command of the oasir CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "oasir",
		Short: "Turn OpenAPI documents into a typed IR and Go types",
		Long: `oasir assembles an OpenAPI document into a normalized intermediate
representation of its component types and operations, renders Go type
declarations from it, and decodes response payloads against the field
names it defines.

Environment:
  OASIR_LOG_LEVEL         debug|info|warn|error (default warn)
  OASIR_INLINE_RESPONSES  model inline response schemas (default false)
  OASIR_MAX_DEPTH         schema nesting limit (default 64)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return ValidateOutputFormat(opts.Format)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log debug diagnostics to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (text|json|yaml)")

	cmd.AddCommand(NewInspectCommand(opts))
	cmd.AddCommand(NewTypesCommand(opts))
	cmd.AddCommand(NewDecodeCommand(opts))
	cmd.AddCommand(NewMCPCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// Logger returns a text logger on w. --verbose forces debug level;
// otherwise OASIR_LOG_LEVEL applies.
func (o *RootOptions) Logger(w io.Writer) parser.Logger {
	level := env.Level("OASIR_LOG_LEVEL", slog.LevelWarn)
	if o.Verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return parser.NewSlogAdapter(slog.New(handler))
}
