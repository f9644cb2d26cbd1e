package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/oasir/internal/mcpserver"
)

// NewMCPCommand creates the mcp command.
func NewMCPCommand(_ *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the inspect, emit_types and decode_payload tools over stdio (MCP)",
		Long: `Start a Model Context Protocol server on stdin/stdout. Defaults are read
from OASIR_* environment variables; see the server instructions for the list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mcpserver.Run(cmd.Context())
		},
	}
}
