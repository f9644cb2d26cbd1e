package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/oasir"
	"github.com/erraggy/oasir/internal/cliutil"
)

// VersionInfo is the structured output of the version command.
type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildTime string `json:"build_time" yaml:"build_time"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rootOpts.Format != FormatText {
				return OutputStructured(cmd.OutOrStdout(), VersionInfo{
					Version:   oasir.Version(),
					Commit:    oasir.Commit(),
					BuildTime: oasir.BuildTime(),
					GoVersion: oasir.GoVersion(),
				}, rootOpts.Format)
			}
			cliutil.Writef(cmd.OutOrStdout(), "oasir %s\n%s\n", oasir.Version(), oasir.BuildInfo())
			return nil
		},
	}
}
