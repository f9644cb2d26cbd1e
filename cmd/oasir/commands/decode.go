package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/erraggy/oasir/internal/cliutil"
	"github.com/erraggy/oasir/keydecode"
)

// DecodeReport is the structured output of the decode command.
type DecodeReport struct {
	Value       any      `json:"value" yaml:"value"`
	UnknownKeys []string `json:"unknown_keys,omitempty" yaml:"unknown_keys,omitempty"`
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		strict   bool
		maxDepth int
		spec     *specFlags
	)
	cmd := &cobra.Command{
		Use:   "decode <spec> <payload.json|->",
		Short: "Decode a JSON payload against the field names of a document",
		Long: `Decode a JSON payload, resolving every object key against the closed set
of property and parameter names the document defines. Keys outside that
set are kept, logged once per key as a warning, and listed in the output.
Use --strict to fail when any are found.`,
		Example: `  oasir decode openapi.yaml response.json
  curl -s https://api.example.com/models | oasir decode --strict openapi.yaml -`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == StdinFilePath && args[1] == StdinFilePath {
				return fmt.Errorf("the document and the payload cannot both be read from stdin")
			}
			log := rootOpts.Logger(cmd.ErrOrStderr())
			result, err := loadSpec(cmd, args[0], spec, log)
			if err != nil {
				return err
			}

			dec, err := keydecode.NewDecoder(
				keydecode.UniverseFromDocumentation(result.Documentation),
				keydecode.WithMaxDepth(maxDepth),
				keydecode.WithLogger(log),
			)
			if err != nil {
				return err
			}

			var payload io.Reader
			if args[1] == StdinFilePath {
				payload = cmd.InOrStdin()
			} else {
				f, err := os.Open(args[1])
				if err != nil {
					return fmt.Errorf("opening payload: %w", err)
				}
				defer func() { _ = f.Close() }()
				payload = f
			}

			decoded, err := dec.DecodeReader(payload)
			if err != nil {
				return err
			}

			report := DecodeReport{Value: decoded.Value, UnknownKeys: decoded.UnknownKeys}
			if rootOpts.Format == FormatText {
				if err := cliutil.WriteJSON(cmd.OutOrStdout(), report.Value); err != nil {
					return err
				}
			} else if err := OutputStructured(cmd.OutOrStdout(), report, rootOpts.Format); err != nil {
				return err
			}

			if strict && len(decoded.UnknownKeys) > 0 {
				return fmt.Errorf("payload has %d unknown key(s): %s",
					len(decoded.UnknownKeys), strings.Join(decoded.UnknownKeys, ", "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when the payload has keys the document does not define")
	cmd.Flags().IntVar(&maxDepth, "payload-max-depth", keydecode.DefaultMaxDepth, "payload nesting limit")
	spec = addSpecFlags(cmd)
	return cmd
}
