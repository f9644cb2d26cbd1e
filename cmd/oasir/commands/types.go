package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/erraggy/oasir/emitter"
)

// TypesFlags contains flags for the types command
type TypesFlags struct {
	Output       string
	Package      string
	NoPointers   bool
	NoOperations bool
}

// NewTypesCommand creates the types command.
func NewTypesCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &TypesFlags{}
	var spec *specFlags
	cmd := &cobra.Command{
		Use:   "types <file|->",
		Short: "Render Go type declarations for a document",
		Long: `Render one Go declaration per component (structs for object schemas,
named types for the rest) and an Operations table describing every
modeled operation. The source is written to stdout unless --output is set.
The --format flag does not apply.`,
		Example: `  oasir types openapi.yaml
  oasir types -p petstore -o petstore/types.go openapi.yaml
  oasir types --no-pointers --no-operations openapi.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypes(cmd, rootOpts, flags, spec, args[0])
		},
	}
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "write the file here instead of stdout")
	cmd.Flags().StringVarP(&flags.Package, "package", "p", emitter.DefaultPackageName, "Go package name")
	cmd.Flags().BoolVar(&flags.NoPointers, "no-pointers", false, "render optional fields as values instead of pointers")
	cmd.Flags().BoolVar(&flags.NoOperations, "no-operations", false, "omit the Operations table")
	spec = addSpecFlags(cmd)
	return cmd
}

func runTypes(cmd *cobra.Command, rootOpts *RootOptions, flags *TypesFlags, spec *specFlags, specPath string) error {
	printer, err := emitter.NewPrinter(
		emitter.WithPackageName(flags.Package),
		emitter.WithPointers(!flags.NoPointers),
		emitter.WithOperations(!flags.NoOperations),
	)
	if err != nil {
		return err
	}
	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, []string{specPath}); err != nil {
			return err
		}
	}

	log := rootOpts.Logger(cmd.ErrOrStderr())
	result, err := loadSpec(cmd, specPath, spec, log)
	if err != nil {
		return err
	}

	em, err := emitter.New(emitter.WithLogger(log))
	if err != nil {
		return err
	}
	src, err := printer.Print(em.EmitDocumentation(result.Documentation))
	if err != nil {
		return err
	}

	if flags.Output == "" {
		_, err = cmd.OutOrStdout().Write(src)
		return err
	}
	path := filepath.Clean(flags.Output)
	if err := os.WriteFile(path, src, 0o600); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	log.Info("wrote Go types", "path", path, "package", flags.Package, "bytes", len(src))
	return nil
}
