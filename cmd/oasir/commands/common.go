package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/erraggy/oasir/assembler"
	"github.com/erraggy/oasir/internal/cliutil"
	"github.com/erraggy/oasir/internal/env"
	"github.com/erraggy/oasir/parser"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data to w in the given format (json or yaml).
func OutputStructured(w io.Writer, data any, format string) error {
	switch format {
	case FormatJSON:
		return cliutil.WriteJSON(w, data)
	case FormatYAML:
		return cliutil.WriteYAML(w, data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}
}

// specFlags are the assembly flags shared by every command that reads a
// document.
type specFlags struct {
	inlineResponses bool
	maxDepth        int
}

func addSpecFlags(cmd *cobra.Command) *specFlags {
	f := &specFlags{}
	cmd.Flags().BoolVar(&f.inlineResponses, "inline-responses", env.Bool("OASIR_INLINE_RESPONSES", false),
		"model inline response schemas instead of rejecting them")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", env.Int("OASIR_MAX_DEPTH", 64), "schema nesting limit")
	return f
}

// loadSpec reads and assembles the document at specPath, or stdin for "-".
func loadSpec(cmd *cobra.Command, specPath string, flags *specFlags, log parser.Logger) (*assembler.Result, error) {
	opts := []assembler.Option{
		assembler.WithInlineResponses(flags.inlineResponses),
		assembler.WithMaxDepth(flags.maxDepth),
		assembler.WithLogger(log),
	}
	if specPath == StdinFilePath {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		opts = append(opts, assembler.WithBytes(data))
	} else {
		opts = append(opts, assembler.WithFilePath(specPath))
	}
	return assembler.AssembleWithOptions(opts...)
}

// ValidateOutputPath checks if the output path is safe to write to
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	for _, inputPath := range inputPaths {
		if inputPath == StdinFilePath {
			continue
		}
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}
	return RejectSymlinkOutput(filepath.Clean(outputPath))
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}
