package assembler

import (
	"fmt"
	"time"

	"github.com/erraggy/oasir/internal/issues"
	"github.com/erraggy/oasir/ir"
	"github.com/erraggy/oasir/normalizer"
	"github.com/erraggy/oasir/parser"
)

// Assembler turns parsed documents into IR. It holds only configuration
// and is safe for concurrent use.
type Assembler struct {
	norm            *normalizer.Normalizer
	log             parser.Logger
	inlineResponses bool
	contentType     string
}

// New creates an Assembler. Input source options are ignored here; they
// apply only to AssembleWithOptions.
func New(opts ...Option) (*Assembler, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("assembler: invalid options: %w", err)
		}
	}
	return newFromConfig(cfg)
}

func newFromConfig(cfg *config) (*Assembler, error) {
	log := parser.OrNop(cfg.logger)
	norm, err := normalizer.New(
		normalizer.WithSchemaPrefix(cfg.schemaPrefix),
		normalizer.WithMaxDepth(cfg.maxDepth),
		normalizer.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("assembler: %w", err)
	}
	return &Assembler{
		norm:            norm,
		log:             log,
		inlineResponses: cfg.inlineResponses,
		contentType:     cfg.contentType,
	}, nil
}

// Stats summarizes one assembly.
type Stats struct {
	Components int           `json:"components"`
	Operations int           `json:"operations"`
	Skipped    int           `json:"skipped"`
	Duration   time.Duration `json:"duration"`
}

// Result is the outcome of assembling a document.
type Result struct {
	// SourcePath is the document's source path, when known
	SourcePath string
	// Documentation is the assembled IR
	Documentation *ir.Documentation
	// Issues lists every skipped operation, in document order
	Issues []issues.Issue
	// Stats summarizes the run
	Stats Stats
}

// Assemble builds the component registry and then the operations of doc.
func (a *Assembler) Assemble(doc *parser.Map) (*Result, error) {
	start := time.Now()

	reg, err := a.BuildRegistry(doc)
	if err != nil {
		return nil, err
	}
	ops, skipped, err := a.BuildOperations(doc, reg)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Documentation: &ir.Documentation{Components: reg, Operations: ops},
		Issues:        skipped,
		Stats: Stats{
			Components: reg.Len(),
			Operations: len(ops),
			Skipped:    len(skipped),
		},
	}
	result.Stats.Duration = time.Since(start)

	a.log.Debug("assembled document",
		"components", result.Stats.Components,
		"operations", result.Stats.Operations,
		"skipped", result.Stats.Skipped,
		"duration", result.Stats.Duration,
	)
	return result, nil
}

// Assemble builds a Documentation from doc with default settings.
func Assemble(doc *parser.Map) (*ir.Documentation, error) {
	a, err := New()
	if err != nil {
		return nil, err
	}
	result, err := a.Assemble(doc)
	if err != nil {
		return nil, err
	}
	return result.Documentation, nil
}

// AssembleWithOptions loads a document and assembles it.
//
// Example:
//
//	result, err := assembler.AssembleWithOptions(
//	    assembler.WithFilePath("openapi.yaml"),
//	    assembler.WithInlineResponses(true),
//	)
func AssembleWithOptions(opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("assembler: invalid options: %w", err)
		}
	}
	if err := cfg.validateInput(); err != nil {
		return nil, fmt.Errorf("assembler: invalid options: %w", err)
	}

	a, err := newFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	parsed := cfg.parsed
	if parsed == nil {
		popts := []parser.Option{parser.WithLogger(a.log)}
		if cfg.filePath != nil {
			popts = append(popts, parser.WithFilePath(*cfg.filePath))
		} else {
			popts = append(popts, parser.WithBytes(cfg.bytes))
		}
		if parsed, err = parser.ParseWithOptions(popts...); err != nil {
			return nil, err
		}
	}

	result, err := a.Assemble(parsed.Data)
	if err != nil {
		return nil, fmt.Errorf("assembler: %s: %w", parsed.SourcePath, err)
	}
	result.SourcePath = parsed.SourcePath
	return result, nil
}
