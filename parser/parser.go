package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/erraggy/oasir/oaserrors"
)

// DefaultMaxFileSize is the largest document the parser reads (10 MiB).
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// Parser loads OpenAPI documents into ordered generic trees.
type Parser struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger

	// MaxFileSize is the maximum document size in bytes.
	// Default: 10 MiB
	MaxFileSize int64
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{MaxFileSize: DefaultMaxFileSize}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	return OrNop(p.Logger)
}

func (p *Parser) maxFileSize() int64 {
	if p.MaxFileSize > 0 {
		return p.MaxFileSize
	}
	return DefaultMaxFileSize
}

// SourceFormat represents the format of the source document
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// DocumentStats counts the parts of a document the assembler consumes.
type DocumentStats struct {
	// SchemaCount is the number of entries under components.schemas
	SchemaCount int
	// PathCount is the number of entries under paths
	PathCount int
	// OperationCount is the number of method entries across all paths
	OperationCount int
}

// ParseResult contains a loaded document and metadata about it.
//
// Callers should treat ParseResult as read-only after parsing; the
// assembler and the MCP server cache and share it.
type ParseResult struct {
	// SourcePath is the path the document was read from. For byte or reader
	// input it is "ParseBytes.yaml" / "ParseReader.json" etc.
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the value of the top-level "openapi" field, if any
	Version string
	// Data is the ordered generic tree of the whole document
	Data *Map
	// LoadTime is the time taken to read and decode the document
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the document
	Stats DocumentStats
}

// Components returns components.schemas, or an empty Map.
func (pr *ParseResult) Components() *Map {
	if m, ok := pr.Data.Lookup("components", "schemas"); ok {
		return m
	}
	return NewMap()
}

// Paths returns the paths object, or an empty Map.
func (pr *ParseResult) Paths() *Map {
	if m, ok := pr.Data.GetMap("paths"); ok {
		return m
	}
	return NewMap()
}

// Parse reads a document from a file path.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	start := time.Now()

	info, err := os.Stat(specPath)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: specPath, Message: "cannot read file", Cause: err}
	}
	if info.Size() > p.maxFileSize() {
		return nil, &oaserrors.ParseError{
			Path:    specPath,
			Message: fmt.Sprintf("file is %s, larger than the %s limit", FormatBytes(info.Size()), FormatBytes(p.maxFileSize())),
		}
	}

	data, err := os.ReadFile(specPath) //nolint:gosec // G304: reading user-supplied spec paths is the purpose of this function
	if err != nil {
		return nil, &oaserrors.ParseError{Path: specPath, Message: "cannot read file", Cause: err}
	}

	format := detectFormatFromPath(specPath)
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}

	result, err := p.parseData(data, specPath, format)
	if err != nil {
		return nil, err
	}
	result.LoadTime = time.Since(start)
	return result, nil
}

// ParseReader reads a document from r.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	start := time.Now()

	data, err := io.ReadAll(io.LimitReader(r, p.maxFileSize()+1))
	if err != nil {
		return nil, &oaserrors.ParseError{Path: "ParseReader", Message: "cannot read input", Cause: err}
	}
	if int64(len(data)) > p.maxFileSize() {
		return nil, &oaserrors.ParseError{
			Path:    "ParseReader",
			Message: fmt.Sprintf("input exceeds the %s limit", FormatBytes(p.maxFileSize())),
		}
	}

	format := detectFormatFromContent(data)
	result, err := p.parseData(data, "ParseReader."+formatExt(format), format)
	if err != nil {
		return nil, err
	}
	result.LoadTime = time.Since(start)
	return result, nil
}

// ParseBytes decodes a document held in memory.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	start := time.Now()

	if int64(len(data)) > p.maxFileSize() {
		return nil, &oaserrors.ParseError{
			Path:    "ParseBytes",
			Message: fmt.Sprintf("input exceeds the %s limit", FormatBytes(p.maxFileSize())),
		}
	}

	format := detectFormatFromContent(data)
	result, err := p.parseData(data, "ParseBytes."+formatExt(format), format)
	if err != nil {
		return nil, err
	}
	result.LoadTime = time.Since(start)
	return result, nil
}

func (p *Parser) parseData(data []byte, sourcePath string, format SourceFormat) (*ParseResult, error) {
	tree, err := UnmarshalMap(data)
	if err != nil {
		var pe *oaserrors.ParseError
		if errors.As(err, &pe) && pe.Path == "" {
			pe.Path = sourcePath
		}
		return nil, err
	}

	result := &ParseResult{
		SourcePath:   sourcePath,
		SourceFormat: format,
		Version:      tree.StringOr("openapi", ""),
		Data:         tree,
		SourceSize:   int64(len(data)),
	}
	result.Stats = collectStats(result)

	p.log().Debug("parsed document",
		"source", sourcePath,
		"format", format,
		"size", FormatBytes(result.SourceSize),
		"schemas", result.Stats.SchemaCount,
		"paths", result.Stats.PathCount,
		"operations", result.Stats.OperationCount,
	)
	if result.Version == "" {
		p.log().Warn("document has no openapi version field", "source", sourcePath)
	}
	return result, nil
}

// httpMethods are the path item keys that denote operations.
var httpMethods = map[string]bool{
	"get": true, "put": true, "post": true, "delete": true,
	"options": true, "head": true, "patch": true, "trace": true,
}

// IsHTTPMethod reports whether a path item key names an operation.
func IsHTTPMethod(key string) bool {
	return httpMethods[key]
}

func collectStats(pr *ParseResult) DocumentStats {
	stats := DocumentStats{SchemaCount: pr.Components().Len()}
	pr.Paths().Range(func(_ string, v any) bool {
		stats.PathCount++
		if item, ok := v.(*Map); ok {
			item.Range(func(k string, _ any) bool {
				if IsHTTPMethod(k) {
					stats.OperationCount++
				}
				return true
			})
		}
		return true
	})
	return stats
}
