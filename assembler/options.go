package assembler

import (
	"github.com/erraggy/oasir/internal/options"
	"github.com/erraggy/oasir/normalizer"
	"github.com/erraggy/oasir/oaserrors"
	"github.com/erraggy/oasir/parser"
)

// DefaultContentType is the request body media type selected first.
const DefaultContentType = "application/json"

// Option is a function that configures an assembly
type Option func(*config) error

type config struct {
	// Input source (exactly one must be set for AssembleWithOptions)
	filePath *string
	bytes    []byte
	parsed   *parser.ParseResult

	schemaPrefix    string
	maxDepth        int
	logger          parser.Logger
	inlineResponses bool
	contentType     string
}

func defaultConfig() *config {
	return &config{
		schemaPrefix: normalizer.DefaultSchemaPrefix,
		maxDepth:     normalizer.DefaultMaxDepth,
		contentType:  DefaultContentType,
	}
}

func (c *config) validateInput() error {
	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithFilePath, WithBytes, or WithParsed)",
		"must specify exactly one input source",
		c.filePath != nil, c.bytes != nil, c.parsed != nil,
	); err != nil {
		return &oaserrors.ConfigError{Option: "input source", Message: err.Error()}
	}
	return nil
}

// WithFilePath specifies a document file as the input source
func WithFilePath(path string) Option {
	return func(c *config) error {
		c.filePath = &path
		return nil
	}
}

// WithBytes specifies document bytes as the input source
func WithBytes(data []byte) Option {
	return func(c *config) error {
		if data == nil {
			data = []byte{}
		}
		c.bytes = data
		return nil
	}
}

// WithParsed specifies an already parsed document as the input source
func WithParsed(result *parser.ParseResult) Option {
	return func(c *config) error {
		if result == nil || result.Data == nil {
			return &oaserrors.ConfigError{Option: "parsed", Message: "parse result cannot be nil"}
		}
		c.parsed = result
		return nil
	}
}

// WithSchemaPrefix sets the $ref prefix that names components.
// Default: "#/components/schemas/"
func WithSchemaPrefix(prefix string) Option {
	return func(c *config) error {
		if prefix == "" {
			return &oaserrors.ConfigError{Option: "schema prefix", Message: "must not be empty"}
		}
		c.schemaPrefix = prefix
		return nil
	}
}

// WithMaxDepth sets the schema nesting limit.
// Default: 64
func WithMaxDepth(depth int) Option {
	return func(c *config) error {
		if depth <= 0 {
			return &oaserrors.ConfigError{Option: "max depth", Value: depth, Message: "must be positive"}
		}
		c.maxDepth = depth
		return nil
	}
}

// WithLogger sets a structured logger. Skipped operations are logged at
// info level.
func WithLogger(l parser.Logger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}

// WithInlineResponses allows success response schemas other than a $ref or
// a bare scalar; they are normalized like any other schema.
// Default: false
func WithInlineResponses(enabled bool) Option {
	return func(c *config) error {
		c.inlineResponses = enabled
		return nil
	}
}

// WithContentType sets the request body media type preferred over other
// JSON media types.
// Default: "application/json"
func WithContentType(mediaType string) Option {
	return func(c *config) error {
		if !IsJSONMediaType(mediaType) {
			return &oaserrors.ConfigError{Option: "content type", Value: mediaType, Message: "must be a JSON media type"}
		}
		c.contentType = mediaType
		return nil
	}
}
