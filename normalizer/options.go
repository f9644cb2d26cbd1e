package normalizer

import (
	"github.com/erraggy/oasir/oaserrors"
	"github.com/erraggy/oasir/parser"
)

const (
	// DefaultSchemaPrefix is the $ref prefix that names a component.
	DefaultSchemaPrefix = "#/components/schemas/"
	// DefaultMaxDepth bounds schema nesting.
	DefaultMaxDepth = 64
)

// Option is a function that configures a Normalizer
type Option func(*config) error

type config struct {
	schemaPrefix string
	maxDepth     int
	logger       parser.Logger
}

// WithSchemaPrefix sets the $ref prefix stripped to obtain component names.
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

// WithMaxDepth sets how deeply schemas may nest before normalization fails
// with a ResourceLimitError.
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

// WithLogger sets a structured logger for debug output.
func WithLogger(l parser.Logger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}
