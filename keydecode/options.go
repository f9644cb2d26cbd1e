package keydecode

import (
	"github.com/erraggy/oasir/oaserrors"
	"github.com/erraggy/oasir/parser"
)

// DefaultMaxDepth bounds payload nesting.
const DefaultMaxDepth = 256

// DefaultMaxSize bounds payload size in bytes (10 MiB).
const DefaultMaxSize int64 = 10 * 1024 * 1024

// Option is a function that configures a Decoder
type Option func(*config) error

type config struct {
	logger   parser.Logger
	maxDepth int
	maxSize  int64
}

// WithLogger sets a structured logger. Unknown keys are reported on it at
// warn level, once per key per call.
func WithLogger(l parser.Logger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}

// WithMaxDepth sets how deeply payloads may nest.
// Default: 256
func WithMaxDepth(depth int) Option {
	return func(c *config) error {
		if depth <= 0 {
			return &oaserrors.ConfigError{Option: "max depth", Value: depth, Message: "must be positive"}
		}
		c.maxDepth = depth
		return nil
	}
}

// WithMaxSize sets the largest payload, in bytes, the decoder accepts.
// Default: 10 MiB
func WithMaxSize(size int64) Option {
	return func(c *config) error {
		if size <= 0 {
			return &oaserrors.ConfigError{Option: "max size", Value: size, Message: "must be positive"}
		}
		c.maxSize = size
		return nil
	}
}
