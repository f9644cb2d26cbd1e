package mcpserver

import (
	"time"

	"github.com/erraggy/oasir/internal/env"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheTTL           time.Duration
	CacheSweepInterval time.Duration

	// Assembly defaults.
	InlineResponses bool
	MaxDepth        int

	// Payload decoding.
	PayloadMaxDepth int

	// Listing defaults for the inspect tool.
	ListLimit int
	MaxLimit  int

	// MaxInlineSize bounds inline spec content and payloads, in bytes.
	MaxInlineSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASIR_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       env.Bool("OASIR_CACHE_ENABLED", true),
		CacheMaxSize:       env.Int("OASIR_CACHE_MAX_SIZE", 10),
		CacheTTL:           env.Duration("OASIR_CACHE_TTL", 15*time.Minute),
		CacheSweepInterval: env.Duration("OASIR_CACHE_SWEEP_INTERVAL", 60*time.Second),
		InlineResponses:    env.Bool("OASIR_INLINE_RESPONSES", false),
		MaxDepth:           env.Int("OASIR_MAX_DEPTH", 64),
		PayloadMaxDepth:    env.Int("OASIR_PAYLOAD_MAX_DEPTH", 256),
		ListLimit:          env.Int("OASIR_LIST_LIMIT", 100),
		MaxLimit:           env.Int("OASIR_MAX_LIMIT", 1000),
		MaxInlineSize:      env.Int64("OASIR_MAX_INLINE_SIZE", 10*1024*1024),
	}
}
