package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearOASIREnv clears all OASIR_* env vars to isolate tests from the ambient environment.
func clearOASIREnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OASIR_CACHE_ENABLED", "OASIR_CACHE_MAX_SIZE",
		"OASIR_CACHE_TTL", "OASIR_CACHE_SWEEP_INTERVAL",
		"OASIR_INLINE_RESPONSES", "OASIR_MAX_DEPTH", "OASIR_PAYLOAD_MAX_DEPTH",
		"OASIR_LIST_LIMIT", "OASIR_MAX_LIMIT", "OASIR_MAX_INLINE_SIZE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearOASIREnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheTTL)
	assert.Equal(t, 60*time.Second, c.CacheSweepInterval)
	assert.False(t, c.InlineResponses)
	assert.Equal(t, 64, c.MaxDepth)
	assert.Equal(t, 256, c.PayloadMaxDepth)
	assert.Equal(t, 100, c.ListLimit)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearOASIREnv(t)
	t.Setenv("OASIR_CACHE_ENABLED", "false")
	t.Setenv("OASIR_CACHE_MAX_SIZE", "50")
	t.Setenv("OASIR_CACHE_TTL", "30m")
	t.Setenv("OASIR_CACHE_SWEEP_INTERVAL", "30s")
	t.Setenv("OASIR_INLINE_RESPONSES", "true")
	t.Setenv("OASIR_MAX_DEPTH", "16")
	t.Setenv("OASIR_PAYLOAD_MAX_DEPTH", "32")
	t.Setenv("OASIR_LIST_LIMIT", "20")
	t.Setenv("OASIR_MAX_LIMIT", "500")
	t.Setenv("OASIR_MAX_INLINE_SIZE", "5242880")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 30*time.Minute, c.CacheTTL)
	assert.Equal(t, 30*time.Second, c.CacheSweepInterval)
	assert.True(t, c.InlineResponses)
	assert.Equal(t, 16, c.MaxDepth)
	assert.Equal(t, 32, c.PayloadMaxDepth)
	assert.Equal(t, 20, c.ListLimit)
	assert.Equal(t, 500, c.MaxLimit)
	assert.Equal(t, int64(5242880), c.MaxInlineSize)
}

func TestLoadConfig_InvalidValues_UseDefaults(t *testing.T) {
	clearOASIREnv(t)
	t.Setenv("OASIR_CACHE_MAX_SIZE", "banana")
	t.Setenv("OASIR_CACHE_TTL", "not-a-duration")
	t.Setenv("OASIR_CACHE_ENABLED", "maybe")
	t.Setenv("OASIR_MAX_DEPTH", "-5")
	t.Setenv("OASIR_MAX_INLINE_SIZE", "abc")
	t.Setenv("OASIR_MAX_LIMIT", "0")

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheTTL)
	assert.Equal(t, 64, c.MaxDepth)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.Equal(t, 1000, c.MaxLimit)
}

func TestLoadConfig_PartialOverrides(t *testing.T) {
	clearOASIREnv(t)
	t.Setenv("OASIR_LIST_LIMIT", "42")

	c := loadConfig()

	assert.Equal(t, 42, c.ListLimit)
	assert.Equal(t, 15*time.Minute, c.CacheTTL)
	assert.True(t, c.CacheEnabled)
}
