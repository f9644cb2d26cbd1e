package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/oasir/assembler"
	"github.com/erraggy/oasir/keydecode"
	"github.com/erraggy/oasir/parser"
)

// specInput represents the two ways an OAS document can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OAS file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OAS document content (JSON or YAML)"`
}

// specState is everything the tools derive from one document. It is shared
// between calls and must be treated as read-only.
type specState struct {
	parsed   *parser.ParseResult
	result   *assembler.Result
	universe *keydecode.Universe
}

// cacheEntry holds a cached spec state with LRU ordering and TTL expiry.
type cacheEntry struct {
	state     *specState
	insertAt  time.Time
	expiresAt time.Time
}

// specCacheStore provides a session-scoped cache of assembled specs.
// File inputs are keyed by (absolutePath, modTime). Content inputs are keyed
// by a SHA-256 hash. A background sweeper removes expired entries.
type specCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var specCache = &specCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached state or nil. Expired entries are lazily removed.
func (c *specCacheStore) get(key string) *specState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		// Touch entry for LRU.
		e.insertAt = time.Now()
		return e.state
	}
	return nil
}

// putWithTTL stores a state with a specific TTL, evicting the least recently
// used entry if at capacity.
func (c *specCacheStore) putWithTTL(key string, state *specState, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{state: state, insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *specCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a background goroutine that periodically removes
// expired entries. Only the first call spawns a sweeper. It stops when ctx
// is cancelled.
func (c *specCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *specCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *specCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// assembleSettings are the assembly options a tool call may vary. They are
// part of the cache key.
type assembleSettings struct {
	InlineResponses bool
}

func defaultSettings() assembleSettings {
	return assembleSettings{InlineResponses: cfg.InlineResponses}
}

// makeCacheKey creates a cache key for the given spec input, or "" when the
// input cannot be cached.
func makeCacheKey(s specInput, settings assembleSettings) string {
	suffix := fmt.Sprintf("inline=%t", settings.InlineResponses)
	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d:%s", absPath, info.ModTime().UnixNano(), suffix)
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return fmt.Sprintf("content:%s:%s", hex.EncodeToString(h[:]), suffix)
	default:
		return ""
	}
}

// resolve loads and assembles the document from whichever input was
// provided, using the cache when enabled.
func (s specInput) resolve(settings assembleSettings) (*specState, error) {
	count := 0
	if s.File != "" {
		count++
	}
	if s.Content != "" {
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file or content must be provided (got %d)", count)
	}

	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASIR_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}

	var key string
	if cfg.CacheEnabled {
		key = makeCacheKey(s, settings)
	}
	if key != "" {
		if cached := specCache.get(key); cached != nil {
			return cached, nil
		}
	}

	log := parser.NewSlogAdapter(slog.Default())
	parseOpts := []parser.Option{parser.WithLogger(log)}
	if s.File != "" {
		parseOpts = append(parseOpts, parser.WithFilePath(s.File))
	} else {
		parseOpts = append(parseOpts, parser.WithReader(strings.NewReader(s.Content)))
	}
	parsed, err := parser.ParseWithOptions(parseOpts...)
	if err != nil {
		return nil, err
	}

	result, err := assembler.AssembleWithOptions(
		assembler.WithParsed(parsed),
		assembler.WithInlineResponses(settings.InlineResponses),
		assembler.WithMaxDepth(cfg.MaxDepth),
		assembler.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	state := &specState{
		parsed:   parsed,
		result:   result,
		universe: keydecode.UniverseFromDocumentation(result.Documentation),
	}
	if key != "" {
		specCache.putWithTTL(key, state, cfg.CacheTTL)
	}
	return state, nil
}
