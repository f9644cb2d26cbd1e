// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasir capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasir"
)

const serverInstructions = `oasir MCP server: assembles OpenAPI documents into a typed IR, renders Go types from it, and decodes response payloads against the field names it knows.

Configuration: All defaults are configurable via OASIR_* environment variables set in your MCP client config.

Key settings:
- OASIR_INLINE_RESPONSES (default: false) - model inline response schemas instead of rejecting them
- OASIR_MAX_DEPTH (default: 64) - schema nesting limit
- OASIR_CACHE_TTL (default: 15m) - cache TTL for assembled specs
- OASIR_CACHE_MAX_SIZE (default: 10) - number of cached specs
- OASIR_CACHE_ENABLED (default: true) - disable spec caching entirely
- OASIR_LIST_LIMIT (default: 100) - default page size for inspect
- OASIR_MAX_INLINE_SIZE (default: 10MiB) - limit for inline content and payloads

Caching: Assembled specs are cached per session. File entries use path+mtime as key (auto-invalidated on change); inline content is keyed by its hash. A background sweeper removes expired entries.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	return RunTransport(ctx, &mcp.StdioTransport{})
}

// RunTransport serves on t instead of stdio.
func RunTransport(ctx context.Context, t mcp.Transport) error {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}
	slog.Debug("starting MCP server", "server", oasir.UserAgent(), "cache", cfg.CacheEnabled)
	return newServer().Run(ctx, t)
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasir", Version: oasir.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Assemble an OpenAPI document and summarize the result: components (record or alias, with required and optional counts), modeled operations (name, method, endpoint, group, request and response types), operations that were skipped and why, and assembly stats. Filter operations by group and components by a glob on their name. Use group_by (group or method) to get distribution counts. Use offset/limit to page through operations.",
	}, handleInspect)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "emit_types",
		Description: "Render Go type declarations for an OpenAPI document: one struct per object component with json tags, named types for other components, and an Operations metadata table. Set package to choose the package name (default api). Set output to write the file to disk instead of returning the source inline.",
	}, handleEmitTypes)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "decode_payload",
		Description: "Decode a JSON payload against the closed set of field names known to an OpenAPI document. Returns the payload with its key order kept, plus every key the document does not define (each once, in first-seen order). Unknown keys signal drift between a service and its description.",
	}, handleDecodePayload)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// groupCount represents a single group in group_by results.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort groups items by key, sorts by count descending (ties
// broken alphabetically by key), and returns the sorted groups.
func groupAndSort[T any](items []T, keyFn func(T) string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		counts[keyFn(item)]++
	}
	groups := make([]groupCount, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, groupCount{Key: key, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// validateGroupBy checks that group_by is one of allowed.
func validateGroupBy(groupBy string, allowed []string) error {
	if groupBy == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(groupBy, a) {
			return nil
		}
	}
	return fmt.Errorf("invalid group_by value %q; valid values: %s", groupBy, strings.Join(allowed, ", "))
}

// validateGlobPattern checks whether a glob pattern is syntactically valid.
// Call this once before a filter loop so matchGlob never sees an invalid
// pattern at match time.
func validateGlobPattern(pattern string) error {
	if pattern == "" || !strings.ContainsAny(pattern, "*?[") {
		return nil
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return nil
}

// matchGlob reports whether name matches pattern. Patterns without glob
// characters match case-insensitively as a whole.
func matchGlob(pattern, name string) bool {
	if pattern == "" {
		return true
	}
	if !strings.ContainsAny(pattern, "*?[") {
		return strings.EqualFold(pattern, name)
	}
	ok, _ := filepath.Match(pattern, name)
	return ok
}
