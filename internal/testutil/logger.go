package testutil

import (
	"sync"

	"github.com/erraggy/oasir/parser"
)

// LogEntry is one call recorded by a CaptureLogger.
type LogEntry struct {
	Level string
	Msg   string
	Attrs []any
}

// Attr returns the value logged under key.
func (e LogEntry) Attr(key string) (any, bool) {
	for i := 0; i+1 < len(e.Attrs); i += 2 {
		if k, ok := e.Attrs[i].(string); ok && k == key {
			return e.Attrs[i+1], true
		}
	}
	return nil, false
}

// CaptureLogger records every call for later assertions. It is safe for
// concurrent use; loggers returned by With share the same record.
type CaptureLogger struct {
	mu      *sync.Mutex
	entries *[]LogEntry
	attrs   []any
}

var _ parser.Logger = (*CaptureLogger)(nil)

// NewCaptureLogger returns an empty CaptureLogger.
func NewCaptureLogger() *CaptureLogger {
	return &CaptureLogger{mu: &sync.Mutex{}, entries: &[]LogEntry{}}
}

func (c *CaptureLogger) record(level, msg string, attrs []any) {
	all := make([]any, 0, len(c.attrs)+len(attrs))
	all = append(all, c.attrs...)
	all = append(all, attrs...)

	c.mu.Lock()
	defer c.mu.Unlock()
	*c.entries = append(*c.entries, LogEntry{Level: level, Msg: msg, Attrs: all})
}

func (c *CaptureLogger) Debug(msg string, attrs ...any) { c.record("debug", msg, attrs) }
func (c *CaptureLogger) Info(msg string, attrs ...any)  { c.record("info", msg, attrs) }
func (c *CaptureLogger) Warn(msg string, attrs ...any)  { c.record("warn", msg, attrs) }
func (c *CaptureLogger) Error(msg string, attrs ...any) { c.record("error", msg, attrs) }

// With returns a logger that prefixes attrs to every entry.
func (c *CaptureLogger) With(attrs ...any) parser.Logger {
	next := &CaptureLogger{mu: c.mu, entries: c.entries}
	next.attrs = append(append([]any{}, c.attrs...), attrs...)
	return next
}

// Entries returns the recorded entries at level, or all entries when level
// is "".
func (c *CaptureLogger) Entries(level string) []LogEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []LogEntry
	for _, e := range *c.entries {
		if level == "" || e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries at level carry msg.
func (c *CaptureLogger) Count(level, msg string) int {
	n := 0
	for _, e := range c.Entries(level) {
		if e.Msg == msg {
			n++
		}
	}
	return n
}
