// Package issues provides the diagnostic type reported for operations the
// assembler skipped.
package issues

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasir/internal/severity"
)

// Issue describes one non-fatal problem found while assembling a document.
type Issue struct {
	// Path is the dotted location of the raw node (e.g. "paths./pets.post.requestBody")
	Path string `json:"path"`
	// Message is a human-readable description of the issue
	Message string `json:"message"`
	// Severity indicates the severity level of the issue
	Severity severity.Severity `json:"severity"`
	// Method is the lower-case HTTP method of the affected operation, if any
	Method string `json:"method,omitempty"`
	// Endpoint is the path template of the affected operation, if any
	Endpoint string `json:"endpoint,omitempty"`
	// OperationID is the raw operationId of the affected operation, if any
	OperationID string `json:"operationId,omitempty"`
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	where := i.Path
	if op := i.operation(); op != "" {
		where = fmt.Sprintf("%s (%s)", i.Path, op)
	}
	return fmt.Sprintf("%s %s: %s", symbol, where, i.Message)
}

func (i Issue) operation() string {
	switch {
	case i.OperationID != "":
		return "operationId: " + i.OperationID
	case i.Method != "":
		return strings.ToUpper(i.Method) + " " + i.Endpoint
	default:
		return ""
	}
}

// FormatPath joins path segments with dots.
func FormatPath(segments ...string) string {
	return strings.Join(segments, ".")
}

// Count returns how many issues have exactly the given severity.
func Count(list []Issue, s severity.Severity) int {
	n := 0
	for _, i := range list {
		if i.Severity == s {
			n++
		}
	}
	return n
}
