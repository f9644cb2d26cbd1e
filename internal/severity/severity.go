// Package severity provides severity level constants for diagnostics
// reported while assembling a document.
//
// The levels are ordered from least to most severe:
// Info < Warning < Error
package severity

import "fmt"

// Severity indicates how much an issue matters to the caller.
type Severity int

const (
	// SeverityInfo marks a recognized shape that is intentionally not
	// modeled, such as a DELETE operation.
	SeverityInfo Severity = iota

	// SeverityWarning marks input that was understood but could not be
	// represented, such as a multipart request body. The affected operation
	// is dropped.
	SeverityWarning

	// SeverityError marks input that stopped the run.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity as its lower-case name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Parse converts a level name back into a Severity.
func Parse(name string) (Severity, error) {
	switch name {
	case "info":
		return SeverityInfo, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", name)
	}
}
