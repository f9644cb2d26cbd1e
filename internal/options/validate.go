// Package options provides shared utilities for option validation across packages.
package options

import "fmt"

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources is a variadic list of booleans indicating whether each source is set.
// noSourceMsg is the error message when no source is specified.
// multiSourceMsg is the error message when multiple sources are specified.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	switch n := CountSet(sources...); {
	case n == 0:
		return fmt.Errorf("%s", noSourceMsg)
	case n > 1:
		return fmt.Errorf("%s (got %d)", multiSourceMsg, n)
	}
	return nil
}

// CountSet returns how many of the flags are true.
func CountSet(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
