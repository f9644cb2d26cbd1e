package emitter

import (
	"go/token"

	"github.com/erraggy/oasir/oaserrors"
	"github.com/erraggy/oasir/parser"
)

// DefaultPackageName is the package clause written by a Printer.
const DefaultPackageName = "api"

// Option is a function that configures an Emitter
type Option func(*config) error

type config struct {
	logger parser.Logger
}

// WithLogger sets a structured logger. Fallback declarations are reported
// on it at warn level.
func WithLogger(l parser.Logger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}

// PrinterOption is a function that configures a Printer
type PrinterOption func(*printerConfig) error

type printerConfig struct {
	packageName string
	pointers    bool
	operations  bool
}

func defaultPrinterConfig() *printerConfig {
	return &printerConfig{
		packageName: DefaultPackageName,
		pointers:    true,
		operations:  true,
	}
}

// WithPackageName sets the package clause of the printed file.
// Default: "api"
func WithPackageName(name string) PrinterOption {
	return func(c *printerConfig) error {
		if !token.IsIdentifier(name) || name == "_" {
			return &oaserrors.ConfigError{Option: "package name", Value: name, Message: "must be a valid Go identifier"}
		}
		c.packageName = name
		return nil
	}
}

// WithPointers controls whether optional scalar, reference and record
// fields are printed as pointers.
// Default: true
func WithPointers(enabled bool) PrinterOption {
	return func(c *printerConfig) error {
		c.pointers = enabled
		return nil
	}
}

// WithOperations controls whether the Operation type and the Operations
// table are printed.
// Default: true
func WithOperations(enabled bool) PrinterOption {
	return func(c *printerConfig) error {
		c.operations = enabled
		return nil
	}
}
