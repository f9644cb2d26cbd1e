package normalizer

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/erraggy/oasir/parser"
)

// FormatExample renders an example value as a string. Strings are returned
// unchanged, other scalars use their default formatting, and mappings and
// sequences are encoded as compact JSON with keys in source order. A nil
// value renders as "".
func FormatExample(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case *parser.Map, []any:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(parser.Plain(t))
		}
		return string(data)
	default:
		return fmt.Sprint(t)
	}
}
