package keydecode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/goccy/go-json"

	"github.com/erraggy/oasir/oaserrors"
	"github.com/erraggy/oasir/parser"
)

const unknownKeyMsg = "unknown field in payload"

// Decoder re-keys payloads against a Universe. It keeps no state between
// calls and is safe for concurrent use.
type Decoder struct {
	universe *Universe
	log      parser.Logger
	maxDepth int
	maxSize  int64
}

// NewDecoder creates a Decoder over u.
func NewDecoder(u *Universe, opts ...Option) (*Decoder, error) {
	if u == nil {
		return nil, &oaserrors.ConfigError{Option: "universe", Message: "must not be nil"}
	}
	cfg := &config{maxDepth: DefaultMaxDepth, maxSize: DefaultMaxSize}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("keydecode: invalid options: %w", err)
		}
	}
	return &Decoder{
		universe: u,
		log:      parser.OrNop(cfg.logger),
		maxDepth: cfg.maxDepth,
		maxSize:  cfg.maxSize,
	}, nil
}

// Universe returns the decoder's symbol universe.
func (d *Decoder) Universe() *Universe {
	return d.universe
}

// Result is a decoded payload.
type Result struct {
	// Value is an *Object, []any or scalar.
	Value any
	// UnknownKeys lists keys absent from the universe, each once, in
	// first-seen order.
	UnknownKeys []string
}

// call is the per-call state. Unknown keys are tracked here and never
// added to the universe.
type call struct {
	d       *Decoder
	seen    map[string]bool
	unknown []string
}

func (d *Decoder) newCall() *call {
	return &call{d: d, seen: make(map[string]bool)}
}

func (c *call) key(name string) Key {
	if s, ok := c.d.universe.Lookup(name); ok {
		return Key{Symbol: s, Name: c.d.universe.names[s]}
	}
	if !c.seen[name] {
		c.seen[name] = true
		c.unknown = append(c.unknown, name)
		c.d.log.Warn(unknownKeyMsg, "key", name)
	}
	return Key{Symbol: NoSymbol, Name: name}
}

func (c *call) result(v any) Result {
	return Result{Value: v, UnknownKeys: c.unknown}
}

// Decode re-keys an already decoded value. Maps may be *parser.Map, whose
// order is kept, or map[string]any, whose keys are sorted. Lists recurse and
// scalars pass through unchanged. Decode never fails: unknown keys are
// reported in the result and logged.
func (d *Decoder) Decode(v any) Result {
	c := d.newCall()
	return c.result(c.value(v))
}

func (c *call) value(v any) any {
	switch t := v.(type) {
	case *parser.Map:
		obj := &Object{Fields: make([]Field, 0, t.Len())}
		t.Range(func(k string, v any) bool {
			key := c.key(k)
			obj.Fields = append(obj.Fields, Field{Key: key, Value: c.value(v)})
			return true
		})
		return obj

	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		obj := &Object{Fields: make([]Field, 0, len(t))}
		for _, k := range keys {
			key := c.key(k)
			obj.Fields = append(obj.Fields, Field{Key: key, Value: c.value(t[k])})
		}
		return obj

	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = c.value(e)
		}
		return out

	default:
		return v
	}
}

// DecodeJSON decodes a JSON payload. Object keys keep payload order and
// numbers are json.Number. The payload is validated as a whole before any
// token is read.
func (d *Decoder) DecodeJSON(data []byte) (Result, error) {
	if size := int64(len(data)); size > d.maxSize {
		return Result{}, &oaserrors.ResourceLimitError{
			ResourceType: "payload_size",
			Limit:        d.maxSize,
			Actual:       size,
			Path:         "payload",
		}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Result{}, &oaserrors.ParseError{Path: "payload", Message: "empty payload"}
	}
	// The token stream does not check separators.
	if !json.Valid(data) {
		return Result{}, invalidJSON(nil)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	c := d.newCall()
	tok, err := dec.Token()
	if err != nil {
		return Result{}, invalidJSON(err)
	}
	v, err := c.read(dec, tok, nil)
	if err != nil {
		return Result{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Result{}, &oaserrors.ParseError{Path: "payload", Message: "unexpected data after the top-level value", Cause: err}
	}
	return c.result(v), nil
}

// DecodeReader reads at most the configured payload size from r and
// decodes it with DecodeJSON.
func (d *Decoder) DecodeReader(r io.Reader) (Result, error) {
	data, err := io.ReadAll(io.LimitReader(r, d.maxSize+1))
	if err != nil {
		return Result{}, &oaserrors.ParseError{Path: "payload", Message: "cannot read payload", Cause: err}
	}
	return d.DecodeJSON(data)
}

func invalidJSON(err error) error {
	return &oaserrors.ParseError{Path: "payload", Message: "invalid JSON", Cause: err}
}

// read decodes the value that starts with tok. path holds the keys and
// indexes leading to it.
func (c *call) read(dec *json.Decoder, tok any, path []string) (any, error) {
	delim, ok := tok.(json.Delim)
	if !ok {
		// string, json.Number, bool or nil
		return tok, nil
	}
	if delim != '{' && delim != '[' {
		return nil, invalidJSON(fmt.Errorf("unexpected %q", rune(delim)))
	}
	if len(path) >= c.d.maxDepth {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        int64(c.d.maxDepth),
			Actual:       int64(len(path) + 1),
			Path:         "$" + strings.Join(path, ""),
		}
	}

	if delim == '[' {
		out := []any{}
		for i := 0; ; i++ {
			tok, err := dec.Token()
			if err != nil {
				return nil, invalidJSON(err)
			}
			if d, ok := tok.(json.Delim); ok && d == ']' {
				return out, nil
			}
			v, err := c.read(dec, tok, append(path, fmt.Sprintf("[%d]", i)))
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}

	obj := &Object{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, invalidJSON(err)
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return obj, nil
		}
		name, ok := tok.(string)
		if !ok {
			return nil, invalidJSON(fmt.Errorf("object key must be a string, got %v", tok))
		}
		key := c.key(name)

		tok, err = dec.Token()
		if err != nil {
			return nil, invalidJSON(err)
		}
		v, err := c.read(dec, tok, append(path, "."+name))
		if err != nil {
			return nil, err
		}
		obj.Fields = append(obj.Fields, Field{Key: key, Value: v})
	}
}
