package oaserrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Path:    "/path/to/file.yaml",
			Line:    42,
			Column:  10,
			Message: "invalid syntax",
			Cause:   cause,
		}
		assert.Equal(t, "parse error in /path/to/file.yaml at line 42, column 10: invalid syntax: underlying error", err.Error())
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		assert.Equal(t, "parse error", (&ParseError{}).Error())
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		assert.Same(t, cause, err.Unwrap())
	})

	t.Run("Is matches sentinel", func(t *testing.T) {
		wrapped := fmt.Errorf("loading: %w", &ParseError{Path: "api.yaml"})
		assert.ErrorIs(t, wrapped, ErrParse)
		assert.NotErrorIs(t, wrapped, ErrSchema)
	})
}

func TestSchemaError(t *testing.T) {
	err := &SchemaError{
		Path:    "components.schemas.Pet.properties.tags",
		Shape:   "{items, type=array}",
		Message: "array items must be a mapping",
	}
	assert.Equal(t, "malformed schema at components.schemas.Pet.properties.tags: array items must be a mapping (got {items, type=array})", err.Error())
	assert.Equal(t, "malformed schema", (&SchemaError{}).Error())

	var target *SchemaError
	wrapped := fmt.Errorf("building components: %w", err)
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "components.schemas.Pet.properties.tags", target.Path)
	assert.ErrorIs(t, wrapped, ErrSchema)
}

func TestReferenceError(t *testing.T) {
	err := &ReferenceError{Ref: "#/components/schemas/Missing", Path: "paths./pets.post.requestBody"}
	assert.Equal(t, "reference error: #/components/schemas/Missing at paths./pets.post.requestBody", err.Error())
	assert.ErrorIs(t, err, ErrReference)
	assert.NotErrorIs(t, err, ErrUnsupported)
}

func TestUnsupportedError(t *testing.T) {
	err := &UnsupportedError{
		Path:    "paths./upload.post.requestBody",
		Feature: "content type multipart/form-data",
		Detail:  "only structured JSON bodies are modeled",
	}
	assert.Equal(t, "unsupported content type multipart/form-data at paths./upload.post.requestBody: only structured JSON bodies are modeled", err.Error())
	assert.ErrorIs(t, fmt.Errorf("op: %w", err), ErrUnsupported)
	assert.Equal(t, "unsupported", (&UnsupportedError{}).Error())
}

func TestResourceLimitError(t *testing.T) {
	tests := []struct {
		name string
		err  *ResourceLimitError
		want string
	}{
		{
			name: "all fields",
			err:  &ResourceLimitError{ResourceType: "nesting_depth", Limit: 64, Actual: 65, Path: "components.schemas.Deep"},
			want: "resource limit exceeded: nesting_depth (limit: 64, actual: 65) at components.schemas.Deep",
		},
		{
			name: "limit only",
			err:  &ResourceLimitError{ResourceType: "nesting_depth", Limit: 8},
			want: "resource limit exceeded: nesting_depth (limit: 8)",
		},
		{
			name: "empty",
			err:  &ResourceLimitError{},
			want: "resource limit exceeded",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, tt.err, ErrResourceLimit)
		})
	}
}

func TestConfigError(t *testing.T) {
	cause := errors.New("must be positive")
	err := &ConfigError{Option: "max depth", Value: -1, Message: "invalid", Cause: cause}
	assert.Equal(t, "configuration error for max depth (value: -1): invalid: must be positive", err.Error())
	assert.Same(t, cause, err.Unwrap())
	assert.ErrorIs(t, err, ErrConfig)
}
