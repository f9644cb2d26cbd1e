package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasir/oaserrors"
)

func TestTypes_Stdout(t *testing.T) {
	out, _, err := execute(t, "", "types", modelServiceFile(t))
	require.NoError(t, err)

	golden, err := os.ReadFile("../../../emitter/testdata/golden/model_service.golden")
	require.NoError(t, err)
	assert.Equal(t, string(golden), out)
}

func TestTypes_OutputFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "types.go")
	out, _, err := execute(t, "", "types", "-p", "models", "--no-operations", "-o", dest, modelServiceFile(t))
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	src := string(data)
	assert.Contains(t, src, "package models\n")
	assert.Contains(t, src, "type OpenAIFile struct {")
	assert.NotContains(t, src, "var Operations")
}

func TestTypes_NoPointers(t *testing.T) {
	out, _, err := execute(t, "", "types", "--no-pointers", modelServiceFile(t))
	require.NoError(t, err)
	assert.NotContains(t, out, "*string")
}

func TestTypes_Errors(t *testing.T) {
	t.Run("invalid package", func(t *testing.T) {
		_, _, err := execute(t, "", "types", "-p", "func", modelServiceFile(t))
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrConfig)
	})

	t.Run("output overwrites input", func(t *testing.T) {
		spec := modelServiceFile(t)
		_, _, err := execute(t, "", "types", "-o", spec, spec)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "would overwrite input file")
	})

	t.Run("output is a symlink", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "target.go")
		require.NoError(t, os.WriteFile(target, nil, 0o600))
		link := filepath.Join(dir, "link.go")
		require.NoError(t, os.Symlink(target, link))

		_, _, err := execute(t, "", "types", "-o", link, modelServiceFile(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "refusing to write to symlink")
	})
}
