package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasir/internal/testutil"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("OASIR_LOG_LEVEL", "")
	t.Setenv("OASIR_INLINE_RESPONSES", "")
	t.Setenv("OASIR_MAX_DEPTH", "")

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func modelServiceFile(t *testing.T) string {
	t.Helper()
	return testutil.WriteTempFile(t, "models.yaml", testutil.ModelServiceYAML)
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "oasir", cmd.Use)
	assert.Contains(t, cmd.Long, "OASIR_LOG_LEVEL")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"inspect", "types", "decode", "mcp", "version"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err, "Command %s should exist", name)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, FormatText, format.DefValue)
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	_, _, err := execute(t, "", "--format", "xml", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format 'xml'")
}

func TestRootOptions_Logger(t *testing.T) {
	t.Setenv("OASIR_LOG_LEVEL", "error")
	var buf bytes.Buffer

	(&RootOptions{}).Logger(&buf).Warn("hidden")
	assert.Empty(t, buf.String())

	(&RootOptions{Verbose: true}).Logger(&buf).Debug("shown", "key", "value")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "key=value")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "oasir dev\n"), out)
	assert.Contains(t, out, "Go Version:")

	out, _, err = execute(t, "", "--format", "json", "version")
	require.NoError(t, err)
	assert.Contains(t, out, `"version": "dev"`)
}
