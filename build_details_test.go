package oasir

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestVersion verifies that Version() returns either "dev" or a release tag.
func TestVersion(t *testing.T) {
	result := Version()

	assert.NotEmpty(t, result)
	assert.True(t,
		result == "dev" || strings.HasPrefix(result, "v"),
		"Version() should be 'dev' or start with 'v', got: %s", result)
}

func TestCommitAndBuildTime(t *testing.T) {
	assert.NotEmpty(t, Commit())
	assert.NotEmpty(t, BuildTime())
	if bt := BuildTime(); bt != "unknown" {
		assert.Contains(t, bt, "T", "BuildTime() should be RFC3339, got: %s", bt)
	}
}

func TestGoVersion(t *testing.T) {
	assert.Equal(t, runtime.Version(), GoVersion())
}

// TestUserAgent verifies the "oasir/{version}" format.
func TestUserAgent(t *testing.T) {
	result := UserAgent()

	assert.Equal(t, "oasir/"+Version(), result)
	assert.NotContains(t, result, " ")
	assert.NotContains(t, result, "\n")
}

func TestBuildInfo(t *testing.T) {
	result := BuildInfo()

	for _, label := range []string{"Version:", "Commit:", "Build Time:", "Go Version:"} {
		assert.Contains(t, result, label)
	}
	assert.Contains(t, result, Version())
	assert.Contains(t, result, GoVersion())
}
