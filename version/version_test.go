package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/jetjson/version"
)

func TestString(t *testing.T) {
	t.Parallel()

	s := version.String()
	assert.Contains(t, s, "jetjson")
	assert.Contains(t, s, version.Version)
	assert.Contains(t, s, version.GoVersion)
}
