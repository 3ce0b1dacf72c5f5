package hostenv

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHost(t *testing.T) {
	env := Host()

	assert.Equal(t, "Go", env.RuntimeName())
	assert.Equal(t, runtime.Version(), env.RuntimeVersion())
	assert.Equal(t, runtime.GOOS, env.OS())
	assert.Equal(t, runtime.GOARCH, env.Arch())
}

func TestStaticPlaceholders(t *testing.T) {
	env := Static{Name: "Go", GOOS: "plan9"}

	assert.Equal(t, "Go", env.RuntimeName())
	assert.Equal(t, Placeholder, env.RuntimeVersion())
	assert.Equal(t, "plan9", env.OS())
	assert.Equal(t, Placeholder, env.Arch())
}
