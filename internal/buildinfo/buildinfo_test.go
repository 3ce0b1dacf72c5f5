package buildinfo

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stub(t *testing.T, bi *debug.BuildInfo, ok bool) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, ok }
	t.Cleanup(func() { readBuildInfo = orig })
}

func setVars(t *testing.T, version, commit, date string) {
	t.Helper()
	ov, oc, od := Version, Commit, BuildDate
	Version, Commit, BuildDate = version, commit, date
	t.Cleanup(func() { Version, Commit, BuildDate = ov, oc, od })
}

func TestReadFallbacks(t *testing.T) {
	stub(t, nil, false)
	setVars(t, "", "", "")

	info := Read()
	assert.Equal(t, "dev", info.Version)
	assert.Equal(t, "unknown", info.Commit)
	assert.Equal(t, "unknown", info.BuildDate)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestReadFromBuildInfo(t *testing.T) {
	stub(t, &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		},
	}, true)
	setVars(t, "", "", "")

	info := Read()
	assert.Equal(t, "v0.3.0", info.Version)
	assert.Equal(t, "0123456", info.Commit)
	assert.Equal(t, "2026-10-01T12:00:00Z", info.BuildDate)
}

func TestLdflagsWin(t *testing.T) {
	stub(t, &debug.BuildInfo{
		Main:     debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "feedface"}},
	}, true)
	setVars(t, "v1.0.0", "abc1234", "2026-01-01")

	info := Read()
	assert.Equal(t, "v1.0.0", info.Version)
	assert.Equal(t, "abc1234", info.Commit)
	assert.Equal(t, "2026-01-01", info.BuildDate)
}
