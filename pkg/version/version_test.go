package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBuildVars(t *testing.T, v, b, c string) {
	t.Helper()
	origV, origB, origC := Version, BuildTime, Commit
	t.Cleanup(func() { Version, BuildTime, Commit = origV, origB, origC })
	Version, BuildTime, Commit = v, b, c
}

func stubBuildInfo(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()
	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return bi, bi != nil
	}
}

func TestGet_LdflagsWin(t *testing.T) {
	setBuildVars(t, "1.2.3", "2025-12-22T00:00:00Z", "deadbeef")
	stubBuildInfo(t, &debug.BuildInfo{
		Main:     debug.Module{Version: "v9.9.9"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "cafebabe"}},
	})

	info := Get()
	require.Equal(t, "1.2.3", info.Version)
	require.Equal(t, "2025-12-22T00:00:00Z", info.BuildTime)
	require.Equal(t, "deadbeef", info.Commit)

	require.NotEmpty(t, info.GoVersion)
	require.NotEmpty(t, info.OS)
	require.NotEmpty(t, info.Arch)

	assert.Equal(t, "1.2.3", Short())
	assert.Contains(t, info.String(), "webpackassets 1.2.3 (commit: deadbeef, built: 2025-12-22T00:00:00Z")
	assert.Contains(t, Full(), "webpackassets 1.2.3")
}

func TestGet_FallsBackToBuildInfo(t *testing.T) {
	setBuildVars(t, "dev", "unknown", "unknown")
	stubBuildInfo(t, &debug.BuildInfo{
		Main: debug.Module{Version: "v0.4.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123abcd"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})

	info := Get()
	assert.Equal(t, "v0.4.1", info.Version)
	assert.Equal(t, "0123abcd", info.Commit)
	assert.Equal(t, "2026-01-02T03:04:05Z", info.BuildTime)
}

func TestGet_DevelBuild(t *testing.T) {
	setBuildVars(t, "dev", "unknown", "unknown")
	stubBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})

	assert.Equal(t, "dev", Get().Version)
}

func TestGet_NoBuildInfo(t *testing.T) {
	setBuildVars(t, "dev", "unknown", "unknown")
	stubBuildInfo(t, nil)

	info := Get()
	assert.Equal(t, "dev", info.Version)
	assert.Equal(t, "unknown", info.Commit)
	assert.Equal(t, "unknown", info.BuildTime)
}
