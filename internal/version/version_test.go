package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubBuildInfo(t *testing.T, mainVersion string) {
	t.Helper()
	old := readBuildInfo
	t.Cleanup(func() { readBuildInfo = old })
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Path: "github.com/ramanasai/mindclean", Version: mainVersion}}, true
	}
}

func setBuild(t *testing.T, v, c, d string) {
	t.Helper()
	ov, oc, od := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = ov, oc, od })
	Version, Commit, Date = v, c, d
}

func TestDevBuild(t *testing.T) {
	stubBuildInfo(t, "(devel)")
	setBuild(t, "dev", "none", "unknown")

	assert.Equal(t, "dev", GetVersion())
	assert.Equal(t, "MindClean dev", GetShortVersion())
	assert.Contains(t, GetVersionInfo(), "MindClean dev (go")
}

func TestInjectedVersionWins(t *testing.T) {
	stubBuildInfo(t, "v0.9.0")
	setBuild(t, "1.2.0", "abc123def4567", "2026-10-17")

	assert.Equal(t, "MindClean 1.2.0", GetShortVersion())
	info := GetVersionInfo()
	assert.Contains(t, info, "commit: abc123d,")
	assert.Contains(t, info, "built: 2026-10-17")
}

func TestModuleVersionFallback(t *testing.T) {
	stubBuildInfo(t, "v0.3.1")
	setBuild(t, "dev", "none", "unknown")

	assert.Equal(t, "v0.3.1", GetVersion())
	assert.Equal(t, "MindClean v0.3.1", GetShortVersion())
	assert.Contains(t, GetVersionInfo(), "commit: none")
}
