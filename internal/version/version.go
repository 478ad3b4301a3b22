package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const appName = "MindClean"

// Build metadata, set by main from -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the injected version. Binaries built with
// `go install module@version` carry no ldflags, so their module version is used.
func GetVersion() string {
	if Version != "dev" {
		return Version
	}
	if bi, ok := readBuildInfo(); ok {
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "dev"
}

// GetShortVersion is the one-line form printed by `version --short`.
func GetShortVersion() string {
	return appName + " " + GetVersion()
}

// GetVersionInfo adds the commit, build date and toolchain.
func GetVersionInfo() string {
	v := GetVersion()
	if v == "dev" {
		return fmt.Sprintf("%s dev (%s, %s/%s)", appName, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	}
	return fmt.Sprintf("%s %s (commit: %s, built: %s, %s, %s/%s)",
		appName, v, shortCommit(Commit), Date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}
