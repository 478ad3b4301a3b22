package main

import (
	"fmt"
	"os"

	"github.com/ramanasai/mindclean/cmd"
	"github.com/ramanasai/mindclean/internal/version"
)

// Build metadata injected by goreleaser or makefile
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

func init() {
	version.Version = buildVersion
	version.Commit = buildCommit
	version.Date = buildDate
}

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mindclean:", err)
		os.Exit(1)
	}
}
