// Package version exposes build metadata stamped in with -ldflags
package version

import (
	"fmt"
	"runtime"
)

// BuildInfo describes the running binary
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
}

// Info returns the build information.
// Set via -ldflags "-X 'screenwatch/internal/core/version.version=v0.1.0'
// -X 'screenwatch/internal/core/version.commit=abcd' -X 'screenwatch/internal/core/version.date=2026-10-01'"
func Info() BuildInfo {
	return BuildInfo{
		Service: "screenwatch",
		Version: version,
		Commit:  commit,
		Date:    date,
		Go:      runtime.Version(),
	}
}

// String renders the one-line form printed by --version
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s, %s)", b.Service, b.Version, b.Commit, b.Date, b.Go)
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
