// Package buildinfo carries identifiers stamped at build time, e.g.
//
//	go build -ldflags "-X mandel/internal/buildinfo.Version=v1.2.0"
package buildinfo

import "runtime"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String is the startup log form: version, commit, date and Go release.
func String() string {
	return Short() + " " + Commit + " " + Date + " " + runtime.Version()
}
