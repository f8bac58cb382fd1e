// Package buildinfo carries version metadata injected with -ldflags -X.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// ResolvedVersion falls back to the module version stamped by `go install`
// when no version was injected at link time.
func ResolvedVersion() string {
	if Version != "dev" {
		return Version
	}
	if bi, ok := readBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return Version
}

func String() string {
	return fmt.Sprintf("kata %s (commit=%s, date=%s)", ResolvedVersion(), Commit, Date)
}
