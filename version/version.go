// Package version exposes build metadata for the jsontree binaries.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the release version, set via ldflags.
	Version string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string
)

// Revision returns the VCS revision recorded in the build info, suffixed
// with "-dirty" when the working tree was modified.
func Revision() string {
	rev := "unknown"

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return rev
	}

	modified := false

	for _, s := range buildInfo.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			if s.Value == "true" {
				modified = true
			}
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}

// String formats the full version line printed by the version subcommand.
func String() string {
	v := Version
	if v == "" {
		v = "devel"
	}

	s := fmt.Sprintf("jsontree %s (revision %s, %s, %s/%s)",
		v, Revision(), runtime.Version(), runtime.GOOS, runtime.GOARCH)

	if BuildDate != "" {
		s += ", built " + BuildDate
	}

	return s
}
