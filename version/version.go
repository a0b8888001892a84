// Package version exposes build metadata for the jetjson CLI, populated via
// ldflags at release time with a fallback to the module's VCS build info.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the release version, set via ldflags.
	Version = "dev"
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string

	// Revision is the git commit revision from VCS build info.
	Revision = revision()
	// GoVersion is the Go toolchain that built the binary.
	GoVersion = runtime.Version()
)

// String renders a single human-readable version line.
func String() string {
	s := fmt.Sprintf("jetjson %s (%s, %s/%s)", Version, GoVersion, runtime.GOOS, runtime.GOARCH)

	if Revision != "" {
		s += " " + Revision
	}

	if BuildDate != "" {
		s += " built " + BuildDate
	}

	return s
}

func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	rev := ""
	dirty := false

	for _, kv := range info.Settings {
		switch kv.Key {
		case "vcs.revision":
			rev = kv.Value
		case "vcs.modified":
			dirty = kv.Value == "true"
		}
	}

	if rev != "" && dirty {
		rev += "-dirty"
	}

	return rev
}
