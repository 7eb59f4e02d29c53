// Package version holds the relog version information.
// This is a separate package to avoid import cycles - it has no dependencies
// and can be safely imported from any package.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}

// FormatInfo returns the plain multi-line version report used by
// `relog version --plain`.
func FormatInfo() string {
	return fmt.Sprintf("relog %s\ncommit: %s\nbuilt: %s\ngo: %s\nplatform: %s/%s\n",
		Version, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
