// Package version provides version information for the application.
package version

import (
	"runtime/debug"
)

var (
	// Version is the semantic version of the build, set via ldflags or
	// derived from module build info.
	Version = "dev"

	// Revision is the VCS revision the binary was built from.
	Revision = "unknown"
)

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		Version = bi.Main.Version
	}

	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			Revision = s.Value
		}
	}
}
