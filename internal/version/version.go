// Package version provides build information for claude-run.
package version

import "runtime/debug"

// Version is set at build time via:
//
//	-ldflags "-X github.com/xdg/claude-run/internal/version.Version=v1.0.0"
var Version = "dev"

// String returns Version, falling back to the module version recorded by
// `go install` when no ldflags were given.
func String() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}
