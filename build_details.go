package oasfilter

import (
	"fmt"
	"runtime"
)

var (
	// version is set via ldflags during build by GoReleaser.
	// For development builds, this will show "dev".
	version = "dev"

	// commit is the git short commit hash, set via ldflags.
	commit = "unknown"

	// buildTime is the RFC3339 build timestamp, set via ldflags.
	buildTime = "unknown"
)

// Version returns the compiled version or 'dev' if run from source.
func Version() string {
	return version
}

// Commit returns the git commit hash the binary was built from, or
// 'unknown' for development builds.
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp, or 'unknown' for
// development builds.
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go runtime version used to build the binary.
func GoVersion() string {
	return runtime.Version()
}

// UserAgent returns the User-Agent string to use for any outbound requests.
func UserAgent() string {
	return fmt.Sprintf("openapiv3-filter/%s", version)
}

// BuildInfo returns a human-readable summary of the build metadata.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		version, commit, buildTime, GoVersion())
}
