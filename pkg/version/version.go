// Package version exposes build information set at link time.
package version

import (
	"fmt"
	"runtime"
)

// Set via -ldflags "-X github.com/rshade/contentbatch/pkg/version.version=...".
//
//nolint:gochecknoglobals // link-time variables
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the release version.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// String returns a one-line build description.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s/%s)",
		version, gitCommit, buildDate, runtime.GOOS, runtime.GOARCH)
}
