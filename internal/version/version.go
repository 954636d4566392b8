// Package version exposes build metadata for the recommendation service.
// The values are stamped at build time with -ldflags -X; the defaults
// below identify an unstamped dev build.
package version

//nolint:revive // Overwritten via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
