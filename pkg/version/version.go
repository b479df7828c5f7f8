// Package version holds build-time identity set via linker flags
// (`-X github.com/sumatoshi-tech/j2py/pkg/version.Version=...`).
package version

// Version, Commit, and Date default to "dev" values for a `go build`
// invocation that doesn't pass -ldflags; release builds override them.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
