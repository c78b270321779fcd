// Package version holds build metadata injected with -ldflags at release time.
package version

var (
	// BuildVersion is the released version of ghupdate, "dev" for local builds.
	BuildVersion = "dev"
	BuildCommit  = "none"
	BuildDate    = "unknown"

	// SentryDSN enables error reporting when set at build time.
	SentryDSN = ""
)
