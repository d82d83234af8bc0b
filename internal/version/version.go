// Package version provides build version information.
package version

// Injected at build time via -ldflags "-X github.com/mj1618/scap/internal/version.Version=...".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// Full returns version with commit and date info.
func Full() string {
	return Version + " (commit: " + Commit + ", built: " + BuildDate + ")"
}
