package platform

import "github.com/mj1618/scap/internal/model"

// VersionGate reports whether the host OS is new enough to expose the
// capture APIs. An unreadable OS version is returned as an EnvironmentFault.
type VersionGate interface {
	IsSupported() (bool, error)
}

// PermissionGate queries and requests the OS screen-recording authorization.
type PermissionGate interface {
	// HasPermission is a preflight check. It never prompts and never blocks.
	HasPermission() bool

	// RequestPermission triggers the OS consent flow. It may block the
	// calling goroutine until the user responds; there is no timeout.
	// The result is the resulting authorization state.
	RequestPermission() bool
}

// TargetEnumerator lists capturable surfaces.
type TargetEnumerator interface {
	// GetTargets returns displays first, then active windows, each group in
	// OS order. Every call re-queries the OS.
	GetTargets() ([]model.Target, error)
}

// DisplayResolver answers per-display metadata queries.
type DisplayResolver interface {
	// GetMainDisplay returns the primary display as it appears in the
	// current enumeration. A primary display missing from the enumeration
	// is an EnvironmentFault.
	GetMainDisplay() (model.Target, error)

	// GetScaleFactor returns pixel width divided by logical width, truncated.
	GetScaleFactor(displayID uint32) (uint64, error)
}
