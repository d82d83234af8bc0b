package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles the capture-discovery components for the current OS.
type Provider struct {
	Version    VersionGate
	Permission PermissionGate
	Targets    TargetEnumerator
	Displays   DisplayResolver
}

// ErrUnsupported is returned on platforms without a backend.
var ErrUnsupported = fmt.Errorf("scap has no capture backend for %s/%s; supported: darwin, linux (X11), windows", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/darwin/init.go for the macOS registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}

// FromSource builds a Provider whose components all sit on top of src.
// minVersion is compared byte-for-byte against src.OSVersion(), so its
// trailing format must match what the OS reports.
func FromSource(src Source, minVersion []byte) *Provider {
	return &Provider{
		Version:    &versionGate{src: src, min: minVersion},
		Permission: &permissionGate{src: src},
		Targets:    &enumerator{src: src},
		Displays:   &resolver{src: src},
	}
}
