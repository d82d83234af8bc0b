//go:build linux

package x11

import "github.com/mj1618/scap/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return platform.FromSource(NewSource(), MinVersion), nil
	}
}
