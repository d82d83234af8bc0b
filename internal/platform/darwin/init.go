//go:build darwin && cgo

package darwin

import "github.com/mj1618/scap/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return platform.FromSource(NewSource(), MinVersion), nil
	}
}
