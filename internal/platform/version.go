package platform

import (
	"bytes"
	"errors"
	"fmt"
)

type versionGate struct {
	src VersionSource
	min []byte
}

func (g *versionGate) IsSupported() (bool, error) {
	host, err := g.src.OSVersion()
	if err != nil {
		return false, fault("read OS version", err)
	}
	if len(host) == 0 {
		return false, fault("read OS version", errors.New("OS reported an empty version"))
	}
	return VersionAtLeast(host, g.min), nil
}

// VersionAtLeast compares raw version bytes lexically. It is not a numeric
// comparison: "12.10\n" sorts below "12.3\n". Callers rely on this exact
// ordering, so it must not be replaced with a semantic-version compare.
func VersionAtLeast(host, min []byte) bool {
	return bytes.Compare(host, min) >= 0
}

// CheckVersionSuffix reports an error when host and min end in different
// bytes. A mismatch means the minimum constant no longer matches the OS
// output format and the lexical comparison may be wrong.
func CheckVersionSuffix(host, min []byte) error {
	if len(host) == 0 || len(min) == 0 {
		return nil
	}
	h, m := host[len(host)-1], min[len(min)-1]
	if isVersionDigit(h) && isVersionDigit(m) {
		return nil
	}
	if h != m {
		return fmt.Errorf("OS version %q does not end like minimum %q", host, min)
	}
	return nil
}

func isVersionDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
