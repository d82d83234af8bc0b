package platform

import (
	"errors"
	"testing"
)

func TestVersionAtLeast(t *testing.T) {
	min := []byte("12.3\n")
	tests := []struct {
		host string
		want bool
	}{
		{"12.3\n", true},
		{"12.3.1\n", true},
		{"12.4\n", true},
		{"13.0\n", true},
		{"14.2.1\n", true},
		{"12.2\n", false},
		{"12.2.1\n", false},
		{"11.7.10\n", false},
		// Raw lexical ordering, kept on purpose: "12.10" sorts below "12.3".
		{"12.10\n", false},
		// And "9.0" sorts above "12.3".
		{"9.0\n", true},
	}
	for _, tt := range tests {
		if got := VersionAtLeast([]byte(tt.host), min); got != tt.want {
			t.Errorf("VersionAtLeast(%q, %q) = %v, want %v", tt.host, min, got, tt.want)
		}
	}
}

func TestVersionAtLeast_MissingTrailingNewlineIsFlagged(t *testing.T) {
	host := []byte("12.3")
	min := []byte("12.3\n")

	// The exact minimum without its trailing newline sorts below the
	// minimum. CheckVersionSuffix must flag that format mismatch.
	if VersionAtLeast(host, min) {
		t.Fatal("expected lexical compare to reject a version lacking the trailing newline")
	}
	if err := CheckVersionSuffix(host, min); err == nil {
		t.Error("CheckVersionSuffix should flag a host version lacking the trailing newline")
	}
}

func TestCheckVersionSuffix(t *testing.T) {
	tests := []struct {
		host, min string
		wantErr   bool
	}{
		{"14.2.1\n", "12.3\n", false},
		{"10.0.19045", "10.0.17134", false},
		{"1.6", "1.3", false},
		{"12.3", "12.3\n", true},
		{"12.3\n", "12.3", true},
		{"", "12.3\n", false},
	}
	for _, tt := range tests {
		err := CheckVersionSuffix([]byte(tt.host), []byte(tt.min))
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckVersionSuffix(%q, %q) error = %v, wantErr %v", tt.host, tt.min, err, tt.wantErr)
		}
	}
}

func TestVersionGate_IsSupported(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"12.3\n", true},
		{"15.1\n", true},
		{"12.2\n", false},
	}
	for _, tt := range tests {
		p := FromSource(&fakeSource{version: []byte(tt.version)}, []byte("12.3\n"))
		got, err := p.Version.IsSupported()
		if err != nil {
			t.Fatalf("IsSupported(%q): %v", tt.version, err)
		}
		if got != tt.want {
			t.Errorf("IsSupported(%q) = %v, want %v", tt.version, got, tt.want)
		}
	}
}

// Windows versions compare as raw bytes too. Pre-10 releases sort above
// "10." and pass; the Go runtime no longer starts on them.
func TestVersionGate_WindowsBuilds(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"10.0.17134", true},
		{"10.0.19045", true},
		{"10.0.22631", true},
		{"10.0.17133", false},
		{"10.0.10240", false},
		{"6.3.9600", true},
	}
	for _, tt := range tests {
		p := FromSource(&fakeSource{version: []byte(tt.version)}, []byte("10.0.17134"))
		got, err := p.Version.IsSupported()
		if err != nil {
			t.Fatalf("IsSupported(%q): %v", tt.version, err)
		}
		if got != tt.want {
			t.Errorf("IsSupported(%q) = %v, want %v", tt.version, got, tt.want)
		}
	}
}

func TestVersionGate_UnreadableVersionIsEnvironmentFault(t *testing.T) {
	cause := errors.New("sw_vers: not found")
	p := FromSource(&fakeSource{versionErr: cause}, []byte("12.3\n"))

	ok, err := p.Version.IsSupported()
	if ok {
		t.Error("unreadable version must not report supported")
	}
	if !IsEnvironmentFault(err) {
		t.Fatalf("expected EnvironmentFault, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("fault should wrap the cause, got %v", err)
	}

	p = FromSource(&fakeSource{version: []byte{}}, []byte("12.3\n"))
	if _, err := p.Version.IsSupported(); !IsEnvironmentFault(err) {
		t.Errorf("empty version: expected EnvironmentFault, got %v", err)
	}
}
