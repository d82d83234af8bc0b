package platform

import "errors"

// fakeSource is an in-memory Source. Each call counter lets tests confirm
// nothing is cached between calls.
type fakeSource struct {
	version    []byte
	versionErr error

	granted       bool
	grantOnAsk    bool
	preflightHits int
	requestHits   int

	content      Content
	contentErr   error
	contentCalls int

	mainID    uint32
	mainErr   error
	modes     map[uint32]DisplayMode
	modeCalls int
}

func (f *fakeSource) OSVersion() ([]byte, error) {
	return f.version, f.versionErr
}

func (f *fakeSource) Preflight() bool {
	f.preflightHits++
	return f.granted
}

func (f *fakeSource) Request() bool {
	f.requestHits++
	if f.grantOnAsk {
		f.granted = true
	}
	return f.granted
}

func (f *fakeSource) ShareableContent() (Content, error) {
	f.contentCalls++
	return f.content, f.contentErr
}

func (f *fakeSource) MainDisplayID() (uint32, error) {
	return f.mainID, f.mainErr
}

func (f *fakeSource) DisplayMode(id uint32) (DisplayMode, error) {
	f.modeCalls++
	m, ok := f.modes[id]
	if !ok {
		return DisplayMode{}, errors.New("no such display")
	}
	return m, nil
}
