package platform

// VersionSource reads the host OS version exactly as the OS reports it.
type VersionSource interface {
	OSVersion() ([]byte, error)
}

// PermissionService is the OS screen-recording authorization service.
type PermissionService interface {
	Preflight() bool
	Request() bool
}

// ContentSource reports the displays and windows currently eligible for capture.
type ContentSource interface {
	ShareableContent() (Content, error)
}

// DisplayModeSource reports per-display video mode and the primary display.
type DisplayModeSource interface {
	MainDisplayID() (uint32, error)
	DisplayMode(displayID uint32) (DisplayMode, error)
}

// Source is the full OS boundary a backend implements.
type Source interface {
	VersionSource
	PermissionService
	ContentSource
	DisplayModeSource
}

// Content is one snapshot of shareable content, in OS order.
type Content struct {
	Displays []RawDisplay
	Windows  []RawWindow
}

// RawDisplay is a display as reported by the OS. No name is available.
type RawDisplay struct {
	ID uint32
}

// RawWindow is a window as reported by the OS. Title may be empty.
type RawWindow struct {
	ID     uint32
	Title  string
	Active bool
}

// DisplayMode holds the physical and logical widths of a display.
type DisplayMode struct {
	PixelWidth uint64
	Width      uint64
}
