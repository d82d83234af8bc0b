//go:build linux

package x11

import (
	"fmt"

	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/mj1618/scap/internal/platform"
)

// MinVersion is the first RandR version with GetOutputPrimary.
var MinVersion = []byte("1.3")

// Source implements platform.Source for an X11 session.
type Source struct {
	conn lazyConn
}

var _ platform.Source = (*Source)(nil)

// NewSource creates a source that connects to $DISPLAY on first use.
func NewSource() *Source {
	return &Source{conn: lazyConn{dial: NewConnection}}
}

// OSVersion reports the RandR protocol version as "major.minor".
func (s *Source) OSVersion() ([]byte, error) {
	conn, err := s.conn.get()
	if err != nil {
		return nil, err
	}
	v, err := conn.randrVersion()
	if err != nil {
		return nil, err
	}
	return []byte(v), nil
}

// Preflight always succeeds: X11 has no screen-recording consent.
func (s *Source) Preflight() bool { return true }

// Request always succeeds: X11 has no screen-recording consent.
func (s *Source) Request() bool { return true }

func (s *Source) ShareableContent() (platform.Content, error) {
	conn, err := s.conn.get()
	if err != nil {
		return platform.Content{}, err
	}

	outputs, err := conn.activeOutputs()
	if err != nil {
		return platform.Content{}, err
	}
	clients, err := ewmh.ClientListGet(conn.XUtil)
	if err != nil {
		return platform.Content{}, fmt.Errorf("failed to read _NET_CLIENT_LIST: %w", err)
	}

	content := platform.Content{
		Displays: make([]platform.RawDisplay, 0, len(outputs)),
		Windows:  make([]platform.RawWindow, 0, len(clients)),
	}
	for _, o := range outputs {
		content.Displays = append(content.Displays, platform.RawDisplay{ID: o.ID})
	}
	for _, w := range clients {
		content.Windows = append(content.Windows, platform.RawWindow{
			ID:     uint32(w),
			Title:  conn.windowTitle(w),
			Active: conn.isActive(w),
		})
	}
	return content, nil
}

func (s *Source) MainDisplayID() (uint32, error) {
	conn, err := s.conn.get()
	if err != nil {
		return 0, err
	}
	return conn.primaryOutput()
}

// DisplayMode reports the CRTC width as the pixel width and derives the
// logical width from Xft.dpi.
func (s *Source) DisplayMode(displayID uint32) (platform.DisplayMode, error) {
	conn, err := s.conn.get()
	if err != nil {
		return platform.DisplayMode{}, err
	}
	outputs, err := conn.activeOutputs()
	if err != nil {
		return platform.DisplayMode{}, err
	}
	for _, o := range outputs {
		if o.ID != displayID {
			continue
		}
		return platform.DisplayMode{
			PixelWidth: uint64(o.Width),
			Width:      uint64(logicalWidth(o.Width, s.dpi(conn))),
		}, nil
	}
	return platform.DisplayMode{}, fmt.Errorf("output %d is not active", displayID)
}

func (s *Source) dpi(conn *Connection) int {
	resources, err := xprop.PropValStr(xprop.GetProperty(conn.XUtil, conn.Root, "RESOURCE_MANAGER"))
	if err != nil {
		return baseDPI
	}
	return parseXftDPI(resources)
}
