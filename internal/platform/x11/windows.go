//go:build linux

package x11

import (
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// isActive reports whether a client window is viewable and not hidden by
// the window manager. Windows on other desktops are unmapped and so fail
// the viewable check.
func (c *Connection) isActive(windowID xproto.Window) bool {
	attrs, err := xproto.GetWindowAttributes(c.XUtil.Conn(), windowID).Reply()
	if err != nil || attrs.MapState != xproto.MapStateViewable {
		return false
	}
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return true
	}
	for _, state := range states {
		if state == "_NET_WM_STATE_HIDDEN" {
			return false
		}
	}
	return true
}

// windowTitle prefers _NET_WM_NAME and falls back to WM_NAME. It returns
// "" when neither is set.
func (c *Connection) windowTitle(windowID xproto.Window) string {
	title, err := ewmh.WmNameGet(c.XUtil, windowID)
	if err == nil {
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	title, err = icccm.WmNameGet(c.XUtil, windowID)
	if err == nil {
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	return ""
}
