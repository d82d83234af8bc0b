//go:build windows

package win32

import (
	"errors"
	"fmt"
	"sync"
	"syscall"
	"unsafe"

	"github.com/kbinani/screenshot"
	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/mj1618/scap/internal/platform"
)

// MinVersion is Windows 10 1803, the first build with the graphics capture API.
var MinVersion = []byte("10.0.17134")

const monitorInfoPrimary = 0x1

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
)

// Callbacks are created once; syscall.NewCallback slots are never freed.
var (
	enumMu       sync.Mutex
	enumWindows  []platform.RawWindow
	enumMonitors []monitorInfo

	windowCallback  = syscall.NewCallback(collectWindow)
	monitorCallback = syscall.NewCallback(collectMonitor)
)

// Source implements platform.Source for Windows.
type Source struct{}

var _ platform.Source = (*Source)(nil)

// NewSource creates a new Windows source.
func NewSource() *Source {
	return &Source{}
}

// OSVersion reports "major.minor.build" from RtlGetVersion, which is not
// subject to manifest-based version lies.
func (s *Source) OSVersion() ([]byte, error) {
	v := windows.RtlGetVersion()
	if v == nil || v.MajorVersion == 0 {
		return nil, errors.New("RtlGetVersion returned no version")
	}
	return []byte(formatVersion(v.MajorVersion, v.MinorVersion, v.BuildNumber)), nil
}

func (s *Source) Preflight() bool { return true }

func (s *Source) Request() bool { return true }

func (s *Source) ShareableContent() (platform.Content, error) {
	n := screenshot.NumActiveDisplays()
	content := platform.Content{Displays: make([]platform.RawDisplay, 0, n)}
	for i := 0; i < n; i++ {
		content.Displays = append(content.Displays, platform.RawDisplay{ID: uint32(i)})
	}

	windowList, err := listWindows()
	if err != nil {
		return platform.Content{}, err
	}
	content.Windows = windowList
	return content, nil
}

func (s *Source) MainDisplayID() (uint32, error) {
	monitors, err := listMonitors()
	if err != nil {
		return 0, err
	}
	i, ok := primaryIndex(monitors)
	if !ok {
		return 0, errors.New("no monitor has the primary flag")
	}
	return uint32(i), nil
}

// DisplayMode takes the pixel width from the display's current video mode
// and the logical width from GDI monitor bounds. The logical width only
// differs when the process is not per-monitor DPI aware.
func (s *Source) DisplayMode(displayID uint32) (platform.DisplayMode, error) {
	i := int(displayID)
	if i >= screenshot.NumActiveDisplays() {
		return platform.DisplayMode{}, fmt.Errorf("display %d is not active", displayID)
	}
	monitors, err := listMonitors()
	if err != nil {
		return platform.DisplayMode{}, err
	}
	if i >= len(monitors) {
		return platform.DisplayMode{}, fmt.Errorf("display %d has no monitor info", displayID)
	}
	return platform.DisplayMode{
		PixelWidth: uint64(screenshot.GetDisplayBounds(i).Dx()),
		Width:      uint64(monitors[i].Width),
	}, nil
}

func listWindows() ([]platform.RawWindow, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumWindows = nil
	if err := windows.EnumWindows(windowCallback, nil); err != nil {
		return nil, fmt.Errorf("EnumWindows: %w", err)
	}
	out := enumWindows
	enumWindows = nil
	if out == nil {
		out = []platform.RawWindow{}
	}
	return out, nil
}

func collectWindow(hwnd windows.HWND, _ uintptr) uintptr {
	style := win.GetWindowLong(win.HWND(hwnd), win.GWL_STYLE)
	enumWindows = append(enumWindows, platform.RawWindow{
		ID:     uint32(hwnd),
		Title:  windowText(hwnd),
		Active: windows.IsWindowVisible(hwnd) && style&win.WS_MINIMIZE == 0,
	})
	return 1
}

func windowText(hwnd windows.HWND) string {
	buf := make([]uint16, 512)
	n, err := windows.GetWindowText(hwnd, &buf[0], int32(len(buf)))
	if err != nil || n <= 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

func listMonitors() ([]monitorInfo, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumMonitors = nil
	ret, _, err := procEnumDisplayMonitors.Call(0, 0, monitorCallback, 0)
	if ret == 0 {
		return nil, fmt.Errorf("EnumDisplayMonitors: %w", err)
	}
	out := enumMonitors
	enumMonitors = nil
	return out, nil
}

func collectMonitor(hMonitor win.HMONITOR, _ win.HDC, lprc *win.RECT, _ uintptr) uintptr {
	var mi win.MONITORINFO
	mi.CbSize = uint32(unsafe.Sizeof(mi))
	primary := win.GetMonitorInfo(hMonitor, &mi) && mi.DwFlags&monitorInfoPrimary != 0
	enumMonitors = append(enumMonitors, monitorInfo{
		Width:   int(lprc.Right - lprc.Left),
		Primary: primary,
	})
	return 1
}
