package win32

import "fmt"

// monitorInfo is one GDI monitor in EnumDisplayMonitors order. Width is in
// the calling process's DPI-virtualized coordinates.
type monitorInfo struct {
	Width   int
	Primary bool
}

// primaryIndex returns the index of the primary monitor.
func primaryIndex(monitors []monitorInfo) (int, bool) {
	for i, m := range monitors {
		if m.Primary {
			return i, true
		}
	}
	return 0, false
}

func formatVersion(major, minor, build uint32) string {
	return fmt.Sprintf("%d.%d.%d", major, minor, build)
}
