package x11

import (
	"bufio"
	"strconv"
	"strings"
)

// baseDPI is the X11 resolution that corresponds to a scale of 1.
const baseDPI = 96

// parseXftDPI extracts Xft.dpi from a RESOURCE_MANAGER string. It returns
// baseDPI when the resource is absent or unusable.
func parseXftDPI(resources string) int {
	sc := bufio.NewScanner(strings.NewReader(resources))
	for sc.Scan() {
		name, value, ok := strings.Cut(sc.Text(), ":")
		if !ok || strings.TrimSpace(name) != "Xft.dpi" {
			continue
		}
		dpi, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || dpi <= 0 {
			return baseDPI
		}
		return int(dpi)
	}
	return baseDPI
}

// logicalWidth converts a pixel width to logical points at the given DPI.
func logicalWidth(pixelWidth, dpi int) int {
	if dpi <= 0 {
		dpi = baseDPI
	}
	return pixelWidth * baseDPI / dpi
}
