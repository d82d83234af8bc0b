// Package win32 provides Windows capture discovery. Displays come from
// GDI monitor enumeration and windows from EnumWindows. Windows has no
// screen-recording consent, so permission is always granted.
package win32
