// Package x11 provides Linux capture discovery over the X11 protocol using
// RandR for displays and EWMH for top-level windows.
package x11
