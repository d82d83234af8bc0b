// Package darwin provides macOS capture discovery using ScreenCaptureKit and CoreGraphics.
// All functionality requires CGo (Objective-C frameworks).
// When CGo is disabled, or on other platforms, the package compiles empty and
// registers nothing.
package darwin
