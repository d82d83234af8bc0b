package main

import (
	"github.com/mj1618/scap/cmd"

	// Backends register themselves in init. Each is empty off its own OS.
	_ "github.com/mj1618/scap/internal/platform/darwin"
	_ "github.com/mj1618/scap/internal/platform/win32"
	_ "github.com/mj1618/scap/internal/platform/x11"
)

func main() {
	cmd.Execute()
}
