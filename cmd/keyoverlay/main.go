package main

import (
	"os"
	"runtime"
)

// Version is set at build time via ldflags: -X main.Version=$(VERSION)
var Version = "dev"

func init() {
	// The window toolkit and the macOS event tap need the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
