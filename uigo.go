//go:build !ios && !android && (amd64 || arm64)

// Package uigo provides bindings to libui-ng, a portable native GUI
// toolkit (Win32, Cocoa, GTK3), without CGO using purego.
//
// Start with Init, which returns the UI guard every control is created
// through. Callbacks registered on controls are Go closures; the binding
// passes the toolkit a shared C trampoline plus a generation-tagged handle,
// so a callback that outlives its closure fails loudly instead of running
// freed state. See Options.CallbackPolicy for when closures are released.
//
// The toolkit is single threaded. Create controls and run Main from the
// main goroutine; other goroutines reach the UI with UI.QueueMain.
package uigo

import (
	"runtime"

	"github.com/obinnaokechukwu/uigo/internal/bindings"
	"github.com/obinnaokechukwu/uigo/internal/platform"
)

func init() {
	// Cocoa and Win32 require the event loop on the thread that created
	// the first window. Package init runs on the main thread.
	runtime.LockOSThread()
}

// IsLoaded returns true if the libui library has been loaded.
func IsLoaded() bool {
	return bindings.IsLoaded()
}

// LibraryPath returns the path of the loaded libui library.
func LibraryPath() string {
	return bindings.Path()
}

// FindLibrary returns the path at which libui would be loaded.
func FindLibrary() (string, error) {
	return bindings.FindLibrary("ui")
}

// Backend names the native toolkit libui drives on this platform: "win32",
// "cocoa" or "gtk3".
func Backend() string {
	return platform.Backend()
}
