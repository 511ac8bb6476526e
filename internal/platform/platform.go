//go:build !ios && !android && (amd64 || arm64)

// Package platform provides platform detection and capabilities for uigo.
// It determines library naming and text conventions based on the operating system.
package platform

import (
	"fmt"
	"runtime"
)

// UsesCRLF reports whether native text controls store "\r\n" line endings.
// Only the Win32 backend of libui does.
const UsesCRLF = runtime.GOOS == "windows"

// LibraryExtension is the file extension for shared libraries on this platform.
var LibraryExtension string

// LibraryPrefix is the prefix for shared library names on this platform.
var LibraryPrefix string

func init() {
	switch runtime.GOOS {
	case "darwin":
		LibraryExtension = ".dylib"
		LibraryPrefix = "lib"
	case "windows":
		LibraryExtension = ".dll"
		LibraryPrefix = ""
	default: // linux, freebsd, etc.
		LibraryExtension = ".so"
		LibraryPrefix = "lib"
	}
}

// FormatLibraryName returns the platform-specific library filename.
// If version is 0, returns the unversioned library name.
//
// Examples:
//   - Linux:   FormatLibraryName("ui", 0) -> "libui.so"
//   - macOS:   FormatLibraryName("ui", 0) -> "libui.dylib"
//   - Windows: FormatLibraryName("ui", 0) -> "ui.dll"
//   - Linux:   FormatLibraryName("ui", 4) -> "libui.so.4"
func FormatLibraryName(name string, version int) string {
	switch runtime.GOOS {
	case "darwin":
		if version > 0 {
			return fmt.Sprintf("%s%s.%d%s", LibraryPrefix, name, version, LibraryExtension)
		}
		return fmt.Sprintf("%s%s%s", LibraryPrefix, name, LibraryExtension)
	case "windows":
		if version > 0 {
			return fmt.Sprintf("%s%s-%d%s", LibraryPrefix, name, version, LibraryExtension)
		}
		return fmt.Sprintf("%s%s%s", LibraryPrefix, name, LibraryExtension)
	default: // linux, freebsd
		if version > 0 {
			return fmt.Sprintf("%s%s%s.%d", LibraryPrefix, name, LibraryExtension, version)
		}
		return fmt.Sprintf("%s%s%s", LibraryPrefix, name, LibraryExtension)
	}
}

// Backend names the native toolkit libui drives on this platform.
func Backend() string {
	switch runtime.GOOS {
	case "windows":
		return "win32"
	case "darwin":
		return "cocoa"
	default:
		return "gtk3"
	}
}
