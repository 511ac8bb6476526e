//go:build !ios && !android && (amd64 || arm64)

package platform

import (
	"runtime"
	"testing"
)

func TestUsesCRLF(t *testing.T) {
	if want := runtime.GOOS == "windows"; UsesCRLF != want {
		t.Errorf("UsesCRLF = %v on %s, want %v", UsesCRLF, runtime.GOOS, want)
	}
}

func TestLibraryExtension(t *testing.T) {
	switch runtime.GOOS {
	case "darwin":
		if LibraryExtension != ".dylib" {
			t.Errorf("expected .dylib, got %s", LibraryExtension)
		}
	case "windows":
		if LibraryExtension != ".dll" {
			t.Errorf("expected .dll, got %s", LibraryExtension)
		}
	default:
		if LibraryExtension != ".so" {
			t.Errorf("expected .so, got %s", LibraryExtension)
		}
	}
}

func TestBackend(t *testing.T) {
	want := map[string]string{"windows": "win32", "darwin": "cocoa"}[runtime.GOOS]
	if want == "" {
		want = "gtk3"
	}
	if got := Backend(); got != want {
		t.Errorf("Backend() = %q, want %q", got, want)
	}
}

func TestFormatLibraryName(t *testing.T) {
	tests := []struct {
		name    string
		version int
		goos    string
		want    string
	}{
		{"ui", 0, "linux", "libui.so"},
		{"ui", 4, "linux", "libui.so.4"},
		{"ui", 0, "darwin", "libui.dylib"},
		{"ui", 4, "darwin", "libui.4.dylib"},
		{"ui", 0, "windows", "ui.dll"},
		{"ui", 4, "windows", "ui-4.dll"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"_"+tt.goos, func(t *testing.T) {
			if runtime.GOOS != tt.goos {
				t.Skipf("test only applies to %s", tt.goos)
			}
			got := FormatLibraryName(tt.name, tt.version)
			if got != tt.want {
				t.Errorf("FormatLibraryName(%q, %d) = %q, want %q", tt.name, tt.version, got, tt.want)
			}
		})
	}
}
