//go:build !ios && !android && (amd64 || arm64)

// Package bindings handles loading the libui shared library and registering
// function bindings using purego.
package bindings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/obinnaokechukwu/uigo/internal/native"
	"github.com/obinnaokechukwu/uigo/internal/platform"
)

// ErrLibraryNotFound is returned when the libui shared library cannot be found.
var ErrLibraryNotFound = errors.New("uigo: libui library not found")

// LibraryDirEnv names the environment variable searched before any system path.
const LibraryDirEnv = "UIGO_LIBRARY_DIR"

// loaded is published once the function table is complete.
type loaded struct {
	lib  *native.Lib
	path string
}

var (
	state    atomic.Pointer[loaded]
	loadOnce sync.Once
	loadErr  error
)

// IsLoaded returns true if libui has been successfully loaded. It may be
// called from any goroutine.
func IsLoaded() bool {
	return state.Load() != nil
}

// Path returns the file the library was loaded from, or "" before a
// successful Load.
func Path() string {
	if l := state.Load(); l != nil {
		return l.path
	}
	return ""
}

// Load loads libui and registers all function bindings. An explicit path
// is tried before the search paths. It is safe to call multiple times;
// subsequent calls return the result of the first.
func Load(path string) (*native.Lib, error) {
	loadOnce.Do(func() {
		h, from, err := open(path)
		if err != nil {
			loadErr = err
			return
		}
		l := &native.Lib{}
		if err := register(l, h); err != nil {
			loadErr = err
			return
		}
		state.Store(&loaded{lib: l, path: from})
	})
	if l := state.Load(); l != nil {
		return l.lib, nil
	}
	return nil, loadErr
}

func open(path string) (uintptr, string, error) {
	if path != "" {
		h, err := tryOpen(path)
		if err != nil {
			return 0, "", fmt.Errorf("%w: %s: %v", ErrLibraryNotFound, path, err)
		}
		return h, path, nil
	}
	return loadLibrary("ui")
}

// loadLibrary tries every search path, then leaves the lookup to the
// dynamic loader.
func loadLibrary(name string) (uintptr, string, error) {
	libName := platform.FormatLibraryName(name, 0)
	for _, searchPath := range LibrarySearchPaths() {
		fullPath := filepath.Join(searchPath, libName)
		if h, err := tryOpen(fullPath); err == nil {
			return h, fullPath, nil
		}
	}

	h, err := tryOpen(libName)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %s: %v", ErrLibraryNotFound, libName, err)
	}
	return h, libName, nil
}

// FindLibrary searches for a library and returns its full path.
// This is useful for diagnostics.
func FindLibrary(name string) (string, error) {
	libName := platform.FormatLibraryName(name, 0)
	for _, searchPath := range LibrarySearchPaths() {
		fullPath := filepath.Join(searchPath, libName)
		if _, err := os.Stat(fullPath); err == nil {
			return fullPath, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrLibraryNotFound, name)
}

// LibrarySearchPaths returns platform-specific library search paths.
func LibrarySearchPaths() []string {
	var paths []string

	if dir := os.Getenv(LibraryDirEnv); dir != "" {
		paths = append(paths, filepath.SplitList(dir)...)
	}

	switch runtime.GOOS {
	case "linux", "freebsd":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/local/lib",
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
			"/usr/lib",
			"/lib",
		)

	case "darwin":
		if dyldPath := os.Getenv("DYLD_LIBRARY_PATH"); dyldPath != "" {
			paths = append(paths, filepath.SplitList(dyldPath)...)
		}
		paths = append(paths,
			"/opt/homebrew/lib", // Apple Silicon
			"/usr/local/lib",    // Intel
		)

	case "windows":
		if exe, err := os.Executable(); err == nil {
			paths = append(paths, filepath.Dir(exe))
		}
		if winPath := os.Getenv("PATH"); winPath != "" {
			paths = append(paths, filepath.SplitList(winPath)...)
		}
	}

	if exe, err := os.Executable(); err == nil && runtime.GOOS != "windows" {
		paths = append(paths, filepath.Dir(exe))
	}

	return paths
}
