//go:build (darwin || linux || freebsd) && !ios && !android && (amd64 || arm64)

package bindings

import "github.com/ebitengine/purego"

// tryOpen opens a library with RTLD_NOW so that missing symbols surface at
// load time rather than on first call.
func tryOpen(path string) (uintptr, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	return lib, nil
}

func lookup(lib uintptr, name string) (uintptr, error) {
	return purego.Dlsym(lib, name)
}
