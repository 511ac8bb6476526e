//go:build windows && (amd64 || arm64)

package bindings

import "syscall"

// purego has no Dlopen on Windows; the DLL is loaded with the system loader
// and its exports are registered with purego.RegisterFunc like elsewhere.
func tryOpen(path string) (uintptr, error) {
	h, err := syscall.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

func lookup(lib uintptr, name string) (uintptr, error) {
	return syscall.GetProcAddress(syscall.Handle(lib), name)
}
