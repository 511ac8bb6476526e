// Package handles provides a generation-checked handle system for storing Go
// closures that need to be referenced from C callbacks.
//
// When C code needs to reference a Go object (e.g., in the user-data pointer
// of a libui event registration), we cannot store Go pointers directly in C
// memory. Instead, we register the Go object and get back a uintptr handle
// that can be safely stored in C memory.
//
// A Handle packs a slot index and the slot's generation into one word. When
// a slot is released its generation is bumped, so any copy of the old handle
// still held by the toolkit resolves to ErrStaleHandle instead of silently
// reaching whatever closure reuses the slot.
package handles

import (
	"errors"
	"fmt"
	"sync"
)

// Handle is an opaque, pointer-sized token identifying a registered value.
// The zero Handle is never valid.
type Handle uintptr

const indexBits = 32

func makeHandle(index uint32, gen uint32) Handle {
	return Handle(uintptr(gen)<<indexBits | uintptr(index+1))
}

func (h Handle) index() (uint32, bool) {
	lo := uint32(uintptr(h) & (1<<indexBits - 1))
	if lo == 0 {
		return 0, false
	}
	return lo - 1, true
}

func (h Handle) generation() uint32 {
	return uint32(uintptr(h) >> indexBits)
}

// String formats the handle as index@generation.
func (h Handle) String() string {
	idx, ok := h.index()
	if !ok {
		return "handle(nil)"
	}
	return fmt.Sprintf("handle(%d@%d)", idx, h.generation())
}

// ErrStaleHandle is returned when a handle refers to a slot that has been
// released (and possibly reused) since the handle was issued.
var ErrStaleHandle = errors.New("uigo: stale callback handle")

// ErrInvalidHandle is returned for the zero handle or a slot that was never issued.
var ErrInvalidHandle = errors.New("uigo: invalid callback handle")

type slot struct {
	gen   uint32
	live  bool
	value any
}

// Arena stores registered values in reusable, generation-tagged slots.
// It is safe for concurrent use; lookups never hold the lock while the
// caller uses the returned value, so a callback may register, look up or
// release handles re-entrantly.
type Arena struct {
	mu    sync.RWMutex
	slots []slot
	free  []uint32
	live  int
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Register stores v and returns a handle for it.
// The handle can be safely stored in C memory (as uintptr or void*).
// The value stays reachable until Unregister is called.
func (a *Arena) Register(v any) Handle {
	a.mu.Lock()
	defer a.mu.Unlock()

	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot{gen: 1})
	}
	s := &a.slots[idx]
	s.live = true
	s.value = v
	a.live++
	return makeHandle(idx, s.gen)
}

// Lookup retrieves the value registered under h.
func (a *Arena) Lookup(h Handle) (any, error) {
	idx, ok := h.index()
	if !ok {
		return nil, ErrInvalidHandle
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	if int(idx) >= len(a.slots) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHandle, h)
	}
	s := a.slots[idx]
	if !s.live || s.gen != h.generation() {
		return nil, fmt.Errorf("%w: %s", ErrStaleHandle, h)
	}
	return s.value, nil
}

// Unregister releases h so its value can be garbage collected.
// Releasing a handle twice reports ErrStaleHandle.
func (a *Arena) Unregister(h Handle) error {
	idx, ok := h.index()
	if !ok {
		return ErrInvalidHandle
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if int(idx) >= len(a.slots) {
		return fmt.Errorf("%w: %s", ErrInvalidHandle, h)
	}
	s := &a.slots[idx]
	if !s.live || s.gen != h.generation() {
		return fmt.Errorf("%w: %s", ErrStaleHandle, h)
	}
	s.live = false
	s.value = nil
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	a.free = append(a.free, idx)
	a.live--
	return nil
}

// Count returns the number of currently registered handles.
// Useful for debugging and testing leaks.
func (a *Arena) Count() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.live
}

var defaultArena = NewArena()

// Default returns the process-wide arena used by the dispatch trampolines.
func Default() *Arena {
	return defaultArena
}

// Register stores v in the default arena.
func Register(v any) Handle {
	return defaultArena.Register(v)
}

// Lookup retrieves a value from the default arena.
func Lookup(h Handle) (any, error) {
	return defaultArena.Lookup(h)
}

// Unregister releases h from the default arena.
func Unregister(h Handle) error {
	return defaultArena.Unregister(h)
}

// Count returns the number of live handles in the default arena.
func Count() int {
	return defaultArena.Count()
}
