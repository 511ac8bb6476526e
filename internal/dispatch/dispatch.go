//go:build !ios && !android && (amd64 || arm64)

// Package dispatch provides the C-callable trampolines libui invokes.
//
// libui calls back through a function pointer plus a void* user-data word.
// Every control shares one trampoline per callback shape; the user-data word
// is an internal/handles.Handle naming the Go closure to run. purego limits
// the number of callbacks a process may create, so trampolines are created
// once, on first use, and never per registration.
package dispatch

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/uigo/internal/handles"
)

// Erased closure shapes stored in the handle arena.
type (
	// SenderFunc handles void (*)(T *sender, void *data).
	SenderFunc func(sender uintptr)
	// PredicateFunc handles int (*)(T *sender, void *data).
	PredicateFunc func(sender uintptr) bool
	// IndexFunc handles void (*)(T *sender, int index, void *data).
	IndexFunc func(sender uintptr, index int)
	// MenuFunc handles void (*)(uiMenuItem *item, uiWindow *window, void *data).
	MenuFunc func(item, window uintptr)
	// ShouldQuitFunc handles int (*)(void *data).
	ShouldQuitFunc func() bool
)

// Task is a callback libui invokes at most once (uiQueueMain).
// Done runs after Run with the task's own handle so it can be released.
type Task struct {
	Run  func()
	Done func(h handles.Handle)
}

// Tick is a repeating callback (uiTimer). libui stops calling it once Run
// returns false, at which point Done is called.
type Tick struct {
	Run  func() bool
	Done func(h handles.Handle)
}

// ErrWrongShape is reported when a handle reaches a trampoline of a
// different shape than the closure it names.
var ErrWrongShape = errors.New("uigo: callback shape mismatch")

// CallbackError is the panic value raised when a trampoline receives a
// handle it cannot resolve. Continuing would run an unrelated closure or
// none at all, so the failure is not recoverable.
type CallbackError struct {
	Trampoline string
	Handle     handles.Handle
	Err        error
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("uigo: %s callback with %s: %v", e.Trampoline, e.Handle, e.Err)
}

func (e *CallbackError) Unwrap() error { return e.Err }

var loggerPtr atomic.Pointer[slog.Logger]

// SetLogger sets the logger trampolines report failures to.
func SetLogger(l *slog.Logger) {
	loggerPtr.Store(l)
}

func fail(name string, data uintptr, err error) {
	cbErr := &CallbackError{Trampoline: name, Handle: handles.Handle(data), Err: err}
	if l := loggerPtr.Load(); l != nil {
		l.Error("uigo: unresolvable callback", "trampoline", name, "handle", cbErr.Handle, "error", err)
	}
	panic(cbErr)
}

// resolve turns a user-data word back into the closure it names. The arena
// lock is released before the closure runs, so handlers may re-enter.
func resolve[T any](name string, data uintptr) T {
	v, err := handles.Lookup(handles.Handle(data))
	if err != nil {
		fail(name, data, err)
	}
	fn, ok := v.(T)
	if !ok {
		fail(name, data, fmt.Errorf("%w: handle holds %T", ErrWrongShape, v))
	}
	return fn
}

// Trampoline is one shared C function pointer.
type Trampoline struct {
	name string
	body any

	once sync.Once
	ptr  uintptr
}

// Name identifies the callback shape.
func (t *Trampoline) Name() string { return t.name }

// Body returns the Go function behind the trampoline. Its first parameter
// is purego.CDecl, matching what purego.NewCallback expects.
func (t *Trampoline) Body() any { return t.body }

// Ptr returns the C function pointer, creating it on first use.
func (t *Trampoline) Ptr() uintptr {
	t.once.Do(func() {
		factoryMu.Lock()
		f := factory
		factoryMu.Unlock()

		t.ptr = f(t.body)

		registryMu.Lock()
		registry[t.ptr] = t
		registryMu.Unlock()
	})
	return t.ptr
}

var (
	factoryMu sync.Mutex
	factory   = purego.NewCallback

	registryMu sync.RWMutex
	registry   = make(map[uintptr]*Trampoline)
)

// SetCallbackFactory replaces purego.NewCallback. It exists for in-process
// toolkits (internal/uitest) that call trampoline bodies directly and must
// be set before any trampoline is first used.
func SetCallbackFactory(f func(fn any) uintptr) {
	factoryMu.Lock()
	defer factoryMu.Unlock()
	factory = f
}

// Resolve returns the trampoline whose C pointer is ptr.
func Resolve(ptr uintptr) (*Trampoline, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	t, ok := registry[ptr]
	return t, ok
}

// Shared trampolines, one per native callback shape.
var (
	Sender = &Trampoline{name: "sender", body: func(_ purego.CDecl, sender, data uintptr) {
		resolve[SenderFunc]("sender", data)(sender)
	}}

	Predicate = &Trampoline{name: "predicate", body: func(_ purego.CDecl, sender, data uintptr) int32 {
		if resolve[PredicateFunc]("predicate", data)(sender) {
			return 1
		}
		return 0
	}}

	Index = &Trampoline{name: "index", body: func(_ purego.CDecl, sender uintptr, index int32, data uintptr) {
		resolve[IndexFunc]("index", data)(sender, int(index))
	}}

	Menu = &Trampoline{name: "menu", body: func(_ purego.CDecl, item, window, data uintptr) {
		resolve[MenuFunc]("menu", data)(item, window)
	}}

	Once = &Trampoline{name: "task", body: func(_ purego.CDecl, data uintptr) {
		t := resolve[*Task]("task", data)
		t.Run()
		if t.Done != nil {
			t.Done(handles.Handle(data))
		}
	}}

	Timer = &Trampoline{name: "tick", body: func(_ purego.CDecl, data uintptr) int32 {
		t := resolve[*Tick]("tick", data)
		if t.Run() {
			return 1
		}
		if t.Done != nil {
			t.Done(handles.Handle(data))
		}
		return 0
	}}

	ShouldQuit = &Trampoline{name: "should-quit", body: func(_ purego.CDecl, data uintptr) int32 {
		if resolve[ShouldQuitFunc]("should-quit", data)() {
			return 1
		}
		return 0
	}}
)
