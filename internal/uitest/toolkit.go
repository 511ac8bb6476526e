//go:build !ios && !android && (amd64 || arm64)

// Package uitest is an in-memory stand-in for libui-ng.
//
// Toolkit fills a native.Lib with Go functions that keep widget state in
// maps and remember the (trampoline, user-data) pair of every callback
// registration. Tests drive the toolkit the way a user would (typing,
// clicking, dragging a slider) and the fake invokes the registered
// trampoline bodies exactly as the native library would.
//
// Like libui, programmatic setters never fire callbacks. Strings returned
// to the caller are tracked allocations that must be released with
// FreeText; Outstanding and BadFrees expose misuse.
package uitest

import (
	"strings"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/uigo/internal/dispatch"
	"github.com/obinnaokechukwu/uigo/internal/native"
)

// Event names under which callbacks are recorded.
const (
	EventClicked          = "clicked"
	EventToggled          = "toggled"
	EventChanged          = "changed"
	EventSelected         = "selected"
	EventClosing          = "closing"
	EventSizeChanged      = "content-size-changed"
	EventRowClicked       = "row-clicked"
	EventRowDoubleClicked = "row-double-clicked"
	EventHeaderClicked    = "header-clicked"
)

type callback struct {
	fn   uintptr
	data uintptr
}

// Widget is the state the fake keeps for one control.
type Widget struct {
	Kind      string
	Text      string // as stored by the toolkit, line endings included
	Value     int32
	Min, Max  int32
	Checked   bool
	ReadOnly  bool
	Margined  bool
	Padded    bool
	Visible   bool
	Enabled   bool
	Destroyed bool

	Fullscreen bool
	Borderless bool
	Width      int32
	Height     int32

	Items    []string
	Selected int32

	Children    []uintptr
	Labels      []string
	Stretchy    []bool
	PageMargins []bool
	Parent      uintptr

	Model         uintptr
	Columns       []string
	HeaderVisible bool

	Color [4]float64
	Font  Font
	Time  native.Tm

	callbacks map[string]callback
}

// Font is the selection a font button holds.
type Font struct {
	Family  string
	Size    float64
	Weight  uint32
	Italic  uint32
	Stretch uint32
}

type tableValue struct {
	typ        int32
	str        []byte
	i          int32
	r, g, b, a float64
}

type model struct {
	handler uintptr
}

// Toolkit is a fake libui instance.
type Toolkit struct {
	// InitError, when set, is returned by uiInit.
	InitError string

	lib *native.Lib

	nextPtr     uintptr
	widgets     map[uintptr]*Widget
	texts       map[uintptr][]byte
	values      map[uintptr]*tableValue
	models      map[uintptr]*model
	initialized bool
	uninits     int
	quit        bool
	freed       int
	fontFrees   int
	badFrees    []uintptr
	dialogs     []string

	// FileResult is what uiOpenFile/uiSaveFile/uiOpenFolder return; empty
	// means the dialog was cancelled.
	FileResult string

	mu         sync.Mutex
	queue      []callback
	timers     []callback
	shouldQuit *callback
}

var factoryOnce sync.Once

// New returns a fresh fake toolkit. Trampolines are routed through Go
// directly instead of purego.NewCallback.
func New() *Toolkit {
	factoryOnce.Do(func() {
		var next uintptr = 0x7000_0000
		var mu sync.Mutex
		dispatch.SetCallbackFactory(func(any) uintptr {
			mu.Lock()
			defer mu.Unlock()
			next += 0x10
			return next
		})
	})

	t := &Toolkit{
		nextPtr: 0x1000,
		widgets: make(map[uintptr]*Widget),
		texts:   make(map[uintptr][]byte),
		values:  make(map[uintptr]*tableValue),
		models:  make(map[uintptr]*model),
	}
	t.lib = t.build()
	return t
}

// Lib returns the function table to hand to the code under test.
func (t *Toolkit) Lib() *native.Lib {
	return t.lib
}

// Widget returns the state of the control at ptr, or nil.
func (t *Toolkit) Widget(ptr uintptr) *Widget {
	return t.widgets[ptr]
}

// Len returns the number of controls created, destroyed ones included.
func (t *Toolkit) Len() int {
	return len(t.widgets)
}

// Initialized reports whether uiInit succeeded and uiUninit has not run.
func (t *Toolkit) Initialized() bool {
	return t.initialized
}

// Uninits counts uiUninit calls.
func (t *Toolkit) Uninits() int {
	return t.uninits
}

// Quitting reports whether uiQuit was called.
func (t *Toolkit) Quitting() bool {
	return t.quit
}

// Outstanding is the number of toolkit-allocated strings not yet freed.
func (t *Toolkit) Outstanding() int {
	return len(t.texts)
}

// Freed counts successful uiFreeText calls.
func (t *Toolkit) Freed() int {
	return t.freed
}

// FontFrees counts uiFreeFontButtonFont calls that released a family name
// handed out by uiFontButtonFont.
func (t *Toolkit) FontFrees() int {
	return t.fontFrees
}

// BadFrees lists addresses passed to a free function that the toolkit never
// allocated (or already freed).
func (t *Toolkit) BadFrees() []uintptr {
	return t.badFrees
}

// Dialogs lists message boxes shown, as "title: description".
func (t *Toolkit) Dialogs() []string {
	return t.dialogs
}

// HasCallback reports whether a callback is registered for event on ptr.
func (t *Toolkit) HasCallback(ptr uintptr, event string) bool {
	w := t.widgets[ptr]
	if w == nil {
		return false
	}
	_, ok := w.callbacks[event]
	return ok
}

// CallbackData returns the user-data word registered for event on ptr.
func (t *Toolkit) CallbackData(ptr uintptr, event string) (uintptr, bool) {
	w := t.widgets[ptr]
	if w == nil {
		return 0, false
	}
	cb, ok := w.callbacks[event]
	return cb.data, ok
}

func (t *Toolkit) alloc() uintptr {
	t.nextPtr += 0x10
	return t.nextPtr
}

func (t *Toolkit) newWidget(kind string) uintptr {
	p := t.alloc()
	t.widgets[p] = &Widget{
		Kind:      kind,
		Visible:   kind != "window",
		Enabled:   true,
		Selected:  -1,
		callbacks: make(map[string]callback),
	}
	return p
}

func (t *Toolkit) w(p uintptr) *Widget {
	w := t.widgets[p]
	if w == nil {
		panic("uitest: unknown control")
	}
	if w.Destroyed {
		panic("uitest: use of destroyed control")
	}
	return w
}

func (t *Toolkit) on(p uintptr, event string, fn, data uintptr) {
	t.w(p).callbacks[event] = callback{fn, data}
}

// newText hands out a NUL-terminated copy of s owned by the toolkit.
func (t *Toolkit) newText(s string) uintptr {
	buf := append([]byte(s), 0)
	p := uintptr(unsafe.Pointer(&buf[0]))
	t.texts[p] = buf
	return p
}

func (t *Toolkit) freeText(p uintptr) {
	if _, ok := t.texts[p]; !ok {
		t.badFrees = append(t.badFrees, p)
		return
	}
	delete(t.texts, p)
	t.freed++
}

func str(p *byte) string {
	if p == nil {
		return ""
	}
	var sb strings.Builder
	for q := unsafe.Pointer(p); *(*byte)(q) != 0; q = unsafe.Add(q, 1) {
		sb.WriteByte(*(*byte)(q))
	}
	return sb.String()
}

func clamp(v, lo, hi int32) int32 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func body(fn uintptr) any {
	tr, ok := dispatch.Resolve(fn)
	if !ok {
		panic("uitest: callback pointer is not a known trampoline")
	}
	return tr.Body()
}

func (t *Toolkit) fireSender(p uintptr, event string) bool {
	cb, ok := t.w(p).callbacks[event]
	if !ok {
		return false
	}
	body(cb.fn).(func(purego.CDecl, uintptr, uintptr))(purego.CDecl{}, p, cb.data)
	return true
}

func (t *Toolkit) fireIndex(p uintptr, event string, index int32) bool {
	cb, ok := t.w(p).callbacks[event]
	if !ok {
		return false
	}
	body(cb.fn).(func(purego.CDecl, uintptr, int32, uintptr))(purego.CDecl{}, p, index, cb.data)
	return true
}
