//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"log/slog"
	"sync"
	"time"
	"unsafe"

	"github.com/obinnaokechukwu/uigo/internal/bindings"
	"github.com/obinnaokechukwu/uigo/internal/dispatch"
	"github.com/obinnaokechukwu/uigo/internal/handles"
	"github.com/obinnaokechukwu/uigo/internal/native"
	"github.com/obinnaokechukwu/uigo/internal/platform"
	"github.com/obinnaokechukwu/uigo/text"
)

// LineEndings selects the line-ending convention text controls store.
type LineEndings int

const (
	// LineEndingsNative uses the platform toolkit's convention.
	LineEndingsNative LineEndings = iota
	// LineEndingsLF stores "\n".
	LineEndingsLF
	// LineEndingsCRLF stores "\r\n".
	LineEndingsCRLF
)

func (l LineEndings) convention() text.Convention {
	switch l {
	case LineEndingsLF:
		return text.LF
	case LineEndingsCRLF:
		return text.CRLF
	default:
		if platform.UsesCRLF {
			return text.CRLF
		}
		return text.LF
	}
}

// CallbackPolicy decides when the closures registered on a control are
// released.
type CallbackPolicy = handles.Policy

const (
	// PolicyLeak keeps every registered closure until Close. The number of
	// registrations is bounded by the controls a program builds, so this is
	// the default.
	PolicyLeak = handles.PolicyLeak

	// PolicyWidgetBound releases a control's closures when it is destroyed
	// through Control.Destroy, or when a window closes because its
	// OnClosing handler returned true.
	PolicyWidgetBound = handles.PolicyWidgetBound
)

// Options configures Init.
type Options struct {
	// LibraryPath is the libui shared library to load. If empty, the
	// directory named by UIGO_LIBRARY_DIR and the platform's usual library
	// locations are searched.
	LibraryPath string

	// LineEndings overrides the platform's text convention.
	LineEndings LineEndings

	// CallbackPolicy selects when callback closures are released.
	CallbackPolicy CallbackPolicy

	// Logger overrides the package logger for this UI.
	Logger *slog.Logger
}

// UI is the guard for the process-wide toolkit. Only one UI can be live at
// a time; every control is created through it.
//
// Apart from QueueMain, methods of UI and of the controls it creates must be
// called from the goroutine running Main.
type UI struct {
	lib     *native.Lib
	conv    text.Convention
	handles *handles.Manager
	log     *slog.Logger

	windows map[uintptr]*Window
	closed  bool

	mu   sync.Mutex // guards done for QueueMain
	done bool
}

var (
	activeMu sync.Mutex
	active   *UI
)

// Init loads libui and initializes the toolkit. A second Init while a UI is
// live returns ErrAlreadyInitialized. A toolkit that cannot start (no
// display, missing library) is reported as an *InitError.
func Init(opts Options) (*UI, error) {
	activeMu.Lock()
	if active != nil {
		activeMu.Unlock()
		return nil, ErrAlreadyInitialized
	}
	activeMu.Unlock()

	lib, err := bindings.Load(opts.LibraryPath)
	if err != nil {
		return nil, &InitError{Message: "loading libui", Err: err}
	}
	ui, err := initWith(lib, opts)
	if err != nil {
		return nil, err
	}
	ui.log.Info("uigo: library loaded", "path", bindings.Path())
	return ui, nil
}

func initWith(lib *native.Lib, opts Options) (*UI, error) {
	activeMu.Lock()
	defer activeMu.Unlock()
	if active != nil {
		return nil, ErrAlreadyInitialized
	}

	log := opts.Logger
	if log == nil {
		log = Logger()
	}

	o := native.InitOptions{Size: unsafe.Sizeof(native.InitOptions{})}
	if msg := lib.Init(&o); msg != 0 {
		s := text.DecodeAddr(msg, text.LF)
		lib.FreeInitError(msg)
		log.Warn("uigo: init failed", "error", s)
		return nil, &InitError{Message: s}
	}

	ui := &UI{
		lib:     lib,
		conv:    opts.LineEndings.convention(),
		handles: handles.NewManager(nil, opts.CallbackPolicy, log),
		log:     log,
		windows: make(map[uintptr]*Window),
	}
	active = ui
	log.Info("uigo: initialized", "backend", platform.Backend(), "policy", ui.handles.Policy(), "line-endings", ui.conv)
	return ui, nil
}

// Close uninitializes the toolkit and releases every callback closure. The
// UI and all of its controls are unusable afterwards; a new Init may follow.
func (u *UI) Close() error {
	if u.closed {
		return ErrClosed
	}
	u.mu.Lock()
	u.done = true
	u.mu.Unlock()

	u.lib.Uninit()
	u.closed = true
	n := u.handles.Close()

	activeMu.Lock()
	if active == u {
		active = nil
	}
	activeMu.Unlock()

	u.log.Info("uigo: uninitialized", "released", n)
	return nil
}

// Main runs the toolkit's event loop until Quit.
func (u *UI) Main() {
	u.lib.Main()
}

// Quit makes Main return once the current event has been handled.
func (u *UI) Quit() {
	u.lib.Quit()
}

// QueueMain schedules f to run on the UI goroutine. It is safe to call from
// any goroutine. f runs exactly once unless the UI is closed first.
func (u *UI) QueueMain(f func()) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.done {
		return ErrClosed
	}
	h := u.handles.Own(&dispatch.Task{
		Run:  f,
		Done: u.release,
	})
	u.lib.QueueMain(dispatch.Once.Ptr(), uintptr(h))
	return nil
}

// Timer calls f every d until f returns false. The first call happens after
// d has elapsed.
func (u *UI) Timer(d time.Duration, f func() bool) {
	h := u.handles.Own(&dispatch.Tick{
		Run:  f,
		Done: u.release,
	})
	u.lib.Timer(int32(d.Milliseconds()), dispatch.Timer.Ptr(), uintptr(h))
}

// OnShouldQuit sets the handler consulted when the platform asks the
// application to quit (the application menu's Quit item, Cmd-Q). Returning
// true lets the event loop stop.
func (u *UI) OnShouldQuit(f func() bool) {
	u.bind(0, "should-quit", dispatch.ShouldQuit, dispatch.ShouldQuitFunc(f), func(_, fn, data uintptr) {
		u.lib.OnShouldQuit(fn, data)
	})
}

// MsgBox shows a modal message box over parent.
func (u *UI) MsgBox(parent *Window, title, description string) {
	u.lib.MsgBox(parent.handle(), u.cstr(title), u.cstr(description))
}

// MsgBoxError shows a modal error box over parent.
func (u *UI) MsgBoxError(parent *Window, title, description string) {
	u.lib.MsgBoxError(parent.handle(), u.cstr(title), u.cstr(description))
}

// OpenFile asks the user for a file to open. ok is false if the dialog was
// cancelled.
func (u *UI) OpenFile(parent *Window) (path string, ok bool) {
	return u.path(u.lib.OpenFile(parent.handle()))
}

// SaveFile asks the user for a file to save to.
func (u *UI) SaveFile(parent *Window) (path string, ok bool) {
	return u.path(u.lib.SaveFile(parent.handle()))
}

// OpenFolder asks the user for a folder. It requires libui-ng; with older
// libui builds it always reports a cancelled dialog.
func (u *UI) OpenFolder(parent *Window) (path string, ok bool) {
	if u.lib.OpenFolder == nil {
		u.log.Warn("uigo: uiOpenFolder not available in this libui")
		return "", false
	}
	return u.path(u.lib.OpenFolder(parent.handle()))
}

func (u *UI) path(p uintptr) (string, bool) {
	if p == 0 {
		return "", false
	}
	// File names never go through line-ending conversion.
	s := text.DecodeAddr(p, text.LF)
	u.lib.FreeText(p)
	return s, true
}

// cstr encodes s for the toolkit. A string with a NUL byte cannot be
// represented and panics with ErrEmbeddedNUL.
func (u *UI) cstr(s string) *byte {
	return &text.MustEncode(s, u.conv)[0]
}

// takeText copies a toolkit-allocated string and frees it with uiFreeText.
func (u *UI) takeText(p uintptr) string {
	if p == 0 {
		return ""
	}
	s := text.DecodeAddr(p, u.conv)
	u.lib.FreeText(p)
	return s
}

// bind installs v as the closure for event on widget, through the shared
// trampoline tr and the toolkit's registration function.
func (u *UI) bind(widget uintptr, event string, tr *dispatch.Trampoline, v any, register func(widget, fn, data uintptr)) {
	u.handles.Bind(widget, event, v, func(h handles.Handle) {
		register(widget, tr.Ptr(), uintptr(h))
	})
}

func (u *UI) release(h handles.Handle) {
	if err := u.handles.Release(h); err != nil {
		u.log.Warn("uigo: releasing callback", "handle", h, "error", err)
	}
}

// Policy returns the UI's callback policy.
func (u *UI) Policy() CallbackPolicy {
	return u.handles.Policy()
}

// Callbacks returns the number of callback closures the UI currently holds.
func (u *UI) Callbacks() int {
	return u.handles.Len()
}
