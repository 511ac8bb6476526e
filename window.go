//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"github.com/obinnaokechukwu/uigo/internal/dispatch"
	"github.com/obinnaokechukwu/uigo/internal/native"
)

// Window is a top-level window. Windows start hidden; call Show.
type Window struct {
	control
}

// NewWindow creates a window whose content area is width x height.
// hasMenubar attaches the menus created so far; menus must be created
// before the first window.
func (u *UI) NewWindow(title string, width, height int, hasMenubar bool) *Window {
	ptr := u.lib.NewWindow(u.cstr(title), int32(width), int32(height), native.Int(hasMenubar))
	w := &Window{}
	w.control = u.wrap(ptr, w)
	u.windows[ptr] = w
	return w
}

func (w *Window) handle() uintptr {
	if w == nil {
		return 0
	}
	return w.ptr
}

// Title returns the window title.
func (w *Window) Title() string {
	return w.ui.takeText(w.ui.lib.WindowTitle(w.ptr))
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.ui.lib.WindowSetTitle(w.ptr, w.ui.cstr(title))
}

// SetChild replaces the window's content. A nil child clears it.
func (w *Window) SetChild(child Control) {
	w.disownAll()
	var p uintptr
	if child != nil {
		w.adopt(child)
		p = child.Handle()
	}
	w.ui.lib.WindowSetChild(w.ptr, p)
}

// Child returns the window's content, or nil.
func (w *Window) Child() Control {
	if len(w.children) == 0 {
		return nil
	}
	return w.children[0]
}

// Margined reports whether the window has a margin around its content.
func (w *Window) Margined() bool {
	return native.Bool(w.ui.lib.WindowMargined(w.ptr))
}

// SetMargined sets whether the window has a margin around its content.
func (w *Window) SetMargined(margined bool) {
	w.ui.lib.WindowSetMargined(w.ptr, native.Int(margined))
}

// Fullscreen reports whether the window is fullscreen.
func (w *Window) Fullscreen() bool {
	if w.ui.lib.WindowFullscreen == nil {
		return false
	}
	return native.Bool(w.ui.lib.WindowFullscreen(w.ptr))
}

// SetFullscreen enters or leaves fullscreen. It does nothing with libui
// builds that lack the call.
func (w *Window) SetFullscreen(fullscreen bool) {
	if w.ui.lib.WindowSetFullscreen == nil {
		w.ui.log.Warn("uigo: uiWindowSetFullscreen not available in this libui")
		return
	}
	w.ui.lib.WindowSetFullscreen(w.ptr, native.Int(fullscreen))
}

// Borderless reports whether the window is drawn without decorations.
func (w *Window) Borderless() bool {
	if w.ui.lib.WindowBorderless == nil {
		return false
	}
	return native.Bool(w.ui.lib.WindowBorderless(w.ptr))
}

// SetBorderless removes or restores the window decorations.
func (w *Window) SetBorderless(borderless bool) {
	if w.ui.lib.WindowSetBorderless == nil {
		w.ui.log.Warn("uigo: uiWindowSetBorderless not available in this libui")
		return
	}
	w.ui.lib.WindowSetBorderless(w.ptr, native.Int(borderless))
}

// ContentSize returns the size of the content area.
func (w *Window) ContentSize() (width, height int) {
	if w.ui.lib.WindowContentSize == nil {
		return 0, 0
	}
	var cw, ch int32
	w.ui.lib.WindowContentSize(w.ptr, &cw, &ch)
	return int(cw), int(ch)
}

// SetContentSize resizes the content area.
func (w *Window) SetContentSize(width, height int) {
	if w.ui.lib.WindowSetContentSize == nil {
		w.ui.log.Warn("uigo: uiWindowSetContentSize not available in this libui")
		return
	}
	w.ui.lib.WindowSetContentSize(w.ptr, int32(width), int32(height))
}

// OnClosing sets the handler run when the user asks to close the window.
// Returning true lets the toolkit destroy the window, after which the
// window and its children must not be used.
func (w *Window) OnClosing(f func(*Window) bool) {
	w.on("closing", dispatch.Predicate, dispatch.PredicateFunc(func(uintptr) bool {
		if !f(w) {
			return false
		}
		w.ui.forget(&w.control)
		return true
	}), w.ui.lib.WindowOnClosing)
}

// OnContentSizeChanged sets the handler run after the user resizes the window.
func (w *Window) OnContentSizeChanged(f func(*Window)) {
	if w.ui.lib.WindowOnContentSizeChanged == nil {
		w.ui.log.Warn("uigo: uiWindowOnContentSizeChanged not available in this libui")
		return
	}
	w.on("content-size-changed", dispatch.Sender, dispatch.Void(func() { f(w) }), w.ui.lib.WindowOnContentSizeChanged)
}
