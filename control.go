//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"github.com/obinnaokechukwu/uigo/internal/dispatch"
	"github.com/obinnaokechukwu/uigo/internal/native"
)

// Control is implemented by every widget that can be placed in a window or
// container. The set of implementations is closed.
type Control interface {
	// Handle returns the toolkit's uiControl pointer.
	Handle() uintptr
	Visible() bool
	Show()
	Hide()
	Enabled() bool
	Enable()
	Disable()
	// Destroy destroys the control and its children. It fails with
	// ErrAttached if the control still has a parent and with ErrDestroyed
	// if it is already gone.
	Destroy() error
	// Destroyed reports whether the native control has been destroyed.
	Destroyed() bool

	base() *control
}

// control is embedded by every widget. It tracks the parent and children
// the wrapper attached, so destruction can release the callbacks of a whole
// subtree under PolicyWidgetBound.
type control struct {
	ui       *UI
	ptr      uintptr
	self     Control
	parent   Control
	children []Control
	dead     bool

	// onDestroy runs once the native control is gone.
	onDestroy func()
}

func (c *control) base() *control { return c }

func (c *control) Handle() uintptr { return c.ptr }

func (c *control) Visible() bool { return native.Bool(c.ui.lib.ControlVisible(c.ptr)) }

func (c *control) Show() { c.ui.lib.ControlShow(c.ptr) }

func (c *control) Hide() { c.ui.lib.ControlHide(c.ptr) }

func (c *control) Enabled() bool { return native.Bool(c.ui.lib.ControlEnabled(c.ptr)) }

func (c *control) Enable() { c.ui.lib.ControlEnable(c.ptr) }

func (c *control) Disable() { c.ui.lib.ControlDisable(c.ptr) }

func (c *control) Destroyed() bool { return c.dead }

func (c *control) Destroy() error {
	if c.ui.closed {
		return ErrClosed
	}
	if c.dead {
		return ErrDestroyed
	}
	if c.parent != nil {
		return ErrAttached
	}
	c.ui.lib.ControlDestroy(c.ptr)
	c.ui.forget(c)
	return nil
}

// adopt records child under parent. A control can only have one parent.
func (c *control) adopt(child Control) {
	cb := child.base()
	if cb.parent != nil {
		panic("uigo: control already has a parent")
	}
	cb.parent = c.self
	c.children = append(c.children, child)
}

// disown detaches the i-th child.
func (c *control) disown(i int) Control {
	child := c.children[i]
	child.base().parent = nil
	c.children = append(c.children[:i], c.children[i+1:]...)
	return child
}

// disownAll detaches every child.
func (c *control) disownAll() {
	for _, child := range c.children {
		child.base().parent = nil
	}
	c.children = nil
}

// on binds a callback to event on the control. A destroyed control keeps
// no callbacks: the registration is refused with a warning.
func (c *control) on(event string, tr *dispatch.Trampoline, v any, register func(widget, fn, data uintptr)) {
	if c.dead {
		c.ui.log.Warn("uigo: callback on a destroyed control ignored", "control", c.ptr, "event", event)
		return
	}
	c.ui.bind(c.ptr, event, tr, v, register)
}

// forget marks c and every descendant the wrapper knows about as dead and
// applies the callback policy, after the toolkit destroyed them.
func (u *UI) forget(c *control) {
	if c.dead {
		return
	}
	c.dead = true
	for _, child := range c.children {
		u.forget(child.base())
	}
	n := u.handles.DestroyWidget(c.ptr)
	delete(u.windows, c.ptr)
	if c.onDestroy != nil {
		c.onDestroy()
	}
	u.log.Debug("uigo: control destroyed", "control", c.ptr, "released", n)
}

// wrap returns the embedded part of a new widget wrapper.
func (u *UI) wrap(ptr uintptr, self Control) control {
	return control{ui: u, ptr: ptr, self: self}
}
