//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"github.com/obinnaokechukwu/uigo/internal/dispatch"
	"github.com/obinnaokechukwu/uigo/internal/native"
)

// Button is a push button.
type Button struct {
	control
}

// NewButton creates a button labelled text.
func (u *UI) NewButton(text string) *Button {
	b := &Button{}
	b.control = u.wrap(u.lib.NewButton(u.cstr(text)), b)
	return b
}

// Text returns the button label.
func (b *Button) Text() string {
	return b.ui.takeText(b.ui.lib.ButtonText(b.ptr))
}

// SetText sets the button label.
func (b *Button) SetText(text string) {
	b.ui.lib.ButtonSetText(b.ptr, b.ui.cstr(text))
}

// OnClicked sets the handler run when the button is clicked, replacing any
// previous handler.
func (b *Button) OnClicked(f func(*Button)) {
	b.on("clicked", dispatch.Sender, dispatch.Void(func() { f(b) }), b.ui.lib.ButtonOnClicked)
}

// Checkbox is a labelled check box.
type Checkbox struct {
	control
}

// NewCheckbox creates an unchecked checkbox.
func (u *UI) NewCheckbox(text string) *Checkbox {
	c := &Checkbox{}
	c.control = u.wrap(u.lib.NewCheckbox(u.cstr(text)), c)
	return c
}

// Text returns the checkbox label.
func (c *Checkbox) Text() string {
	return c.ui.takeText(c.ui.lib.CheckboxText(c.ptr))
}

// SetText sets the checkbox label.
func (c *Checkbox) SetText(text string) {
	c.ui.lib.CheckboxSetText(c.ptr, c.ui.cstr(text))
}

// Checked reports whether the box is checked.
func (c *Checkbox) Checked() bool {
	return native.Bool(c.ui.lib.CheckboxChecked(c.ptr))
}

// SetChecked checks or unchecks the box. OnToggled is not called.
func (c *Checkbox) SetChecked(checked bool) {
	c.ui.lib.CheckboxSetChecked(c.ptr, native.Int(checked))
}

// OnToggled sets the handler run when the user toggles the box. It receives
// the new state.
func (c *Checkbox) OnToggled(f func(checked bool)) {
	c.on("toggled", dispatch.Sender, dispatch.Bool(c.ui.lib.CheckboxChecked, f), c.ui.lib.CheckboxOnToggled)
}

// Label is a static text label.
type Label struct {
	control
}

// NewLabel creates a label.
func (u *UI) NewLabel(text string) *Label {
	l := &Label{}
	l.control = u.wrap(u.lib.NewLabel(u.cstr(text)), l)
	return l
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.ui.takeText(l.ui.lib.LabelText(l.ptr))
}

// SetText sets the label text.
func (l *Label) SetText(text string) {
	l.ui.lib.LabelSetText(l.ptr, l.ui.cstr(text))
}

// Separator is a horizontal or vertical rule.
type Separator struct {
	control
}

// NewHorizontalSeparator creates a horizontal rule.
func (u *UI) NewHorizontalSeparator() *Separator {
	s := &Separator{}
	s.control = u.wrap(u.lib.NewHorizontalSeparator(), s)
	return s
}

// NewVerticalSeparator creates a vertical rule.
func (u *UI) NewVerticalSeparator() *Separator {
	s := &Separator{}
	s.control = u.wrap(u.lib.NewVerticalSeparator(), s)
	return s
}
