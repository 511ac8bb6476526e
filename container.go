//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"github.com/obinnaokechukwu/uigo/internal/native"
)

// Box stacks children horizontally or vertically.
type Box struct {
	control
	vertical bool
}

// NewVerticalBox creates a box that stacks children top to bottom.
func (u *UI) NewVerticalBox() *Box {
	b := &Box{vertical: true}
	b.control = u.wrap(u.lib.NewVerticalBox(), b)
	return b
}

// NewHorizontalBox creates a box that lays children out left to right.
func (u *UI) NewHorizontalBox() *Box {
	b := &Box{}
	b.control = u.wrap(u.lib.NewHorizontalBox(), b)
	return b
}

// Vertical reports the box orientation.
func (b *Box) Vertical() bool { return b.vertical }

// Append adds child at the end. A stretchy child takes a share of any
// extra space.
func (b *Box) Append(child Control, stretchy bool) {
	b.adopt(child)
	b.ui.lib.BoxAppend(b.ptr, child.Handle(), native.Int(stretchy))
}

// Len returns the number of children.
func (b *Box) Len() int { return len(b.children) }

// Child returns the i-th child.
func (b *Box) Child(i int) (Control, error) {
	if err := checkIndex("Box.Child", i, len(b.children)); err != nil {
		return nil, err
	}
	return b.children[i], nil
}

// Delete removes the i-th child without destroying it. The removed child
// can be appended elsewhere or destroyed.
func (b *Box) Delete(i int) (Control, error) {
	if err := checkIndex("Box.Delete", i, len(b.children)); err != nil {
		return nil, err
	}
	b.ui.lib.BoxDelete(b.ptr, int32(i))
	return b.disown(i), nil
}

// Padded reports whether children are separated by padding.
func (b *Box) Padded() bool { return native.Bool(b.ui.lib.BoxPadded(b.ptr)) }

// SetPadded sets whether children are separated by padding.
func (b *Box) SetPadded(padded bool) { b.ui.lib.BoxSetPadded(b.ptr, native.Int(padded)) }

// Group is a titled frame around a single child.
type Group struct {
	control
}

// NewGroup creates an empty group.
func (u *UI) NewGroup(title string) *Group {
	g := &Group{}
	g.control = u.wrap(u.lib.NewGroup(u.cstr(title)), g)
	return g
}

// Title returns the group title.
func (g *Group) Title() string {
	return g.ui.takeText(g.ui.lib.GroupTitle(g.ptr))
}

// SetTitle sets the group title.
func (g *Group) SetTitle(title string) {
	g.ui.lib.GroupSetTitle(g.ptr, g.ui.cstr(title))
}

// SetChild replaces the group's content. A nil child clears it.
func (g *Group) SetChild(child Control) {
	g.disownAll()
	var p uintptr
	if child != nil {
		g.adopt(child)
		p = child.Handle()
	}
	g.ui.lib.GroupSetChild(g.ptr, p)
}

// Child returns the group's content, or nil.
func (g *Group) Child() Control {
	if len(g.children) == 0 {
		return nil
	}
	return g.children[0]
}

// Margined reports whether the group has a margin around its child.
func (g *Group) Margined() bool { return native.Bool(g.ui.lib.GroupMargined(g.ptr)) }

// SetMargined sets whether the group has a margin around its child.
func (g *Group) SetMargined(margined bool) {
	g.ui.lib.GroupSetMargined(g.ptr, native.Int(margined))
}

// Form lays children out in two columns, labels on the left.
type Form struct {
	control
}

// NewForm creates an empty form.
func (u *UI) NewForm() *Form {
	f := &Form{}
	f.control = u.wrap(u.lib.NewForm(), f)
	return f
}

// Append adds a labelled row.
func (f *Form) Append(label string, child Control, stretchy bool) {
	f.adopt(child)
	f.ui.lib.FormAppend(f.ptr, f.ui.cstr(label), child.Handle(), native.Int(stretchy))
}

// Len returns the number of rows.
func (f *Form) Len() int { return len(f.children) }

// Delete removes the i-th row without destroying its control.
func (f *Form) Delete(i int) (Control, error) {
	if err := checkIndex("Form.Delete", i, len(f.children)); err != nil {
		return nil, err
	}
	f.ui.lib.FormDelete(f.ptr, int32(i))
	return f.disown(i), nil
}

// Padded reports whether rows are separated by padding.
func (f *Form) Padded() bool { return native.Bool(f.ui.lib.FormPadded(f.ptr)) }

// SetPadded sets whether rows are separated by padding.
func (f *Form) SetPadded(padded bool) { f.ui.lib.FormSetPadded(f.ptr, native.Int(padded)) }

// Tab is a set of pages selected by tabs.
type Tab struct {
	control
}

// NewTab creates a tab group with no pages.
func (u *UI) NewTab() *Tab {
	t := &Tab{}
	t.control = u.wrap(u.lib.NewTab(), t)
	return t
}

// Append adds a page named name at the end.
func (t *Tab) Append(name string, child Control) {
	t.adopt(child)
	t.ui.lib.TabAppend(t.ptr, t.ui.cstr(name), child.Handle())
}

// InsertAt inserts a page before index i; i == Len appends.
func (t *Tab) InsertAt(name string, i int, child Control) error {
	if i != len(t.children) {
		if err := checkIndex("Tab.InsertAt", i, len(t.children)); err != nil {
			return err
		}
	}
	t.adopt(child)
	// adopt appended; move the child into place.
	copy(t.children[i+1:], t.children[i:len(t.children)-1])
	t.children[i] = child
	t.ui.lib.TabInsertAt(t.ptr, t.ui.cstr(name), int32(i), child.Handle())
	return nil
}

// Len returns the number of pages.
func (t *Tab) Len() int { return int(t.ui.lib.TabNumPages(t.ptr)) }

// Delete removes page i without destroying its control. An index outside
// the tab group returns an *IndexError and leaves the group unchanged.
func (t *Tab) Delete(i int) (Control, error) {
	if err := checkIndex("Tab.Delete", i, t.Len()); err != nil {
		return nil, err
	}
	t.ui.lib.TabDelete(t.ptr, int32(i))
	return t.disown(i), nil
}

// Margined reports whether page i has a margin.
func (t *Tab) Margined(i int) (bool, error) {
	if err := checkIndex("Tab.Margined", i, t.Len()); err != nil {
		return false, err
	}
	return native.Bool(t.ui.lib.TabMargined(t.ptr, int32(i))), nil
}

// SetMargined sets whether page i has a margin.
func (t *Tab) SetMargined(i int, margined bool) error {
	if err := checkIndex("Tab.SetMargined", i, t.Len()); err != nil {
		return err
	}
	t.ui.lib.TabSetMargined(t.ptr, int32(i), native.Int(margined))
	return nil
}
