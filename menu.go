//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"github.com/obinnaokechukwu/uigo/internal/dispatch"
	"github.com/obinnaokechukwu/uigo/internal/native"
)

// Menu is a menu in the menubar of every window created with hasMenubar.
// All menus must be created before the first window. Menus live until
// Close.
type Menu struct {
	ui  *UI
	ptr uintptr
}

// MenuItemKind distinguishes the entries a menu can hold.
type MenuItemKind int

const (
	// MenuItemPlain is an ordinary item with a caption.
	MenuItemPlain MenuItemKind = iota
	// MenuItemCheck toggles a check mark each time it is clicked.
	MenuItemCheck
	// MenuItemQuit is the platform quit item. Clicking it runs the
	// OnShouldQuit handler instead of an item handler.
	MenuItemQuit
	// MenuItemPreferences is the platform preferences item.
	MenuItemPreferences
	// MenuItemAbout is the platform about item.
	MenuItemAbout
)

// MenuItem is an entry in a Menu.
type MenuItem struct {
	ui   *UI
	ptr  uintptr
	kind MenuItemKind
}

// NewMenu creates a menu named name.
func (u *UI) NewMenu(name string) *Menu {
	return &Menu{ui: u, ptr: u.lib.NewMenu(u.cstr(name))}
}

func (m *Menu) item(ptr uintptr, kind MenuItemKind) *MenuItem {
	return &MenuItem{ui: m.ui, ptr: ptr, kind: kind}
}

// AppendItem adds a plain item.
func (m *Menu) AppendItem(name string) *MenuItem {
	return m.item(m.ui.lib.MenuAppendItem(m.ptr, m.ui.cstr(name)), MenuItemPlain)
}

// AppendCheckItem adds an item with a check mark.
func (m *Menu) AppendCheckItem(name string) *MenuItem {
	return m.item(m.ui.lib.MenuAppendCheckItem(m.ptr, m.ui.cstr(name)), MenuItemCheck)
}

// AppendQuitItem adds the platform's Quit item. Clicking it consults the
// handler set with UI.OnShouldQuit.
func (m *Menu) AppendQuitItem() *MenuItem {
	return m.item(m.ui.lib.MenuAppendQuitItem(m.ptr), MenuItemQuit)
}

// AppendPreferencesItem adds the platform's Preferences item.
func (m *Menu) AppendPreferencesItem() *MenuItem {
	return m.item(m.ui.lib.MenuAppendPreferencesItem(m.ptr), MenuItemPreferences)
}

// AppendAboutItem adds the platform's About item.
func (m *Menu) AppendAboutItem() *MenuItem {
	return m.item(m.ui.lib.MenuAppendAboutItem(m.ptr), MenuItemAbout)
}

// AppendSeparator adds a separator line.
func (m *Menu) AppendSeparator() {
	m.ui.lib.MenuAppendSeparator(m.ptr)
}

// Kind returns the item kind.
func (i *MenuItem) Kind() MenuItemKind { return i.kind }

// Enable makes the item selectable.
func (i *MenuItem) Enable() { i.ui.lib.MenuItemEnable(i.ptr) }

// Disable greys the item out.
func (i *MenuItem) Disable() { i.ui.lib.MenuItemDisable(i.ptr) }

// Checked reports whether a check item is checked.
func (i *MenuItem) Checked() bool { return native.Bool(i.ui.lib.MenuItemChecked(i.ptr)) }

// SetChecked checks or unchecks a check item.
func (i *MenuItem) SetChecked(checked bool) {
	i.ui.lib.MenuItemSetChecked(i.ptr, native.Int(checked))
}

// OnClicked sets the handler run when the item is chosen. It receives the
// window whose menubar was used, or nil if the window is unknown.
// Quit items ignore OnClicked; use UI.OnShouldQuit.
func (i *MenuItem) OnClicked(f func(item *MenuItem, w *Window)) {
	if i.kind == MenuItemQuit {
		i.ui.log.Warn("uigo: OnClicked on a quit item is ignored; use OnShouldQuit")
		return
	}
	i.ui.bind(i.ptr, "clicked", dispatch.Menu, dispatch.MenuFunc(func(_, window uintptr) {
		f(i, i.ui.windows[window])
	}), i.ui.lib.MenuItemOnClicked)
}
