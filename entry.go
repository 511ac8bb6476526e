//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"github.com/obinnaokechukwu/uigo/internal/dispatch"
	"github.com/obinnaokechukwu/uigo/internal/native"
)

// Entry is a single-line text field.
type Entry struct {
	control
}

func (u *UI) newEntry(ptr uintptr) *Entry {
	e := &Entry{}
	e.control = u.wrap(ptr, e)
	return e
}

// NewEntry creates an empty text field.
func (u *UI) NewEntry() *Entry { return u.newEntry(u.lib.NewEntry()) }

// NewPasswordEntry creates a text field that hides its contents.
func (u *UI) NewPasswordEntry() *Entry { return u.newEntry(u.lib.NewPasswordEntry()) }

// NewSearchEntry creates a text field styled for search.
func (u *UI) NewSearchEntry() *Entry { return u.newEntry(u.lib.NewSearchEntry()) }

// Text returns the field's contents.
func (e *Entry) Text() string {
	return e.ui.takeText(e.ui.lib.EntryText(e.ptr))
}

// SetText replaces the field's contents. OnChanged is not called.
func (e *Entry) SetText(text string) {
	e.ui.lib.EntrySetText(e.ptr, e.ui.cstr(text))
}

// ReadOnly reports whether the user can edit the field.
func (e *Entry) ReadOnly() bool {
	return native.Bool(e.ui.lib.EntryReadOnly(e.ptr))
}

// SetReadOnly allows or forbids editing.
func (e *Entry) SetReadOnly(readonly bool) {
	e.ui.lib.EntrySetReadOnly(e.ptr, native.Int(readonly))
}

// OnChanged sets the handler run after the user edits the field. It
// receives the new contents.
func (e *Entry) OnChanged(f func(text string)) {
	get := func(p uintptr) string { return e.ui.takeText(e.ui.lib.EntryText(p)) }
	e.on("changed", dispatch.Sender, dispatch.String(get, f), e.ui.lib.EntryOnChanged)
}

// MultilineEntry is a multi-line text area.
type MultilineEntry struct {
	control
}

// NewMultilineEntry creates a text area that wraps long lines.
func (u *UI) NewMultilineEntry() *MultilineEntry {
	e := &MultilineEntry{}
	e.control = u.wrap(u.lib.NewMultilineEntry(), e)
	return e
}

// NewNonWrappingMultilineEntry creates a text area that scrolls long lines.
func (u *UI) NewNonWrappingMultilineEntry() *MultilineEntry {
	e := &MultilineEntry{}
	e.control = u.wrap(u.lib.NewNonWrappingMultilineEntry(), e)
	return e
}

// Text returns the contents with "\n" line endings.
func (e *MultilineEntry) Text() string {
	return e.ui.takeText(e.ui.lib.MultilineEntryText(e.ptr))
}

// SetText replaces the contents. OnChanged is not called.
func (e *MultilineEntry) SetText(text string) {
	e.ui.lib.MultilineEntrySetText(e.ptr, e.ui.cstr(text))
}

// Append adds text at the end.
func (e *MultilineEntry) Append(text string) {
	e.ui.lib.MultilineEntryAppend(e.ptr, e.ui.cstr(text))
}

// ReadOnly reports whether the user can edit the text.
func (e *MultilineEntry) ReadOnly() bool {
	return native.Bool(e.ui.lib.MultilineEntryReadOnly(e.ptr))
}

// SetReadOnly allows or forbids editing.
func (e *MultilineEntry) SetReadOnly(readonly bool) {
	e.ui.lib.MultilineEntrySetReadOnly(e.ptr, native.Int(readonly))
}

// OnChanged sets the handler run after the user edits the text.
func (e *MultilineEntry) OnChanged(f func(text string)) {
	get := func(p uintptr) string { return e.ui.takeText(e.ui.lib.MultilineEntryText(p)) }
	e.on("changed", dispatch.Sender, dispatch.String(get, f), e.ui.lib.MultilineEntryOnChanged)
}
