//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"github.com/obinnaokechukwu/uigo/internal/dispatch"
)

// Combobox is a drop-down list of fixed items.
type Combobox struct {
	control
}

// NewCombobox creates an empty combobox.
func (u *UI) NewCombobox() *Combobox {
	c := &Combobox{}
	c.control = u.wrap(u.lib.NewCombobox(), c)
	return c
}

// Append adds items to the end of the list.
func (c *Combobox) Append(items ...string) {
	for _, item := range items {
		c.ui.lib.ComboboxAppend(c.ptr, c.ui.cstr(item))
	}
}

// Len returns the number of items.
func (c *Combobox) Len() int {
	return int(c.ui.lib.ComboboxNumItems(c.ptr))
}

// Clear removes every item.
func (c *Combobox) Clear() {
	c.ui.lib.ComboboxClear(c.ptr)
}

// Selected returns the selected index, or -1.
func (c *Combobox) Selected() int {
	return int(c.ui.lib.ComboboxSelected(c.ptr))
}

// SetSelected selects item i; -1 clears the selection. OnSelected is not called.
func (c *Combobox) SetSelected(i int) error {
	if i != -1 {
		if err := checkIndex("Combobox.SetSelected", i, c.Len()); err != nil {
			return err
		}
	}
	c.ui.lib.ComboboxSetSelected(c.ptr, int32(i))
	return nil
}

// OnSelected sets the handler run when the user picks an item. It receives
// the selected index.
func (c *Combobox) OnSelected(f func(index int)) {
	c.on("selected", dispatch.Sender, dispatch.Int(c.ui.lib.ComboboxSelected, f), c.ui.lib.ComboboxOnSelected)
}

// EditableCombobox is a text field with a drop-down of suggestions.
type EditableCombobox struct {
	control
}

// NewEditableCombobox creates an empty editable combobox.
func (u *UI) NewEditableCombobox() *EditableCombobox {
	c := &EditableCombobox{}
	c.control = u.wrap(u.lib.NewEditableCombobox(), c)
	return c
}

// Append adds suggestions.
func (c *EditableCombobox) Append(items ...string) {
	for _, item := range items {
		c.ui.lib.EditableComboboxAppend(c.ptr, c.ui.cstr(item))
	}
}

// Text returns the current text.
func (c *EditableCombobox) Text() string {
	return c.ui.takeText(c.ui.lib.EditableComboboxText(c.ptr))
}

// SetText sets the current text. OnChanged is not called.
func (c *EditableCombobox) SetText(text string) {
	c.ui.lib.EditableComboboxSetText(c.ptr, c.ui.cstr(text))
}

// OnChanged sets the handler run after the user types or picks a suggestion.
func (c *EditableCombobox) OnChanged(f func(text string)) {
	get := func(p uintptr) string { return c.ui.takeText(c.ui.lib.EditableComboboxText(p)) }
	c.on("changed", dispatch.Sender, dispatch.String(get, f), c.ui.lib.EditableComboboxOnChanged)
}

// RadioButtons is a group of mutually exclusive options.
type RadioButtons struct {
	control
	n int
}

// NewRadioButtons creates an empty group.
func (u *UI) NewRadioButtons() *RadioButtons {
	r := &RadioButtons{}
	r.control = u.wrap(u.lib.NewRadioButtons(), r)
	return r
}

// Append adds options.
func (r *RadioButtons) Append(items ...string) {
	for _, item := range items {
		r.ui.lib.RadioButtonsAppend(r.ptr, r.ui.cstr(item))
		r.n++
	}
}

// Len returns the number of options.
func (r *RadioButtons) Len() int { return r.n }

// Selected returns the selected index, or -1.
func (r *RadioButtons) Selected() int {
	return int(r.ui.lib.RadioButtonsSelected(r.ptr))
}

// SetSelected selects option i; -1 clears the selection.
func (r *RadioButtons) SetSelected(i int) error {
	if i != -1 {
		if err := checkIndex("RadioButtons.SetSelected", i, r.n); err != nil {
			return err
		}
	}
	r.ui.lib.RadioButtonsSetSelected(r.ptr, int32(i))
	return nil
}

// OnSelected sets the handler run when the user picks an option.
func (r *RadioButtons) OnSelected(f func(index int)) {
	r.on("selected", dispatch.Sender, dispatch.Int(r.ui.lib.RadioButtonsSelected, f), r.ui.lib.RadioButtonsOnSelected)
}
