//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/obinnaokechukwu/uigo/text"
)

// Node kinds understood by Build.
const (
	KindVerticalBox      = "vbox"
	KindHorizontalBox    = "hbox"
	KindGroup            = "group"
	KindForm             = "form"
	KindTab              = "tab"
	KindButton           = "button"
	KindCheckbox         = "checkbox"
	KindLabel            = "label"
	KindEntry            = "entry"
	KindPasswordEntry    = "password-entry"
	KindSearchEntry      = "search-entry"
	KindMultilineEntry   = "multiline-entry"
	KindSpinbox          = "spinbox"
	KindSlider           = "slider"
	KindProgressBar      = "progressbar"
	KindCombobox         = "combobox"
	KindEditableCombobox = "editable-combobox"
	KindRadioButtons     = "radiobuttons"
	KindHSeparator       = "hseparator"
	KindVSeparator       = "vseparator"
	KindColorButton      = "colorbutton"
	KindFontButton       = "fontbutton"
	KindDateTimePicker   = "datetimepicker"
	KindDatePicker       = "datepicker"
	KindTimePicker       = "timepicker"
)

// Node describes one control of a layout. Fields that do not apply to a
// kind are ignored.
type Node struct {
	Kind string `json:"kind"`
	// Name registers the control in the Tree. Names are unique per layout.
	Name string `json:"name,omitempty"`
	// Text is the label, title or initial contents.
	Text     string   `json:"text,omitempty"`
	Min      int      `json:"min,omitempty"`
	Max      int      `json:"max,omitempty"`
	Items    []string `json:"items,omitempty"`
	Padded   bool     `json:"padded,omitempty"`
	Margined bool     `json:"margined,omitempty"`
	ReadOnly bool     `json:"readonly,omitempty"`

	// Stretchy and Label describe the slot the node occupies in its
	// parent: box and form stretch, form row label, tab page name.
	Stretchy bool   `json:"stretchy,omitempty"`
	Label    string `json:"label,omitempty"`

	Children []Node `json:"children,omitempty"`
}

// Tree is a built layout.
type Tree struct {
	root  Control
	named map[string]Control
}

// Root returns the top control.
func (t *Tree) Root() Control { return t.root }

// Lookup returns the control registered under name.
func (t *Tree) Lookup(name string) (Control, bool) {
	c, ok := t.named[name]
	return c, ok
}

// Names returns the registered names in order.
func (t *Tree) Names() []string {
	names := make([]string, 0, len(t.named))
	for n := range t.named {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Find returns the control registered under name as a T.
func Find[T Control](t *Tree, name string) (T, error) {
	var zero T
	c, ok := t.named[name]
	if !ok {
		return zero, fmt.Errorf("%w: no control named %q", ErrLayout, name)
	}
	v, ok := c.(T)
	if !ok {
		return zero, fmt.Errorf("%w: control %q is %T, not %T", ErrLayout, name, c, zero)
	}
	return v, nil
}

// LoadLayout decodes a JSON layout description.
func LoadLayout(r io.Reader) (Node, error) {
	var n Node
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&n); err != nil {
		return Node{}, fmt.Errorf("%w: %v", ErrLayout, err)
	}
	return n, nil
}

// Build creates the controls n describes. The whole description is checked
// before any control is created, so an invalid layout creates nothing.
func (u *UI) Build(n Node) (*Tree, error) {
	if err := validate(n, n.Kind, make(map[string]bool)); err != nil {
		return nil, err
	}
	t := &Tree{named: make(map[string]Control)}
	t.root = u.build(n, t)
	return t, nil
}

func isContainer(kind string) bool {
	switch kind {
	case KindVerticalBox, KindHorizontalBox, KindGroup, KindForm, KindTab:
		return true
	}
	return false
}

func isLeaf(kind string) bool {
	switch kind {
	case KindButton, KindCheckbox, KindLabel, KindEntry, KindPasswordEntry,
		KindSearchEntry, KindMultilineEntry, KindSpinbox, KindSlider,
		KindProgressBar, KindCombobox, KindEditableCombobox, KindRadioButtons,
		KindHSeparator, KindVSeparator, KindColorButton, KindFontButton,
		KindDateTimePicker, KindDatePicker, KindTimePicker:
		return true
	}
	return false
}

func validate(n Node, path string, names map[string]bool) error {
	switch {
	case isContainer(n.Kind):
		if n.Kind == KindGroup && len(n.Children) > 1 {
			return fmt.Errorf("%w: %s: group holds at most one child, got %d", ErrLayout, path, len(n.Children))
		}
	case isLeaf(n.Kind):
		if len(n.Children) > 0 {
			return fmt.Errorf("%w: %s: %s cannot have children", ErrLayout, path, n.Kind)
		}
	default:
		return fmt.Errorf("%w: %s: unknown kind %q", ErrLayout, path, n.Kind)
	}
	if err := checkStrings(path, append([]string{n.Text, n.Label}, n.Items...)...); err != nil {
		return err
	}
	if n.Name != "" {
		if names[n.Name] {
			return fmt.Errorf("%w: %s: duplicate name %q", ErrLayout, path, n.Name)
		}
		names[n.Name] = true
	}
	for i, c := range n.Children {
		if err := validate(c, fmt.Sprintf("%s/%d:%s", path, i, c.Kind), names); err != nil {
			return err
		}
	}
	return nil
}

// checkStrings rejects strings the toolkit cannot take, so a bad layout
// fails validation instead of panicking halfway through a build.
func checkStrings(path string, ss ...string) error {
	for _, s := range ss {
		if _, err := text.Encode(s, text.LF); err != nil {
			return fmt.Errorf("%w: %s: %q: %v", ErrLayout, path, s, err)
		}
	}
	return nil
}

func (u *UI) build(n Node, t *Tree) Control {
	var c Control
	switch n.Kind {
	case KindVerticalBox, KindHorizontalBox:
		b := u.NewHorizontalBox
		if n.Kind == KindVerticalBox {
			b = u.NewVerticalBox
		}
		box := b()
		box.SetPadded(n.Padded)
		for _, child := range n.Children {
			box.Append(u.build(child, t), child.Stretchy)
		}
		c = box
	case KindGroup:
		g := u.NewGroup(n.Text)
		g.SetMargined(n.Margined)
		if len(n.Children) == 1 {
			g.SetChild(u.build(n.Children[0], t))
		}
		c = g
	case KindForm:
		f := u.NewForm()
		f.SetPadded(n.Padded)
		for _, child := range n.Children {
			f.Append(child.Label, u.build(child, t), child.Stretchy)
		}
		c = f
	case KindTab:
		tab := u.NewTab()
		for i, child := range n.Children {
			tab.Append(child.Label, u.build(child, t))
			if child.Margined {
				_ = tab.SetMargined(i, true)
			}
		}
		c = tab
	case KindButton:
		c = u.NewButton(n.Text)
	case KindCheckbox:
		c = u.NewCheckbox(n.Text)
	case KindLabel:
		c = u.NewLabel(n.Text)
	case KindEntry, KindPasswordEntry, KindSearchEntry:
		var e *Entry
		switch n.Kind {
		case KindPasswordEntry:
			e = u.NewPasswordEntry()
		case KindSearchEntry:
			e = u.NewSearchEntry()
		default:
			e = u.NewEntry()
		}
		if n.Text != "" {
			e.SetText(n.Text)
		}
		e.SetReadOnly(n.ReadOnly)
		c = e
	case KindMultilineEntry:
		e := u.NewMultilineEntry()
		if n.Text != "" {
			e.SetText(n.Text)
		}
		e.SetReadOnly(n.ReadOnly)
		c = e
	case KindSpinbox:
		c = u.NewSpinbox(n.Min, n.Max)
	case KindSlider:
		c = u.NewSlider(n.Min, n.Max)
	case KindProgressBar:
		c = u.NewProgressBar()
	case KindCombobox:
		cb := u.NewCombobox()
		cb.Append(n.Items...)
		c = cb
	case KindEditableCombobox:
		cb := u.NewEditableCombobox()
		cb.Append(n.Items...)
		if n.Text != "" {
			cb.SetText(n.Text)
		}
		c = cb
	case KindRadioButtons:
		r := u.NewRadioButtons()
		r.Append(n.Items...)
		c = r
	case KindHSeparator:
		c = u.NewHorizontalSeparator()
	case KindVSeparator:
		c = u.NewVerticalSeparator()
	case KindColorButton:
		c = u.NewColorButton()
	case KindFontButton:
		c = u.NewFontButton()
	case KindDateTimePicker:
		c = u.NewDateTimePicker()
	case KindDatePicker:
		c = u.NewDatePicker()
	case KindTimePicker:
		c = u.NewTimePicker()
	}
	if n.Name != "" {
		t.named[n.Name] = c
	}
	return c
}

// MenuNode describes a menu for BuildMenus.
type MenuNode struct {
	Name  string         `json:"name"`
	Items []MenuItemNode `json:"items,omitempty"`
}

// MenuItemNode describes one menu entry. Kind is "item" (the default),
// "check", "quit", "preferences", "about" or "separator". Key names the
// item in the map BuildMenus returns and defaults to Text.
type MenuItemNode struct {
	Kind string `json:"kind,omitempty"`
	Text string `json:"text,omitempty"`
	Key  string `json:"key,omitempty"`
}

// BuildMenus creates menus in order and returns their items by key.
// Separators have no key.
func (u *UI) BuildMenus(menus []MenuNode) (map[string]*MenuItem, error) {
	keys := make(map[string]bool)
	for _, m := range menus {
		if err := checkStrings("menu", m.Name); err != nil {
			return nil, err
		}
		for i, it := range m.Items {
			if err := checkStrings(fmt.Sprintf("menu %q item %d", m.Name, i), it.Text); err != nil {
				return nil, err
			}
			switch it.Kind {
			case "", "item", "check", "quit", "preferences", "about":
			case "separator":
				continue
			default:
				return nil, fmt.Errorf("%w: menu %q item %d: unknown kind %q", ErrLayout, m.Name, i, it.Kind)
			}
			k := it.key()
			if k == "" {
				return nil, fmt.Errorf("%w: menu %q item %d has no text or key", ErrLayout, m.Name, i)
			}
			if keys[k] {
				return nil, fmt.Errorf("%w: menu %q: duplicate item key %q", ErrLayout, m.Name, k)
			}
			keys[k] = true
		}
	}

	items := make(map[string]*MenuItem, len(keys))
	for _, m := range menus {
		menu := u.NewMenu(m.Name)
		for _, it := range m.Items {
			var item *MenuItem
			switch it.Kind {
			case "separator":
				menu.AppendSeparator()
				continue
			case "check":
				item = menu.AppendCheckItem(it.Text)
			case "quit":
				item = menu.AppendQuitItem()
			case "preferences":
				item = menu.AppendPreferencesItem()
			case "about":
				item = menu.AppendAboutItem()
			default:
				item = menu.AppendItem(it.Text)
			}
			items[it.key()] = item
		}
	}
	return items, nil
}

func (it MenuItemNode) key() string {
	switch {
	case it.Key != "":
		return it.Key
	case it.Text != "":
		return it.Text
	case it.Kind == "quit", it.Kind == "preferences", it.Kind == "about":
		return it.Kind
	default:
		return ""
	}
}
