//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"errors"
	"strings"
	"testing"
)

const settingsLayout = `{
	"kind": "vbox",
	"padded": true,
	"children": [
		{"kind": "form", "padded": true, "children": [
			{"kind": "entry", "name": "user", "label": "User", "text": "alice"},
			{"kind": "password-entry", "name": "password", "label": "Password"},
			{"kind": "spinbox", "name": "retries", "label": "Retries", "min": 0, "max": 5}
		]},
		{"kind": "group", "text": "Mode", "margined": true, "children": [
			{"kind": "radiobuttons", "name": "mode", "items": ["fast", "safe"]}
		]},
		{"kind": "tab", "stretchy": true, "children": [
			{"kind": "multiline-entry", "name": "notes", "label": "Notes", "margined": true},
			{"kind": "combobox", "name": "level", "label": "Level", "items": ["low", "mid", "high"]}
		]},
		{"kind": "button", "name": "save", "text": "Save"}
	]
}`

func TestLoadAndBuildLayout(t *testing.T) {
	u, tk := newTestUI(t, Options{})

	n, err := LoadLayout(strings.NewReader(settingsLayout))
	if err != nil {
		t.Fatal(err)
	}
	tree, err := u.Build(n)
	if err != nil {
		t.Fatal(err)
	}

	root, ok := tree.Root().(*Box)
	if !ok || root.Len() != 4 {
		t.Fatalf("root = %T", tree.Root())
	}
	if got := strings.Join(tree.Names(), ","); got != "level,mode,notes,password,retries,save,user" {
		t.Errorf("Names = %s", got)
	}

	user, err := Find[*Entry](tree, "user")
	if err != nil {
		t.Fatal(err)
	}
	if user.Text() != "alice" {
		t.Errorf("user = %q", user.Text())
	}
	retries, err := Find[*Spinbox](tree, "retries")
	if err != nil {
		t.Fatal(err)
	}
	if w := tk.Widget(retries.Handle()); w.Min != 0 || w.Max != 5 {
		t.Errorf("retries range = [%d, %d]", w.Min, w.Max)
	}
	level, err := Find[*Combobox](tree, "level")
	if err != nil {
		t.Fatal(err)
	}
	if level.Len() != 3 {
		t.Errorf("level items = %d", level.Len())
	}

	c, err := root.Child(2)
	if err != nil {
		t.Fatal(err)
	}
	tab := c.(*Tab)
	if m, err := tab.Margined(0); err != nil || !m {
		t.Errorf("Margined(0) = %v, %v", m, err)
	}
	if w := tk.Widget(root.Handle()); !w.Stretchy[2] || w.Stretchy[0] {
		t.Errorf("stretchy = %v", w.Stretchy)
	}

	saved := false
	save, _ := Find[*Button](tree, "save")
	save.OnClicked(func(*Button) { saved = true })
	tk.Click(save.Handle())
	if !saved {
		t.Error("handler on a built button did not run")
	}
}

func TestBuildChoosers(t *testing.T) {
	u, tk := newTestUI(t, Options{})
	tree, err := u.Build(Node{Kind: KindVerticalBox, Children: []Node{
		{Kind: KindColorButton, Name: "color"},
		{Kind: KindFontButton, Name: "font"},
		{Kind: KindDateTimePicker, Name: "when"},
		{Kind: KindDatePicker, Name: "day"},
		{Kind: KindTimePicker, Name: "clock"},
	}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Find[*ColorButton](tree, "color"); err != nil {
		t.Error(err)
	}
	if _, err := Find[*FontButton](tree, "font"); err != nil {
		t.Error(err)
	}
	for name, kind := range map[string]string{"when": "datetimepicker", "day": "datepicker", "clock": "timepicker"} {
		d, err := Find[*DateTimePicker](tree, name)
		if err != nil {
			t.Error(err)
			continue
		}
		if k := tk.Widget(d.Handle()).Kind; k != kind {
			t.Errorf("%s: kind = %s, want %s", name, k, kind)
		}
	}
}

func TestFindErrors(t *testing.T) {
	u, _ := newTestUI(t, Options{})
	tree, err := u.Build(Node{Kind: KindVerticalBox, Children: []Node{{Kind: KindButton, Name: "ok"}}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Find[*Entry](tree, "ok"); !errors.Is(err, ErrLayout) {
		t.Errorf("wrong type: err = %v", err)
	}
	if _, err := Find[*Button](tree, "missing"); !errors.Is(err, ErrLayout) {
		t.Errorf("missing: err = %v", err)
	}
	c, ok := tree.Lookup("ok")
	if _, isButton := c.(*Button); !ok || !isButton {
		t.Errorf("Lookup(ok) = %T, %v", c, ok)
	}
}

func TestBuildRejectsInvalidLayouts(t *testing.T) {
	tests := []struct {
		name string
		node Node
		msg  string
	}{
		{
			name: "unknown kind",
			node: Node{Kind: KindVerticalBox, Children: []Node{{Kind: KindButton}, {Kind: "knob"}}},
			msg:  `unknown kind "knob"`,
		},
		{
			name: "leaf with children",
			node: Node{Kind: KindLabel, Children: []Node{{Kind: KindButton}}},
			msg:  "cannot have children",
		},
		{
			name: "group with two children",
			node: Node{Kind: KindGroup, Children: []Node{{Kind: KindButton}, {Kind: KindLabel}}},
			msg:  "at most one child",
		},
		{
			name: "duplicate name",
			node: Node{Kind: KindHorizontalBox, Children: []Node{
				{Kind: KindButton, Name: "go"},
				{Kind: KindVerticalBox, Children: []Node{{Kind: KindCheckbox, Name: "go"}}},
			}},
			msg: `duplicate name "go"`,
		},
		{
			name: "NUL in text",
			node: Node{Kind: KindVerticalBox, Children: []Node{
				{Kind: KindButton, Text: "ok"},
				{Kind: KindLabel, Text: "a\x00b"},
			}},
			msg: "NUL",
		},
		{
			name: "NUL in item",
			node: Node{Kind: KindCombobox, Items: []string{"a", "b\x00"}},
			msg:  "NUL",
		},
		{
			name: "NUL in form label",
			node: Node{Kind: KindForm, Children: []Node{{Kind: KindEntry, Label: "\x00"}}},
			msg:  "NUL",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, tk := newTestUI(t, Options{})
			_, err := u.Build(tc.node)
			if !errors.Is(err, ErrLayout) || !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("err = %v, want %q", err, tc.msg)
			}
			if tk.Len() != 0 {
				t.Errorf("%d controls created by an invalid layout", tk.Len())
			}
		})
	}
}

func TestBuildRejectsNULFromJSON(t *testing.T) {
	u, tk := newTestUI(t, Options{})
	n, err := LoadLayout(strings.NewReader(`{"kind":"vbox","children":[{"kind":"button","text":"ok"},{"kind":"label","text":"a\u0000b"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := u.Build(n); !errors.Is(err, ErrLayout) {
		t.Fatalf("err = %v, want ErrLayout", err)
	}
	if tk.Len() != 0 {
		t.Errorf("%d controls created", tk.Len())
	}
}

func TestLoadLayoutRejectsUnknownFields(t *testing.T) {
	_, err := LoadLayout(strings.NewReader(`{"kind": "button", "colour": "red"}`))
	if !errors.Is(err, ErrLayout) {
		t.Errorf("err = %v, want ErrLayout", err)
	}
}

func TestBuildMenus(t *testing.T) {
	u, tk := newTestUI(t, Options{})
	items, err := u.BuildMenus([]MenuNode{
		{Name: "File", Items: []MenuItemNode{
			{Text: "Open"},
			{Kind: "separator"},
			{Kind: "quit"},
		}},
		{Name: "View", Items: []MenuItemNode{
			{Kind: "check", Text: "Status Bar", Key: "status"},
		}},
		{Name: "Help", Items: []MenuItemNode{{Kind: "about"}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"Open", "quit", "status", "about"} {
		if items[k] == nil {
			t.Errorf("missing item %q", k)
		}
	}
	if len(items) != 4 {
		t.Errorf("items = %d, want 4", len(items))
	}

	w := u.NewWindow("main", 100, 100, true)
	opened := 0
	items["Open"].OnClicked(func(*MenuItem, *Window) { opened++ })
	tk.ClickMenu(items["Open"].ptr, w.Handle())
	if opened != 1 {
		t.Errorf("opened = %d", opened)
	}
}

func TestBuildMenusRejects(t *testing.T) {
	tests := []struct {
		name  string
		menus []MenuNode
	}{
		{"unknown kind", []MenuNode{{Name: "File", Items: []MenuItemNode{{Kind: "radio", Text: "x"}}}}},
		{"no key", []MenuNode{{Name: "File", Items: []MenuItemNode{{Kind: "check"}}}}},
		{"NUL in menu name", []MenuNode{{Name: "Fi\x00le"}}},
		{"NUL in item text", []MenuNode{{Name: "File", Items: []MenuItemNode{{Text: "Op\x00en", Key: "open"}}}}},
		{"duplicate key", []MenuNode{
			{Name: "File", Items: []MenuItemNode{{Text: "Open"}}},
			{Name: "Recent", Items: []MenuItemNode{{Text: "Open"}}},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, tk := newTestUI(t, Options{})
			if _, err := u.BuildMenus(tc.menus); !errors.Is(err, ErrLayout) {
				t.Fatalf("err = %v, want ErrLayout", err)
			}
			if tk.Len() != 0 {
				t.Errorf("%d menus created", tk.Len())
			}
		})
	}
}
