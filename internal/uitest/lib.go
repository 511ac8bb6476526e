//go:build !ios && !android && (amd64 || arm64)

package uitest

import (
	"unsafe"

	"github.com/obinnaokechukwu/uigo/internal/native"
)

func (t *Toolkit) build() *native.Lib {
	b := func(v int32) bool { return v != 0 }
	i := func(v bool) int32 {
		if v {
			return 1
		}
		return 0
	}
	adopt := func(parent, child uintptr) {
		if child == 0 {
			return
		}
		c := t.w(child)
		if c.Parent != 0 {
			panic("uitest: control already has a parent")
		}
		c.Parent = parent
	}
	remove := func(p uintptr, index int32) {
		w := t.w(p)
		if index < 0 || int(index) >= len(w.Children) {
			panic("uitest: child index out of range")
		}
		t.w(w.Children[index]).Parent = 0
		w.Children = append(w.Children[:index], w.Children[index+1:]...)
		w.Labels = append(w.Labels[:index], w.Labels[index+1:]...)
		if len(w.Stretchy) > int(index) {
			w.Stretchy = append(w.Stretchy[:index], w.Stretchy[index+1:]...)
		}
		if len(w.PageMargins) > int(index) {
			w.PageMargins = append(w.PageMargins[:index], w.PageMargins[index+1:]...)
		}
	}
	setChild := func(p, child uintptr) {
		w := t.w(p)
		for _, old := range w.Children {
			t.w(old).Parent = 0
		}
		w.Children = nil
		if child != 0 {
			adopt(p, child)
			w.Children = []uintptr{child}
		}
	}
	appendChild := func(p uintptr, label string, child uintptr, stretchy bool) {
		adopt(p, child)
		w := t.w(p)
		w.Children = append(w.Children, child)
		w.Labels = append(w.Labels, label)
		w.Stretchy = append(w.Stretchy, stretchy)
	}
	newText := func(kind string, s *byte) uintptr {
		p := t.newWidget(kind)
		t.widgets[p].Text = str(s)
		return p
	}
	getText := func(p uintptr) uintptr { return t.newText(t.w(p).Text) }
	setText := func(p uintptr, s *byte) { t.w(p).Text = str(s) }
	ranged := func(kind string, lo, hi int32) uintptr {
		p := t.newWidget(kind)
		w := t.widgets[p]
		if lo > hi {
			lo, hi = hi, lo
		}
		w.Min, w.Max, w.Value = lo, hi, lo
		return p
	}
	setValue := func(p uintptr, v int32) {
		w := t.w(p)
		w.Value = clamp(v, w.Min, w.Max)
	}
	menuItem := func(m uintptr, kind, name string) uintptr {
		p := t.newWidget(kind)
		t.widgets[p].Text = name
		w := t.w(m)
		w.Children = append(w.Children, p)
		t.widgets[p].Parent = m
		return p
	}
	// Pickers start at the Unix epoch, as libui's do.
	picker := func(kind string) uintptr {
		p := t.newWidget(kind)
		t.widgets[p].Time = native.Tm{Mday: 1, Year: 70, Isdst: -1}
		return p
	}
	newValue := func(tv *tableValue) uintptr {
		p := t.alloc()
		t.values[p] = tv
		return p
	}
	value := func(v uintptr) *tableValue {
		tv := t.values[v]
		if tv == nil {
			panic("uitest: unknown table value")
		}
		return tv
	}

	return &native.Lib{
		Init: func(*native.InitOptions) uintptr {
			if t.InitError != "" {
				return t.newText(t.InitError)
			}
			if t.initialized {
				return t.newText("libui already initialized")
			}
			t.initialized = true
			t.quit = false
			return 0
		},
		Uninit: func() {
			t.initialized = false
			t.uninits++
		},
		FreeInitError: t.freeText,
		// Main drains the task queue until uiQuit or until nothing is left.
		Main: func() {
			for !t.quit {
				if t.RunQueued() == 0 {
					return
				}
			}
		},
		Quit: func() { t.quit = true },
		QueueMain: func(fn, data uintptr) {
			t.mu.Lock()
			t.queue = append(t.queue, callback{fn, data})
			t.mu.Unlock()
		},
		Timer: func(_ int32, fn, data uintptr) {
			t.mu.Lock()
			t.timers = append(t.timers, callback{fn, data})
			t.mu.Unlock()
		},
		OnShouldQuit: func(fn, data uintptr) {
			t.mu.Lock()
			t.shouldQuit = &callback{fn, data}
			t.mu.Unlock()
		},
		FreeText: t.freeText,

		ControlDestroy: func(c uintptr) {
			w := t.w(c)
			if w.Parent != 0 {
				panic("uitest: destroying a control that still has a parent")
			}
			t.destroy(c)
		},
		ControlVisible: func(c uintptr) int32 { return i(t.w(c).Visible) },
		ControlShow:    func(c uintptr) { t.w(c).Visible = true },
		ControlHide:    func(c uintptr) { t.w(c).Visible = false },
		ControlEnabled: func(c uintptr) int32 { return i(t.w(c).Enabled) },
		ControlEnable:  func(c uintptr) { t.w(c).Enabled = true },
		ControlDisable: func(c uintptr) { t.w(c).Enabled = false },

		NewWindow: func(title *byte, width, height, _ int32) uintptr {
			p := newText("window", title)
			t.widgets[p].Width, t.widgets[p].Height = width, height
			return p
		},
		WindowTitle:         getText,
		WindowSetTitle:      setText,
		WindowSetChild:      setChild,
		WindowMargined:      func(w uintptr) int32 { return i(t.w(w).Margined) },
		WindowSetMargined:   func(w uintptr, v int32) { t.w(w).Margined = b(v) },
		WindowFullscreen:    func(w uintptr) int32 { return i(t.w(w).Fullscreen) },
		WindowSetFullscreen: func(w uintptr, v int32) { t.w(w).Fullscreen = b(v) },
		WindowBorderless:    func(w uintptr) int32 { return i(t.w(w).Borderless) },
		WindowSetBorderless: func(w uintptr, v int32) { t.w(w).Borderless = b(v) },
		WindowContentSize: func(w uintptr, width, height *int32) {
			*width, *height = t.w(w).Width, t.w(w).Height
		},
		WindowSetContentSize: func(w uintptr, width, height int32) {
			t.w(w).Width, t.w(w).Height = width, height
		},
		WindowOnClosing: func(w, fn, data uintptr) { t.on(w, EventClosing, fn, data) },
		WindowOnContentSizeChanged: func(w, fn, data uintptr) {
			t.on(w, EventSizeChanged, fn, data)
		},
		MsgBox: func(_ uintptr, title, description *byte) {
			t.dialogs = append(t.dialogs, str(title)+": "+str(description))
		},
		MsgBoxError: func(_ uintptr, title, description *byte) {
			t.dialogs = append(t.dialogs, "error "+str(title)+": "+str(description))
		},
		OpenFile:   func(uintptr) uintptr { return t.fileResult() },
		OpenFolder: func(uintptr) uintptr { return t.fileResult() },
		SaveFile:   func(uintptr) uintptr { return t.fileResult() },

		NewButton:       func(s *byte) uintptr { return newText("button", s) },
		ButtonText:      getText,
		ButtonSetText:   setText,
		ButtonOnClicked: func(p, fn, data uintptr) { t.on(p, EventClicked, fn, data) },

		NewCheckbox:        func(s *byte) uintptr { return newText("checkbox", s) },
		CheckboxText:       getText,
		CheckboxSetText:    setText,
		CheckboxChecked:    func(p uintptr) int32 { return i(t.w(p).Checked) },
		CheckboxSetChecked: func(p uintptr, v int32) { t.w(p).Checked = b(v) },
		CheckboxOnToggled:  func(p, fn, data uintptr) { t.on(p, EventToggled, fn, data) },

		NewEntry:         func() uintptr { return t.newWidget("entry") },
		NewPasswordEntry: func() uintptr { return t.newWidget("password-entry") },
		NewSearchEntry:   func() uintptr { return t.newWidget("search-entry") },
		EntryText:        getText,
		EntrySetText:     setText,
		EntryReadOnly:    func(p uintptr) int32 { return i(t.w(p).ReadOnly) },
		EntrySetReadOnly: func(p uintptr, v int32) { t.w(p).ReadOnly = b(v) },
		EntryOnChanged:   func(p, fn, data uintptr) { t.on(p, EventChanged, fn, data) },

		NewMultilineEntry:            func() uintptr { return t.newWidget("multiline-entry") },
		NewNonWrappingMultilineEntry: func() uintptr { return t.newWidget("multiline-entry") },
		MultilineEntryText:           getText,
		MultilineEntrySetText:        setText,
		MultilineEntryAppend:         func(p uintptr, s *byte) { t.w(p).Text += str(s) },
		MultilineEntryReadOnly:       func(p uintptr) int32 { return i(t.w(p).ReadOnly) },
		MultilineEntrySetReadOnly:    func(p uintptr, v int32) { t.w(p).ReadOnly = b(v) },
		MultilineEntryOnChanged:      func(p, fn, data uintptr) { t.on(p, EventChanged, fn, data) },

		NewLabel:     func(s *byte) uintptr { return newText("label", s) },
		LabelText:    getText,
		LabelSetText: setText,

		NewSpinbox:       func(lo, hi int32) uintptr { return ranged("spinbox", lo, hi) },
		SpinboxValue:     func(p uintptr) int32 { return t.w(p).Value },
		SpinboxSetValue:  setValue,
		SpinboxOnChanged: func(p, fn, data uintptr) { t.on(p, EventChanged, fn, data) },

		NewSlider:       func(lo, hi int32) uintptr { return ranged("slider", lo, hi) },
		SliderValue:     func(p uintptr) int32 { return t.w(p).Value },
		SliderSetValue:  setValue,
		SliderOnChanged: func(p, fn, data uintptr) { t.on(p, EventChanged, fn, data) },

		NewProgressBar: func() uintptr {
			p := t.newWidget("progressbar")
			t.widgets[p].Min, t.widgets[p].Max = -1, 100
			return p
		},
		ProgressBarValue:    func(p uintptr) int32 { return t.w(p).Value },
		ProgressBarSetValue: setValue,

		NewHorizontalSeparator: func() uintptr { return t.newWidget("separator") },
		NewVerticalSeparator:   func() uintptr { return t.newWidget("separator") },

		NewColorButton: func() uintptr { return t.newWidget("colorbutton") },
		ColorButtonColor: func(p uintptr, r, g, bl, a *float64) {
			c := t.w(p).Color
			*r, *g, *bl, *a = c[0], c[1], c[2], c[3]
		},
		ColorButtonSetColor: func(p uintptr, r, g, bl, a float64) {
			t.w(p).Color = [4]float64{r, g, bl, a}
		},
		ColorButtonOnChanged: func(p, fn, data uintptr) { t.on(p, EventChanged, fn, data) },

		NewFontButton: func() uintptr {
			p := t.newWidget("fontbutton")
			t.widgets[p].Font = Font{Family: "Sans", Size: 10, Weight: 400, Stretch: 4}
			return p
		},
		FontButtonFont: func(p uintptr, desc *native.FontDescriptor) {
			f := t.w(p).Font
			*desc = native.FontDescriptor{
				Family:  t.newText(f.Family),
				Size:    f.Size,
				Weight:  f.Weight,
				Italic:  f.Italic,
				Stretch: f.Stretch,
			}
		},
		FontButtonOnChanged: func(p, fn, data uintptr) { t.on(p, EventChanged, fn, data) },
		FreeFontButtonFont: func(desc *native.FontDescriptor) {
			if _, ok := t.texts[desc.Family]; !ok {
				t.badFrees = append(t.badFrees, desc.Family)
				return
			}
			delete(t.texts, desc.Family)
			desc.Family = 0
			t.fontFrees++
		},

		NewDateTimePicker: func() uintptr { return picker("datetimepicker") },
		NewDatePicker:     func() uintptr { return picker("datepicker") },
		NewTimePicker:     func() uintptr { return picker("timepicker") },
		DateTimePickerTime: func(p uintptr, tm *native.Tm) {
			*tm = t.w(p).Time
		},
		DateTimePickerSetTime: func(p uintptr, tm *native.Tm) {
			t.w(p).Time = *tm
		},
		DateTimePickerOnChanged: func(p, fn, data uintptr) { t.on(p, EventChanged, fn, data) },

		NewCombobox: func() uintptr { return t.newWidget("combobox") },
		ComboboxAppend: func(p uintptr, s *byte) {
			t.w(p).Items = append(t.w(p).Items, str(s))
		},
		ComboboxNumItems: func(p uintptr) int32 { return int32(len(t.w(p).Items)) },
		ComboboxClear: func(p uintptr) {
			t.w(p).Items = nil
			t.w(p).Selected = -1
		},
		ComboboxSelected:    func(p uintptr) int32 { return t.w(p).Selected },
		ComboboxSetSelected: func(p uintptr, v int32) { t.w(p).Selected = v },
		ComboboxOnSelected:  func(p, fn, data uintptr) { t.on(p, EventSelected, fn, data) },

		NewEditableCombobox: func() uintptr { return t.newWidget("editable-combobox") },
		EditableComboboxAppend: func(p uintptr, s *byte) {
			t.w(p).Items = append(t.w(p).Items, str(s))
		},
		EditableComboboxText:      getText,
		EditableComboboxSetText:   setText,
		EditableComboboxOnChanged: func(p, fn, data uintptr) { t.on(p, EventChanged, fn, data) },

		NewRadioButtons: func() uintptr { return t.newWidget("radiobuttons") },
		RadioButtonsAppend: func(p uintptr, s *byte) {
			t.w(p).Items = append(t.w(p).Items, str(s))
		},
		RadioButtonsSelected:    func(p uintptr) int32 { return t.w(p).Selected },
		RadioButtonsSetSelected: func(p uintptr, v int32) { t.w(p).Selected = v },
		RadioButtonsOnSelected:  func(p, fn, data uintptr) { t.on(p, EventSelected, fn, data) },

		NewHorizontalBox: func() uintptr { return t.newWidget("hbox") },
		NewVerticalBox:   func() uintptr { return t.newWidget("vbox") },
		BoxAppend: func(p, child uintptr, stretchy int32) {
			appendChild(p, "", child, b(stretchy))
		},
		BoxNumChildren: func(p uintptr) int32 { return int32(len(t.w(p).Children)) },
		BoxDelete:      remove,
		BoxPadded:      func(p uintptr) int32 { return i(t.w(p).Padded) },
		BoxSetPadded:   func(p uintptr, v int32) { t.w(p).Padded = b(v) },

		NewGroup:         func(s *byte) uintptr { return newText("group", s) },
		GroupTitle:       getText,
		GroupSetTitle:    setText,
		GroupSetChild:    setChild,
		GroupMargined:    func(p uintptr) int32 { return i(t.w(p).Margined) },
		GroupSetMargined: func(p uintptr, v int32) { t.w(p).Margined = b(v) },

		NewForm: func() uintptr { return t.newWidget("form") },
		FormAppend: func(p uintptr, label *byte, child uintptr, stretchy int32) {
			appendChild(p, str(label), child, b(stretchy))
		},
		FormNumChildren: func(p uintptr) int32 { return int32(len(t.w(p).Children)) },
		FormDelete:      remove,
		FormPadded:      func(p uintptr) int32 { return i(t.w(p).Padded) },
		FormSetPadded:   func(p uintptr, v int32) { t.w(p).Padded = b(v) },

		NewTab: func() uintptr { return t.newWidget("tab") },
		TabAppend: func(p uintptr, name *byte, child uintptr) {
			appendChild(p, str(name), child, false)
			t.w(p).PageMargins = append(t.w(p).PageMargins, false)
		},
		TabInsertAt: func(p uintptr, name *byte, index int32, child uintptr) {
			w := t.w(p)
			if index < 0 || int(index) > len(w.Children) {
				panic("uitest: tab insert index out of range")
			}
			adopt(p, child)
			w.Children = append(w.Children[:index], append([]uintptr{child}, w.Children[index:]...)...)
			w.Labels = append(w.Labels[:index], append([]string{str(name)}, w.Labels[index:]...)...)
			w.Stretchy = append(w.Stretchy[:index], append([]bool{false}, w.Stretchy[index:]...)...)
			w.PageMargins = append(w.PageMargins[:index], append([]bool{false}, w.PageMargins[index:]...)...)
		},
		TabDelete:   remove,
		TabNumPages: func(p uintptr) int32 { return int32(len(t.w(p).Children)) },
		TabMargined: func(p uintptr, page int32) int32 {
			return i(t.w(p).PageMargins[page])
		},
		TabSetMargined: func(p uintptr, page int32, v int32) {
			t.w(p).PageMargins[page] = b(v)
		},

		NewMenu: func(name *byte) uintptr { return newText("menu", name) },
		MenuAppendItem: func(m uintptr, name *byte) uintptr {
			return menuItem(m, "item", str(name))
		},
		MenuAppendCheckItem: func(m uintptr, name *byte) uintptr {
			return menuItem(m, "check-item", str(name))
		},
		MenuAppendQuitItem:        func(m uintptr) uintptr { return menuItem(m, "quit-item", "Quit") },
		MenuAppendPreferencesItem: func(m uintptr) uintptr { return menuItem(m, "item", "Preferences...") },
		MenuAppendAboutItem:       func(m uintptr) uintptr { return menuItem(m, "item", "About") },
		MenuAppendSeparator:       func(m uintptr) { t.w(m).Labels = append(t.w(m).Labels, "-") },
		MenuItemEnable:            func(p uintptr) { t.w(p).Enabled = true },
		MenuItemDisable:           func(p uintptr) { t.w(p).Enabled = false },
		MenuItemChecked:           func(p uintptr) int32 { return i(t.w(p).Checked) },
		MenuItemSetChecked:        func(p uintptr, v int32) { t.w(p).Checked = b(v) },
		MenuItemOnClicked:         func(p, fn, data uintptr) { t.on(p, EventClicked, fn, data) },

		NewTableModel: func(handler uintptr) uintptr {
			p := t.alloc()
			t.models[p] = &model{handler: handler}
			return p
		},
		FreeTableModel: func(m uintptr) {
			if _, ok := t.models[m]; !ok {
				t.badFrees = append(t.badFrees, m)
				return
			}
			delete(t.models, m)
		},
		TableModelRowInserted: func(uintptr, int32) {},
		TableModelRowChanged:  func(uintptr, int32) {},
		TableModelRowDeleted:  func(uintptr, int32) {},
		NewTable: func(params *native.TableParams) uintptr {
			if _, ok := t.models[params.Model]; !ok {
				panic("uitest: table over unknown model")
			}
			p := t.newWidget("table")
			t.widgets[p].Model = params.Model
			t.widgets[p].HeaderVisible = true
			return p
		},
		TableAppendTextColumn: func(p uintptr, name *byte, _, _ int32, _ uintptr) {
			t.w(p).Columns = append(t.w(p).Columns, str(name))
		},
		TableAppendCheckboxColumn: func(p uintptr, name *byte, _, _ int32) {
			t.w(p).Columns = append(t.w(p).Columns, str(name))
		},
		TableAppendButtonColumn: func(p uintptr, name *byte, _, _ int32) {
			t.w(p).Columns = append(t.w(p).Columns, str(name))
		},
		TableAppendProgressBarColumn: func(p uintptr, name *byte, _ int32) {
			t.w(p).Columns = append(t.w(p).Columns, str(name))
		},
		TableHeaderVisible:      func(p uintptr) int32 { return i(t.w(p).HeaderVisible) },
		TableHeaderSetVisible:   func(p uintptr, v int32) { t.w(p).HeaderVisible = b(v) },
		TableOnRowClicked:       func(p, fn, data uintptr) { t.on(p, EventRowClicked, fn, data) },
		TableOnRowDoubleClicked: func(p, fn, data uintptr) { t.on(p, EventRowDoubleClicked, fn, data) },
		TableHeaderOnClicked:    func(p, fn, data uintptr) { t.on(p, EventHeaderClicked, fn, data) },

		NewTableValueString: func(s *byte) uintptr {
			return newValue(&tableValue{typ: native.TableValueTypeString, str: append([]byte(str(s)), 0)})
		},
		NewTableValueInt: func(v int32) uintptr {
			return newValue(&tableValue{typ: native.TableValueTypeInt, i: v})
		},
		NewTableValueColor: func(r, g, bl, a float64) uintptr {
			return newValue(&tableValue{typ: native.TableValueTypeColor, r: r, g: g, b: bl, a: a})
		},
		FreeTableValue: func(v uintptr) {
			if _, ok := t.values[v]; !ok {
				t.badFrees = append(t.badFrees, v)
				return
			}
			delete(t.values, v)
		},
		TableValueGetType: func(v uintptr) int32 { return value(v).typ },
		TableValueString: func(v uintptr) uintptr {
			return uintptr(unsafe.Pointer(&value(v).str[0]))
		},
		TableValueInt: func(v uintptr) int32 { return value(v).i },
		TableValueColor: func(v uintptr, r, g, bl, a *float64) {
			tv := value(v)
			*r, *g, *bl, *a = tv.r, tv.g, tv.b, tv.a
		},
	}
}

func (t *Toolkit) fileResult() uintptr {
	if t.FileResult == "" {
		return 0
	}
	return t.newText(t.FileResult)
}
