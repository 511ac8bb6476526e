//go:build !ios && !android && (amd64 || arm64)

package uitest

import (
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/uigo/internal/dispatch"
	"github.com/obinnaokechukwu/uigo/internal/native"
)

// Click presses a button. It reports whether a callback ran.
func (t *Toolkit) Click(p uintptr) bool {
	return t.fireSender(p, EventClicked)
}

// Toggle flips a checkbox as a user would.
func (t *Toolkit) Toggle(p uintptr) bool {
	w := t.w(p)
	w.Checked = !w.Checked
	return t.fireSender(p, EventToggled)
}

// Drag moves a spinbox or slider to v (clamped to its range) and fires
// the change event, as a toolkit-driven change does.
func (t *Toolkit) Drag(p uintptr, v int32) bool {
	w := t.w(p)
	w.Value = clamp(v, w.Min, w.Max)
	return t.fireSender(p, EventChanged)
}

// Type replaces an entry's text with raw toolkit text and fires the change event.
func (t *Toolkit) Type(p uintptr, raw string) bool {
	t.w(p).Text = raw
	return t.fireSender(p, EventChanged)
}

// Choose selects item i of a combobox or radio group.
func (t *Toolkit) Choose(p uintptr, i int32) bool {
	t.w(p).Selected = i
	return t.fireSender(p, EventSelected)
}

// PickColor sets a color button's color as the color dialog would and
// fires the change event.
func (t *Toolkit) PickColor(p uintptr, r, g, b, a float64) bool {
	t.w(p).Color = [4]float64{r, g, b, a}
	return t.fireSender(p, EventChanged)
}

// PickFont sets a font button's font and fires the change event.
func (t *Toolkit) PickFont(p uintptr, f Font) bool {
	t.w(p).Font = f
	return t.fireSender(p, EventChanged)
}

// PickTime sets a picker's date and time and fires the change event.
func (t *Toolkit) PickTime(p uintptr, tm native.Tm) bool {
	t.w(p).Time = tm
	return t.fireSender(p, EventChanged)
}

// Resize changes a window's content size and fires the resize event.
func (t *Toolkit) Resize(p uintptr, width, height int32) bool {
	w := t.w(p)
	w.Width, w.Height = width, height
	return t.fireSender(p, EventSizeChanged)
}

// RequestClose asks to close a window. libui destroys the window when the
// handler returns true; so does the fake. With no handler the window stays.
func (t *Toolkit) RequestClose(p uintptr) bool {
	cb, ok := t.w(p).callbacks[EventClosing]
	if !ok {
		return false
	}
	r := body(cb.fn).(func(purego.CDecl, uintptr, uintptr) int32)(purego.CDecl{}, p, cb.data)
	if r != 0 {
		t.destroy(p)
		return true
	}
	return false
}

// ClickMenu activates a menu item from window. Check items toggle first.
func (t *Toolkit) ClickMenu(item, window uintptr) bool {
	w := t.w(item)
	if w.Kind == "check-item" {
		w.Checked = !w.Checked
	}
	cb, ok := w.callbacks[EventClicked]
	if !ok {
		return false
	}
	body(cb.fn).(func(purego.CDecl, uintptr, uintptr, uintptr))(purego.CDecl{}, item, window, cb.data)
	return true
}

// ClickRow clicks a table row.
func (t *Toolkit) ClickRow(table uintptr, row int32) bool {
	return t.fireIndex(table, EventRowClicked, row)
}

// DoubleClickRow double-clicks a table row.
func (t *Toolkit) DoubleClickRow(table uintptr, row int32) bool {
	return t.fireIndex(table, EventRowDoubleClicked, row)
}

// ClickHeader clicks a table column header.
func (t *Toolkit) ClickHeader(table uintptr, column int32) bool {
	return t.fireIndex(table, EventHeaderClicked, column)
}

// Fire invokes the sender-shaped callback for event on p directly.
func (t *Toolkit) Fire(p uintptr, event string) bool {
	return t.fireSender(p, event)
}

// RunQueued runs every task queued with uiQueueMain, including tasks queued
// while running. It returns how many ran.
func (t *Toolkit) RunQueued() int {
	n := 0
	for {
		t.mu.Lock()
		if len(t.queue) == 0 {
			t.mu.Unlock()
			return n
		}
		cb := t.queue[0]
		t.queue = t.queue[1:]
		t.mu.Unlock()

		body(cb.fn).(func(purego.CDecl, uintptr))(purego.CDecl{}, cb.data)
		n++
	}
}

// Queued returns the number of pending uiQueueMain tasks.
func (t *Toolkit) Queued() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.queue)
}

// Tick fires every timer once, dropping timers that return 0.
func (t *Toolkit) Tick() {
	t.mu.Lock()
	timers := t.timers
	t.timers = nil
	t.mu.Unlock()

	var keep []callback
	for _, cb := range timers {
		if body(cb.fn).(func(purego.CDecl, uintptr) int32)(purego.CDecl{}, cb.data) != 0 {
			keep = append(keep, cb)
		}
	}

	t.mu.Lock()
	t.timers = append(keep, t.timers...)
	t.mu.Unlock()
}

// Timers returns the number of live timers.
func (t *Toolkit) Timers() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.timers)
}

// RequestQuit simulates the platform's quit command (e.g. Cmd-Q). libui
// quits when the should-quit handler returns true.
func (t *Toolkit) RequestQuit() bool {
	t.mu.Lock()
	cb := t.shouldQuit
	t.mu.Unlock()
	if cb == nil {
		return false
	}
	if body(cb.fn).(func(purego.CDecl, uintptr) int32)(purego.CDecl{}, cb.data) != 0 {
		t.quit = true
		return true
	}
	return false
}

func (t *Toolkit) handler(m uintptr) *dispatch.ModelHandler {
	md := t.models[m]
	if md == nil {
		panic("uitest: unknown table model")
	}
	return (*dispatch.ModelHandler)(unsafe.Pointer(md.handler))
}

// NumRows asks a table model for its row count through its handler.
func (t *Toolkit) NumRows(m uintptr) int32 {
	mh := t.handler(m)
	return body(mh.NumRows).(func(purego.CDecl, unsafe.Pointer, unsafe.Pointer) int32)(purego.CDecl{}, unsafe.Pointer(mh), nil)
}

// NumColumns asks a table model for its column count.
func (t *Toolkit) NumColumns(m uintptr) int32 {
	mh := t.handler(m)
	return body(mh.NumColumns).(func(purego.CDecl, unsafe.Pointer, unsafe.Pointer) int32)(purego.CDecl{}, unsafe.Pointer(mh), nil)
}

// ColumnType asks a table model for a column's uiTableValueType.
func (t *Toolkit) ColumnType(m uintptr, column int32) int32 {
	mh := t.handler(m)
	return body(mh.ColumnType).(func(purego.CDecl, unsafe.Pointer, unsafe.Pointer, int32) int32)(purego.CDecl{}, unsafe.Pointer(mh), nil, column)
}

// Cell is a table value read back from a model.
type Cell struct {
	Type       int32
	String     string
	Int        int32
	R, G, B, A float64
}

// CellValue reads a cell through the model handler and frees the value,
// as libui does after drawing it. ok is false for a NULL value.
func (t *Toolkit) CellValue(m uintptr, row, column int32) (Cell, bool) {
	mh := t.handler(m)
	v := body(mh.CellValue).(func(purego.CDecl, unsafe.Pointer, unsafe.Pointer, int32, int32) uintptr)(purego.CDecl{}, unsafe.Pointer(mh), nil, row, column)
	if v == 0 {
		return Cell{}, false
	}
	tv := t.values[v]
	if tv == nil {
		panic("uitest: CellValue returned an unknown value")
	}
	c := Cell{Type: tv.typ, Int: tv.i, R: tv.r, G: tv.g, B: tv.b, A: tv.a}
	if tv.str != nil {
		c.String = string(tv.str[:len(tv.str)-1])
	}
	delete(t.values, v)
	return c, true
}

// EditCell writes a value through the model handler as an editable column
// does. A nil value simulates a button-column click.
func (t *Toolkit) EditCell(m uintptr, row, column int32, value *Cell) {
	mh := t.handler(m)
	var v uintptr
	if value != nil {
		tv := &tableValue{typ: value.Type, i: value.Int, r: value.R, g: value.G, b: value.B, a: value.A}
		if value.Type == native.TableValueTypeString {
			tv.str = append([]byte(value.String), 0)
		}
		v = t.alloc()
		t.values[v] = tv
	}
	body(mh.SetCellValue).(func(purego.CDecl, unsafe.Pointer, unsafe.Pointer, int32, int32, uintptr))(purego.CDecl{}, unsafe.Pointer(mh), nil, row, column, v)
	if v != 0 {
		delete(t.values, v)
	}
}

// LiveValues is the number of uiTableValues allocated and not yet consumed.
func (t *Toolkit) LiveValues() int {
	return len(t.values)
}

func (t *Toolkit) destroy(p uintptr) {
	w := t.widgets[p]
	if w == nil || w.Destroyed {
		return
	}
	w.Destroyed = true
	for _, c := range w.Children {
		t.destroy(c)
	}
}
