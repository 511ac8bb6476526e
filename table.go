//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"errors"
	"runtime"

	"github.com/obinnaokechukwu/uigo/internal/dispatch"
	"github.com/obinnaokechukwu/uigo/internal/handles"
	"github.com/obinnaokechukwu/uigo/internal/native"
	"github.com/obinnaokechukwu/uigo/text"
)

// ErrModelInUse indicates TableModel.Free was called while a table still
// displays the model.
var ErrModelInUse = errors.New("uigo: table model is in use")

// TableValueType is the type of a model column.
type TableValueType int

const (
	TableValueString TableValueType = TableValueType(native.TableValueTypeString)
	TableValueImage  TableValueType = TableValueType(native.TableValueTypeImage)
	TableValueInt    TableValueType = TableValueType(native.TableValueTypeInt)
	TableValueColor  TableValueType = TableValueType(native.TableValueTypeColor)
)

// TableValue is a cell value: TableString, TableInt or TableColor. A nil
// TableValue is an empty cell.
type TableValue interface {
	Type() TableValueType
}

// TableString is a text cell.
type TableString string

// TableInt is an integer cell: a checkbox state (0 or 1) or a progress
// value (-1 for indeterminate).
type TableInt int

// TableColor is a color cell with components in [0, 1].
type TableColor struct {
	R, G, B, A float64
}

func (TableString) Type() TableValueType { return TableValueString }
func (TableInt) Type() TableValueType    { return TableValueInt }
func (TableColor) Type() TableValueType  { return TableValueColor }

// TableDataSource supplies the rows of a TableModel. The toolkit calls it
// whenever it needs to draw a cell or store an edit.
type TableDataSource interface {
	NumColumns() int
	ColumnType(column int) TableValueType
	NumRows() int
	CellValue(row, column int) TableValue
	// SetCellValue stores an edit. value is nil for a button click.
	SetCellValue(row, column int, value TableValue)
}

// Column sentinels accepted where a model column is expected.
const (
	// TableNeverEditable marks a column as read-only, or selects no
	// background color column.
	TableNeverEditable = int(native.TableModelColumnNeverEditable)
	// TableAlwaysEditable marks a column as editable in every row.
	TableAlwaysEditable = int(native.TableModelColumnAlwaysEditable)
)

// TableModel connects a TableDataSource to one or more tables.
type TableModel struct {
	ui      *UI
	ptr     uintptr
	src     TableDataSource
	h       handles.Handle
	handler *dispatch.ModelHandler
	pinner  runtime.Pinner
	tables  int
	freed   bool
}

// NewTableModel creates a model backed by src.
func (u *UI) NewTableModel(src TableDataSource) *TableModel {
	m := &TableModel{ui: u, src: src}
	m.h = u.handles.Own(dispatch.Model(tableBridge{m}))
	m.handler = dispatch.NewModelHandler(m.h)
	m.pinner.Pin(m.handler)
	m.ptr = u.lib.NewTableModel(m.handler.Addr())
	return m
}

// RowInserted tells the tables that row was added to the source.
func (m *TableModel) RowInserted(row int) { m.ui.lib.TableModelRowInserted(m.ptr, int32(row)) }

// RowChanged tells the tables to redraw row.
func (m *TableModel) RowChanged(row int) { m.ui.lib.TableModelRowChanged(m.ptr, int32(row)) }

// RowDeleted tells the tables that row was removed from the source.
func (m *TableModel) RowDeleted(row int) { m.ui.lib.TableModelRowDeleted(m.ptr, int32(row)) }

// Free releases the model. Every table using it must be destroyed first.
func (m *TableModel) Free() error {
	if m.freed {
		return ErrClosed
	}
	if m.tables > 0 {
		return ErrModelInUse
	}
	m.ui.lib.FreeTableModel(m.ptr)
	m.freed = true
	m.ui.release(m.h)
	m.pinner.Unpin()
	return nil
}

// tableBridge adapts a TableDataSource to the erased model the handler
// trampolines call.
type tableBridge struct {
	m *TableModel
}

func (b tableBridge) NumColumns() int { return b.m.src.NumColumns() }

func (b tableBridge) ColumnType(column int) int32 {
	return int32(b.m.src.ColumnType(column))
}

func (b tableBridge) NumRows() int { return b.m.src.NumRows() }

func (b tableBridge) CellValue(row, column int) uintptr {
	return b.m.ui.newTableValue(b.m.src.CellValue(row, column))
}

func (b tableBridge) SetCellValue(row, column int, value uintptr) {
	b.m.src.SetCellValue(row, column, b.m.ui.readTableValue(value))
}

// newTableValue allocates a uiTableValue; the toolkit frees it.
func (u *UI) newTableValue(v TableValue) uintptr {
	switch v := v.(type) {
	case nil:
		return 0
	case TableString:
		return u.lib.NewTableValueString(u.cstr(string(v)))
	case TableInt:
		return u.lib.NewTableValueInt(int32(v))
	case TableColor:
		return u.lib.NewTableValueColor(v.R, v.G, v.B, v.A)
	default:
		u.log.Error("uigo: unsupported table value", "type", v.Type())
		return 0
	}
}

// readTableValue copies a uiTableValue the toolkit lends for the duration
// of a SetCellValue call.
func (u *UI) readTableValue(p uintptr) TableValue {
	if p == 0 {
		return nil
	}
	switch t := u.lib.TableValueGetType(p); t {
	case native.TableValueTypeString:
		// The buffer belongs to the value; it is not freed with uiFreeText.
		return TableString(text.DecodeAddr(u.lib.TableValueString(p), u.conv))
	case native.TableValueTypeInt:
		return TableInt(u.lib.TableValueInt(p))
	case native.TableValueTypeColor:
		var c TableColor
		u.lib.TableValueColor(p, &c.R, &c.G, &c.B, &c.A)
		return c
	default:
		u.log.Warn("uigo: ignoring table value", "type", t)
		return nil
	}
}

// Table displays the rows of a TableModel.
type Table struct {
	control
	model *TableModel
}

// NewTable creates a table over model. rowBackgroundColumn names a color
// column used as each row's background, or TableNeverEditable for none.
func (u *UI) NewTable(model *TableModel, rowBackgroundColumn int) *Table {
	params := native.TableParams{
		Model:                         model.ptr,
		RowBackgroundColorModelColumn: int32(rowBackgroundColumn),
	}
	t := &Table{model: model}
	t.control = u.wrap(u.lib.NewTable(&params), t)
	model.tables++
	t.onDestroy = func() { model.tables-- }
	return t
}

// Model returns the table's model.
func (t *Table) Model() *TableModel { return t.model }

// AppendTextColumn adds a text column showing textColumn of the model.
// editableColumn is a model column holding per-row editability, or one of
// TableNeverEditable and TableAlwaysEditable.
func (t *Table) AppendTextColumn(name string, textColumn, editableColumn int) {
	t.ui.lib.TableAppendTextColumn(t.ptr, t.ui.cstr(name), int32(textColumn), int32(editableColumn), 0)
}

// AppendCheckboxColumn adds a checkbox column over an int model column.
func (t *Table) AppendCheckboxColumn(name string, checkboxColumn, editableColumn int) {
	t.ui.lib.TableAppendCheckboxColumn(t.ptr, t.ui.cstr(name), int32(checkboxColumn), int32(editableColumn))
}

// AppendButtonColumn adds a button column; clicks reach SetCellValue with
// a nil value.
func (t *Table) AppendButtonColumn(name string, buttonColumn, clickableColumn int) {
	t.ui.lib.TableAppendButtonColumn(t.ptr, t.ui.cstr(name), int32(buttonColumn), int32(clickableColumn))
}

// AppendProgressBarColumn adds a progress column over an int model column.
func (t *Table) AppendProgressBarColumn(name string, progressColumn int) {
	t.ui.lib.TableAppendProgressBarColumn(t.ptr, t.ui.cstr(name), int32(progressColumn))
}

// HeaderVisible reports whether column headers are shown.
func (t *Table) HeaderVisible() bool {
	if t.ui.lib.TableHeaderVisible == nil {
		return true
	}
	return native.Bool(t.ui.lib.TableHeaderVisible(t.ptr))
}

// SetHeaderVisible shows or hides column headers.
func (t *Table) SetHeaderVisible(visible bool) {
	if t.ui.lib.TableHeaderSetVisible == nil {
		t.ui.log.Warn("uigo: uiTableHeaderSetVisible not available in this libui")
		return
	}
	t.ui.lib.TableHeaderSetVisible(t.ptr, native.Int(visible))
}

// OnRowClicked sets the handler run when a row is clicked.
func (t *Table) OnRowClicked(f func(t *Table, row int)) {
	t.onIndex("row-clicked", t.ui.lib.TableOnRowClicked, f)
}

// OnRowDoubleClicked sets the handler run when a row is double-clicked.
func (t *Table) OnRowDoubleClicked(f func(t *Table, row int)) {
	t.onIndex("row-double-clicked", t.ui.lib.TableOnRowDoubleClicked, f)
}

// OnHeaderClicked sets the handler run when a column header is clicked.
func (t *Table) OnHeaderClicked(f func(t *Table, column int)) {
	t.onIndex("header-clicked", t.ui.lib.TableHeaderOnClicked, f)
}

func (t *Table) onIndex(event string, register func(widget, fn, data uintptr), f func(*Table, int)) {
	if register == nil {
		t.ui.log.Warn("uigo: table event not available in this libui", "event", event)
		return
	}
	t.on(event, dispatch.Index, dispatch.Row(func(i int) { f(t, i) }), register)
}
