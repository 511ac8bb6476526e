//go:build !ios && !android && (amd64 || arm64)

package dispatch

import (
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/uigo/internal/handles"
)

// Model is the erased form of a table data source. Values cross the
// boundary as uiTableValue pointers; CellValue returns a value the toolkit
// takes ownership of, SetCellValue borrows one the toolkit frees after the
// call returns (and receives 0 for a button click).
type Model interface {
	NumColumns() int
	ColumnType(column int) int32
	NumRows() int
	CellValue(row, column int) uintptr
	SetCellValue(row, column int, value uintptr)
}

// ModelHandler mirrors uiTableModelHandler, followed by the handle of the
// Model it serves. libui passes the handler pointer back to every callback
// instead of a user-data word, so the handle has to live next to it.
type ModelHandler struct {
	NumColumns   uintptr
	ColumnType   uintptr
	NumRows      uintptr
	CellValue    uintptr
	SetCellValue uintptr

	Handle handles.Handle
}

// NewModelHandler fills a handler for the model registered under h. libui
// keeps the handler's address for the life of the table model, so the
// caller must pin it with a runtime.Pinner until the model is freed.
func NewModelHandler(h handles.Handle) *ModelHandler {
	mh := &ModelHandler{
		NumColumns:   modelNumColumns.Ptr(),
		ColumnType:   modelColumnType.Ptr(),
		NumRows:      modelNumRows.Ptr(),
		CellValue:    modelCellValue.Ptr(),
		SetCellValue: modelSetCellValue.Ptr(),
		Handle:       h,
	}
	return mh
}

// Addr returns the handler's address for uiNewTableModel.
func (mh *ModelHandler) Addr() uintptr {
	return uintptr(unsafe.Pointer(mh))
}

func modelOf(name string, mh unsafe.Pointer) Model {
	return resolve[Model](name, uintptr((*ModelHandler)(mh).Handle))
}

var (
	modelNumColumns = &Trampoline{name: "model-num-columns", body: func(_ purego.CDecl, mh, _ unsafe.Pointer) int32 {
		return int32(modelOf("model-num-columns", mh).NumColumns())
	}}

	modelColumnType = &Trampoline{name: "model-column-type", body: func(_ purego.CDecl, mh, _ unsafe.Pointer, column int32) int32 {
		return modelOf("model-column-type", mh).ColumnType(int(column))
	}}

	modelNumRows = &Trampoline{name: "model-num-rows", body: func(_ purego.CDecl, mh, _ unsafe.Pointer) int32 {
		return int32(modelOf("model-num-rows", mh).NumRows())
	}}

	modelCellValue = &Trampoline{name: "model-cell-value", body: func(_ purego.CDecl, mh, _ unsafe.Pointer, row, column int32) uintptr {
		return modelOf("model-cell-value", mh).CellValue(int(row), int(column))
	}}

	modelSetCellValue = &Trampoline{name: "model-set-cell-value", body: func(_ purego.CDecl, mh, _ unsafe.Pointer, row, column int32, value uintptr) {
		modelOf("model-set-cell-value", mh).SetCellValue(int(row), int(column), value)
	}}
)
