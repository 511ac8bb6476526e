// Package native describes the subset of the libui-ng C API that uigo calls.
//
// Lib holds one function field per C symbol. internal/bindings fills the
// fields from the shared library with purego; internal/uitest fills them with
// an in-memory toolkit. Pointers to toolkit objects travel as uintptr, strings
// passed to the toolkit as NUL-terminated *byte, and strings the toolkit
// allocates as uintptr so the caller can release them with FreeText.
//
// Callback registration functions take a trampoline address (from
// internal/dispatch) and a user-data word (an internal/handles.Handle).
package native

// InitOptions mirrors uiInitOptions.
type InitOptions struct {
	Size uintptr
}

// TableParams mirrors uiTableParams.
type TableParams struct {
	Model                         uintptr
	RowBackgroundColorModelColumn int32
}

// uiTableValueType
const (
	TableValueTypeString int32 = 0
	TableValueTypeImage  int32 = 1
	TableValueTypeInt    int32 = 2
	TableValueTypeColor  int32 = 3
)

// Editability sentinels accepted where libui expects a model column.
const (
	TableModelColumnNeverEditable  int32 = -1
	TableModelColumnAlwaysEditable int32 = -2
)

// FontDescriptor mirrors uiFontDescriptor. Family is owned by the toolkit
// and released, with the rest of the descriptor, by FreeFontButtonFont.
type FontDescriptor struct {
	Family  uintptr
	Size    float64
	Weight  uint32
	Italic  uint32
	Stretch uint32
}

// Lib is the libui-ng function table.
type Lib struct {
	Init          func(opts *InitOptions) uintptr
	Uninit        func()
	FreeInitError func(err uintptr)
	Main          func()
	Quit          func()
	QueueMain     func(fn, data uintptr)
	Timer         func(milliseconds int32, fn, data uintptr)
	OnShouldQuit  func(fn, data uintptr)
	FreeText      func(text uintptr)

	ControlDestroy func(c uintptr)
	ControlVisible func(c uintptr) int32
	ControlShow    func(c uintptr)
	ControlHide    func(c uintptr)
	ControlEnabled func(c uintptr) int32
	ControlEnable  func(c uintptr)
	ControlDisable func(c uintptr)

	NewWindow                  func(title *byte, width, height, hasMenubar int32) uintptr
	WindowTitle                func(w uintptr) uintptr
	WindowSetTitle             func(w uintptr, title *byte)
	WindowSetChild             func(w, child uintptr)
	WindowMargined             func(w uintptr) int32
	WindowSetMargined          func(w uintptr, margined int32)
	WindowFullscreen           func(w uintptr) int32
	WindowSetFullscreen        func(w uintptr, fullscreen int32)
	WindowBorderless           func(w uintptr) int32
	WindowSetBorderless        func(w uintptr, borderless int32)
	WindowContentSize          func(w uintptr, width, height *int32)
	WindowSetContentSize       func(w uintptr, width, height int32)
	WindowOnClosing            func(w, fn, data uintptr)
	WindowOnContentSizeChanged func(w, fn, data uintptr)
	MsgBox                     func(parent uintptr, title, description *byte)
	MsgBoxError                func(parent uintptr, title, description *byte)
	OpenFile                   func(parent uintptr) uintptr
	OpenFolder                 func(parent uintptr) uintptr
	SaveFile                   func(parent uintptr) uintptr

	NewButton       func(text *byte) uintptr
	ButtonText      func(b uintptr) uintptr
	ButtonSetText   func(b uintptr, text *byte)
	ButtonOnClicked func(b, fn, data uintptr)

	NewCheckbox        func(text *byte) uintptr
	CheckboxText       func(c uintptr) uintptr
	CheckboxSetText    func(c uintptr, text *byte)
	CheckboxChecked    func(c uintptr) int32
	CheckboxSetChecked func(c uintptr, checked int32)
	CheckboxOnToggled  func(c, fn, data uintptr)

	NewEntry         func() uintptr
	NewPasswordEntry func() uintptr
	NewSearchEntry   func() uintptr
	EntryText        func(e uintptr) uintptr
	EntrySetText     func(e uintptr, text *byte)
	EntryReadOnly    func(e uintptr) int32
	EntrySetReadOnly func(e uintptr, readonly int32)
	EntryOnChanged   func(e, fn, data uintptr)

	NewMultilineEntry            func() uintptr
	NewNonWrappingMultilineEntry func() uintptr
	MultilineEntryText           func(e uintptr) uintptr
	MultilineEntrySetText        func(e uintptr, text *byte)
	MultilineEntryAppend         func(e uintptr, text *byte)
	MultilineEntryReadOnly       func(e uintptr) int32
	MultilineEntrySetReadOnly    func(e uintptr, readonly int32)
	MultilineEntryOnChanged      func(e, fn, data uintptr)

	NewLabel     func(text *byte) uintptr
	LabelText    func(l uintptr) uintptr
	LabelSetText func(l uintptr, text *byte)

	NewSpinbox       func(min, max int32) uintptr
	SpinboxValue     func(s uintptr) int32
	SpinboxSetValue  func(s uintptr, value int32)
	SpinboxOnChanged func(s, fn, data uintptr)

	NewSlider       func(min, max int32) uintptr
	SliderValue     func(s uintptr) int32
	SliderSetValue  func(s uintptr, value int32)
	SliderOnChanged func(s, fn, data uintptr)

	NewProgressBar      func() uintptr
	ProgressBarValue    func(p uintptr) int32
	ProgressBarSetValue func(p uintptr, value int32)

	NewHorizontalSeparator func() uintptr
	NewVerticalSeparator   func() uintptr

	NewColorButton       func() uintptr
	ColorButtonColor     func(b uintptr, r, g, bl, a *float64)
	ColorButtonSetColor  func(b uintptr, r, g, bl, a float64)
	ColorButtonOnChanged func(b, fn, data uintptr)

	NewFontButton       func() uintptr
	FontButtonFont      func(b uintptr, desc *FontDescriptor)
	FontButtonOnChanged func(b, fn, data uintptr)
	FreeFontButtonFont  func(desc *FontDescriptor)

	NewDateTimePicker       func() uintptr
	NewDatePicker           func() uintptr
	NewTimePicker           func() uintptr
	DateTimePickerTime      func(d uintptr, t *Tm)
	DateTimePickerSetTime   func(d uintptr, t *Tm)
	DateTimePickerOnChanged func(d, fn, data uintptr)

	NewCombobox         func() uintptr
	ComboboxAppend      func(c uintptr, text *byte)
	ComboboxNumItems    func(c uintptr) int32
	ComboboxClear       func(c uintptr)
	ComboboxSelected    func(c uintptr) int32
	ComboboxSetSelected func(c uintptr, index int32)
	ComboboxOnSelected  func(c, fn, data uintptr)

	NewEditableCombobox       func() uintptr
	EditableComboboxAppend    func(c uintptr, text *byte)
	EditableComboboxText      func(c uintptr) uintptr
	EditableComboboxSetText   func(c uintptr, text *byte)
	EditableComboboxOnChanged func(c, fn, data uintptr)

	NewRadioButtons         func() uintptr
	RadioButtonsAppend      func(r uintptr, text *byte)
	RadioButtonsSelected    func(r uintptr) int32
	RadioButtonsSetSelected func(r uintptr, index int32)
	RadioButtonsOnSelected  func(r, fn, data uintptr)

	NewHorizontalBox func() uintptr
	NewVerticalBox   func() uintptr
	BoxAppend        func(b, child uintptr, stretchy int32)
	BoxNumChildren   func(b uintptr) int32
	BoxDelete        func(b uintptr, index int32)
	BoxPadded        func(b uintptr) int32
	BoxSetPadded     func(b uintptr, padded int32)

	NewGroup         func(title *byte) uintptr
	GroupTitle       func(g uintptr) uintptr
	GroupSetTitle    func(g uintptr, title *byte)
	GroupSetChild    func(g, child uintptr)
	GroupMargined    func(g uintptr) int32
	GroupSetMargined func(g uintptr, margined int32)

	NewForm         func() uintptr
	FormAppend      func(f uintptr, label *byte, child uintptr, stretchy int32)
	FormNumChildren func(f uintptr) int32
	FormDelete      func(f uintptr, index int32)
	FormPadded      func(f uintptr) int32
	FormSetPadded   func(f uintptr, padded int32)

	NewTab         func() uintptr
	TabAppend      func(t uintptr, name *byte, child uintptr)
	TabInsertAt    func(t uintptr, name *byte, index int32, child uintptr)
	TabDelete      func(t uintptr, index int32)
	TabNumPages    func(t uintptr) int32
	TabMargined    func(t uintptr, page int32) int32
	TabSetMargined func(t uintptr, page int32, margined int32)

	NewMenu                   func(name *byte) uintptr
	MenuAppendItem            func(m uintptr, name *byte) uintptr
	MenuAppendCheckItem       func(m uintptr, name *byte) uintptr
	MenuAppendQuitItem        func(m uintptr) uintptr
	MenuAppendPreferencesItem func(m uintptr) uintptr
	MenuAppendAboutItem       func(m uintptr) uintptr
	MenuAppendSeparator       func(m uintptr)
	MenuItemEnable            func(i uintptr)
	MenuItemDisable           func(i uintptr)
	MenuItemChecked           func(i uintptr) int32
	MenuItemSetChecked        func(i uintptr, checked int32)
	MenuItemOnClicked         func(i, fn, data uintptr)

	NewTableModel                func(handler uintptr) uintptr
	FreeTableModel               func(m uintptr)
	TableModelRowInserted        func(m uintptr, row int32)
	TableModelRowChanged         func(m uintptr, row int32)
	TableModelRowDeleted         func(m uintptr, row int32)
	NewTable                     func(params *TableParams) uintptr
	TableAppendTextColumn        func(t uintptr, name *byte, textColumn, editableColumn int32, params uintptr)
	TableAppendCheckboxColumn    func(t uintptr, name *byte, checkboxColumn, editableColumn int32)
	TableAppendButtonColumn      func(t uintptr, name *byte, buttonColumn, clickableColumn int32)
	TableAppendProgressBarColumn func(t uintptr, name *byte, progressColumn int32)
	TableHeaderVisible           func(t uintptr) int32
	TableHeaderSetVisible        func(t uintptr, visible int32)
	TableOnRowClicked            func(t, fn, data uintptr)
	TableOnRowDoubleClicked      func(t, fn, data uintptr)
	TableHeaderOnClicked         func(t, fn, data uintptr)

	NewTableValueString func(s *byte) uintptr
	NewTableValueInt    func(i int32) uintptr
	NewTableValueColor  func(r, g, b, a float64) uintptr
	FreeTableValue      func(v uintptr)
	TableValueGetType   func(v uintptr) int32
	TableValueString    func(v uintptr) uintptr
	TableValueInt       func(v uintptr) int32
	TableValueColor     func(v uintptr, r, g, b, a *float64)
}

// Bool converts a C int truth value.
func Bool(v int32) bool {
	return v != 0
}

// Int converts a Go bool to a C int truth value.
func Int(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
