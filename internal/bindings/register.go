//go:build !ios && !android && (amd64 || arm64)

package bindings

import (
	"fmt"
	"strings"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/uigo/internal/native"
)

type symbol struct {
	fptr     any
	name     string
	optional bool
}

// register binds every field of l to its symbol in lib. Optional symbols
// that the loaded build lacks are left nil.
func register(l *native.Lib, lib uintptr) error {
	symbols := []symbol{
		{&l.Init, "uiInit", false},
		{&l.Uninit, "uiUninit", false},
		{&l.FreeInitError, "uiFreeInitError", false},
		{&l.Main, "uiMain", false},
		{&l.Quit, "uiQuit", false},
		{&l.QueueMain, "uiQueueMain", false},
		{&l.Timer, "uiTimer", false},
		{&l.OnShouldQuit, "uiOnShouldQuit", false},
		{&l.FreeText, "uiFreeText", false},
		{&l.ControlDestroy, "uiControlDestroy", false},
		{&l.ControlVisible, "uiControlVisible", false},
		{&l.ControlShow, "uiControlShow", false},
		{&l.ControlHide, "uiControlHide", false},
		{&l.ControlEnabled, "uiControlEnabled", false},
		{&l.ControlEnable, "uiControlEnable", false},
		{&l.ControlDisable, "uiControlDisable", false},
		{&l.NewWindow, "uiNewWindow", false},
		{&l.WindowTitle, "uiWindowTitle", false},
		{&l.WindowSetTitle, "uiWindowSetTitle", false},
		{&l.WindowSetChild, "uiWindowSetChild", false},
		{&l.WindowMargined, "uiWindowMargined", false},
		{&l.WindowSetMargined, "uiWindowSetMargined", false},
		{&l.WindowFullscreen, "uiWindowFullscreen", true},
		{&l.WindowSetFullscreen, "uiWindowSetFullscreen", true},
		{&l.WindowBorderless, "uiWindowBorderless", true},
		{&l.WindowSetBorderless, "uiWindowSetBorderless", true},
		{&l.WindowContentSize, "uiWindowContentSize", true},
		{&l.WindowSetContentSize, "uiWindowSetContentSize", true},
		{&l.WindowOnClosing, "uiWindowOnClosing", false},
		{&l.WindowOnContentSizeChanged, "uiWindowOnContentSizeChanged", true},
		{&l.MsgBox, "uiMsgBox", false},
		{&l.MsgBoxError, "uiMsgBoxError", false},
		{&l.OpenFile, "uiOpenFile", false},
		{&l.OpenFolder, "uiOpenFolder", true},
		{&l.SaveFile, "uiSaveFile", false},
		{&l.NewButton, "uiNewButton", false},
		{&l.ButtonText, "uiButtonText", false},
		{&l.ButtonSetText, "uiButtonSetText", false},
		{&l.ButtonOnClicked, "uiButtonOnClicked", false},
		{&l.NewCheckbox, "uiNewCheckbox", false},
		{&l.CheckboxText, "uiCheckboxText", false},
		{&l.CheckboxSetText, "uiCheckboxSetText", false},
		{&l.CheckboxChecked, "uiCheckboxChecked", false},
		{&l.CheckboxSetChecked, "uiCheckboxSetChecked", false},
		{&l.CheckboxOnToggled, "uiCheckboxOnToggled", false},
		{&l.NewEntry, "uiNewEntry", false},
		{&l.NewPasswordEntry, "uiNewPasswordEntry", false},
		{&l.NewSearchEntry, "uiNewSearchEntry", false},
		{&l.EntryText, "uiEntryText", false},
		{&l.EntrySetText, "uiEntrySetText", false},
		{&l.EntryReadOnly, "uiEntryReadOnly", false},
		{&l.EntrySetReadOnly, "uiEntrySetReadOnly", false},
		{&l.EntryOnChanged, "uiEntryOnChanged", false},
		{&l.NewMultilineEntry, "uiNewMultilineEntry", false},
		{&l.NewNonWrappingMultilineEntry, "uiNewNonWrappingMultilineEntry", false},
		{&l.MultilineEntryText, "uiMultilineEntryText", false},
		{&l.MultilineEntrySetText, "uiMultilineEntrySetText", false},
		{&l.MultilineEntryAppend, "uiMultilineEntryAppend", false},
		{&l.MultilineEntryReadOnly, "uiMultilineEntryReadOnly", false},
		{&l.MultilineEntrySetReadOnly, "uiMultilineEntrySetReadOnly", false},
		{&l.MultilineEntryOnChanged, "uiMultilineEntryOnChanged", false},
		{&l.NewLabel, "uiNewLabel", false},
		{&l.LabelText, "uiLabelText", false},
		{&l.LabelSetText, "uiLabelSetText", false},
		{&l.NewSpinbox, "uiNewSpinbox", false},
		{&l.SpinboxValue, "uiSpinboxValue", false},
		{&l.SpinboxSetValue, "uiSpinboxSetValue", false},
		{&l.SpinboxOnChanged, "uiSpinboxOnChanged", false},
		{&l.NewSlider, "uiNewSlider", false},
		{&l.SliderValue, "uiSliderValue", false},
		{&l.SliderSetValue, "uiSliderSetValue", false},
		{&l.SliderOnChanged, "uiSliderOnChanged", false},
		{&l.NewProgressBar, "uiNewProgressBar", false},
		{&l.ProgressBarValue, "uiProgressBarValue", false},
		{&l.ProgressBarSetValue, "uiProgressBarSetValue", false},
		{&l.NewHorizontalSeparator, "uiNewHorizontalSeparator", false},
		{&l.NewVerticalSeparator, "uiNewVerticalSeparator", false},
		{&l.NewColorButton, "uiNewColorButton", false},
		{&l.ColorButtonColor, "uiColorButtonColor", false},
		{&l.ColorButtonSetColor, "uiColorButtonSetColor", false},
		{&l.ColorButtonOnChanged, "uiColorButtonOnChanged", false},
		{&l.NewFontButton, "uiNewFontButton", false},
		{&l.FontButtonFont, "uiFontButtonFont", false},
		{&l.FontButtonOnChanged, "uiFontButtonOnChanged", false},
		{&l.FreeFontButtonFont, "uiFreeFontButtonFont", false},
		{&l.NewDateTimePicker, "uiNewDateTimePicker", false},
		{&l.NewDatePicker, "uiNewDatePicker", false},
		{&l.NewTimePicker, "uiNewTimePicker", false},
		{&l.DateTimePickerTime, "uiDateTimePickerTime", false},
		{&l.DateTimePickerSetTime, "uiDateTimePickerSetTime", false},
		{&l.DateTimePickerOnChanged, "uiDateTimePickerOnChanged", false},
		{&l.NewCombobox, "uiNewCombobox", false},
		{&l.ComboboxAppend, "uiComboboxAppend", false},
		{&l.ComboboxNumItems, "uiComboboxNumItems", false},
		{&l.ComboboxClear, "uiComboboxClear", false},
		{&l.ComboboxSelected, "uiComboboxSelected", false},
		{&l.ComboboxSetSelected, "uiComboboxSetSelected", false},
		{&l.ComboboxOnSelected, "uiComboboxOnSelected", false},
		{&l.NewEditableCombobox, "uiNewEditableCombobox", false},
		{&l.EditableComboboxAppend, "uiEditableComboboxAppend", false},
		{&l.EditableComboboxText, "uiEditableComboboxText", false},
		{&l.EditableComboboxSetText, "uiEditableComboboxSetText", false},
		{&l.EditableComboboxOnChanged, "uiEditableComboboxOnChanged", false},
		{&l.NewRadioButtons, "uiNewRadioButtons", false},
		{&l.RadioButtonsAppend, "uiRadioButtonsAppend", false},
		{&l.RadioButtonsSelected, "uiRadioButtonsSelected", false},
		{&l.RadioButtonsSetSelected, "uiRadioButtonsSetSelected", false},
		{&l.RadioButtonsOnSelected, "uiRadioButtonsOnSelected", false},
		{&l.NewHorizontalBox, "uiNewHorizontalBox", false},
		{&l.NewVerticalBox, "uiNewVerticalBox", false},
		{&l.BoxAppend, "uiBoxAppend", false},
		{&l.BoxNumChildren, "uiBoxNumChildren", false},
		{&l.BoxDelete, "uiBoxDelete", false},
		{&l.BoxPadded, "uiBoxPadded", false},
		{&l.BoxSetPadded, "uiBoxSetPadded", false},
		{&l.NewGroup, "uiNewGroup", false},
		{&l.GroupTitle, "uiGroupTitle", false},
		{&l.GroupSetTitle, "uiGroupSetTitle", false},
		{&l.GroupSetChild, "uiGroupSetChild", false},
		{&l.GroupMargined, "uiGroupMargined", false},
		{&l.GroupSetMargined, "uiGroupSetMargined", false},
		{&l.NewForm, "uiNewForm", false},
		{&l.FormAppend, "uiFormAppend", false},
		{&l.FormNumChildren, "uiFormNumChildren", false},
		{&l.FormDelete, "uiFormDelete", false},
		{&l.FormPadded, "uiFormPadded", false},
		{&l.FormSetPadded, "uiFormSetPadded", false},
		{&l.NewTab, "uiNewTab", false},
		{&l.TabAppend, "uiTabAppend", false},
		{&l.TabInsertAt, "uiTabInsertAt", false},
		{&l.TabDelete, "uiTabDelete", false},
		{&l.TabNumPages, "uiTabNumPages", false},
		{&l.TabMargined, "uiTabMargined", false},
		{&l.TabSetMargined, "uiTabSetMargined", false},
		{&l.NewMenu, "uiNewMenu", false},
		{&l.MenuAppendItem, "uiMenuAppendItem", false},
		{&l.MenuAppendCheckItem, "uiMenuAppendCheckItem", false},
		{&l.MenuAppendQuitItem, "uiMenuAppendQuitItem", false},
		{&l.MenuAppendPreferencesItem, "uiMenuAppendPreferencesItem", false},
		{&l.MenuAppendAboutItem, "uiMenuAppendAboutItem", false},
		{&l.MenuAppendSeparator, "uiMenuAppendSeparator", false},
		{&l.MenuItemEnable, "uiMenuItemEnable", false},
		{&l.MenuItemDisable, "uiMenuItemDisable", false},
		{&l.MenuItemChecked, "uiMenuItemChecked", false},
		{&l.MenuItemSetChecked, "uiMenuItemSetChecked", false},
		{&l.MenuItemOnClicked, "uiMenuItemOnClicked", false},
		{&l.NewTableModel, "uiNewTableModel", false},
		{&l.FreeTableModel, "uiFreeTableModel", false},
		{&l.TableModelRowInserted, "uiTableModelRowInserted", false},
		{&l.TableModelRowChanged, "uiTableModelRowChanged", false},
		{&l.TableModelRowDeleted, "uiTableModelRowDeleted", false},
		{&l.NewTable, "uiNewTable", false},
		{&l.TableAppendTextColumn, "uiTableAppendTextColumn", false},
		{&l.TableAppendCheckboxColumn, "uiTableAppendCheckboxColumn", false},
		{&l.TableAppendButtonColumn, "uiTableAppendButtonColumn", false},
		{&l.TableAppendProgressBarColumn, "uiTableAppendProgressBarColumn", false},
		{&l.TableHeaderVisible, "uiTableHeaderVisible", true},
		{&l.TableHeaderSetVisible, "uiTableHeaderSetVisible", true},
		{&l.TableOnRowClicked, "uiTableOnRowClicked", true},
		{&l.TableOnRowDoubleClicked, "uiTableOnRowDoubleClicked", true},
		{&l.TableHeaderOnClicked, "uiTableHeaderOnClicked", true},
		{&l.NewTableValueString, "uiNewTableValueString", false},
		{&l.NewTableValueInt, "uiNewTableValueInt", false},
		{&l.NewTableValueColor, "uiNewTableValueColor", false},
		{&l.FreeTableValue, "uiFreeTableValue", false},
		{&l.TableValueGetType, "uiTableValueGetType", false},
		{&l.TableValueString, "uiTableValueString", false},
		{&l.TableValueInt, "uiTableValueInt", false},
		{&l.TableValueColor, "uiTableValueColor", false},
	}

	var missing []string
	for _, s := range symbols {
		addr, err := lookup(lib, s.name)
		if err != nil || addr == 0 {
			if !s.optional {
				missing = append(missing, s.name)
			}
			continue
		}
		purego.RegisterFunc(s.fptr, addr)
	}
	if len(missing) > 0 {
		return fmt.Errorf("uigo: libui is missing symbols: %s", strings.Join(missing, ", "))
	}
	return nil
}
