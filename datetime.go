//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"time"

	"github.com/obinnaokechukwu/uigo/internal/dispatch"
	"github.com/obinnaokechukwu/uigo/internal/native"
)

// DateTimePicker lets the user enter a date, a time, or both. The toolkit
// works in local time without seconds fractions; a date picker leaves the
// clock at midnight and a time picker leaves the date at 1970-01-01.
type DateTimePicker struct {
	control
}

func (u *UI) newPicker(ptr uintptr) *DateTimePicker {
	d := &DateTimePicker{}
	d.control = u.wrap(ptr, d)
	return d
}

// NewDateTimePicker creates a picker for a date and a time of day.
func (u *UI) NewDateTimePicker() *DateTimePicker { return u.newPicker(u.lib.NewDateTimePicker()) }

// NewDatePicker creates a picker for a date only.
func (u *UI) NewDatePicker() *DateTimePicker { return u.newPicker(u.lib.NewDatePicker()) }

// NewTimePicker creates a picker for a time of day only.
func (u *UI) NewTimePicker() *DateTimePicker { return u.newPicker(u.lib.NewTimePicker()) }

// Time returns the picked value in the local time zone.
func (d *DateTimePicker) Time() time.Time {
	return d.ui.pickerTime(d.ptr)
}

// SetTime shows t converted to local time. OnChanged is not called.
func (d *DateTimePicker) SetTime(t time.Time) {
	tm := toTm(t)
	d.ui.lib.DateTimePickerSetTime(d.ptr, &tm)
}

// OnChanged sets the handler run after the user changes the value.
func (d *DateTimePicker) OnChanged(f func(t time.Time)) {
	d.on("changed", dispatch.Sender, dispatch.Value(d.ui.pickerTime, f), d.ui.lib.DateTimePickerOnChanged)
}

func (u *UI) pickerTime(picker uintptr) time.Time {
	var tm native.Tm
	u.lib.DateTimePickerTime(picker, &tm)
	return fromTm(&tm)
}

// fromTm reads a struct tm; out-of-range fields are normalized by time.Date.
func fromTm(tm *native.Tm) time.Time {
	return time.Date(int(tm.Year)+1900, time.Month(tm.Mon+1), int(tm.Mday),
		int(tm.Hour), int(tm.Min), int(tm.Sec), 0, time.Local)
}

// toTm leaves Isdst at -1 so the toolkit's mktime decides.
func toTm(t time.Time) native.Tm {
	t = t.Local()
	return native.Tm{
		Sec:   int32(t.Second()),
		Min:   int32(t.Minute()),
		Hour:  int32(t.Hour()),
		Mday:  int32(t.Day()),
		Mon:   int32(t.Month()) - 1,
		Year:  int32(t.Year() - 1900),
		Wday:  int32(t.Weekday()),
		Yday:  int32(t.YearDay() - 1),
		Isdst: -1,
	}
}
