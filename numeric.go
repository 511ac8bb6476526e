//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"github.com/obinnaokechukwu/uigo/internal/dispatch"
)

// NumericEntry is a control holding an integer in a fixed range.
type NumericEntry interface {
	Control
	Value() int
	// SetValue sets the value, clamped to the range by the toolkit.
	// OnChanged is not called.
	SetValue(v int)
	// OnChanged sets the handler run after the user changes the value.
	OnChanged(f func(v int))
}

var (
	_ NumericEntry = (*Spinbox)(nil)
	_ NumericEntry = (*Slider)(nil)
)

// Spinbox is a numeric field with up/down arrows.
type Spinbox struct {
	control
}

// NewSpinbox creates a spinbox over [min, max].
func (u *UI) NewSpinbox(min, max int) *Spinbox {
	s := &Spinbox{}
	s.control = u.wrap(u.lib.NewSpinbox(int32(min), int32(max)), s)
	return s
}

func (s *Spinbox) Value() int { return int(s.ui.lib.SpinboxValue(s.ptr)) }

func (s *Spinbox) SetValue(v int) { s.ui.lib.SpinboxSetValue(s.ptr, int32(v)) }

func (s *Spinbox) OnChanged(f func(v int)) {
	s.on("changed", dispatch.Sender, dispatch.Int(s.ui.lib.SpinboxValue, f), s.ui.lib.SpinboxOnChanged)
}

// Slider is a draggable numeric control.
type Slider struct {
	control
}

// NewSlider creates a slider over [min, max].
func (u *UI) NewSlider(min, max int) *Slider {
	s := &Slider{}
	s.control = u.wrap(u.lib.NewSlider(int32(min), int32(max)), s)
	return s
}

func (s *Slider) Value() int { return int(s.ui.lib.SliderValue(s.ptr)) }

func (s *Slider) SetValue(v int) { s.ui.lib.SliderSetValue(s.ptr, int32(v)) }

func (s *Slider) OnChanged(f func(v int)) {
	s.on("changed", dispatch.Sender, dispatch.Int(s.ui.lib.SliderValue, f), s.ui.lib.SliderOnChanged)
}

// ProgressBar shows completion from 0 to 100.
type ProgressBar struct {
	control
}

// NewProgressBar creates a progress bar at 0.
func (u *UI) NewProgressBar() *ProgressBar {
	p := &ProgressBar{}
	p.control = u.wrap(u.lib.NewProgressBar(), p)
	return p
}

// Value returns the progress, or -1 when indeterminate.
func (p *ProgressBar) Value() int { return int(p.ui.lib.ProgressBarValue(p.ptr)) }

// SetValue sets the progress in [0, 100]; -1 makes the bar indeterminate.
func (p *ProgressBar) SetValue(v int) { p.ui.lib.ProgressBarSetValue(p.ptr, int32(v)) }
