//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"github.com/obinnaokechukwu/uigo/internal/dispatch"
	"github.com/obinnaokechukwu/uigo/internal/native"
	"github.com/obinnaokechukwu/uigo/text"
)

// FontWeight is a font weight from 0 to 1000; 400 is normal.
type FontWeight uint32

const (
	FontWeightMinimum    FontWeight = 0
	FontWeightThin       FontWeight = 100
	FontWeightUltraLight FontWeight = 200
	FontWeightLight      FontWeight = 300
	FontWeightBook       FontWeight = 350
	FontWeightNormal     FontWeight = 400
	FontWeightMedium     FontWeight = 500
	FontWeightSemiBold   FontWeight = 600
	FontWeightBold       FontWeight = 700
	FontWeightUltraBold  FontWeight = 800
	FontWeightHeavy      FontWeight = 900
	FontWeightUltraHeavy FontWeight = 950
	FontWeightMaximum    FontWeight = 1000
)

// FontSlant is the slant of a font.
type FontSlant uint32

const (
	FontSlantNormal FontSlant = iota
	FontSlantOblique
	FontSlantItalic
)

// FontStretch is the width of a font relative to its normal width.
type FontStretch uint32

const (
	FontStretchUltraCondensed FontStretch = iota
	FontStretchExtraCondensed
	FontStretchCondensed
	FontStretchSemiCondensed
	FontStretchNormal
	FontStretchSemiExpanded
	FontStretchExpanded
	FontStretchExtraExpanded
	FontStretchUltraExpanded
)

// Font describes a font by family and style.
type Font struct {
	Family  string
	Size    float64 // points
	Weight  FontWeight
	Slant   FontSlant
	Stretch FontStretch
}

// FontButton is a button that opens the platform font dialog.
type FontButton struct {
	control
}

// NewFontButton creates a font button.
func (u *UI) NewFontButton() *FontButton {
	b := &FontButton{}
	b.control = u.wrap(u.lib.NewFontButton(), b)
	return b
}

// Font returns the selected font.
func (b *FontButton) Font() Font {
	return b.ui.font(b.ptr)
}

// OnChanged sets the handler run after the user picks a font.
func (b *FontButton) OnChanged(f func(font Font)) {
	b.on("changed", dispatch.Sender, dispatch.Value(b.ui.font, f), b.ui.lib.FontButtonOnChanged)
}

// font copies the button's descriptor and hands it back to the toolkit
// with uiFreeFontButtonFont, never uiFreeText.
func (u *UI) font(button uintptr) Font {
	var d native.FontDescriptor
	u.lib.FontButtonFont(button, &d)
	f := Font{
		Family:  text.DecodeAddr(d.Family, text.LF),
		Size:    d.Size,
		Weight:  FontWeight(d.Weight),
		Slant:   FontSlant(d.Italic),
		Stretch: FontStretch(d.Stretch),
	}
	u.lib.FreeFontButtonFont(&d)
	return f
}
