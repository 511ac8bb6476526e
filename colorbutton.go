//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"github.com/obinnaokechukwu/uigo/internal/dispatch"
)

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// ColorButton is a button that opens the platform color dialog.
type ColorButton struct {
	control
}

// NewColorButton creates a color button.
func (u *UI) NewColorButton() *ColorButton {
	b := &ColorButton{}
	b.control = u.wrap(u.lib.NewColorButton(), b)
	return b
}

// Color returns the selected color.
func (b *ColorButton) Color() Color {
	var c Color
	b.ui.lib.ColorButtonColor(b.ptr, &c.R, &c.G, &c.B, &c.A)
	return c
}

// SetColor selects c. OnChanged is not called.
func (b *ColorButton) SetColor(c Color) {
	b.ui.lib.ColorButtonSetColor(b.ptr, c.R, c.G, c.B, c.A)
}

// OnChanged sets the handler run after the user picks a color.
func (b *ColorButton) OnChanged(f func(c Color)) {
	adapt := dispatch.Color(b.ui.lib.ColorButtonColor, func(r, g, bl, a float64) {
		f(Color{r, g, bl, a})
	})
	b.on("changed", dispatch.Sender, adapt, b.ui.lib.ColorButtonOnChanged)
}
