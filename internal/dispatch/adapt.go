//go:build !ios && !android && (amd64 || arm64)

package dispatch

// libui change events carry only the sender; the new value is read back
// from the control inside the callback, after the toolkit has committed it.
// The adapters below build the erased SenderFunc for each value shape.

// Void adapts a callback that takes no event argument.
func Void(f func()) SenderFunc {
	return func(uintptr) { f() }
}

// Int adapts an integer-valued change (spinbox, slider, selection index).
func Int(get func(sender uintptr) int32, f func(int)) SenderFunc {
	return func(sender uintptr) { f(int(get(sender))) }
}

// Bool adapts a toggle.
func Bool(get func(sender uintptr) int32, f func(bool)) SenderFunc {
	return func(sender uintptr) { f(get(sender) != 0) }
}

// String adapts a text change. get must copy the toolkit's buffer and
// release it before returning.
func String(get func(sender uintptr) string, f func(string)) SenderFunc {
	return func(sender uintptr) { f(get(sender)) }
}

// Row adapts a row or column index event.
func Row(f func(int)) IndexFunc {
	return func(_ uintptr, index int) { f(index) }
}

// Color adapts a color change. get fills the four components in [0, 1].
func Color(get func(sender uintptr, r, g, b, a *float64), f func(r, g, b, a float64)) SenderFunc {
	return func(sender uintptr) {
		var r, g, b, a float64
		get(sender, &r, &g, &b, &a)
		f(r, g, b, a)
	}
}

// Value adapts a change read back as a structured value, such as a font
// descriptor or a date. get must copy out of any toolkit-owned memory and
// release it before returning.
func Value[T any](get func(sender uintptr) T, f func(T)) SenderFunc {
	return func(sender uintptr) { f(get(sender)) }
}
