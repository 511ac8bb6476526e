//go:build !windows

package native

// Tm mirrors the glibc and Darwin struct tm, including the BSD extension
// fields the toolkit may fill in.
type Tm struct {
	Sec, Min, Hour int32
	Mday, Mon      int32
	Year           int32
	Wday, Yday     int32
	Isdst          int32
	_              int32
	Gmtoff         int64
	Zone           uintptr
}
