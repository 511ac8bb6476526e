//go:build windows

package native

// Tm mirrors the MSVC struct tm. Isdst is ignored by the toolkit.
type Tm struct {
	Sec, Min, Hour int32
	Mday, Mon      int32
	Year           int32
	Wday, Yday     int32
	Isdst          int32
}
