// Package text converts strings at the libui boundary.
//
// Go strings are handed to the toolkit as NUL-terminated byte buffers and
// toolkit strings are copied back into Go before the toolkit's buffer is
// released. Callers always see "\n" line endings; on platforms whose text
// controls store "\r\n" the conversion adds and removes the carriage returns.
package text

import (
	"errors"
	"strings"
	"unsafe"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Convention is the line-ending convention a toolkit stores text in.
type Convention int

const (
	// LF stores "\n" (Cocoa, GTK).
	LF Convention = iota
	// CRLF stores "\r\n" (Win32).
	CRLF
)

// String returns the convention name.
func (c Convention) String() string {
	if c == CRLF {
		return "crlf"
	}
	return "lf"
}

// ErrEmbeddedNUL is returned when a string cannot cross the boundary
// because the toolkit would truncate it at an interior NUL byte.
var ErrEmbeddedNUL = errors.New("uigo: string contains NUL byte")

// StripDualEndings replaces every "\r\n" with "\n".
func StripDualEndings(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// InsertDualEndings replaces every "\n" not already preceded by "\r" with "\r\n".
func InsertDualEndings(s string) string {
	out, _, _ := transform.String(&insertCR{}, s)
	return out
}

// Encode returns s as a NUL-terminated buffer in convention c.
func Encode(s string, c Convention) ([]byte, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, ErrEmbeddedNUL
	}
	if c == CRLF {
		s = InsertDualEndings(s)
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return buf, nil
}

// MustEncode is like Encode but panics on an embedded NUL.
func MustEncode(s string, c Convention) []byte {
	buf, err := Encode(s, c)
	if err != nil {
		panic(err)
	}
	return buf
}

// Decode copies the NUL-terminated string at p, replacing ill-formed UTF-8
// with U+FFFD and, for CRLF, turning "\r\n" into "\n". A nil p decodes to "".
// The caller still owns p.
func Decode(p *byte, c Convention) string {
	if p == nil {
		return ""
	}
	// Copy first: the transformers may hand back their input unchanged.
	raw := string(unsafe.Slice(p, cstrlen(p)))

	var t transform.Transformer = runes.ReplaceIllFormed()
	if c == CRLF {
		t = transform.Chain(t, stripCR{})
	}
	out, _, err := transform.String(t, raw)
	if err != nil {
		return raw
	}
	return out
}

// DecodeAddr is Decode for addresses returned by purego as uintptr.
func DecodeAddr(addr uintptr, c Convention) string {
	return Decode((*byte)(unsafe.Pointer(addr)), c)
}

func cstrlen(p *byte) int {
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return n
}

// insertCR writes "\r\n" for every bare "\n".
type insertCR struct {
	prevCR bool
}

func (t *insertCR) Reset() { t.prevCR = false }

func (t *insertCR) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		b := src[nSrc]
		if b == '\n' && !t.prevCR {
			if nDst+2 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = '\r'
			dst[nDst+1] = '\n'
			nDst += 2
		} else {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = b
			nDst++
		}
		t.prevCR = b == '\r'
		nSrc++
	}
	return nDst, nSrc, nil
}

// stripCR drops the "\r" of every "\r\n".
type stripCR struct{ transform.NopResetter }

func (stripCR) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		b := src[nSrc]
		if b == '\r' {
			if nSrc+1 == len(src) && !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if nSrc+1 < len(src) && src[nSrc+1] == '\n' {
				nSrc++
				continue
			}
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = b
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}
