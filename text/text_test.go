package text

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestStripDualEndings(t *testing.T) {
	if got := StripDualEndings("Line 1\r\nLine 2\r\n"); got != "Line 1\nLine 2\n" {
		t.Errorf("StripDualEndings = %q", got)
	}
}

func TestInsertDualEndings(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"basic", "Line 1\nLine 2\n", "Line 1\r\nLine 2\r\n"},
		{"no duplicate", "Line 1\r\nLine 2\r\n", "Line 1\r\nLine 2\r\n"},
		{"mixed", "a\nb\r\nc", "a\r\nb\r\nc"},
		{"leading", "\n", "\r\n"},
		{"lone cr", "a\rb", "a\rb"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InsertDualEndings(tt.in); got != tt.want {
				t.Errorf("InsertDualEndings(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestInsertDualEndingsLongInput(t *testing.T) {
	// Longer than transform's internal buffer, so Transform sees ErrShortDst.
	in := strings.Repeat("x\n", 10000)
	want := strings.Repeat("x\r\n", 10000)
	if got := InsertDualEndings(in); got != want {
		t.Errorf("long input: got %d bytes, want %d", len(got), len(want))
	}
}

func TestEncodeTerminates(t *testing.T) {
	buf, err := Encode("hi\n", CRLF)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf) != "hi\r\n\x00" {
		t.Errorf("Encode = %q", buf)
	}

	buf, err = Encode("hi\n", LF)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf) != "hi\n\x00" {
		t.Errorf("Encode = %q", buf)
	}
}

func TestEncodeEmbeddedNUL(t *testing.T) {
	if _, err := Encode("a\x00b", LF); !errors.Is(err, ErrEmbeddedNUL) {
		t.Errorf("Encode with NUL = %v, want ErrEmbeddedNUL", err)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustEncode did not panic")
		}
	}()
	MustEncode("a\x00b", LF)
}

func TestDecodeNil(t *testing.T) {
	if got := Decode(nil, CRLF); got != "" {
		t.Errorf("Decode(nil) = %q", got)
	}
}

func TestDecodeStripsOnlyForCRLF(t *testing.T) {
	buf := []byte("a\r\nb\x00")
	if got := Decode(&buf[0], CRLF); got != "a\nb" {
		t.Errorf("Decode CRLF = %q", got)
	}
	if got := Decode(&buf[0], LF); got != "a\r\nb" {
		t.Errorf("Decode LF = %q", got)
	}
}

func TestDecodeReplacesIllFormed(t *testing.T) {
	buf := []byte{'o', 'k', 0xff, 0}
	got := Decode(&buf[0], LF)
	if !utf8.ValidString(got) || got != "ok�" {
		t.Errorf("Decode = %q, want %q", got, "ok�")
	}
}

func TestDecodeCopies(t *testing.T) {
	buf := []byte("keep\x00")
	got := Decode(&buf[0], LF)
	copy(buf, "XXXX")
	if got != "keep" {
		t.Errorf("Decode result aliased the source buffer: %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"Here is some test data.\n\nMultiline!\n",
		"héllo, wörld ✓",
		"日本語\nテキスト\n",
		"emoji 🎉\n\n\ttabs\n",
		"\n",
		"trailing cr\r",
		"a\rb",
	}
	for _, conv := range []Convention{LF, CRLF} {
		for _, in := range inputs {
			buf, err := Encode(in, conv)
			if err != nil {
				t.Fatalf("Encode(%q, %s): %v", in, conv, err)
			}
			if got := Decode(&buf[0], conv); got != in {
				t.Errorf("%s round trip of %q = %q", conv, in, got)
			}
		}
	}
}
