//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"errors"
	"testing"
)

func expectBorrowPanic(t *testing.T, op string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		be, ok := r.(*BorrowError)
		if !ok {
			t.Fatalf("panic value %v, want *BorrowError", r)
		}
		if be.Op != op || !errors.Is(be, ErrBorrowed) {
			t.Errorf("BorrowError = %+v", be)
		}
	}()
	f()
}

func TestCellGetSet(t *testing.T) {
	c := NewCell("a")
	c.Set("b")
	if c.Get() != "b" {
		t.Errorf("Get = %q", c.Get())
	}
}

func TestCellUpdate(t *testing.T) {
	type point struct{ X, Y int }
	c := NewCell(point{1, 2})
	c.Update(func(p *point) {
		p.X = 10
		p.Y = 20
	})
	if got := c.Get(); got != (point{10, 20}) {
		t.Errorf("Get = %+v", got)
	}
	if c.Borrowed() {
		t.Error("still borrowed after Update")
	}
}

func TestCellOverlappingBorrowsPanic(t *testing.T) {
	c := NewCell(0)
	tests := []struct {
		op     string
		nested func()
	}{
		{"Get", func() { c.Get() }},
		{"Set", func() { c.Set(1) }},
		{"Update", func() { c.Update(func(*int) {}) }},
	}
	for _, tc := range tests {
		t.Run(tc.op, func(t *testing.T) {
			c.Update(func(v *int) {
				*v = 5
				expectBorrowPanic(t, tc.op, tc.nested)
			})
			if c.Borrowed() || c.Get() != 5 {
				t.Errorf("after Update: borrowed %v, value %d", c.Borrowed(), c.Get())
			}
		})
	}
}

func TestCellTryUpdate(t *testing.T) {
	c := NewCell(1)
	var inner error
	err := c.TryUpdate(func(v *int) {
		*v++
		inner = c.TryUpdate(func(v *int) { *v = 100 })
	})
	if err != nil {
		t.Fatal(err)
	}
	if !errors.Is(inner, ErrBorrowed) {
		t.Errorf("nested TryUpdate = %v, want ErrBorrowed", inner)
	}
	if c.Get() != 2 {
		t.Errorf("Get = %d, want 2", c.Get())
	}
}

func TestCellReleasedAfterPanic(t *testing.T) {
	c := NewCell(0)
	func() {
		defer func() { _ = recover() }()
		c.Update(func(*int) { panic("boom") })
	}()
	if c.Borrowed() {
		t.Error("Cell stays borrowed after a panicking Update")
	}
	c.Set(3)
}
