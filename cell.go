//go:build !ios && !android && (amd64 || arm64)

package uigo

// Cell holds application state shared by several callbacks.
//
// Callbacks run one at a time on the UI goroutine but may nest: a handler
// that changes a control can make the toolkit run another handler before it
// returns. Get and Set are instantaneous and may be used from nested
// handlers freely. Update holds the value for the duration of f; any access
// to the same Cell from inside f, including from a handler f triggers,
// panics with a *BorrowError instead of observing a half-updated value.
//
// A Cell is not safe for use from other goroutines; hand work back with
// UI.QueueMain.
type Cell[T any] struct {
	v        T
	borrowed bool
}

// NewCell returns a Cell holding v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{v: v}
}

// Get returns a copy of the value.
func (c *Cell[T]) Get() T {
	if c.borrowed {
		panic(&BorrowError{Op: "Get"})
	}
	return c.v
}

// Set replaces the value.
func (c *Cell[T]) Set(v T) {
	if c.borrowed {
		panic(&BorrowError{Op: "Set"})
	}
	c.v = v
}

// Update calls f with exclusive access to the value.
func (c *Cell[T]) Update(f func(v *T)) {
	if c.borrowed {
		panic(&BorrowError{Op: "Update"})
	}
	c.borrowed = true
	defer func() { c.borrowed = false }()
	f(&c.v)
}

// TryUpdate is like Update but returns ErrBorrowed instead of panicking
// when the Cell is already held.
func (c *Cell[T]) TryUpdate(f func(v *T)) error {
	if c.borrowed {
		return ErrBorrowed
	}
	c.Update(f)
	return nil
}

// Borrowed reports whether an Update is in progress.
func (c *Cell[T]) Borrowed() bool {
	return c.borrowed
}
