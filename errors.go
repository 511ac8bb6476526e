//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"errors"
	"fmt"

	"github.com/obinnaokechukwu/uigo/internal/bindings"
	"github.com/obinnaokechukwu/uigo/internal/dispatch"
	"github.com/obinnaokechukwu/uigo/internal/handles"
	"github.com/obinnaokechukwu/uigo/text"
)

// Common errors
var (
	// ErrAlreadyInitialized indicates Init was called while a UI is live.
	ErrAlreadyInitialized = errors.New("uigo: already initialized")

	// ErrClosed indicates the UI has been closed.
	ErrClosed = errors.New("uigo: ui is closed")

	// ErrBorrowed indicates a Cell is exclusively borrowed by Update.
	ErrBorrowed = errors.New("uigo: cell is already borrowed")

	// ErrAttached indicates Destroy was called on a control that still has
	// a parent. Destroy the parent or detach the control first.
	ErrAttached = errors.New("uigo: control is attached to a parent")

	// ErrDestroyed indicates the control was already destroyed, by Destroy
	// or by the toolkit when a window close was allowed.
	ErrDestroyed = errors.New("uigo: control is destroyed")

	// ErrLayout indicates a layout description could not be built.
	ErrLayout = errors.New("uigo: invalid layout")

	// ErrLibraryNotFound indicates the libui shared library could not be located.
	ErrLibraryNotFound = bindings.ErrLibraryNotFound

	// ErrStaleHandle is wrapped by the CallbackError raised when the toolkit
	// invokes a callback whose handle was already released.
	ErrStaleHandle = handles.ErrStaleHandle

	// ErrEmbeddedNUL is the panic value of setters given a string containing
	// a NUL byte.
	ErrEmbeddedNUL = text.ErrEmbeddedNUL
)

// CallbackError is the panic value raised when a native callback cannot be
// dispatched.
type CallbackError = dispatch.CallbackError

// InitError reports that the toolkit could not be initialized, either
// because the library could not be loaded (Err is set) or because uiInit
// returned a message.
type InitError struct {
	Message string
	Err     error
}

func (e *InitError) Error() string {
	switch {
	case e.Err != nil && e.Message != "":
		return fmt.Sprintf("uigo: init failed: %s: %v", e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("uigo: init failed: %v", e.Err)
	default:
		return "uigo: init failed: " + e.Message
	}
}

func (e *InitError) Unwrap() error { return e.Err }

// IndexError reports a structural reference outside a container's bounds.
// Index is the offending index and Len the number of children at the time.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("uigo: %s: index %d out of bounds (len %d)", e.Op, e.Index, e.Len)
}

// BorrowError is the panic value raised when a Cell is accessed while
// Update holds it.
type BorrowError struct {
	Op string
}

func (e *BorrowError) Error() string {
	return fmt.Sprintf("uigo: Cell.%s during Update", e.Op)
}

func (e *BorrowError) Unwrap() error { return ErrBorrowed }

// IsAlreadyInitialized returns true if err reports a second Init.
func IsAlreadyInitialized(err error) bool {
	return errors.Is(err, ErrAlreadyInitialized)
}

// IsOutOfBounds returns true if err is an *IndexError.
func IsOutOfBounds(err error) bool {
	var ie *IndexError
	return errors.As(err, &ie)
}

func checkIndex(op string, index, n int) error {
	if index < 0 || index >= n {
		return &IndexError{Op: op, Index: index, Len: n}
	}
	return nil
}
