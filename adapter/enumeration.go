package adapter

import (
	"errors"
	"iter"
)

var (
	// ErrNoMoreElements is returned by Next once the enumeration is spent.
	ErrNoMoreElements = errors.New("adapter: no more elements")
	// ErrRemoveUnsupported is returned by Remove on collections that only
	// ever learned to read.
	ErrRemoveUnsupported = errors.New("adapter: remove is not supported")
)

// Enumeration is the old-style cursor: ask, then take. It predates both
// generics and range-over-func in spirit, which is exactly why it needs an
// adapter.
type Enumeration[T any] interface {
	HasMore() bool
	Next() (T, error)
}

// Remover is the optional mutation surface of an enumeration. Legacy
// collections typically implement it only to refuse.
type Remover interface {
	Remove() error
}

// SliceEnumeration walks a slice front to back, read-only.
type SliceEnumeration[T any] struct {
	items []T
	pos   int
}

// NewSliceEnumeration returns a cursor over items. The slice is not copied;
// the caller keeps ownership and promises not to shrink it mid-walk.
func NewSliceEnumeration[T any](items []T) *SliceEnumeration[T] {
	return &SliceEnumeration[T]{items: items}
}

// HasMore reports whether Next has anything left to hand out.
func (e *SliceEnumeration[T]) HasMore() bool { return e.pos < len(e.items) }

// Next returns the next element, or ErrNoMoreElements past the end.
func (e *SliceEnumeration[T]) Next() (T, error) {
	if !e.HasMore() {
		var zero T
		return zero, ErrNoMoreElements
	}
	v := e.items[e.pos]
	e.pos++
	return v, nil
}

// Remove refuses: a SliceEnumeration is a window, not an editor.
func (e *SliceEnumeration[T]) Remove() error { return ErrRemoveUnsupported }

// Iterate adapts any Enumeration to iter.Seq, so legacy cursors drop into a
// plain range loop. The sequence is single-use, like the cursor underneath.
func Iterate[T any](e Enumeration[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for e.HasMore() {
			v, err := e.Next()
			if err != nil {
				// A misbehaving cursor ends the sequence early.
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
