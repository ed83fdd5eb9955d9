// Package span provides a generic non-owning view over a contiguous run
// of elements. A Span never allocates and never copies elements; the
// caller must keep the referenced storage alive for as long as any view
// of it exists.
package span

import (
	"iter"
	"unsafe"
)

// Span views a contiguous run of elements owned elsewhere. It is a value
// type: copying a Span copies the (pointer, length) pair, not elements.
type Span[T any] struct {
	items []T
}

// New wraps a caller-owned slice. The slice form covers arrays,
// pointer+length pairs and any container that can hand out its backing
// slice.
func New[T any](items []T) Span[T] { return Span[T]{items: items} }

// Of makes a span over its arguments' backing array.
func Of[T any](items ...T) Span[T] { return Span[T]{items: items} }

// Len returns the element count.
func (s Span[T]) Len() int { return len(s.items) }

// ByteLen returns the viewed storage size in bytes.
func (s Span[T]) ByteLen() int {
	var zero T
	return len(s.items) * int(unsafe.Sizeof(zero))
}

// IsEmpty reports whether the view has no elements.
func (s Span[T]) IsEmpty() bool { return len(s.items) == 0 }

// Data returns the address of the first element, nil when empty.
func (s Span[T]) Data() *T {
	if len(s.items) == 0 {
		return nil
	}
	return &s.items[0]
}

// At returns a pointer to element i, allowing mutation through the view.
// An out-of-range index panics, as with slice indexing.
func (s Span[T]) At(i int) *T { return &s.items[i] }

// First returns a view over the first n elements, sharing storage.
func (s Span[T]) First(n int) Span[T] { return Span[T]{items: s.items[:n]} }

// Last returns a view over the last n elements, sharing storage.
func (s Span[T]) Last(n int) Span[T] {
	return Span[T]{items: s.items[len(s.items)-n:]}
}

// Sub returns a view over n elements starting at off, sharing storage.
func (s Span[T]) Sub(off, n int) Span[T] {
	return Span[T]{items: s.items[off : off+n]}
}

// Slice exposes the underlying storage.
func (s Span[T]) Slice() []T { return s.items }

// All iterates elements front to back.
func (s Span[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Backward iterates elements back to front.
func (s Span[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(s.items) - 1; i >= 0; i-- {
			if !yield(i, s.items[i]) {
				return
			}
		}
	}
}

// Take moves the view out of s, leaving s empty (nil data, zero length),
// so the old and new view never silently alias the same storage.
func (s *Span[T]) Take() Span[T] {
	out := *s
	s.items = nil
	return out
}

// Equal reports element-wise equality of two views.
func Equal[T comparable](a, b Span[T]) bool {
	if len(a.items) != len(b.items) {
		return false
	}
	for i := range a.items {
		if a.items[i] != b.items[i] {
			return false
		}
	}
	return true
}
