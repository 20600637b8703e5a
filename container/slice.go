package container

import (
	"fmt"

	"github.com/memforge/memforge/mem"
)

// Slice is a fat pointer: a view over a run of elements with a count. It
// does not own its memory.
type Slice[T any] struct {
	buf []T
}

// NewSlice wraps buf as a Slice.
func NewSlice[T any](buf []T) Slice[T] {
	return Slice[T]{buf: buf}
}

// MakeSlice returns a view over count elements of c starting at start.
// A range outside the container is a programming bug and aborts.
func MakeSlice[T any](c Container[T], start, count int) Slice[T] {
	n := c.Len()
	mem.Assert(0 <= start && start+count <= n,
		fmt.Sprintf("container: slice [%d, %d) out of bounds for count %d", start, start+count, n))
	return Slice[T]{buf: c.Data()[start : start+count]}
}

// Data returns the underlying elements.
func (s Slice[T]) Data() []T { return s.buf }

// Len returns the element count.
func (s Slice[T]) Len() int { return len(s.buf) }

// UnorderedRemove removes the element at idx by swapping in the last
// element, shrinking the view by one. Order is not preserved.
func (s *Slice[T]) UnorderedRemove(idx int) {
	boundsCheck(idx, len(s.buf))
	unorderedRemove(s.buf, idx)
	s.buf = s.buf[:len(s.buf)-1]
}

// OrderedRemove removes the element at idx, shifting the elements above it
// down and shrinking the view by one.
func (s *Slice[T]) OrderedRemove(idx int) {
	boundsCheck(idx, len(s.buf))
	orderedRemove(s.buf, idx)
	s.buf = s.buf[:len(s.buf)-1]
}
