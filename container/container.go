package container

import (
	"fmt"
	"unsafe"

	"github.com/memforge/memforge/mem"
)

// Container is the structural contract shared by every collection in this
// package: a backing slice and an element count. Generic algorithms
// operate over this interface instead of concrete types.
type Container[T any] interface {
	// Data returns the live elements as a slice into the backing buffer.
	Data() []T

	// Len returns the number of live elements.
	Len() int
}

// At returns the element at idx. Indexing out of bounds is a programming
// bug and aborts.
func At[T any](c Container[T], idx int) T {
	boundsCheck(idx, c.Len())
	return c.Data()[idx]
}

// SetAt stores v at idx. Indexing out of bounds is a programming bug and
// aborts.
func SetAt[T any](c Container[T], idx int, v T) {
	boundsCheck(idx, c.Len())
	c.Data()[idx] = v
}

// IsEmpty reports whether c holds no elements.
func IsEmpty[T any](c Container[T]) bool {
	return c.Len() == 0
}

// SizeBytes returns the total size in bytes of the live elements.
func SizeBytes[T any](c Container[T]) int {
	var zero T
	return c.Len() * int(unsafe.Sizeof(zero))
}

func boundsCheck(idx, count int) {
	mem.Assert(0 <= idx && idx < count,
		fmt.Sprintf("container: index %d out of bounds for count %d", idx, count))
}

// unorderedRemove removes buf[idx] by moving the last element into its
// place. Order is not preserved.
func unorderedRemove[T any](buf []T, idx int) {
	buf[idx] = buf[len(buf)-1]
}

// orderedRemove removes buf[idx] by shifting everything above it down one.
func orderedRemove[T any](buf []T, idx int) {
	copy(buf[idx:], buf[idx+1:])
}
