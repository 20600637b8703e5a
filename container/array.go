package container

import (
	"fmt"

	"github.com/memforge/memforge/mem"
)

// Array is a run-time fixed-length array carved from an allocator. Its
// length is set at construction and never changes.
type Array[T any] struct {
	buf []T
}

// NewArray allocates a zeroed array of count elements from a.
func NewArray[T any](a mem.Allocator, count int) (Array[T], error) {
	buf, _, err := mem.Alloc[T](a, count)
	if err != nil {
		return Array[T]{}, err
	}
	return Array[T]{buf: buf}, nil
}

// Data returns the array elements.
func (a Array[T]) Data() []T { return a.buf }

// Len returns the fixed element count.
func (a Array[T]) Len() int { return len(a.buf) }

// PushArray is a growable array with a fixed maximum capacity allocated up
// front. Exceeding the capacity is a programming bug, not a recoverable
// error; size the array for its worst case.
type PushArray[T any] struct {
	buf   []T
	count int
}

// NewPushArray allocates room for maxCount elements from a and returns an
// empty PushArray over them.
func NewPushArray[T any](a mem.Allocator, maxCount int) (PushArray[T], error) {
	buf, _, err := mem.Alloc[T](a, maxCount)
	if err != nil {
		return PushArray[T]{}, err
	}
	return PushArray[T]{buf: buf}, nil
}

// Data returns the live elements.
func (p *PushArray[T]) Data() []T { return p.buf[:p.count] }

// Len returns the number of live elements.
func (p *PushArray[T]) Len() int { return p.count }

// MaxCount returns the fixed capacity.
func (p *PushArray[T]) MaxCount() int { return len(p.buf) }

// Push appends one element. Pushing into a full array aborts.
func (p *PushArray[T]) Push(v T) {
	mem.Assert(p.count < len(p.buf),
		fmt.Sprintf("container: push into full array of max count %d", len(p.buf)))
	p.buf[p.count] = v
	p.count++
}

// PushMany appends all elements of vs. Overflowing the capacity aborts.
func (p *PushArray[T]) PushMany(vs []T) {
	mem.Assert(p.count+len(vs) <= len(p.buf),
		fmt.Sprintf("container: %d elements do not fit in array of max count %d with count %d",
			len(vs), len(p.buf), p.count))
	copy(p.buf[p.count:], vs)
	p.count += len(vs)
}

// PushZero bumps the count by n and returns the index of the first new
// element. The new elements are explicitly zeroed, since earlier pops may
// have left stale values behind.
func (p *PushArray[T]) PushZero(n int) int {
	mem.Assert(p.count+n <= len(p.buf),
		fmt.Sprintf("container: %d elements do not fit in array of max count %d with count %d",
			n, len(p.buf), p.count))
	idx := p.count
	clear(p.buf[idx : idx+n])
	p.count += n
	return idx
}

// Pop removes the n most recently pushed elements. Popping more than the
// current count aborts.
func (p *PushArray[T]) Pop(n int) {
	mem.Assert(n <= p.count,
		fmt.Sprintf("container: array has %d elements but tried to pop %d", p.count, n))
	p.count -= n
}

// Clear resets the count. Element values are not wiped.
func (p *PushArray[T]) Clear() {
	p.count = 0
}
