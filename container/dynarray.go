package container

import (
	"github.com/memforge/memforge/mem"
)

const (
	// DefaultCapacity is the initial capacity a DynArray grows to from
	// empty.
	DefaultCapacity = 4

	// GrowthFactor multiplies the capacity on each growth step.
	GrowthFactor = 2
)

// DynArray is a growable array bound to an allocator. Growth reallocates
// the backing block; when the block is not the allocator's most recent
// allocation, the abandoned copy stays dead in the buffer until the
// allocator is cleared, which is the usual tradeoff of linear allocators.
//
// Element addresses are invalidated by growth; do not store pointers into
// the array across mutating calls.
type DynArray[T any] struct {
	buf   []T
	ref   mem.Ref
	alloc mem.Allocator
	count int
}

// NewDynArray returns a DynArray over a with the given initial capacity.
// A capacity of zero defers allocation to the first push.
func NewDynArray[T any](a mem.Allocator, capacity int) (*DynArray[T], error) {
	d := &DynArray[T]{alloc: a}
	if capacity > 0 {
		buf, ref, err := mem.Alloc[T](a, capacity)
		if err != nil {
			return nil, err
		}
		d.buf = buf
		d.ref = ref
	}
	return d, nil
}

// Data returns the live elements.
func (d *DynArray[T]) Data() []T { return d.buf[:d.count] }

// Len returns the number of live elements.
func (d *DynArray[T]) Len() int { return d.count }

// Cap returns the current capacity.
func (d *DynArray[T]) Cap() int { return len(d.buf) }

// Ref returns the allocator reference of the backing block, NilRef before
// the first allocation.
func (d *DynArray[T]) Ref() mem.Ref { return d.ref }

// Reserve grows the capacity to at least newCapacity. The array never
// shrinks; a smaller capacity is a no-op.
func (d *DynArray[T]) Reserve(newCapacity int) error {
	if newCapacity <= len(d.buf) {
		return nil
	}

	var (
		buf []T
		ref mem.Ref
		err error
	)
	if len(d.buf) == 0 {
		buf, ref, err = mem.Alloc[T](d.alloc, newCapacity)
	} else {
		buf, ref, err = mem.Realloc[T](d.alloc, d.ref, len(d.buf), newCapacity)
	}
	if err != nil {
		return err
	}
	d.buf = buf
	d.ref = ref
	return nil
}

func (d *DynArray[T]) grow() error {
	newCapacity := DefaultCapacity
	if len(d.buf) != 0 {
		newCapacity = len(d.buf) * GrowthFactor
	}
	return d.Reserve(newCapacity)
}

// Push appends one element, growing the backing block as needed.
func (d *DynArray[T]) Push(v T) error {
	if d.count == len(d.buf) {
		if err := d.grow(); err != nil {
			return err
		}
	}
	d.buf[d.count] = v
	d.count++
	return nil
}

// PushMany appends all elements of vs.
func (d *DynArray[T]) PushMany(vs []T) error {
	if err := d.Reserve(d.count + len(vs)); err != nil {
		return err
	}
	copy(d.buf[d.count:], vs)
	d.count += len(vs)
	return nil
}

// Pop removes the last element. Returns mem.ErrEmpty when the array is
// empty.
func (d *DynArray[T]) Pop() error {
	if d.count == 0 {
		return mem.ErrEmpty
	}
	d.count--
	return nil
}

// UnorderedRemove removes the element at idx by swapping in the last
// element. Order is not preserved. Out-of-bounds aborts.
func (d *DynArray[T]) UnorderedRemove(idx int) {
	boundsCheck(idx, d.count)
	unorderedRemove(d.buf[:d.count], idx)
	d.count--
}

// OrderedRemove removes the element at idx, shifting the elements above it
// down one. Out-of-bounds aborts.
func (d *DynArray[T]) OrderedRemove(idx int) {
	boundsCheck(idx, d.count)
	orderedRemove(d.buf[:d.count], idx)
	d.count--
}

// Clear resets the count, keeping the capacity.
func (d *DynArray[T]) Clear() {
	d.count = 0
}
