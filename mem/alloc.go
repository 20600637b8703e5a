package mem

import (
	"unsafe"

	"github.com/memforge/memforge/internal/size"
)

// Allocator is the contract shared by the Arena, the Stack and the
// Manager: byte-level allocation and reallocation with explicit alignment,
// both zero-filling newly acquired bytes. Containers and application code
// depend on this interface without knowing which concrete allocator backs
// it.
type Allocator interface {
	// AllocAlign allocates size bytes aligned to align. Zero size is a
	// no-op returning (NilRef, nil, nil); exhaustion returns
	// ErrOutOfMemory with no state mutation.
	AllocAlign(sizeBytes, align int) (Ref, []byte, error)

	// ReallocAlign resizes the block at ref from oldSize to newSize
	// bytes, in place when the allocator can manage it and by
	// allocate-and-copy otherwise.
	ReallocAlign(ref Ref, oldSize, newSize, align int) (Ref, []byte, error)
}

// Compile-time interface checks.
var (
	_ Allocator = (*Arena)(nil)
	_ Allocator = (*Stack)(nil)
	_ Allocator = (*Manager)(nil)
)

// Alloc allocates a zeroed slice of count elements of type T from a. A
// count of zero (or less) is a no-op returning (nil, NilRef, nil). The
// returned Ref identifies the block for Realloc and the clear operations.
//
// The slice points into the allocator's backing buffer: it is valid until
// the allocator frees or overwrites the block, and the caller must keep
// the allocator reachable while using it.
func Alloc[T any](a Allocator, count int) ([]T, Ref, error) {
	if count <= 0 {
		return nil, NilRef, nil
	}

	var zero T
	total, ok := size.MulOverflowSafe(count, int(unsafe.Sizeof(zero)))
	if !ok {
		logger.Error("allocation size overflow", "count", count, "elem_size", int(unsafe.Sizeof(zero)))
		return nil, NilRef, ErrOutOfMemory
	}

	ref, payload, err := a.AllocAlign(total, int(unsafe.Alignof(zero)))
	if err != nil || payload == nil {
		// A zero-sized T makes total zero and the allocation a no-op.
		return nil, ref, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(payload))), count), ref, nil
}

// Realloc resizes a typed block previously allocated from a. The first
// min(oldCount, newCount) elements are preserved; when the block moves,
// bytes beyond that in the new block are zero.
func Realloc[T any](a Allocator, ref Ref, oldCount, newCount int) ([]T, Ref, error) {
	if newCount < 0 {
		newCount = 0
	}
	if oldCount < 0 {
		oldCount = 0
	}

	var zero T
	elem := int(unsafe.Sizeof(zero))
	oldTotal, ok := size.MulOverflowSafe(oldCount, elem)
	if !ok {
		return nil, NilRef, ErrOutOfMemory
	}
	newTotal, ok := size.MulOverflowSafe(newCount, elem)
	if !ok {
		logger.Error("reallocation size overflow", "count", newCount, "elem_size", elem)
		return nil, NilRef, ErrOutOfMemory
	}

	newRef, payload, err := a.ReallocAlign(ref, oldTotal, newTotal, int(unsafe.Alignof(zero)))
	if err != nil || payload == nil {
		return nil, newRef, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(payload))), newCount), newRef, nil
}
