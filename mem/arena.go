package mem

import (
	"unsafe"

	"github.com/memforge/memforge/internal/vmem"
)

// Arena is a bump allocator with no per-block bookkeeping. Allocation
// aligns the offset forward and advances it; individual blocks can never
// be freed, only the whole arena cleared or rolled back to a checkpoint.
//
// An arena created with NewArena borrows its buffer. NewOwnedArena
// reserves memory from the operating system and must be paired with
// Destroy.
type Arena struct {
	buf    []byte
	offset int
	owned  bool
}

// NewArena returns an Arena managing buf. The buffer is borrowed; dropping
// the arena is a no-op for the buffer.
func NewArena(buf []byte) *Arena {
	return &Arena{buf: buf}
}

// NewOwnedArena reserves capacity bytes of zeroed memory from the
// operating system and returns an arena owning them. Pair with Destroy.
func NewOwnedArena(capacity int) (*Arena, error) {
	buf, err := vmem.Reserve(capacity)
	if err != nil {
		logger.Error("owned arena reservation failed", "capacity", capacity, "error", err)
		return nil, err
	}
	return &Arena{buf: buf, owned: true}, nil
}

// Destroy releases the backing memory of an owned arena and leaves the
// arena empty. For a borrowing arena it only drops the buffer reference.
func (a *Arena) Destroy() error {
	var err error
	if a.owned {
		err = vmem.Release(a.buf)
	}
	a.buf = nil
	a.offset = 0
	a.owned = false
	return err
}

// Capacity returns the fixed capacity of the backing buffer in bytes.
func (a *Arena) Capacity() int { return len(a.buf) }

// Used returns the number of buffer bytes currently in use, alignment
// padding included.
func (a *Arena) Used() int { return a.offset }

// Remaining returns the number of free bytes left in the buffer.
func (a *Arena) Remaining() int { return len(a.buf) - a.offset }

func (a *Arena) base() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(a.buf)))
}

// AllocAlign allocates size bytes aligned to align. The returned Ref is
// the block's byte offset in the buffer (zero is a valid arena Ref; test
// the payload or error for failure). A size of zero is a no-op returning
// (NilRef, nil, nil). The payload is zero-filled.
func (a *Arena) AllocAlign(size, align int) (Ref, []byte, error) {
	Assert(size >= 0, "mem: negative allocation size")
	if size == 0 {
		return NilRef, nil, nil
	}
	if len(a.buf) == 0 {
		reportExhausted("arena", size, size, 0)
		return NilRef, nil, ErrOutOfMemory
	}

	base := a.base()
	start := int(AlignForward(base+uintptr(a.offset), uintptr(align)) - base)
	if start+size > len(a.buf) {
		reportExhausted("arena", size, (start-a.offset)+size, len(a.buf)-a.offset)
		return NilRef, nil, ErrOutOfMemory
	}

	a.offset = start + size

	payload := a.buf[start : start+size : start+size]
	clear(payload)
	return Ref(start), payload, nil
}

// ReallocAlign resizes the block at ref, whose current size the caller
// must supply since the arena keeps no headers. The last-allocated block
// is resized in place; any other block is copied into a fresh allocation
// and the old bytes become dead space until the arena is cleared.
func (a *Arena) ReallocAlign(ref Ref, oldSize, newSize, align int) (Ref, []byte, error) {
	if newSize == 0 {
		logger.Error("Realloc: arena blocks cannot be resized to zero bytes", "ref", int(ref))
		return NilRef, nil, ErrBadSize
	}
	if oldSize == 0 {
		return a.AllocAlign(newSize, align)
	}

	off := int(ref)
	if off < 0 || off >= len(a.buf) {
		logger.Error("Realloc: reference outside the managed region", "ref", off)
		return NilRef, nil, ErrBadRef
	}
	if off >= a.offset {
		logger.Error("Realloc: reference to a freed block", "ref", off)
		return NilRef, nil, ErrFreedRef
	}
	if oldSize > a.offset {
		logger.Error("Realloc: stated block size exceeds the bytes in use",
			"old_size", oldSize, "used", a.offset)
		return NilRef, nil, ErrBadSize
	}

	// The last-allocated block can be resized by bumping the offset.
	if off+oldSize == a.offset {
		if off+newSize > len(a.buf) {
			reportExhausted("arena", newSize, newSize, len(a.buf)-off)
			return NilRef, nil, ErrOutOfMemory
		}
		if newSize > oldSize {
			clear(a.buf[off+oldSize : off+newSize])
		}
		a.offset = off + newSize
		return ref, a.buf[off : off+newSize : off+newSize], nil
	}

	newRef, payload, err := a.AllocAlign(newSize, align)
	if err != nil {
		return NilRef, nil, err
	}
	copy(payload, a.buf[off:off+min(oldSize, newSize)])
	return newRef, payload, nil
}

// Clear resets the arena offset. Bytes are not wiped.
func (a *Arena) Clear() {
	a.offset = 0
}

// Checkpoint captures the current offset for a later manual Restore. A
// more flexible alternative to Scratch when rollback cannot be tied to a
// single scope.
type Checkpoint struct {
	arena       *Arena
	savedOffset int
}

// Checkpoint returns a restorable snapshot of the arena's offset.
func (a *Arena) Checkpoint() Checkpoint {
	return Checkpoint{arena: a, savedOffset: a.offset}
}

// Restore rolls the arena back to the checkpointed offset, collapsing all
// allocations made since. Restoring to an offset larger than the current
// one ("restoring forward") is a usage error and aborts.
func (c Checkpoint) Restore() {
	Assert(c.arena != nil, "mem: restore of a zero Checkpoint")
	Assert(c.savedOffset <= c.arena.offset,
		"mem: cannot restore an arena forward to a larger offset")
	c.arena.offset = c.savedOffset
}

// Scratch is a scope-bound arena checkpoint: take one at the top of a
// scope and defer Restore to roll back every allocation the scope made.
// Scratches nest in LIFO order across scopes.
type Scratch struct {
	arena       *Arena
	savedOffset int
}

// Scratch captures the current offset as a scratch region.
func (a *Arena) Scratch() Scratch {
	return Scratch{arena: a, savedOffset: a.offset}
}

// Arena returns the parent arena, for allocating within the scratch scope.
func (s Scratch) Arena() *Arena { return s.arena }

// SavedOffset returns the offset the parent arena will be restored to.
func (s Scratch) SavedOffset() int { return s.savedOffset }

// Restore rolls the parent arena back to the offset saved at creation.
func (s Scratch) Restore() {
	Assert(s.arena != nil, "mem: restore of a zero Scratch")
	Assert(s.savedOffset <= s.arena.offset,
		"mem: cannot restore an arena forward to a larger offset")
	s.arena.offset = s.savedOffset
}
