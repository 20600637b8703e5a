package mem

import "errors"

var (
	// ErrOutOfMemory indicates the request exceeds the allocator's remaining
	// capacity. The allocator state is left untouched.
	ErrOutOfMemory = errors.New("mem: out of memory")

	// ErrEmpty indicates a pop on an empty allocator.
	ErrEmpty = errors.New("mem: allocator is empty")

	// ErrBadRef indicates a block reference outside the managed region.
	ErrBadRef = errors.New("mem: bad block reference")

	// ErrFreedRef indicates a block reference into the free region of the
	// buffer (use-after-free from the allocator's point of view).
	ErrFreedRef = errors.New("mem: reference to freed block")

	// ErrBadSize indicates an invalid size for the requested operation,
	// such as reallocating an arena block to zero bytes.
	ErrBadSize = errors.New("mem: invalid size")
)
