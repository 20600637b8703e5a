// Package mem implements the allocators at the heart of the memforge
// toolkit: a stack allocator with per-block headers, a bump-pointer arena,
// and a Manager facade that pairs a stack allocator with allocation
// statistics.
//
// # Overview
//
// All allocators hand out memory carved from a single fixed-capacity byte
// buffer. The buffer is either borrowed from the caller or reserved from
// the operating system in one upfront call (owning constructors); capacity
// never changes for the lifetime of an allocator.
//
// Blocks are identified by a Ref, a flat byte offset of the block's payload
// within the backing buffer. Refs stay valid across process address-space
// changes and make the allocator state trivially serializable and
// debuggable, unlike raw pointers.
//
// # Stack allocator
//
// The Stack prepends a small header to every block:
//
//	          previousOffset                        |-capacity--|
//	               ^                                ^           ^
//	               |                                |           |
//	|prev header|prev payload|++++++++|header|  payload  | free space |
//	                         ^               ^
//	                         |----padding----|
//
// The header records the padding in front of the payload, the payload size,
// and the payload offset of the block allocated before it. Headers thereby
// form an implicit backward chain through the stack, giving O(1) Pop and
// top inspection, and O(depth) ClearAt from the Manager side.
//
// Strict LIFO discipline is the caller's responsibility. Popping when the
// top block is not the logical end of the caller's lifetimes silently frees
// the wrong data, and passing a Ref that never matches a real payload start
// to ClearAt or Manager.ClearUntil clears the entire stack without any
// error. These hazards are inherited from the design and documented rather
// than detected.
//
// # Arena allocator
//
// The Arena has no per-block bookkeeping at all: allocation aligns the
// current offset forward and advances it. The only ways to reclaim memory
// are Clear, which resets the whole arena, and checkpoints or scratch
// arenas, which roll the offset back to an earlier value in LIFO order.
//
// # Zero fill
//
// Every successful allocation returns zeroed memory, including the grown
// region of an in-place reallocation. This trades a little speed for
// eliminating uninitialized-read bugs caused by stale bytes left behind by
// Pop and Clear, which only rewind offsets and never wipe the buffer.
//
// # Failure model
//
// Resource exhaustion is recoverable: allocation logs the shortfall and
// returns ErrOutOfMemory with no state mutation, unless
// SetFatalOnExhaustion flipped exhaustion to fatal. Invalid Refs passed to
// free-like operations are likewise recoverable (ErrBadRef, ErrFreedRef).
// Programmer-contract violations - a non-power-of-two alignment, restoring
// a checkpoint forward, indexing a container out of bounds - go through the
// process-wide abort hook (SetAbortFunc) and are never reported as errors.
//
// # Thread safety
//
// Allocators are single-threaded by design and contain no synchronization.
// A backing buffer must be owned by exactly one allocator; sharing one, or
// calling an allocator from multiple goroutines without external locking,
// is undefined behavior by contract.
package mem
