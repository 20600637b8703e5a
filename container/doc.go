// Package container provides growable and fixed-size collections backed by
// the memforge allocators instead of the Go heap.
//
// Every collection implements the Container interface (Data and Len),
// which generic helpers such as At and SizeBytes operate over. Collections
// consume the mem.Allocator contract and work the same over an Arena, a
// Stack or a Manager; their lifetime is bound to the allocator that backs
// them, so a collection must not outlive its allocator or a clear that
// retreats past its block.
//
// Fallible mutating operations return an error (usually surfacing
// mem.ErrOutOfMemory from the backing allocator); indexing out of bounds
// is a programming bug routed through the mem abort hook, not an error.
package container
