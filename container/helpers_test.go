package container

import (
	"testing"
	"unsafe"

	"github.com/memforge/memforge/mem"
)

// newTestArena returns an arena over an 8-aligned heap buffer so block
// offsets are deterministic across runs.
func newTestArena(t *testing.T, capacity int) *mem.Arena {
	t.Helper()
	words := make([]uint64, (capacity+7)/8)
	buf := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), capacity)
	return mem.NewArena(buf)
}

func newTestManager(t *testing.T, capacity int) *mem.Manager {
	t.Helper()
	words := make([]uint64, (capacity+7)/8)
	buf := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), capacity)
	return mem.NewManagerBuffer(buf)
}
