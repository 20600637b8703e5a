package mem

import (
	"testing"
	"unsafe"
)

// newAlignedBuf returns an n-byte buffer whose base address is 8-byte
// aligned, so padding arithmetic in tests is deterministic.
func newAlignedBuf(t *testing.T, n int) []byte {
	t.Helper()
	words := make([]uint64, (n+7)/8)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), n)
}

func newTestStack(t *testing.T, capacity int) *Stack {
	t.Helper()
	return NewStack(newAlignedBuf(t, capacity))
}

func newTestArena(t *testing.T, capacity int) *Arena {
	t.Helper()
	return NewArena(newAlignedBuf(t, capacity))
}
