package mem

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vec3 struct {
	X, Y, Z float64
}

func TestAlloc_TypedSlices(t *testing.T) {
	s := newTestStack(t, 1024)

	vs, ref, err := Alloc[vec3](s, 4)
	require.NoError(t, err)
	require.Len(t, vs, 4)
	assert.NotEqual(t, NilRef, ref)
	for i, v := range vs {
		assert.Zero(t, v, "element %d must be zero-valued", i)
	}

	vs[2] = vec3{X: 1, Y: 2, Z: 3}
	assert.Equal(t, vec3{X: 1, Y: 2, Z: 3}, vs[2])

	hdr, err := s.HeaderOf(ref)
	require.NoError(t, err)
	assert.Equal(t, 4*24, hdr.Capacity, "block capacity must be count times element size")
}

func TestAlloc_ZeroCount(t *testing.T) {
	s := newTestStack(t, 128)

	vs, ref, err := Alloc[uint64](s, 0)
	require.NoError(t, err)
	assert.Nil(t, vs)
	assert.Equal(t, NilRef, ref)

	vs, ref, err = Alloc[uint64](s, -3)
	require.NoError(t, err)
	assert.Nil(t, vs)
	assert.Equal(t, NilRef, ref)
}

func TestAlloc_ZeroSizedElements(t *testing.T) {
	s := newTestStack(t, 128)

	// A zero-sized element type makes the byte request zero, which the
	// allocator treats as a no-op rather than a block.
	vs, ref, err := Alloc[struct{}](s, 3)
	require.NoError(t, err)
	assert.Nil(t, vs)
	assert.Equal(t, NilRef, ref)
	assert.Zero(t, s.Used())

	grown, newRef, err := Realloc[struct{}](s, ref, 3, 8)
	require.NoError(t, err)
	assert.Nil(t, grown)
	assert.Equal(t, NilRef, newRef)
}

func TestAlloc_CountOverflow(t *testing.T) {
	s := newTestStack(t, 128)

	_, _, err := Alloc[uint64](s, math.MaxInt/4)
	assert.ErrorIs(t, err, ErrOutOfMemory, "a size computation overflow reads as exhaustion")
	assert.Zero(t, s.Used())
}

func TestRealloc_PreservesPrefix(t *testing.T) {
	a := newTestArena(t, 1024)

	xs, ref, err := Alloc[uint32](a, 4)
	require.NoError(t, err)
	for i := range xs {
		xs[i] = uint32(i + 1)
	}

	// Force a move so the copy path is exercised.
	_, _, err = a.AllocAlign(8, 1)
	require.NoError(t, err)

	grown, newRef, err := Realloc[uint32](a, ref, 4, 8)
	require.NoError(t, err)
	assert.NotEqual(t, ref, newRef)
	require.Len(t, grown, 8)
	assert.Equal(t, []uint32{1, 2, 3, 4}, grown[:4])
	assert.Equal(t, []uint32{0, 0, 0, 0}, grown[4:], "new elements must be zero")
}

func TestRealloc_ShrinkKeepsPrefix(t *testing.T) {
	a := newTestArena(t, 256)

	xs, ref, err := Alloc[uint16](a, 8)
	require.NoError(t, err)
	for i := range xs {
		xs[i] = uint16(100 + i)
	}

	shrunk, newRef, err := Realloc[uint16](a, ref, 8, 3)
	require.NoError(t, err)
	assert.Equal(t, ref, newRef, "the last block shrinks in place")
	assert.Equal(t, []uint16{100, 101, 102}, shrunk)
}

func TestAllocator_InterfaceIsSatisfied(t *testing.T) {
	// The three concrete allocators must be usable interchangeably through
	// the interface.
	for name, alloc := range map[string]Allocator{
		"arena":   NewArena(newAlignedBuf(t, 256)),
		"stack":   NewStack(newAlignedBuf(t, 256)),
		"manager": NewManagerBuffer(newAlignedBuf(t, 256)),
	} {
		xs, _, err := Alloc[int64](alloc, 4)
		require.NoError(t, err, name)
		require.Len(t, xs, 4, name)
	}
}
