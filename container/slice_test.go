package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlice_View(t *testing.T) {
	a := newTestArena(t, 256)

	arr, err := NewArray[int32](a, 6)
	require.NoError(t, err)
	for i := range arr.Data() {
		arr.Data()[i] = int32(i * 10)
	}

	s := MakeSlice[int32](arr, 2, 3)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int32{20, 30, 40}, s.Data())

	// The slice aliases the array, it does not copy.
	SetAt[int32](s, 0, 99)
	assert.Equal(t, int32(99), At[int32](arr, 2))
}

func TestSlice_BadRangeAborts(t *testing.T) {
	a := newTestArena(t, 256)

	arr, err := NewArray[int32](a, 4)
	require.NoError(t, err)

	require.Panics(t, func() { MakeSlice[int32](arr, 2, 5) })
	require.Panics(t, func() { MakeSlice[int32](arr, -1, 2) })
}

func TestSlice_Removals(t *testing.T) {
	s := NewSlice([]int32{1, 2, 3, 4, 5})

	s.OrderedRemove(0)
	assert.Equal(t, []int32{2, 3, 4, 5}, s.Data())

	s.UnorderedRemove(1)
	assert.Equal(t, []int32{2, 5, 4}, s.Data())

	require.Panics(t, func() { s.OrderedRemove(10) })
}
