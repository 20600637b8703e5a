package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memforge/memforge/mem"
)

func TestString_CopiesIntoAllocator(t *testing.T) {
	a := newTestArena(t, 256)

	s, err := NewString(a, "hello, arena")
	require.NoError(t, err)
	assert.Equal(t, "hello, arena", s.String())
	assert.Equal(t, 12, s.Len())
	assert.Equal(t, 12, a.Used(), "the bytes must live in the arena")
}

func TestString_Empty(t *testing.T) {
	a := newTestArena(t, 64)

	s, err := NewString(a, "")
	require.NoError(t, err)
	assert.Equal(t, "", s.String())
	assert.Zero(t, s.Len())
	assert.Zero(t, a.Used(), "an empty string allocates nothing")
}

func TestString_RuneCount(t *testing.T) {
	a := newTestArena(t, 256)

	s, err := NewString(a, "héllo, wörld")
	require.NoError(t, err)
	assert.Equal(t, 14, s.Len(), "two of the runes take two bytes each")
	assert.Equal(t, 12, s.RuneCount())
}

func TestStringFromUTF16LE(t *testing.T) {
	a := newTestArena(t, 256)

	// "héllo" in UTF-16LE.
	raw := []byte{0x68, 0x00, 0xE9, 0x00, 0x6C, 0x00, 0x6C, 0x00, 0x6F, 0x00}
	s, err := StringFromUTF16LE(a, raw)
	require.NoError(t, err)
	assert.Equal(t, "héllo", s.String())
	assert.Equal(t, 5, s.RuneCount())
}

func TestStringFromUTF16LE_OddLength(t *testing.T) {
	a := newTestArena(t, 64)

	_, err := StringFromUTF16LE(a, []byte{0x68, 0x00, 0xE9})
	assert.ErrorContains(t, err, "odd length")
}

func TestStringFromWindows1252(t *testing.T) {
	a := newTestArena(t, 256)

	// "café €5": 0xE9 is é and 0x80 is the euro sign in Windows-1252.
	raw := []byte{'c', 'a', 'f', 0xE9, ' ', 0x80, '5'}
	s, err := StringFromWindows1252(a, raw)
	require.NoError(t, err)
	assert.Equal(t, "café €5", s.String())

	// Pure ASCII takes the fast path and survives byte-identical.
	ascii, err := StringFromWindows1252(a, []byte("plain"))
	require.NoError(t, err)
	assert.Equal(t, "plain", ascii.String())
}

func TestString_ExhaustionPropagates(t *testing.T) {
	a := newTestArena(t, 4)

	_, err := NewString(a, "does not fit")
	assert.ErrorIs(t, err, mem.ErrOutOfMemory)
}

func TestBuilder_Accumulates(t *testing.T) {
	a := newTestArena(t, 1024)

	b, err := NewBuilder(a, 8)
	require.NoError(t, err)

	require.NoError(t, b.WriteString("push"))
	require.NoError(t, b.WriteByte(' '))
	n, err := b.Write([]byte("bytes"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	assert.Equal(t, 10, b.Len())
	assert.Equal(t, "push bytes", b.String().String())
}

func TestBuilder_GrowsPastInitialCapacity(t *testing.T) {
	a := newTestArena(t, 1024)

	b, err := NewBuilder(a, 2)
	require.NoError(t, err)

	require.NoError(t, b.WriteString("a string much longer than two bytes"))
	assert.Equal(t, "a string much longer than two bytes", b.String().String())
}
