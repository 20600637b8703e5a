package mem

import (
	"encoding/binary"
	"unsafe"
)

// Ref is a flat byte offset of a block's payload within an allocator's
// backing buffer. Refs are stable under buffer relocation and are the only
// block identity the allocators hand out besides the payload slice itself.
type Ref int

// NilRef is the zero Ref. For the Stack it never names a valid block,
// because every payload is preceded by a header.
const NilRef Ref = 0

const (
	// HeaderSize is the size in bytes of the serialized block header.
	// It is a multiple of every supported payload alignment, which the
	// padding computation relies on.
	HeaderSize = 24

	headerAlign = 8
)

// Header describes one stack block. It lives in the HeaderSize bytes
// immediately preceding the block's payload, serialized little-endian.
type Header struct {
	// Padding is the total distance in bytes from the end of the free
	// space preceding this block to the payload start. It includes the
	// header itself, so Padding >= HeaderSize always holds.
	Padding int

	// Capacity is the payload size in bytes.
	Capacity int

	// PreviousOffset is the payload offset of the block allocated before
	// this one, forming a backward chain through the stack. Zero for the
	// first block.
	PreviousOffset int
}

// Stack is a linear allocator over a caller-owned buffer. Each block gets
// a Header prepended inside the buffer, enabling O(1) Pop and top
// inspection and arbitrary clear-back-to-a-block operations.
//
// The Stack does not own its buffer and never allocates from the Go heap.
// See the package documentation for the memory layout and the LIFO
// discipline the caller must respect.
type Stack struct {
	buf []byte

	// offset is the byte distance from the buffer start to the next free
	// byte. Monotonically non-decreasing except on Pop, ClearAt and Clear.
	offset int

	// prevOffset is the payload offset of the most recently allocated
	// live block. Zero when the stack is empty.
	//
	// Invariant: 0 <= prevOffset <= offset <= len(buf).
	prevOffset int
}

// NewStack returns a Stack managing buf. The buffer is borrowed; the
// caller remains responsible for its lifetime.
func NewStack(buf []byte) *Stack {
	s := &Stack{}
	s.Init(buf)
	return s
}

// Init sets the backing buffer and zeroes the offsets. Re-initializing a
// stack that already has a buffer is a programming bug.
func (s *Stack) Init(buf []byte) {
	Assert(s.buf == nil, "mem: Stack already initialized")
	s.buf = buf
	s.offset = 0
	s.prevOffset = 0
}

// Capacity returns the fixed capacity of the backing buffer in bytes.
func (s *Stack) Capacity() int { return len(s.buf) }

// Used returns the number of buffer bytes currently in use, padding and
// headers included.
func (s *Stack) Used() int { return s.offset }

// Remaining returns the number of free bytes left in the buffer.
func (s *Stack) Remaining() int { return len(s.buf) - s.offset }

func (s *Stack) base() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(s.buf)))
}

func (s *Stack) readHeader(payloadOff int) Header {
	h := s.buf[payloadOff-HeaderSize : payloadOff]
	return Header{
		Padding:        int(binary.LittleEndian.Uint64(h[0:])),
		Capacity:       int(binary.LittleEndian.Uint64(h[8:])),
		PreviousOffset: int(binary.LittleEndian.Uint64(h[16:])),
	}
}

func (s *Stack) writeHeader(payloadOff int, hdr Header) {
	h := s.buf[payloadOff-HeaderSize : payloadOff]
	binary.LittleEndian.PutUint64(h[0:], uint64(hdr.Padding))
	binary.LittleEndian.PutUint64(h[8:], uint64(hdr.Capacity))
	binary.LittleEndian.PutUint64(h[16:], uint64(hdr.PreviousOffset))
}

// AllocAlign allocates size bytes with the given payload alignment.
// Alignments up to 8 are guaranteed; above that the payload can land
// merely 8-aligned, because it sits a fixed HeaderSize bytes past a
// header-aligned address.
//
// A size of zero is an explicit no-op: it returns (NilRef, nil, nil). On
// exhaustion the shortfall is logged and ErrOutOfMemory returned with no
// state mutation. The returned payload is always zero-filled.
func (s *Stack) AllocAlign(size, align int) (Ref, []byte, error) {
	Assert(size >= 0, "mem: negative allocation size")
	if size == 0 {
		return NilRef, nil, nil
	}
	if len(s.buf) == 0 {
		reportExhausted("stack", size, size, 0)
		return NilRef, nil, ErrOutOfMemory
	}

	freeAddr := s.base() + uintptr(s.offset)
	padding := PaddingWithHeader(freeAddr, uintptr(align), HeaderSize, headerAlign)

	required := padding + size
	if required > len(s.buf)-s.offset {
		reportExhausted("stack", size, required, len(s.buf)-s.offset)
		return NilRef, nil, ErrOutOfMemory
	}

	payloadOff := s.offset + padding
	s.writeHeader(payloadOff, Header{
		Padding:        padding,
		Capacity:       size,
		PreviousOffset: s.prevOffset,
	})

	s.prevOffset = payloadOff
	s.offset = payloadOff + size

	payload := s.buf[payloadOff : payloadOff+size : payloadOff+size]
	clear(payload)
	return Ref(payloadOff), payload, nil
}

// Top returns the payload of the most recent live block, or nil when the
// stack is empty.
func (s *Stack) Top() []byte {
	if s.prevOffset == 0 {
		return nil
	}
	hdr := s.readHeader(s.prevOffset)
	return s.buf[s.prevOffset : s.prevOffset+hdr.Capacity]
}

// TopRef returns the Ref of the most recent live block, or NilRef when the
// stack is empty.
func (s *Stack) TopRef() Ref { return Ref(s.prevOffset) }

// TopHeader returns the header of the most recent live block. The second
// result is false when the stack is empty.
func (s *Stack) TopHeader() (Header, bool) {
	if s.prevOffset == 0 {
		return Header{}, false
	}
	return s.readHeader(s.prevOffset), true
}

// HeaderOf recovers the header for an arbitrary live block.
//
// This is a best-effort defense against stale references: a ref outside
// the buffer yields ErrBadRef and one inside the free region ErrFreedRef,
// but a garbage ref that happens to land inside the live region cannot be
// told apart from a real one.
func (s *Stack) HeaderOf(ref Ref) (Header, error) {
	off := int(ref)
	switch {
	case off < HeaderSize || off > len(s.buf):
		logger.Error("HeaderOf: reference outside the managed region", "ref", off)
		return Header{}, ErrBadRef
	case off > s.prevOffset:
		logger.Error("HeaderOf: reference to a freed block", "ref", off)
		return Header{}, ErrFreedRef
	}
	return s.readHeader(off), nil
}

// RefOf recovers the Ref for a payload slice previously returned by this
// stack, validating that the slice points into the backing buffer.
func (s *Stack) RefOf(block []byte) (Ref, error) {
	if block == nil || len(s.buf) == 0 {
		return NilRef, ErrBadRef
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(block)))
	base := s.base()
	if addr < base || addr > base+uintptr(len(s.buf)) {
		return NilRef, ErrBadRef
	}
	return Ref(addr - base), nil
}

// Pop frees exactly the most recently allocated block in O(1). It returns
// ErrEmpty when the stack is empty.
//
// Pop assumes strict LIFO discipline: popping when the top block is not
// the logical end of the caller's lifetimes silently frees the wrong data.
func (s *Stack) Pop() error {
	if s.prevOffset == 0 {
		return ErrEmpty
	}
	hdr := s.readHeader(s.prevOffset)
	s.offset = s.prevOffset - hdr.Padding
	s.prevOffset = hdr.PreviousOffset
	return nil
}

// ClearAt rewinds the stack so that all blocks from the one referenced by
// ref upward are freed, in O(1) via the block's header.
//
// Caveat: if ref does not correspond to a real payload start, the bytes
// read as its header are garbage and the
// resulting offsets are meaningless. There is no detection of this case;
// callers must only pass refs obtained from a prior allocation on this
// same stack.
func (s *Stack) ClearAt(ref Ref) error {
	off := int(ref)
	if off == 0 {
		return ErrBadRef
	}
	if off < HeaderSize || off > s.prevOffset {
		if off > len(s.buf) {
			logger.Error("ClearAt: reference outside the managed region", "ref", off)
			return ErrBadRef
		}
		logger.Error("ClearAt: reference to an already free region", "ref", off)
		return ErrFreedRef
	}

	hdr := s.readHeader(off)
	s.offset = off - hdr.Padding
	s.prevOffset = hdr.PreviousOffset
	return nil
}

// ReallocAlign resizes the block referenced by ref to newSize bytes.
//
// When ref is the current top block the resize happens in place: the
// payload address never changes, shrinking or growing, as long as capacity
// allows. Any other block cannot be extended in place, so a new block is
// allocated and min(old, new) bytes copied; the old block becomes
// unreachable garbage until a later Pop or ClearAt retreats past it.
//
// The stack tracks block sizes in headers, so oldSize is ignored; it is
// part of the signature for uniformity with the Arena. A newSize of zero
// clears the stack back to ref.
func (s *Stack) ReallocAlign(ref Ref, oldSize, newSize, align int) (Ref, []byte, error) {
	_ = oldSize
	if ref == NilRef {
		return s.AllocAlign(newSize, align)
	}
	if newSize == 0 {
		return NilRef, nil, s.ClearAt(ref)
	}

	off := int(ref)

	// In-place path for the top block.
	if off == s.prevOffset {
		if off+newSize > len(s.buf) {
			reportExhausted("stack", newSize, newSize, len(s.buf)-off)
			return NilRef, nil, ErrOutOfMemory
		}
		hdr := s.readHeader(off)
		if newSize > hdr.Capacity {
			clear(s.buf[off+hdr.Capacity : off+newSize])
		}
		hdr.Capacity = newSize
		s.writeHeader(off, hdr)
		s.offset = off + newSize
		return ref, s.buf[off : off+newSize : off+newSize], nil
	}

	if off < HeaderSize || off >= len(s.buf) {
		logger.Error("Realloc: reference outside the managed region", "ref", off)
		return NilRef, nil, ErrBadRef
	}
	if off >= s.offset {
		logger.Error("Realloc: reference to a freed block", "ref", off)
		return NilRef, nil, ErrFreedRef
	}

	hdr := s.readHeader(off)

	newRef, payload, err := s.AllocAlign(newSize, align)
	if err != nil {
		return NilRef, nil, err
	}
	copy(payload, s.buf[off:off+min(hdr.Capacity, newSize)])
	return newRef, payload, nil
}

// Clear resets the bookkeeping in O(1). The buffer contents are not wiped;
// stale bytes remain until overwritten by later allocations.
func (s *Stack) Clear() {
	s.offset = 0
	s.prevOffset = 0
}
