package mem

// isPowerOfTwo reports whether n is a non-zero power of two.
func isPowerOfTwo(n uintptr) bool {
	return n != 0 && n&(n-1) == 0
}

// AlignForward returns the smallest address greater than or equal to addr
// that is a multiple of alignment. The alignment must be a power of two;
// violating that is a programming bug and goes through the abort hook.
func AlignForward(addr, alignment uintptr) uintptr {
	Assert(isPowerOfTwo(alignment), "mem: alignment must be a power of two")

	// addr % alignment, valid because alignment is a power of two.
	mod := addr & (alignment - 1)
	if mod != 0 {
		addr += alignment - mod
	}
	return addr
}

// PaddingWithHeader returns the total number of bytes to advance from addr
// so that the payload starts aligned to alignment and the header
// immediately preceding it is aligned to headerAlign with room for
// headerSize bytes. The result is always at least headerSize.
//
// The payload alignment is satisfied first and the header alignment second,
// because the header sits between two quantities with independent
// alignment requirements.
func PaddingWithHeader(addr, alignment, headerSize, headerAlign uintptr) int {
	Assert(isPowerOfTwo(alignment) && isPowerOfTwo(headerAlign),
		"mem: alignments must be powers of two")

	var padding uintptr
	if mod := addr & (alignment - 1); mod != 0 {
		padding = alignment - mod
	}
	addr += padding

	if mod := addr & (headerAlign - 1); mod != 0 {
		padding += headerAlign - mod
	}

	// The padding must have room for the header itself.
	padding += headerSize

	return int(padding)
}
