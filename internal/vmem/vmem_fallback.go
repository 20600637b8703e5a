//go:build !unix && !windows

package vmem

import "fmt"

// Reserve falls back to the Go heap when no virtual-memory syscall is
// available.
func Reserve(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("vmem: negative reservation size %d", n)
	}
	return make([]byte, n), nil
}

// Release is a no-op; the garbage collector reclaims the buffer.
func Release(buf []byte) error {
	return nil
}
