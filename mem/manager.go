package mem

import (
	"github.com/memforge/memforge/internal/vmem"
)

// Manager pairs one Stack allocator with a running allocation counter,
// intended as the single process-wide allocator root from which arenas and
// containers are carved.
//
// The counter is diagnostic only; it is adjusted on every successful
// allocation, pop and clear step but is not load-bearing for correctness.
type Manager struct {
	stack      Stack
	allocCount int
	owned      bool
}

// Stats is a snapshot of a Manager's bookkeeping.
type Stats struct {
	AllocationCount int // live blocks according to the counter
	InUse           int // bytes used, headers and padding included
	Capacity        int // fixed capacity of the backing buffer
}

// NewManager reserves capacity bytes of zeroed memory from the operating
// system and returns a Manager rooted in them. Pair with Destroy.
func NewManager(capacity int) (*Manager, error) {
	buf, err := vmem.Reserve(capacity)
	if err != nil {
		logger.Error("manager reservation failed", "capacity", capacity, "error", err)
		return nil, err
	}
	m := &Manager{owned: true}
	m.stack.Init(buf)
	return m, nil
}

// NewManagerBuffer returns a Manager over a caller-owned buffer.
func NewManagerBuffer(buf []byte) *Manager {
	m := &Manager{}
	m.stack.Init(buf)
	return m
}

// Destroy releases the backing memory. The manager must not be used
// afterwards.
func (m *Manager) Destroy() error {
	var err error
	if m.owned {
		err = vmem.Release(m.stack.buf)
	}
	m.stack.buf = nil
	m.stack.Clear()
	m.allocCount = 0
	m.owned = false
	return err
}

// Stats returns a snapshot of the manager's statistics.
func (m *Manager) Stats() Stats {
	return Stats{
		AllocationCount: m.allocCount,
		InUse:           m.stack.Used(),
		Capacity:        m.stack.Capacity(),
	}
}

// AllocationCount returns the number of live blocks according to the
// diagnostic counter.
func (m *Manager) AllocationCount() int { return m.allocCount }

// Used returns the number of buffer bytes currently in use.
func (m *Manager) Used() int { return m.stack.Used() }

// Capacity returns the fixed capacity of the backing buffer.
func (m *Manager) Capacity() int { return m.stack.Capacity() }

// Allocator exposes the underlying stack allocator.
func (m *Manager) Allocator() *Stack { return &m.stack }

// AllocAlign delegates to the stack and increments the allocation counter
// only on success. A zero-size no-op does not count.
func (m *Manager) AllocAlign(size, align int) (Ref, []byte, error) {
	ref, payload, err := m.stack.AllocAlign(size, align)
	if err == nil && payload != nil {
		m.allocCount++
	}
	return ref, payload, err
}

// ReallocAlign delegates to the stack. A moved block counts as a new
// allocation (the abandoned original stays counted until a clear reaches
// it); an in-place resize leaves the counter untouched. Resizing to zero
// is a ClearUntil so the counter stays consistent with the blocks freed.
func (m *Manager) ReallocAlign(ref Ref, oldSize, newSize, align int) (Ref, []byte, error) {
	if newSize == 0 && ref != NilRef {
		return NilRef, nil, m.ClearUntil(ref)
	}
	newRef, payload, err := m.stack.ReallocAlign(ref, oldSize, newSize, align)
	if err == nil && payload != nil && newRef != ref {
		m.allocCount++
	}
	return newRef, payload, err
}

// Pop frees the most recently allocated block, decrementing the counter
// only if the pop succeeded.
func (m *Manager) Pop() error {
	err := m.stack.Pop()
	if err == nil {
		m.allocCount--
	}
	return err
}

// ClearUntil pops blocks, decrementing the counter each time, until the
// block referenced by ref has been freed or the stack is empty.
//
// Caveat: if ref was not obtained from a prior allocation on this
// manager, no pop will ever match it and the
// entire stack is silently cleared. Prefer Clear when that is the intent.
func (m *Manager) ClearUntil(ref Ref) error {
	off := int(ref)
	if off < 0 || off > m.stack.prevOffset {
		if off > m.stack.Capacity() {
			logger.Error("ClearUntil: reference outside the managed region", "ref", off)
			return ErrBadRef
		}
		logger.Error("ClearUntil: reference to an already free region", "ref", off)
		return ErrFreedRef
	}

	for {
		top := m.stack.TopRef()
		if top == NilRef {
			break
		}
		if m.stack.Pop() == nil {
			m.allocCount--
		}
		if top == ref {
			break
		}
	}
	return nil
}

// Clear resets the counter and the stack offsets in O(1).
func (m *Manager) Clear() {
	m.allocCount = 0
	m.stack.Clear()
}

// MakeArena carves size bytes out of the manager's stack and wraps them in
// a borrowing Arena. The arena's lifetime must respect the stack's LIFO
// discipline: free it by popping or clearing back to its block.
func (m *Manager) MakeArena(size int) (*Arena, Ref, error) {
	ref, buf, err := m.AllocAlign(size, headerAlign)
	if err != nil {
		return nil, NilRef, err
	}
	return NewArena(buf), ref, nil
}
