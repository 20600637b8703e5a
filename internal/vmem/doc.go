// Package vmem provides platform-specific reservation of zeroed memory for
// the owning allocator constructors.
package vmem
