// Package arena provides an off-heap allocator for fixed-width integer buffers.
//
// Every allocation is backed by its own anonymous mapping, so the memory is
// zero-filled on arrival (calloc semantics) and never scanned by the garbage
// collector. Free releases every mapping at once.
//
// # Memory Accounting
//
// An optional MemoryAcquirer (usually a *resource.Controller) is charged
// before each mapping is created and credited when the arena is freed.
// A refused charge surfaces as ErrAllocationFailed and no mapping is made.
//
// # Concurrency Model
//
// Allocations and Free are serialized by a mutex. Slices handed out by the
// arena become invalid once Free returns.
package arena
