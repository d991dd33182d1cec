// Package mmap provides anonymous memory mappings for off-heap buffers.
//
// # Usage
//
//	m, err := mmap.MapAnon(64000 * 4)
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes() // zero-filled, read-write
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT
//
// Both back ends hand out zero-filled pages, which is what gives the arena its
// calloc-like guarantee without an explicit clear.
//
// # Thread Safety
//
// Close is idempotent and protected by an atomic flag. Callers must ensure no
// goroutine touches Bytes() after Close returns.
package mmap
