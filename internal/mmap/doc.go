// Package mmap provides anonymous memory mappings for off-heap storage.
//
// # Overview
//
// An anonymous mapping is a private, zero-filled, read-write region obtained
// directly from the operating system. Memory inside it is invisible to the Go
// garbage collector, so it must only ever hold pointer-free data.
//
// # Usage
//
//	m, err := mmap.MapAnon(1 << 20)
//	if err != nil { ... }
//	defer m.Close()
//
//	buf := m.Bytes()
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT
//
// # Thread Safety
//
// Close is idempotent and protected by atomic operations. Callers must ensure
// nothing touches Bytes() after Close returns.
package mmap
