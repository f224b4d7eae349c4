// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Blocks handed to containers start on a 64-byte boundary so the header
// occupies exactly one cache line and the payload begins on the next.
//
// # System Memory
//
// TotalMemory reports physical memory (Linux, macOS, FreeBSD) so heap block
// limits can stay below what the runtime could never satisfy.
package mem
