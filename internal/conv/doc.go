// Package conv provides checked integer conversions and arithmetic.
//
// Container headers are stored as fixed-width uint64 words while the public API
// speaks Go's int. Every crossing between the two goes through this package so
// a corrupt or hostile value surfaces as an error instead of a wrapped length.
//
// Use cases:
//   - Sizing a block (capacity * element size + header) without overflow
//   - Reading header words back into int lengths
//   - Narrowing block counters to the uint32 IDs used by the tracker
package conv
