// Package testutil provides testing utilities for arrgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source for generating element
// data, and helpers to build reference payloads.
//
// # Random Element Generation
//
//	rng := testutil.NewRNG(seed)
//	raw := rng.Elements(16, 8)    // 16 elements of 8 random bytes
//	ints := rng.Int32s(16)        // 16 random int32
//	vals := rng.Float32s(16)      // 16 random float32 in [0, 1)
//
// # Reference Payloads
//
//	want := testutil.Concat(raw[:3])
package testutil
