package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Element returns elemSize random bytes.
func (r *RNG) Element(elemSize int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, elemSize)
	_, _ = r.rand.Read(b)
	return b
}

// Elements returns num independent elements of elemSize random bytes each.
// Locks only once per call (preferred over calling Element in a loop).
func (r *RNG) Elements(num, elemSize int) [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]byte, num)
	for i := range out {
		out[i] = make([]byte, elemSize)
		_, _ = r.rand.Read(out[i])
	}
	return out
}

// Int32s returns n random int32 values.
func (r *RNG) Int32s(n int) []int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int32, n)
	for i := range out {
		out[i] = r.rand.Int31() - r.rand.Int31()
	}
	return out
}

// Float32s returns n random float32 values in [0, 1).
func (r *RNG) Float32s(n int) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float32, n)
	for i := range out {
		out[i] = r.rand.Float32()
	}
	return out
}

// Concat joins elements into one contiguous payload.
func Concat(elems [][]byte) []byte {
	size := 0
	for _, e := range elems {
		size += len(e)
	}
	out := make([]byte, 0, size)
	for _, e := range elems {
		out = append(out, e...)
	}
	return out
}
