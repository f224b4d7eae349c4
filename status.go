package arrgo

import "fmt"

// Status classifies the outcome of an operation.
type Status uint8

const (
	// Success means the operation completed.
	Success Status = iota
	// NullAccess means a nil or released handle was used.
	NullAccess
	// CapacityExhausted means an append found the container full.
	CapacityExhausted
	// InvalidSize means a size argument was rejected: capacity below count,
	// element size below one byte, a short source, or an overflowing layout.
	InvalidSize
	// AllocationFailure means the allocator could not provide a block.
	AllocationFailure
	// InvalidIndex means an error-returning accessor got an index outside its bound.
	InvalidIndex
)

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case NullAccess:
		return "null access"
	case CapacityExhausted:
		return "capacity exhausted"
	case InvalidSize:
		return "invalid size"
	case AllocationFailure:
		return "allocation failure"
	case InvalidIndex:
		return "invalid index"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}
