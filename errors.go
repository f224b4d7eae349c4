package arrgo

import (
	"errors"
	"fmt"
)

var (
	// ErrNullAccess matches errors with status NullAccess.
	ErrNullAccess = errors.New("null access")
	// ErrCapacityExhausted matches errors with status CapacityExhausted.
	ErrCapacityExhausted = errors.New("capacity exhausted")
	// ErrInvalidSize matches errors with status InvalidSize.
	ErrInvalidSize = errors.New("invalid size")
	// ErrAllocationFailure matches errors with status AllocationFailure.
	ErrAllocationFailure = errors.New("allocation failure")
	// ErrInvalidIndex matches errors with status InvalidIndex.
	ErrInvalidIndex = errors.New("invalid index")
)

const (
	msgInvalidAccess   = "invalid access"
	msgReleased        = "cannot access a nil or released buffer"
	msgNegativeCount   = "count is negative"
	msgCapacityBelow   = "capacity is less than count"
	msgElemSize        = "element size cannot be less than one byte"
	msgShortSource     = "source holds fewer than count elements"
	msgLayoutOverflow  = "capacity times element size overflows"
	msgOutOfMemory     = "not enough memory"
	msgFull            = "no free slot left"
	msgShortValue      = "value is shorter than the element size"
	msgIndexOutOfRange = "index out of range"
)

// Error is the error type returned by every fallible operation.
//
// errors.Is matches an Error against the sentinel of its Status, so callers
// can write errors.Is(err, arrgo.ErrCapacityExhausted). The allocator error
// behind an AllocationFailure (if any) can be accessed via errors.Unwrap.
type Error struct {
	Status Status
	Msg    string
	cause  error
}

func newError(status Status, msg string) *Error {
	return &Error{Status: status, Msg: msg}
}

func wrapError(status Status, msg string, cause error) *Error {
	return &Error{Status: status, Msg: msg, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("arrgo: %s: %s: %v", e.Status, e.Msg, e.cause)
	}
	return fmt.Sprintf("arrgo: %s: %s", e.Status, e.Msg)
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is the sentinel for e.Status.
func (e *Error) Is(target error) bool {
	s := sentinel(e.Status)
	return s != nil && target == s
}

func sentinel(s Status) error {
	switch s {
	case NullAccess:
		return ErrNullAccess
	case CapacityExhausted:
		return ErrCapacityExhausted
	case InvalidSize:
		return ErrInvalidSize
	case AllocationFailure:
		return ErrAllocationFailure
	case InvalidIndex:
		return ErrInvalidIndex
	default:
		return nil
	}
}

// StatusOf returns the status carried by err.
//
// A nil error is Success. Errors that did not originate in arrgo can only come
// from an allocator and map to AllocationFailure.
func StatusOf(err error) Status {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return AllocationFailure
}
