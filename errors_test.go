package arrgo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/arrgo/alloc"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{Success, "success"},
		{NullAccess, "null access"},
		{CapacityExhausted, "capacity exhausted"},
		{InvalidSize, "invalid size"},
		{AllocationFailure, "allocation failure"},
		{InvalidIndex, "invalid index"},
		{Status(42), "status(42)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.String())
	}
}

func TestError_Is(t *testing.T) {
	err := newError(CapacityExhausted, msgFull)

	assert.ErrorIs(t, err, ErrCapacityExhausted)
	assert.NotErrorIs(t, err, ErrInvalidSize)
	assert.Equal(t, "arrgo: capacity exhausted: no free slot left", err.Error())

	// Matching survives wrapping.
	wrapped := fmt.Errorf("append: %w", err)
	assert.ErrorIs(t, wrapped, ErrCapacityExhausted)
	assert.Equal(t, CapacityExhausted, StatusOf(wrapped))
}

func TestError_Unwrap(t *testing.T) {
	err := wrapError(AllocationFailure, msgOutOfMemory, alloc.ErrOutOfMemory)

	assert.ErrorIs(t, err, ErrAllocationFailure)
	assert.ErrorIs(t, err, alloc.ErrOutOfMemory)
	assert.Contains(t, err.Error(), alloc.ErrOutOfMemory.Error())
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, Success, StatusOf(nil))
	assert.Equal(t, InvalidIndex, StatusOf(newError(InvalidIndex, msgIndexOutOfRange)))
	assert.Equal(t, AllocationFailure, StatusOf(errors.New("mmap failed")))
}

func TestSentinel_Success(t *testing.T) {
	// A Success-status error matches no sentinel.
	err := &Error{Status: Success}
	for _, target := range []error{ErrNullAccess, ErrCapacityExhausted, ErrInvalidSize, ErrAllocationFailure, ErrInvalidIndex} {
		assert.NotErrorIs(t, err, target)
	}
}
