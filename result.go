package arrgo

// Result carries either a value or an *Error, never both.
//
// Every constructor returns a Result. The zero Result is a NullAccess failure,
// so an uninitialized Result can never be mistaken for a success.
type Result[T any] struct {
	value T
	err   *Error
	ok    bool
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Fail returns a failed Result holding err.
// A nil err is treated as NullAccess.
func Fail[T any](err *Error) Result[T] {
	if err == nil {
		err = newError(NullAccess, msgInvalidAccess)
	}
	return Result[T]{err: err}
}

func resultOf[T any](v T, err *Error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}

// OK reports whether r holds a value.
func (r Result[T]) OK() bool {
	return r.ok
}

// Status returns Success or the status of the failure.
func (r Result[T]) Status() Status {
	if r.ok {
		return Success
	}
	if r.err == nil {
		return NullAccess
	}
	return r.err.Status
}

// Err returns the failure, or nil on success.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	if r.err == nil {
		return newError(NullAccess, msgInvalidAccess)
	}
	return r.err
}

// Unwrap returns the value and a nil error on success, or the zero value and
// the failure otherwise.
func (r Result[T]) Unwrap() (T, error) {
	if !r.ok {
		var zero T
		return zero, r.Err()
	}
	return r.value, nil
}

// Into stores the outcome of r in *dst and returns the failure, if any.
//
// On failure *dst is set to the zero value (a nil handle for pointer types).
// A nil r or dst yields a NullAccess error and nothing is written.
func (r *Result[T]) Into(dst *T) error {
	if r == nil || dst == nil {
		return newError(NullAccess, msgInvalidAccess)
	}
	v, err := r.Unwrap()
	*dst = v
	return err
}

// Must returns the value or panics with the failure.
// Intended for tests and examples.
func (r Result[T]) Must() T {
	v, err := r.Unwrap()
	if err != nil {
		panic(err)
	}
	return v
}
