package arrgo

// Releaser is implemented by every container handle.
type Releaser interface {
	Release()
}

// Release releases the container *h and sets *h to its zero value (nil for
// pointer handles). It is safe to call with a nil h, a nil *h, or twice.
//
//	arr := arrgo.NewArray(nil, 0, 8, 4).Must()
//	defer arrgo.Release(&arr)
func Release[H Releaser](h *H) {
	if h == nil {
		return
	}
	(*h).Release()
	var zero H
	*h = zero
}
