package comobj

// Native is the control subject: no reference count, no erased type, the
// call site binds statically. Any overhead the other subjects show beyond
// this one is the cost of their dispatch and lifetime machinery.
type Native struct{}

//go:noinline
func (Native) GetStatus(status *int32) int32 {
	*status = StatusCompleted

	return StatusSuccess
}

// ReadyValue is the plain single-allocation subject: a bare struct created
// with new-and-escape, no count, no table.
type ReadyValue struct {
	Value int32
}
