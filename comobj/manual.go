package comobj

import "sync/atomic"

// manualOp is the hand-rolled component object: an intrusive atomic
// reference count plus a payload. The count starts at 1 for the creating
// reference and the object is destroyed exactly when a Release drives it
// to 0.
//
// Go's sync/atomic operations are sequentially consistent, which subsumes
// the relaxed-increment / release-decrement / acquire-fence ordering the
// protocol requires of a concurrent-safe component. Memory itself is the
// collector's to reclaim; destroy models the destructor so tests can
// observe the 1 -> 0 -> destroyed transition.
type manualOp struct {
	refs   atomic.Uint32
	result int32

	// onDestroy, when set, fires exactly once as the count reaches zero.
	onDestroy func()
}

// NewManualOp creates a live component object holding result, with a
// reference count of 1 owned by the caller.
func NewManualOp(result int32) Op {
	return newManualOp(result, nil)
}

func newManualOp(result int32, onDestroy func()) *manualOp {
	o := &manualOp{result: result, onDestroy: onDestroy}
	o.refs.Store(1)

	return o
}

//go:noinline
func (o *manualOp) AddRef() uint32 {
	return o.refs.Add(1)
}

//go:noinline
func (o *manualOp) Release() uint32 {
	n := o.refs.Add(^uint32(0))
	if n == 0 {
		o.destroy()
	}

	return n
}

//go:noinline
func (o *manualOp) GetStatus(status *int32) int32 {
	*status = StatusCompleted

	return StatusSuccess
}

func (o *manualOp) destroy() {
	o.result = 0

	if o.onDestroy != nil {
		o.onDestroy()
		o.onDestroy = nil
	}
}
