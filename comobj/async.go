package comobj

import "sync/atomic"

// completedOp is an asynchronous operation that finished before the caller
// ever saw it: construction produces an already-completed result holder.
// There is no suspension and no pending state to observe; "async" here
// prices the allocation-and-handshake pattern, not concurrency.
type completedOp struct {
	refs   atomic.Uint32
	result int32

	onDestroy func()
}

func newCompletedOp(result int32, onDestroy func()) *completedOp {
	o := &completedOp{result: result, onDestroy: onDestroy}
	o.refs.Store(1)

	return o
}

//go:noinline
func (o *completedOp) AddRef() uint32 {
	return o.refs.Add(1)
}

//go:noinline
func (o *completedOp) Release() uint32 {
	n := o.refs.Add(^uint32(0))
	if n == 0 {
		o.result = 0

		if o.onDestroy != nil {
			o.onDestroy()
			o.onDestroy = nil
		}
	}

	return n
}

//go:noinline
func (o *completedOp) GetStatus(status *int32) int32 {
	*status = StatusCompleted

	return StatusSuccess
}

//go:noinline
func (o *completedOp) GetResult(result *int32) int32 {
	*result = o.result

	return StatusSuccess
}

// provider manufactures eagerly-completed operations carrying a fixed
// result. It follows the same count protocol as its operations.
type provider struct {
	refs   atomic.Uint32
	result int32
}

// NewProvider creates a provider whose operations complete at construction
// with the given result. Count starts at 1, owned by the caller.
func NewProvider(result int32) Provider {
	p := &provider{result: result}
	p.refs.Store(1)

	return p
}

//go:noinline
func (p *provider) AddRef() uint32 {
	return p.refs.Add(1)
}

//go:noinline
func (p *provider) Release() uint32 {
	return p.refs.Add(^uint32(0))
}

//go:noinline
func (p *provider) GetStatusAsync() AsyncOp {
	return newCompletedOp(p.result, nil)
}
