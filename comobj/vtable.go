package comobj

import "sync/atomic"

// OpVtbl is the explicit form of the dispatch table the Op interface
// provides implicitly: an ordered struct of function fields over an opaque
// carrier. Callers reach methods as obj.Vtbl.GetStatus(obj, &status),
// mirroring a binary-stable lpVtbl call. Field order is the ABI and must
// not change.
type OpVtbl struct {
	AddRef    func(*RawOp) uint32
	Release   func(*RawOp) uint32
	GetStatus func(*RawOp, *int32) int32
}

// RawOp is a component object whose operations are reached through its
// Vtbl field rather than an interface. Same reference-count protocol as
// the interface-dispatched object.
type RawOp struct {
	Vtbl   *OpVtbl
	refs   atomic.Uint32
	result int32
}

// rawOpVtbl is shared by every RawOp: one table per "class", many objects.
var rawOpVtbl = &OpVtbl{
	AddRef:    rawAddRef,
	Release:   rawRelease,
	GetStatus: rawGetStatus,
}

// NewRawOp creates a live table-dispatched object with a reference count
// of 1 owned by the caller.
func NewRawOp(result int32) *RawOp {
	o := &RawOp{Vtbl: rawOpVtbl, result: result}
	o.refs.Store(1)

	return o
}

//go:noinline
func rawAddRef(o *RawOp) uint32 {
	return o.refs.Add(1)
}

//go:noinline
func rawRelease(o *RawOp) uint32 {
	n := o.refs.Add(^uint32(0))
	if n == 0 {
		o.result = 0
		o.Vtbl = nil
	}

	return n
}

//go:noinline
func rawGetStatus(o *RawOp, status *int32) int32 {
	*status = StatusCompleted

	return StatusSuccess
}
