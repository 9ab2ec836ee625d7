// Package comobj provides the objects the comparison executables measure:
// a manually reference-counted component object dispatched through an
// abstract capability interface, the same object behind an explicit
// function table, a plain value type with direct calls as the control, and
// an eagerly-completed asynchronous operation.
//
// None of these carry real logic. They exist to be timed, so every method
// on the hot path is marked noinline: an inlined one-liner would measure
// nothing.
package comobj

// Call return codes and status out-values, COM-flavored.
const (
	// StatusSuccess is the return value of every successful call.
	StatusSuccess int32 = 0

	// StatusPending and StatusCompleted are the out-values GetStatus can
	// write. The eagerly-completed operation only ever writes
	// StatusCompleted.
	StatusPending   int32 = 0
	StatusCompleted int32 = 1
)

// Op is the capability surface of a reference-counted component object.
// Concrete types are erased behind it; calls dispatch indirectly through
// the interface's method table.
//
// AddRef and Release return the reference count after the operation.
// Release on a count of zero is undefined: the protocol is deliberately
// unguarded so that the benchmark measures the bare count churn, nothing
// else.
type Op interface {
	AddRef() uint32
	Release() uint32
	GetStatus(status *int32) int32
}

// AsyncOp extends Op with result retrieval. The comparison-async
// executable measures it in its eagerly-completed form.
type AsyncOp interface {
	Op
	GetResult(result *int32) int32
}

// Provider hands out asynchronous operations. The provider itself follows
// the same reference-count protocol as the operations it creates.
type Provider interface {
	AddRef() uint32
	Release() uint32
	GetStatusAsync() AsyncOp
}
