package bench

import "runtime"

// Go has no std::hint::black_box. The equivalents below follow the usual
// benchmark idiom: package-level sink variables written by noinline
// functions. A value that flows into a sink is observably used, so the
// computation that produced it cannot be dead-code-eliminated.
var (
	sink    uint64
	sinkPtr any
)

// Retain marks v as used without otherwise acting on it. It works for both
// plain values and pointer-like handles, but note that it does not force
// its argument onto the heap; use Escape when the cost under test is the
// allocation itself.
//
//go:noinline
func Retain[T any](v T) {
	runtime.KeepAlive(v)
}

// Escape publishes p through a package-level sink, forcing the pointee to
// be heap-allocated. KeepAlive alone leaves escape analysis free to stack-
// allocate the object, which would zero out an allocation benchmark.
//
//go:noinline
func Escape(p any) {
	sinkPtr = p
}

// Touch folds a call result into the sink counter, the cheapest way to make
// a scalar result observable.
//
//go:noinline
func Touch(v int32) {
	sink += uint64(uint32(v))
}

// TouchBaseline is the empty-loop operation: a volatile-style
// read-increment-write of the sink counter. Measuring it yields the noise
// floor the reporter subtracts from every other scenario.
//
//go:noinline
func TouchBaseline() uint64 {
	sink++
	return sink
}
