package comobj

import (
	"testing"
)

// Sinks keep each benchmarked call observable; see the bench package for
// the same pattern in the wall-clock harness.
var (
	benchStatus int32
	benchSink   any
)

func BenchmarkComNewRelease(b *testing.B) {
	for i := 0; i < b.N; i++ {
		o := NewManualOp(0)
		o.Release()
	}
}

func BenchmarkReadyValueNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = &ReadyValue{Value: 1}
	}
}

func BenchmarkComCall(b *testing.B) {
	o := NewManualOp(0)
	defer o.Release()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		o.GetStatus(&benchStatus)
	}
}

func BenchmarkVtableCall(b *testing.B) {
	o := NewRawOp(0)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		o.Vtbl.GetStatus(o, &benchStatus)
	}
}

func BenchmarkNativeCall(b *testing.B) {
	var n Native

	for i := 0; i < b.N; i++ {
		n.GetStatus(&benchStatus)
	}
}

func BenchmarkAsyncOpNewRelease(b *testing.B) {
	p := NewProvider(1)
	defer p.Release()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		op := p.GetStatusAsync()
		op.Release()
	}
}
