package bench

// Scenario pairs a label with the zero-argument operation measured under
// that label. Op must have an observable side effect (flow its result into
// one of the sinks) or the measurement is invalid.
type Scenario struct {
	Name string
	Op   func()
}

// Result holds one scenario's measurement: raw average nanoseconds per
// call and the baseline-adjusted average. Write-once, printed, not stored.
type Result struct {
	Name       string  `json:"name"`
	Iterations int     `json:"iterations"`
	RawNs      float64 `json:"raw_ns"`
	AdjNs      float64 `json:"adj_ns"`
}
