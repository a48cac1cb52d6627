package engine

// Sink accepts mixed output samples, one per tick, strictly in time order.
// Sample values are already saturated to [-1, 1].
//
// This interface allows mock implementations to be injected during tests.
// The write is the only place the engine can block: a sink whose downstream
// consumer has gone away must report ErrStreamClosed (possibly wrapped), and
// the engine treats that as a clean shutdown signal rather than a failure.
type Sink interface {
	// WriteSample accepts the next output sample.
	WriteSample(v float64) error
}
