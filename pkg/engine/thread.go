package engine

import "github.com/zurustar/blip-machine/pkg/random"

// status is the execution state of a virtual thread.
type status int

const (
	// statusReady: about to resolve the instruction at pc.
	statusReady status = iota
	// statusPlaying: currently emitting a tone.
	statusPlaying
	// statusHalted: program counter ran past the end; the thread is
	// removed from the thread set.
	statusHalted
)

// thread is one virtual thread of control: an independent program counter
// with its own waveform phase and decision source. It is not an operating
// system thread; the engine time-slices all threads at sample granularity
// on a single goroutine.
type thread struct {
	id     int
	pc     int
	status status
	rng    *random.Source

	// Tone playback state, meaningful while status == statusPlaying.
	// pc already points at the instruction to resume at when the tone
	// completes.
	phase       float64 // radians, wrapped mod 2π
	freq        float64 // hertz
	samplesLeft int
}
