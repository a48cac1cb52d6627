package engine

import "math"

// mix combines the contributions of all currently playing threads into one
// output sample.
//
// Each playing thread contributes sin(phase) at unit amplitude. The sum is
// hard-clipped to [-1, 1] rather than renormalized: enough simultaneous
// tones will audibly distort instead of being silently attenuated. With no
// playing threads the sample is silence (zero amplitude), though the
// scheduler stops before emitting in that case.
func (e *Engine) mix() float64 {
	var sum float64
	for _, t := range e.threads {
		if t.status == statusPlaying {
			sum += math.Sin(t.phase)
		}
	}
	return saturate(sum)
}

// saturate hard-clips v to [-1, 1].
func saturate(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	default:
		return v
	}
}
