// Package engine executes a validated blip program and mixes the audio of
// all live threads into a single sample stream.
//
// The engine is a single-goroutine cooperative simulation. "Concurrency" is
// virtual: each thread is a program counter time-sliced at sample
// granularity, and the engine is the sole mutator of the thread set, so no
// locking is needed. Each tick it first resolves all zero-duration
// instructions to a fixed point (labels, jumps, forks, tone setup), then
// mixes one sample from every playing thread, writes it to the sink, and
// advances playback by one sample.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/zurustar/blip-machine/pkg/opcode"
	"github.com/zurustar/blip-machine/pkg/program"
	"github.com/zurustar/blip-machine/pkg/random"
)

// DefaultSampleRate is the reference output rate in samples per second,
// matching what raw-audio players assume by default.
const DefaultSampleRate = 8000

// resolveCancelCheck is how many resolve steps run between context checks.
// A program whose threads never reach a tone spins in the resolve phase by
// design; the periodic check keeps such programs stoppable.
const resolveCancelCheck = 4096

// Config holds engine parameters.
type Config struct {
	// SampleRate is the output rate in samples per second.
	// DefaultSampleRate is used if zero.
	SampleRate int

	// Seed is the root decision-source seed. The same seed and program
	// always produce byte-identical output.
	Seed int64
}

// Engine drives the thread set forward one audio sample at a time.
type Engine struct {
	prog       *program.Program
	sink       Sink
	sampleRate int
	seed       int64

	threads []*thread // live (non-halted) threads, in spawn order
	nextID  int
	clock   int64 // global sample tick
	log     *slog.Logger
}

// New creates an engine for the given program and sink.
func New(prog *program.Program, sink Sink, cfg Config) *Engine {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &Engine{
		prog:       prog,
		sink:       sink,
		sampleRate: rate,
		seed:       cfg.Seed,
		log:        slog.Default(),
	}
}

// Run executes the program, writing one sample per tick to the sink.
//
// It returns nil when every thread has halted, when the sink reports
// ErrStreamClosed, or when ctx is cancelled; all three are orderly stops.
// Any other sink error is returned as a failure. A validated program cannot
// fail on its own content, so these are the only ways out of the loop — a
// looping program runs until externally stopped.
func (e *Engine) Run(ctx context.Context) error {
	e.spawn(0, random.New(e.seed))

	for {
		if err := e.resolve(ctx); err != nil {
			e.log.Debug("execution cancelled", "tick", e.clock)
			return nil
		}
		if len(e.threads) == 0 {
			e.log.Debug("all threads halted", "ticks", e.clock)
			return nil
		}

		if err := e.sink.WriteSample(e.mix()); err != nil {
			if errors.Is(err, ErrStreamClosed) {
				e.log.Debug("output stream closed, stopping", "tick", e.clock)
				return nil
			}
			return fmt.Errorf("write sample: %w", err)
		}

		e.advance()
		e.clock++
	}
}

// spawn appends a fresh Ready thread at the given program counter.
func (e *Engine) spawn(pc int, rng *random.Source) *thread {
	t := &thread{id: e.nextID, pc: pc, rng: rng}
	e.nextID++
	e.threads = append(e.threads, t)
	return t
}

// resolve drives every Ready thread to a fixed point: when it returns, each
// live thread is Playing and halted threads have been removed. Threads
// spawned by a fork are appended to the set and resolved within the same
// pass, so a child starts sounding on the same tick as its spawn point.
//
// The only early exit is ctx cancellation, checked every
// resolveCancelCheck steps so that tone-free loops remain stoppable.
func (e *Engine) resolve(ctx context.Context) error {
	steps := 0
	for i := 0; i < len(e.threads); i++ {
		t := e.threads[i]
		for t.status == statusReady {
			e.step(t)
			steps++
			if steps%resolveCancelCheck == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
		}
	}
	e.removeHalted()
	return ctx.Err()
}

// step resolves exactly one instruction for a Ready thread.
func (e *Engine) step(t *thread) {
	if t.pc >= e.prog.Len() {
		t.status = statusHalted
		e.log.Debug("thread halted", "thread", t.id, "tick", e.clock)
		return
	}

	in := e.prog.At(t.pc)
	switch in.Kind {
	case opcode.Label:
		t.pc++

	case opcode.Tone:
		samples := int(math.Round(in.Dur * float64(e.sampleRate)))
		t.pc++ // resume point for when playback completes
		if samples > 0 {
			t.status = statusPlaying
			t.phase = 0
			t.freq = in.Freq
			t.samplesLeft = samples
		}
		// A zero-sample tone completes immediately without emitting.

	case opcode.Jump:
		if t.rng.Float64() < in.Prob {
			t.pc = in.Target
		} else {
			t.pc++
		}

	case opcode.Fork:
		if t.rng.Float64() < in.Prob {
			child := e.spawn(in.Target, t.rng.Fork())
			e.log.Debug("thread spawned", "thread", child.id, "parent", t.id, "pc", in.Target, "tick", e.clock)
		}
		t.pc++
	}
}

// removeHalted compacts the thread set, preserving spawn order.
func (e *Engine) removeHalted() {
	live := e.threads[:0]
	for _, t := range e.threads {
		if t.status != statusHalted {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(e.threads); i++ {
		e.threads[i] = nil
	}
	e.threads = live
}

// advance moves every playing thread one sample forward. A thread whose
// tone just finished returns to Ready at its recorded resume point, to be
// resolved at the start of the next tick.
func (e *Engine) advance() {
	step := 2 * math.Pi / float64(e.sampleRate)
	for _, t := range e.threads {
		if t.status != statusPlaying {
			continue
		}
		t.phase += step * t.freq
		if t.phase >= 2*math.Pi {
			t.phase = math.Mod(t.phase, 2*math.Pi)
		}
		t.samplesLeft--
		if t.samplesLeft == 0 {
			t.status = statusReady
		}
	}
}
