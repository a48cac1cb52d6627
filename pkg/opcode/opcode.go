// Package opcode defines the instruction set for the blip machine.
// This package is the foundation that both the compiler and the engine depend on.
// The compiler generates Instruction sequences, and the engine executes them.
package opcode

import "fmt"

// Kind identifies the operation an Instruction performs.
type Kind int

// Instruction kinds for all supported operations.
const (
	// Label marks a branch target. It has zero duration; resolving it only
	// advances the program counter.
	// Source form: lbl <name>
	Label Kind = iota

	// Tone emits a sine wave at Freq hertz for Dur seconds.
	// Source form: sin <frequency> <duration>
	Tone

	// Jump transfers control to the named label with probability Prob,
	// otherwise falls through to the next instruction.
	// Source form: pjump <name> <probability>
	Jump

	// Fork spawns a new thread at the named label with probability Prob.
	// The spawning thread always falls through.
	// Source form: pfork <name> <probability>
	Fork
)

// String returns the source-level mnemonic for the kind.
func (k Kind) String() string {
	switch k {
	case Label:
		return "lbl"
	case Tone:
		return "sin"
	case Jump:
		return "pjump"
	case Fork:
		return "pfork"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Instruction is a single operation for the engine.
//
// Only the fields relevant to the Kind are meaningful: Name holds the label
// name for Label and the target name for Jump/Fork; Freq and Dur apply to
// Tone; Prob applies to Jump and Fork. Target is the resolved instruction
// index of Name, filled in during program table construction so that the
// execution hot path never performs a string lookup.
type Instruction struct {
	Kind   Kind
	Name   string
	Freq   float64 // hertz, positive
	Dur    float64 // seconds, non-negative
	Prob   float64 // in [0, 1]
	Target int     // resolved index of Name (Jump/Fork), set by program.Build
	Line   int     // 1-based source line, for diagnostics
}

// String returns the instruction in its source form.
func (in Instruction) String() string {
	switch in.Kind {
	case Label:
		return fmt.Sprintf("lbl %s", in.Name)
	case Tone:
		return fmt.Sprintf("sin %g %g", in.Freq, in.Dur)
	case Jump:
		return fmt.Sprintf("pjump %s %g", in.Name, in.Prob)
	case Fork:
		return fmt.Sprintf("pfork %s %g", in.Name, in.Prob)
	default:
		return fmt.Sprintf("Instruction(%d)", int(in.Kind))
	}
}
