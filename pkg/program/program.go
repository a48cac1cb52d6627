// Package program builds the validated, immutable program table the engine
// executes. Construction is all-or-nothing: either every label is unique and
// every branch target resolves, or no Program is returned and nothing is
// ever emitted.
package program

import (
	"github.com/zurustar/blip-machine/pkg/opcode"
)

// Program is an ordered instruction sequence plus the label-to-index mapping
// derived from it. It is immutable and shared read-only by all threads; it
// owns no per-thread state.
type Program struct {
	instructions []opcode.Instruction
	labels       map[string]int
}

// Build validates the instruction sequence and constructs the table.
//
// Jump and Fork instructions come out with Target holding the resolved index
// of their label, so execution never looks names up. All validation errors
// are collected and returned together; if any are present the Program is nil.
func Build(instructions []opcode.Instruction) (*Program, []error) {
	var errs []error

	labels := make(map[string]int)
	for i, in := range instructions {
		if in.Kind != opcode.Label {
			continue
		}
		if first, ok := labels[in.Name]; ok {
			errs = append(errs, &DuplicateLabelError{
				Name:  in.Name,
				Line:  in.Line,
				First: instructions[first].Line,
			})
			continue
		}
		labels[in.Name] = i
	}

	resolved := make([]opcode.Instruction, len(instructions))
	copy(resolved, instructions)
	for i := range resolved {
		in := &resolved[i]
		if in.Kind != opcode.Jump && in.Kind != opcode.Fork {
			continue
		}
		target, ok := labels[in.Name]
		if !ok {
			errs = append(errs, &UnresolvedLabelError{Name: in.Name, Line: in.Line})
			continue
		}
		in.Target = target
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &Program{instructions: resolved, labels: labels}, nil
}

// Len returns the number of instructions.
func (p *Program) Len() int {
	return len(p.instructions)
}

// At returns the instruction at index i.
func (p *Program) At(i int) opcode.Instruction {
	return p.instructions[i]
}

// LabelIndex returns the instruction index of the named label.
func (p *Program) LabelIndex(name string) (int, bool) {
	i, ok := p.labels[name]
	return i, ok
}
