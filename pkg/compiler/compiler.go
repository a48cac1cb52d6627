// Package compiler provides the compilation pipeline for blip programs.
// It transforms program text into an instruction sequence:
//
//	lbl <name>
//	sin <frequency> <duration>
//	pjump <name> <probability>
//	pfork <name> <probability>
//
// One instruction per line, whitespace-separated tokens, blank lines ignored.
// Label resolution happens later, in program.Build; the compiler only checks
// line shape and operand ranges.
package compiler

import (
	"math"
	"strconv"
	"strings"

	"github.com/zurustar/blip-machine/pkg/opcode"
)

// Compile compiles program text to an instruction sequence.
//
// Returns the instructions for every well-formed line and all errors found.
// Errors do not abort compilation: the remaining lines are still checked so
// every problem is reported in one pass. Callers must treat a non-empty
// error slice as a failed load and discard the instructions.
func Compile(source string) ([]opcode.Instruction, []error) {
	var instructions []opcode.Instruction
	var errs []error

	for i, line := range strings.Split(source, "\n") {
		lineNum := i + 1
		fields := strings.Fields(strings.TrimSuffix(line, "\r"))
		if len(fields) == 0 {
			continue
		}

		in, err := compileLine(fields, lineNum)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		instructions = append(instructions, in)
	}

	return instructions, errs
}

// compileLine compiles a single non-blank line.
func compileLine(fields []string, line int) (opcode.Instruction, error) {
	switch fields[0] {
	case "lbl":
		if len(fields) != 2 {
			return opcode.Instruction{}, newError(line, "bad syntax")
		}
		return opcode.Instruction{Kind: opcode.Label, Name: fields[1], Line: line}, nil

	case "sin":
		if len(fields) != 3 {
			return opcode.Instruction{}, newError(line, "bad syntax")
		}
		freq, err := parseNumber(fields[1], line)
		if err != nil {
			return opcode.Instruction{}, err
		}
		dur, err := parseNumber(fields[2], line)
		if err != nil {
			return opcode.Instruction{}, err
		}
		if freq <= 0 {
			return opcode.Instruction{}, newError(line, "frequency must be positive")
		}
		if dur < 0 {
			return opcode.Instruction{}, newError(line, "duration must be non-negative")
		}
		return opcode.Instruction{Kind: opcode.Tone, Freq: freq, Dur: dur, Line: line}, nil

	case "pjump", "pfork":
		if len(fields) != 3 {
			return opcode.Instruction{}, newError(line, "bad syntax")
		}
		prob, err := parseNumber(fields[2], line)
		if err != nil {
			return opcode.Instruction{}, err
		}
		if prob < 0 || prob > 1 {
			return opcode.Instruction{}, newError(line, "probabilities must be between 0 and 1")
		}
		kind := opcode.Jump
		if fields[0] == "pfork" {
			kind = opcode.Fork
		}
		return opcode.Instruction{Kind: kind, Name: fields[1], Prob: prob, Line: line}, nil

	default:
		return opcode.Instruction{}, newError(line, "bad syntax")
	}
}

// parseNumber parses a finite float operand.
func parseNumber(s string, line int) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, newError(line, "expected a number")
	}
	return v, nil
}
