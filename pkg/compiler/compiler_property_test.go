package compiler

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/zurustar/blip-machine/pkg/opcode"
)

// TestPropertyWellFormedLinesAlwaysCompile verifies that any program built
// from in-range operands compiles without errors and preserves every
// non-blank line as one instruction, in order.
func TestPropertyWellFormedLinesAlwaysCompile(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("tone lines round-trip through the compiler", prop.ForAll(
		func(freq, dur float64, count uint8) bool {
			n := int(count)%10 + 1
			var b strings.Builder
			for i := 0; i < n; i++ {
				fmt.Fprintf(&b, "sin %g %g\n", freq, dur)
			}

			instructions, errs := Compile(b.String())
			if len(errs) != 0 || len(instructions) != n {
				return false
			}
			for _, in := range instructions {
				if in.Kind != opcode.Tone || in.Freq != freq || in.Dur != dur {
					return false
				}
			}
			return true
		},
		gen.Float64Range(0.001, 20000),
		gen.Float64Range(0, 10),
		gen.UInt8(),
	))

	properties.Property("branch lines preserve probability and target name", prop.ForAll(
		func(prob float64, fork bool) bool {
			mnemonic := "pjump"
			kind := opcode.Jump
			if fork {
				mnemonic = "pfork"
				kind = opcode.Fork
			}
			source := fmt.Sprintf("lbl t\n%s t %g", mnemonic, prob)

			instructions, errs := Compile(source)
			if len(errs) != 0 || len(instructions) != 2 {
				return false
			}
			in := instructions[1]
			return in.Kind == kind && in.Name == "t" && in.Prob == prob
		},
		gen.Float64Range(0, 1),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
