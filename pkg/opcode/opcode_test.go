package opcode

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Label, "lbl"},
		{Tone, "sin"},
		{Jump, "pjump"},
		{Fork, "pfork"},
		{Kind(99), "Kind(99)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestInstructionString(t *testing.T) {
	tests := []struct {
		instruction Instruction
		want        string
	}{
		{Instruction{Kind: Label, Name: "top"}, "lbl top"},
		{Instruction{Kind: Tone, Freq: 440, Dur: 0.5}, "sin 440 0.5"},
		{Instruction{Kind: Jump, Name: "top", Prob: 0.25}, "pjump top 0.25"},
		{Instruction{Kind: Fork, Name: "end", Prob: 1}, "pfork end 1"},
	}
	for _, tt := range tests {
		if got := tt.instruction.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
