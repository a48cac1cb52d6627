package cli

import (
	"testing"
	"time"
)

func TestParseArgs_ValidArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected Config
	}{
		{
			name: "defaults",
			args: []string{},
			expected: Config{
				Seed:       0,
				SampleRate: 8000,
				Format:     "u8",
				LogLevel:   "info",
			},
		},
		{
			name: "program path",
			args: []string{"song.blip"},
			expected: Config{
				ProgramPath: "song.blip",
				SampleRate:  8000,
				Format:      "u8",
				LogLevel:    "info",
			},
		},
		{
			name: "stdin marker",
			args: []string{"-"},
			expected: Config{
				ProgramPath: "-",
				SampleRate:  8000,
				Format:      "u8",
				LogLevel:    "info",
			},
		},
		{
			name: "seed and rate",
			args: []string{"-seed", "42", "-rate", "44100"},
			expected: Config{
				Seed:       42,
				SampleRate: 44100,
				Format:     "u8",
				LogLevel:   "info",
			},
		},
		{
			name: "format shorthand",
			args: []string{"-f", "s16le"},
			expected: Config{
				SampleRate: 8000,
				Format:     "s16le",
				LogLevel:   "info",
			},
		},
		{
			name: "output file",
			args: []string{"-o", "out.pcm", "song.blip"},
			expected: Config{
				ProgramPath: "song.blip",
				SampleRate:  8000,
				Format:      "u8",
				Output:      "out.pcm",
				LogLevel:    "info",
			},
		},
		{
			name: "play flag",
			args: []string{"--play", "song.blip"},
			expected: Config{
				ProgramPath: "song.blip",
				SampleRate:  8000,
				Format:      "u8",
				Play:        true,
				LogLevel:    "info",
			},
		},
		{
			name: "timeout",
			args: []string{"--timeout", "10"},
			expected: Config{
				SampleRate: 8000,
				Format:     "u8",
				Timeout:    10 * time.Second,
				LogLevel:   "info",
			},
		},
		{
			name: "timeout shorthand",
			args: []string{"-t", "5"},
			expected: Config{
				SampleRate: 8000,
				Format:     "u8",
				Timeout:    5 * time.Second,
				LogLevel:   "info",
			},
		},
		{
			name: "log level shorthand",
			args: []string{"-l", "debug"},
			expected: Config{
				SampleRate: 8000,
				Format:     "u8",
				LogLevel:   "debug",
			},
		},
		{
			name: "flags after positional argument",
			args: []string{"song.blip", "-seed", "7", "--play"},
			expected: Config{
				ProgramPath: "song.blip",
				Seed:        7,
				SampleRate:  8000,
				Format:      "u8",
				Play:        true,
				LogLevel:    "info",
			},
		},
	}

	// Shield the table from ambient environment fallbacks.
	t.Setenv("TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := ParseArgs(tt.args)
			if err != nil {
				t.Fatalf("ParseArgs(%v) returned error: %v", tt.args, err)
			}
			if *config != tt.expected {
				t.Errorf("ParseArgs(%v) = %+v, want %+v", tt.args, *config, tt.expected)
			}
		})
	}
}

func TestParseArgs_Help(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"--help"}} {
		config, err := ParseArgs(args)
		if err != nil {
			t.Fatalf("ParseArgs(%v) returned error: %v", args, err)
		}
		if !config.ShowHelp {
			t.Errorf("ParseArgs(%v): ShowHelp not set", args)
		}
	}
}

func TestParseArgs_InvalidArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"negative timeout", []string{"-t", "-3"}},
		{"unknown format", []string{"-f", "mp3"}},
		{"unknown log level", []string{"-l", "loud"}},
		{"zero sample rate", []string{"-rate", "0"}},
		{"negative sample rate", []string{"-rate", "-8000"}},
		{"unknown flag", []string{"--frobnicate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseArgs(tt.args); err == nil {
				t.Errorf("ParseArgs(%v): expected an error", tt.args)
			}
		})
	}
}

func TestParseArgs_EnvFallbacks(t *testing.T) {
	t.Setenv("TIMEOUT", "7")
	t.Setenv("LOG_LEVEL", "warn")

	config, err := ParseArgs([]string{})
	if err != nil {
		t.Fatalf("ParseArgs returned error: %v", err)
	}
	if config.Timeout != 7*time.Second {
		t.Errorf("Timeout = %v, want 7s", config.Timeout)
	}
	if config.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", config.LogLevel)
	}
}

func TestParseArgs_FlagsWinOverEnv(t *testing.T) {
	t.Setenv("TIMEOUT", "7")
	t.Setenv("LOG_LEVEL", "warn")

	config, err := ParseArgs([]string{"-t", "3", "-l", "error"})
	if err != nil {
		t.Fatalf("ParseArgs returned error: %v", err)
	}
	if config.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", config.Timeout)
	}
	if config.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error", config.LogLevel)
	}
}
