// Package cli parses command line arguments and environment variables into
// the tool's configuration.
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the settings parsed from command line arguments.
type Config struct {
	ProgramPath string        // program file path; empty or "-" means stdin
	Seed        int64         // decision-source seed
	SampleRate  int           // output rate in samples per second
	Format      string        // sample format (u8, s16le)
	Output      string        // output file path; empty means stdout
	Play        bool          // play through the sound device instead of writing
	Timeout     time.Duration // stop after this long (0 is unlimited)
	LogLevel    string        // log level (debug, info, warn, error)
	ShowHelp    bool          // help requested
}

// ParseArgs parses command line arguments into a Config.
// Flags may appear before or after the positional program path, and
// TIMEOUT / LOG_LEVEL environment variables act as fallbacks when the
// corresponding flag is absent.
func ParseArgs(args []string) (*Config, error) {
	// Reorder so flags come first and the positional argument last.
	reorderedArgs := reorderArgs(args)

	fs := flag.NewFlagSet("blip-machine", flag.ContinueOnError)

	config := &Config{}

	var timeoutSec int
	fs.Int64Var(&config.Seed, "seed", 0, "decision-source seed")
	fs.IntVar(&config.SampleRate, "rate", 8000, "sample rate in Hz")
	fs.StringVar(&config.Format, "format", "u8", "sample format (u8, s16le)")
	fs.StringVar(&config.Format, "f", "u8", "sample format (shorthand)")
	fs.StringVar(&config.Output, "output", "", "write samples to a file instead of stdout")
	fs.StringVar(&config.Output, "o", "", "write samples to a file (shorthand)")
	fs.BoolVar(&config.Play, "play", false, "play through the sound device instead of writing")
	fs.IntVar(&timeoutSec, "timeout", 0, "stop after this many seconds")
	fs.IntVar(&timeoutSec, "t", 0, "stop after this many seconds (shorthand)")
	fs.StringVar(&config.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&config.LogLevel, "l", "info", "log level (shorthand)")
	fs.BoolVar(&config.ShowHelp, "help", false, "show help")
	fs.BoolVar(&config.ShowHelp, "h", false, "show help (shorthand)")

	if err := fs.Parse(reorderedArgs); err != nil {
		return nil, err
	}

	// Environment fallbacks; command line flags win.
	if timeoutSec == 0 {
		if timeoutEnv := os.Getenv("TIMEOUT"); timeoutEnv != "" {
			if t, err := strconv.Atoi(timeoutEnv); err == nil && t > 0 {
				timeoutSec = t
			}
		}
	}
	if config.LogLevel == "info" {
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			config.LogLevel = strings.ToLower(logLevelEnv)
		}
	}

	if timeoutSec < 0 {
		return nil, fmt.Errorf("timeout must be non-negative, got %d", timeoutSec)
	}
	config.Timeout = time.Duration(timeoutSec) * time.Second

	if config.SampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", config.SampleRate)
	}

	validFormats := map[string]bool{
		"u8":    true,
		"s16le": true,
	}
	if !validFormats[config.Format] {
		return nil, fmt.Errorf("invalid sample format: %s (must be u8 or s16le)", config.Format)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[config.LogLevel] {
		return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", config.LogLevel)
	}

	if fs.NArg() > 0 {
		config.ProgramPath = fs.Arg(0)
	}

	return config, nil
}

// reorderArgs moves flags to the front and positional arguments to the back
// so that `blip-machine prog.blip -play` works like `blip-machine -play
// prog.blip`.
func reorderArgs(args []string) []string {
	var flags []string
	var positional []string

	boolFlags := map[string]bool{
		"-play": true, "--play": true,
		"-h": true, "-help": true, "--help": true,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if len(arg) > 0 && arg[0] == '-' && arg != "-" {
			flags = append(flags, arg)

			// A value flag consumes the following argument
			// (e.g. `-t 5`), unless the flag is boolean.
			if !boolFlags[arg] && !strings.Contains(arg, "=") &&
				i+1 < len(args) && (len(args[i+1]) == 0 || args[i+1][0] != '-' || args[i+1] == "-") {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, arg)
		}
	}

	return append(flags, positional...)
}

// PrintHelp prints the usage message.
func PrintHelp() {
	fmt.Fprintf(os.Stdout, `blip-machine - compiles tiny probabilistic programs into sound

Usage:
  blip-machine [options] [program-file]

Arguments:
  program-file    Path to the program text (omit or use "-" for stdin)

The program is a sequence of lines:
  lbl <name>                   define a branch target
  sin <frequency> <duration>   play a sine tone (Hz, seconds)
  pjump <name> <probability>   jump to a label with the given probability
  pfork <name> <probability>   fork a new thread at a label with the given probability

Output is raw headerless PCM (mono) on stdout, e.g.:
  blip-machine < song.blip | aplay

Options:
  -seed <n>                   decision-source seed (default: 0)
  -rate <hz>                  sample rate (default: 8000)
  -f, --format <fmt>          sample format: u8, s16le (default: u8)
  -o, --output <file>         write samples to a file instead of stdout
  --play                      play through the sound device instead of writing
  -t, --timeout <seconds>     stop after the given time (default: unlimited)
  -l, --log-level <level>     log level: debug, info, warn, error (default: info)
  -h, --help                  show this help

Environment Variables:
  TIMEOUT=<seconds>           timeout fallback
  LOG_LEVEL=<level>           log level fallback
`)
}
