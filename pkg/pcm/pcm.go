// Package pcm moves mixed samples to their destination as raw, headerless
// PCM: an io.Writer (stdout, a file) or the sound device. There is no
// container and no framing; the consumer is configured with the matching
// rate and format out of band.
package pcm

import "fmt"

// Format selects the output sample encoding.
type Format int

const (
	// FormatU8 is unsigned 8-bit PCM. This is the default and what
	// `aplay` assumes when given no arguments.
	FormatU8 Format = iota

	// FormatS16LE is signed 16-bit little-endian PCM.
	FormatS16LE
)

// ParseFormat parses a format name ("u8" or "s16le").
func ParseFormat(s string) (Format, error) {
	switch s {
	case "u8":
		return FormatU8, nil
	case "s16le":
		return FormatS16LE, nil
	default:
		return 0, fmt.Errorf("unknown sample format: %q (must be u8 or s16le)", s)
	}
}

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatU8:
		return "u8"
	case FormatS16LE:
		return "s16le"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// BytesPerSample returns the encoded size of one sample.
func (f Format) BytesPerSample() int {
	if f == FormatS16LE {
		return 2
	}
	return 1
}
