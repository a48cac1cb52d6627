package pcm

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"io/fs"
	"math"
	"syscall"

	"github.com/zurustar/blip-machine/pkg/engine"
)

// Writer is a buffered engine.Sink that encodes samples and writes them to
// an io.Writer. When the destination reports that it has gone away (a
// broken pipe, a closed file), the error is mapped to engine.ErrStreamClosed
// so the engine shuts down cleanly instead of failing.
type Writer struct {
	w      *bufio.Writer
	format Format
	buf    [2]byte
}

// NewWriter creates a Writer emitting the given format to w.
func NewWriter(w io.Writer, format Format) *Writer {
	return &Writer{w: bufio.NewWriter(w), format: format}
}

// WriteSample implements engine.Sink. v must already be in [-1, 1]; the
// engine's mixer saturates before handing samples over.
func (pw *Writer) WriteSample(v float64) error {
	var err error
	switch pw.format {
	case FormatS16LE:
		binary.LittleEndian.PutUint16(pw.buf[:], uint16(encodeS16(v)))
		_, err = pw.w.Write(pw.buf[:2])
	default:
		pw.buf[0] = encodeU8(v)
		_, err = pw.w.Write(pw.buf[:1])
	}
	return mapClosed(err)
}

// Flush writes any buffered samples through to the destination.
func (pw *Writer) Flush() error {
	return mapClosed(pw.w.Flush())
}

// encodeU8 maps [-1, 1] onto [0, 255], truncating the midpoint down:
// -1 -> 0, 0 -> 127, 1 -> 255.
func encodeU8(v float64) uint8 {
	return uint8(127.5 * (1 + v))
}

// encodeS16 maps [-1, 1] onto [-32767, 32767].
func encodeS16(v float64) int16 {
	return int16(math.Round(v * 32767))
}

// mapClosed translates gone-consumer errors to engine.ErrStreamClosed.
func mapClosed(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, io.ErrClosedPipe) || errors.Is(err, fs.ErrClosed) || errors.Is(err, syscall.EPIPE) {
		return engine.ErrStreamClosed
	}
	return err
}
