package bitstream

import (
	"fmt"
	"io"
)

// MaxWriteBits is the widest bit group Writer accepts in a single call.
const MaxWriteBits = 32

// Writer packs MSB-first bit groups into whole bytes written to an io.ByteWriter.
//
// At most 7 bits are carried over between calls; every completed byte is passed to
// the sink immediately. The first error returned by the sink is latched and
// returned by all subsequent calls.
type Writer struct {
	dst      io.ByteWriter
	bitBuf   uint64 // Pending bits, right-aligned
	bitCount int    // Number of pending bits (0-7 between calls)
	written  int64  // Bytes passed to dst
	err      error
}

// NewWriter creates a Writer emitting bytes to dst.
func NewWriter(dst io.ByteWriter) *Writer {
	return &Writer{dst: dst}
}

// Write appends the low n bits of value, most significant bit first.
//
// Parameters:
//   - value: the bits to write (only the least significant n bits are used)
//   - n: number of bits to write (0-32)
//
// Returns:
//   - error: the first error reported by the sink, if any
func (w *Writer) Write(value uint32, n int) error {
	if n < 0 || n > MaxWriteBits {
		panic(fmt.Sprintf("bitstream: invalid bit count %d", n))
	}
	if w.err != nil {
		return w.err
	}
	if n == 0 {
		return nil
	}

	v := uint64(value)
	if n < 32 {
		v &= (1 << n) - 1
	}

	w.bitBuf = (w.bitBuf << n) | v
	w.bitCount += n

	for w.bitCount >= 8 {
		w.bitCount -= 8
		if err := w.emit(byte(w.bitBuf >> w.bitCount)); err != nil {
			return err
		}
	}
	w.bitBuf &= (1 << w.bitCount) - 1

	return nil
}

// Flush pads a pending partial byte with zero bits on the low end and writes it.
//
// Flush is a no-op when the writer is already byte aligned. It must be called
// before the sink's contents are treated as complete.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if w.bitCount == 0 {
		return nil
	}

	b := byte(w.bitBuf << (8 - w.bitCount))
	w.bitBuf = 0
	w.bitCount = 0

	return w.emit(b)
}

// Align is an alias of Flush, named for call sites that pad to a byte boundary
// in the middle of a stream.
func (w *Writer) Align() error {
	return w.Flush()
}

// Skip writes n zero bits.
//
// Once the writer is byte aligned, whole zero bytes are written directly.
func (w *Writer) Skip(n int) error {
	if w.err != nil {
		return w.err
	}

	// Fill up the pending partial byte first
	if w.bitCount > 0 {
		head := min(8-w.bitCount, n)
		if err := w.Write(0, head); err != nil {
			return err
		}
		n -= head
	}

	for ; n >= 8; n -= 8 {
		if err := w.emit(0); err != nil {
			return err
		}
	}

	return w.Write(0, n)
}

// Pending returns the number of carried-over bits not yet written to the sink.
func (w *Writer) Pending() int {
	return w.bitCount
}

// Written returns the number of whole bytes passed to the sink.
func (w *Writer) Written() int64 {
	return w.written
}

func (w *Writer) emit(b byte) error {
	if err := w.dst.WriteByte(b); err != nil {
		w.err = fmt.Errorf("bitstream: write failed: %w", err)
		return w.err
	}
	w.written++

	return nil
}
