package bitstream

import (
	"errors"
	"fmt"
	"io"
)

// MaxFetchBits is the widest bit group Reader can return in a single call.
const MaxFetchBits = 24

// ErrStreamExhausted is returned by Fetch when the source ends before the
// requested number of bits could be supplied.
var ErrStreamExhausted = errors.New("bitstream: stream exhausted")

// Reader delivers MSB-first bit groups of up to MaxFetchBits bits from a byte source.
//
// The reader works either directly over an in-memory byte slice (NewBytesReader),
// which avoids an interface call per byte, or over any io.ByteReader (NewReader).
type Reader struct {
	// Hot path fields
	bitBuf   uint32 // Left-aligned bit buffer, unused low bits are zero
	bitCount int    // Number of valid bits in bitBuf
	data     []byte // In-memory source, nil when src is used
	bytePos  int    // Read position in data

	src       io.ByteReader
	exhausted bool // The source has reported end of data
	srcErr    error
}

// NewReader creates a Reader pulling bytes from src.
func NewReader(src io.ByteReader) *Reader {
	return &Reader{src: src}
}

// NewBytesReader creates a Reader over an in-memory byte slice.
//
// The slice is not copied and must not be modified while the reader is in use.
func NewBytesReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Reset re-targets the reader to a new in-memory slice, discarding all buffered bits.
func (r *Reader) Reset(data []byte) {
	*r = Reader{data: data}
}

// nextByte returns the next source byte.
func (r *Reader) nextByte() (byte, bool) {
	if r.exhausted {
		return 0, false
	}

	if r.src == nil {
		if r.bytePos >= len(r.data) {
			r.exhausted = true
			return 0, false
		}
		b := r.data[r.bytePos]
		r.bytePos++

		return b, true
	}

	b, err := r.src.ReadByte()
	if err != nil {
		r.exhausted = true
		if !errors.Is(err, io.EOF) {
			r.srcErr = err
		}

		return 0, false
	}

	return b, true
}

// EnsureBits guarantees the buffer holds at least n valid bits.
//
// Whole bytes are pulled from the source and appended below the bits already
// buffered. It returns false if the source was exhausted first; in that case the
// buffer holds whatever was available, zero-padded on the low end.
//
// Parameters:
//   - n: number of bits required (1-24)
//
// Returns:
//   - bool: true if n valid bits are buffered
func (r *Reader) EnsureBits(n int) bool {
	checkBitCount(n)

	for r.bitCount < n {
		b, ok := r.nextByte()
		if !ok {
			return false
		}
		r.bitBuf |= uint32(b) << (24 - r.bitCount)
		r.bitCount += 8
	}

	return true
}

// Peek returns the top n bits of the buffer without consuming them.
//
// The caller must have called EnsureBits(n) first; missing bits read as zero.
func (r *Reader) Peek(n int) uint32 {
	return r.bitBuf >> (32 - n)
}

// Take returns the top n bits of the buffer and discards them.
//
// The caller must have called EnsureBits(n) first. Take never fails: bits beyond
// the end of the stream read as zero and the valid-bit count saturates at zero.
func (r *Reader) Take(n int) uint32 {
	v := r.bitBuf >> (32 - n)
	r.bitBuf <<= n
	r.bitCount -= n
	if r.bitCount < 0 {
		r.bitCount = 0
	}

	return v
}

// Fetch reads n bits, returning ErrStreamExhausted if the source cannot supply them.
//
// On failure the buffered bits are left in place.
func (r *Reader) Fetch(n int) (uint32, error) {
	if !r.EnsureBits(n) {
		if r.srcErr != nil {
			return 0, fmt.Errorf("%w: %w", ErrStreamExhausted, r.srcErr)
		}

		return 0, ErrStreamExhausted
	}

	return r.Take(n), nil
}

// Discard drops n bits without reading them.
//
// Buffered bits are dropped first, then whole bytes are skipped directly in the
// source, then any remainder is dropped from a refilled buffer. It returns false
// if the stream ended before n bits could be skipped.
func (r *Reader) Discard(n int) bool {
	if n <= r.bitCount {
		r.drop(n)
		return true
	}

	n -= r.bitCount
	r.bitBuf = 0
	r.bitCount = 0

	skipBytes := n / 8
	if r.src == nil {
		remaining := len(r.data) - r.bytePos
		if skipBytes > remaining {
			r.bytePos = len(r.data)
			r.exhausted = true

			return false
		}
		r.bytePos += skipBytes
	} else {
		for range skipBytes {
			if _, ok := r.nextByte(); !ok {
				return false
			}
		}
	}

	rest := n % 8
	if rest == 0 {
		return true
	}
	if !r.EnsureBits(rest) {
		r.bitBuf = 0
		r.bitCount = 0

		return false
	}
	r.drop(rest)

	return true
}

// AlignToByte discards the bits remaining in the current partially consumed byte.
func (r *Reader) AlignToByte() {
	r.drop(r.bitCount % 8)
}

// Buffered returns the number of valid bits currently held in the buffer.
func (r *Reader) Buffered() int {
	return r.bitCount
}

// Exhausted reports whether the source has run out of bytes.
//
// Buffered bits may still be available even when the source is exhausted.
func (r *Reader) Exhausted() bool {
	return r.exhausted
}

// Err returns the first non-EOF error reported by the underlying source, if any.
func (r *Reader) Err() error {
	return r.srcErr
}

func (r *Reader) drop(n int) {
	if n == 0 {
		return
	}
	r.bitBuf <<= n
	r.bitCount -= n
}

func checkBitCount(n int) {
	if n < 1 || n > MaxFetchBits {
		panic(fmt.Sprintf("bitstream: invalid bit count %d", n))
	}
}
