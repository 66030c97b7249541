package lzw

import (
	"fmt"

	"github.com/arloliu/pdflzw/bitstream"
	"github.com/arloliu/pdflzw/internal/options"
	"github.com/arloliu/pdflzw/internal/pool"
)

const (
	defaultSizeHint = 3.0
	maxInitialAlloc = 64 * 1024 * 1024 // 64MiB
)

// codePoint is one dictionary entry: the code it extends and the byte it appends.
type codePoint struct {
	prev  uint16
	value byte
}

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*Decoder]

// WithStrictCodes makes the decoder report corrupt codes as ErrInvalidCode
// instead of silently stopping at them.
func WithStrictCodes(strict bool) DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.strict = strict
	})
}

// WithStreamBufferSize sets how many decoded bytes DecodeStream stages before
// writing them to the destination.
func WithStreamBufferSize(size int) DecoderOption {
	return options.New(func(d *Decoder) error {
		if size < TableSize {
			return fmt.Errorf("lzw: stream buffer size %d is smaller than %d", size, TableSize)
		}
		d.streamBufferSize = size

		return nil
	})
}

// WithSizeHint sets the expected ratio of decoded to encoded size, used by Decode
// to size its output buffer up front.
func WithSizeHint(ratio float64) DecoderOption {
	return options.New(func(d *Decoder) error {
		if ratio < 1 {
			return fmt.Errorf("lzw: invalid size hint %v", ratio)
		}
		d.sizeHint = ratio

		return nil
	})
}

// Decoder converts LZW code streams back into bytes.
//
// The decoder owns a fixed 4096-entry table of back-pointer records. Slots 0-255
// are identity mappings set once by NewDecoder; slots from FirstCode upward are
// overwritten in every epoch. A Decoder can be reused for any number of streams
// but must not be used by multiple goroutines at the same time.
type Decoder struct {
	// Hot path fields
	codeLen  int // Current code length in bits (9-12)
	nextCode int // Next free dictionary slot

	table   [TableSize]codePoint
	scratch [TableSize]byte // Chain unwinding buffer, filled from the end

	br bitstream.Reader // Reused by Decode to avoid an allocation per call

	strict           bool
	streamBufferSize int
	sizeHint         float64
}

// NewDecoder creates a Decoder ready to decode a stream.
//
// Parameters:
//   - opts: optional configuration (WithStrictCodes, WithStreamBufferSize, WithSizeHint)
//
// Returns:
//   - *Decoder: the new decoder
//   - error: if an option is invalid
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	d := &Decoder{
		streamBufferSize: pool.StreamBufferDefaultSize,
		sizeHint:         defaultSizeHint,
	}
	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	for i := range 256 {
		d.table[i] = codePoint{prev: uint16(i), value: byte(i)} //nolint:gosec // G115: i < 256
	}
	d.Reset()

	return d, nil
}

// Reset puts the decoder back into the state right after a ClearTable code.
//
// Decode and DecodeStream call Reset themselves; callers driving DecodeSegment
// directly call it before starting a new stream.
func (d *Decoder) Reset() {
	d.codeLen = MinCodeLength
	d.nextCode = FirstCode
}

// Decode decodes a complete code stream held in memory.
//
// Truncated input and a missing EndOfData are not errors: Decode returns every
// byte that could be decoded. In strict mode an invalid code is reported as
// ErrInvalidCode together with the bytes decoded before it.
//
// Parameters:
//   - data: the LZW code stream
//   - earlyChange: the early-change flag the stream was encoded with
//
// Returns:
//   - []byte: decoded bytes, owned by the caller (nil for empty input)
//   - error: ErrInvalidCode in strict mode
func (d *Decoder) Decode(data []byte, earlyChange bool) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	d.Reset()
	d.br.Reset(data)
	defer d.br.Reset(nil)

	dst := make([]byte, 0, d.initialCapacity(len(data)))
	for {
		var (
			res SegmentResult
			err error
		)
		dst, res, err = d.segment(&d.br, earlyChange, dst, nil)
		if err != nil {
			return dst, err
		}
		if res != SegmentBoundary {
			return dst, nil
		}
	}
}

// DecodeSegment decodes codes from br until a ClearTable, EndOfData or the end of
// input, appending the decoded bytes to dst.
//
// One call covers one dictionary epoch. When it returns SegmentBoundary the
// dictionary has been reset and the caller loops to decode the next segment.
//
// Parameters:
//   - br: source of codes
//   - earlyChange: the early-change flag the stream was encoded with
//   - dst: destination, decoded bytes are appended to it
//
// Returns:
//   - []byte: dst extended with the decoded bytes
//   - SegmentResult: why decoding stopped
//   - error: ErrInvalidCode in strict mode
func (d *Decoder) DecodeSegment(br *bitstream.Reader, earlyChange bool, dst []byte) ([]byte, SegmentResult, error) {
	return d.segment(br, earlyChange, dst, nil)
}

// segment is the decoding loop shared by all entry points.
//
// When flush is non-nil, dst is handed to flush and truncated every time it
// reaches streamBufferSize bytes.
func (d *Decoder) segment(br *bitstream.Reader, earlyChange bool, dst []byte, flush func([]byte) error) ([]byte, SegmentResult, error) {
	if !br.EnsureBits(d.codeLen) {
		return dst, StreamComplete, nil
	}
	code := int(br.Take(d.codeLen))

	switch {
	case code == ClearTable:
		d.Reset()
		return dst, SegmentBoundary, nil
	case code == EndOfData:
		return dst, StreamComplete, nil
	case code > EndOfData:
		return d.invalid(dst, code)
	}

	// The first code of a segment is always a literal
	dst = append(dst, byte(code))
	prevCode := code
	firstByte := byte(code)

	threshold := growthThreshold(d.codeLen, earlyChange)

	for {
		if !br.EnsureBits(d.codeLen) {
			return dst, StreamComplete, nil
		}
		code = int(br.Take(d.codeLen))

		if code == EndOfData {
			return dst, StreamComplete, nil
		}
		if code == ClearTable {
			d.Reset()
			return dst, SegmentBoundary, nil
		}

		if code < 256 {
			// Literal fast path: no chain to unwind
			if d.nextCode < TableSize {
				d.table[d.nextCode] = codePoint{prev: uint16(prevCode), value: byte(code)} //nolint:gosec // G115: codes < 4096
				d.nextCode++
			}
			dst = append(dst, byte(code))
			firstByte = byte(code)
		} else {
			kwkwk := code == d.nextCode
			if code > d.nextCode || (kwkwk && d.nextCode >= TableSize) {
				return d.invalid(dst, code)
			}
			if kwkwk {
				// The encoder used this code right after defining it: it expands to
				// the previous sequence followed by that sequence's first byte.
				// Define it first, then unwind it like any other entry.
				d.table[code] = codePoint{prev: uint16(prevCode), value: firstByte} //nolint:gosec // G115: codes < 4096
			}

			i := len(d.scratch)
			c := code
			for c >= FirstCode {
				i--
				d.scratch[i] = d.table[c].value
				c = int(d.table[c].prev)
			}
			i--
			d.scratch[i] = byte(c)
			firstByte = byte(c)

			if d.nextCode < TableSize {
				if !kwkwk {
					d.table[d.nextCode] = codePoint{prev: uint16(prevCode), value: firstByte} //nolint:gosec // G115: codes < 4096
				}
				d.nextCode++
			}

			dst = append(dst, d.scratch[i:]...)
		}

		if d.nextCode >= threshold && d.codeLen < MaxCodeLength {
			d.codeLen++
			threshold = growthThreshold(d.codeLen, earlyChange)
		}

		prevCode = code

		if flush != nil && len(dst) >= d.streamBufferSize {
			if err := flush(dst); err != nil {
				return dst[:0], StreamComplete, err
			}
			dst = dst[:0]
		}
	}
}

func (d *Decoder) invalid(dst []byte, code int) ([]byte, SegmentResult, error) {
	if d.strict {
		return dst, StreamCorrupt, fmt.Errorf("%w: %d (next free code %d)", ErrInvalidCode, code, d.nextCode)
	}

	return dst, StreamCorrupt, nil
}

func (d *Decoder) initialCapacity(encodedLen int) int {
	n := int(float64(encodedLen) * d.sizeHint)

	return min(max(n, 64), maxInitialAlloc)
}
