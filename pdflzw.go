// Package pdflzw encodes and decodes the LZW code streams used by the PDF
// LZWDecode filter and by TIFF.
//
// The format packs variable-width codes (9 to 12 bits) most significant bit
// first. Code 256 resets the dictionary, code 257 ends the stream and codes from
// 258 upward name dictionary strings. Two variants exist, selected by the
// early-change flag: with early change (the PDF default, EarlyChange 1) code
// widths grow one code earlier than without it. The flag is not recorded in the
// stream; it comes from the stream dictionary and must be passed to every call.
//
// # Core Features
//
//   - Bit-exact with the standard library compress/lzw (MSB, 8 bit literals)
//     when early change is disabled
//   - Tolerant decoding: truncated streams, a missing EndOfData or a missing
//     leading ClearTable still yield every decodable byte
//   - Optional strict mode reporting invalid codes as lzw.ErrInvalidCode
//   - Streaming decode with bounded memory
//   - Codec adapter and baseline codecs (Zstd, S2, LZ4) in package compress
//
// # Basic Usage
//
//	encoded := pdflzw.Encode(content, true)
//
//	decoded, err := pdflzw.Decode(encoded, true)
//	if err != nil {
//	    return err
//	}
//
// Streaming a large stream from a file:
//
//	n, err := pdflzw.DecodeStream(f, true, out)
//
// # Package Structure
//
// This package provides convenient top-level wrappers. For fine-grained control
// use the lzw package (decoder options, segment-wise decoding) and the bitstream
// package (MSB-first bit I/O) directly.
package pdflzw

import (
	"fmt"
	"io"
	"sync"

	"github.com/arloliu/pdflzw/compress"
	"github.com/arloliu/pdflzw/lzw"
)

var decoderPool = sync.Pool{
	New: func() any {
		d, err := lzw.NewDecoder()
		if err != nil {
			panic(fmt.Sprintf("failed to create lzw decoder for pool: %v", err))
		}

		return d
	},
}

func getDecoder() *lzw.Decoder {
	d, _ := decoderPool.Get().(*lzw.Decoder)
	return d
}

// Encode compresses data into an LZW code stream.
//
// Parameters:
//   - data: bytes to compress
//   - earlyChange: true for the PDF default variant (EarlyChange 1)
//
// Returns:
//   - []byte: the code stream, starting with ClearTable and ending with EndOfData
func Encode(data []byte, earlyChange bool) []byte {
	return lzw.Encode(data, earlyChange)
}

// EncodeStream reads r to the end, compresses it and writes the code stream to w.
//
// LZW needs no lookahead, but the encoder works on a complete buffer, so the
// whole input is held in memory.
//
// Returns:
//   - int64: number of bytes written to w
//   - error: read or write error
func EncodeStream(r io.Reader, earlyChange bool, w io.Writer) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("pdflzw: read input: %w", err)
	}

	return lzw.EncodeTo(w, data, earlyChange)
}

// Decode decompresses an LZW code stream held in memory.
//
// Decoding is lenient: it stops at the end of input, at EndOfData or at the
// first invalid code and returns the bytes decoded so far. Use lzw.NewDecoder
// with lzw.WithStrictCodes(true) to have invalid codes reported.
//
// Parameters:
//   - data: the code stream
//   - earlyChange: the early-change flag the stream was encoded with
//
// Returns:
//   - []byte: decoded bytes (nil for empty input)
//   - error: always nil in lenient mode, kept for API stability
func Decode(data []byte, earlyChange bool) ([]byte, error) {
	d := getDecoder()
	defer decoderPool.Put(d)

	return d.Decode(data, earlyChange)
}

// DecodeStream decodes the code stream read from r and writes the decoded bytes
// to w, using bounded memory.
//
// Returns:
//   - int64: number of decoded bytes written to w
//   - error: read or write error
func DecodeStream(r io.Reader, earlyChange bool, w io.Writer) (int64, error) {
	d := getDecoder()
	defer decoderPool.Put(d)

	return d.DecodeStream(r, earlyChange, w)
}

// NewCodec returns a compress.Codec for the chosen LZW variant.
//
// Example:
//
//	codec, _ := pdflzw.NewCodec(true)
//	stats, _ := compress.MeasureCodec(codec, format.CompressionLZWEarlyChange, data)
func NewCodec(earlyChange bool, opts ...lzw.DecoderOption) (*compress.LZWCompressor, error) {
	return compress.NewLZWCompressor(
		compress.WithEarlyChange(earlyChange),
		compress.WithDecoderOptions(opts...),
	)
}
