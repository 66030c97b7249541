// Package lzw implements the variable-width LZW code stream used to compress byte
// streams embedded in document formats (the PDF/PostScript "LZWDecode" filter and
// its TIFF relative).
//
// # Wire Format
//
// The stream is a sequence of codes packed most significant bit first:
//
//   - 0-255: literal bytes
//   - 256: ClearTable, resets the dictionary and the code length
//   - 257: EndOfData, marks the end of the stream
//   - 258-4095: dictionary entries, assigned sequentially after each ClearTable
//
// Codes start 9 bits wide and grow to 10, 11 and 12 bits as the dictionary
// fills. A code is read one bit wider as soon as the next free dictionary code
// (as seen by the decoder) reaches the threshold below. The thresholds depend on
// the early-change flag, which is not stored in the stream and has to be
// supplied identically to the encoder and the decoder:
//
//	earlyChange | 10 bits from | 11 bits from | 12 bits from
//	------------|--------------|--------------|-------------
//	false       | 512          | 1024         | 2048
//	true        | 511          | 1023         | 2047
//
// earlyChange=true is the historical off-by-one used by most PDF producers (it
// is the default of the PDF LZWDecode filter); earlyChange=false matches GIF
// and the Go standard library's compress/lzw MSB variant bit for bit.
//
// # Decoding
//
// Decoder keeps a fixed table of 4096 back-pointer records. Every entry stores
// the code it extends and one byte; the bytes of a code are recovered by walking
// the chain down to a literal. The decoder is deliberately forgiving:
//
//   - a missing EndOfData is not an error, decoding stops at the end of input
//   - a truncated final code is dropped, the bytes decoded so far are returned
//   - encoders that keep emitting codes after the table is full are tolerated,
//     the table simply stops growing
//
// Corrupt codes stop decoding as well. With WithStrictCodes(true) they are
// reported as ErrInvalidCode instead.
//
//	dec, _ := lzw.NewDecoder()
//	plain, err := dec.Decode(compressed, true)
//
// A Decoder is reusable but not safe for concurrent use; use one per goroutine.
//
// # Encoding
//
// Encode and EncodeTo are stateless functions built on a string-keyed
// dictionary. They always start the stream with ClearTable, emit a fresh
// ClearTable whenever the code space runs out, and terminate the stream with
// EndOfData:
//
//	compressed := lzw.Encode(plain, true)
package lzw
