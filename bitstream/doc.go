// Package bitstream provides MSB-first bit-level readers and writers over byte streams.
//
// The LZW code stream packs variable-width codes (9 to 12 bits) most significant
// bit first, without any byte alignment between codes. Reader and Writer are the
// two halves of that packing:
//
//	w := bitstream.NewWriter(&buf)
//	_ = w.Write(256, 9) // clear table
//	_ = w.Write(65, 9)
//	_ = w.Flush()       // pad the last partial byte with zero bits
//
//	r := bitstream.NewBytesReader(buf.Bytes())
//	code, err := r.Fetch(9)
//
// # Reading
//
// Reader keeps a 32-bit buffer of left-aligned bits. EnsureBits pulls whole bytes
// from the source until the requested number of bits is available; Peek and Take
// then return the top bits of the buffer without any checks. When the source runs
// dry the buffer is left zero-padded on the low end and EnsureBits reports false,
// so a truncated stream never produces an error on the fast path. Fetch combines
// EnsureBits and Take and reports ErrStreamExhausted instead.
//
// # Writing
//
// Writer accumulates at most 7 bits of carry-over between calls and emits every
// completed byte to an io.ByteWriter immediately. Flush pads a pending partial
// byte with zero bits and must be called before the sink is treated as complete.
//
// # Thread Safety
//
// Readers and Writers hold mutable state and perform no locking. Use one instance
// per stream.
package bitstream
