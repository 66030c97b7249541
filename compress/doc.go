// Package compress exposes the LZW codec and a set of baseline codecs behind a
// common Codec interface.
//
// # Overview
//
// PDF and TIFF writers store content streams either unfiltered or through a
// compression filter. This package wraps the lzw package as a Codec so LZW
// streams can be handled the same way as the other codecs, and so the cost and
// benefit of LZW can be compared with modern alternatives:
//   - None: No compression (pass-through)
//   - LZW: PDF/TIFF LZW without early change
//   - LZWEarlyChange: PDF/TIFF LZW with early change, the PDF default
//   - Zstd: Best ratio of the set
//   - S2: Very fast, moderate ratio
//   - LZ4: Very fast decompression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs are obtained by type:
//
//	codec, err := compress.GetCodec(format.CompressionLZWEarlyChange)
//	if err != nil {
//	    return err
//	}
//	compressed, _ := codec.Compress(data)
//	original, err := codec.Decompress(compressed)
//
// GetCodec returns shared built-in instances; CreateCodec builds a new one.
// NewLZWCompressor accepts options when the defaults do not fit, for example a
// strict decoder that rejects invalid codes:
//
//	codec, err := compress.NewLZWCompressor(
//	    compress.WithEarlyChange(true),
//	    compress.WithDecoderOptions(lzw.WithStrictCodes(true)),
//	)
//
// # Empty Input
//
// The block codecs return nil for empty input in both directions. The LZW codec
// compresses empty input into a three byte stream (ClearTable, EndOfData) since
// that is what a PDF producer writes for an empty stream, and decompresses empty
// input to nil.
//
// # Measuring
//
// Measure runs one round trip and reports sizes, timings and an xxHash64 check
// of the restored data:
//
//	stats, err := compress.Measure(format.CompressionLZW, data)
//	fmt.Printf("%s: %.1f%% saved, verified=%v\n",
//	    stats.Algorithm, stats.SpaceSavings(), stats.Verified)
//
// # Thread Safety
//
// All codecs are safe for concurrent use. The LZW codec keeps a pool of decoders;
// the Zstd and LZ4 codecs pool their encoder state.
//
// # Build Tags
//
// Zstd uses the pure Go klauspost/compress implementation unless the package is
// built with -tags gozstd and cgo enabled, in which case libzstd is used through
// valyala/gozstd. Both produce standard Zstandard frames.
package compress
