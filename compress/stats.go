package compress

import (
	"fmt"
	"time"

	"github.com/arloliu/pdflzw/format"
	"github.com/arloliu/pdflzw/internal/hash"
)

// CompressionStats provides detailed information about a compression round trip.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the data
	CompressionTimeNs int64

	// DecompressionTimeNs is the time taken to decompress the data
	DecompressionTimeNs int64

	// Checksum is the xxHash64 digest of the original data
	Checksum uint64

	// Verified is true when the decompressed data hashed to Checksum
	Verified bool
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
// Values greater than 1.0 mean the codec expanded the data, which LZW does for
// random input.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
//
// Negative values mean the compressed form is larger than the input.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// Throughput returns the compression and decompression speed in MiB/s.
func (s CompressionStats) Throughput() (compressMBps, decompressMBps float64) {
	const mib = 1024 * 1024

	if s.CompressionTimeNs > 0 {
		compressMBps = float64(s.OriginalSize) / mib / (float64(s.CompressionTimeNs) / 1e9)
	}
	if s.DecompressionTimeNs > 0 {
		decompressMBps = float64(s.OriginalSize) / mib / (float64(s.DecompressionTimeNs) / 1e9)
	}

	return compressMBps, decompressMBps
}

// Measure compresses data with the codec registered for compressionType,
// decompresses the result and reports sizes, timings and whether the round trip
// reproduced the input.
//
// Parameters:
//   - compressionType: codec to measure
//   - data: payload to compress
//
// Returns:
//   - CompressionStats: measurement, Verified is false if the round trip differed
//   - error: unknown type or a codec error
func Measure(compressionType format.CompressionType, data []byte) (CompressionStats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return CompressionStats{}, err
	}

	return MeasureCodec(codec, compressionType, data)
}

// MeasureCodec is Measure for an arbitrary codec; algorithm is only recorded.
func MeasureCodec(codec Codec, algorithm format.CompressionType, data []byte) (CompressionStats, error) {
	stats := CompressionStats{
		Algorithm:    algorithm,
		OriginalSize: int64(len(data)),
		Checksum:     hash.Sum(data),
	}

	start := time.Now()
	compressed, err := codec.Compress(data)
	stats.CompressionTimeNs = time.Since(start).Nanoseconds()
	if err != nil {
		return stats, fmt.Errorf("%s compress: %w", algorithm, err)
	}
	stats.CompressedSize = int64(len(compressed))

	start = time.Now()
	restored, err := codec.Decompress(compressed)
	stats.DecompressionTimeNs = time.Since(start).Nanoseconds()
	if err != nil {
		return stats, fmt.Errorf("%s decompress: %w", algorithm, err)
	}

	stats.Verified = len(restored) == len(data) && hash.Sum(restored) == stats.Checksum

	return stats, nil
}
