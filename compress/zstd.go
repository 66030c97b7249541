package compress

// ZstdCompressor is the ratio baseline: Zstandard usually beats LZW on size
// by a wide margin, which makes it the reference when deciding whether
// re-encoding an LZW stream is worthwhile.
//
// The pure Go backend (klauspost/compress) is used by default. Building with
// the gozstd tag on a cgo-enabled toolchain switches to the libzstd binding.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

const zstdLevel = 3
