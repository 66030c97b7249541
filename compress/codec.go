package compress

import (
	"fmt"

	"github.com/arloliu/pdflzw/format"
)

// Compressor turns a complete payload into its compressed form.
//
// Payloads handled here are whole content streams: a PDF page description, an
// image strip or any other byte sequence that is compressed in one piece.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores payloads produced by the matching Compressor.
//
// Example:
//
//	decompressor, _ := GetCodec(format.CompressionLZWEarlyChange)
//	original, err := decompressor.Decompress(streamData)
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
//
// Thread Safety: every Decompressor in this package is safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Error conditions:
	//   - Returns error if input data is corrupted and the format can detect it
	//   - Returns error if data was compressed with an incompatible algorithm
	//
	// LZW streams carry no checksum, so a corrupt LZW stream is only detected
	// when it contains a code that cannot be resolved (and only in strict mode).
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, LZW, LZWEarlyChange, Zstd, S2 or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionLZW:
		return NewLZWCompressor(WithEarlyChange(false))
	case format.CompressionLZWEarlyChange:
		return NewLZWCompressor(WithEarlyChange(true))
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:           NewNoOpCompressor(),
	format.CompressionLZW:            mustLZW(false),
	format.CompressionLZWEarlyChange: mustLZW(true),
	format.CompressionZstd:           NewZstdCompressor(),
	format.CompressionS2:             NewS2Compressor(),
	format.CompressionLZ4:            NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

func mustLZW(earlyChange bool) *LZWCompressor {
	c, err := NewLZWCompressor(WithEarlyChange(earlyChange))
	if err != nil {
		panic(fmt.Sprintf("compress: built-in LZW codec: %v", err))
	}

	return c
}
