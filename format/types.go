package format

import (
	"fmt"
	"strings"
)

type CompressionType uint8

const (
	CompressionNone           CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionLZW            CompressionType = 0x2 // CompressionLZW represents LZW with early change disabled.
	CompressionLZWEarlyChange CompressionType = 0x3 // CompressionLZWEarlyChange represents LZW with early change (the PDF default).
	CompressionZstd           CompressionType = 0x4 // CompressionZstd represents Zstandard compression.
	CompressionS2             CompressionType = 0x5 // CompressionS2 represents S2 compression.
	CompressionLZ4            CompressionType = 0x6 // CompressionLZ4 represents LZ4 compression.
)

// AllCompressionTypes lists every compression type in declaration order.
var AllCompressionTypes = []CompressionType{
	CompressionNone,
	CompressionLZW,
	CompressionLZWEarlyChange,
	CompressionZstd,
	CompressionS2,
	CompressionLZ4,
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionLZW:
		return "LZW"
	case CompressionLZWEarlyChange:
		return "LZWEarlyChange"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsLZW reports whether c is one of the LZW variants.
func (c CompressionType) IsLZW() bool {
	return c == CompressionLZW || c == CompressionLZWEarlyChange
}

// ParseCompressionType converts a name produced by String, compared
// case-insensitively, back into a CompressionType.
func ParseCompressionType(name string) (CompressionType, error) {
	for _, c := range AllCompressionTypes {
		if strings.EqualFold(name, c.String()) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("unknown compression type %q", name)
}
