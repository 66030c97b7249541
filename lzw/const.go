package lzw

import "errors"

const (
	ClearTable = 256 // ClearTable resets the dictionary and the code length.
	EndOfData  = 257 // EndOfData terminates the code stream.
	FirstCode  = 258 // FirstCode is the first dictionary code of every epoch.

	MinCodeLength = 9  // MinCodeLength is the code length after each ClearTable.
	MaxCodeLength = 12 // MaxCodeLength is the widest code length.

	// TableSize is the number of codes addressable with MaxCodeLength bits.
	TableSize = 1 << MaxCodeLength

	// lastEncoderCode is the dictionary slot at which the encoder gives up and
	// starts a new epoch instead of assigning it.
	lastEncoderCode = TableSize - 1
)

// ErrInvalidCode is reported by a strict Decoder when the stream contains a code
// that cannot be resolved: a first code that is not a literal, or a code beyond
// the next free dictionary slot.
var ErrInvalidCode = errors.New("lzw: invalid code")

// SegmentResult describes why Decoder.DecodeSegment returned.
type SegmentResult uint8

const (
	// SegmentBoundary means a ClearTable code ended the segment; the caller
	// should call DecodeSegment again to decode the next one.
	SegmentBoundary SegmentResult = iota + 1
	// StreamComplete means EndOfData was read or the input ran out.
	StreamComplete
	// StreamCorrupt means decoding stopped at an invalid code in lenient mode.
	// The output holds everything decoded before that code.
	StreamCorrupt
)

func (r SegmentResult) String() string {
	switch r {
	case SegmentBoundary:
		return "SegmentBoundary"
	case StreamComplete:
		return "StreamComplete"
	case StreamCorrupt:
		return "StreamCorrupt"
	default:
		return "Unknown"
	}
}

// growthThreshold returns the next-free-code value at which codes must become one
// bit wider than codeLen.
func growthThreshold(codeLen int, earlyChange bool) int {
	if earlyChange {
		return 1<<codeLen - 1
	}

	return 1 << codeLen
}
