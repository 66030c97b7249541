package lzw

import (
	"bufio"
	"fmt"
	"io"

	"github.com/arloliu/pdflzw/bitstream"
	"github.com/arloliu/pdflzw/internal/pool"
)

// Encode compresses data into an LZW code stream.
//
// The stream starts with ClearTable, restarts the dictionary with another
// ClearTable whenever the code space is used up, and ends with EndOfData.
// Encoding an empty input yields just ClearTable followed by EndOfData.
//
// Parameters:
//   - data: bytes to compress
//   - earlyChange: the early-change flag the decoder will be given
//
// Returns:
//   - []byte: the code stream, owned by the caller
func Encode(data []byte, earlyChange bool) []byte {
	buf := pool.GetCodecBuffer()
	defer pool.PutCodecBuffer(buf)

	buf.Grow(len(data)/2 + 4)

	// Writing into a ByteBuffer cannot fail
	_ = encode(bitstream.NewWriter(buf), data, earlyChange)

	return buf.Clone()
}

// EncodeTo compresses data and writes the code stream to w.
//
// If w does not implement io.ByteWriter the output is buffered internally and
// flushed before EncodeTo returns.
//
// Returns:
//   - int64: number of bytes written to w
//   - error: the first write error
func EncodeTo(w io.Writer, data []byte, earlyChange bool) (int64, error) {
	sink, ok := w.(io.ByteWriter)
	var bufw *bufio.Writer
	if !ok {
		bufw = bufio.NewWriterSize(w, pool.StreamBufferDefaultSize)
		sink = bufw
	}

	bw := bitstream.NewWriter(sink)
	if err := encode(bw, data, earlyChange); err != nil {
		return 0, fmt.Errorf("lzw: encode: %w", err)
	}

	if bufw != nil {
		// Bytes still sitting in bufw have not reached w yet
		pending := int64(bufw.Buffered())
		if err := bufw.Flush(); err != nil {
			return bw.Written() - pending, fmt.Errorf("lzw: encode: %w", err)
		}
	}

	return bw.Written(), nil
}

// encoderState tracks the dictionary epoch while encoding.
type encoderState struct {
	bw          *bitstream.Writer
	dict        map[string]int // Strings of two or more bytes; literals are implicit
	codeLen     int
	nextCode    int
	growAt      int
	earlyChange bool
}

func encode(bw *bitstream.Writer, data []byte, earlyChange bool) error {
	e := &encoderState{
		bw:          bw,
		dict:        make(map[string]int, min(len(data), TableSize)),
		earlyChange: earlyChange,
	}
	e.reset()

	if err := e.emit(ClearTable); err != nil {
		return err
	}

	if len(data) > 0 {
		code := int(data[0])
		start := 0

		for i := 1; i < len(data); i++ {
			candidate := data[start : i+1]
			if c, ok := e.dict[string(candidate)]; ok {
				code = c
				continue
			}

			if err := e.emit(code); err != nil {
				return err
			}
			entry, ok, err := e.advance()
			if err != nil {
				return err
			}
			if ok {
				e.dict[string(candidate)] = entry
			}

			code = int(data[i])
			start = i
		}

		if err := e.emit(code); err != nil {
			return err
		}
		// The decoder widens its codes after this code as well, so EndOfData must
		// be written at the width it expects.
		if _, _, err := e.advance(); err != nil {
			return err
		}
	}

	if err := e.emit(EndOfData); err != nil {
		return err
	}

	return e.bw.Flush()
}

func (e *encoderState) reset() {
	e.codeLen = MinCodeLength
	e.nextCode = FirstCode
	e.growAt = growthThreshold(e.codeLen, e.earlyChange)
	clear(e.dict)
}

func (e *encoderState) emit(code int) error {
	return e.bw.Write(uint32(code), e.codeLen) //nolint:gosec // G115: codes < 4096
}

// advance accounts for the dictionary entry implied by the code just emitted.
//
// It returns the code assigned to the entry and true, or false when the code
// space is exhausted; in that case a ClearTable has been emitted and a new epoch
// begins.
func (e *encoderState) advance() (int, bool, error) {
	entry := e.nextCode
	e.nextCode++

	if entry == e.growAt {
		e.codeLen++
		e.growAt = growthThreshold(e.codeLen, e.earlyChange)
	}

	if entry == lastEncoderCode || (e.earlyChange && entry == lastEncoderCode-1) {
		if err := e.emit(ClearTable); err != nil {
			return 0, false, err
		}
		e.reset()

		return 0, false, nil
	}

	return entry, true, nil
}
