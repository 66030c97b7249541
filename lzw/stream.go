package lzw

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/pdflzw/bitstream"
	"github.com/arloliu/pdflzw/internal/pool"
)

// DecodeStream decodes a code stream read from r and writes the decoded bytes to w.
//
// Decoded bytes are staged in a pooled buffer and written to w whenever the
// buffer reaches the configured stream buffer size, so memory use stays bounded
// no matter how long a segment is. If r does not implement io.ByteReader it is
// wrapped in a bufio.Reader, which may read past the end of the code stream.
//
// As with Decode, a truncated stream is not an error. Read errors other than
// io.EOF, write errors and (in strict mode) ErrInvalidCode are returned.
//
// Parameters:
//   - r: source of the LZW code stream
//   - earlyChange: the early-change flag the stream was encoded with
//   - w: destination for the decoded bytes
//
// Returns:
//   - int64: number of decoded bytes written to w
//   - error: read, write or decoding error
func (d *Decoder) DecodeStream(r io.Reader, earlyChange bool, w io.Writer) (int64, error) {
	src, ok := r.(io.ByteReader)
	if !ok {
		src = bufio.NewReader(r)
	}
	br := bitstream.NewReader(src)

	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	var written int64
	flush := func(p []byte) error {
		n, err := w.Write(p)
		written += int64(n)
		if err != nil {
			return fmt.Errorf("lzw: write decoded data: %w", err)
		}

		return nil
	}

	d.Reset()
	dst := buf.B[:0]
	for {
		var (
			res SegmentResult
			err error
		)
		dst, res, err = d.segment(br, earlyChange, dst, flush)
		if err != nil {
			buf.B = dst[:0]
			if errors.Is(err, ErrInvalidCode) && len(dst) > 0 {
				// Hand over what was decoded before the corrupt code
				if ferr := flush(dst); ferr != nil {
					return written, ferr
				}
			}

			return written, err
		}
		if res != SegmentBoundary {
			break
		}
	}

	buf.B = dst[:0]
	if len(dst) > 0 {
		if err := flush(dst); err != nil {
			return written, err
		}
	}

	if err := br.Err(); err != nil {
		return written, fmt.Errorf("lzw: read code stream: %w", err)
	}

	return written, nil
}
