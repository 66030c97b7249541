package compress

import (
	"fmt"
	"sync"

	"github.com/arloliu/pdflzw/internal/options"
	"github.com/arloliu/pdflzw/lzw"
)

// LZWOption configures an LZWCompressor.
type LZWOption = options.Option[*LZWCompressor]

// WithEarlyChange selects the early-change variant used for both directions.
// PDF streams default to early change enabled.
func WithEarlyChange(earlyChange bool) LZWOption {
	return options.NoError(func(c *LZWCompressor) {
		c.earlyChange = earlyChange
	})
}

// WithDecoderOptions passes options to every decoder the compressor creates.
//
// The options are validated once by NewLZWCompressor.
func WithDecoderOptions(opts ...lzw.DecoderOption) LZWOption {
	return options.New(func(c *LZWCompressor) error {
		if _, err := lzw.NewDecoder(opts...); err != nil {
			return fmt.Errorf("invalid lzw decoder options: %w", err)
		}
		c.decoderOpts = append(c.decoderOpts, opts...)

		return nil
	})
}

// LZWCompressor adapts the lzw package to the Codec interface.
//
// Decoders hold a 4096-entry table plus scratch space and are not safe for
// concurrent use, so they are pooled per compressor.
type LZWCompressor struct {
	earlyChange bool
	decoderOpts []lzw.DecoderOption
	decoders    sync.Pool
}

var _ Codec = (*LZWCompressor)(nil)

// NewLZWCompressor creates an LZW codec.
//
// Parameters:
//   - opts: WithEarlyChange, WithDecoderOptions
//
// Returns:
//   - *LZWCompressor: New LZW codec instance
//   - error: if an option is invalid
func NewLZWCompressor(opts ...LZWOption) (*LZWCompressor, error) {
	c := &LZWCompressor{earlyChange: true}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	c.decoders.New = func() any {
		// Options were validated by WithDecoderOptions
		d, err := lzw.NewDecoder(c.decoderOpts...)
		if err != nil {
			panic(fmt.Sprintf("failed to create lzw decoder for pool: %v", err))
		}

		return d
	}

	return c, nil
}

// EarlyChange reports which variant the compressor produces and expects.
func (c *LZWCompressor) EarlyChange() bool {
	return c.earlyChange
}

// Compress encodes data as an LZW code stream.
//
// Unlike the block codecs an empty input still produces a stream: ClearTable
// followed by EndOfData.
func (c *LZWCompressor) Compress(data []byte) ([]byte, error) {
	return lzw.Encode(data, c.earlyChange), nil
}

// Decompress decodes an LZW code stream.
//
// Truncated streams decode to the bytes they contain. Invalid codes end the
// output silently unless the compressor was built with lzw.WithStrictCodes(true).
func (c *LZWCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	d, _ := c.decoders.Get().(*lzw.Decoder)
	defer c.decoders.Put(d)

	out, err := d.Decode(data, c.earlyChange)
	if err != nil {
		return nil, fmt.Errorf("lzw decompression failed: %w", err)
	}

	return out, nil
}
