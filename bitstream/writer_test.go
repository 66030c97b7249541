package bitstream

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

type limitedByteWriter struct {
	buf   bytes.Buffer
	limit int
}

var errSinkFull = errors.New("sink full")

func (l *limitedByteWriter) WriteByte(b byte) error {
	if l.buf.Len() >= l.limit {
		return errSinkFull
	}

	return l.buf.WriteByte(b)
}

func TestWriter_WriteMSBFirst(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.Write(0b101, 3))
	require.Equal(t, 3, w.Pending())
	require.Empty(t, buf.Bytes(), "partial byte must not be emitted")

	require.NoError(t, w.Write(0b0_1100_0101, 9))
	require.Equal(t, []byte{0xAC}, buf.Bytes())
	require.Equal(t, 4, w.Pending())

	require.NoError(t, w.Write(0b0011, 4))
	require.Equal(t, []byte{0xAC, 0x53}, buf.Bytes())
	require.Equal(t, 0, w.Pending())
	require.Equal(t, int64(2), w.Written())
}

func TestWriter_MasksHighBits(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.Write(0xFFFFFF00, 8))
	require.NoError(t, w.Write(0xFFFFFFFF, 32))
	require.Equal(t, []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF}, buf.Bytes())
}

func TestWriter_Flush(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.Flush(), "flush on an empty writer is a no-op")
	require.Empty(t, buf.Bytes())

	require.NoError(t, w.Write(0b1, 1))
	require.NoError(t, w.Write(0x100, 9))
	require.NoError(t, w.Flush())
	// 1 1000_0000_0 padded with zeros: 1100_0000 0000_0000
	require.Equal(t, []byte{0xC0, 0x00}, buf.Bytes())
	require.Equal(t, 0, w.Pending())

	require.NoError(t, w.Align())
	require.Len(t, buf.Bytes(), 2)
}

func TestWriter_Skip(t *testing.T) {
	tests := []struct {
		name     string
		prefix   int
		skip     int
		expected []byte
	}{
		{name: "aligned bulk", prefix: 0, skip: 24, expected: []byte{0x00, 0x00, 0x00, 0xFF}},
		{name: "unaligned head", prefix: 3, skip: 5, expected: []byte{0xE0, 0xFF}},
		{name: "unaligned head and bulk", prefix: 3, skip: 21, expected: []byte{0xE0, 0x00, 0x00, 0xFF}},
		{name: "short", prefix: 2, skip: 2, expected: []byte{0xCF, 0xF0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf)

			require.NoError(t, w.Write(0xFF, tt.prefix))
			require.NoError(t, w.Skip(tt.skip))
			require.NoError(t, w.Write(0xFF, 8))
			require.NoError(t, w.Flush())
			require.Equal(t, tt.expected, buf.Bytes())
		})
	}
}

func TestWriter_LatchesSinkError(t *testing.T) {
	sink := &limitedByteWriter{limit: 1}
	w := NewWriter(sink)

	require.NoError(t, w.Write(0xAB, 8))
	err := w.Write(0xCD, 8)
	require.ErrorIs(t, err, errSinkFull)

	require.ErrorIs(t, w.Write(0x1, 1), errSinkFull)
	require.ErrorIs(t, w.Flush(), errSinkFull)
	require.ErrorIs(t, w.Skip(8), errSinkFull)
	require.Equal(t, int64(1), w.Written())
}

func TestWriter_InvalidBitCountPanics(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})

	require.Panics(t, func() { _ = w.Write(0, -1) })
	require.Panics(t, func() { _ = w.Write(0, MaxWriteBits+1) })
}

func TestWriterReader_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	type group struct {
		value uint32
		n     int
	}

	groups := make([]group, 5000)
	for i := range groups {
		n := 1 + rng.IntN(MaxFetchBits)
		groups[i] = group{value: rng.Uint32() & (1<<n - 1), n: n}
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, g := range groups {
		require.NoError(t, w.Write(g.value, g.n))
	}
	require.NoError(t, w.Flush())

	r := NewBytesReader(buf.Bytes())
	for i, g := range groups {
		v, err := r.Fetch(g.n)
		require.NoError(t, err, "group %d", i)
		require.Equal(t, g.value, v, "group %d", i)
	}

	// Only zero padding remains
	require.Less(t, r.Buffered(), 8)
}
