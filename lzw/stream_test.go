package lzw

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

// countingWriter records the size of every Write call.
type countingWriter struct {
	bytes.Buffer
	writes []int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes = append(w.writes, len(p))
	return w.Buffer.Write(p)
}

func TestDecodeStream(t *testing.T) {
	d := newTestDecoder(t)

	for name, input := range testInputs() {
		t.Run(name, func(t *testing.T) {
			encoded := Encode(input, true)

			var out bytes.Buffer
			n, err := d.DecodeStream(bytes.NewReader(encoded), true, &out)
			require.NoError(t, err)
			require.Equal(t, int64(len(input)), n)
			require.Equal(t, len(input), out.Len())
			if len(input) > 0 {
				require.Equal(t, input, out.Bytes())
			}
		})
	}
}

func TestDecodeStream_BoundedStaging(t *testing.T) {
	input := testInputs()["run"]
	input = append(input, testInputs()["text"]...)
	encoded := Encode(input, false)

	d := newTestDecoder(t, WithStreamBufferSize(TableSize))

	w := &countingWriter{}
	n, err := d.DecodeStream(bytes.NewReader(encoded), false, w)
	require.NoError(t, err)
	require.Equal(t, int64(len(input)), n)
	require.Equal(t, input, w.Bytes())

	require.Greater(t, len(w.writes), len(input)/(2*TableSize))
	for _, size := range w.writes {
		// A flush happens as soon as the staged output reaches the buffer size,
		// so a single write never exceeds it by more than one dictionary string.
		require.Less(t, size, 2*TableSize)
	}
}

func TestDecodeStream_PlainReader(t *testing.T) {
	input := testInputs()["two symbols"]
	encoded := Encode(input, true)

	d := newTestDecoder(t)
	var out bytes.Buffer
	n, err := d.DecodeStream(iotest.OneByteReader(bytes.NewReader(encoded)), true, &out)
	require.NoError(t, err)
	require.Equal(t, int64(len(input)), n)
	require.Equal(t, input, out.Bytes())
}

func TestDecodeStream_Errors(t *testing.T) {
	input := testInputs()["text"]
	encoded := Encode(input, false)
	errBroken := errors.New("broken source")

	t.Run("read error", func(t *testing.T) {
		src := io.MultiReader(bytes.NewReader(encoded[:len(encoded)/2]), iotest.ErrReader(errBroken))

		var out bytes.Buffer
		n, err := newTestDecoder(t).DecodeStream(src, false, &out)
		require.ErrorIs(t, err, errBroken)
		require.Equal(t, int64(out.Len()), n)
		require.True(t, bytes.HasPrefix(input, out.Bytes()))
	})

	t.Run("write error", func(t *testing.T) {
		w := &limitedByteWriter{limit: 100}
		_, err := newTestDecoder(t, WithStreamBufferSize(TableSize)).DecodeStream(bytes.NewReader(encoded), false, w)
		require.ErrorIs(t, err, errSinkFailed)
	})

	t.Run("strict invalid code keeps prefix", func(t *testing.T) {
		stream := packCodes(t, []int{ClearTable, 'o', 'k', 400, EndOfData}, false)

		var out bytes.Buffer
		n, err := newTestDecoder(t, WithStrictCodes(true)).DecodeStream(bytes.NewReader(stream), false, &out)
		require.ErrorIs(t, err, ErrInvalidCode)
		require.Equal(t, int64(2), n)
		require.Equal(t, "ok", out.String())
	})

	t.Run("lenient invalid code", func(t *testing.T) {
		stream := packCodes(t, []int{ClearTable, 'o', 'k', 400, EndOfData}, false)

		var out bytes.Buffer
		n, err := newTestDecoder(t).DecodeStream(bytes.NewReader(stream), false, &out)
		require.NoError(t, err)
		require.Equal(t, int64(2), n)
		require.Equal(t, "ok", out.String())
	})
}
