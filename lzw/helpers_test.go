package lzw

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pdflzw/bitstream"
)

// tracedCode is a code together with the bit width it occupies in the stream.
type tracedCode struct {
	code  int
	width int
}

// codeWidths tracks the code length a conforming decoder uses for each code.
type codeWidths struct {
	earlyChange bool
	width       int
	next        int
	first       bool
}

func newCodeWidths(earlyChange bool) *codeWidths {
	w := &codeWidths{earlyChange: earlyChange}
	w.clear()

	return w
}

func (w *codeWidths) clear() {
	w.width = MinCodeLength
	w.next = FirstCode
	w.first = true
}

// observe updates the width after code has been consumed.
func (w *codeWidths) observe(code int) {
	switch code {
	case ClearTable:
		w.clear()
		return
	case EndOfData:
		return
	}

	if w.first {
		w.first = false
	} else if w.next < TableSize {
		w.next++
	}

	limit := 1 << w.width
	if w.earlyChange {
		limit--
	}
	if w.next >= limit && w.width < MaxCodeLength {
		w.width++
	}
}

// traceCodes splits a code stream into codes and their widths, stopping at
// EndOfData or at the end of input.
func traceCodes(t testing.TB, data []byte, earlyChange bool) []tracedCode {
	t.Helper()

	br := bitstream.NewBytesReader(data)
	widths := newCodeWidths(earlyChange)

	var out []tracedCode
	for {
		v, err := br.Fetch(widths.width)
		if err != nil {
			return out
		}
		code := int(v)
		out = append(out, tracedCode{code: code, width: widths.width})
		if code == EndOfData {
			return out
		}
		widths.observe(code)
	}
}

// packCodes writes codes at the widths a conforming decoder expects.
func packCodes(t testing.TB, codes []int, earlyChange bool) []byte {
	t.Helper()

	var buf bytes.Buffer
	bw := bitstream.NewWriter(&buf)
	widths := newCodeWidths(earlyChange)

	for _, code := range codes {
		require.NoError(t, bw.Write(uint32(code), widths.width)) //nolint:gosec // G115: test codes < 4096
		widths.observe(code)
	}
	require.NoError(t, bw.Flush())

	return buf.Bytes()
}

func codesOf(traced []tracedCode) []int {
	codes := make([]int, len(traced))
	for i, tc := range traced {
		codes[i] = tc.code
	}

	return codes
}

func countCode(traced []tracedCode, code int) int {
	n := 0
	for _, tc := range traced {
		if tc.code == code {
			n++
		}
	}

	return n
}

// testInputs returns a set of inputs covering the interesting shapes.
func testInputs() map[string][]byte {
	rng := rand.New(rand.NewPCG(42, 1024))

	random := make([]byte, 64*1024)
	for i := range random {
		random[i] = byte(rng.Uint32())
	}

	twoSymbols := make([]byte, 32*1024)
	for i := range twoSymbols {
		twoSymbols[i] = "ab"[rng.IntN(2)]
	}

	text := bytes.Repeat([]byte("BT /F1 12 Tf 72 712 Td (Hello, world) Tj ET\n"), 800)

	ascending := make([]byte, 256)
	for i := range ascending {
		ascending[i] = byte(i)
	}

	return map[string][]byte{
		"empty":        {},
		"single byte":  {'x'},
		"two bytes":    {'x', 'y'},
		"run":          bytes.Repeat([]byte{0}, 10000),
		"concrete":     []byte("AAABAAAB"),
		"kwkwk":        []byte("abababababababab"),
		"ascending":    ascending,
		"text":         text,
		"two symbols":  twoSymbols,
		"random 64KiB": random,
	}
}
