package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pdflzw/lzw"
)

func TestRun_EncodeDecode(t *testing.T) {
	content := []byte(strings.Repeat("BT /F1 9 Tf (lzwtool) Tj ET\n", 300))

	for _, early := range []string{"-early=true", "-early=false"} {
		t.Run(early, func(t *testing.T) {
			var encoded, stderr bytes.Buffer
			err := run([]string{"encode", early, "-verify"}, bytes.NewReader(content), &encoded, &stderr)
			require.NoError(t, err)
			require.Contains(t, stderr.String(), "verified")
			require.Equal(t, lzw.Encode(content, early == "-early=true"), encoded.Bytes())

			var decoded bytes.Buffer
			stderr.Reset()
			err = run([]string{"decode", early}, &encoded, &decoded, &stderr)
			require.NoError(t, err)
			require.Equal(t, content, decoded.Bytes())
			require.Contains(t, stderr.String(), "decoded")
		})
	}
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "page.txt")
	enc := filepath.Join(dir, "page.lzw")
	dst := filepath.Join(dir, "page.out")

	content := []byte(strings.Repeat("0 0 1 rg 10 10 50 50 re f\n", 100))
	require.NoError(t, os.WriteFile(src, content, 0o600))

	var stderr bytes.Buffer
	require.NoError(t, run([]string{"encode", "-in", src, "-out", enc}, nil, nil, &stderr))
	require.NoError(t, run([]string{"decode", "-in", enc, "-out", dst}, nil, nil, &stderr))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, content, got)
}

func TestRun_Errors(t *testing.T) {
	var out, stderr bytes.Buffer

	require.Error(t, run(nil, nil, &out, &stderr))
	require.ErrorContains(t, run([]string{"compress"}, nil, &out, &stderr), "unknown command")
	require.Error(t, run([]string{"decode", "-verify"}, nil, &out, &stderr), "verify is an encode flag")
	require.Error(t, run([]string{"decode", "-in", filepath.Join(t.TempDir(), "missing")}, nil, &out, &stderr))

	err := run([]string{"decode", "-strict"}, bytes.NewReader([]byte{0xFF, 0xFF, 0xFF}), &out, &stderr)
	require.ErrorIs(t, err, lzw.ErrInvalidCode)
}
