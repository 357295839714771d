package fastinput

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func zstdBytes(t *testing.T, s string) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll([]byte(s), nil)
}

func TestDecompression_Gzip(t *testing.T) {
	src := gzipBytes(t, "1 2\n3 4")
	in := NewFromReader(bytes.NewReader(src), WithDecompression())
	a, b := NextTuple[int, int](in)
	c, d := NextTuple[int, int](in)
	assert.Equal(t, []int{1, 2, 3, 4}, []int{a, b, c, d})
	assert.False(t, in.HasMore())
}

func TestDecompression_Zstd(t *testing.T) {
	src := zstdBytes(t, "alpha beta\ngamma")
	in := NewFromReader(bytes.NewReader(src), WithDecompression())
	assert.Equal(t, []string{"alpha", "beta"}, slices.Collect(in.NextSplit()))
	assert.Equal(t, "gamma", in.NextLine())
}

func TestDecompression_PlainPassthrough(t *testing.T) {
	in := fromString("plain text", WithDecompression())
	assert.Equal(t, "plain text", in.NextLine())
}

func TestDecompression_CorruptGzip(t *testing.T) {
	src := append([]byte{0x1f, 0x8b}, []byte("not gzip at all")...)
	requirePanicsIs(t, ErrSource, func() {
		NewFromReader(bytes.NewReader(src), WithDecompression())
	})
}

func TestDecompression_Off(t *testing.T) {
	// Without the option, compressed bytes are served verbatim.
	src := gzipBytes(t, "1 2\n3 4")
	in := NewFromReader(bytes.NewReader(src))
	assert.True(t, in.HasMore())
	requirePanicsIs(t, ErrDecode, func() { Next[int](in) })
}

func TestUTF8Validation(t *testing.T) {
	requirePanicsIs(t, ErrSource, func() {
		NewFromReader(bytes.NewReader([]byte{'h', 'i', 0xff}), WithUTF8Validation())
	})
}

func TestUTF8Validation_ValidInput(t *testing.T) {
	in := fromString("héllo wörld", WithUTF8Validation())
	assert.Equal(t, []string{"héllo", "wörld"}, slices.Collect(in.NextSplit()))
}

func TestUTF8Validation_OffByDefault(t *testing.T) {
	// Invalid bytes pass through undetected without the strictness toggle.
	in := NewFromReader(bytes.NewReader([]byte{0xff, 0xfe}))
	assert.True(t, in.HasMore())
	in.NextLine()
	assert.False(t, in.HasMore())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestSourceIOError(t *testing.T) {
	requirePanicsIs(t, ErrSource, func() { NewFromReader(failingReader{}) })
}

type partialFailReader struct {
	data string
	done bool
}

func (r *partialFailReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, errors.New("disk on fire")
	}
	r.done = true
	return copy(p, r.data), nil
}

func TestSourceIOError_MidRead(t *testing.T) {
	// A failure after some bytes were produced still aborts construction.
	requirePanicsIs(t, ErrSource, func() {
		NewFromReader(&partialFailReader{data: strings.Repeat("x", 10)})
	})
}
