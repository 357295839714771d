package fastinput

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// load reads the byte source to exhaustion and applies the construction
// options. Any failure here is a source error: construction does not
// complete.
func load(r io.Reader, o options) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, o.bufferSize))
	if _, err := buf.ReadFrom(r); err != nil {
		panic(fmt.Errorf("fastinput: %w: %v", ErrSource, err))
	}
	data := buf.Bytes()
	if o.decompress {
		data = decompress(data)
	}
	if o.validateUTF8 && !utf8.Valid(data) {
		panic(fmt.Errorf("fastinput: %w: input is not valid UTF-8", ErrSource))
	}
	return data
}

// decompress inflates a gzip or zstd payload, detected by magic bytes.
// Anything else passes through untouched.
func decompress(data []byte) []byte {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			panic(fmt.Errorf("fastinput: %w: gzip: %v", ErrSource, err))
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			panic(fmt.Errorf("fastinput: %w: gzip: %v", ErrSource, err))
		}
		return out
	case bytes.HasPrefix(data, zstdMagic):
		dec, err := zstd.NewReader(nil)
		if err != nil {
			panic(fmt.Errorf("fastinput: %w: zstd: %v", ErrSource, err))
		}
		defer dec.Close()
		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			panic(fmt.Errorf("fastinput: %w: zstd: %v", ErrSource, err))
		}
		return out
	}
	return data
}
