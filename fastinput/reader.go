package fastinput

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"unsafe"
)

// DefaultBufferSize is the initial capacity of the read buffer. Purely a
// performance hint; the buffer grows as needed.
const DefaultBufferSize = 8196

// Input is a buffered line/token reader. It holds the entire input as one
// immutable byte buffer and a single cursor marking how much has been
// consumed. The cursor only ever moves forward.
//
// An Input is not safe for concurrent use: every read advances the cursor.
// Construct one Input per goroutine or synchronize externally.
type Input struct {
	data []byte
	pos  int
}

type options struct {
	bufferSize   int
	validateUTF8 bool
	decompress   bool
}

// Option configures Input construction.
type Option func(*options)

// WithBufferSize sets the initial capacity of the read buffer.
// It has no semantic effect.
func WithBufferSize(n int) Option {
	return func(o *options) { o.bufferSize = n }
}

// WithUTF8Validation checks at construction that the loaded bytes are
// well-formed UTF-8, panicking with ErrSource if they are not. Off by
// default: lines are raw views into the buffer and invalid bytes pass
// through undetected.
func WithUTF8Validation() Option {
	return func(o *options) { o.validateUTF8 = true }
}

// WithDecompression transparently decompresses gzip- or zstd-compressed
// sources, detected by their magic bytes. Uncompressed input passes through
// untouched.
func WithDecompression() Option {
	return func(o *options) { o.decompress = true }
}

// New reads all of standard input and returns an Input over it. It blocks
// until stdin reaches EOF (Ctrl+D on a terminal). Panics with an error
// wrapping ErrSource if the read fails.
func New(opts ...Option) *Input {
	return NewFromReader(os.Stdin, opts...)
}

// NewFromReader reads r to exhaustion and returns an Input over the result.
// Panics with an error wrapping ErrSource if the read fails.
func NewFromReader(r io.Reader, opts ...Option) *Input {
	o := options{bufferSize: DefaultBufferSize}
	for _, opt := range opts {
		opt(&o)
	}
	return &Input{data: load(r, o)}
}

// HasMore reports whether at least one more line can be read. This is the
// sole exhaustion predicate: trailing bytes after the last newline still
// count as one more line.
func (in *Input) HasMore() bool {
	return in.pos != len(in.data)
}

// NextLine returns the next line, without its newline, and advances the
// cursor past it. The final line may lack a terminating newline; it is
// returned as-is up to end-of-data.
//
// The returned string is a view into the input buffer, not a copy.
//
// Panics with an error wrapping ErrExhausted if no data remains; check
// HasMore first when that is possible.
func (in *Input) NextLine() string {
	if !in.HasMore() {
		panic(fmt.Errorf("fastinput: %w", ErrExhausted))
	}
	if n := bytes.IndexByte(in.data[in.pos:], '\n'); n >= 0 {
		line := in.view(in.pos, in.pos+n)
		in.pos += n + 1
		return line
	}
	line := in.view(in.pos, len(in.data))
	in.pos = len(in.data)
	return line
}

// Lines returns a forward-only sequence of the remaining lines. Ranging over
// it consumes the reader; it terminates when the input is exhausted and is
// not restartable.
func (in *Input) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for in.HasMore() {
			if !yield(in.NextLine()) {
				return
			}
		}
	}
}

// NextSplit consumes one line, trims whitespace from its ends, and returns
// the remainder split on single spaces, in order. Runs of spaces produce
// empty tokens between them; a line that trims to nothing yields exactly one
// empty token. The split is lazy but the line is consumed immediately.
//
// Panics with an error wrapping ErrExhausted if no data remains.
func (in *Input) NextSplit() iter.Seq[string] {
	return strings.SplitSeq(strings.TrimSpace(in.NextLine()), " ")
}

// view returns data[lo:hi] as a string without copying. The buffer is never
// mutated after construction, so the view stays valid for the lifetime of
// the Input.
func (in *Input) view(lo, hi int) string {
	if lo == hi {
		return ""
	}
	return unsafe.String(&in.data[lo], hi-lo)
}
