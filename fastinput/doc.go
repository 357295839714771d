// Package fastinput implements a fast, zero-copy reader for
// whitespace/line-delimited textual input, aimed at competitive-programming
// style workloads where the input is known and correct.
//
// An Input reads its entire byte source once at construction and then hands
// out lines and tokens as views into that buffer, parsing them into typed
// values on demand. Input assumes *nix line endings (a bare '\n') and
// single-space token separators.
//
// # Model
//
// Three layers share one structure:
//   - Byte store: the whole input as one immutable []byte, loaded once.
//   - Cursor: a single monotonic offset; every line read advances it,
//     nothing rewinds it.
//   - Decoder: lines are split on literal single spaces and each token is
//     decoded into a caller-chosen type.
//
// # Fatal errors
//
// The domain contract is "input is known-correct", so nothing here is
// recoverable: reading past the end, finding fewer tokens than a fixed-arity
// read demands, or failing to decode a token all panic. The panic value is an
// error wrapping one of ErrExhausted, ErrArity, ErrDecode or ErrSource, so a
// caller that does recover can still classify the failure with errors.Is.
// Check HasMore before reading if exhaustion is expected.
//
// # Reading typed values
//
// Methods cannot take type parameters, so the typed readers are package-level
// functions over an *Input:
//
//	in := fastinput.NewFromReader(strings.NewReader("Sven 12\n3.5 true"))
//	name, age := fastinput.NextTuple[fastinput.Str, uint8](in)
//	x, ok := fastinput.NextTuple[float64, bool](in)
//
// Str is the zero-copy identity decode: it wraps the token text verbatim.
// Any type whose pointer implements encoding.TextUnmarshaler can also be used
// as a decode target, so the supported set is open.
//
// # Lazy sequences
//
// Lines, NextSplit and NextAsIter return iter.Seq values. They are
// forward-only and non-restartable: NextSplit and NextAsIter consume their
// line when called, and ranging over Lines consumes the reader.
//
//	for line := range in.Lines() {
//		fmt.Println(line)
//	}
package fastinput
