package fastinput

import (
	"encoding"
	"fmt"
	"iter"
	"strconv"
)

// Str is the zero-copy decode target for raw token text: its decode wraps
// the token verbatim, without allocating. Like every line and token, a Str
// is a view into the input buffer.
type Str string

// decode parses one token into a value of type T.
//
// The built-in targets are the integer widths, floats, bool, string and Str.
// Any other type decodes through encoding.TextUnmarshaler when *T implements
// it, so the set is open.
func decode[T any](tok string) (T, error) {
	var v T
	var err error
	switch p := any(&v).(type) {
	case *int:
		*p, err = strconv.Atoi(tok)
	case *int8:
		var n int64
		n, err = strconv.ParseInt(tok, 10, 8)
		*p = int8(n)
	case *int16:
		var n int64
		n, err = strconv.ParseInt(tok, 10, 16)
		*p = int16(n)
	case *int32:
		var n int64
		n, err = strconv.ParseInt(tok, 10, 32)
		*p = int32(n)
	case *int64:
		*p, err = strconv.ParseInt(tok, 10, 64)
	case *uint:
		var n uint64
		n, err = strconv.ParseUint(tok, 10, strconv.IntSize)
		*p = uint(n)
	case *uint8:
		var n uint64
		n, err = strconv.ParseUint(tok, 10, 8)
		*p = uint8(n)
	case *uint16:
		var n uint64
		n, err = strconv.ParseUint(tok, 10, 16)
		*p = uint16(n)
	case *uint32:
		var n uint64
		n, err = strconv.ParseUint(tok, 10, 32)
		*p = uint32(n)
	case *uint64:
		*p, err = strconv.ParseUint(tok, 10, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(tok, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(tok, 64)
	case *bool:
		*p, err = strconv.ParseBool(tok)
	case *string:
		*p = tok
	case *Str:
		*p = Str(tok)
	case encoding.TextUnmarshaler:
		err = p.UnmarshalText([]byte(tok))
	default:
		err = fmt.Errorf("unsupported target type %T", v)
	}
	return v, err
}

// mustDecode is decode with the fatal-error policy applied.
func mustDecode[T any](tok string) T {
	v, err := decode[T](tok)
	if err != nil {
		panic(fmt.Errorf("fastinput: %w: %q as %T: %v", ErrDecode, tok, v, err))
	}
	return v
}

// take collects the first n tokens of the next line. Extra tokens on the
// line are left unread (and discarded with it). Panics with an error
// wrapping ErrArity if the line has fewer than n tokens.
func take(in *Input, n int) []string {
	toks := make([]string, 0, n)
	for tok := range in.NextSplit() {
		toks = append(toks, tok)
		if len(toks) == n {
			break
		}
	}
	if len(toks) < n {
		panic(fmt.Errorf("fastinput: %w: wanted %d, line had %d", ErrArity, n, len(toks)))
	}
	return toks
}

// Next reads one line and returns its first token decoded as T.
//
//	// Input: 123
//	n := fastinput.Next[int](in)
//
// Panics on exhaustion or decode failure.
func Next[T any](in *Input) T {
	for tok := range in.NextSplit() {
		return mustDecode[T](tok)
	}
	panic(fmt.Errorf("fastinput: %w: wanted 1, line had 0", ErrArity))
}

// NextTuple reads one line and decodes its first two tokens positionally.
//
//	// Input: Sven 12
//	name, age := fastinput.NextTuple[fastinput.Str, uint8](in)
//
// Panics on exhaustion, fewer than two tokens, or decode failure.
func NextTuple[T1, T2 any](in *Input) (T1, T2) {
	t := take(in, 2)
	return mustDecode[T1](t[0]), mustDecode[T2](t[1])
}

// NextTriple reads one line and decodes its first three tokens positionally.
// Panics on exhaustion, fewer than three tokens, or decode failure.
func NextTriple[T1, T2, T3 any](in *Input) (T1, T2, T3) {
	t := take(in, 3)
	return mustDecode[T1](t[0]), mustDecode[T2](t[1]), mustDecode[T3](t[2])
}

// NextQuad reads one line and decodes its first four tokens positionally.
// Panics on exhaustion, fewer than four tokens, or decode failure.
func NextQuad[T1, T2, T3, T4 any](in *Input) (T1, T2, T3, T4) {
	t := take(in, 4)
	return mustDecode[T1](t[0]), mustDecode[T2](t[1]), mustDecode[T3](t[2]), mustDecode[T4](t[3])
}

// NextQuintuple reads one line and decodes its first five tokens
// positionally. Panics on exhaustion, fewer than five tokens, or decode
// failure.
func NextQuintuple[T1, T2, T3, T4, T5 any](in *Input) (T1, T2, T3, T4, T5) {
	t := take(in, 5)
	return mustDecode[T1](t[0]), mustDecode[T2](t[1]), mustDecode[T3](t[2]), mustDecode[T4](t[3]), mustDecode[T5](t[4])
}

// NextAsIter reads one line and returns its tokens decoded as T, lazily,
// left to right. The line is consumed when NextAsIter is called; decoding
// happens as the sequence is ranged over.
//
//	// Input: 1 2 3
//	nums := slices.Collect(fastinput.NextAsIter[int](in)) // [1 2 3]
//
// Panics on exhaustion at the call, or on decode failure mid-sequence.
func NextAsIter[T any](in *Input) iter.Seq[T] {
	tokens := in.NextSplit()
	return func(yield func(T) bool) {
		for tok := range tokens {
			if !yield(mustDecode[T](tok)) {
				return
			}
		}
	}
}
