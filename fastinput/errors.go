package fastinput

import "errors"

// Fatal conditions. Every failure panics with an error wrapping one of
// these sentinels; recover + errors.Is classifies it.
var (
	// ErrExhausted reports a line read on an already-exhausted reader.
	ErrExhausted = errors.New("input exhausted")

	// ErrArity reports a fixed-arity read that found fewer tokens on the
	// line than it required.
	ErrArity = errors.New("too few tokens on line")

	// ErrDecode reports a token whose text does not parse into the
	// requested type.
	ErrDecode = errors.New("token decode failed")

	// ErrSource reports a byte-source failure during the one-time read at
	// construction, including UTF-8 validation and decompression failures.
	ErrSource = errors.New("reading input source failed")
)
