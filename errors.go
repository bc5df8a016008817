package wavegen

import "errors"

var (
	// ErrZeroSpan indicates a Combinator child whose declared range has no
	// width, so its samples can't be rescaled.
	ErrZeroSpan = errors.New("wavegen: wave range has zero span")

	// ErrNilOscillator indicates a nil child passed to Combine.
	ErrNilOscillator = errors.New("wavegen: nil oscillator")
)
