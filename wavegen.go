// package wavegen generates audio waveforms one sample at a time.
//
// Oscillators are stateful: every call to Next advances them by exactly one
// sample. They can be combined into binary trees with Combine, which mixes
// its children into a single shared output range.
package wavegen

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/constraints"
)

// Oscillator is something that produces an infinite stream of samples.
//
// An Oscillator is owned by a single caller; pulling from the same
// Oscillator in two places (including from two different Combinators)
// interleaves its internal state.
type Oscillator interface {
	// Next advances the oscillator by one sample and returns it.
	Next() float64
	// Reset re-applies the initial frequency, amplitude and phase and
	// returns to the start of the sequence.
	Reset()
	// Rewind returns to the start of the sequence without touching any
	// parameters.
	Rewind()

	Frequency() float64
	// SetFrequency sets the frequency in Hz. It takes effect from the next
	// sample.
	SetFrequency(hz float64)
	Amplitude() float64
	SetAmplitude(a float64)
	// Phase is in degrees.
	Phase() float64
	SetPhase(deg float64)

	// Range is the declared bounds of the output before amplitude scaling.
	Range() Range

	// Combine returns a new Combinator over the receiver and other.
	Combine(other Oscillator) (*Combinator, error)

	fmt.Stringer
}

// Range is a closed interval [Min, Max].
type Range struct {
	Min, Max float64
}

// Unit is the natural range of a waveform, [-1, 1].
var Unit = Range{Min: -1, Max: 1}

// Span is Max - Min.
func (r Range) Span() float64 { return r.Max - r.Min }

func (r Range) String() string { return fmt.Sprintf("[%g, %g]", r.Min, r.Max) }

// Squish maps v from [-1, 1] into [lo, hi] by linear interpolation. Values
// outside [-1, 1] are extrapolated.
func Squish[T constraints.Float](v, lo, hi T) T {
	return ((v+1)/2)*(hi-lo) + lo
}

// DurationSamples is the number of whole samples, rounded to nearest, that d
// lasts at sampleRate. Negative durations give 0.
func DurationSamples(d time.Duration, sampleRate float64) int {
	return max(0, int(math.Round(d.Seconds()*sampleRate)))
}
