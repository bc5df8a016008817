package wavegen

import (
	"fmt"
	"math"
)

// Combinator mixes two oscillators, either of which may itself be a
// Combinator, into one stream.
//
// Each child's samples are rescaled from the child's declared range into the
// Combinator's range, which spans both children. The rescaled samples are
// then averaged, weighted by the number of plain oscillators (leaves) under
// each child. A nested Combinator already divided by its own leaf count, so
// its contribution is multiplied back up by that count before the final
// divide.
//
// The weighting only balances trees built by repeatedly combining in one
// direction, like ((a+b)+c)+d. Other shapes over the same leaves mix with
// different relative weights.
//
// A Combinator has no frequency, amplitude or phase of its own. The getters
// return 0 and the setters do nothing.
type Combinator struct {
	a, b   Oscillator
	ra, rb Range
	rng    Range

	aSpan, bSpan, span float64

	aLeaves, bLeaves, leaves int
}

var _ Oscillator = &Combinator{}

// Combine builds a Combinator over a and b. Both children are rewound. It
// returns ErrZeroSpan if either child declares a range with no width.
func Combine(a, b Oscillator) (*Combinator, error) {
	if a == nil || b == nil {
		return nil, ErrNilOscillator
	}
	ra, rb := a.Range(), b.Range()
	for _, c := range []struct {
		o Oscillator
		r Range
	}{{a, ra}, {b, rb}} {
		if s := c.r.Span(); s == 0 || math.IsNaN(s) {
			return nil, fmt.Errorf("combining %v with range %v: %w", c.o, c.r, ErrZeroSpan)
		}
	}
	a.Rewind()
	b.Rewind()

	rng := Range{
		Min: min(ra.Min, ra.Max, rb.Min, rb.Max),
		Max: max(ra.Min, ra.Max, rb.Min, rb.Max),
	}
	c := &Combinator{
		a:       a,
		b:       b,
		ra:      ra,
		rb:      rb,
		rng:     rng,
		aSpan:   ra.Span(),
		bSpan:   rb.Span(),
		span:    rng.Span(),
		aLeaves: leaves(a),
		bLeaves: leaves(b),
	}
	c.leaves = c.aLeaves + c.bLeaves
	return c, nil
}

func leaves(o Oscillator) int {
	if c, ok := o.(*Combinator); ok {
		return c.leaves
	}
	return 1
}

// rescale maps v from r (with width span) into the Combinator's range.
func (c *Combinator) rescale(v float64, r Range, span float64) float64 {
	return ((v-r.Min)*c.span)/span + c.rng.Min
}

func (c *Combinator) Next() float64 {
	a := c.rescale(c.a.Next(), c.ra, c.aSpan)
	b := c.rescale(c.b.Next(), c.rb, c.bSpan)
	if c.aLeaves > 1 {
		a *= float64(c.aLeaves)
	}
	if c.bLeaves > 1 {
		b *= float64(c.bLeaves)
	}
	return (a + b) / float64(c.leaves)
}

// Reset resets both children.
func (c *Combinator) Reset() {
	c.a.Reset()
	c.b.Reset()
}

// Rewind rewinds both children.
func (c *Combinator) Rewind() {
	c.a.Rewind()
	c.b.Rewind()
}

// Leaves returns the total leaf count used to weight the mix.
func (c *Combinator) Leaves() int { return c.leaves }

// Children returns the two combined oscillators.
func (c *Combinator) Children() (Oscillator, Oscillator) { return c.a, c.b }

func (c *Combinator) Range() Range { return c.rng }

func (*Combinator) Frequency() float64   { return 0 }
func (*Combinator) Amplitude() float64   { return 0 }
func (*Combinator) Phase() float64       { return 0 }
func (*Combinator) SetFrequency(float64) {}
func (*Combinator) SetAmplitude(float64) {}
func (*Combinator) SetPhase(float64)     {}

func (c *Combinator) Combine(other Oscillator) (*Combinator, error) {
	return Combine(c, other)
}

func (c *Combinator) String() string {
	return fmt.Sprintf("(%v + %v)", c.a, c.b)
}
