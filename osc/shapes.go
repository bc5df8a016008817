package osc

import "math"

// Sine returns a sine wave generator at freq Hz.
func Sine(freq float64, opts ...Option) *Generator {
	return newGenerator(freq, newConfig(opts), &sine{})
}

// Square returns a square wave generator at freq Hz. It outputs the top of
// its range whenever the sine wave at the same frequency and phase is at or
// above the threshold, and the bottom otherwise.
func Square(freq float64, opts ...Option) *Generator {
	c := newConfig(opts)
	return newGenerator(freq, c, &square{threshold: c.threshold})
}

// Sawtooth returns a rising sawtooth generator at freq Hz.
func Sawtooth(freq float64, opts ...Option) *Generator {
	return newGenerator(freq, newConfig(opts), &sawtooth{})
}

// Triangle returns a triangle wave generator at freq Hz.
func Triangle(freq float64, opts ...Option) *Generator {
	return newGenerator(freq, newConfig(opts), &triangle{})
}

// sine steps through the angle in radians.
type sine struct {
	i        float64
	step     float64 // radians per sample
	phaseRad float64
}

func (s *sine) initialize() { s.i = 0 }

func (s *sine) frequencySet(g *Generator) {
	s.step = 2 * math.Pi * g.freq / g.sampleRate
}

func (s *sine) phaseSet(g *Generator) {
	s.phaseRad = g.phase / 360 * 2 * math.Pi
}

func (s *sine) advance() float64 {
	v := math.Sin(s.i + s.phaseRad)
	s.i += s.step
	return v
}

func (s *sine) next(g *Generator) float64 { return g.scale(s.advance()) }
func (*sine) name() string                { return "Sine" }

type square struct {
	sine
	threshold float64
}

// The two levels come straight from the range, so there is nothing to
// squish.
func (s *square) next(g *Generator) float64 {
	v := g.rng.Min
	if s.advance() >= s.threshold {
		v = g.rng.Max
	}
	return v * g.amp
}

func (*square) name() string { return "Square" }

// sawtooth counts whole samples and works out how far through the cycle it
// is. Working in cycles rather than samples per cycle keeps 0 Hz finite.
type sawtooth struct {
	i      float64
	rate   float64 // cycles per sample
	offset float64 // cycles
}

func (s *sawtooth) initialize() { s.i = 0 }

func (s *sawtooth) frequencySet(g *Generator) {
	s.rate = g.freq / g.sampleRate
}

func (s *sawtooth) phaseSet(g *Generator) {
	s.offset = (g.phase + 90) / 360
}

// advance returns the raw sawtooth in [-1, 1).
func (s *sawtooth) advance() float64 {
	div := s.i*s.rate + s.offset
	s.i++
	return 2 * (div - math.Floor(0.5+div))
}

func (s *sawtooth) next(g *Generator) float64 { return g.scale(s.advance()) }
func (*sawtooth) name() string                { return "Sawtooth" }

type triangle struct {
	sawtooth
}

func (t *triangle) next(g *Generator) float64 {
	v := (math.Abs(t.advance()) - 0.5) * 2
	return g.scale(v)
}

func (*triangle) name() string { return "Triangle" }
