// package osc provides oscillators.
package osc

import (
	"fmt"

	"github.com/pfcm/wavegen"
)

// DefaultSampleRate is used when no WithSampleRate option is given.
const DefaultSampleRate = 44100

// shape is the waveform-specific part of a Generator. It owns whatever
// stepping state the waveform needs and recomputes it when the Generator's
// frequency or phase changes.
type shape interface {
	// initialize zeroes the sample counters.
	initialize()
	frequencySet(g *Generator)
	phaseSet(g *Generator)
	next(g *Generator) float64
	name() string
}

// Generator is an oscillator producing a single waveform shape.
type Generator struct {
	initFreq, initAmp, initPhase float64
	freq, amp, phase             float64

	sampleRate float64
	rng        wavegen.Range

	shape shape
}

var _ wavegen.Oscillator = &Generator{}

type config struct {
	phase, amp float64
	sampleRate float64
	rng        wavegen.Range
	threshold  float64
}

// Option configures a Generator at construction.
type Option func(*config)

// WithPhase sets the initial phase in degrees.
func WithPhase(deg float64) Option { return func(c *config) { c.phase = deg } }

// WithAmplitude sets the initial amplitude. Negative values invert the
// waveform.
func WithAmplitude(a float64) Option { return func(c *config) { c.amp = a } }

// WithSampleRate sets the sample rate in samples per second. It must be
// positive.
func WithSampleRate(sr float64) Option { return func(c *config) { c.sampleRate = sr } }

// WithRange sets the declared output range. Samples are mapped from [-1, 1]
// into it before the amplitude is applied.
func WithRange(lo, hi float64) Option {
	return func(c *config) { c.rng = wavegen.Range{Min: lo, Max: hi} }
}

// WithThreshold sets the level the underlying sine has to reach for a Square
// to output its high value. Other shapes ignore it.
func WithThreshold(t float64) Option { return func(c *config) { c.threshold = t } }

func newConfig(opts []Option) config {
	c := config{
		amp:        1,
		sampleRate: DefaultSampleRate,
		rng:        wavegen.Unit,
	}
	for _, o := range opts {
		o(&c)
	}
	if !(c.sampleRate > 0) {
		panic(fmt.Errorf("osc: sample rate must be positive, got %v", c.sampleRate))
	}
	return c
}

func newGenerator(freq float64, c config, s shape) *Generator {
	g := &Generator{
		initFreq:   freq,
		initAmp:    c.amp,
		initPhase:  c.phase,
		freq:       freq,
		amp:        c.amp,
		phase:      c.phase,
		sampleRate: c.sampleRate,
		rng:        c.rng,
		shape:      s,
	}
	g.shape.initialize()
	g.SetFrequency(g.initFreq)
	g.SetPhase(g.initPhase)
	g.SetAmplitude(g.initAmp)
	return g
}

func (g *Generator) Next() float64 { return g.shape.next(g) }

func (g *Generator) Reset() {
	g.SetFrequency(g.initFreq)
	g.SetPhase(g.initPhase)
	g.SetAmplitude(g.initAmp)
	g.shape.initialize()
}

func (g *Generator) Rewind() { g.shape.initialize() }

func (g *Generator) Frequency() float64 { return g.freq }

func (g *Generator) SetFrequency(hz float64) {
	g.freq = hz
	g.shape.frequencySet(g)
}

func (g *Generator) Amplitude() float64 { return g.amp }

func (g *Generator) SetAmplitude(a float64) { g.amp = a }

func (g *Generator) Phase() float64 { return g.phase }

func (g *Generator) SetPhase(deg float64) {
	g.phase = deg
	g.shape.phaseSet(g)
}

// InitialFrequency, InitialAmplitude and InitialPhase are the values Reset
// returns to.
func (g *Generator) InitialFrequency() float64 { return g.initFreq }
func (g *Generator) InitialAmplitude() float64 { return g.initAmp }
func (g *Generator) InitialPhase() float64     { return g.initPhase }

func (g *Generator) SampleRate() float64 { return g.sampleRate }

func (g *Generator) Range() wavegen.Range { return g.rng }

// Shape is the name of the waveform, e.g. "Sine".
func (g *Generator) Shape() string { return g.shape.name() }

func (g *Generator) Combine(other wavegen.Oscillator) (*wavegen.Combinator, error) {
	return wavegen.Combine(g, other)
}

func (g *Generator) String() string {
	return fmt.Sprintf("%s(%gHz)", g.shape.name(), g.freq)
}

// scale moves v from [-1, 1] into the declared range, if that differs, and
// applies the amplitude.
func (g *Generator) scale(v float64) float64 {
	if g.rng != wavegen.Unit {
		v = wavegen.Squish(v, g.rng.Min, g.rng.Max)
	}
	return v * g.amp
}
