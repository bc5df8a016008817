package tones

import (
	"fmt"
	"time"

	"github.com/pfcm/wavegen"
)

// Cadence switches an oscillator on and off in a repeating pattern. The
// pattern alternates between on and off segments, starting with on. While
// off it outputs silence and does not pull from the wrapped oscillator, so
// each burst carries on from where the last one stopped.
type Cadence struct {
	osc     wavegen.Oscillator
	pattern []int // samples per segment
	total   int
	seg     int
	pos     int
}

var _ wavegen.Oscillator = &Cadence{}

// NewCadence wraps o. Segment durations are rounded to whole samples at
// sampleRate. With no segments, or only empty ones, o plays continuously.
func NewCadence(o wavegen.Oscillator, sampleRate float64, segments ...time.Duration) *Cadence {
	c := &Cadence{osc: o}
	for _, d := range segments {
		n := wavegen.DurationSamples(d, sampleRate)
		c.pattern = append(c.pattern, n)
		c.total += n
	}
	return c
}

func (c *Cadence) Next() float64 {
	if c.total == 0 {
		return c.osc.Next()
	}
	for c.pos >= c.pattern[c.seg] {
		c.pos = 0
		c.seg = (c.seg + 1) % len(c.pattern)
	}
	c.pos++
	if c.seg%2 == 1 {
		return 0
	}
	return c.osc.Next()
}

// Period is the length of the whole pattern in samples.
func (c *Cadence) Period() int { return c.total }

func (c *Cadence) Reset() {
	c.seg, c.pos = 0, 0
	c.osc.Reset()
}

func (c *Cadence) Rewind() {
	c.seg, c.pos = 0, 0
	c.osc.Rewind()
}

func (c *Cadence) Frequency() float64      { return c.osc.Frequency() }
func (c *Cadence) SetFrequency(hz float64) { c.osc.SetFrequency(hz) }
func (c *Cadence) Amplitude() float64      { return c.osc.Amplitude() }
func (c *Cadence) SetAmplitude(a float64)  { c.osc.SetAmplitude(a) }
func (c *Cadence) Phase() float64          { return c.osc.Phase() }
func (c *Cadence) SetPhase(deg float64)    { c.osc.SetPhase(deg) }
func (c *Cadence) Range() wavegen.Range    { return c.osc.Range() }
func (c *Cadence) String() string          { return fmt.Sprintf("Cadence(%v, %v)", c.osc, c.pattern) }

func (c *Cadence) Combine(other wavegen.Oscillator) (*wavegen.Combinator, error) {
	return wavegen.Combine(c, other)
}
