package tones

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/pfcm/wavegen"
	"github.com/pfcm/wavegen/osc"
)

func TestCadence(t *testing.T) {
	// 3 samples on, 2 off at 1000 samples per second.
	g := osc.Sawtooth(1, osc.WithSampleRate(4))
	c := NewCadence(g, 1000, 3*time.Millisecond, 2*time.Millisecond)
	if p := c.Period(); p != 5 {
		t.Errorf("Period() = %d, want 5", p)
	}
	// The sawtooth carries on from where it stopped after each gap.
	want := []float64{0.5, -1, -0.5, 0, 0, 0, 0.5, -1, 0, 0, -0.5, 0, 0.5}
	for i, w := range want {
		if got := c.Next(); got != w {
			t.Errorf("sample %d = %v, want %v", i, got, w)
		}
	}
}

func TestCadenceSkipsEmptySegments(t *testing.T) {
	g := osc.Square(1, osc.WithSampleRate(1000))
	c := NewCadence(g, 1000, 0, time.Millisecond)
	for i := 0; i < 10; i++ {
		if got := c.Next(); got != 0 {
			t.Fatalf("sample %d = %v, want 0", i, got)
		}
	}
}

func TestCadenceContinuous(t *testing.T) {
	for _, segs := range [][]time.Duration{nil, {0, 0}} {
		c := NewCadence(osc.Square(1, osc.WithSampleRate(1000)), 1000, segs...)
		for i := 0; i < 10; i++ {
			if got := c.Next(); got != 1 {
				t.Fatalf("%v: sample %d = %v, want 1", segs, i, got)
			}
		}
	}
}

func TestCadenceReset(t *testing.T) {
	for _, c := range []*Cadence{
		NewCadence(osc.Sine(425, osc.WithSampleRate(8000), osc.WithPhase(10)), 8000,
			100*time.Millisecond, 50*time.Millisecond),
		GPORinging(8000),
	} {
		first := make([]float64, 2*c.Period())
		wavegen.Fill(c, first)

		c.SetFrequency(1000)
		c.SetAmplitude(0.25)
		c.SetPhase(90)
		c.Next()

		c.Reset()
		second := make([]float64, len(first))
		wavegen.Fill(c, second)
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("%v: sample %d after Reset = %v, want %v", c, i, second[i], first[i])
			}
		}
	}
}

func TestCadenceForwardsParameters(t *testing.T) {
	g := osc.Sine(425)
	c := NewCadence(g, 8000, time.Millisecond, time.Millisecond)
	c.SetFrequency(1000)
	c.SetAmplitude(0.25)
	c.SetPhase(90)
	if g.Frequency() != 1000 || g.Amplitude() != 0.25 || g.Phase() != 90 {
		t.Errorf("wrapped %v has amplitude %v phase %v, want 1000Hz 0.25 90", g, g.Amplitude(), g.Phase())
	}
	if c.Frequency() != 1000 || c.Amplitude() != 0.25 || c.Phase() != 90 {
		t.Errorf("Cadence getters = %v, %v, %v", c.Frequency(), c.Amplitude(), c.Phase())
	}
	c.Reset()
	if g.Frequency() != 425 || g.Amplitude() != 1 || g.Phase() != 0 {
		t.Errorf("after Reset wrapped %v has amplitude %v phase %v, want 425Hz 1 0", g, g.Amplitude(), g.Phase())
	}
}

func TestRingingSilence(t *testing.T) {
	const sr = 8000
	for _, c := range []struct {
		name    string
		c       *Cadence
		on, off int
	}{
		{"US", USRinging(sr), 2 * sr, 4 * sr},
		{"ETSI", ETSIRinging(sr), sr, 3 * sr},
	} {
		if got := c.c.Period(); got != c.on+c.off {
			t.Errorf("%s: Period() = %d, want %d", c.name, got, c.on+c.off)
		}
		s := make([]float64, c.on+c.off)
		wavegen.Fill(c.c, s)
		loud := 0
		for _, v := range s[:c.on] {
			if v != 0 {
				loud++
			}
		}
		if loud < c.on/2 {
			t.Errorf("%s: only %d of %d samples sounding while on", c.name, loud, c.on)
		}
		for i, v := range s[c.on:] {
			if v != 0 {
				t.Fatalf("%s: sample %d = %v during the off segment", c.name, c.on+i, v)
			}
		}
	}
}

func TestDial(t *testing.T) {
	na := NADial(44100)
	c, ok := na.(*wavegen.Combinator)
	if !ok {
		t.Fatalf("NADial = %T, want a Combinator", na)
	}
	if got := c.String(); got != "(Sine(350Hz) + Sine(450Hz))" {
		t.Errorf("NADial = %v", got)
	}
	if got := ETSIDial(44100).Frequency(); got != 425 {
		t.Errorf("ETSIDial frequency = %v, want 425", got)
	}
	s := make([]float64, 44100)
	wavegen.Fill(GPODial(44100), s)
	for i, v := range s {
		if math.Abs(v) > 1+1e-9 {
			t.Fatalf("sample %d = %v, out of range", i, v)
		}
	}
}

func TestDTMF(t *testing.T) {
	for _, c := range []struct {
		key      rune
		row, col float64
	}{
		{'1', 697, 1209},
		{'5', 770, 1336},
		{'9', 852, 1477},
		{'0', 941, 1336},
		{'*', 941, 1209},
		{'#', 941, 1477},
		{'D', 941, 1633},
	} {
		row, col, err := DTMFFrequencies(c.key)
		if err != nil {
			t.Fatalf("DTMFFrequencies(%q): %v", c.key, err)
		}
		if row != c.row || col != c.col {
			t.Errorf("DTMFFrequencies(%q) = %v, %v, want %v, %v", c.key, row, col, c.row, c.col)
		}
		tone, err := DTMF(c.key, 8000)
		if err != nil {
			t.Fatalf("DTMF(%q): %v", c.key, err)
		}
		if tone.Leaves() != 2 {
			t.Errorf("DTMF(%q) has %d leaves, want 2", c.key, tone.Leaves())
		}
	}
	if _, err := DTMF('x', 8000); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("DTMF('x') error = %v, want %v", err, ErrUnknownKey)
	}
}
