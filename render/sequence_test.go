package render

import (
	"math"
	"testing"
	"time"

	"github.com/pfcm/wavegen"
	"github.com/pfcm/wavegen/osc"
)

func TestSequence(t *testing.T) {
	// 1000 samples per second so each millisecond is one sample.
	g := osc.Sawtooth(250, osc.WithSampleRate(1000))
	got := Sequence(g, 1000,
		Step{Freq: 250, Dur: 2 * time.Millisecond},
		Step{Freq: 125, Dur: 3 * time.Millisecond},
		Step{Freq: 0, Dur: 0},
		Step{Freq: 500, Dur: time.Millisecond},
	)
	// Same thing by hand.
	h := osc.Sawtooth(250, osc.WithSampleRate(1000))
	var want []float64
	want = append(want, h.Next(), h.Next())
	h.SetFrequency(125)
	want = append(want, h.Next(), h.Next(), h.Next())
	h.SetFrequency(500)
	want = append(want, h.Next())

	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
	if f := g.Frequency(); f != 500 {
		t.Errorf("Frequency() after Sequence = %v, want 500", f)
	}
}

func TestSequenceZeroCrossings(t *testing.T) {
	const sr = 8000
	s := Sequence(osc.Sine(1, osc.WithSampleRate(sr)), sr,
		Step{Freq: 100, Dur: time.Second},
		Step{Freq: 300, Dur: time.Second},
	)
	count := func(s []float64) int {
		n := 0
		for i := 1; i < len(s); i++ {
			if (s[i-1] < 0) != (s[i] < 0) {
				n++
			}
		}
		return n
	}
	if n := count(s[:sr]); n < 198 || n > 202 {
		t.Errorf("first second has %d zero crossings, want about 200", n)
	}
	if n := count(s[sr:]); n < 598 || n > 602 {
		t.Errorf("second second has %d zero crossings, want about 600", n)
	}
}

func TestMix(t *testing.T) {
	got := Mix([]float64{1, 2, 3, 4}, []float64{3, 0, -3}, []float64{2, 1, 0, 9, 9})
	want := []float64{2, 1, 0}
	if len(got) != len(want) {
		t.Fatalf("Mix = %v, want %v", got, want)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("Mix = %v, want %v", got, want)
			break
		}
	}
	if got := Mix(); got != nil {
		t.Errorf("Mix() = %v, want nil", got)
	}
}

func TestInterleaved(t *testing.T) {
	b := wavegen.NewBlock(osc.Sawtooth(1, osc.WithSampleRate(4)), 2)
	got := Interleaved(b, 4)
	want := []float32{0.5, 0.5, -1, -1, -0.5, -0.5, 0, 0}
	if len(got) != len(want) {
		t.Fatalf("Interleaved = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Interleaved = %v, want %v", got, want)
			break
		}
	}
}
