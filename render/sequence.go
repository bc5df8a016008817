package render

import (
	"time"

	"github.com/pfcm/wavegen"
)

// Step is one window of a Sequence: play at Freq Hz for Dur.
type Step struct {
	Freq float64
	Dur  time.Duration
}

// Sequence sets o's frequency at the start of each step and pulls that
// step's worth of samples. o keeps running between steps, so there is no
// phase reset at the boundaries. It is left at the last step's frequency.
func Sequence(o wavegen.Oscillator, sampleRate float64, steps ...Step) []float64 {
	n := 0
	for _, s := range steps {
		n += wavegen.DurationSamples(s.Dur, sampleRate)
	}
	out := make([]float64, 0, n)
	for _, s := range steps {
		o.SetFrequency(s.Freq)
		out = append(out, Samples(o, wavegen.DurationSamples(s.Dur, sampleRate))...)
	}
	return out
}

// Mix averages already rendered streams sample by sample. The result is as
// long as the shortest stream. Unlike a Combinator it does no rescaling or
// leaf weighting: every stream counts the same.
func Mix(streams ...[]float64) []float64 {
	if len(streams) == 0 {
		return nil
	}
	n := len(streams[0])
	for _, s := range streams[1:] {
		n = min(n, len(s))
	}
	out := make([]float64, n)
	for _, s := range streams {
		for i := range out {
			out[i] += s[i]
		}
	}
	k := float64(len(streams))
	for i := range out {
		out[i] /= k
	}
	return out
}

// Interleaved ticks t once for frames frames and returns its output
// channels interleaved, frame by frame, as float32.
func Interleaved(t wavegen.Ticker, frames int) []float32 {
	in := make([][]float64, t.Inputs())
	for i := range in {
		in[i] = make([]float64, frames)
	}
	chans := make([][]float64, t.Outputs())
	for i := range chans {
		chans[i] = make([]float64, frames)
	}
	t.Tick(in, chans)

	out := make([]float32, 0, frames*len(chans))
	for i := 0; i < frames; i++ {
		for _, c := range chans {
			out = append(out, float32(c[i]))
		}
	}
	return out
}
