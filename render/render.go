// package render pulls blocks of samples out of oscillators.
package render

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"github.com/pfcm/wavegen"
)

// ChunkSize is the default number of samples per chunk.
const ChunkSize = 256

// ErrShared is returned by Concurrently when the same tree is passed twice.
var ErrShared = errors.New("render: oscillator rendered from more than one goroutine")

// Samples pulls n samples from o.
func Samples(o wavegen.Oscillator, n int) []float64 {
	buf := make([]float64, n)
	wavegen.Fill(o, buf)
	return buf
}

// Duration pulls d worth of samples from o at the given sample rate, rounded
// to the nearest sample.
func Duration(o wavegen.Oscillator, d time.Duration, sampleRate float64) []float64 {
	return Samples(o, wavegen.DurationSamples(d, sampleRate))
}

// Chunks repeatedly fills a buffer of size samples from o and hands it to fn.
// The buffer is reused between calls. It stops when ctx is done, when fn
// returns an error, or once limit samples have been produced; the final
// chunk may be short. A limit <= 0 means no limit. A size <= 0 means
// ChunkSize.
func Chunks(ctx context.Context, o wavegen.Oscillator, size, limit int, fn func([]float32) error) error {
	if size <= 0 {
		size = ChunkSize
	}
	buf := make([]float32, size)
	for done := 0; limit <= 0 || done < limit; done += len(buf) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if limit > 0 {
			buf = buf[:min(size, limit-done)]
		}
		wavegen.Fill(o, buf)
		if err := fn(buf); err != nil {
			return err
		}
	}
	return nil
}

// Concurrently renders n samples from each of the trees, each on its own
// goroutine. A non-positive n renders nothing. The trees must be
// independent: no oscillator may appear in more than one of them. Passing
// the same root twice returns ErrShared.
func Concurrently(ctx context.Context, n int, trees ...wavegen.Oscillator) ([][]float32, error) {
	seen := make(map[wavegen.Oscillator]bool, len(trees))
	for _, t := range trees {
		if seen[t] {
			return nil, fmt.Errorf("%v: %w", t, ErrShared)
		}
		seen[t] = true
	}

	out := make([][]float32, len(trees))
	if n <= 0 {
		return out, nil
	}
	g, ctx := errgroup.WithContext(ctx)
	for i, t := range trees {
		i, t := i, t
		g.Go(func() error {
			buf := make([]float32, 0, n)
			err := Chunks(ctx, t, ChunkSize, n, func(c []float32) error {
				buf = append(buf, c...)
				return nil
			})
			if err != nil {
				return fmt.Errorf("rendering %v: %w", t, err)
			}
			out[i] = buf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Peak returns the largest absolute value in samples.
func Peak[T constraints.Float](samples []T) T {
	var p T
	for _, s := range samples {
		p = max(p, T(math.Abs(float64(s))))
	}
	return p
}

// PeakInt16 scales samples so the loudest one sits at +/-32767. Silence
// stays silent.
func PeakInt16[T constraints.Float](samples []T) []int16 {
	out := make([]int16, len(samples))
	p := Peak(samples)
	if p == 0 {
		return out
	}
	for i, s := range samples {
		out[i] = int16(float64(s) / float64(p) * math.MaxInt16)
	}
	return out
}
