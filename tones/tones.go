// package tones builds telephone call progress tones and DTMF digits out of
// sine oscillators.
package tones

import (
	"errors"
	"fmt"
	"time"

	"github.com/pfcm/wavegen"
	"github.com/pfcm/wavegen/osc"
)

// ErrUnknownKey is returned by DTMF for a key that isn't on the keypad.
var ErrUnknownKey = errors.New("tones: unknown DTMF key")

// pair mixes two sines. Both are in the unit range so combining can't fail.
func pair(f1, f2, sampleRate float64) *wavegen.Combinator {
	c, err := wavegen.Combine(
		osc.Sine(f1, osc.WithSampleRate(sampleRate)),
		osc.Sine(f2, osc.WithSampleRate(sampleRate)),
	)
	if err != nil {
		panic(fmt.Errorf("tones: combining %v and %v: %w", f1, f2, err))
	}
	return c
}

// NADial is the North American dial tone.
func NADial(sampleRate float64) wavegen.Oscillator { return pair(350, 450, sampleRate) }

// ETSIDial is the ETSI dial tone.
func ETSIDial(sampleRate float64) wavegen.Oscillator {
	return osc.Sine(425, osc.WithSampleRate(sampleRate))
}

// GPODial is the GPO dial tone.
func GPODial(sampleRate float64) wavegen.Oscillator { return pair(350, 450, sampleRate) }

// USRinging is the US ringing tone: 2s on, 4s off.
func USRinging(sampleRate float64) *Cadence {
	return NewCadence(pair(440, 480, sampleRate), sampleRate, 2*time.Second, 4*time.Second)
}

// ETSIRinging is the ETSI ringing tone: 1s on, 3s off.
func ETSIRinging(sampleRate float64) *Cadence {
	return NewCadence(osc.Sine(425, osc.WithSampleRate(sampleRate)), sampleRate, time.Second, 3*time.Second)
}

// GPORinging is the GPO double ring.
func GPORinging(sampleRate float64) *Cadence {
	return NewCadence(pair(400, 450, sampleRate), sampleRate,
		400*time.Millisecond, 200*time.Millisecond,
		400*time.Millisecond, 2*time.Second,
	)
}

var (
	dtmfRows = [4]float64{697, 770, 852, 941}
	dtmfCols = [4]float64{1209, 1336, 1477, 1633}
	keypad   = [4][4]rune{
		{'1', '2', '3', 'A'},
		{'4', '5', '6', 'B'},
		{'7', '8', '9', 'C'},
		{'*', '0', '#', 'D'},
	}
)

// DTMFFrequencies returns the row and column frequencies of a keypad key.
func DTMFFrequencies(key rune) (row, col float64, err error) {
	for r, keys := range keypad {
		for c, k := range keys {
			if k == key {
				return dtmfRows[r], dtmfCols[c], nil
			}
		}
	}
	return 0, 0, fmt.Errorf("%w %q", ErrUnknownKey, key)
}

// DTMF returns the dual tone for a keypad key: 0-9, *, # or A-D.
func DTMF(key rune, sampleRate float64) (*wavegen.Combinator, error) {
	row, col, err := DTMFFrequencies(key)
	if err != nil {
		return nil, err
	}
	return pair(row, col, sampleRate), nil
}
