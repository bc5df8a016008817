// show-osc prints the first few samples of an oscillator, mostly for
// checking what a combination of generators actually produces.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pfcm/wavegen"
	"github.com/pfcm/wavegen/osc"
	"github.com/pfcm/wavegen/render"
	"github.com/pfcm/wavegen/tones"
)

var (
	shapesFlag    = flag.String("shapes", "sine", "comma separated list of `shapes` to combine, left to right. Available shapes are: "+strings.Join(shapeKeys, ", "))
	freqsFlag     = flag.String("freqs", "440", "comma separated `frequencies` in Hz, one per shape")
	rateFlag      = flag.Float64("rate", osc.DefaultSampleRate, "sample rate in samples per second")
	nFlag         = flag.Int("n", 16, "number of samples to show")
	rangeFlag     = flag.String("range", "-1,1", "`min,max` declared range of every generator")
	phaseFlag     = flag.Float64("phase", 0, "phase of every generator in degrees")
	ampFlag       = flag.Float64("amp", 1, "amplitude of every generator")
	thresholdFlag = flag.Float64("threshold", 0, "threshold for square waves")
	toneFlag      = flag.String("tone", "", "show a telephone `tone` instead: na-dial, etsi-dial, gpo-dial, us-ring, etsi-ring, gpo-ring or dtmf-<key>")
	int16Flag     = flag.Bool("int16", false, "also show the samples scaled to 16 bits by their peak")
	channelsFlag  = flag.Int("channels", 1, "number of output channels to copy the samples to")
)

var shapes = map[string]func(float64, ...osc.Option) *osc.Generator{
	"sine":     osc.Sine,
	"square":   osc.Square,
	"sawtooth": osc.Sawtooth,
	"triangle": osc.Triangle,
}

var shapeKeys = []string{"sine", "square", "sawtooth", "triangle"}

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		fmt.Fprintln(flag.CommandLine.Output(), "\nOptional arguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("show-osc: ")

	if flag.NArg() != 0 {
		fail("Unexpected arguments.")
	}
	if *nFlag < 0 {
		fail("-n must not be negative.")
	}
	if *channelsFlag < 1 {
		fail("-channels must be at least 1.")
	}

	var (
		o   wavegen.Oscillator
		err error
	)
	if *toneFlag != "" {
		o, err = tone(*toneFlag, *rateFlag)
	} else {
		o, err = build(*shapesFlag, *freqsFlag, *rangeFlag)
	}
	if err != nil {
		fail(err.Error())
	}
	log.Printf("%v, range %v", o, o.Range())

	chans := *channelsFlag
	frames := render.Interleaved(wavegen.NewBlock(o, chans), *nFlag)

	w := tabwriter.NewWriter(os.Stdout, 8, 1, 1, ' ', tabwriter.AlignRight)
	var scaled []int16
	if *int16Flag {
		scaled = render.PeakInt16(frames)
	}
	for i := 0; i < *nFlag; i++ {
		fmt.Fprintf(w, "%d\t", i)
		for c := 0; c < chans; c++ {
			fmt.Fprintf(w, "%.6f\t", frames[i*chans+c])
			if scaled != nil {
				fmt.Fprintf(w, "%d\t", scaled[i*chans+c])
			}
		}
		fmt.Fprintf(w, " %s\n", bar(float64(frames[i*chans]), o.Range()))
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}

func tone(name string, rate float64) (wavegen.Oscillator, error) {
	if key, ok := strings.CutPrefix(name, "dtmf-"); ok {
		if len([]rune(key)) != 1 {
			return nil, fmt.Errorf("dtmf tone needs exactly one key, got %q", key)
		}
		return tones.DTMF([]rune(key)[0], rate)
	}
	switch name {
	case "na-dial":
		return tones.NADial(rate), nil
	case "etsi-dial":
		return tones.ETSIDial(rate), nil
	case "gpo-dial":
		return tones.GPODial(rate), nil
	case "us-ring":
		return tones.USRinging(rate), nil
	case "etsi-ring":
		return tones.ETSIRinging(rate), nil
	case "gpo-ring":
		return tones.GPORinging(rate), nil
	}
	return nil, fmt.Errorf("unknown tone %q", name)
}

// build makes one generator per shape and combines them left to right.
func build(shapeList, freqList, rng string) (wavegen.Oscillator, error) {
	names := strings.Split(shapeList, ",")
	freqs, err := parseFloats(freqList)
	if err != nil {
		return nil, err
	}
	if len(freqs) != len(names) {
		return nil, fmt.Errorf("got %d shapes but %d frequencies", len(names), len(freqs))
	}
	bounds, err := parseFloats(rng)
	if err != nil {
		return nil, err
	}
	if len(bounds) != 2 {
		return nil, fmt.Errorf("range needs exactly two values, got %q", rng)
	}
	opts := []osc.Option{
		osc.WithSampleRate(*rateFlag),
		osc.WithRange(bounds[0], bounds[1]),
		osc.WithPhase(*phaseFlag),
		osc.WithAmplitude(*ampFlag),
		osc.WithThreshold(*thresholdFlag),
	}

	var root wavegen.Oscillator
	for i, n := range names {
		mk, ok := shapes[strings.TrimSpace(n)]
		if !ok {
			return nil, fmt.Errorf("unknown shape %q", n)
		}
		g := mk(freqs[i], opts...)
		if root == nil {
			root = g
			continue
		}
		if root, err = root.Combine(g); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// bar draws v as a row of a crude plot across r.
func bar(v float64, r wavegen.Range) string {
	const width = 40
	if r.Span() == 0 {
		return ""
	}
	pos := int((v - r.Min) / r.Span() * width)
	pos = max(0, min(width, pos))
	return "|" + strings.Repeat(" ", pos) + "*" + strings.Repeat(" ", width-pos) + "|"
}

func fail(reason string) {
	fmt.Fprintln(os.Stderr, reason)
	fmt.Fprintln(os.Stderr, help)
	os.Exit(1)
}

const help = `show-osc prints samples from a combination of oscillators.
Usage:
	show-osc [-shapes sine,square] [-freqs 440,3] [-n 16]
	show-osc -tone dtmf-5

Each shape is paired with the frequency at the same position and the
generators are combined left to right, so three shapes give ((a+b)+c).
`
