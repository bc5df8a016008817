package wavegen

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Fill pulls exactly len(buf) samples from o into buf.
func Fill[T constraints.Float](o Oscillator, buf []T) {
	for i := range buf {
		buf[i] = T(o.Next())
	}
}

// Ticker fills multichannel blocks. render.Interleaved drives one to
// produce frames for a sink that wants interleaved channels.
type Ticker interface {
	Inputs() int
	Outputs() int
	// Tick writes len(output[0]) frames. input has Inputs() channels and
	// output has Outputs() channels, all the same length.
	Tick(input, output [][]float64)

	fmt.Stringer
}

// Block is a Ticker with no inputs that pulls one block of samples from an
// Oscillator per Tick and copies it to each of its outputs.
type Block struct {
	osc  Oscillator
	outs int
}

var _ Ticker = Block{}

// NewBlock returns a Block over o with the given number of outputs.
func NewBlock(o Oscillator, outputs int) Block {
	if outputs < 1 {
		panic(fmt.Errorf("block needs at least one output, got %d", outputs))
	}
	return Block{osc: o, outs: outputs}
}

func (Block) Inputs() int      { return 0 }
func (b Block) Outputs() int   { return b.outs }
func (b Block) String() string { return fmt.Sprintf("Block(%v)", b.osc) }

func (b Block) Tick(_, output [][]float64) {
	if len(output) == 0 {
		return
	}
	Fill(b.osc, output[0])
	for _, o := range output[1:] {
		copy(o, output[0])
	}
}
