// Package synth lowers function forms into reversible gate networks and
// estimates their logical resource cost. The qubit layout is fixed: the input
// register occupies wires [0, nInputBits), the output register occupies
// [nInputBits, nInputBits+nOutputBits), and a compiled circuit realizes
// |x>|0> -> |x>|f(x)>.
package synth

import (
	"errors"
	"fmt"
)

// ErrUnsupportedGate is returned by the cost estimator when it encounters a
// gate kind outside the X/CX/MCX set.
var ErrUnsupportedGate = errors.New("unsupported gate kind")

// Gate identifies a reversible gate kind.
type Gate int

// Gate kinds emitted by the compiler.
const (
	GateX Gate = iota
	GateCX
	GateMCX
)

// String returns the conventional lowercase gate name.
func (g Gate) String() string {
	switch g {
	case GateX:
		return "x"
	case GateCX:
		return "cx"
	case GateMCX:
		return "mcx"
	default:
		return fmt.Sprintf("gate(%d)", int(g))
	}
}

// Op is a single reversible operation. ControlValues records the polarity of
// each control wire: 1 fires on |1>, 0 fires on |0>. The compiler only emits
// positive polarities, realizing negative controls by X conjugation.
type Op struct {
	Gate          Gate
	Controls      []int
	ControlValues []int
	Target        int
}

// Circuit is an ordered reversible gate network over the packed input/output
// layout. Operations are appended during a single compilation call and never
// mutated afterwards.
type Circuit struct {
	NInputBits  int
	NOutputBits int
	Operations  []Op
	Metadata    map[string]string
}

// NewCircuit creates an empty circuit for the given register widths.
func NewCircuit(nInputBits, nOutputBits int) *Circuit {
	return &Circuit{
		NInputBits:  nInputBits,
		NOutputBits: nOutputBits,
		Metadata:    make(map[string]string),
	}
}

// NQubits is the total wire count: input register plus output register.
func (c *Circuit) NQubits() int {
	return c.NInputBits + c.NOutputBits
}

// OutputOffset is the wire index of the first output bit.
func (c *Circuit) OutputOffset() int {
	return c.NInputBits
}

func (c *Circuit) append(op Op) {
	c.Operations = append(c.Operations, op)
}

// Cost is a logical resource-cost summary. All counters combine by summing
// except AncillaPeakEstimate, which is a high-water mark: ancillas are
// borrowed per gate and released, not retained.
type Cost struct {
	XCount              int
	CNOTCount           int
	ToffoliCount        int
	TCount              int
	TDepthEstimate      int
	AncillaPeakEstimate int
}

// Add combines two cost summaries.
func (c Cost) Add(other Cost) Cost {
	return Cost{
		XCount:              c.XCount + other.XCount,
		CNOTCount:           c.CNOTCount + other.CNOTCount,
		ToffoliCount:        c.ToffoliCount + other.ToffoliCount,
		TCount:              c.TCount + other.TCount,
		TDepthEstimate:      c.TDepthEstimate + other.TDepthEstimate,
		AncillaPeakEstimate: max(c.AncillaPeakEstimate, other.AncillaPeakEstimate),
	}
}

// mcxToffoli is the ladder decomposition count for a k-controlled X:
// k-2 borrowed ancillas and 2k-3 Toffolis for k > 2.
func mcxToffoli(nControls int) int {
	switch {
	case nControls <= 1:
		return 0
	case nControls == 2:
		return 1
	default:
		return 2*nControls - 3
	}
}

// EstimateCost folds over the operations left to right and accumulates the
// logical cost summary. Each Toffoli is charged 7 T gates and T-depth 3, the
// standard surface-code unit costs.
func (c *Circuit) EstimateCost() (Cost, error) {
	var total Cost
	for _, op := range c.Operations {
		switch op.Gate {
		case GateX:
			total = total.Add(Cost{XCount: 1})
		case GateCX:
			total = total.Add(Cost{CNOTCount: 1})
		case GateMCX:
			k := len(op.Controls)
			toffoli := mcxToffoli(k)
			total = total.Add(Cost{
				ToffoliCount:        toffoli,
				TCount:              7 * toffoli,
				TDepthEstimate:      max(1, 3*toffoli),
				AncillaPeakEstimate: max(0, k-2),
			})
		default:
			return Cost{}, fmt.Errorf("%w: %s", ErrUnsupportedGate, op.Gate)
		}
	}

	return total, nil
}
