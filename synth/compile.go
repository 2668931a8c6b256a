package synth

import (
	"fmt"

	"github.com/qoracle-xyz/go-qoracle/funcform"
)

// Compilation methods recorded in circuit metadata.
const (
	MethodSumOfMinterms = "sum_of_minterms"
	MethodAffineXor     = "affine_xor"
)

// Compile lowers a function form into a reversible circuit. Affine forms
// compile through a dedicated CNOT/X-only path; lookup tables (including
// tables lowered from callable forms) compile through the sum-of-minterms
// path. A nil config falls back to funcform.DefaultSynthConfig.
func Compile(form funcform.Form, cfg *funcform.SynthConfig) (*Circuit, error) {
	if cfg == nil {
		cfg = funcform.DefaultSynthConfig()
	}
	switch f := form.(type) {
	case *funcform.AffineXorForm:
		return CompileAffineXor(f)
	case *funcform.LookupTableForm:
		return CompileLookupTable(f)
	case *funcform.CompilableFunctionForm:
		lut, err := f.ToLookupTable(cfg)
		if err != nil {
			return nil, err
		}
		return CompileLookupTable(lut)
	default:
		return nil, fmt.Errorf("%w: %T", funcform.ErrUnsupportedForm, form)
	}
}

// CompileLookupTable compiles a full truth table into a baseline reversible
// implementation: for every output bit and every minterm, an MCX controlled
// on all input wires flips the target, with zero-valued control wires handled
// by X conjugation. The construction is deliberately naive; it is a cost
// baseline, not an optimizer.
func CompileLookupTable(form *funcform.LookupTableForm) (*Circuit, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	circ := NewCircuit(form.NInputBits, form.NOutputBits)
	nInputs := form.NInputBits
	outputOffset := circ.OutputOffset()

	for outBit := 0; outBit < form.NOutputBits; outBit++ {
		target := outputOffset + outBit
		// Minterms in ascending input order keeps compilation deterministic.
		for x := 0; x < 1<<uint(nInputs); x++ {
			if (form.Table[x]>>uint(outBit))&1 != 1 {
				continue
			}
			controls := make([]int, 0, nInputs)
			controlValues := make([]int, 0, nInputs)
			var zeroControlWires []int
			for inBit := 0; inBit < nInputs; inBit++ {
				controls = append(controls, inBit)
				controlValues = append(controlValues, 1)
				if (x>>uint(inBit))&1 == 0 {
					zeroControlWires = append(zeroControlWires, inBit)
				}
			}

			// Flip zero-valued controls into the positive reference frame.
			for _, wire := range zeroControlWires {
				circ.append(Op{Gate: GateX, Target: wire})
			}
			switch len(controls) {
			case 0:
				circ.append(Op{Gate: GateX, Target: target})
			case 1:
				circ.append(Op{Gate: GateCX, Controls: controls, ControlValues: controlValues, Target: target})
			default:
				circ.append(Op{Gate: GateMCX, Controls: controls, ControlValues: controlValues, Target: target})
			}
			// Restore in reverse order before any wire is reused as a
			// control for a later minterm.
			for i := len(zeroControlWires) - 1; i >= 0; i-- {
				circ.append(Op{Gate: GateX, Target: zeroControlWires[i]})
			}
		}
	}

	circ.Metadata["source"] = form.Name
	circ.Metadata["method"] = MethodSumOfMinterms

	return circ, nil
}

// CompileAffineXor compiles an affine GF(2) map to a CNOT/X network. Linear
// maps over GF(2) never require nonlinear gates, so the result carries zero
// Toffoli and T cost.
func CompileAffineXor(form *funcform.AffineXorForm) (*Circuit, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	circ := NewCircuit(form.NInputBits, form.NOutputBits)
	outputOffset := circ.OutputOffset()

	for outBit, row := range form.Matrix {
		target := outputOffset + outBit
		if form.OffsetBits[outBit] == 1 {
			circ.append(Op{Gate: GateX, Target: target})
		}
		for inBit, coeff := range row {
			if coeff == 1 {
				circ.append(Op{
					Gate:          GateCX,
					Controls:      []int{inBit},
					ControlValues: []int{1},
					Target:        target,
				})
			}
		}
	}

	circ.Metadata["source"] = form.Name
	circ.Metadata["method"] = MethodAffineXor

	return circ, nil
}
