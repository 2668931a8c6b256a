package synth

import (
	"errors"
	"testing"

	"github.com/qoracle-xyz/go-qoracle/funcform"
)

// apply runs a compiled circuit classically over packed basis states: wire i
// is bit i of the state.
func apply(t *testing.T, circ *Circuit, input int) int {
	t.Helper()
	state := input // output register wires start at zero
	for _, op := range circ.Operations {
		switch op.Gate {
		case GateX:
			state ^= 1 << uint(op.Target)
		case GateCX, GateMCX:
			fire := true
			for i, ctrl := range op.Controls {
				bit := (state >> uint(ctrl)) & 1
				if bit != op.ControlValues[i] {
					fire = false
					break
				}
			}
			if fire {
				state ^= 1 << uint(op.Target)
			}
		default:
			t.Fatalf("unexpected gate %v", op.Gate)
		}
	}
	return state
}

// checkImplements verifies |x>|0> -> |x>|f(x)> for every input.
func checkImplements(t *testing.T, circ *Circuit, f func(int) int) {
	t.Helper()
	for x := 0; x < 1<<uint(circ.NInputBits); x++ {
		final := apply(t, circ, x)
		gotIn := final & (1<<uint(circ.NInputBits) - 1)
		gotOut := final >> uint(circ.OutputOffset())
		if gotIn != x {
			t.Errorf("input register clobbered: x=%d ended as %d", x, gotIn)
		}
		if gotOut != f(x) {
			t.Errorf("f(%d): circuit computed %d, want %d", x, gotOut, f(x))
		}
	}
}

func TestCompileAffineXorHasNoTCost(t *testing.T) {
	form := &funcform.AffineXorForm{
		NInputBits:  3,
		NOutputBits: 2,
		Matrix:      [][]int{{1, 0, 1}, {0, 1, 0}},
		OffsetBits:  []int{0, 1},
		Name:        "affine_test",
	}
	circ, err := Compile(form, nil)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	cost, err := circ.EstimateCost()
	if err != nil {
		t.Fatalf("EstimateCost failed: %v", err)
	}
	if cost.TCount != 0 || cost.ToffoliCount != 0 {
		t.Errorf("affine circuit has nonlinear cost: %+v", cost)
	}
	if cost.CNOTCount != 3 {
		t.Errorf("CNOTCount = %d, want 3", cost.CNOTCount)
	}
	if cost.XCount != 1 {
		t.Errorf("XCount = %d, want 1", cost.XCount)
	}
	if circ.Metadata["method"] != MethodAffineXor {
		t.Errorf("method = %q, want %q", circ.Metadata["method"], MethodAffineXor)
	}

	checkImplements(t, circ, func(x int) int {
		y, _ := form.Evaluate(x)
		return y
	})
}

func TestCompileAndGateCost(t *testing.T) {
	form := &funcform.LookupTableForm{
		NInputBits:  2,
		NOutputBits: 1,
		Table:       map[int]int{0b00: 0, 0b01: 0, 0b10: 0, 0b11: 1},
		Name:        "and2",
	}
	circ, err := Compile(form, nil)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	cost, err := circ.EstimateCost()
	if err != nil {
		t.Fatalf("EstimateCost failed: %v", err)
	}
	if cost.ToffoliCount != 1 {
		t.Errorf("ToffoliCount = %d, want 1", cost.ToffoliCount)
	}
	if cost.TCount != 7 {
		t.Errorf("TCount = %d, want 7", cost.TCount)
	}
	if circ.NQubits() != 3 {
		t.Errorf("NQubits = %d, want 3", circ.NQubits())
	}
	if circ.Metadata["source"] != "and2" {
		t.Errorf("source = %q, want and2", circ.Metadata["source"])
	}

	checkImplements(t, circ, func(x int) int {
		if x == 3 {
			return 1
		}
		return 0
	})
}

func TestCompileLookupTableSemantics(t *testing.T) {
	// A permutation with both zero and one controls exercises the
	// X-conjugation restore order.
	table := map[int]int{0: 2, 1: 0, 2: 3, 3: 1, 4: 7, 5: 5, 6: 6, 7: 4}
	form := &funcform.LookupTableForm{
		NInputBits:  3,
		NOutputBits: 3,
		Table:       table,
		Name:        "perm3",
	}
	circ, err := Compile(form, nil)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	checkImplements(t, circ, func(x int) int { return table[x] })
}

func TestCompileConstantOne(t *testing.T) {
	// Zero input bits: a constant-1 output compiles to a bare X.
	form := &funcform.LookupTableForm{
		NInputBits:  0,
		NOutputBits: 1,
		Table:       map[int]int{0: 1},
		Name:        "const1",
	}
	circ, err := Compile(form, nil)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if len(circ.Operations) != 1 || circ.Operations[0].Gate != GateX {
		t.Errorf("constant-1 should compile to a single X, got %+v", circ.Operations)
	}
}

func TestCompileCallableForm(t *testing.T) {
	form := &funcform.CompilableFunctionForm{
		NInputBits:  2,
		NOutputBits: 2,
		Fn:          func(x int) int { return x ^ 0b01 },
		Name:        "xor_const",
	}
	circ, err := Compile(form, nil)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if len(circ.Operations) == 0 {
		t.Fatal("expected a non-empty circuit")
	}
	if circ.NQubits() != circ.NInputBits+circ.NOutputBits {
		t.Errorf("NQubits = %d, want %d", circ.NQubits(), circ.NInputBits+circ.NOutputBits)
	}

	checkImplements(t, circ, func(x int) int { return x ^ 0b01 })
}

func TestCompileUnsupportedForm(t *testing.T) {
	if _, err := Compile(nil, nil); !errors.Is(err, funcform.ErrUnsupportedForm) {
		t.Errorf("got err %v, want ErrUnsupportedForm", err)
	}
}

func TestEstimateCostUnsupportedGate(t *testing.T) {
	circ := NewCircuit(1, 1)
	circ.Operations = append(circ.Operations, Op{Gate: Gate(99), Target: 0})
	if _, err := circ.EstimateCost(); !errors.Is(err, ErrUnsupportedGate) {
		t.Errorf("got err %v, want ErrUnsupportedGate", err)
	}
}

func TestMCXCostModel(t *testing.T) {
	tests := []struct {
		controls    int
		toffoli     int
		ancillaPeak int
	}{
		{2, 1, 0},
		{3, 3, 1},
		{4, 5, 2},
		{6, 9, 4},
	}
	for _, tt := range tests {
		circ := NewCircuit(tt.controls, 1)
		controls := make([]int, tt.controls)
		values := make([]int, tt.controls)
		for i := range controls {
			controls[i] = i
			values[i] = 1
		}
		circ.Operations = append(circ.Operations, Op{
			Gate:          GateMCX,
			Controls:      controls,
			ControlValues: values,
			Target:        tt.controls,
		})
		cost, err := circ.EstimateCost()
		if err != nil {
			t.Fatalf("EstimateCost failed: %v", err)
		}
		if cost.ToffoliCount != tt.toffoli {
			t.Errorf("k=%d: ToffoliCount = %d, want %d", tt.controls, cost.ToffoliCount, tt.toffoli)
		}
		if cost.TCount != 7*tt.toffoli {
			t.Errorf("k=%d: TCount = %d, want %d", tt.controls, cost.TCount, 7*tt.toffoli)
		}
		if cost.AncillaPeakEstimate != tt.ancillaPeak {
			t.Errorf("k=%d: AncillaPeakEstimate = %d, want %d",
				tt.controls, cost.AncillaPeakEstimate, tt.ancillaPeak)
		}
	}
}

func TestCostAddTakesAncillaMax(t *testing.T) {
	a := Cost{XCount: 1, TCount: 7, AncillaPeakEstimate: 4}
	b := Cost{XCount: 2, TCount: 14, AncillaPeakEstimate: 2}
	sum := a.Add(b)
	if sum.XCount != 3 || sum.TCount != 21 {
		t.Errorf("counter sum wrong: %+v", sum)
	}
	if sum.AncillaPeakEstimate != 4 {
		t.Errorf("AncillaPeakEstimate = %d, want 4 (high-water mark)", sum.AncillaPeakEstimate)
	}
}
