// Package funcform defines the intermediate representation for classical
// oracle functions. A function over packed bit registers can be specified
// three interchangeable ways: as an explicit lookup table, as a bit-affine
// map y = A·x ⊕ b over GF(2), or as an enumerable callable bounded by a
// configured input-width ceiling. Each form can lower to a lookup table,
// which is what the reversible-synthesis compiler ultimately consumes.
package funcform

import "fmt"

// SynthConfig governs whether and how callable forms may be enumerated into
// truth tables. Enumeration materializes the full 2^n input domain, so the
// input width must be bounded before it is allowed.
type SynthConfig struct {
	MaxTruthTableInputBits   int
	AllowCallableEnumeration bool
}

// DefaultSynthConfig returns the default enumeration bounds.
func DefaultSynthConfig() *SynthConfig {
	return &SynthConfig{
		MaxTruthTableInputBits:   12,
		AllowCallableEnumeration: true,
	}
}

// Form is the closed set of function specifications accepted by the
// reversible-synthesis compiler: LookupTableForm, AffineXorForm and
// CompilableFunctionForm. The set is sealed so the compiler can dispatch
// exhaustively by type switch.
type Form interface {
	// FormName identifies the form in compiled-circuit metadata.
	FormName() string
	// InputBits is the packed input register width.
	InputBits() int
	// OutputBits is the packed output register width.
	OutputBits() int

	sealedForm()
}

// LookupTableForm is an explicit truth table mapping packed input integers to
// packed output integers. The table must be total over [0, 2^NInputBits).
type LookupTableForm struct {
	NInputBits  int
	NOutputBits int
	Table       map[int]int
	Name        string
}

// FormName implements Form.
func (f *LookupTableForm) FormName() string { return f.Name }

// InputBits implements Form.
func (f *LookupTableForm) InputBits() int { return f.NInputBits }

// OutputBits implements Form.
func (f *LookupTableForm) OutputBits() int { return f.NOutputBits }

func (f *LookupTableForm) sealedForm() {}

// Validate checks that the table is total and every key and value lies within
// its declared width.
func (f *LookupTableForm) Validate() error {
	nEntries := 1 << uint(f.NInputBits)
	if len(f.Table) != nEntries {
		return fmt.Errorf("%w: %q requires full table of size %d, got %d",
			ErrMalformedTable, f.Name, nEntries, len(f.Table))
	}
	maxIn := 1 << uint(f.NInputBits)
	maxOut := 1 << uint(f.NOutputBits)
	for in, out := range f.Table {
		if in < 0 || in >= maxIn {
			return fmt.Errorf("%w: input key %d outside nInputBits=%d",
				ErrMalformedTable, in, f.NInputBits)
		}
		if out < 0 || out >= maxOut {
			return fmt.Errorf("%w: output value %d outside nOutputBits=%d",
				ErrMalformedTable, out, f.NOutputBits)
		}
	}

	return nil
}

// AffineXorForm is a bit-affine mapping y = A·x ⊕ b over GF(2). Matrix has
// NOutputBits rows of NInputBits coefficients; Matrix[out][in] == 1 selects
// input bit in into the XOR parity of output bit out.
type AffineXorForm struct {
	NInputBits  int
	NOutputBits int
	Matrix      [][]int
	OffsetBits  []int
	Name        string
}

// FormName implements Form.
func (f *AffineXorForm) FormName() string { return f.Name }

// InputBits implements Form.
func (f *AffineXorForm) InputBits() int { return f.NInputBits }

// OutputBits implements Form.
func (f *AffineXorForm) OutputBits() int { return f.NOutputBits }

func (f *AffineXorForm) sealedForm() {}

// Validate checks matrix and offset dimensions against the declared widths
// and that every entry is a bit.
func (f *AffineXorForm) Validate() error {
	if len(f.Matrix) != f.NOutputBits {
		return fmt.Errorf("%w: matrix row count %d must match nOutputBits=%d",
			ErrMalformedTable, len(f.Matrix), f.NOutputBits)
	}
	if len(f.OffsetBits) != f.NOutputBits {
		return fmt.Errorf("%w: offset length %d must match nOutputBits=%d",
			ErrMalformedTable, len(f.OffsetBits), f.NOutputBits)
	}
	for i, row := range f.Matrix {
		if len(row) != f.NInputBits {
			return fmt.Errorf("%w: matrix row %d length %d must match nInputBits=%d",
				ErrMalformedTable, i, len(row), f.NInputBits)
		}
		for _, bit := range row {
			if bit != 0 && bit != 1 {
				return fmt.Errorf("%w: matrix entries must be 0/1, got %d", ErrMalformedTable, bit)
			}
		}
	}
	for _, bit := range f.OffsetBits {
		if bit != 0 && bit != 1 {
			return fmt.Errorf("%w: offset entries must be 0/1, got %d", ErrMalformedTable, bit)
		}
	}

	return nil
}

// Evaluate computes y = A·x ⊕ b for a packed input x.
func (f *AffineXorForm) Evaluate(x int) (int, error) {
	maxX := 1 << uint(f.NInputBits)
	if x < 0 || x >= maxX {
		return 0, fmt.Errorf("%w: x=%d outside nInputBits=%d", ErrRange, x, f.NInputBits)
	}
	out := 0
	for outBit, row := range f.Matrix {
		bitVal := f.OffsetBits[outBit]
		for inBit, coeff := range row {
			if coeff == 1 {
				bitVal ^= (x >> uint(inBit)) & 1
			}
		}
		if bitVal == 1 {
			out |= 1 << uint(outBit)
		}
	}

	return out, nil
}

// ToLookupTable exhaustively evaluates the affine map and materializes it as
// a lookup table.
func (f *AffineXorForm) ToLookupTable() (*LookupTableForm, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	table := make(map[int]int, 1<<uint(f.NInputBits))
	for x := 0; x < 1<<uint(f.NInputBits); x++ {
		y, err := f.Evaluate(x)
		if err != nil {
			return nil, err
		}
		table[x] = y
	}

	return &LookupTableForm{
		NInputBits:  f.NInputBits,
		NOutputBits: f.NOutputBits,
		Table:       table,
		Name:        f.Name + "_as_lut",
	}, nil
}

// CompilableFunctionForm wraps an arbitrary packed-integer callable. It is
// not materialized until lowered; lowering enumerates the full input domain
// under the bounds in SynthConfig.
type CompilableFunctionForm struct {
	NInputBits  int
	NOutputBits int
	Fn          func(x int) int
	Name        string
}

// FormName implements Form.
func (f *CompilableFunctionForm) FormName() string { return f.Name }

// InputBits implements Form.
func (f *CompilableFunctionForm) InputBits() int { return f.NInputBits }

// OutputBits implements Form.
func (f *CompilableFunctionForm) OutputBits() int { return f.NOutputBits }

func (f *CompilableFunctionForm) sealedForm() {}

// ToLookupTable enumerates the callable over its whole input domain. It fails
// when enumeration is disabled, when the input width exceeds the configured
// ceiling, or when the callable produces an out-of-range output.
func (f *CompilableFunctionForm) ToLookupTable(cfg *SynthConfig) (*LookupTableForm, error) {
	if cfg == nil {
		cfg = DefaultSynthConfig()
	}
	if !cfg.AllowCallableEnumeration {
		return nil, fmt.Errorf("%w: callable enumeration disabled", ErrConfiguration)
	}
	if f.NInputBits > cfg.MaxTruthTableInputBits {
		return nil, fmt.Errorf("%w: nInputBits=%d exceeds configured maximum %d",
			ErrConfiguration, f.NInputBits, cfg.MaxTruthTableInputBits)
	}
	maxOut := 1 << uint(f.NOutputBits)
	table := make(map[int]int, 1<<uint(f.NInputBits))
	for x := 0; x < 1<<uint(f.NInputBits); x++ {
		y := f.Fn(x)
		if y < 0 || y >= maxOut {
			return nil, fmt.Errorf("%w: callable produced y=%d outside nOutputBits=%d",
				ErrRange, y, f.NOutputBits)
		}
		table[x] = y
	}

	return &LookupTableForm{
		NInputBits:  f.NInputBits,
		NOutputBits: f.NOutputBits,
		Table:       table,
		Name:        f.Name + "_enumerated",
	}, nil
}
