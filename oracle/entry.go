package oracle

import (
	"fmt"

	"github.com/qoracle-xyz/go-qoracle/fixedpoint"
)

// EntryBinaryOracle answers O_A: (row, col) -> signed fixed-point bit string
// for A[row, col]. All entries are encoded eagerly at construction; a value
// outside the representable range is rejected immediately.
type EntryBinaryOracle struct {
	NRows     int
	NCols     int
	ValueBits int
	FracBits  int

	table map[slotKey]string
}

// NewEntryBinaryOracle applies the fixed-point codec to every entry produced
// by entryFn over the full nRows x nCols domain.
func NewEntryBinaryOracle(nRows, nCols, valueBits, fracBits int, entryFn func(row, col int) float64) (*EntryBinaryOracle, error) {
	table := make(map[slotKey]string, nRows*nCols)
	for row := 0; row < nRows; row++ {
		for col := 0; col < nCols; col++ {
			bits, err := fixedpoint.Encode(entryFn(row, col), valueBits, fracBits)
			if err != nil {
				return nil, fmt.Errorf("entry (%d,%d): %w", row, col, err)
			}
			table[slotKey{row, col}] = bits
		}
	}

	return &EntryBinaryOracle{
		NRows:     nRows,
		NCols:     nCols,
		ValueBits: valueBits,
		FracBits:  fracBits,
		table:     table,
	}, nil
}

// NewEntryBinaryOracleFromDense loads a dense matrix. The matrix must be
// non-empty and rectangular.
func NewEntryBinaryOracleFromDense(matrix [][]float64, valueBits, fracBits int) (*EntryBinaryOracle, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil, fmt.Errorf("%w: matrix must be non-empty", ErrShape)
	}
	nCols := len(matrix[0])
	for i, row := range matrix {
		if len(row) != nCols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShape, i, len(row), nCols)
		}
	}

	return NewEntryBinaryOracle(len(matrix), nCols, valueBits, fracBits,
		func(i, j int) float64 { return matrix[i][j] })
}

// LookupBits returns the stored fixed-point bit string for (row, col).
func (o *EntryBinaryOracle) LookupBits(row, col int) string {
	return o.table[slotKey{row, col}]
}

// LookupValue decodes the stored bit string back to its real value.
func (o *EntryBinaryOracle) LookupValue(row, col int) (float64, error) {
	return fixedpoint.Decode(o.LookupBits(row, col), o.FracBits)
}

// CompileTruthTable re-keys entries as fixed-width bit-string concatenations,
// row bits then col bits, mapping to the stored value bits.
func (o *EntryBinaryOracle) CompileTruthTable() (map[string]string, error) {
	rowBits := fixedpoint.Bits(o.NRows)
	colBits := fixedpoint.Bits(o.NCols)
	compiled := make(map[string]string, len(o.table))
	for key, bits := range o.table {
		rowStr, err := fixedpoint.EncodeUint(key.index, rowBits)
		if err != nil {
			return nil, err
		}
		colStr, err := fixedpoint.EncodeUint(key.slot, colBits)
		if err != nil {
			return nil, err
		}
		compiled[rowStr+colStr] = bits
	}

	return compiled, nil
}
