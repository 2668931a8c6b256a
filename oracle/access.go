// Package oracle implements the classical access oracles behind a sparse
// matrix block encoding: row and column access oracles mapping (index, slot)
// to a target index, and a binary entry oracle loading matrix entries as
// signed fixed-point bit strings. Every oracle materializes its full table
// eagerly at construction and is immutable afterwards, so values can be
// shared freely across readers.
package oracle

import (
	"errors"
	"fmt"

	"github.com/qoracle-xyz/go-qoracle/fixedpoint"
	"github.com/qoracle-xyz/go-qoracle/funcform"
	"github.com/qoracle-xyz/go-qoracle/synth"
)

// ErrShape is returned when a dense matrix input is empty or non-rectangular.
var ErrShape = errors.New("ill-formed matrix shape")

type slotKey struct {
	index int
	slot  int
}

// RowAccessOracle answers O_r: (row, slot) -> column of the slot-th stored
// entry in that row. The table is total over [0, NRows) x [0, MaxRowNNZ).
type RowAccessOracle struct {
	NRows     int
	NCols     int
	MaxRowNNZ int

	table map[slotKey]int
}

// NewRowAccessOracle eagerly evaluates rowToCol over the full domain. It
// fails the moment any produced column index falls outside [0, nCols).
func NewRowAccessOracle(nRows, nCols, maxRowNNZ int, rowToCol func(row, slot int) int) (*RowAccessOracle, error) {
	table := make(map[slotKey]int, nRows*maxRowNNZ)
	for row := 0; row < nRows; row++ {
		for slot := 0; slot < maxRowNNZ; slot++ {
			col := rowToCol(row, slot)
			if col < 0 || col >= nCols {
				return nil, fmt.Errorf("%w: row oracle produced column %d at (row=%d, slot=%d), want 0..%d",
					funcform.ErrRange, col, row, slot, nCols-1)
			}
			table[slotKey{row, slot}] = col
		}
	}

	return &RowAccessOracle{NRows: nRows, NCols: nCols, MaxRowNNZ: maxRowNNZ, table: table}, nil
}

// Lookup is a pure table read.
func (o *RowAccessOracle) Lookup(row, slot int) int {
	return o.table[slotKey{row, slot}]
}

// CompileTruthTable re-keys the table as fixed-width bit-string
// concatenations, row bits then slot bits.
func (o *RowAccessOracle) CompileTruthTable() (map[string]string, error) {
	return compileAccessTruthTable(o.table, o.NRows, o.MaxRowNNZ, o.NCols)
}

// CompileReversibleCircuit packs (row, slot) into one integer with the slot
// in the low bits and synthesizes through the sum-of-minterms path.
func (o *RowAccessOracle) CompileReversibleCircuit() (*synth.Circuit, error) {
	return compileAccessCircuit(o.Lookup, o.NRows, o.MaxRowNNZ, o.NCols, "row_access_oracle")
}

// ColAccessOracle answers O_c: (col, slot) -> row of the slot-th stored
// entry in that column. Symmetric to RowAccessOracle.
type ColAccessOracle struct {
	NRows     int
	NCols     int
	MaxColNNZ int

	table map[slotKey]int
}

// NewColAccessOracle eagerly evaluates colToRow over the full domain.
func NewColAccessOracle(nRows, nCols, maxColNNZ int, colToRow func(col, slot int) int) (*ColAccessOracle, error) {
	table := make(map[slotKey]int, nCols*maxColNNZ)
	for col := 0; col < nCols; col++ {
		for slot := 0; slot < maxColNNZ; slot++ {
			row := colToRow(col, slot)
			if row < 0 || row >= nRows {
				return nil, fmt.Errorf("%w: col oracle produced row %d at (col=%d, slot=%d), want 0..%d",
					funcform.ErrRange, row, col, slot, nRows-1)
			}
			table[slotKey{col, slot}] = row
		}
	}

	return &ColAccessOracle{NRows: nRows, NCols: nCols, MaxColNNZ: maxColNNZ, table: table}, nil
}

// Lookup is a pure table read.
func (o *ColAccessOracle) Lookup(col, slot int) int {
	return o.table[slotKey{col, slot}]
}

// CompileTruthTable re-keys the table as fixed-width bit-string
// concatenations, col bits then slot bits.
func (o *ColAccessOracle) CompileTruthTable() (map[string]string, error) {
	return compileAccessTruthTable(o.table, o.NCols, o.MaxColNNZ, o.NRows)
}

// CompileReversibleCircuit packs (col, slot) into one integer with the slot
// in the low bits and synthesizes through the sum-of-minterms path.
func (o *ColAccessOracle) CompileReversibleCircuit() (*synth.Circuit, error) {
	return compileAccessCircuit(o.Lookup, o.NCols, o.MaxColNNZ, o.NRows, "col_access_oracle")
}

func compileAccessTruthTable(table map[slotKey]int, nIndices, maxNNZ, nTargets int) (map[string]string, error) {
	indexBits := fixedpoint.Bits(nIndices)
	slotBits := fixedpoint.Bits(maxNNZ)
	targetBits := fixedpoint.Bits(nTargets)
	compiled := make(map[string]string, len(table))
	for key, target := range table {
		indexStr, err := fixedpoint.EncodeUint(key.index, indexBits)
		if err != nil {
			return nil, err
		}
		slotStr, err := fixedpoint.EncodeUint(key.slot, slotBits)
		if err != nil {
			return nil, err
		}
		targetStr, err := fixedpoint.EncodeUint(target, targetBits)
		if err != nil {
			return nil, err
		}
		compiled[indexStr+slotStr] = targetStr
	}

	return compiled, nil
}

func compileAccessCircuit(lookup func(index, slot int) int, nIndices, maxNNZ, nTargets int, name string) (*synth.Circuit, error) {
	indexBits := fixedpoint.Bits(nIndices)
	slotBits := fixedpoint.Bits(maxNNZ)
	inBits := indexBits + slotBits
	outBits := fixedpoint.Bits(nTargets)

	slotMask := 1<<uint(slotBits) - 1
	form := &funcform.CompilableFunctionForm{
		NInputBits:  inBits,
		NOutputBits: outBits,
		Fn: func(x int) int {
			slot := x & slotMask
			index := x >> uint(slotBits)
			return lookup(index, slot)
		},
		Name: name,
	}

	return synth.Compile(form, nil)
}
