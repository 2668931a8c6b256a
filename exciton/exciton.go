// Package exciton holds exciton Hamiltonian containers in a localized
// molecular orbital (LMO) basis, together with the screening interfaces used
// to source interaction terms. These are the chemistry-side inputs whose
// matrices eventually feed the block-encoding oracles.
package exciton

import (
	"errors"
	"fmt"
)

// Error types for the exciton package.
var (
	// ErrPartition is returned when an orbital partition overlaps or fails
	// to cover the declared orbital count.
	ErrPartition = errors.New("invalid orbital partition")

	// ErrModeRange is returned when a term references an orbital index
	// outside the model.
	ErrModeRange = errors.New("term mode index out of range")
)

// OrbitalPartition splits localized molecular orbitals into occupied and
// virtual sets.
type OrbitalPartition struct {
	Occupied []int
	Virtual  []int
}

// Validate checks that the occupied and virtual sets are disjoint.
func (p OrbitalPartition) Validate() error {
	seen := make(map[int]bool, len(p.Occupied))
	for _, o := range p.Occupied {
		seen[o] = true
	}
	for _, v := range p.Virtual {
		if seen[v] {
			return fmt.Errorf("%w: orbital %d is both occupied and virtual", ErrPartition, v)
		}
	}

	return nil
}

// Term is one term in an exciton Hamiltonian decomposition.
type Term struct {
	Label       string
	Coefficient float64
	Modes       []int
}

// Model is an exciton Hamiltonian container in an LMO basis. Terms are
// appended through AddTerm so mode indices stay in range.
type Model struct {
	NOrbitals int
	Partition OrbitalPartition
	Terms     []Term
	Metadata  map[string]string
}

// NewModel creates an empty model over nOrbitals.
func NewModel(nOrbitals int, partition OrbitalPartition) *Model {
	return &Model{
		NOrbitals: nOrbitals,
		Partition: partition,
		Metadata:  make(map[string]string),
	}
}

// AddTerm appends a term after checking its mode indices.
func (m *Model) AddTerm(term Term) error {
	for _, mode := range term.Modes {
		if mode < 0 || mode >= m.NOrbitals {
			return fmt.Errorf("%w: mode %d in term %q, want 0..%d",
				ErrModeRange, mode, term.Label, m.NOrbitals-1)
		}
	}
	m.Terms = append(m.Terms, term)

	return nil
}

// Validate checks the partition and that it covers NOrbitals uniquely.
func (m *Model) Validate() error {
	if err := m.Partition.Validate(); err != nil {
		return err
	}
	if len(m.Partition.Occupied)+len(m.Partition.Virtual) != m.NOrbitals {
		return fmt.Errorf("%w: partition covers %d orbitals, want %d", ErrPartition,
			len(m.Partition.Occupied)+len(m.Partition.Virtual), m.NOrbitals)
	}

	return nil
}
