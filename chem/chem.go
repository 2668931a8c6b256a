// Package chem bridges electronic-structure calculations into the LMO-domain
// quantities the exciton builders consume. Only the data contracts live here
// for now; the PySCF-backed implementation is external and pending.
package chem

import "errors"

// ErrNotImplemented is returned by builder stubs whose integration has not
// landed yet.
var ErrNotImplemented = errors.New("chemistry integration not implemented")

// LMOData carries localized-orbital quantities required by exciton builders.
type LMOData struct {
	FockLMO  [][]float64
	Occupied []int
	Virtual  []int
}

// ExcitonDataBuilder produces LMO-domain quantities for a molecule.
type ExcitonDataBuilder interface {
	Build() (*LMOData, error)
}

// PySCFExcitonDataBuilder is a stub for the molecule -> LMO pipeline:
// run SCF, localize occupied and virtual spaces separately, transform one-
// and two-electron quantities to the LMO basis.
type PySCFExcitonDataBuilder struct{}

// Build implements ExcitonDataBuilder.
func (PySCFExcitonDataBuilder) Build() (*LMOData, error) {
	return nil, ErrNotImplemented
}
