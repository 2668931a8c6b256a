// Package blockenc defines the block-encoding query interface and its sparse
// matrix realization. A block encoding represents a matrix as a sub-block of
// a larger normalized operator; queries against it return SDK-neutral
// operation records that backend adapters lower to concrete circuit payloads
// later.
package blockenc

import "errors"

// ErrConfiguration is returned when an encoding is configured with an
// unusable parameter, such as a non-positive normalization constant.
var ErrConfiguration = errors.New("invalid block-encoding configuration")

// Operation is an SDK-neutral operation record: string keys to scalars and
// strings, consumed by backend adapters.
type Operation = map[string]any

// Metadata describes a block encoding: its normalization constant alpha, the
// fixed ancilla count, and a logical cost hint for estimation tooling.
type Metadata struct {
	Name            string
	Alpha           float64
	AncillaQubits   int
	LogicalCostHint map[string]float64
}

// Query carries the per-call knobs of a block-encoding query. Parameters can
// vary between calls for non-stationary algorithms.
type Query struct {
	Step       int
	Parameters map[string]float64
}

// BlockEncoding is the query contract, independent from any concrete quantum
// SDK.
type BlockEncoding interface {
	// Metadata returns the encoding's static description.
	Metadata() Metadata

	// Do answers one query with an SDK-neutral operation record.
	Do(q Query) (Operation, error)

	// Adjoint answers the conjugate-transpose variant of a query. The
	// reversible adjoint is represented only at the record level; a backend
	// realizes it by reversing gate order and inverting rotation signs.
	Adjoint(q Query) (Operation, error)
}
