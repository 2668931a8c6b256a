// Package backend lowers SDK-neutral operation records into SDK-specific
// payloads. The adapters here keep payloads neutral until concrete gate
// translators exist; the resource estimator adapter converts programs and
// gate-cost summaries into estimator-ready data.
package backend

import (
	"github.com/qoracle-xyz/go-qoracle/blockenc"
	"github.com/qoracle-xyz/go-qoracle/synth"
)

// Program is an SDK-specific payload plus metadata.
type Program struct {
	Payload  map[string]any
	Metadata map[string]any
}

// Adapter converts a stream of operation records into a backend program.
type Adapter interface {
	CompileOperations(operations []blockenc.Operation) (*Program, error)
}

// QiskitAdapter maps abstract operations into a Qiskit-friendly payload.
type QiskitAdapter struct {
	EmitBarriers bool
}

// CompileOperations implements Adapter.
func (a *QiskitAdapter) CompileOperations(operations []blockenc.Operation) (*Program, error) {
	return &Program{
		Payload:  map[string]any{"sdk": "qiskit", "ops": operations},
		Metadata: map[string]any{"emit_barriers": a.EmitBarriers},
	}, nil
}

// QualtranAdapter maps abstract operations into a Qualtran Bloq-construction
// payload.
type QualtranAdapter struct{}

// CompileOperations implements Adapter.
func (a *QualtranAdapter) CompileOperations(operations []blockenc.Operation) (*Program, error) {
	return &Program{
		Payload:  map[string]any{"sdk": "qualtran", "ops": operations},
		Metadata: map[string]any{},
	}, nil
}

// ResourceEstimatorAdapter converts backend programs into estimator-ready
// intermediate data.
type ResourceEstimatorAdapter struct {
	Target string
}

// NewResourceEstimatorAdapter defaults to the logical cost target.
func NewResourceEstimatorAdapter() *ResourceEstimatorAdapter {
	return &ResourceEstimatorAdapter{Target: "logical"}
}

// Export summarizes a program for the estimator.
func (a *ResourceEstimatorAdapter) Export(program *Program) map[string]any {
	sdk, ok := program.Metadata["sdk"]
	if !ok {
		if s, has := program.Payload["sdk"]; has {
			sdk = s
		} else {
			sdk = "unknown"
		}
	}
	var nOps any
	if ops, ok := program.Payload["ops"].([]blockenc.Operation); ok {
		nOps = len(ops)
	}

	return map[string]any{
		"target":  a.Target,
		"sdk":     sdk,
		"summary": map[string]any{"n_operations": nOps},
		"payload": program.Payload,
	}
}

// ExportGateCost flattens a logical gate-cost summary for the estimator.
func (a *ResourceEstimatorAdapter) ExportGateCost(cost synth.Cost) map[string]any {
	return map[string]any{
		"target":                a.Target,
		"x_count":               cost.XCount,
		"cnot_count":            cost.CNOTCount,
		"toffoli_count":         cost.ToffoliCount,
		"t_count":               cost.TCount,
		"t_depth_estimate":      cost.TDepthEstimate,
		"ancilla_peak_estimate": cost.AncillaPeakEstimate,
	}
}
