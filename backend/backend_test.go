package backend

import (
	"testing"

	"github.com/qoracle-xyz/go-qoracle/blockenc"
	"github.com/qoracle-xyz/go-qoracle/synth"
)

func sampleOps() []blockenc.Operation {
	return []blockenc.Operation{
		{"op": "sparse_block_encoding_query", "row": 0, "col": 1},
		{"op": "sparse_block_encoding_query", "row": 1, "col": 0},
	}
}

func TestQiskitAdapter(t *testing.T) {
	a := &QiskitAdapter{EmitBarriers: true}
	program, err := a.CompileOperations(sampleOps())
	if err != nil {
		t.Fatalf("CompileOperations failed: %v", err)
	}
	if program.Payload["sdk"] != "qiskit" {
		t.Errorf("sdk = %v, want qiskit", program.Payload["sdk"])
	}
	if program.Metadata["emit_barriers"] != true {
		t.Errorf("emit_barriers = %v, want true", program.Metadata["emit_barriers"])
	}
}

func TestQualtranAdapter(t *testing.T) {
	a := &QualtranAdapter{}
	program, err := a.CompileOperations(sampleOps())
	if err != nil {
		t.Fatalf("CompileOperations failed: %v", err)
	}
	if program.Payload["sdk"] != "qualtran" {
		t.Errorf("sdk = %v, want qualtran", program.Payload["sdk"])
	}
}

func TestResourceEstimatorExport(t *testing.T) {
	a := NewResourceEstimatorAdapter()
	program, err := (&QualtranAdapter{}).CompileOperations(sampleOps())
	if err != nil {
		t.Fatalf("CompileOperations failed: %v", err)
	}

	export := a.Export(program)
	if export["target"] != "logical" {
		t.Errorf("target = %v, want logical", export["target"])
	}
	if export["sdk"] != "qualtran" {
		t.Errorf("sdk = %v, want qualtran", export["sdk"])
	}
	summary := export["summary"].(map[string]any)
	if summary["n_operations"] != 2 {
		t.Errorf("n_operations = %v, want 2", summary["n_operations"])
	}
}

func TestResourceEstimatorExportGateCost(t *testing.T) {
	a := NewResourceEstimatorAdapter()
	export := a.ExportGateCost(synth.Cost{
		XCount:              2,
		CNOTCount:           3,
		ToffoliCount:        1,
		TCount:              7,
		TDepthEstimate:      3,
		AncillaPeakEstimate: 1,
	})
	if export["t_count"] != 7 {
		t.Errorf("t_count = %v, want 7", export["t_count"])
	}
	if export["ancilla_peak_estimate"] != 1 {
		t.Errorf("ancilla_peak_estimate = %v, want 1", export["ancilla_peak_estimate"])
	}
}
