package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/qoracle-xyz/go-qoracle/backend"
	"github.com/qoracle-xyz/go-qoracle/blockenc"
	"github.com/qoracle-xyz/go-qoracle/recordlog"
	"github.com/qoracle-xyz/go-qoracle/schedule"
)

func demo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	db := fs.String("db", "", "SQLite database to persist the run (empty: no persistence)")
	sdk := fs.String("backend", "qiskit", "Backend adapter: qiskit or qualtran")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: qoracle demo [options]

Build row/col/entry oracles for a small 3x3 sparse matrix, schedule a full
pass of block-encoding queries, run it and print the operation records.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	bundle, err := demoBundle()
	if err != nil {
		return fmt.Errorf("build bundle: %w", err)
	}
	encoding := blockenc.NewSparseMatrixBlockEncoding(bundle, "demo_3x3")

	var sched schedule.Schedule
	step := 0
	for row := 0; row < 3; row++ {
		for slot := 0; slot < 2; slot++ {
			sched.Append(schedule.Call{
				Index:    step,
				Encoding: encoding,
				Request: blockenc.Query{
					Step:       step,
					Parameters: map[string]float64{"row": float64(row), "slot": float64(slot)},
				},
			})
			step++
		}
	}

	runner := &schedule.Runner{}
	result, err := runner.Run(&sched)
	if err != nil {
		return fmt.Errorf("run schedule: %w", err)
	}

	fmt.Printf("Run %s: %d operations\n", result.RunID, len(result.Operations))
	for i, op := range result.Operations {
		line, err := json.Marshal(op)
		if err != nil {
			return fmt.Errorf("marshal record %d: %w", i, err)
		}
		fmt.Printf("  [%d] %s\n", i, line)
	}

	if *db != "" {
		store, err := recordlog.NewSQLiteStore(*db)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()
		if err := store.Append(context.Background(), result.RunID, result.Operations); err != nil {
			return fmt.Errorf("persist run: %w", err)
		}
		fmt.Printf("Persisted run %s to %s\n", result.RunID, *db)
	}

	adapter, err := selectAdapter(*sdk)
	if err != nil {
		return err
	}
	program, err := adapter.CompileOperations(result.Operations)
	if err != nil {
		return fmt.Errorf("compile program: %w", err)
	}
	summary := backend.NewResourceEstimatorAdapter().Export(program)
	summaryJSON, err := json.MarshalIndent(map[string]any{
		"target":  summary["target"],
		"sdk":     summary["sdk"],
		"summary": summary["summary"],
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	fmt.Printf("Estimator export:\n%s\n", summaryJSON)

	return nil
}

// demoBundle describes a 3x3 matrix with two nonzeros per row at columns
// row and (row+1) mod 3, entries spaced on the 1/4 grid so a 4-bit codec
// with two fraction bits holds them exactly.
func demoBundle() (*blockenc.SparseOracleBundle, error) {
	return blockenc.NewSparseOracleBundle(blockenc.BundleParams{
		NRows:     3,
		NCols:     3,
		MaxRowNNZ: 2,
		MaxColNNZ: 2,
		RowToCol:  func(row, slot int) int { return (row + slot) % 3 },
		ColToRow:  func(col, slot int) int { return (col - slot + 3) % 3 },
		EntryFn:   func(row, col int) float64 { return 0.25 * float64(row-col) },
		ValueBits: 4,
		FracBits:  2,
		Alpha:     1.0,
	})
}

func selectAdapter(sdk string) (backend.Adapter, error) {
	switch sdk {
	case "qiskit":
		return &backend.QiskitAdapter{EmitBarriers: true}, nil
	case "qualtran":
		return &backend.QualtranAdapter{}, nil
	default:
		return nil, fmt.Errorf("unknown backend: %s", sdk)
	}
}
