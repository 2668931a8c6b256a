package recordlog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/qoracle-xyz/go-qoracle/blockenc"
	"github.com/qoracle-xyz/go-qoracle/recordlog"
)

func TestMemoryStore(t *testing.T) {
	runStoreTests(t, func() recordlog.Store {
		return recordlog.NewMemoryStore()
	})
}

func TestSQLiteStore(t *testing.T) {
	runStoreTests(t, func() recordlog.Store {
		store, err := recordlog.NewSQLiteStore(":memory:")
		if err != nil {
			t.Fatalf("failed to create sqlite store: %v", err)
		}
		return store
	})
}

func runStoreTests(t *testing.T, newStore func() recordlog.Store) {
	ops := []blockenc.Operation{
		{"op": "sparse_block_encoding_query", "row": 0.0, "col": 1.0, "theta": 1.0472},
		{"op": "sparse_block_encoding_query_dagger", "row": 1.0, "col": 0.0, "theta": 1.0472},
	}

	t.Run("AppendAndRead", func(t *testing.T) {
		store := newStore()
		defer store.Close()
		ctx := context.Background()

		if err := store.Append(ctx, "run-1", ops); err != nil {
			t.Fatalf("append failed: %v", err)
		}

		records, err := store.Read(ctx, "run-1")
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
		if records[0].Op != "sparse_block_encoding_query" {
			t.Errorf("record 0 op = %q", records[0].Op)
		}
		if records[1].Op != "sparse_block_encoding_query_dagger" {
			t.Errorf("record 1 op = %q", records[1].Op)
		}
		if records[0].Seq != 0 || records[1].Seq != 1 {
			t.Errorf("sequence numbers = %d, %d; want 0, 1", records[0].Seq, records[1].Seq)
		}
	})

	t.Run("AppendExtends", func(t *testing.T) {
		store := newStore()
		defer store.Close()
		ctx := context.Background()

		if err := store.Append(ctx, "run-1", ops[:1]); err != nil {
			t.Fatalf("append failed: %v", err)
		}
		if err := store.Append(ctx, "run-1", ops[1:]); err != nil {
			t.Fatalf("append failed: %v", err)
		}

		records, err := store.Read(ctx, "run-1")
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
		if records[1].Seq != 1 {
			t.Errorf("second append should continue sequence, got seq %d", records[1].Seq)
		}
	})

	t.Run("ReadUnknownRun", func(t *testing.T) {
		store := newStore()
		defer store.Close()

		_, err := store.Read(context.Background(), "missing")
		if !errors.Is(err, recordlog.ErrRunNotFound) {
			t.Errorf("got err %v, want ErrRunNotFound", err)
		}
	})

	t.Run("Runs", func(t *testing.T) {
		store := newStore()
		defer store.Close()
		ctx := context.Background()

		if err := store.Append(ctx, "run-b", ops[:1]); err != nil {
			t.Fatalf("append failed: %v", err)
		}
		if err := store.Append(ctx, "run-a", ops[:1]); err != nil {
			t.Fatalf("append failed: %v", err)
		}

		runs, err := store.Runs(ctx)
		if err != nil {
			t.Fatalf("runs failed: %v", err)
		}
		if len(runs) != 2 || runs[0] != "run-a" || runs[1] != "run-b" {
			t.Errorf("runs = %v, want [run-a run-b]", runs)
		}
	})

	t.Run("PayloadRoundTrip", func(t *testing.T) {
		store := newStore()
		defer store.Close()
		ctx := context.Background()

		if err := store.Append(ctx, "run-1", ops[:1]); err != nil {
			t.Fatalf("append failed: %v", err)
		}
		records, err := store.Read(ctx, "run-1")
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		theta, ok := records[0].Payload["theta"].(float64)
		if !ok || theta != 1.0472 {
			t.Errorf("payload theta = %v, want 1.0472", records[0].Payload["theta"])
		}
	})
}
