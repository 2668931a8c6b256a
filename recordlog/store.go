// Package recordlog persists the operation records produced by schedule
// runs, so resource-estimation tooling can replay or aggregate them later.
// Two backends are provided: an in-memory store for tests and short-lived
// analysis, and a SQLite store for durable logs.
package recordlog

import (
	"context"
	"errors"
	"time"

	"github.com/qoracle-xyz/go-qoracle/blockenc"
)

// ErrRunNotFound is returned when reading a run ID with no records.
var ErrRunNotFound = errors.New("run not found")

// Record is one persisted operation record.
type Record struct {
	ID        int64
	RunID     string
	Seq       int
	Op        string
	Payload   map[string]any
	CreatedAt time.Time
}

// Store is the persistence contract for operation records.
type Store interface {
	// Append stores the operations of one run in order.
	Append(ctx context.Context, runID string, ops []blockenc.Operation) error

	// Read returns all records of a run in sequence order.
	Read(ctx context.Context, runID string) ([]Record, error)

	// Runs lists the known run IDs.
	Runs(ctx context.Context) ([]string, error)

	// Close releases the underlying storage.
	Close() error
}

func opName(op blockenc.Operation) string {
	if name, ok := op["op"].(string); ok {
		return name
	}
	return ""
}
