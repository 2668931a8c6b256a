package recordlog

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/qoracle-xyz/go-qoracle/blockenc"
)

// MemoryStore keeps records in memory. Safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	runs   map[string][]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{runs: make(map[string][]Record)}
}

// Append implements Store.
func (s *MemoryStore) Append(ctx context.Context, runID string, ops []blockenc.Operation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := len(s.runs[runID])
	for i, op := range ops {
		s.nextID++
		s.runs[runID] = append(s.runs[runID], Record{
			ID:        s.nextID,
			RunID:     runID,
			Seq:       seq + i,
			Op:        opName(op),
			Payload:   op,
			CreatedAt: time.Now().UTC(),
		})
	}

	return nil
}

// Read implements Store.
func (s *MemoryStore) Read(ctx context.Context, runID string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, ok := s.runs[runID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	out := make([]Record, len(records))
	copy(out, records)

	return out, nil
}

// Runs implements Store.
func (s *MemoryStore) Runs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.runs))
	for id := range s.runs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids, nil
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	return nil
}
