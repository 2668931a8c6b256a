// Package schedule runs ordered sequences of block-encoding queries. A
// schedule may mix heterogeneous encodings and per-call parameters, which is
// what non-stationary query algorithms need.
package schedule

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/qoracle-xyz/go-qoracle/blockenc"
)

// Call is one scheduled query against one block encoding.
type Call struct {
	Index    int
	Encoding blockenc.BlockEncoding
	Request  blockenc.Query
}

// Schedule is an append-only ordered list of query calls.
type Schedule struct {
	calls []Call
}

// Append adds a call to the end of the schedule.
func (s *Schedule) Append(call Call) {
	s.calls = append(s.calls, call)
}

// Len returns the number of scheduled calls.
func (s *Schedule) Len() int {
	return len(s.calls)
}

// Calls returns the scheduled calls in order.
func (s *Schedule) Calls() []Call {
	return s.calls
}

// Result is the record stream produced by one schedule run.
type Result struct {
	RunID      string
	Operations []blockenc.Operation
}

// Runner executes schedules sequentially and fail-fast: the first query
// error aborts the run.
type Runner struct{}

// Run executes every call in order and collects the operation records under
// a fresh run ID.
func (r *Runner) Run(s *Schedule) (*Result, error) {
	result := &Result{
		RunID:      uuid.New().String(),
		Operations: make([]blockenc.Operation, 0, s.Len()),
	}
	for _, call := range s.Calls() {
		record, err := call.Encoding.Do(call.Request)
		if err != nil {
			return nil, fmt.Errorf("query %d: %w", call.Index, err)
		}
		result.Operations = append(result.Operations, record)
	}

	return result, nil
}
