package schedule

import (
	"errors"
	"testing"

	"github.com/qoracle-xyz/go-qoracle/blockenc"
)

type stubEncoding struct {
	fail bool
}

func (s *stubEncoding) Metadata() blockenc.Metadata {
	return blockenc.Metadata{Name: "stub", Alpha: 1}
}

func (s *stubEncoding) Do(q blockenc.Query) (blockenc.Operation, error) {
	if s.fail {
		return nil, errors.New("stub failure")
	}
	return blockenc.Operation{"op": "stub", "step": q.Step}, nil
}

func (s *stubEncoding) Adjoint(q blockenc.Query) (blockenc.Operation, error) {
	return s.Do(q)
}

func TestRunnerExecutesInOrder(t *testing.T) {
	enc := &stubEncoding{}
	var sched Schedule
	for i := 0; i < 3; i++ {
		sched.Append(Call{Index: i, Encoding: enc, Request: blockenc.Query{Step: i}})
	}
	if sched.Len() != 3 {
		t.Fatalf("Len = %d, want 3", sched.Len())
	}

	var runner Runner
	result, err := runner.Run(&sched)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.RunID == "" {
		t.Error("expected a non-empty run ID")
	}
	if len(result.Operations) != 3 {
		t.Fatalf("got %d operations, want 3", len(result.Operations))
	}
	for i, op := range result.Operations {
		if op["step"] != i {
			t.Errorf("operation %d has step %v, want %d", i, op["step"], i)
		}
	}
}

func TestRunnerFailFast(t *testing.T) {
	var sched Schedule
	sched.Append(Call{Index: 0, Encoding: &stubEncoding{}, Request: blockenc.Query{}})
	sched.Append(Call{Index: 1, Encoding: &stubEncoding{fail: true}, Request: blockenc.Query{}})

	var runner Runner
	if _, err := runner.Run(&sched); err == nil {
		t.Fatal("expected failure, got nil")
	}
}

func TestRunIDsAreUnique(t *testing.T) {
	var sched Schedule
	var runner Runner
	a, err := runner.Run(&sched)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	b, err := runner.Run(&sched)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if a.RunID == b.RunID {
		t.Errorf("two runs share ID %q", a.RunID)
	}
}
