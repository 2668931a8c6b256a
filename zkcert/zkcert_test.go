package zkcert

import (
	"errors"
	"testing"

	"github.com/qoracle-xyz/go-qoracle/funcform"
)

func andForm() *funcform.LookupTableForm {
	return &funcform.LookupTableForm{
		NInputBits:  2,
		NOutputBits: 1,
		Table:       map[int]int{0: 0, 1: 0, 2: 0, 3: 1},
		Name:        "and2",
	}
}

func TestCertifyCompiles(t *testing.T) {
	cert, err := Certify(andForm(), []int{0, 1, 2, 3})
	if err != nil {
		t.Fatalf("Certify failed: %v", err)
	}

	t.Logf("certificate: %+v", cert)

	if cert.FormName != "and2" {
		t.Errorf("FormName = %q, want and2", cert.FormName)
	}
	if cert.NbQueries != 4 {
		t.Errorf("NbQueries = %d, want 4", cert.NbQueries)
	}
	if cert.NbConstraints == 0 {
		t.Error("expected a non-empty constraint system")
	}
	// 4 In + 4 Out public variables, plus gnark's constant one wire.
	if cert.NbPublic < 8 {
		t.Errorf("NbPublic = %d, want at least 8", cert.NbPublic)
	}
}

func TestCertifyValidation(t *testing.T) {
	t.Run("NoQueries", func(t *testing.T) {
		if _, err := Certify(andForm(), nil); !errors.Is(err, ErrNoQueries) {
			t.Errorf("got err %v, want ErrNoQueries", err)
		}
	})

	t.Run("QueryOutOfRange", func(t *testing.T) {
		if _, err := Certify(andForm(), []int{4}); !errors.Is(err, funcform.ErrRange) {
			t.Errorf("got err %v, want ErrRange", err)
		}
	})

	t.Run("MalformedForm", func(t *testing.T) {
		bad := &funcform.LookupTableForm{NInputBits: 2, NOutputBits: 1, Table: map[int]int{0: 0}}
		if _, err := Certify(bad, []int{0}); !errors.Is(err, funcform.ErrMalformedTable) {
			t.Errorf("got err %v, want ErrMalformedTable", err)
		}
	})
}

func TestAssignmentMatchesTable(t *testing.T) {
	assignment, err := Assignment(andForm(), []int{3, 1})
	if err != nil {
		t.Fatalf("Assignment failed: %v", err)
	}
	if len(assignment.In) != 2 || len(assignment.Out) != 2 {
		t.Fatalf("assignment shape = %d/%d, want 2/2", len(assignment.In), len(assignment.Out))
	}
	if assignment.In[0] != 3 || assignment.Out[0] != 1 {
		t.Errorf("query 0 = (%v -> %v), want (3 -> 1)", assignment.In[0], assignment.Out[0])
	}
	if assignment.In[1] != 1 || assignment.Out[1] != 0 {
		t.Errorf("query 1 = (%v -> %v), want (1 -> 0)", assignment.In[1], assignment.Out[1])
	}
}
