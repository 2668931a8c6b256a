// Package zkcert builds zero-knowledge consistency certificates for compiled
// oracle tables. A certificate circuit commits a lookup-table form in-circuit
// and constrains a batch of public (input, output) query pairs to agree with
// the committed table, using gnark's log-derivative lookup argument. This
// gives collaborators a way to check that exported truth tables match the
// function they were synthesized from without re-enumerating the domain.
package zkcert

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/std/lookup/logderivlookup"

	"github.com/qoracle-xyz/go-qoracle/funcform"
)

// ErrNoQueries is returned when a certificate is requested for an empty
// query batch.
var ErrNoQueries = errors.New("certificate requires at least one query")

// LookupCircuit constrains Out[i] == table[In[i]] for every public query
// pair, against a table baked into the circuit at compile time.
type LookupCircuit struct {
	In  []frontend.Variable `gnark:",public"`
	Out []frontend.Variable `gnark:",public"`

	table []int
}

// Define implements frontend.Circuit.
func (c *LookupCircuit) Define(api frontend.API) error {
	tbl := logderivlookup.New(api)
	for _, v := range c.table {
		tbl.Insert(v)
	}
	results := tbl.Lookup(c.In...)
	for i := range results {
		api.AssertIsEqual(results[i], c.Out[i])
	}

	return nil
}

// Certificate reports the compiled certificate circuit's shape.
type Certificate struct {
	FormName      string
	NbQueries     int
	NbConstraints int
	NbPublic      int
	NbSecret      int
}

// Certify compiles a lookup certificate for the given form over the given
// query inputs. The form is validated and its table committed in ascending
// input order; each query input must lie in the form's domain.
func Certify(form *funcform.LookupTableForm, queries []int) (*Certificate, error) {
	if len(queries) == 0 {
		return nil, ErrNoQueries
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	maxIn := 1 << uint(form.NInputBits)
	for _, q := range queries {
		if q < 0 || q >= maxIn {
			return nil, fmt.Errorf("%w: query input %d outside nInputBits=%d",
				funcform.ErrRange, q, form.NInputBits)
		}
	}

	circuit := &LookupCircuit{
		In:    make([]frontend.Variable, len(queries)),
		Out:   make([]frontend.Variable, len(queries)),
		table: tableSlice(form),
	}
	cs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, circuit)
	if err != nil {
		return nil, fmt.Errorf("certificate circuit compilation failed: %w", err)
	}

	return &Certificate{
		FormName:      form.Name,
		NbQueries:     len(queries),
		NbConstraints: cs.GetNbConstraints(),
		NbPublic:      cs.GetNbPublicVariables(),
		NbSecret:      cs.GetNbSecretVariables(),
	}, nil
}

// Assignment returns a fully assigned witness circuit for the given query
// inputs, suitable for proof generation against the compiled certificate.
func Assignment(form *funcform.LookupTableForm, queries []int) (*LookupCircuit, error) {
	if len(queries) == 0 {
		return nil, ErrNoQueries
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	maxIn := 1 << uint(form.NInputBits)
	in := make([]frontend.Variable, len(queries))
	out := make([]frontend.Variable, len(queries))
	for i, q := range queries {
		if q < 0 || q >= maxIn {
			return nil, fmt.Errorf("%w: query input %d outside nInputBits=%d",
				funcform.ErrRange, q, form.NInputBits)
		}
		in[i] = q
		out[i] = form.Table[q]
	}

	return &LookupCircuit{In: in, Out: out, table: tableSlice(form)}, nil
}

func tableSlice(form *funcform.LookupTableForm) []int {
	table := make([]int, 1<<uint(form.NInputBits))
	for x := range table {
		table[x] = form.Table[x]
	}
	return table
}
