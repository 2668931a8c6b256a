package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/qoracle-xyz/go-qoracle/funcform"
	"github.com/qoracle-xyz/go-qoracle/synth"
)

func cost(args []string) error {
	fs := flag.NewFlagSet("cost", flag.ExitOnError)
	controls := fs.Int("controls", 3, "Input bits of the AND example")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: qoracle cost [options]

Compile two example forms, an n-input AND truth table and an n-bit XOR
parity, and print the logical gate-cost summary of each.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *controls < 2 {
		return fmt.Errorf("controls must be >= 2, got %d", *controls)
	}

	andForm := andTable(*controls)
	andCircuit, err := synth.Compile(andForm, nil)
	if err != nil {
		return fmt.Errorf("compile %s: %w", andForm.FormName(), err)
	}
	if err := printCost(andForm.FormName(), andCircuit); err != nil {
		return err
	}

	parityForm := parityAffine(*controls)
	parityCircuit, err := synth.Compile(parityForm, nil)
	if err != nil {
		return fmt.Errorf("compile %s: %w", parityForm.FormName(), err)
	}
	return printCost(parityForm.FormName(), parityCircuit)
}

func printCost(name string, circuit *synth.Circuit) error {
	c, err := circuit.EstimateCost()
	if err != nil {
		return fmt.Errorf("estimate %s: %w", name, err)
	}

	fmt.Printf("%s (%d qubits, %d gates)\n", name, circuit.NQubits(), len(circuit.Operations))
	fmt.Printf("  X:            %d\n", c.XCount)
	fmt.Printf("  CNOT:         %d\n", c.CNOTCount)
	fmt.Printf("  Toffoli:      %d\n", c.ToffoliCount)
	fmt.Printf("  T:            %d\n", c.TCount)
	fmt.Printf("  T-depth:      %d\n", c.TDepthEstimate)
	fmt.Printf("  Ancilla peak: %d\n", c.AncillaPeakEstimate)

	return nil
}

func andTable(n int) *funcform.LookupTableForm {
	table := make(map[int]int, 1<<n)
	for x := 0; x < 1<<n; x++ {
		table[x] = 0
	}
	table[1<<n-1] = 1

	return &funcform.LookupTableForm{
		NInputBits:  n,
		NOutputBits: 1,
		Table:       table,
		Name:        fmt.Sprintf("and%d", n),
	}
}

func parityAffine(n int) *funcform.AffineXorForm {
	row := make([]int, n)
	for i := range row {
		row[i] = 1
	}

	return &funcform.AffineXorForm{
		NInputBits:  n,
		NOutputBits: 1,
		Matrix:      [][]int{row},
		OffsetBits:  []int{0},
		Name:        fmt.Sprintf("parity%d", n),
	}
}
