package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/qoracle-xyz/go-qoracle/zkcert"
)

func certify(args []string) error {
	fs := flag.NewFlagSet("certify", flag.ExitOnError)
	bits := fs.Int("bits", 2, "Input bits of the AND table to certify")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: qoracle certify [options]

Compile a lookup consistency certificate for an n-input AND truth table
over its full domain and print the circuit shape.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *bits < 2 || *bits > 10 {
		return fmt.Errorf("bits must be in [2, 10], got %d", *bits)
	}

	form := andTable(*bits)
	queries := make([]int, 1<<*bits)
	for x := range queries {
		queries[x] = x
	}

	cert, err := zkcert.Certify(form, queries)
	if err != nil {
		return fmt.Errorf("certify: %w", err)
	}

	fmt.Printf("Certificate for %s:\n", cert.FormName)
	fmt.Printf("  Queries:     %d\n", cert.NbQueries)
	fmt.Printf("  Constraints: %d\n", cert.NbConstraints)
	fmt.Printf("  Public:      %d\n", cert.NbPublic)
	fmt.Printf("  Secret:      %d\n", cert.NbSecret)

	return nil
}
