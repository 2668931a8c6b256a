package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "demo":
		if err := demo(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "cost":
		if err := cost(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "sweep":
		if err := sweep(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "certify":
		if err := certify(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "runs":
		if err := runs(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("qoracle version 0.1.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`qoracle - classical-oracle compilation and block-encoding tool

Usage:
  qoracle <command> [options]

Commands:
  demo       Build a sparse-matrix oracle bundle and run a query schedule
  cost       Compile example forms and print their logical gate cost
  sweep      Sweep a compiler parameter and rank the resulting costs
  certify    Compile a lookup consistency certificate for a truth table
  runs       List schedule runs persisted in a record database
  help       Show this help message
  version    Show version information

Examples:
  # Run the demo schedule and print its operation records
  qoracle demo

  # Persist the demo records and export an estimator summary
  qoracle demo --db records.db --backend qiskit

  # Gate cost of a 4-controlled AND
  qoracle cost --controls 4

  # T-count sweep over control counts
  qoracle sweep --min 2 --max 6 --metric tcount

For command-specific help, run:
  qoracle <command> --help`)
}
