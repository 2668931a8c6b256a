package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/qoracle-xyz/go-qoracle/sensitivity"
	"github.com/qoracle-xyz/go-qoracle/synth"
)

func sweep(args []string) error {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	minControls := fs.Int("min", 2, "Smallest control count")
	maxControls := fs.Int("max", 6, "Largest control count")
	metric := fs.String("metric", "tcount", "Score metric: tcount, toffoli or tdepth")
	parallel := fs.Bool("parallel", false, "Compile sweep points concurrently")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: qoracle sweep [options]

Sweep the control count of an AND truth table and report how the chosen
cost metric scales, with the best and worst points.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *minControls < 2 || *maxControls < *minControls {
		return fmt.Errorf("invalid range [%d, %d]", *minControls, *maxControls)
	}

	scorer, err := selectScorer(*metric)
	if err != nil {
		return err
	}

	build := func(n int) (*synth.Circuit, error) {
		return synth.Compile(andTable(n), nil)
	}

	var result *sensitivity.SweepResult
	if *parallel {
		values := make([]int, 0, *maxControls-*minControls+1)
		for v := *minControls; v <= *maxControls; v++ {
			values = append(values, v)
		}
		result, err = sensitivity.SweepParallel("controls", values, build, scorer)
	} else {
		result, err = sensitivity.SweepRange("controls", *minControls, *maxControls, build, scorer)
	}
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}

	fmt.Printf("Sweep %s, metric %s:\n", result.Parameter, *metric)
	for i, v := range result.Values {
		fmt.Printf("  %s=%d  score=%.0f  (toffoli=%d t=%d ancilla=%d)\n",
			result.Parameter, v, result.Scores[i],
			result.Costs[i].ToffoliCount, result.Costs[i].TCount,
			result.Costs[i].AncillaPeakEstimate)
	}
	fmt.Printf("Best:  %s=%d score=%.0f\n", result.Parameter, result.Best.Value, result.Best.Score)
	fmt.Printf("Worst: %s=%d score=%.0f\n", result.Parameter, result.Worst.Value, result.Worst.Score)

	return nil
}

func selectScorer(metric string) (sensitivity.Scorer, error) {
	switch metric {
	case "tcount":
		return sensitivity.TCountScore, nil
	case "toffoli":
		return sensitivity.ToffoliScore, nil
	case "tdepth":
		return sensitivity.TDepthScore, nil
	default:
		return nil, fmt.Errorf("unknown metric: %s", metric)
	}
}
