// Package sensitivity sweeps compiler parameters and ranks circuit variants
// by logical resource cost. Scores come from a pluggable Scorer over the cost
// summary; lower scores are better throughout.
package sensitivity

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/qoracle-xyz/go-qoracle/synth"
)

// Scorer reduces a cost summary to a single figure of merit. Lower is better.
type Scorer func(synth.Cost) float64

// TCountScore scores a circuit by its T-gate count.
func TCountScore(c synth.Cost) float64 {
	return float64(c.TCount)
}

// ToffoliScore scores a circuit by its Toffoli count.
func ToffoliScore(c synth.Cost) float64 {
	return float64(c.ToffoliCount)
}

// TDepthScore scores a circuit by its T-depth estimate.
func TDepthScore(c synth.Cost) float64 {
	return float64(c.TDepthEstimate)
}

// Builder compiles a circuit for one value of the swept parameter.
type Builder func(value int) (*synth.Circuit, error)

// SweepResult holds per-value costs and scores from a parameter sweep.
type SweepResult struct {
	Parameter string
	Values    []int
	Costs     []synth.Cost
	Scores    []float64
	Best      struct {
		Value int
		Score float64
	}
	Worst struct {
		Value int
		Score float64
	}
}

// Sweep builds and costs a circuit for each value of a parameter.
func Sweep(parameter string, values []int, build Builder, score Scorer) (*SweepResult, error) {
	result := &SweepResult{
		Parameter: parameter,
		Values:    values,
		Costs:     make([]synth.Cost, len(values)),
		Scores:    make([]float64, len(values)),
	}

	bestScore := math.Inf(1)
	worstScore := math.Inf(-1)

	for i, val := range values {
		s, cost, err := evaluate(build, val, score)
		if err != nil {
			return nil, fmt.Errorf("%s=%d: %w", parameter, val, err)
		}
		result.Costs[i] = cost
		result.Scores[i] = s

		if s < bestScore {
			bestScore = s
			result.Best.Value = val
			result.Best.Score = s
		}
		if s > worstScore {
			worstScore = s
			result.Worst.Value = val
			result.Worst.Score = s
		}
	}

	return result, nil
}

// SweepRange sweeps every integer value in [min, max].
func SweepRange(parameter string, min, max int, build Builder, score Scorer) (*SweepResult, error) {
	values := make([]int, 0, max-min+1)
	for v := min; v <= max; v++ {
		values = append(values, v)
	}
	return Sweep(parameter, values, build, score)
}

// SweepParallel builds and costs each parameter value concurrently. Results
// are ordered as in the values slice.
func SweepParallel(parameter string, values []int, build Builder, score Scorer) (*SweepResult, error) {
	result := &SweepResult{
		Parameter: parameter,
		Values:    values,
		Costs:     make([]synth.Cost, len(values)),
		Scores:    make([]float64, len(values)),
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	var firstErr error

	for i, val := range values {
		wg.Add(1)
		go func(i, val int) {
			defer wg.Done()

			s, cost, err := evaluate(build, val, score)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("%s=%d: %w", parameter, val, err)
				}
				return
			}
			result.Costs[i] = cost
			result.Scores[i] = s
		}(i, val)
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	bestScore := math.Inf(1)
	worstScore := math.Inf(-1)
	for i, s := range result.Scores {
		if s < bestScore {
			bestScore = s
			result.Best.Value = values[i]
			result.Best.Score = s
		}
		if s > worstScore {
			worstScore = s
			result.Worst.Value = values[i]
			result.Worst.Score = s
		}
	}

	return result, nil
}

func evaluate(build Builder, value int, score Scorer) (float64, synth.Cost, error) {
	circuit, err := build(value)
	if err != nil {
		return 0, synth.Cost{}, err
	}
	cost, err := circuit.EstimateCost()
	if err != nil {
		return 0, synth.Cost{}, err
	}
	return score(cost), cost, nil
}

// Variant is a named circuit construction to compare against a baseline.
type Variant struct {
	Name  string
	Build func() (*synth.Circuit, error)
}

// RankedVariant is one entry in an impact ranking.
type RankedVariant struct {
	Name   string
	Impact float64
}

// Result holds per-variant scores and their impact relative to a baseline.
type Result struct {
	Baseline float64
	Scores   map[string]float64
	Impact   map[string]float64
	Ranking  []RankedVariant
}

// Analyze scores each variant and reports its impact, score minus baseline.
// Ranking orders variants by absolute impact, largest first.
func Analyze(baseline func() (*synth.Circuit, error), variants []Variant, score Scorer) (*Result, error) {
	result := &Result{
		Scores: make(map[string]float64),
		Impact: make(map[string]float64),
	}

	base, _, err := evaluate(func(int) (*synth.Circuit, error) { return baseline() }, 0, score)
	if err != nil {
		return nil, fmt.Errorf("baseline: %w", err)
	}
	result.Baseline = base

	for _, v := range variants {
		s, _, err := evaluate(func(int) (*synth.Circuit, error) { return v.Build() }, 0, score)
		if err != nil {
			return nil, fmt.Errorf("variant %s: %w", v.Name, err)
		}
		result.Scores[v.Name] = s
		result.Impact[v.Name] = s - base
	}

	result.Ranking = rankByImpact(result.Impact)

	return result, nil
}

// rankByImpact sorts variants by absolute impact (descending). Ties break by
// name for deterministic output.
func rankByImpact(impact map[string]float64) []RankedVariant {
	ranking := make([]RankedVariant, 0, len(impact))
	for name, imp := range impact {
		ranking = append(ranking, RankedVariant{Name: name, Impact: imp})
	}
	sort.Slice(ranking, func(i, j int) bool {
		ai, aj := math.Abs(ranking[i].Impact), math.Abs(ranking[j].Impact)
		if ai != aj {
			return ai > aj
		}
		return ranking[i].Name < ranking[j].Name
	})
	return ranking
}
