// File: constraint.go
// Role: constraint-dominance path counting. The 50/50 and length-5
// cutoffs are fixed design parameters, not tunables — they bound
// worst-case cost to O(50^2 * paths_of_length_<=5), which keeps a single
// call tractable even on a dense, highly-connected graph.
package institutional

import (
	"context"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/multiplexnet/primitives"
)

const (
	maxDecisionsOutcomes = 50
	maxPathLength        = 5
)

// ConstraintDominance scores each node in C by the fraction of
// bounded-length decision->outcome paths it appears on.
func (a *Analyzer) ConstraintDominance(ctx context.Context, c []string) (ConstraintDominanceResult, error) {
	var decisions, outcomes []string
	for _, v := range a.g.VertexOrder() {
		in := a.g.InDegree(v)
		out := a.g.OutDegree(v)
		if out > in {
			decisions = append(decisions, v)
		}
		if in > out {
			outcomes = append(outcomes, v)
		}
	}
	if len(decisions) > maxDecisionsOutcomes {
		decisions = decisions[:maxDecisionsOutcomes]
	}
	if len(outcomes) > maxDecisionsOutcomes {
		outcomes = outcomes[:maxDecisionsOutcomes]
	}

	score := make(map[string]float64, len(c))
	for _, n := range c {
		score[n] = 0
	}

	totalPaths := 0
	for _, d := range decisions {
		for _, o := range outcomes {
			err := primitives.EnumerateSimplePaths(ctx, a.g, d, o, maxPathLength, func(path []string) {
				totalPaths++
				inPath := make(map[string]bool, len(path))
				for _, n := range path {
					inPath[n] = true
				}
				for _, n := range c {
					if inPath[n] {
						score[n]++
					}
				}
			})
			if err != nil {
				return ConstraintDominanceResult{}, err
			}
		}
	}

	if totalPaths > 0 {
		for n := range score {
			score[n] /= float64(totalPaths)
		}
	}

	sorted := append([]string{}, c...)
	sort.Slice(sorted, func(i, j int) bool { return score[sorted[i]] > score[sorted[j]] })

	var hierarchy [][2]string
	for i := 0; i < len(sorted)-1; i++ {
		if score[sorted[i]] > score[sorted[i+1]] {
			hierarchy = append(hierarchy, [2]string{sorted[i], sorted[i+1]})
		}
	}

	var dominant []string
	var switchLikelihood float64
	if len(c) > 0 {
		vals := make([]float64, 0, len(c))
		for _, n := range c {
			vals = append(vals, score[n])
		}
		sort.Float64s(vals)

		threshold := stat.Quantile(0.8, stat.Empirical, vals, nil)
		for _, n := range c {
			if score[n] >= threshold {
				dominant = append(dominant, n)
			}
		}
		sort.Strings(dominant)

		max := vals[len(vals)-1]
		median := stat.Quantile(0.5, stat.Empirical, vals, nil)
		if max > 0 {
			sl := 1 - (max-median)/max
			if sl < 0 {
				sl = 0
			}
			if sl > 1 {
				sl = 1
			}
			switchLikelihood = sl
		}
	}

	return ConstraintDominanceResult{
		Scores:           score,
		Hierarchy:        hierarchy,
		DominantSet:      dominant,
		SwitchLikelihood: switchLikelihood,
		TotalPaths:       totalPaths,
	}, nil
}
