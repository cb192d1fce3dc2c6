// File: asymmetry.go
// Role: information asymmetry via closeness-based Gini.
package institutional

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/multiplexnet/primitives"
)

const (
	asymmetryNodeLimit = 100
	asymmetryPairLimit = 50
	asymmetryGapCutoff = 0.3
	hubPercentile      = 0.9
	peripheryPercentile = 0.1
)

// InformationAsymmetry computes per-node access scores ((in-closeness +
// out-closeness)/2), the largest access gaps among the first 100 nodes,
// hub/periphery sets by percentile, and the Gini coefficient of access.
func (a *Analyzer) InformationAsymmetry() InformationAsymmetryResult {
	nodes := a.g.Vertices()
	inClose := primitives.Closeness(a.g, true)
	outClose := primitives.Closeness(a.g, false)

	access := make(map[string]float64, len(nodes))
	for _, v := range nodes {
		access[v] = (inClose[v] + outClose[v]) / 2
	}

	first := a.g.VertexOrder()
	if len(first) > asymmetryNodeLimit {
		first = first[:asymmetryNodeLimit]
	}

	var pairs []AsymmetricPair
	for i := 0; i < len(first); i++ {
		for j := i + 1; j < len(first); j++ {
			u, v := first[i], first[j]
			gap := math.Abs(access[u] - access[v])
			if gap > asymmetryGapCutoff {
				pairs = append(pairs, AsymmetricPair{U: u, V: v, Gap: gap})
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Gap > pairs[j].Gap })
	if len(pairs) > asymmetryPairLimit {
		pairs = pairs[:asymmetryPairLimit]
	}

	vals := make([]float64, 0, len(nodes))
	for _, v := range nodes {
		vals = append(vals, access[v])
	}

	var hubs, periphery []string
	if len(vals) > 0 {
		sortedVals := append([]float64{}, vals...)
		sort.Float64s(sortedVals)
		hubThresh := stat.Quantile(hubPercentile, stat.Empirical, sortedVals, nil)
		periThresh := stat.Quantile(peripheryPercentile, stat.Empirical, sortedVals, nil)
		for _, v := range nodes {
			if access[v] >= hubThresh {
				hubs = append(hubs, v)
			}
			if access[v] <= periThresh {
				periphery = append(periphery, v)
			}
		}
		sort.Strings(hubs)
		sort.Strings(periphery)
	}

	return InformationAsymmetryResult{
		Access:          access,
		AsymmetricPairs: pairs,
		Hubs:            hubs,
		Periphery:       periphery,
		Gini:            giniCoefficient(vals),
	}
}

// giniCoefficient computes the Gini coefficient of a (not-necessarily
// sorted) value slice, clamped to [0,1].
func giniCoefficient(vals []float64) float64 {
	n := len(vals)
	if n == 0 {
		return 0
	}

	s := append([]float64{}, vals...)
	sort.Float64s(s)

	sum := 0.0
	for _, v := range s {
		sum += v
	}
	if sum == 0 {
		return 0
	}

	numerator := 0.0
	for i, v := range s {
		numerator += float64(2*i-n+1) * v
	}

	g := numerator / (float64(n) * sum)
	if g < 0 {
		g = 0
	}
	if g > 1 {
		g = 1
	}

	return g
}
