// File: stability.go
// Role: meta-stability — degree-distribution entropy combined with
// clustering-coefficient dispersion.
package institutional

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/multiplexnet/graphmodel"
)

// MetaStability returns (H(degree_dist)/log(n) + sigma(clustering)) / 2,
// clamped to [0,1]. Returns 0 for an empty graph.
func (a *Analyzer) MetaStability() float64 {
	nodes := a.g.Vertices()
	n := len(nodes)
	if n == 0 {
		return 0
	}

	degreeCounts := make(map[int]int, n)
	for _, v := range nodes {
		degreeCounts[a.g.Degree(v)]++
	}
	probs := make([]float64, 0, len(degreeCounts))
	for _, c := range degreeCounts {
		probs = append(probs, float64(c)/float64(n))
	}

	var normEntropy float64
	if n > 1 {
		normEntropy = stat.Entropy(probs) / math.Log(float64(n))
	}

	clustering := make([]float64, n)
	for i, v := range nodes {
		clustering[i] = localClusteringCoefficient(a.g, v)
	}
	sigma := populationStdDev(clustering)

	combined := (normEntropy + sigma) / 2
	if combined < 0 {
		combined = 0
	}
	if combined > 1 {
		combined = 1
	}

	return combined
}

// localClusteringCoefficient treats direction-agnostic adjacency (union
// of successors and predecessors), since D's clustering is a structural
// rather than flow-directional property here.
func localClusteringCoefficient(g *graphmodel.Graph, v string) float64 {
	seen := make(map[string]bool)
	for _, nb := range g.NeighborIDs(v) {
		seen[nb] = true
	}
	for _, nb := range g.Predecessors(v) {
		seen[nb] = true
	}
	delete(seen, v)

	neighbors := make([]string, 0, len(seen))
	for nb := range seen {
		neighbors = append(neighbors, nb)
	}
	k := len(neighbors)
	if k < 2 {
		return 0
	}

	links := 0
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if g.HasEdge(neighbors[i], neighbors[j]) || g.HasEdge(neighbors[j], neighbors[i]) {
				links++
			}
		}
	}

	possible := float64(k*(k-1)) / 2

	return float64(links) / possible
}

// populationStdDev computes the population (not sample) standard
// deviation of x.
func populationStdDev(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	mean := stat.Mean(x, nil)
	sumSq := 0.0
	for _, v := range x {
		d := v - mean
		sumSq += d * d
	}

	return math.Sqrt(sumSq / float64(n))
}
