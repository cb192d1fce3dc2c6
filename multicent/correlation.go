// File: correlation.go
// Role: Pearson layer-correlation matrix of per-layer degree-centrality
// vectors.
package multicent

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// LayerCorrelation produces an |L| x |L| Pearson correlation matrix of
// per-layer degree-centrality vectors over the universe (absent nodes
// contribute 0). For a universe of size <= 1, returns the identity.
func (a *Analyzer) LayerCorrelation() *mat.Dense {
	universe := a.net.Universe()
	layers := a.net.LayerNames()
	n := len(universe)
	numLayers := len(layers)

	if numLayers == 0 {
		return &mat.Dense{}
	}
	corr := mat.NewDense(numLayers, numLayers, nil)
	if n <= 1 {
		for i := 0; i < numLayers; i++ {
			corr.Set(i, i, 1)
		}

		return corr
	}

	vectors := make([][]float64, numLayers)
	for li, l := range layers {
		g, _ := a.net.Layer(l)
		vec := make([]float64, n)
		for i, v := range universe {
			vec[i] = degreeCentrality(g, v)
		}
		vectors[li] = vec
	}

	for i := 0; i < numLayers; i++ {
		for j := i; j < numLayers; j++ {
			var c float64
			if i == j {
				c = 1
			} else {
				c = stat.Correlation(vectors[i], vectors[j], nil)
			}
			corr.Set(i, j, c)
			corr.Set(j, i, c)
		}
	}

	return corr
}

// VersatileNodes returns universe nodes present in at least minLayers
// layers, derived from the same per-node layer membership Versatility
// uses.
func (a *Analyzer) VersatileNodes(minLayers int) []string {
	var out []string
	for _, v := range a.net.Universe() {
		if len(a.net.NodeLayers(v)) >= minLayers {
			out = append(out, v)
		}
	}

	return out
}
