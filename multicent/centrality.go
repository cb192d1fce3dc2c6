// File: centrality.go
// Role: per-layer centralities, versatility, participation coefficient,
// and cross-layer aggregation.
package multicent

import (
	"fmt"

	"github.com/katalvlaran/multiplexnet/graphmodel"
	"github.com/katalvlaran/multiplexnet/primitives"
	"github.com/katalvlaran/multiplexnet/xerr"
)

// eigenvectorMaxIter / eigenvectorTol and pageRankMaxIter / pageRankTol
// are the per-layer centrality defaults — a cap around 1000 iterations
// keeps power iteration from spinning indefinitely on a pathological
// layer while still converging well before the cap on ordinary ones.
const (
	eigenvectorMaxIter = 1000
	eigenvectorTol     = 1e-6
	pageRankMaxIter    = 1000
	pageRankTol        = 1e-6
	pageRankDamping    = 0.85
)

func degreeCentrality(g *graphmodel.Graph, node string) float64 {
	if !g.HasVertex(node) {
		return 0
	}
	n := g.VertexCount()
	if n <= 1 {
		return 0
	}

	return float64(g.Degree(node)) / float64(n-1)
}

// LayerCentralities computes degree (normalized), betweenness, closeness,
// eigenvector, and PageRank centrality for every node of the named layer.
func (a *Analyzer) LayerCentralities(layer string) (LayerCentralities, error) {
	g, err := a.net.Layer(layer)
	if err != nil {
		return LayerCentralities{}, fmt.Errorf("%w: %w", xerr.ErrUnknownLayer, err)
	}

	degree := make(map[string]float64, g.VertexCount())
	for _, v := range g.Vertices() {
		degree[v] = degreeCentrality(g, v)
	}

	return LayerCentralities{
		Degree:      degree,
		Betweenness: primitives.Betweenness(g),
		Closeness:   primitives.Closeness(g, false),
		Eigenvector: primitives.EigenvectorCentrality(g, eigenvectorMaxIter, eigenvectorTol),
		PageRank:    primitives.PageRank(g, pageRankDamping, pageRankMaxIter, pageRankTol),
	}, nil
}

// Versatility returns |{layers containing node}| / |L|.
func (a *Analyzer) Versatility(node string) (float64, error) {
	if !contains(a.net.Universe(), node) {
		return 0, fmt.Errorf("%w: %s", xerr.ErrUnknownNode, node)
	}
	numLayers := a.net.NumLayers()
	if numLayers == 0 {
		return 0, nil
	}

	return float64(len(a.net.NodeLayers(node))) / float64(numLayers), nil
}

// ParticipationCoefficient measures how evenly node's connectivity is
// distributed across layers.
func (a *Analyzer) ParticipationCoefficient(node string) (float64, error) {
	if !contains(a.net.Universe(), node) {
		return 0, fmt.Errorf("%w: %s", xerr.ErrUnknownNode, node)
	}

	layers := a.net.LayerNames()
	numLayers := len(layers)
	if numLayers <= 1 {
		return 0, nil
	}

	degrees := make([]float64, 0, numLayers)
	total := 0.0
	for _, l := range layers {
		g, _ := a.net.Layer(l)
		if !g.HasVertex(node) {
			continue
		}
		d := float64(g.Degree(node))
		if d > 0 {
			degrees = append(degrees, d)
			total += d
		}
	}
	if total <= 0 {
		return 0, nil
	}

	sumSq := 0.0
	for _, d := range degrees {
		frac := d / total
		sumSq += frac * frac
	}

	p := (float64(numLayers) / float64(numLayers-1)) * (1 - sumSq)
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	return p, nil
}

// AggregateCentrality computes node's cross-layer centrality under the
// given method ("aggregate", "max", or "harmonic"). weights is only used
// by "aggregate"; nil or empty means uniform, and any non-empty map is
// renormalized to sum to 1 over the network's layers.
func (a *Analyzer) AggregateCentrality(node, method string, weights map[string]float64) (float64, error) {
	layers := a.net.LayerNames()
	if len(layers) == 0 {
		return 0, nil
	}

	switch method {
	case MethodAggregate:
		w := normalizeWeights(layers, weights)
		sum := 0.0
		for _, l := range layers {
			g, _ := a.net.Layer(l)
			sum += w[l] * degreeCentrality(g, node)
		}

		return sum, nil

	case MethodMax:
		best := 0.0
		for _, l := range layers {
			g, _ := a.net.Layer(l)
			if dc := layerDegreeCentralityIfPresent(g, node); dc > best {
				best = dc
			}
		}

		return best, nil

	case MethodHarmonic:
		var vals []float64
		for _, l := range layers {
			g, _ := a.net.Layer(l)
			if dc := layerDegreeCentralityIfPresent(g, node); dc > 0 {
				vals = append(vals, dc)
			}
		}
		if len(vals) == 0 {
			return 0, nil
		}
		sumInv := 0.0
		for _, v := range vals {
			sumInv += 1 / v
		}

		return float64(len(vals)) / sumInv, nil

	default:
		return 0, fmt.Errorf("%w: %q: %w", xerr.ErrInvalidInput, method, ErrUnknownMethod)
	}
}

// layerDegreeCentralityIfPresent returns 0 for a node absent from the
// layer and for a singleton layer, where degree centrality is undefined
// (n-1 == 0).
func layerDegreeCentralityIfPresent(g *graphmodel.Graph, node string) float64 {
	if !g.HasVertex(node) {
		return 0
	}
	n := g.VertexCount()
	if n <= 1 {
		return 0
	}

	return float64(g.Degree(node)) / float64(n-1)
}

func normalizeWeights(layers []string, weights map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(layers))
	if len(weights) == 0 {
		u := 1.0 / float64(len(layers))
		for _, l := range layers {
			out[l] = u
		}

		return out
	}

	sum := 0.0
	for _, l := range layers {
		sum += weights[l]
	}
	if sum <= 0 {
		u := 1.0 / float64(len(layers))
		for _, l := range layers {
			out[l] = u
		}

		return out
	}
	for _, l := range layers {
		out[l] = weights[l] / sum
	}

	return out
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}

	return false
}
