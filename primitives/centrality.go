// File: centrality.go
// Role: closeness, betweenness (Brandes), eigenvector centrality, and
// classical PageRank over a single graph. Hand-rolled directly on
// graphmodel.Graph rather than via a gonum/graph adapter — see DESIGN.md
// for the tradeoff rationale.
package primitives

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/multiplexnet/graphmodel"
)

// Closeness computes closeness centrality for every node: Wasserman-Faust
// normalized, accounting for disconnected graphs. When reversed is true,
// distances are computed over predecessor edges (in-closeness, spec
// §4.3).
func Closeness(g *graphmodel.Graph, reversed bool) map[string]float64 {
	nodes := g.Vertices()
	n := len(nodes)
	result := make(map[string]float64, n)

	for _, v := range nodes {
		dist := BFSDistances(g, v, reversed)
		reachable := len(dist) - 1
		if reachable <= 0 || n <= 1 {
			result[v] = 0
			continue
		}

		sum := 0
		for u, d := range dist {
			if u == v {
				continue
			}
			sum += d
		}
		if sum == 0 {
			result[v] = 0
			continue
		}

		result[v] = (float64(reachable) / float64(sum)) * (float64(reachable) / float64(n-1))
	}

	return result
}

// Betweenness computes unweighted betweenness centrality via Brandes'
// algorithm, normalized the way networkx does (2/((n-1)(n-2)) for
// undirected graphs, 1/((n-1)(n-2)) for directed).
func Betweenness(g *graphmodel.Graph) map[string]float64 {
	nodes := g.Vertices()
	n := len(nodes)
	cb := make(map[string]float64, n)
	for _, v := range nodes {
		cb[v] = 0
	}
	if n < 3 {
		return cb
	}

	for _, s := range nodes {
		stack := make([]string, 0, n)
		pred := make(map[string][]string, n)
		sigma := make(map[string]float64, n)
		dist := make(map[string]int, n)
		for _, v := range nodes {
			sigma[v] = 0
			dist[v] = -1
			pred[v] = nil
		}
		sigma[s] = 1
		dist[s] = 0

		queue := []string{s}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)

			for _, w := range g.NeighborIDs(v) {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					pred[w] = append(pred[w], v)
				}
			}
		}

		delta := make(map[string]float64, n)
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range pred[w] {
				if sigma[w] > 0 {
					delta[v] += (sigma[v] / sigma[w]) * (1 + delta[w])
				}
			}
			if w != s {
				cb[w] += delta[w]
			}
		}
	}

	// Undirected graphs double-count every shortest path (once from each
	// endpoint's BFS); halve to per-pair counts, which are then normalized
	// by 2/((n-1)(n-2)), the number of unordered pairs not involving v.
	if !g.Directed() {
		for v := range cb {
			cb[v] /= 2
		}
	}
	scale := 1.0 / float64((n-1)*(n-2))
	if !g.Directed() {
		scale *= 2
	}
	for v := range cb {
		cb[v] *= scale
	}

	return cb
}

// EigenvectorCentrality runs power iteration (capped at maxIter, spec
// §4.2 "cap iterations ≈ 1000") and returns the L2-normalized principal
// eigenvector of the adjacency matrix. On non-convergence, returns an
// all-zero map (spec's documented fallback) instead of an error.
func EigenvectorCentrality(g *graphmodel.Graph, maxIter int, tol float64) map[string]float64 {
	nodes := g.Vertices()
	n := len(nodes)
	result := make(map[string]float64, n)
	if n == 0 {
		return result
	}

	idx := make(map[string]int, n)
	for i, v := range nodes {
		idx[v] = i
	}
	x := make([]float64, n)
	for i := range x {
		x[i] = 1.0 / float64(n)
	}

	converged := false
	for iter := 0; iter < maxIter; iter++ {
		next := make([]float64, n)
		for _, v := range nodes {
			for _, nb := range g.NeighborIDs(v) {
				next[idx[v]] += x[idx[nb]]
			}
		}
		norm := floats.Norm(next, 2)
		if norm == 0 {
			for i := range nodes {
				result[nodes[i]] = 0
			}
			return result
		}
		floats.Scale(1/norm, next)

		if floats.Distance(next, x, 1) < tol {
			x = next
			converged = true
			break
		}
		x = next
	}

	if !converged {
		for i := range nodes {
			result[nodes[i]] = 0
		}
		return result
	}
	for i, v := range nodes {
		result[v] = x[i]
	}

	return result
}

// PageRank runs classical single-graph PageRank via power iteration. On
// non-convergence, returns the uniform distribution 1/n (spec's
// documented fallback).
func PageRank(g *graphmodel.Graph, damping float64, maxIter int, tol float64) map[string]float64 {
	nodes := g.Vertices()
	n := len(nodes)
	result := make(map[string]float64, n)
	if n == 0 {
		return result
	}

	idx := make(map[string]int, n)
	for i, v := range nodes {
		idx[v] = i
	}
	uniform := 1.0 / float64(n)
	x := make([]float64, n)
	for i := range x {
		x[i] = uniform
	}

	outDeg := make([]float64, n)
	for i, v := range nodes {
		outDeg[i] = float64(len(g.NeighborIDs(v)))
	}

	converged := false
	for iter := 0; iter < maxIter; iter++ {
		next := make([]float64, n)
		dangling := 0.0
		for i, v := range nodes {
			if outDeg[i] == 0 {
				dangling += x[i]
				continue
			}
			share := x[i] / outDeg[i]
			for _, nb := range g.NeighborIDs(v) {
				next[idx[nb]] += share
			}
		}
		for i := range next {
			next[i] = damping*(next[i]+dangling*uniform) + (1-damping)*uniform
		}

		if floats.Distance(next, x, 1) < tol {
			x = next
			converged = true
			break
		}
		x = next
	}

	if !converged {
		for _, v := range nodes {
			result[v] = uniform
		}
		return result
	}
	for i, v := range nodes {
		result[v] = x[i]
	}

	return result
}
