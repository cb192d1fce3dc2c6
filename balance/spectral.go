// File: spectral.go
// Role: signed-Laplacian construction, Fiedler-vector spectral
// bipartition, frustrated-edge extraction, and balance-cluster
// extraction — all sharing the same partition procedure regardless of
// graph size, so frustrated-edge and cluster queries stay consistent
// with each other. For n <= ExactFrustrationCutoff the frustration index
// comes from exhaustive enumeration instead, so it can be lower than the
// number of frustrated edges this partition reports.
package balance

import (
	"context"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/multiplexnet/primitives"
	"github.com/katalvlaran/multiplexnet/xerr"
)

// spectralPartition builds the signed Laplacian L = D - A and returns,
// for every node, whether it falls in cluster A (true) or B (false).
// Ties (Fiedler value == 0) resolve to A. Degenerate graphs (n < 2, or
// an ill-defined second eigenvector) put every node in A.
func (a *Analyzer) spectralPartition(ctx context.Context, nodes []string) (map[string]bool, error) {
	select {
	case <-ctx.Done():
		return nil, xerr.ErrCancelled
	default:
	}

	n := len(nodes)
	partOf := make(map[string]bool, n)
	if n < 2 {
		for _, v := range nodes {
			partOf[v] = true
		}

		return partOf, nil
	}

	idx := make(map[string]int, n)
	for i, v := range nodes {
		idx[v] = i
	}

	adj := make([][]float64, n)
	for i := range adj {
		adj[i] = make([]float64, n)
	}
	for _, e := range a.signedEdges() {
		i, ok1 := idx[e.u]
		j, ok2 := idx[e.v]
		if !ok1 || !ok2 {
			continue
		}
		s := float64(e.sign)
		adj[i][j] += s
		adj[j][i] += s
	}

	deg := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			deg[i] += math.Abs(adj[i][j])
		}
	}

	L := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var val float64
			if i == j {
				val = deg[i] - adj[i][i]
			} else {
				val = -adj[i][j]
			}
			L.SetSym(i, j, val)
		}
	}

	f, err := primitives.FiedlerVector(L)
	if err != nil {
		return nil, err
	}
	if f == nil {
		for _, v := range nodes {
			partOf[v] = true
		}

		return partOf, nil
	}

	for i, v := range nodes {
		partOf[v] = f[i] >= 0
	}

	return partOf, nil
}

// FindFrustratedEdges returns the IDs of edges frustrated under the
// spectral bipartition, computed the same way regardless of graph size.
func (a *Analyzer) FindFrustratedEdges(ctx context.Context) ([]string, error) {
	nodes := a.g.VertexOrder()
	partOf, err := a.spectralPartition(ctx, nodes)
	if err != nil {
		return nil, err
	}

	var frustrated []string
	for _, id := range a.g.Edges() {
		e, _ := a.g.GetEdge(id)
		sameSide := partOf[e.From] == partOf[e.To]
		if (e.Sign == 1 && !sameSide) || (e.Sign == -1 && sameSide) {
			frustrated = append(frustrated, id)
		}
	}
	sort.Strings(frustrated)

	return frustrated, nil
}

// clusters returns the two spectral balance clusters, sorted.
func (a *Analyzer) clusters(ctx context.Context) ([]string, []string, error) {
	nodes := a.g.VertexOrder()
	partOf, err := a.spectralPartition(ctx, nodes)
	if err != nil {
		return nil, nil, err
	}

	var clusterA, clusterB []string
	for _, v := range nodes {
		if partOf[v] {
			clusterA = append(clusterA, v)
		} else {
			clusterB = append(clusterB, v)
		}
	}
	sort.Strings(clusterA)
	sort.Strings(clusterB)

	return clusterA, clusterB, nil
}
