// File: result.go
// Role: StructuralBalanceResult — the combined, total view of the
// analyzer.
package balance

import "context"

// StructuralBalance combines the frustration index, frustrated edges,
// triangle analysis, and the two spectral clusters into a single result.
func (a *Analyzer) StructuralBalance(ctx context.Context) (StructuralBalanceResult, error) {
	frustration, err := a.FrustrationIndex(ctx)
	if err != nil {
		return StructuralBalanceResult{}, err
	}

	frustratedEdges, err := a.FindFrustratedEdges(ctx)
	if err != nil {
		return StructuralBalanceResult{}, err
	}

	clusterA, clusterB, err := a.clusters(ctx)
	if err != nil {
		return StructuralBalanceResult{}, err
	}

	triangles := a.AnalyzeTriangles()

	return StructuralBalanceResult{
		FrustrationIndex: frustration,
		IsBalanced:       frustration == 0,
		FrustratedEdges:  frustratedEdges,
		Triangles:        triangles,
		ClusterA:         clusterA,
		ClusterB:         clusterB,
		BalanceRatio:     triangles.BalanceRatio,
	}, nil
}
