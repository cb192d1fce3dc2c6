// File: triangles.go
// Role: signed-triangle enumeration via a node-centred neighbor-pair
// scan, deduplicated by requiring u < v < w in sorted node order so each
// triangle is visited exactly once regardless of which of its three
// nodes the outer loop reaches first.
package balance

// AnalyzeTriangles enumerates every unordered triangle {u,v,w} with all
// three edges present, classifying each by negative-edge count: balanced
// when k in {0,2}, frustrated when k in {1,3}.
func (a *Analyzer) AnalyzeTriangles() TriangleAnalysis {
	edgeSign := make(map[string]map[string]int8)
	for _, id := range a.g.Edges() {
		e, _ := a.g.GetEdge(id)
		if edgeSign[e.From] == nil {
			edgeSign[e.From] = make(map[string]int8)
		}
		if edgeSign[e.To] == nil {
			edgeSign[e.To] = make(map[string]int8)
		}
		edgeSign[e.From][e.To] = e.Sign
		edgeSign[e.To][e.From] = e.Sign
	}

	var total, balanced, frustrated int
	for _, u := range a.g.Vertices() {
		neighbors := a.g.NeighborIDs(u)
		for i := 0; i < len(neighbors); i++ {
			v := neighbors[i]
			if v <= u {
				continue
			}
			for j := i + 1; j < len(neighbors); j++ {
				w := neighbors[j]
				if w <= v {
					continue
				}
				sign3, ok := edgeSign[v][w]
				if !ok {
					continue
				}
				total++
				neg := 0
				for _, s := range [3]int8{edgeSign[u][v], edgeSign[u][w], sign3} {
					if s == -1 {
						neg++
					}
				}
				if neg == 0 || neg == 2 {
					balanced++
				} else {
					frustrated++
				}
			}
		}
	}

	ratio := 1.0
	if total > 0 {
		ratio = float64(balanced) / float64(total)
	}

	return TriangleAnalysis{Total: total, Balanced: balanced, Frustrated: frustrated, BalanceRatio: ratio}
}
