// File: optionality.go
// Role: structural optionality — BFS-layer reachability weighted 3/2/1.
package institutional

import "github.com/katalvlaran/multiplexnet/primitives"

// StructuralOptionality returns, for every node, (3*r1 + 2*r2 + r3) /
// (6*(|V|-1)) where rk is the count of nodes at distance exactly k in
// {1,2,3}. 0 for every node when |V| <= 1.
func (a *Analyzer) StructuralOptionality() map[string]float64 {
	nodes := a.g.Vertices()
	n := len(nodes)
	result := make(map[string]float64, n)

	if n <= 1 {
		for _, v := range nodes {
			result[v] = 0
		}

		return result
	}

	for _, v := range nodes {
		dist := primitives.BFSDistances(a.g, v, false)
		var r1, r2, r3 int
		for u, d := range dist {
			if u == v {
				continue
			}
			switch d {
			case 1:
				r1++
			case 2:
				r2++
			case 3:
				r3++
			}
		}
		result[v] = float64(3*r1+2*r2+r3) / float64(6*(n-1))
	}

	return result
}
