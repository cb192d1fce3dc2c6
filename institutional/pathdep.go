// File: pathdep.go
// Role: path-dependence analysis via critical-junction reachability (spec
// §4.3).
package institutional

import (
	"sort"

	"github.com/katalvlaran/multiplexnet/graphmodel"
	"github.com/katalvlaran/multiplexnet/primitives"
)

const (
	minJunctionOutDegree   = 2
	altHistoriesJunctions  = 10
	altHistoriesCutoff     = 3
)

// descendants returns nodes reachable from start, excluding start itself.
func descendants(g *graphmodel.Graph, start string) map[string]bool {
	dist := primitives.BFSDistances(g, start, false)
	out := make(map[string]bool, len(dist))
	for n, d := range dist {
		if d > 0 {
			out[n] = true
		}
	}

	return out
}

// reachableWithin counts nodes (including start) at distance <= k.
func reachableWithin(g *graphmodel.Graph, start string, k int) int {
	dist := primitives.BFSDistances(g, start, false)
	count := 0
	for _, d := range dist {
		if d <= k {
			count++
		}
	}

	return count
}

// PathDependence finds critical junctions (out-degree >= 2), the nodes
// that depend on exactly one junction for reachability, the number of
// alternative histories available near the first 10 junctions, and a
// lock-in score.
func (a *Analyzer) PathDependence() PathDependenceResult {
	var junctions []string
	for _, v := range a.g.VertexOrder() {
		if a.g.OutDegree(v) >= minJunctionOutDegree {
			junctions = append(junctions, v)
		}
	}

	reachedVia := make(map[string]map[string]bool)
	for _, j := range junctions {
		for d := range descendants(a.g, j) {
			if reachedVia[d] == nil {
				reachedVia[d] = make(map[string]bool)
			}
			reachedVia[d][j] = true
		}
	}

	var singlePathDependent []string
	for d, via := range reachedVia {
		if len(via) == 1 {
			singlePathDependent = append(singlePathDependent, d)
		}
	}
	sort.Strings(singlePathDependent)

	limit := junctions
	if len(limit) > altHistoriesJunctions {
		limit = limit[:altHistoriesJunctions]
	}
	altHistories := 0
	for _, j := range limit {
		reachable := reachableWithin(a.g, j, altHistoriesCutoff)
		if reachable-1 > 0 {
			altHistories += reachable - 1
		}
	}

	lockIn := 0.0
	n := a.g.VertexCount()
	if n > 0 {
		lockIn = float64(len(singlePathDependent)) / float64(n)
	}

	return PathDependenceResult{
		CriticalJunctions:    junctions,
		SinglePathDependent:  singlePathDependent,
		AlternativeHistories: altHistories,
		LockInScore:          lockIn,
	}
}
