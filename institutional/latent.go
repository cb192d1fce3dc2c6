// File: latent.go
// Role: latent-subgraph detection and BFS-wave cascade simulation.
package institutional

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/multiplexnet/graphmodel"
	"github.com/katalvlaran/multiplexnet/primitives"
)

const (
	minLatentSize   = 2
	maxCascadeTriggers = 5
	maxCascadeWaves    = 10
)

func toSet(nodes []string) map[string]bool {
	out := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		out[n] = true
	}

	return out
}

// DetectLatentSubgraphs finds weakly-connected components disjoint from
// the main (largest) component and larger than minLatentSize, their
// trigger nodes, and activation thresholds. It then pools every
// subgraph's trigger nodes into one global, insertion-ordered list and
// simulates an independent single-seed cascade from each of that list's
// first 5 entries — up to 5 cascades total, not one pooled-seed cascade
// per subgraph, so a node's cascade reach is never inflated by other
// triggers activating in lockstep with it.
func (a *Analyzer) DetectLatentSubgraphs(theta float64) LatentSubgraphResult {
	comps := primitives.WeaklyConnectedComponents(a.g)
	if len(comps) == 0 {
		return LatentSubgraphResult{}
	}

	mainIdx := 0
	for i, c := range comps {
		if len(c) > len(comps[mainIdx]) {
			mainIdx = i
		}
	}
	main := comps[mainIdx]
	mainSet := toSet(main)

	var subgraphs []LatentSubgraph
	var globalTriggers []string

	for i, c := range comps {
		if i == mainIdx || len(c) <= minLatentSize {
			continue
		}

		subSet := toSet(c)
		var triggers []string
		for _, v := range c {
			adjacent := false
			for _, nb := range a.g.NeighborIDs(v) {
				if mainSet[nb] {
					adjacent = true
					break
				}
			}
			if !adjacent {
				for _, nb := range a.g.Predecessors(v) {
					if mainSet[nb] {
						adjacent = true
						break
					}
				}
			}
			if adjacent {
				triggers = append(triggers, v)
			}
		}

		threshold := activationThreshold(a.g, mainSet, subSet)
		subgraphs = append(subgraphs, LatentSubgraph{Nodes: c, Triggers: triggers, ActivationThreshold: threshold})
		globalTriggers = append(globalTriggers, triggers...)
	}

	if len(globalTriggers) > maxCascadeTriggers {
		globalTriggers = globalTriggers[:maxCascadeTriggers]
	}

	var cascades [][]string
	for _, trigger := range globalTriggers {
		cascade := simulateCascade(a.g, []string{trigger}, theta)
		if len(cascade) > 1 {
			cascades = append(cascades, cascade)
		}
	}

	return LatentSubgraphResult{MainComponent: main, Subgraphs: subgraphs, Cascades: cascades}
}

// activationThreshold is 1 - mean(weight) over edges from main into
// subgraph, or 1.0 if there are none.
func activationThreshold(g *graphmodel.Graph, mainSet, subSet map[string]bool) float64 {
	var weights []float64
	for _, id := range g.Edges() {
		e, _ := g.GetEdge(id)
		if mainSet[e.From] && subSet[e.To] {
			weights = append(weights, e.Weight)
		}
	}
	if len(weights) == 0 {
		return 1.0
	}

	return 1 - stat.Mean(weights, nil)
}

// simulateCascade runs BFS-wave activation from the seed nodes: a
// successor activates once the fraction of its activated predecessors
// reaches theta. Stops after maxCascadeWaves or when a wave activates
// nothing new.
func simulateCascade(g *graphmodel.Graph, seed []string, theta float64) []string {
	activated := toSet(seed)
	activatedList := append([]string{}, seed...)

	for wave := 0; wave < maxCascadeWaves; wave++ {
		candidates := make(map[string]bool)
		for v := range activated {
			for _, s := range g.NeighborIDs(v) {
				if !activated[s] {
					candidates[s] = true
				}
			}
		}

		var newlyActivated []string
		for _, s := range g.VertexOrder() {
			if !candidates[s] {
				continue
			}
			preds := g.Predecessors(s)
			if len(preds) == 0 {
				continue
			}
			activatedPreds := 0
			for _, p := range preds {
				if activated[p] {
					activatedPreds++
				}
			}
			if float64(activatedPreds)/float64(len(preds)) >= theta {
				newlyActivated = append(newlyActivated, s)
			}
		}

		if len(newlyActivated) == 0 {
			break
		}
		for _, s := range newlyActivated {
			activated[s] = true
		}
		activatedList = append(activatedList, newlyActivated...)
	}

	return activatedList
}
