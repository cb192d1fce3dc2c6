// File: bfs.go
// Role: BFS distance/layer computation and weakly-connected components.
package primitives

import "github.com/katalvlaran/multiplexnet/graphmodel"

// BFSDistances returns the shortest-path distance (edge count) from start
// to every node reachable from it, including start itself at distance 0.
// When reversed is true, traversal follows predecessor edges instead of
// successor edges (used for in-closeness: how far can a node reach
// others by being reached, rather than by reaching out).
func BFSDistances(g *graphmodel.Graph, start string, reversed bool) map[string]int {
	dist := map[string]int{start: 0}
	queue := []string{start}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		var next []string
		if reversed {
			next = g.Predecessors(curr)
		} else {
			next = g.NeighborIDs(curr)
		}
		for _, nb := range next {
			if _, seen := dist[nb]; seen {
				continue
			}
			dist[nb] = dist[curr] + 1
			queue = append(queue, nb)
		}
	}

	return dist
}

// WeaklyConnectedComponents partitions the graph's vertices into
// connected components, ignoring edge direction. Component order, and
// node order within each component, follows the graph's VertexOrder and
// (within the BFS expansion) edge insertion order, so that "largest
// component" / "latent subgraph" selection downstream is reproducible
// from the graph's construction history rather than from node-ID sort
// order.
func WeaklyConnectedComponents(g *graphmodel.Graph) [][]string {
	visited := make(map[string]bool)
	var comps [][]string

	for _, root := range g.VertexOrder() {
		if visited[root] {
			continue
		}
		var comp []string
		queue := []string{root}
		visited[root] = true

		for len(queue) > 0 {
			curr := queue[0]
			queue = queue[1:]
			comp = append(comp, curr)

			neighbors := append(append([]string{}, g.NeighborIDsOrdered(curr)...), g.PredecessorsOrdered(curr)...)
			for _, nb := range neighbors {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
