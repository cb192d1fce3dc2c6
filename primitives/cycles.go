// File: cycles.go
// Role: capped simple-cycle enumeration as a per-root DFS restricted to
// nodes not earlier than the root in the graph's canonical order — the standard
// trick that reports each simple cycle exactly once, via its
// lowest-order member, instead of once per rotation.
package primitives

import (
	"context"

	"github.com/katalvlaran/multiplexnet/graphmodel"
	"github.com/katalvlaran/multiplexnet/xerr"
)

// EnumerateSimpleCycles returns up to cap simple directed cycles of g (as
// ordered node slices, first element repeated implicitly as the closing
// edge's target), discovered in the graph's VertexOrder, exploring each
// root's successors in edge insertion order so which cycles fill the cap
// first is determined by construction order, not by node-ID sort order.
// A self-loop counts as a one-node cycle. Returns xerr.ErrCancelled if
// ctx is done before enumeration completes; whatever was already found
// is discarded rather than returned as a partial, possibly-misleading
// result.
func EnumerateSimpleCycles(ctx context.Context, g *graphmodel.Graph, cap int) ([][]string, error) {
	if cap <= 0 {
		return nil, nil
	}

	order := g.VertexOrder()
	rank := make(map[string]int, len(order))
	for i, v := range order {
		rank[v] = i
	}

	var cycles [][]string

	for _, root := range order {
		if len(cycles) >= cap {
			break
		}
		select {
		case <-ctx.Done():
			return nil, xerr.ErrCancelled
		default:
		}

		visited := map[string]bool{root: true}
		path := []string{root}
		cancelled := false

		var dfs func(curr string) bool // true = stop (cap hit or cancelled)
		dfs = func(curr string) bool {
			select {
			case <-ctx.Done():
				cancelled = true
				return true
			default:
			}

			for _, nb := range g.NeighborIDsOrdered(curr) {
				if rank[nb] < rank[root] {
					continue
				}
				if nb == root {
					cp := make([]string, len(path))
					copy(cp, path)
					cycles = append(cycles, cp)
					if len(cycles) >= cap {
						return true
					}
					continue
				}
				if visited[nb] {
					continue
				}
				visited[nb] = true
				path = append(path, nb)
				if dfs(nb) {
					return true
				}
				path = path[:len(path)-1]
				visited[nb] = false
			}

			return false
		}

		dfs(root)
		if cancelled {
			return nil, xerr.ErrCancelled
		}
	}

	return cycles, nil
}
