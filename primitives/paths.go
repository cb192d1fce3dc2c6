// File: paths.go
// Role: bounded-length simple-path enumeration, the building block
// constraint-dominance path counting is layered on. Recursion depth is
// trivially bounded by maxLen, so a recursive visited-stack DFS is used
// rather than an explicit stack.
package primitives

import (
	"context"

	"github.com/katalvlaran/multiplexnet/graphmodel"
	"github.com/katalvlaran/multiplexnet/xerr"
)

// EnumerateSimplePaths calls visit once for every simple directed path
// from -> ... -> to with at most maxLen edges (maxLen >= 0). Nodes do not
// repeat within a path. The slice passed to visit is only valid for the
// duration of the call; visit must copy it to retain it. Returns
// xerr.ErrCancelled if ctx is done before enumeration completes.
func EnumerateSimplePaths(ctx context.Context, g *graphmodel.Graph, from, to string, maxLen int, visit func(path []string)) error {
	if from == to {
		return nil
	}

	visited := map[string]bool{from: true}
	path := []string{from}

	var dfs func(curr string) error
	dfs = func(curr string) error {
		select {
		case <-ctx.Done():
			return xerr.ErrCancelled
		default:
		}

		if curr == to {
			cp := make([]string, len(path))
			copy(cp, path)
			visit(cp)

			return nil
		}
		if len(path)-1 >= maxLen {
			return nil
		}

		for _, nb := range g.NeighborIDs(curr) {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			path = append(path, nb)
			if err := dfs(nb); err != nil {
				return err
			}
			path = path[:len(path)-1]
			visited[nb] = false
		}

		return nil
	}

	return dfs(from)
}
