// File: risk.go
// Role: endogenous risk via capped cycle-participation + in-degree
// concentration.
package institutional

import (
	"context"

	"github.com/katalvlaran/multiplexnet/primitives"
)

const cycleCap = 1000

// EndogenousRisk enumerates up to cycleCap simple cycles and scores each
// node by 0.7*participation/maxParticipation + 0.3*in-degree/maxInDegree.
// Returns all zeros when D is a DAG.
func (a *Analyzer) EndogenousRisk(ctx context.Context) (map[string]float64, error) {
	cycles, err := primitives.EnumerateSimpleCycles(ctx, a.g, cycleCap)
	if err != nil {
		return nil, err
	}

	nodes := a.g.Vertices()
	result := make(map[string]float64, len(nodes))
	for _, v := range nodes {
		result[v] = 0
	}

	// A DAG has no cycles at all, so risk is the neutral value for every
	// node rather than leaking a nonzero in-degree term that has no
	// cyclic backing.
	if len(cycles) == 0 {
		return result, nil
	}

	participation := make(map[string]int)
	for _, cyc := range cycles {
		for _, v := range cyc {
			participation[v]++
		}
	}

	maxPart := 1
	for _, p := range participation {
		if p > maxPart {
			maxPart = p
		}
	}

	inDeg := make(map[string]int, len(nodes))
	maxInDeg := 1
	for _, v := range nodes {
		d := a.g.InDegree(v)
		inDeg[v] = d
		if d > maxInDeg {
			maxInDeg = d
		}
	}

	for _, v := range nodes {
		part := float64(participation[v])
		in := float64(inDeg[v])
		result[v] = 0.7*part/float64(maxPart) + 0.3*in/float64(maxInDeg)
	}

	return result, nil
}
