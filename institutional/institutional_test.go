package institutional_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multiplexnet/graphmodel"
	"github.com/katalvlaran/multiplexnet/institutional"
)

func buildDirected(t *testing.T, edges [][2]string) *graphmodel.Graph {
	t.Helper()
	g := graphmodel.NewGraph(graphmodel.WithDirected())
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

// A DAG has no cycles, so endogenous risk should be all zero. a is the
// only out-degree>=2 junction, and b/c are each reachable only via a, so
// lock-in should be 2/3.
func TestDAGEndogenousRiskAndLockIn(t *testing.T) {
	g := buildDirected(t, [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}})
	an, err := institutional.New(g)
	require.NoError(t, err)

	risk, err := an.EndogenousRisk(context.Background())
	require.NoError(t, err)
	for _, v := range risk {
		assert.Equal(t, 0.0, v)
	}

	pd := an.PathDependence()
	assert.Equal(t, []string{"a"}, pd.CriticalJunctions)
	assert.InDelta(t, 2.0/3.0, pd.LockInScore, 1e-9)
}

// Hub-and-spoke: hub h sends to 10 leaves. h should register as an
// information hub with Gini > 0, and constraint dominance over C={h}
// should yield score[h] = 1.0 since every decision->outcome path runs
// through h.
func TestHubAndSpokeAsymmetryAndConstraintDominance(t *testing.T) {
	var edges [][2]string
	for i := 0; i < 10; i++ {
		leaf := "leaf" + string(rune('a'+i))
		edges = append(edges, [2]string{"h", leaf})
	}
	g := buildDirected(t, edges)
	an, err := institutional.New(g)
	require.NoError(t, err)

	asym := an.InformationAsymmetry()
	assert.Contains(t, asym.Hubs, "h")
	assert.Greater(t, asym.Gini, 0.0)

	cd, err := an.ConstraintDominance(context.Background(), []string{"h"})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, cd.Scores["h"], 1e-9)
}
