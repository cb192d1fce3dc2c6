package balance_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multiplexnet/balance"
	"github.com/katalvlaran/multiplexnet/graphmodel"
)

func buildSigned(t *testing.T, edges [][3]interface{}) *graphmodel.Graph {
	t.Helper()
	g := graphmodel.NewGraph(graphmodel.WithSigned())
	for _, e := range edges {
		_, err := g.AddEdge(e[0].(string), e[1].(string), graphmodel.WithSign(e[2].(int8)))
		require.NoError(t, err)
	}

	return g
}

// All-positive triangle: no edge needs flipping, so frustration is 0 and
// the single triangle is balanced.
func TestTriangleAllPositive(t *testing.T) {
	g := buildSigned(t, [][3]interface{}{
		{"a", "b", int8(1)},
		{"b", "c", int8(1)},
		{"a", "c", int8(1)},
	})
	a, err := balance.New(g)
	require.NoError(t, err)

	fi, err := a.FrustrationIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, fi)

	tri := a.AnalyzeTriangles()
	assert.Equal(t, 1, tri.Total)
	assert.Equal(t, 1, tri.Balanced)
	assert.Equal(t, 0, tri.Frustrated)
}

// One negative edge in a triangle forces at least one frustrated edge
// under any bipartition, and one is achievable, so frustration is 1.
func TestTriangleOneNegative(t *testing.T) {
	g := buildSigned(t, [][3]interface{}{
		{"a", "b", int8(1)},
		{"b", "c", int8(1)},
		{"a", "c", int8(-1)},
	})
	a, err := balance.New(g)
	require.NoError(t, err)

	fi, err := a.FrustrationIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fi)

	tri := a.AnalyzeTriangles()
	assert.Equal(t, 1, tri.Frustrated)
}

// Two disjoint all-positive triangles: each is independently balanced,
// so frustration is 0 and the triangle balance ratio is 1.0.
func TestTwoDisjointTriangles(t *testing.T) {
	g := buildSigned(t, [][3]interface{}{
		{"a", "b", int8(1)},
		{"b", "c", int8(1)},
		{"a", "c", int8(1)},
		{"d", "e", int8(1)},
		{"e", "f", int8(1)},
		{"d", "f", int8(1)},
	})
	a, err := balance.New(g)
	require.NoError(t, err)

	fi, err := a.FrustrationIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, fi)

	result, err := a.StructuralBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1.0, result.BalanceRatio)
	assert.True(t, result.IsBalanced)
}

func TestConstructionRejectsUnsignedGraph(t *testing.T) {
	g := graphmodel.NewGraph()
	_, err := g.AddEdge("a", "b")
	require.NoError(t, err)

	_, err = balance.New(g)
	assert.ErrorIs(t, err, balance.ErrNotSigned)
}
