package graphmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multiplexnet/graphmodel"
)

func TestAddEdgeDefaults(t *testing.T) {
	g := graphmodel.NewGraph()
	id, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	e, err := g.GetEdge(id)
	require.NoError(t, err)
	assert.Equal(t, 1.0, e.Weight)
	assert.True(t, g.HasVertex("a"))
	assert.True(t, g.HasVertex("b"))
	assert.ElementsMatch(t, []string{"b"}, g.NeighborIDs("a"))
}

func TestSignedGraphRejectsMissingSign(t *testing.T) {
	g := graphmodel.NewGraph(graphmodel.WithSigned())
	_, err := g.AddEdge("a", "b")
	assert.ErrorIs(t, err, graphmodel.ErrInvalidSign)

	_, err = g.AddEdge("a", "b", graphmodel.WithSign(1))
	assert.NoError(t, err)
}

func TestLoopAndMultiEdgeRejection(t *testing.T) {
	g := graphmodel.NewGraph()
	_, err := g.AddEdge("a", "a")
	assert.ErrorIs(t, err, graphmodel.ErrLoopNotAllowed)

	_, err = g.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b")
	assert.ErrorIs(t, err, graphmodel.ErrMultiEdgeNotAllowed)
}

func TestInvalidWeightRejected(t *testing.T) {
	g := graphmodel.NewGraph()
	_, err := g.AddEdge("a", "b", graphmodel.WithWeight(-1))
	assert.ErrorIs(t, err, graphmodel.ErrInvalidWeight)
}

func TestVertexOrderPreservesInsertion(t *testing.T) {
	g := graphmodel.NewGraph()
	require.NoError(t, g.AddVertex("z"))
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("m"))

	assert.Equal(t, []string{"z", "a", "m"}, g.VertexOrder())
	assert.Equal(t, []string{"a", "m", "z"}, g.Vertices())
}

func TestDirectedDegree(t *testing.T) {
	g := graphmodel.NewGraph(graphmodel.WithDirected())
	_, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = g.AddEdge("c", "b")
	require.NoError(t, err)

	assert.Equal(t, 2, g.InDegree("b"))
	assert.Equal(t, 0, g.OutDegree("b"))
	assert.Equal(t, 1, g.OutDegree("a"))
	assert.ElementsMatch(t, []string{"a", "c"}, g.Predecessors("b"))
}
