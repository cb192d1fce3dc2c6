package multicent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multiplexnet/graphmodel"
	"github.com/katalvlaran/multiplexnet/multicent"
	"github.com/katalvlaran/multiplexnet/multiplex"
)

func buildTwoLayerNetwork(t *testing.T) *multiplex.Network {
	t.Helper()
	net := multiplex.New()

	l1 := graphmodel.NewGraph()
	_, err := l1.AddEdge("a", "b")
	require.NoError(t, err)

	l2 := graphmodel.NewGraph()
	_, err = l2.AddEdge("a", "b")
	require.NoError(t, err)

	require.NoError(t, net.AddLayer("L1", l1))
	require.NoError(t, net.AddLayer("L2", l2))

	return net
}

// Two identical two-node single-edge layers are perfectly symmetric, so
// the renormalized multiplex PageRank should sum to 1.0 with a and b
// receiving equal mass.
func TestMultiplexPageRankSumsToOneAndSymmetric(t *testing.T) {
	net := buildTwoLayerNetwork(t)
	an := multicent.New(net)

	pr, err := an.MultiplexPageRank(multicent.WithInterLayerWeight(0.5), multicent.WithDamping(0.85))
	require.NoError(t, err)

	sum := pr["a"] + pr["b"]
	assert.InDelta(t, 1.0, sum, 1e-6)
	assert.InDelta(t, pr["a"], pr["b"], 1e-6)
}

func TestVersatilityFullMembership(t *testing.T) {
	net := buildTwoLayerNetwork(t)
	an := multicent.New(net)

	v, err := an.Versatility("a")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestVersatilityUnknownNode(t *testing.T) {
	net := buildTwoLayerNetwork(t)
	an := multicent.New(net)

	_, err := an.Versatility("z")
	assert.Error(t, err)
}

func TestParticipationCoefficientRange(t *testing.T) {
	net := multiplex.New()
	l1 := graphmodel.NewGraph()
	_, err := l1.AddEdge("a", "b")
	require.NoError(t, err)
	l2 := graphmodel.NewGraph()
	_, err = l2.AddEdge("a", "c")
	require.NoError(t, err)
	require.NoError(t, net.AddLayer("L1", l1))
	require.NoError(t, net.AddLayer("L2", l2))

	an := multicent.New(net)
	p, err := an.ParticipationCoefficient("a")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, p, 0.0)
	assert.LessOrEqual(t, p, 1.0)
	// a has one edge in each of two layers: perfectly uniform distribution.
	assert.InDelta(t, (2.0/1.0)*(1-2*0.25), p, 1e-9)
}
