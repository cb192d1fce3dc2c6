// File: types.go
// Role: result types, sentinel errors, and the Analyzer itself.
package multicent

import (
	"errors"

	"github.com/katalvlaran/multiplexnet/multiplex"
)

// ErrUnknownMethod indicates AggregateCentrality was called with a method
// tag other than "aggregate", "max", or "harmonic".
var ErrUnknownMethod = errors.New("multicent: unknown aggregation method")

const (
	// MethodAggregate is the weighted-sum aggregation method.
	MethodAggregate = "aggregate"
	// MethodMax is the max-over-layers aggregation method.
	MethodMax = "max"
	// MethodHarmonic is the harmonic-mean-over-layers aggregation method.
	MethodHarmonic = "harmonic"
)

// LayerCentralities holds the per-layer classical centrality maps spec
// §4.2 names, keyed by node ID.
type LayerCentralities struct {
	Degree      map[string]float64
	Betweenness map[string]float64
	Closeness   map[string]float64
	Eigenvector map[string]float64
	PageRank    map[string]float64
}

// Analyzer computes multiplex-centrality properties over a
// *multiplex.Network. It holds an immutable reference and never mutates
// or retains the network beyond a method call.
type Analyzer struct {
	net *multiplex.Network
}

// New wraps a multiplex.Network for centrality analysis.
func New(net *multiplex.Network) *Analyzer {
	return &Analyzer{net: net}
}
