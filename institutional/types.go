// File: types.go
// Role: Analyzer construction, sentinel errors, and shared result types.
package institutional

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/multiplexnet/graphmodel"
	"github.com/katalvlaran/multiplexnet/xerr"
)

// ErrNotDirected indicates New was given a graph not built with
// graphmodel.WithDirected().
var ErrNotDirected = errors.New("institutional: graph is not directed")

// Analyzer computes institutional-network metrics over a single directed
// graph D. Layering support is not wired into the current metric set —
// every method here treats D as flat.
type Analyzer struct {
	g *graphmodel.Graph
}

// New validates g and returns an Analyzer.
func New(g *graphmodel.Graph) (*Analyzer, error) {
	if !g.Directed() {
		return nil, fmt.Errorf("%w: %w", xerr.ErrInvalidInput, ErrNotDirected)
	}

	return &Analyzer{g: g}, nil
}

// ConstraintDominanceResult is the output of ConstraintDominance.
type ConstraintDominanceResult struct {
	Scores           map[string]float64
	Hierarchy        [][2]string
	DominantSet      []string
	SwitchLikelihood float64
	TotalPaths       int
}

// LatentSubgraph is one weakly-connected component disjoint from the
// main component, larger than the minimum tracked size (> 2 nodes).
type LatentSubgraph struct {
	Nodes               []string
	Triggers            []string
	ActivationThreshold float64
}

// LatentSubgraphResult is the output of DetectLatentSubgraphs.
type LatentSubgraphResult struct {
	MainComponent []string
	Subgraphs     []LatentSubgraph
	Cascades      [][]string
}

// PathDependenceResult is the output of PathDependence.
type PathDependenceResult struct {
	CriticalJunctions   []string
	SinglePathDependent []string
	AlternativeHistories int
	LockInScore         float64
}

// AsymmetricPair is one node pair whose access-score gap exceeds 0.3.
type AsymmetricPair struct {
	U, V string
	Gap  float64
}

// InformationAsymmetryResult is the output of InformationAsymmetry.
type InformationAsymmetryResult struct {
	Access          map[string]float64
	AsymmetricPairs []AsymmetricPair
	Hubs            []string
	Periphery       []string
	Gini            float64
}
