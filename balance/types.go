// File: types.go
// Role: sentinel errors and result value types for the balance package.
package balance

import "errors"

// ExactFrustrationCutoff is the node-count threshold at or below which
// FrustrationIndex returns the exact minimum: 2^20 bipartitions is the
// largest full enumeration that stays within an interactive call budget,
// past which the spectral approximation takes over.
const ExactFrustrationCutoff = 20

var (
	// ErrNotSigned indicates New was given a graph not built with
	// graphmodel.WithSigned().
	ErrNotSigned = errors.New("balance: graph is not signed")

	// ErrInvalidSign indicates an edge was found without a valid +1/-1
	// sign. Checked eagerly at construction so every later method can
	// assume every edge carries a valid sign.
	ErrInvalidSign = errors.New("balance: edge has invalid sign")
)

// TriangleAnalysis summarizes every unordered triangle in the graph.
type TriangleAnalysis struct {
	Total        int
	Balanced     int
	Frustrated   int
	BalanceRatio float64
}

// StructuralBalanceResult combines frustration index, frustrated edges,
// triangle analysis, and the two spectral clusters.
type StructuralBalanceResult struct {
	FrustrationIndex int
	IsBalanced       bool
	FrustratedEdges  []string
	Triangles        TriangleAnalysis
	ClusterA         []string
	ClusterB         []string

	// BalanceRatio mirrors Triangles.BalanceRatio. It is a triangle-level
	// statistic and deliberately not derived from FrustrationIndex: the
	// two measure different things (triangle sign parity vs. bipartition
	// cut size) and can disagree on which triangles or edges they flag.
	BalanceRatio float64
}
