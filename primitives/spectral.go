// File: spectral.go
// Role: dense symmetric eigensolver returning the Fiedler vector, backed
// by gonum/mat.EigenSym rather than a hand-rolled rotation solver (see
// DESIGN.md for the tradeoff).
package primitives

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/multiplexnet/xerr"
)

// FiedlerVector returns the eigenvector associated with the
// second-smallest eigenvalue of the symmetric matrix L (e.g. a signed
// Laplacian D - A). Returns (nil, nil) for L of dimension < 2 — callers
// treat that as the degenerate all-in-one-cluster case. Returns
// xerr.ErrNumerical if the decomposition fails to converge.
func FiedlerVector(L *mat.SymDense) ([]float64, error) {
	n := L.SymmetricDim()
	if n < 2 {
		return nil, nil
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(L, true); !ok {
		return nil, xerr.ErrNumerical
	}

	values := eig.Values(nil)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return values[order[i]] < values[order[j]] })
	second := order[1]

	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	f := make([]float64, n)
	for i := 0; i < n; i++ {
		f[i] = vectors.At(i, second)
	}

	return f, nil
}
