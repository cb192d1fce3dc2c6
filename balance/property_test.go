package balance_test

import (
	"context"
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"github.com/katalvlaran/multiplexnet/balance"
	"github.com/katalvlaran/multiplexnet/graphmodel"
)

// Property: frustration index is never negative and never exceeds the
// edge count — the worst a bipartition can do is flip every edge.
func TestFrustrationIndexBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		nodeCount := rapid.IntRange(2, 8).Draw(rt, "nodeCount")
		nodes := make([]string, nodeCount)
		for i := range nodes {
			nodes[i] = fmt.Sprintf("n%d", i)
		}

		g := graphmodel.NewGraph(graphmodel.WithSigned())
		edgeCount := 0
		for i := 0; i < nodeCount; i++ {
			for j := i + 1; j < nodeCount; j++ {
				if rapid.Bool().Draw(rt, "present") {
					sign := int8(1)
					if rapid.Bool().Draw(rt, "negative") {
						sign = -1
					}
					_, err := g.AddEdge(nodes[i], nodes[j], graphmodel.WithSign(sign))
					if err != nil {
						rt.Fatal(err)
					}
					edgeCount++
				}
			}
		}

		an, err := balance.New(g)
		if err != nil {
			rt.Fatal(err)
		}
		fi, err := an.FrustrationIndex(context.Background())
		if err != nil {
			rt.Fatal(err)
		}
		if fi < 0 || fi > edgeCount {
			rt.Fatalf("frustration index %d out of bounds [0,%d]", fi, edgeCount)
		}
	})
}
