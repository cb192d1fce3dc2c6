// File: signed.go
// Role: CreateSignedGraphFromEdges — builds a signed undirected
// graphmodel.Graph from loosely-typed edge records, the shape an
// external store or API payload typically hands the engine.
package ingest

import (
	"github.com/katalvlaran/multiplexnet/graphmodel"
)

// EdgeRecord is the loosely-typed shape an external graph store hands the
// engine: Source/Target are mandatory; Sign accepts the numeric literals
// 1/-1, the strings "POSITIVE"/"NEGATIVE" and "-1" (case handled by the caller — no
// normalization is performed here beyond the documented literals), or
// nil, which defaults to positive. Weight defaults to 1.0 when nil. Extra
// carries any additional keys, attached verbatim as edge attributes.
type EdgeRecord struct {
	Source string
	Target string
	Sign   interface{}
	Weight *float64
	Extra  map[string]interface{}
}

// resolveSign maps a record's Sign field to +1/-1. A missing Sign (nil)
// defaults to positive, treating an absent "sign" key as "POSITIVE"
// rather than an error. An unrecognized string also defaults to positive,
// so a malformed or unexpected literal never aborts ingestion outright.
func resolveSign(sign interface{}) int8 {
	switch v := sign.(type) {
	case nil:
		return 1
	case int:
		if v < 0 {
			return -1
		}
		return 1
	case int8:
		if v < 0 {
			return -1
		}
		return 1
	case float64:
		if v < 0 {
			return -1
		}
		return 1
	case string:
		switch v {
		case "NEGATIVE", "-1":
			return -1
		default:
			return 1
		}
	default:
		return 1
	}
}

// CreateSignedGraphFromEdges builds a signed undirected graph from edge
// records. Self-loops and parallel edges are permitted (the analyzer
// layer tolerates both; triangle/frustration counting is unaffected by
// their absence in well-formed social-network data, but rejecting them
// here would make this helper stricter than the graph model itself
// requires).
func CreateSignedGraphFromEdges(records []EdgeRecord) (*graphmodel.Graph, error) {
	g := graphmodel.NewGraph(graphmodel.WithSigned(), graphmodel.WithLoops(), graphmodel.WithMultiEdges())

	for _, rec := range records {
		weight := 1.0
		if rec.Weight != nil {
			weight = *rec.Weight
		}
		sign := resolveSign(rec.Sign)

		opts := []graphmodel.EdgeOption{
			graphmodel.WithWeight(weight),
			graphmodel.WithSign(sign),
		}
		if len(rec.Extra) > 0 {
			opts = append(opts, graphmodel.WithAttrs(rec.Extra))
		}

		if _, err := g.AddEdge(rec.Source, rec.Target, opts...); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// DirectedEdgeRecord is the institutional-analyzer counterpart: no sign,
// an optional weight, and optional extra attributes.
type DirectedEdgeRecord struct {
	Source string
	Target string
	Weight *float64
	Extra  map[string]interface{}
}

// CreateDirectedGraphFromEdges builds the directed graph the institutional
// analyzer consumes. Self-loops are permitted: they carry no meaningful
// topological signal but are counted as in- and out-degree 1, so rejecting
// them here would only push the problem onto the caller.
func CreateDirectedGraphFromEdges(records []DirectedEdgeRecord) (*graphmodel.Graph, error) {
	g := graphmodel.NewGraph(graphmodel.WithDirected(), graphmodel.WithLoops(), graphmodel.WithMultiEdges())

	for _, rec := range records {
		weight := 1.0
		if rec.Weight != nil {
			weight = *rec.Weight
		}

		opts := []graphmodel.EdgeOption{graphmodel.WithWeight(weight)}
		if len(rec.Extra) > 0 {
			opts = append(opts, graphmodel.WithAttrs(rec.Extra))
		}

		if _, err := g.AddEdge(rec.Source, rec.Target, opts...); err != nil {
			return nil, err
		}
	}

	return g, nil
}
