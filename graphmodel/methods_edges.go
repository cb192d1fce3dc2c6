// File: methods_edges.go
// Role: Edge lifecycle: validation, insertion, removal, lookup.
package graphmodel

import (
	"fmt"
	"math"
	"sort"
	"sync/atomic"

	"github.com/katalvlaran/multiplexnet/xerr"
)

// EdgeOption configures a single AddEdge call.
type EdgeOption func(e *Edge)

// WithWeight sets the edge weight (default 1.0).
func WithWeight(w float64) EdgeOption { return func(e *Edge) { e.Weight = w } }

// WithSign sets the edge sign; only meaningful on a WithSigned() graph.
func WithSign(sign int8) EdgeOption { return func(e *Edge) { e.Sign = sign } }

// WithAttrs attaches arbitrary extra key/value data to the edge, letting
// ingest pass through caller-supplied record fields unchanged.
func WithAttrs(attrs map[string]interface{}) EdgeOption {
	return func(e *Edge) { e.Attrs = attrs }
}

// AddEdge inserts an edge from -> to, auto-creating endpoints if missing,
// and returns its generated ID. Weight defaults to 1.0; on a signed
// graph, sign must resolve to +1 or -1 or ErrInvalidSign is returned.
// Self-loops and parallel edges are rejected unless the owning graph was
// built WithLoops()/WithMultiEdges().
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", fmt.Errorf("%w: %w", xerr.ErrInvalidInput, ErrEmptyVertexID)
	}

	e := &Edge{From: from, To: to, Weight: 1.0}
	for _, opt := range opts {
		opt(e)
	}

	g.muVert.RLock()
	signed := g.signed
	directed := g.directed
	g.muVert.RUnlock()

	e.Directed = directed

	if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) || e.Weight < 0 {
		return "", fmt.Errorf("graphmodel: edge %s->%s: %w: %w", from, to, xerr.ErrInvalidInput, ErrInvalidWeight)
	}
	if signed && e.Sign != 1 && e.Sign != -1 {
		return "", fmt.Errorf("graphmodel: edge %s->%s: %w: %w", from, to, xerr.ErrInvalidInput, ErrInvalidSign)
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if from == to && !g.allowLoops {
		return "", fmt.Errorf("graphmodel: edge %s->%s: %w: %w", from, to, xerr.ErrInvalidInput, ErrLoopNotAllowed)
	}
	if !g.allowMulti && g.hasParallelLocked(from, to) {
		return "", fmt.Errorf("graphmodel: edge %s->%s: %w: %w", from, to, xerr.ErrInvalidInput, ErrMultiEdgeNotAllowed)
	}

	id := g.nextID()
	e.ID = id
	g.edges[id] = e
	g.edgeOrder = append(g.edgeOrder, id)
	g.ensureAdjacencyLocked(from, to, id)
	if !directed {
		g.ensureAdjacencyLocked(to, from, id)
	}

	return id, nil
}

// hasParallelLocked reports whether an edge already connects from->to (or,
// for undirected graphs, to->from). Caller must hold muEdgeAdj.
func (g *Graph) hasParallelLocked(from, to string) bool {
	if tos, ok := g.adjacency[from]; ok {
		if _, ok := tos[to]; ok {
			return true
		}
	}

	return false
}

// nextID mints a monotonically increasing edge ID. Caller must hold
// muEdgeAdj.
func (g *Graph) nextID() string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)

	return fmt.Sprintf("e%d", n)
}

// GetEdge returns the edge by ID.
func (g *Graph) GetEdge(id string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// HasEdge reports whether any edge connects from to to (direction-aware
// for directed graphs).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.hasParallelLocked(from, to)
}

// RemoveEdge deletes an edge by ID.
func (g *Graph) RemoveEdge(id string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, id)
	g.removeAdjacencyLocked(e.From, e.To, id)
	if !e.Directed {
		g.removeAdjacencyLocked(e.To, e.From, id)
	}
	for i, eid := range g.edgeOrder {
		if eid == id {
			g.edgeOrder = append(g.edgeOrder[:i], g.edgeOrder[i+1:]...)
			break
		}
	}

	return nil
}

// Edges returns all edge IDs, lexicographically sorted.
func (g *Graph) Edges() []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := make([]string, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// EdgeOrder returns edge IDs in insertion order, the deterministic basis
// callers that truncate to a fixed prefix (first-N selections) rely on.
func (g *Graph) EdgeOrder() []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]string, len(g.edgeOrder))
	copy(out, g.edgeOrder)

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
