// File: methods_vertices.go
// Role: Vertex lifecycle and queries.
package graphmodel

import "sort"

// AddVertex inserts a vertex if missing (idempotent). Metadata starts nil;
// use SetVertexMetadata to attach attributes.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id}
	g.vertexOrder = append(g.vertexOrder, id)

	return nil
}

// SetVertexMetadata attaches attribute data to an existing vertex,
// creating the vertex first if absent.
func (g *Graph) SetVertexMetadata(id string, attrs map[string]interface{}) error {
	if err := g.AddVertex(id); err != nil {
		return err
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.vertices[id].Metadata = attrs

	return nil
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs, lexicographically sorted.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexOrder returns vertex IDs in insertion order. Several
// institutional-metrics operations pin their "first-N" truncations to
// this order rather than to Vertices(), so that the selected prefix
// depends on how the graph was built, not on string sort order.
func (g *Graph) VertexOrder() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]string, len(g.vertexOrder))
	copy(out, g.vertexOrder)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// VertexMetadata returns the metadata map for id, or nil if absent/unset.
func (g *Graph) VertexMetadata(id string) map[string]interface{} {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil
	}

	return v.Metadata
}

// InDegree, OutDegree, and Degree are computed by scanning the edge
// catalog (O(E)); the adjacency list is optimized for outgoing lookups
// and does not maintain a reverse index.
func (g *Graph) InDegree(id string) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	n := 0
	for _, e := range g.edges {
		if e.Directed {
			if e.To == id {
				n++
			}
		} else if e.From == id || e.To == id {
			n++
		}
	}

	return n
}

func (g *Graph) OutDegree(id string) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	n := 0
	for _, e := range g.edges {
		if e.Directed {
			if e.From == id {
				n++
			}
		} else if e.From == id || e.To == id {
			n++
		}
	}

	return n
}

// Degree returns total incidence count (undirected degree, or in+out for
// directed graphs). A self-loop counts twice, classic graph-theory
// convention.
func (g *Graph) Degree(id string) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	n := 0
	for _, e := range g.edges {
		if e.From == id {
			n++
		}
		if e.To == id {
			n++
		}
	}

	return n
}
