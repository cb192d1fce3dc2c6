// Package graphmodel defines the Vertex, Edge, and Graph types shared by
// every analyzer in this module: the signed undirected graph G± (balance),
// the per-layer undirected graphs of a multiplex (multicent), and the
// directed graph D (institutional).
//
// A Graph is built once by a caller, mutated under lock via AddVertex/
// AddEdge, and then handed to an analyzer as an immutable snapshot — no
// analyzer mutates its input, and none retain the Graph after their last
// method returns.
//
// Enumeration order matters twice over in this module: Vertices()/Edges()
// return a lexicographically sorted view for reproducible diffs and tests,
// while VertexOrder()/EdgeOrder() return insertion order, which several
// institutional-metrics operations pin their "first-N" truncations to.
package graphmodel
