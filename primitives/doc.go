// Package primitives implements the shared graph-algorithm layer on top
// of graphmodel's adjacency/predecessor lookups: weakly-connected components,
// capped simple-path enumeration, BFS-layer reachability, capped
// simple-cycle enumeration, closeness/betweenness/eigenvector centrality,
// classical PageRank, and a dense symmetric eigensolver returning the
// Fiedler vector. The three analyzer packages (balance, multicent,
// institutional) are built entirely on these services; nothing here knows
// about signs, layers, or institutional semantics.
package primitives
