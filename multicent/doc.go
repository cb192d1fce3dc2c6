// Package multicent implements the Multiplex Centrality Analyzer:
// per-layer classical centralities, versatility, participation
// coefficient, cross-layer aggregation (aggregate/max/harmonic), a
// supra-matrix multiplex PageRank, and layer correlation.
package multicent
