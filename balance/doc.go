// Package balance implements the Signed Balance Analyzer: frustration
// index (exact enumeration for small graphs, spectral approximation
// otherwise), signed triangle analysis, frustrated-edge extraction, and
// a two-cluster spectral bipartition.
package balance
