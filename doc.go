// Package multiplexnet is a multiplex signed-network analytics engine: a
// library that, given one or more named graph layers over a shared vertex
// set, computes structural properties used in social-science analysis of
// institutional networks.
//
// Three analyzers sit on top of a shared graph-primitives layer:
//
//	balance/       — signed-network frustration index, triangle balance,
//	                 spectral bipartition (package balance)
//	multicent/     — per-layer and cross-layer centralities, participation
//	                 coefficient, versatility, supra-matrix PageRank
//	                 (package multicent)
//	institutional/ — constraint dominance, latent-subgraph cascades, path
//	                 dependence, information asymmetry, meta-stability,
//	                 structural optionality, endogenous risk (package
//	                 institutional)
//
// graphmodel holds the shared Vertex/Edge/Graph types; multiplex layers
// named graphs over a common node universe; primitives implements the
// traversal, path/cycle enumeration, centrality, and spectral routines
// the three analyzers are built from; ingest builds graphs from loosely
// typed edge records; xerr collects the cross-cutting error kinds every
// package classifies its failures against.
//
// The engine is a pure library: synchronous, single-threaded per call, no
// background work, no mutation of caller-supplied graphs (see
// graphmodel's package doc for the enumeration-order contract every
// analyzer relies on).
package multiplexnet
