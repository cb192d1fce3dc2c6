// Package institutional implements the Institutional Metrics Analyzer:
// constraint dominance, latent-subgraph cascades, path dependence,
// information asymmetry, meta-stability, structural optionality, and
// endogenous risk, all over a single directed graph D.
package institutional
