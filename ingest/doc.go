// Package ingest provides graph-construction helpers: building a
// graphmodel.Graph from a sequence of loosely-typed edge records, the way
// a caller deserializing from an external store would.
package ingest
