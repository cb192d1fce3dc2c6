// Package multiplex models a multiplex network: a set of named layers,
// each its own undirected graph over a shared node universe. A node need
// not appear in every layer; the universe is the union of all layers'
// vertex sets.
package multiplex
