// File: layers.go
// Role: ordered layer-name -> *graphmodel.Graph map, node universe.
package multiplex

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/multiplexnet/graphmodel"
)

// ErrEmptyLayerName indicates a layer was added with an empty name.
var ErrEmptyLayerName = errors.New("multiplex: layer name is empty")

// ErrDuplicateLayer indicates AddLayer was called twice for the same name.
var ErrDuplicateLayer = errors.New("multiplex: layer already exists")

// ErrUnknownLayer indicates a layer name not present in the network.
var ErrUnknownLayer = errors.New("multiplex: unknown layer")

// Network holds the named layers of a multiplex graph, preserving the
// order layers were added (several cross-layer aggregations iterate
// layers in a stable order for reproducibility).
type Network struct {
	names  []string
	layers map[string]*graphmodel.Graph
}

// New creates an empty multiplex Network.
func New() *Network {
	return &Network{layers: make(map[string]*graphmodel.Graph)}
}

// AddLayer registers a named layer graph. Returns ErrDuplicateLayer if the
// name is already present.
func (n *Network) AddLayer(name string, g *graphmodel.Graph) error {
	if name == "" {
		return ErrEmptyLayerName
	}
	if _, exists := n.layers[name]; exists {
		return fmt.Errorf("multiplex: %q: %w", name, ErrDuplicateLayer)
	}
	n.layers[name] = g
	n.names = append(n.names, name)

	return nil
}

// Layer returns the graph for name.
func (n *Network) Layer(name string) (*graphmodel.Graph, error) {
	g, ok := n.layers[name]
	if !ok {
		return nil, fmt.Errorf("multiplex: %q: %w", name, ErrUnknownLayer)
	}

	return g, nil
}

// LayerNames returns layer names in insertion order.
func (n *Network) LayerNames() []string {
	out := make([]string, len(n.names))
	copy(out, n.names)

	return out
}

// NumLayers returns the number of layers.
func (n *Network) NumLayers() int { return len(n.names) }

// Universe returns the union of all layers' vertex IDs, sorted.
func (n *Network) Universe() []string {
	seen := make(map[string]struct{})
	for _, name := range n.names {
		for _, v := range n.layers[name].Vertices() {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// NodeLayers returns the names of the layers node is a member of, in
// network layer order.
func (n *Network) NodeLayers(node string) []string {
	var out []string
	for _, name := range n.names {
		if n.layers[name].HasVertex(node) {
			out = append(out, name)
		}
	}

	return out
}
