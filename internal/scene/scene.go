// Package scene models the host scene graph at its interface boundary.
//
// The importer never reaches into ambient scene state. It resolves nodes
// through an injected Registry, so the same import logic runs against a
// live host adapter or an in-memory graph in tests.
package scene

import (
	"fmt"
	"sort"
)

// Euler is a local rotation expressed as XYZ euler angles in radians.
type Euler struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// String formats the rotation for logs and reports.
func (e Euler) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", e.X, e.Y, e.Z)
}

// Node is a mutable scene node with a local rotation.
// The host owns the node; the importer holds a reference only for the
// duration of a run.
type Node struct {
	Name     string
	Rotation Euler
}

// Registry resolves scene nodes by exact name.
//
// Lookup is case-sensitive and performs no normalization - the column
// header in the motion file must match the node name byte for byte.
// Names exists so callers can produce diagnostics for near-miss lookups.
type Registry interface {
	// Lookup returns the node with exactly the given name, or false.
	Lookup(name string) (*Node, bool)

	// Names returns all node names in the registry, sorted.
	Names() []string
}

// Graph is an in-memory Registry.
//
// It backs CLI runs (built from a rig profile) and unit tests. Not safe
// for concurrent mutation; imports are single-threaded by design.
type Graph struct {
	nodes map[string]*Node
}

// NewGraph creates an empty scene graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// Add inserts a node with the given name and rest rotation.
// Adding a name twice replaces the earlier node.
func (g *Graph) Add(name string, rest Euler) *Node {
	n := &Node{Name: name, Rotation: rest}
	g.nodes[name] = n
	return n
}

// Lookup implements Registry.
func (g *Graph) Lookup(name string) (*Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// Names implements Registry.
func (g *Graph) Names() []string {
	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}
