// Package tunnel describes tunnel networks: graphs whose edges transmit,
// push or pop protocol symbols on a stack.
package tunnel

import (
	"errors"
	"fmt"
)

// ErrUnknownNode is returned when a node name does not belong to a network.
var ErrUnknownNode = errors.New("unknown node")

// An Edge is a directed link between two nodes, identified by their index.
type Edge struct {
	From, To int
}

// A Network is a directed graph whose edges are labelled with the actions
// they allow. Nodes are integers in [0, NumNodes()).
type Network interface {
	NumNodes() int
	// Initial is the node every path starts from.
	Initial() int
	// Final is the node every path ends on.
	Final() int
	// Name returns the display name of node.
	Name(node int) string
	// Edges enumerates the edges having at least one capability.
	Edges() []Edge
	// Allows reports whether a move along e may perform a.
	Allows(e Edge, a Action) bool
}

// A Graph is an in-memory Network.
// The zero value is not usable, use NewGraph instead.
type Graph struct {
	names   []string
	index   map[string]int
	initial int
	final   int
	edges   []Edge
	caps    map[Edge]map[Action]bool
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]int),
		caps:  make(map[Edge]map[Action]bool),
	}
}

// AddNode adds a node named name and returns its index.
// If such a node already exists, its index is returned.
func (g *Graph) AddNode(name string) int {
	if idx, ok := g.index[name]; ok {
		return idx
	}
	idx := len(g.names)
	g.names = append(g.names, name)
	g.index[name] = idx
	return idx
}

// Node returns the index of the node named name.
func (g *Graph) Node(name string) (int, error) {
	idx, ok := g.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	return idx, nil
}

// AddEdge allows the given actions on the edge from -> to.
// Calling it several times on the same edge accumulates the actions.
func (g *Graph) AddEdge(from, to int, actions ...Action) {
	e := Edge{from, to}
	caps, ok := g.caps[e]
	if !ok {
		caps = make(map[Action]bool)
		g.caps[e] = caps
		g.edges = append(g.edges, e)
	}
	for _, a := range actions {
		caps[a] = true
	}
}

// SetInitial sets the initial node.
func (g *Graph) SetInitial(node int) { g.initial = node }

// SetFinal sets the final node.
func (g *Graph) SetFinal(node int) { g.final = node }

func (g *Graph) NumNodes() int        { return len(g.names) }
func (g *Graph) Initial() int         { return g.initial }
func (g *Graph) Final() int           { return g.final }
func (g *Graph) Name(node int) string { return g.names[node] }

// Edges returns the edges in the order they were first added.
func (g *Graph) Edges() []Edge {
	res := make([]Edge, len(g.edges))
	copy(res, g.edges)
	return res
}

func (g *Graph) Allows(e Edge, a Action) bool {
	return g.caps[e][a]
}

// Capabilities returns the actions allowed on e, in the order of AllActions.
func Capabilities(net Network, e Edge) []Action {
	var res []Action
	for _, a := range AllActions() {
		if net.Allows(e, a) {
			res = append(res, a)
		}
	}
	return res
}

// Successors indexes the edges of net by source node.
func Successors(net Network) [][]Edge {
	succ := make([][]Edge, net.NumNodes())
	for _, e := range net.Edges() {
		succ[e.From] = append(succ[e.From], e)
	}
	return succ
}
