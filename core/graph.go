// Package core: Graph method implementations.
//
// This file provides the node/edge lifecycle and query operations on the
// Graph type defined in types.go. All operations are deterministic:
// listings follow insertion order, and a failed mutation leaves the
// Graph unchanged (validation happens before any state is touched).

package core

import "fmt"

// AddNode inserts a new node with the given ID into the Graph.
// An empty name defaults to the ID. The isSource/isSink flags are
// stored as given; the Graph does not reject a node carrying both
// roles (network-level validation does).
//
// Returns ErrInvalidInput for an empty or duplicate ID.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id, name string, isSource, isSink bool) (*Node, error) {
	// 1) Input validation
	if id == "" {
		return nil, &InvalidInputError{Reason: "node ID must not be empty"}
	}
	if _, exists := g.nodes[id]; exists {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("node %q already exists", id)}
	}
	if name == "" {
		name = id
	}

	// 2) Insert node and its (empty) adjacency entry
	n := &Node{ID: id, Name: name, IsSource: isSource, IsSink: isSink}
	g.nodes[id] = n
	g.nodeOrder = append(g.nodeOrder, id)
	g.adjacency[id] = nil

	return n, nil
}

// Node returns the node with the given ID.
// Returns ErrNotFound if absent.
// Complexity: O(1).
func (g *Graph) Node(id string) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, &NotFoundError{Entity: "node", ID: id}
	}

	return n, nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// RemoveNode deletes the node and every incident edge (whether the node
// is the start or the end) from the Graph, leaving no dangling edges.
//
// Returns ErrNotFound if the node does not exist.
// Complexity: O(N + E).
func (g *Graph) RemoveNode(id string) error {
	if _, ok := g.nodes[id]; !ok {
		return &NotFoundError{Entity: "node", ID: id}
	}

	// Collect incident edge IDs first: RemoveEdge mutates the catalog.
	var incident []string
	for _, eid := range g.edgeOrder {
		if e := g.edges[eid]; e.From == id || e.To == id {
			incident = append(incident, eid)
		}
	}
	for _, eid := range incident {
		_ = g.RemoveEdge(eid) // edge was just enumerated, cannot be missing
	}

	delete(g.nodes, id)
	delete(g.adjacency, id)
	g.nodeOrder = removeID(g.nodeOrder, id)

	return nil
}

// AddEdge creates a new directed edge from 'from' to 'to' with the given
// capacity and zero flow, and appends it to the start node's adjacency
// list (adjacency order is the BFS tie-break, so append order matters).
//
// Returns ErrInvalidInput for a duplicate or empty edge ID, a self-loop,
// or a negative capacity; ErrNotFound if either endpoint is missing.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(id, from, to string, capacity float64) (*Edge, error) {
	// 1) Duplicate check
	if _, exists := g.edges[id]; exists {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("edge %q already exists", id)}
	}
	// 2) Both endpoints must exist
	if _, err := g.Node(from); err != nil {
		return nil, err
	}
	if _, err := g.Node(to); err != nil {
		return nil, err
	}
	// 3) Structural constraints
	if from == to {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("self-loop on node %q not supported", from)}
	}
	if id == "" {
		return nil, &InvalidInputError{Reason: "edge ID must not be empty"}
	}
	if capacity < 0 {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("capacity must not be negative, got %g", capacity)}
	}

	// 4) Insert edge and index it under its start node
	e := &Edge{ID: id, From: from, To: to, Capacity: capacity}
	g.edges[id] = e
	g.edgeOrder = append(g.edgeOrder, id)
	g.adjacency[from] = append(g.adjacency[from], id)

	return e, nil
}

// Edge returns the edge with the given ID.
// Returns ErrNotFound if absent.
// Complexity: O(1).
func (g *Graph) Edge(id string) (*Edge, error) {
	e, ok := g.edges[id]
	if !ok {
		return nil, &NotFoundError{Entity: "edge", ID: id}
	}

	return e, nil
}

// RemoveEdge deletes the edge with the given ID from the edge catalog
// and from its start node's adjacency list.
// Returns ErrNotFound if no such edge exists.
// Complexity: O(E) worst case (slice removals).
func (g *Graph) RemoveEdge(id string) error {
	e, ok := g.edges[id]
	if !ok {
		return &NotFoundError{Entity: "edge", ID: id}
	}

	g.adjacency[e.From] = removeID(g.adjacency[e.From], id)
	g.edgeOrder = removeID(g.edgeOrder, id)
	delete(g.edges, id)

	return nil
}

// HasEdge reports whether at least one edge from 'from' to 'to' exists.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	for _, eid := range g.adjacency[from] {
		if g.edges[eid].To == to {
			return true
		}
	}

	return false
}

// EdgesFrom returns the outgoing edges of the given node in adjacency
// (insertion) order. An unknown ID yields an empty slice, not an error:
// the solver probes residual graphs it just built and treats absent
// entries as "no neighbors".
// Complexity: O(deg(node)).
func (g *Graph) EdgesFrom(id string) []*Edge {
	ids := g.adjacency[id]
	edges := make([]*Edge, 0, len(ids))
	for _, eid := range ids {
		edges = append(edges, g.edges[eid])
	}

	return edges
}

// Nodes returns all nodes in insertion order.
// Complexity: O(N).
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		nodes = append(nodes, g.nodes[id])
	}

	return nodes
}

// Edges returns all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	edges := make([]*Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		edges = append(edges, g.edges[id])
	}

	return edges
}

// SourceNodes returns all nodes flagged IsSource, in insertion order.
// Complexity: O(N).
func (g *Graph) SourceNodes() []*Node {
	var sources []*Node
	for _, id := range g.nodeOrder {
		if n := g.nodes[id]; n.IsSource {
			sources = append(sources, n)
		}
	}

	return sources
}

// SinkNodes returns all nodes flagged IsSink, in insertion order.
// Complexity: O(N).
func (g *Graph) SinkNodes() []*Node {
	var sinks []*Node
	for _, id := range g.nodeOrder {
		if n := g.nodes[id]; n.IsSink {
			sinks = append(sinks, n)
		}
	}

	return sinks
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// SetEdgeFlow assigns the given flow to an edge, enforcing the standing
// invariant 0 ≤ flow ≤ capacity.
// Returns ErrNotFound for a missing edge, ErrInvalidInput for a negative
// flow or one exceeding the edge's capacity.
// Complexity: O(1).
func (g *Graph) SetEdgeFlow(id string, flow float64) error {
	e, ok := g.edges[id]
	if !ok {
		return &NotFoundError{Entity: "edge", ID: id}
	}
	if flow < 0 {
		return &InvalidInputError{Reason: fmt.Sprintf("flow must not be negative, got %g", flow)}
	}
	if flow > e.Capacity {
		return &InvalidInputError{Reason: fmt.Sprintf("flow %g exceeds capacity %g on edge %q", flow, e.Capacity, id)}
	}
	e.Flow = flow

	return nil
}

// UpdateEdgeCapacity changes an edge's capacity. The new capacity must
// be non-negative and not less than the edge's current flow.
// Returns ErrNotFound for a missing edge, ErrInvalidInput otherwise.
// Complexity: O(1).
func (g *Graph) UpdateEdgeCapacity(id string, capacity float64) error {
	e, ok := g.edges[id]
	if !ok {
		return &NotFoundError{Entity: "edge", ID: id}
	}
	if capacity < 0 {
		return &InvalidInputError{Reason: fmt.Sprintf("capacity must not be negative, got %g", capacity)}
	}
	if capacity < e.Flow {
		return &InvalidInputError{Reason: fmt.Sprintf("new capacity %g is below current flow %g on edge %q", capacity, e.Flow, id)}
	}
	e.Capacity = capacity

	return nil
}

// removeID deletes the first occurrence of id from ids, preserving order.
func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return ids
}
