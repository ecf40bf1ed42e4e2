// Package core defines the central Graph, Node, and Edge types for
// capacitated flow networks, plus the error taxonomy shared by the
// flow and network packages.
//
// This file declares Node, Edge, Graph, the error kinds
// (ErrNotFound, ErrInvalidInput, ErrNetworkNotValid), the typed
// errors carrying offending IDs/reasons, and the NewGraph constructor.
package core

import (
	"errors"
	"fmt"
)

// Error kinds for flow-network operations. Every error returned by this
// module unwraps to exactly one of these, so callers classify with
// errors.Is and extract payloads with errors.As.
var (
	// ErrNotFound indicates an operation referenced a missing node or edge.
	ErrNotFound = errors.New("flownet: not found")

	// ErrInvalidInput indicates a structural violation: empty ID, duplicate
	// ID, self-loop, negative capacity or flow, flow exceeding capacity.
	ErrInvalidInput = errors.New("flownet: invalid input")

	// ErrNetworkNotValid indicates a semantic precondition for flow
	// computation does not hold: identical source and sink, a node missing
	// its source/sink role, no unique source or sink, unreachable sink.
	ErrNetworkNotValid = errors.New("flownet: network not valid")
)

// NotFoundError reports a lookup or mutation naming a missing entity.
type NotFoundError struct {
	Entity string // "node" or "edge"
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("flownet: %s %q not found", e.Entity, e.ID)
}

// Unwrap classifies this error as ErrNotFound.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InvalidInputError reports a structural violation with a human-readable reason.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "flownet: invalid input: " + e.Reason
}

// Unwrap classifies this error as ErrInvalidInput.
func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// NetworkNotValidError reports a failed semantic precondition for flow computation.
type NetworkNotValidError struct {
	Reason string
}

func (e *NetworkNotValidError) Error() string {
	return "flownet: network not valid: " + e.Reason
}

// Unwrap classifies this error as ErrNetworkNotValid.
func (e *NetworkNotValidError) Unwrap() error { return ErrNetworkNotValid }

// Node represents a node in the flow network.
//
// ID uniquely identifies this Node within its Graph and never changes
// after creation. Name is display-only and defaults to ID when empty.
// IsSource and IsSink are independent role flags; the Graph itself
// permits a node to carry both, while network validation rejects such
// an ambiguous network (the two checks are intentionally separate).
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	// Name is the display name; AddNode substitutes ID when empty.
	Name string

	// IsSource marks this node as a flow source candidate.
	IsSource bool

	// IsSink marks this node as a flow sink candidate.
	IsSink bool
}

// Edge represents a directed capacitated connection between two nodes.
//
// The standing invariant 0 ≤ Flow ≤ Capacity holds at all times: it is
// checked at construction and by every checked mutation (SetEdgeFlow,
// UpdateEdgeCapacity). The solver adjusts Flow only by bottleneck
// amounts that preserve it arithmetically.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the start node ID.
	From string

	// To is the end node ID. Always distinct from From (no self-loops).
	To string

	// Capacity is the maximum flow this edge can carry. Never negative.
	Capacity float64

	// Flow is the current flow assignment, within [0, Capacity].
	Flow float64
}

// ResidualCapacity returns the remaining capacity, Capacity - Flow.
// Complexity: O(1).
func (e *Edge) ResidualCapacity() float64 {
	return e.Capacity - e.Flow
}

// Graph is the mutable in-memory flow-network model.
//
// It owns nodes and edges by ID plus an adjacency index mapping each
// node to its ordered outgoing edge IDs. Adjacency order is insertion
// order and is semantically relevant: it fixes the neighbor-visit order
// of the BFS augmenting-path search, and with it which path is chosen
// when several shortest ones exist. nodeOrder and edgeOrder reproduce
// insertion order for listing operations, since map iteration in Go is
// randomized.
//
// Graph is a single-writer structure: it takes no internal locks, and
// concurrent mutation must be serialized by the embedding application.
type Graph struct {
	nodes map[string]*Node
	edges map[string]*Edge

	// adjacency[nodeID] = outgoing edge IDs in insertion order
	adjacency map[string][]string

	nodeOrder []string
	edgeOrder []string
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string][]string),
	}
}
