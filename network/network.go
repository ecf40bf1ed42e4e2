// Package network presents a single-source/single-sink convenience
// facade over core.Graph and flow.Solver: node/edge CRUD, role
// management, validation, max-flow computation with min-cut, flow
// reset, and network summaries.
package network

import (
	"github.com/katalvlaran/flownet/core"
	"github.com/katalvlaran/flownet/flow"
)

// Network owns a core.Graph and exposes the operations an embedding
// application (an editor, an importer, a scheduler) needs between
// max-flow computations. It adds no locking: serialize concurrent use
// externally, one lock per Network.
type Network struct {
	graph *core.Graph
}

// New creates an empty Network.
func New() *Network {
	return &Network{graph: core.NewGraph()}
}

// AddNode inserts a node; see core.Graph.AddNode for the contract.
func (n *Network) AddNode(id, name string, isSource, isSink bool) (*core.Node, error) {
	return n.graph.AddNode(id, name, isSource, isSink)
}

// Node returns the node with the given ID, or core.ErrNotFound.
func (n *Network) Node(id string) (*core.Node, error) {
	return n.graph.Node(id)
}

// RemoveNode deletes a node and all its incident edges.
func (n *Network) RemoveNode(id string) error {
	return n.graph.RemoveNode(id)
}

// SetNodeAsSource flags the node as the source role. The two roles are
// mutually exclusive here: a previous sink flag is cleared.
func (n *Network) SetNodeAsSource(id string) error {
	node, err := n.graph.Node(id)
	if err != nil {
		return err
	}
	node.IsSource = true
	node.IsSink = false

	return nil
}

// SetNodeAsSink flags the node as the sink role, clearing a previous
// source flag.
func (n *Network) SetNodeAsSink(id string) error {
	node, err := n.graph.Node(id)
	if err != nil {
		return err
	}
	node.IsSink = true
	node.IsSource = false

	return nil
}

// SourceNode returns the first node flagged as source (insertion
// order). It does not enforce uniqueness — that is Validate's job — but
// fails with core.ErrNetworkNotValid when no source exists at all.
func (n *Network) SourceNode() (*core.Node, error) {
	sources := n.graph.SourceNodes()
	if len(sources) == 0 {
		return nil, &core.NetworkNotValidError{Reason: "network has no source"}
	}

	return sources[0], nil
}

// SinkNode returns the first node flagged as sink, or
// core.ErrNetworkNotValid when none exists.
func (n *Network) SinkNode() (*core.Node, error) {
	sinks := n.graph.SinkNodes()
	if len(sinks) == 0 {
		return nil, &core.NetworkNotValidError{Reason: "network has no sink"}
	}

	return sinks[0], nil
}

// AddEdge inserts an edge; see core.Graph.AddEdge for the contract.
func (n *Network) AddEdge(id, from, to string, capacity float64) (*core.Edge, error) {
	return n.graph.AddEdge(id, from, to, capacity)
}

// Edge returns the edge with the given ID, or core.ErrNotFound.
func (n *Network) Edge(id string) (*core.Edge, error) {
	return n.graph.Edge(id)
}

// RemoveEdge deletes an edge.
func (n *Network) RemoveEdge(id string) error {
	return n.graph.RemoveEdge(id)
}

// UpdateEdgeCapacity changes an edge's capacity; the new value must not
// drop below the edge's current flow (core.ErrInvalidInput otherwise).
func (n *Network) UpdateEdgeCapacity(id string, capacity float64) error {
	return n.graph.UpdateEdgeCapacity(id, capacity)
}

// Nodes returns all nodes in insertion order.
func (n *Network) Nodes() []*core.Node { return n.graph.Nodes() }

// Edges returns all edges in insertion order.
func (n *Network) Edges() []*core.Edge { return n.graph.Edges() }

// EdgesFrom returns the outgoing edges of a node in adjacency order.
func (n *Network) EdgesFrom(id string) []*core.Edge { return n.graph.EdgesFrom(id) }

// CalculateMaxFlow resolves the network's source and sink, computes
// the maximum flow between them, and returns the flow value together
// with the min-cut partition (S reachable from the source in the final
// residual graph, T the rest).
//
// Fails with core.ErrNetworkNotValid when no source or sink exists, or
// when the resolved nodes do not satisfy the solver's preconditions.
func (n *Network) CalculateMaxFlow() (value float64, sSide, tSide []string, err error) {
	source, err := n.SourceNode()
	if err != nil {
		return 0, nil, nil, err
	}
	sink, err := n.SinkNode()
	if err != nil {
		return 0, nil, nil, err
	}

	solver := flow.NewSolver(n.graph)
	value, err = solver.CalculateMaxFlow(source.ID, sink.ID)
	if err != nil {
		return 0, nil, nil, err
	}
	sSide, tSide = solver.MinCut(source.ID)

	return value, sSide, tSide, nil
}

// ResetFlows zeroes every edge's flow, leaving capacities untouched.
func (n *Network) ResetFlows() {
	for _, e := range n.graph.Edges() {
		_ = n.graph.SetEdgeFlow(e.ID, 0) // zero is always within bounds
	}
}

// Validate reports whether the network is ready for a max-flow
// computation: exactly one source, exactly one sink, and the sink
// reachable from the source over plain forward edges. Capacities are
// ignored here — reachability is a structural check, not a flow one.
func (n *Network) Validate() bool {
	sources := n.graph.SourceNodes()
	sinks := n.graph.SinkNodes()
	if len(sources) != 1 || len(sinks) != 1 {
		return false
	}
	sourceID, sinkID := sources[0].ID, sinks[0].ID
	if sourceID == sinkID {
		// one node carrying both roles is structurally storable but
		// never a valid network
		return false
	}

	visited := make(map[string]bool)
	stack := []string{sourceID}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if current == sinkID {
			return true
		}
		if visited[current] {
			continue
		}
		visited[current] = true
		for _, e := range n.graph.EdgesFrom(current) {
			stack = append(stack, e.To)
		}
	}

	return false
}

// Info is a point-in-time summary of the network.
type Info struct {
	NodeCount     int
	EdgeCount     int
	SourceID      string
	SinkID        string
	TotalCapacity float64
	TotalFlow     float64
}

// Info returns counts, the resolved source/sink IDs, and capacity/flow
// totals. Fails with core.ErrNetworkNotValid when the network has no
// source or no sink.
func (n *Network) Info() (Info, error) {
	source, err := n.SourceNode()
	if err != nil {
		return Info{}, err
	}
	sink, err := n.SinkNode()
	if err != nil {
		return Info{}, err
	}

	var totalCapacity, totalFlow float64
	for _, e := range n.graph.Edges() {
		totalCapacity += e.Capacity
		totalFlow += e.Flow
	}

	return Info{
		NodeCount:     n.graph.NodeCount(),
		EdgeCount:     n.graph.EdgeCount(),
		SourceID:      source.ID,
		SinkID:        sink.ID,
		TotalCapacity: totalCapacity,
		TotalFlow:     totalFlow,
	}, nil
}
