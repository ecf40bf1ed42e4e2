// Package network is the single-source/single-sink facade over the
// flownet graph model and solver.
//
// A Network wraps one core.Graph and exposes everything an embedding
// application needs between computations:
//
//	n := network.New()
//	n.AddNode("s", "Source", true, false)
//	n.AddNode("A", "", false, false)
//	n.AddNode("t", "Sink", false, true)
//	n.AddEdge("e1", "s", "A", 10)
//	n.AddEdge("e2", "A", "t", 5)
//
//	if n.Validate() {
//	    value, S, T, _ := n.CalculateMaxFlow()
//	    // value == 5, S == [s A], T == [t]
//	}
//
// Role management is stricter here than in core: SetNodeAsSource and
// SetNodeAsSink are mutually exclusive and clear the opposite flag,
// and Validate rejects a network whose single source and single sink
// are the same node. The Graph itself still stores a dual-role node
// without complaint — the structural and semantic checks are separate
// on purpose, so importers can stage arbitrary data before validating.
//
// CalculateMaxFlow resolves the unique source and sink, delegates to
// flow.Solver, and returns (value, S, T): the maximum flow plus the
// min-cut partition. ResetFlows returns every edge to zero flow so a
// changed network can be recomputed from scratch; UpdateEdgeCapacity
// refuses to drop a capacity below the flow currently on the edge.
//
// All errors unwrap to the kinds in core: ErrNotFound, ErrInvalidInput,
// ErrNetworkNotValid.
package network
