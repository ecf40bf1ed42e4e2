// Package flow implements maximum-flow and minimum-cut computation on a
// core.Graph using the Edmonds–Karp algorithm: Ford–Fulkerson augmentation
// where each augmenting path is the shortest one found by breadth-first
// search over a freshly built residual graph.
//
// # Residual graphs
//
// BuildResidual derives a disposable core.Graph from the input's current
// flow assignment:
//
//   - every edge e with ResidualCapacity() > 0 contributes a forward arc
//     "<e.ID>_forward" from e.From to e.To carrying that residual capacity
//   - every edge e with Flow > 0 contributes a backward arc
//     "<e.ID>_backward" from e.To to e.From carrying the current flow
//
// The node set (including source/sink roles) is copied verbatim, so a
// residual graph has at most N nodes and 2E arcs and is built in O(N+E).
//
// # Solver
//
//	solver := flow.NewSolver(g)
//	value, err := solver.CalculateMaxFlow("s", "t")
//	S, T := solver.MinCut("s")
//
// CalculateMaxFlow loops: rebuild the residual graph, BFS for an
// augmenting path, push the bottleneck along it (increasing original
// flows on forward arcs, decreasing them on backward arcs), and stops
// when no path remains. BFS is mandatory, not a convenience: shortest
// augmenting paths bound the number of augmentations by O(V·E)
// (the classical Edmonds–Karp bound), which guarantees termination
// where plain DFS-based Ford–Fulkerson may degenerate.
//
// Determinism: each node's residual arcs are visited in adjacency
// (insertion) order, so among several shortest paths the first one in
// that order is always chosen. Two identically built graphs therefore
// produce identical per-edge flow assignments, not just the same total.
//
// MinCut runs one more reachability pass over the final residual graph:
// S is the set of nodes reachable from the source, T is everything else.
// Both sides are reported in node insertion order. By max-flow/min-cut
// duality the capacity of the original edges crossing S→T equals the
// computed flow value.
//
// # Errors
//
//	core.ErrNotFound        – source or sink ID missing from the graph
//	core.ErrNetworkNotValid – source == sink, or a node not flagged with
//	                          the required role
//
// Complexity: O(V·E²) worst case. Memory: O(V+E) per iteration for the
// rebuilt residual graph, which is solver-local and discarded.
package flow
