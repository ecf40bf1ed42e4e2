// Package core provides the mutable in-memory Graph model for
// capacitated flow networks.
//
// The Graph G = (V,E) stores:
//
//   - Nodes with a unique immutable ID, a display Name (defaults to ID),
//     and independent IsSource / IsSink role flags
//   - Directed edges with a unique immutable ID, endpoints From→To
//     (self-loops rejected), a non-negative Capacity and a Flow value
//     constrained to 0 ≤ Flow ≤ Capacity at all times
//   - An adjacency index from node ID to the *ordered* list of outgoing
//     edge IDs — insertion order is semantically relevant, because it
//     fixes the neighbor-visit order of the BFS augmenting-path search
//     and therefore which of several shortest paths is chosen
//
// Why insertion order everywhere?
//
//   - Deterministic iteration — Nodes(), Edges(), EdgesFrom(),
//     SourceNodes() and SinkNodes() all replay insertion order, so two
//     identically built graphs behave identically under the solver.
//
// Core methods:
//
//	// Node lifecycle
//	AddNode(id, name string, isSource, isSink bool) (*Node, error) // O(1)
//	Node(id string) (*Node, error)                                 // O(1)
//	HasNode(id string) bool                                        // O(1)
//	RemoveNode(id string) error  // cascades to incident edges, O(N+E)
//
//	// Edge lifecycle
//	AddEdge(id, from, to string, capacity float64) (*Edge, error)  // O(1)
//	Edge(id string) (*Edge, error)                                 // O(1)
//	HasEdge(from, to string) bool                                  // O(deg)
//	RemoveEdge(id string) error                                    // O(E)
//
//	// Query
//	EdgesFrom(id string) []*Edge   // adjacency order; empty for unknown id
//	Nodes() []*Node                // insertion order
//	Edges() []*Edge                // insertion order
//	SourceNodes() []*Node          // role filter, insertion order
//	SinkNodes() []*Node            // role filter, insertion order
//	NodeCount() int                // O(1)
//	EdgeCount() int                // O(1)
//
//	// Checked mutation
//	SetEdgeFlow(id string, flow float64) error          // 0 ≤ flow ≤ cap
//	UpdateEdgeCapacity(id string, capacity float64) error // cap ≥ flow
//
// Error taxonomy (shared by the flow and network packages):
//
//	ErrNotFound        – missing node or edge (payload: NotFoundError)
//	ErrInvalidInput    – empty/duplicate ID, self-loop, negative capacity
//	                     or flow, flow above capacity, capacity below flow
//	                     (payload: InvalidInputError)
//	ErrNetworkNotValid – semantic preconditions for flow computation
//	                     (payload: NetworkNotValidError)
//
// Classify with errors.Is against a kind, extract details with errors.As.
// A failed mutation never leaves partial state behind.
//
// Concurrency: the Graph takes no internal locks. It is a single-writer
// structure; embedding applications serialize concurrent access (one
// lock around the owning network suffices).
package core
