package flow

import "github.com/katalvlaran/flownet/core"

// Residual arc IDs derive from the original edge ID by suffix, which is
// what lets the solver map an arc on an augmenting path back to the edge
// whose flow it adjusts. The two suffixes can never collide with each
// other, so arc IDs stay unique whenever the input edge IDs are unique.
const (
	forwardSuffix  = "_forward"
	backwardSuffix = "_backward"
)

// BuildResidual derives the residual graph of g's current flow
// assignment. The input graph is not modified.
//
// Nodes are copied with their names and roles. Edges are visited in
// insertion order, so the residual adjacency order (and with it the BFS
// tie-break) is a pure function of how the original graph was built.
//
// Complexity: O(N + E); the result holds at most 2E arcs.
func BuildResidual(g *core.Graph) (*core.Graph, error) {
	residual := core.NewGraph()

	for _, n := range g.Nodes() {
		if _, err := residual.AddNode(n.ID, n.Name, n.IsSource, n.IsSink); err != nil {
			return nil, err
		}
	}

	for _, e := range g.Edges() {
		// forward arc carries what the edge can still accept
		if rc := e.ResidualCapacity(); rc > 0 {
			if _, err := residual.AddEdge(e.ID+forwardSuffix, e.From, e.To, rc); err != nil {
				return nil, err
			}
		}
		// backward arc carries what the edge can give back
		if e.Flow > 0 {
			if _, err := residual.AddEdge(e.ID+backwardSuffix, e.To, e.From, e.Flow); err != nil {
				return nil, err
			}
		}
	}

	return residual, nil
}
