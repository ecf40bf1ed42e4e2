package flow

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/flownet/core"
)

// Solver computes maximum flow on a core.Graph via Edmonds–Karp and
// extracts the minimum cut from the final residual reachability.
//
// The Solver borrows the graph it was created with and writes results
// into the edges' Flow fields. The residual graph it keeps between
// iterations is solver-local and disposable; callers never share it.
type Solver struct {
	graph    *core.Graph
	residual *core.Graph
}

// NewSolver returns a Solver bound to g. The graph may be mutated
// between computations; every CalculateMaxFlow call starts from the
// edges' current flow values.
func NewSolver(g *core.Graph) *Solver {
	return &Solver{graph: g}
}

// Residual returns the residual graph left behind by the most recent
// computation, or nil before the first one. Useful for inspecting which
// arcs remained after saturation.
func (s *Solver) Residual() *core.Graph { return s.residual }

// CalculateMaxFlow computes the maximum flow from sourceID to sinkID,
// updating every edge's Flow in the underlying graph and returning the
// total value.
//
// Returns core.ErrNotFound when either ID is absent, and
// core.ErrNetworkNotValid when source and sink coincide or the named
// nodes do not carry the required role flags.
//
// Each iteration rebuilds the residual graph from scratch, finds the
// shortest augmenting path by BFS, and pushes the path's bottleneck:
// forward arcs increase the original edge's flow, backward arcs
// decrease it. The loop ends when no augmenting path remains; the
// Edmonds–Karp bound of O(V·E) augmentations guarantees termination.
// Complexity: O(V·E²).
func (s *Solver) CalculateMaxFlow(sourceID, sinkID string) (float64, error) {
	// 1) Validate endpoints and their roles.
	if !s.graph.HasNode(sourceID) {
		return 0, &core.NotFoundError{Entity: "node", ID: sourceID}
	}
	if !s.graph.HasNode(sinkID) {
		return 0, &core.NotFoundError{Entity: "node", ID: sinkID}
	}
	if sourceID == sinkID {
		return 0, &core.NetworkNotValidError{Reason: "source and sink must be distinct nodes"}
	}
	source, err := s.graph.Node(sourceID)
	if err != nil {
		return 0, err
	}
	if !source.IsSource {
		return 0, &core.NetworkNotValidError{Reason: fmt.Sprintf("node %q is not a source", sourceID)}
	}
	sink, err := s.graph.Node(sinkID)
	if err != nil {
		return 0, err
	}
	if !sink.IsSink {
		return 0, &core.NetworkNotValidError{Reason: fmt.Sprintf("node %q is not a sink", sinkID)}
	}

	// 2) Augment until no residual path remains.
	var maxFlow float64
	for {
		residual, err := BuildResidual(s.graph)
		if err != nil {
			return 0, err
		}
		s.residual = residual

		path, bottleneck, err := findAugmentingPath(residual, sourceID, sinkID)
		if err != nil {
			return 0, err
		}
		if len(path) == 0 {
			break
		}

		if err = s.applyAugmentation(path, bottleneck); err != nil {
			return 0, err
		}
		maxFlow += bottleneck
	}

	return maxFlow, nil
}

// applyAugmentation pushes the bottleneck along the augmenting path,
// mapping each residual arc back to its original edge by suffix.
func (s *Solver) applyAugmentation(path []string, bottleneck float64) error {
	for _, arcID := range path {
		switch {
		case strings.HasSuffix(arcID, forwardSuffix):
			e, err := s.graph.Edge(strings.TrimSuffix(arcID, forwardSuffix))
			if err != nil {
				return err
			}
			e.Flow += bottleneck
		case strings.HasSuffix(arcID, backwardSuffix):
			e, err := s.graph.Edge(strings.TrimSuffix(arcID, backwardSuffix))
			if err != nil {
				return err
			}
			e.Flow -= bottleneck
		}
	}

	return nil
}

// MinCut partitions the graph's nodes around the minimum cut after a
// max-flow computation: S holds every node reachable from sourceID in
// the final residual graph, T holds the rest. Both sides follow node
// insertion order, and together they cover every node exactly once.
//
// Called before any computation, it derives the cut from the current
// flow assignment (an all-zero assignment makes S the plain forward
// reachability set of the source).
func (s *Solver) MinCut(sourceID string) (sSide, tSide []string) {
	residual := s.residual
	if residual == nil {
		var err error
		if residual, err = BuildResidual(s.graph); err != nil {
			return nil, nil
		}
	}

	// Reachability pass: same traversal rule as the path search, but it
	// collects every reachable node instead of stopping at a sink.
	visited := map[string]bool{sourceID: true}
	queue := []string{sourceID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, arc := range residual.EdgesFrom(current) {
			if visited[arc.To] || arc.Capacity <= 0 {
				continue
			}
			visited[arc.To] = true
			queue = append(queue, arc.To)
		}
	}

	for _, n := range s.graph.Nodes() {
		if visited[n.ID] {
			sSide = append(sSide, n.ID)
		} else {
			tSide = append(tSide, n.ID)
		}
	}

	return sSide, tSide
}
