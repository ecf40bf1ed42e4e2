package flow_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flownet/core"
	"github.com/katalvlaran/flownet/flow"
)

// SolverSuite exercises Edmonds–Karp max-flow and min-cut extraction.
type SolverSuite struct {
	suite.Suite
}

// buildBranching creates the six-node network
//
//	s→A:10  s→C:10  A→B:4  A→C:2  A→D:8  B→t:10  C→D:9  D→t:10
//
// whose maximum flow is 14 (min cut {A→B, D→t}).
func buildBranching(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddNode("s", "Source", true, false)
	require.NoError(t, err)
	for _, id := range []string{"A", "B", "C", "D"} {
		_, err = g.AddNode(id, "Node "+id, false, false)
		require.NoError(t, err)
	}
	_, err = g.AddNode("t", "Sink", false, true)
	require.NoError(t, err)

	edges := []struct {
		id, from, to string
		capacity     float64
	}{
		{"e1", "s", "A", 10},
		{"e2", "s", "C", 10},
		{"e3", "A", "B", 4},
		{"e4", "A", "C", 2},
		{"e5", "A", "D", 8},
		{"e6", "B", "t", 10},
		{"e7", "C", "D", 9},
		{"e8", "D", "t", 10},
	}
	for _, e := range edges {
		_, err = g.AddEdge(e.id, e.from, e.to, e.capacity)
		require.NoError(t, err)
	}

	return g
}

// TestSingleBottleneckChain: s→A:10, A→t:5 caps the flow at 5.
func (s *SolverSuite) TestSingleBottleneckChain() {
	g := buildChain(s.T(), 10, 5)

	value, err := flow.NewSolver(g).CalculateMaxFlow("s", "t")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, value)

	e1, err := g.Edge("e1")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, e1.Flow)
	e2, err := g.Edge("e2")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, e2.Flow)
}

// TestBranchingNetwork checks the total and the exact per-edge flows
// the adjacency-ordered BFS must arrive at.
func (s *SolverSuite) TestBranchingNetwork() {
	g := buildBranching(s.T())

	value, err := flow.NewSolver(g).CalculateMaxFlow("s", "t")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 14.0, value)

	want := map[string]float64{
		"e1": 10, "e2": 4, "e3": 4, "e4": 0,
		"e5": 6, "e6": 4, "e7": 4, "e8": 10,
	}
	for id, flowVal := range want {
		e, err := g.Edge(id)
		require.NoError(s.T(), err)
		require.Equal(s.T(), flowVal, e.Flow, "flow on %s", id)
	}
}

// TestDisconnected: no edges at all means zero flow.
func (s *SolverSuite) TestDisconnected() {
	g := core.NewGraph()
	_, err := g.AddNode("s", "Source", true, false)
	require.NoError(s.T(), err)
	_, err = g.AddNode("t", "Sink", false, true)
	require.NoError(s.T(), err)

	solver := flow.NewSolver(g)
	value, err := solver.CalculateMaxFlow("s", "t")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, value)

	sSide, tSide := solver.MinCut("s")
	require.Equal(s.T(), []string{"s"}, sSide)
	require.Equal(s.T(), []string{"t"}, tSide)
}

// TestValidation covers every precondition failure.
func (s *SolverSuite) TestValidation() {
	g := buildChain(s.T(), 10, 5)
	solver := flow.NewSolver(g)

	// missing IDs
	_, err := solver.CalculateMaxFlow("ghost", "t")
	require.True(s.T(), errors.Is(err, core.ErrNotFound))
	_, err = solver.CalculateMaxFlow("s", "ghost")
	require.True(s.T(), errors.Is(err, core.ErrNotFound))

	// source == sink (structurally a node may carry both roles)
	both := core.NewGraph()
	_, err = both.AddNode("X", "", true, true)
	require.NoError(s.T(), err)
	_, err = flow.NewSolver(both).CalculateMaxFlow("X", "X")
	require.True(s.T(), errors.Is(err, core.ErrNetworkNotValid))

	// role flags not set
	_, err = solver.CalculateMaxFlow("A", "t")
	require.True(s.T(), errors.Is(err, core.ErrNetworkNotValid))
	_, err = solver.CalculateMaxFlow("s", "A")
	require.True(s.T(), errors.Is(err, core.ErrNetworkNotValid))
}

// TestCapacityBoundAndConservation asserts the two flow invariants on
// the branching network after a completed computation.
func (s *SolverSuite) TestCapacityBoundAndConservation() {
	g := buildBranching(s.T())
	_, err := flow.NewSolver(g).CalculateMaxFlow("s", "t")
	require.NoError(s.T(), err)

	for _, e := range g.Edges() {
		require.GreaterOrEqual(s.T(), e.Flow, 0.0, "edge %s", e.ID)
		require.LessOrEqual(s.T(), e.Flow, e.Capacity, "edge %s", e.ID)
	}

	for _, n := range g.Nodes() {
		if n.IsSource || n.IsSink {
			continue
		}
		var in, out float64
		for _, e := range g.Edges() {
			if e.To == n.ID {
				in += e.Flow
			}
		}
		for _, e := range g.EdgesFrom(n.ID) {
			out += e.Flow
		}
		require.InDelta(s.T(), in, out, 1e-9, "conservation at %s", n.ID)
	}
}

// TestMinCutMatchesMaxFlow: the S→T crossing capacity equals the flow
// value, S and T partition the nodes, and the source sits in S.
func (s *SolverSuite) TestMinCutMatchesMaxFlow() {
	g := buildBranching(s.T())
	solver := flow.NewSolver(g)

	value, err := solver.CalculateMaxFlow("s", "t")
	require.NoError(s.T(), err)

	sSide, tSide := solver.MinCut("s")
	require.Equal(s.T(), []string{"s", "A", "C", "D"}, sSide)
	require.Equal(s.T(), []string{"B", "t"}, tSide)

	// partition: no overlap, full coverage
	require.Equal(s.T(), g.NodeCount(), len(sSide)+len(tSide))
	inS := make(map[string]bool, len(sSide))
	for _, id := range sSide {
		inS[id] = true
	}
	for _, id := range tSide {
		require.False(s.T(), inS[id], "node %s on both sides", id)
	}
	require.True(s.T(), inS["s"])
	require.False(s.T(), inS["t"])

	// crossing capacity equals max flow
	var cut float64
	for _, e := range g.Edges() {
		if inS[e.From] && !inS[e.To] {
			cut += e.Capacity
		}
	}
	require.Equal(s.T(), value, cut)
}

// TestDeterminism: two identically built graphs end with identical
// per-edge flow assignments, not merely the same total.
func (s *SolverSuite) TestDeterminism() {
	first := buildBranching(s.T())
	second := buildBranching(s.T())

	v1, err := flow.NewSolver(first).CalculateMaxFlow("s", "t")
	require.NoError(s.T(), err)
	v2, err := flow.NewSolver(second).CalculateMaxFlow("s", "t")
	require.NoError(s.T(), err)
	require.Equal(s.T(), v1, v2)

	for _, e := range first.Edges() {
		twin, err := second.Edge(e.ID)
		require.NoError(s.T(), err)
		require.Equal(s.T(), e.Flow, twin.Flow, "flow on %s diverged", e.ID)
	}
}

// TestRecomputeAfterReset: zeroing the flows and solving again yields
// the same value as the first run from a fresh graph.
func (s *SolverSuite) TestRecomputeAfterReset() {
	g := buildBranching(s.T())
	solver := flow.NewSolver(g)

	first, err := solver.CalculateMaxFlow("s", "t")
	require.NoError(s.T(), err)

	for _, e := range g.Edges() {
		require.NoError(s.T(), g.SetEdgeFlow(e.ID, 0))
	}

	second, err := solver.CalculateMaxFlow("s", "t")
	require.NoError(s.T(), err)
	require.Equal(s.T(), first, second)
}

// TestResidualAccessor: after a run the stored residual graph admits no
// further augmenting path (the sink is unreachable in it).
func (s *SolverSuite) TestResidualAccessor() {
	g := buildChain(s.T(), 10, 5)
	solver := flow.NewSolver(g)
	require.Nil(s.T(), solver.Residual())

	_, err := solver.CalculateMaxFlow("s", "t")
	require.NoError(s.T(), err)

	res := solver.Residual()
	require.NotNil(s.T(), res)
	// A→t is saturated: only its backward arc remains
	require.False(s.T(), res.HasEdge("A", "t"))
	require.True(s.T(), res.HasEdge("t", "A"))
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}
