package flow

import (
	"math"

	"github.com/katalvlaran/flownet/core"
)

// parentLink records how a node was first reached during the BFS:
// the predecessor node and the residual arc that led here.
type parentLink struct {
	prev string
	arc  string
}

// bfsParents runs a breadth-first search over the residual graph from
// sourceID and returns the parent map for every node reached before the
// sink was dequeued, or nil when the sink is unreachable.
//
// Each node is enqueued exactly once, the first time it is seen; an arc
// is traversable only while its capacity is positive. Neighbors are
// visited in adjacency order, which makes the discovered path the
// deterministic first among equally short candidates.
func bfsParents(residual *core.Graph, sourceID, sinkID string) map[string]parentLink {
	visited := map[string]bool{sourceID: true}
	parent := make(map[string]parentLink)
	queue := []string{sourceID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == sinkID {
			return parent
		}

		for _, arc := range residual.EdgesFrom(current) {
			if visited[arc.To] || arc.Capacity <= 0 {
				continue
			}
			visited[arc.To] = true
			parent[arc.To] = parentLink{prev: arc.From, arc: arc.ID}
			queue = append(queue, arc.To)
		}
	}

	return nil
}

// findAugmentingPath searches the residual graph for a source→sink path
// with positive capacity on every arc. It returns the ordered arc IDs
// (source first) and the bottleneck capacity, or a nil path when no
// augmenting path exists.
func findAugmentingPath(residual *core.Graph, sourceID, sinkID string) ([]string, float64, error) {
	parent := bfsParents(residual, sourceID, sinkID)
	if parent == nil {
		return nil, 0, nil
	}

	// Walk the parent map sink→source, tracking the minimum arc capacity.
	var path []string
	bottleneck := math.Inf(1)
	for current := sinkID; current != sourceID; {
		link := parent[current]
		arc, err := residual.Edge(link.arc)
		if err != nil {
			return nil, 0, err
		}
		if arc.Capacity < bottleneck {
			bottleneck = arc.Capacity
		}
		path = append(path, link.arc)
		current = link.prev
	}

	// Reverse into source→sink order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, bottleneck, nil
}
