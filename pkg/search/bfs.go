package search

// BFS explores nodes in order of increasing edge-distance from start using a
// FIFO frontier. Each node is enqueued at most once (first discovery wins)
// and neighbors are expanded in their stored adjacency order, so equal-length
// ties resolve toward earlier-listed neighbors. The search stops the moment
// the goal is dequeued; the goal's own neighbors are never expanded.
//
// A non-empty result path has the minimum possible edge count among all
// start-to-goal paths.
func BFS[N comparable](adj map[N][]N, start, goal N) Result[N] {
	var (
		queue      = []N{start}
		discovered = map[N]bool{start: true}
		parent     = make(map[N]N)
		order      []N
	)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		order = append(order, current)
		if current == goal {
			break
		}
		for _, neighbor := range adj[current] {
			if discovered[neighbor] {
				continue
			}
			discovered[neighbor] = true
			parent[neighbor] = current
			queue = append(queue, neighbor)
		}
	}

	path := reconstructPath(parent, start, goal)
	return Result[N]{
		Path:         path,
		Distance:     pathDistance(path),
		VisitedCount: len(order),
		VisitedOrder: order,
	}
}
