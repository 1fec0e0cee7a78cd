package search

// DFS explores using a LIFO frontier. Each node is marked discovered at most
// once, at push time, and the search stops when the goal is popped. Because
// neighbors are pushed in adjacency order and popped in reverse, the realized
// exploration order is adjacency-reversed; that is intrinsic to stack-based
// traversal and kept as-is so visitation traces stay reproducible.
//
// There is no shortest-path guarantee: the result path is whatever path the
// traversal reaches first, with Distance reporting its edge count.
func DFS[N comparable](adj map[N][]N, start, goal N) Result[N] {
	var (
		stack      = []N{start}
		discovered = map[N]bool{start: true}
		parent     = make(map[N]N)
		order      []N
	)

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
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
			stack = append(stack, neighbor)
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
