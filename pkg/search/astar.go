package search

import (
	"container/heap"
	"math"

	"github.com/pathtrace/pathtrace/pkg/graph"
)

// Euclidean returns the straight-line distance between two positions.
func Euclidean(a, b graph.Position) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// AStar searches with a min-priority frontier ordered by f = g + h, where g
// is the accumulated path cost from start (every edge costs exactly 1.0) and
// h is the Euclidean distance from the candidate to the goal. h degrades to
// zero whenever the candidate or the goal lacks a position entry, so a graph
// with partial or absent positions still searches correctly, just without
// heuristic guidance (uniform-cost behavior).
//
// A neighbor is re-pushed only when its tentative g strictly improves the
// best known g, so stale frontier entries popped later are counted in the
// visit log but expand nothing new. The search returns as soon as the goal is
// popped. With unit non-negative edge costs and a consistently embedded
// graph the heuristic is admissible and the result path is optimal; an
// embedding whose edges span more than unit distance makes the heuristic
// overestimate, and optimality is no longer guaranteed.
func AStar[N comparable](adj map[N][]N, positions map[N]graph.Position, start, goal N) Result[N] {
	var (
		parent = make(map[N]N)
		gScore = map[N]float64{start: 0}
		order  []N
	)

	goalPos, goalHasPos := positions[goal]
	heuristic := func(n N) float64 {
		if !goalHasPos {
			return 0
		}
		pos, ok := positions[n]
		if !ok {
			return 0
		}
		return Euclidean(pos, goalPos)
	}

	open := &frontier[N]{}
	heap.Init(open)
	open.push(start, heuristic(start))

	for open.Len() > 0 {
		current := heap.Pop(open).(frontierItem[N]).node
		order = append(order, current)
		if current == goal {
			path := reconstructPath(parent, start, goal)
			return Result[N]{
				Path:         path,
				Distance:     pathDistance(path),
				VisitedCount: len(order),
				VisitedOrder: order,
			}
		}
		for _, neighbor := range adj[current] {
			tentative := gScore[current] + 1.0 // unit edge cost
			if best, seen := gScore[neighbor]; seen && tentative >= best {
				continue
			}
			parent[neighbor] = current
			gScore[neighbor] = tentative
			open.push(neighbor, tentative+heuristic(neighbor))
		}
	}

	return Result[N]{Distance: 0, VisitedCount: len(order), VisitedOrder: order}
}

// =============================================================================
// Frontier - Min-Heap Keyed by f-Score
// =============================================================================

// frontierItem is one open-set entry. seq breaks f-score ties in insertion
// order so visitation traces are reproducible across runs.
type frontierItem[N comparable] struct {
	node N
	f    float64
	seq  int
}

type frontier[N comparable] struct {
	items []frontierItem[N]
	next  int
}

func (q *frontier[N]) Len() int { return len(q.items) }

func (q *frontier[N]) Less(i, j int) bool {
	if q.items[i].f != q.items[j].f {
		return q.items[i].f < q.items[j].f
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *frontier[N]) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

func (q *frontier[N]) Push(x any) {
	q.items = append(q.items, x.(frontierItem[N]))
}

func (q *frontier[N]) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}

// push enqueues node with priority f, stamping the insertion sequence.
func (q *frontier[N]) push(node N, f float64) {
	heap.Push(q, frontierItem[N]{node: node, f: f, seq: q.next})
	q.next++
}
