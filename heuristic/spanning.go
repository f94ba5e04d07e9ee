package heuristic

import (
	"container/heap"
	"math"
	"multiagent/game"
)

// Edge links a vertex of the spanning tree to its predecessor.
type Edge struct {
	From game.Position
	Cost int
}

// Tree maps every objective to the edge connecting it into the tree.
type Tree map[game.Position]Edge

// Weight sums the cost of every edge in the tree.
func (t Tree) Weight() int {
	total := 0
	for _, edge := range t {
		total += edge.Cost
	}
	return total
}

// EstimateTour lower-bounds the walk needed to visit every objective from
// origin by the weight of their minimum spanning tree.
func EstimateTour(objectives []game.Position, origin game.Position) int {
	return BuildSpanningTree(objectives, origin).Weight()
}

// BuildSpanningTree runs Prim's algorithm over the complete graph of origin
// and objectives, weighted by Manhattan distance. Duplicate objectives are
// counted once.
func BuildSpanningTree(objectives []game.Position, origin game.Position) Tree {
	vertices := []game.Position{origin}
	seen := map[game.Position]bool{}
	for _, objective := range objectives {
		if !seen[objective] {
			seen[objective] = true
			vertices = append(vertices, objective)
		}
	}

	cost := make([]int, len(vertices))
	from := make([]int, len(vertices))
	visited := make([]bool, len(vertices))
	for i := range vertices {
		cost[i] = math.MaxInt
		from[i] = -1
	}
	cost[0] = 0

	pq := &vertexQueue{{index: 0, cost: 0}}
	for pq.Len() > 0 {
		v := heap.Pop(pq).(vertexCost)
		if visited[v.index] {
			continue // Stale entry superseded by a cheaper one
		}
		visited[v.index] = true

		for u := range vertices {
			if visited[u] {
				continue
			}
			if d := game.ManhattanDistance(vertices[v.index], vertices[u]); d < cost[u] {
				cost[u] = d
				from[u] = v.index
				heap.Push(pq, vertexCost{index: u, cost: d})
			}
		}
	}

	tree := make(Tree, len(vertices)-1)
	for i := 1; i < len(vertices); i++ {
		tree[vertices[i]] = Edge{From: vertices[from[i]], Cost: cost[i]}
	}
	return tree
}

type vertexCost struct {
	index int
	cost  int
}

// vertexQueue is a min-heap of vertices by tentative cost.
type vertexQueue []vertexCost

func (q vertexQueue) Len() int           { return len(q) }
func (q vertexQueue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q vertexQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *vertexQueue) Push(x any)        { *q = append(*q, x.(vertexCost)) }
func (q *vertexQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}
