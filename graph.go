package flatprm

import (
	"container/heap"
	"math"
)

/* Roadmap graph storage, connected components and A* extraction. */

// noParent marks a node the search has not reached yet.
const noParent = -1

// RoadmapNeighbor is one directed half of a symmetric roadmap edge. The cost
// is the L2 distance between the endpoint flat states.
type RoadmapNeighbor struct {
	Index    int
	Distance float64
}

// RoadmapNode lives in a single owning contiguous array; neighbors are dense
// integer indices into that array, never references.
type RoadmapNode struct {
	Index     int
	Parent    int
	Component int
	G         float64
	Neighbors []RoadmapNeighbor
}

func newRoadmapNode(index, parent int, g float64) RoadmapNode {
	return RoadmapNode{Index: index, Parent: parent, Component: index, G: g}
}

// connectedComponent is one union-find entry: parent pointer and subtree size,
// both stored flat so merges allocate nothing.
type connectedComponent struct {
	parent int
	size   int
}

// findRoot returns the root of i's component, compressing the path on the way.
func findRoot(components []connectedComponent, i int) int {
	root := i
	for components[root].parent != root {
		root = components[root].parent
	}
	for components[i].parent != root {
		components[i].parent, i = root, components[i].parent
	}
	return root
}

// mergeComponents unites the two components by size.
func mergeComponents(components []connectedComponent, a, b int) {
	ra, rb := findRoot(components, a), findRoot(components, b)
	if ra == rb {
		return
	}
	if components[ra].size < components[rb].size {
		ra, rb = rb, ra
	}
	components[rb].parent = ra
	components[ra].size += components[rb].size
}

// astarItem orders the open set by f, then g, then index.
type astarItem struct {
	f, g  float64
	index int
}

type astarQueue []astarItem

func (q astarQueue) Len() int { return len(q) }
func (q astarQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	if q[i].g != q[j].g {
		return q[i].g < q[j].g
	}
	return q[i].index < q[j].index
}
func (q astarQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *astarQueue) Push(x interface{}) { *q = append(*q, x.(astarItem)) }
func (q *astarQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// astar runs best-first search from start to goal over the roadmap, using the
// L2 distance to the goal state as heuristic. It fills in the nodes' G and
// Parent fields and reports whether the goal was reached; when the caller has
// already checked that both ends share a connected component, it always is.
func astar(nodes []RoadmapNode, startIndex, goalIndex int, state func(int) []float64) bool {
	goalState := state(goalIndex)
	for i := range nodes {
		if i != startIndex {
			nodes[i].G = math.Inf(1)
			nodes[i].Parent = noParent
		}
	}
	nodes[startIndex].G = 0
	nodes[startIndex].Parent = startIndex

	closed := make([]bool, len(nodes))
	open := &astarQueue{{f: Distance(state(startIndex), goalState), g: 0, index: startIndex}}
	heap.Init(open)

	for open.Len() > 0 {
		item := heap.Pop(open).(astarItem)
		u := item.index
		if closed[u] {
			continue
		}
		closed[u] = true
		if u == goalIndex {
			return true
		}
		for _, nbr := range nodes[u].Neighbors {
			g := nodes[u].G + nbr.Distance
			if g >= nodes[nbr.Index].G {
				continue
			}
			nodes[nbr.Index].G = g
			nodes[nbr.Index].Parent = u
			h := Distance(state(nbr.Index), goalState)
			heap.Push(open, astarItem{f: g + h, g: g, index: nbr.Index})
		}
	}
	return false
}

// recoverPath walks the parent chain from goal back to start and returns the
// path in forward order, copying every state out of the buffer.
func recoverPath(nodes []RoadmapNode, startIndex, goalIndex int, state func(int) []float64) [][]float64 {
	var reversed [][]float64
	for cur := goalIndex; ; cur = nodes[cur].Parent {
		reversed = append(reversed, clone(state(cur)))
		if cur == startIndex {
			break
		}
	}
	path := make([][]float64, len(reversed))
	for i, s := range reversed {
		path[len(reversed)-1-i] = s
	}
	return path
}
