package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/pathwise/gt/core"
)

// ShortestPath computes the minimum-cost path from source to target in g and
// reports its bottleneck edge.
//
// The search terminates as soon as the target's distance is finalized, so
// only the portion of the graph closer than the target is explored. If
// source == target the result is a single-node path of weight 0 with no
// bottleneck.
//
// Returns ErrNilGraph, ErrNodeNotFound, or ErrNoPath as described in the
// package documentation; ErrNoPath and ErrNodeNotFound errors carry the
// offending node(s) in their message.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath[N comparable](g *core.Graph[N], source, target N) (PathResult[N], error) {
	var zero PathResult[N]

	// 1) Validate inputs.
	if g == nil {
		return zero, ErrNilGraph
	}
	src, ok := g.IndexOf(source)
	if !ok {
		return zero, fmt.Errorf("%w: %v", ErrNodeNotFound, source)
	}
	dst, ok := g.IndexOf(target)
	if !ok {
		return zero, fmt.Errorf("%w: %v", ErrNodeNotFound, target)
	}

	// 2) Trivial query: a node reaches itself along the empty path.
	if src == dst {
		return PathResult[N]{From: source, To: target, Path: []N{source}}, nil
	}

	// 3) Run the search with state local to this invocation.
	r := newRunner(g, src)
	if !r.process(dst) {
		return zero, fmt.Errorf("%w: %v → %v", ErrNoPath, source, target)
	}

	// 4) Reconstruct the path and locate its bottleneck.
	return r.result(source, target, dst), nil
}

// runner holds the mutable state for a single ShortestPath execution.
// All state is owned by the invocation and discarded afterwards.
type runner[N comparable] struct {
	g        *core.Graph[N]
	dist     []float64 // dense index → best known distance from source
	prevEdge []int     // dense index → edge index used to reach it (-1 = none)
	prevNode []int     // dense index → predecessor on the shortest path
	visited  []bool    // dense index → distance finalized
	pq       nodePQ
	seq      uint64 // insertion counter for deterministic tie-breaking
}

func newRunner[N comparable](g *core.Graph[N], src int) *runner[N] {
	n := g.Order()
	r := &runner[N]{
		g:        g,
		dist:     make([]float64, n),
		prevEdge: make([]int, n),
		prevNode: make([]int, n),
		visited:  make([]bool, n),
		pq:       make(nodePQ, 0, n),
	}
	for i := 0; i < n; i++ {
		r.dist[i] = math.Inf(1)
		r.prevEdge[i] = -1
		r.prevNode[i] = -1
	}
	r.dist[src] = 0

	heap.Init(&r.pq)
	r.push(src, 0)

	return r
}

// process runs the main loop until dst is finalized or the frontier is
// exhausted. Reports whether dst was reached.
func (r *runner[N]) process(dst int) bool {
	for r.pq.Len() > 0 {
		// 1) Pop the closest frontier node; drop stale lazy entries.
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.idx] {
			continue
		}
		r.visited[item.idx] = true

		// 2) Target finalized: its distance is now provably minimal.
		if item.idx == dst {
			return true
		}

		// 3) Relax arcs out of the finalized node.
		r.relax(item.idx)
	}

	return false
}

// relax attempts to improve the distance of every neighbor of u. Strict
// improvement is required, so the first discovery wins among equal-cost
// alternatives; together with seq-ordered heap ties this makes the result
// deterministic for a fixed edge iteration order.
func (r *runner[N]) relax(u int) {
	for _, a := range r.g.Arcs(u) {
		if r.visited[a.To] {
			continue
		}
		next := r.dist[u] + a.Weight
		if next >= r.dist[a.To] {
			continue
		}
		r.dist[a.To] = next
		r.prevNode[a.To] = u
		r.prevEdge[a.To] = a.EdgeIndex
		r.push(a.To, next)
	}
}

func (r *runner[N]) push(idx int, dist float64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{idx: idx, dist: dist, seq: r.seq})
}

// result walks predecessor links back from dst, reverses the node sequence,
// and scans the traversed edges for the maximum weight (first occurrence
// wins ties).
func (r *runner[N]) result(source, target N, dst int) PathResult[N] {
	// Collect dense indices dst → src.
	var rev []int
	for at := dst; at != -1; at = r.prevNode[at] {
		rev = append(rev, at)
	}

	res := PathResult[N]{
		From:        source,
		To:          target,
		Path:        make([]N, 0, len(rev)),
		TotalWeight: r.dist[dst],
	}
	for i := len(rev) - 1; i >= 0; i-- {
		res.Path = append(res.Path, r.g.NodeAt(rev[i]))
	}

	// Bottleneck scan over the edges actually relaxed into the path. Strict
	// comparison keeps the first maximal edge along the walk from source.
	best := -1
	var bestW float64
	for i := len(rev) - 2; i >= 0; i-- {
		e := r.prevEdge[rev[i]]
		if w := r.g.EdgeAt(e).Weight; best == -1 || w > bestW {
			best, bestW = e, w
		}
	}
	if best != -1 {
		edge := r.g.EdgeAt(best)
		res.Bottleneck = &edge
	}

	return res
}

// nodeItem is a heap entry: a node index with its tentative distance and the
// insertion sequence number used to order equal distances.
type nodeItem struct {
	idx  int
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq) ascending, the
// lazy-decrease-key queue: improved distances push fresh entries and stale
// ones are skipped on pop via the visited check.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
