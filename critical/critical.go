package critical

import "github.com/pathwise/gt/core"

// frame is one level of the explicit DFS stack: the node being explored, the
// edge it was entered through, a cursor over its adjacency arcs, and the
// number of DFS children seen so far (consulted for the root rule).
type frame struct {
	v        int
	inEdge   int // edge index used to enter v; -1 at a DFS root
	arc      int // next arc of v to examine
	children int
}

// FindCritical computes the bridges and articulation points of g.
//
// The graph may be disconnected; every component is traversed. Results are
// reported in input order (edge order for bridges, node order for
// articulation points) regardless of traversal order.
//
// Complexity: O(V + E) time, O(V) space.
func FindCritical[N comparable](g *core.Graph[N]) (Result[N], error) {
	// 1) Validate.
	if g == nil {
		return Result[N]{}, ErrNilGraph
	}
	if g.Directed() {
		return Result[N]{}, ErrDirectedGraph
	}

	n := g.Order()
	disc := make([]int, n) // discovery index, -1 = unvisited
	low := make([]int, n)  // low-link value
	for i := range disc {
		disc[i] = -1
	}
	isCut := make([]bool, n)
	isBridge := make([]bool, g.Size())
	timer := 0

	stack := make([]frame, 0, 64)

	// 2) DFS forest: restart from every undiscovered node.
	for root := 0; root < n; root++ {
		if disc[root] != -1 {
			continue
		}
		disc[root], low[root] = timer, timer
		timer++
		stack = append(stack, frame{v: root, inEdge: -1})

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			arcs := g.Arcs(f.v)

			if f.arc < len(arcs) {
				a := arcs[f.arc]
				f.arc++

				// The arc along the entering edge is the walk back to the
				// parent; compared by edge index, so a parallel edge to the
				// parent still counts as a genuine back edge below.
				if a.EdgeIndex == f.inEdge {
					continue
				}

				if disc[a.To] == -1 {
					// Tree edge: descend.
					f.children++
					disc[a.To], low[a.To] = timer, timer
					timer++
					stack = append(stack, frame{v: a.To, inEdge: a.EdgeIndex})
					continue
				}

				// Back edge: the discovery index of the target bounds low.
				if disc[a.To] < low[f.v] {
					low[f.v] = disc[a.To]
				}
				continue
			}

			// 3) Arcs exhausted: pop and fold this subtree into its parent.
			done := *f
			stack = stack[:len(stack)-1]

			if len(stack) == 0 {
				// DFS root: articulation iff it branched more than once.
				if done.children > 1 {
					isCut[done.v] = true
				}
				continue
			}

			p := &stack[len(stack)-1]
			if low[done.v] < low[p.v] {
				low[p.v] = low[done.v]
			}
			// Bridge rule on the tree edge (p.v, done.v).
			if low[done.v] > disc[p.v] {
				isBridge[done.inEdge] = true
			}
			// Articulation rule for non-root parents.
			if p.inEdge != -1 && low[done.v] >= disc[p.v] {
				isCut[p.v] = true
			}
		}
	}

	// 4) Emit in input order for reproducible output.
	var res Result[N]
	for i, b := range isBridge {
		if b {
			res.Bridges = append(res.Bridges, g.EdgeAt(i))
		}
	}
	for i, c := range isCut {
		if c {
			res.ArticulationPoints = append(res.ArticulationPoints, g.NodeAt(i))
		}
	}

	return res, nil
}
