package mst

// disjointSet is a union-find arena over dense node indices, with iterative
// path compression in find and union by rank. Both arrays are contiguous;
// node identifiers are mapped to indices by core.Graph at build time.
type disjointSet struct {
	parent []int
	rank   []int
}

// newDisjointSet creates n singleton sets.
func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find returns the representative of the set containing v, compressing the
// path by pointing each visited element at its grandparent.
func (d *disjointSet) find(v int) int {
	for d.parent[v] != v {
		d.parent[v] = d.parent[d.parent[v]]
		v = d.parent[v]
	}

	return v
}

// union merges the sets containing a and b. Reports whether a merge
// happened, i.e. whether a and b were in different sets.
func (d *disjointSet) union(a, b int) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}

	// Attach the smaller-rank tree under the larger-rank root.
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}

	return true
}
