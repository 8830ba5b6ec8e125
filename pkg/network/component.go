package network

import (
	"sort"

	"github.com/paulmach/osm"
)

// unionFind is a disjoint-set structure over osm.NodeID, adapted from the
// teacher's pkg/graph/component.go UnionFind (originally indexed by a
// dense uint32 CSR node index; generalized here to a sparse OSM node ID
// keyspace via a map, since this package's Graph is never compacted to
// CSR form).
type unionFind struct {
	parent map[osm.NodeID]osm.NodeID
	rank   map[osm.NodeID]byte
	size   map[osm.NodeID]int
}

func newUnionFind(ids []osm.NodeID) *unionFind {
	uf := &unionFind{
		parent: make(map[osm.NodeID]osm.NodeID, len(ids)),
		rank:   make(map[osm.NodeID]byte, len(ids)),
		size:   make(map[osm.NodeID]int, len(ids)),
	}
	for _, id := range ids {
		uf.parent[id] = id
		uf.size[id] = 1
	}
	return uf
}

func (uf *unionFind) find(x osm.NodeID) osm.NodeID {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]] // path halving
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(x, y osm.NodeID) {
	rx, ry := uf.find(x), uf.find(y)
	if rx == ry {
		return
	}
	if uf.rank[rx] < uf.rank[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	uf.size[rx] += uf.size[ry]
	if uf.rank[rx] == uf.rank[ry] {
		uf.rank[rx]++
	}
}

// ComponentReport summarizes the graph's weakly connected components, a
// build QA supplement: a region extract with a disconnected sidewalk
// island usually signals a clipping boundary artifact or missing
// connecting ways, worth surfacing before the region is handed to the
// router as "done".
type ComponentReport struct {
	NumComponents int
	LargestSize   int
	IslandSizes   []int // every component's node count except the largest, descending
}

// Components treats g as undirected and partitions its nodes into weakly
// connected components via union-find, matching the teacher's
// LargestComponent/FilterToComponent algorithm (pkg/graph/component.go)
// generalized from a dense CSR index to a sparse osm.NodeID keyspace.
func Components(g *Graph) ComponentReport {
	if len(g.Nodes) == 0 {
		return ComponentReport{}
	}

	ids := make([]osm.NodeID, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	uf := newUnionFind(ids)

	for _, e := range g.Edges() {
		uf.union(e.From, e.To)
	}

	sizes := make(map[osm.NodeID]int)
	for _, id := range ids {
		sizes[uf.find(id)]++
	}

	all := make([]int, 0, len(sizes))
	for _, n := range sizes {
		all = append(all, n)
	}
	largestIdx := 0
	for i, n := range all {
		if n > all[largestIdx] {
			largestIdx = i
		}
	}

	islands := make([]int, 0, len(all)-1)
	for i, n := range all {
		if i != largestIdx {
			islands = append(islands, n)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(islands)))

	return ComponentReport{
		NumComponents: len(sizes),
		LargestSize:   all[largestIdx],
		IslandSizes:   islands,
	}
}
