// Package network holds the pedestrian accessibility graph (C3 simplifier
// and C4 geometry builder): a directed multigraph keyed by OSM node IDs,
// mutable adjacency lists for degree-2 coalescing, and GeoJSON materialization.
//
// Unlike the car-routing graph this module descends from, the network here
// must support in-place node removal during simplification, so it is kept
// as adjacency lists rather than compacted into CSR form. CSR compaction
// only happens, if at all, downstream of this package once the graph is
// final and handed to the router.
package network

import "github.com/paulmach/osm"

// Node is a graph vertex: an OSM node with its lon/lat position and
// retained tags (kerb class only, per the normalizer).
type Node struct {
	ID       osm.NodeID
	Lon, Lat float64
	Tags     map[string]string
	Retained bool // true iff NormalizeNode classified this node (kerb in accessible set)
}

// Edge is a graph arc: a way segment (or, post-simplification, a coalesced
// run of segments) carrying the ordered node-reference chain and normalized
// way tags, plus the fields later phases annotate.
type Edge struct {
	From, To  osm.NodeID
	WayID     osm.WayID
	Segment   int // 0-based index of the first constituent segment within its way
	NDRef     []osm.NodeID
	Tags      map[string]string
	Geometry  [][2]float64 // populated by BuildGeometry; (lon,lat) pairs
	Length    float64      // meters, rounded to 0.1; populated by BuildGeometry
	Incline   *float64     // nil until set by pkg/dem
	CurbRamps *int         // nil until set by pkg/curbramp
}

// Graph is a directed multigraph over OSM node IDs with mutable adjacency,
// as required by the degree-2 coalescing algorithm in simplify.go.
type Graph struct {
	Nodes map[osm.NodeID]*Node

	out  map[osm.NodeID][]*Edge
	in   map[osm.NodeID][]*Edge
	live map[*Edge]bool
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		Nodes: make(map[osm.NodeID]*Node),
		out:   make(map[osm.NodeID][]*Edge),
		in:    make(map[osm.NodeID][]*Edge),
		live:  make(map[*Edge]bool),
	}
}

// AddNode inserts or updates the lon/lat of a node, preserving any tags
// already merged onto it.
func (g *Graph) AddNode(id osm.NodeID, lon, lat float64) *Node {
	n, ok := g.Nodes[id]
	if !ok {
		n = &Node{ID: id}
		g.Nodes[id] = n
	}
	n.Lon, n.Lat = lon, lat
	return n
}

// MergeNodeTags applies normalized node tags (from Pass 2) onto an existing node.
func (g *Graph) MergeNodeTags(id osm.NodeID, tags map[string]string) {
	n, ok := g.Nodes[id]
	if !ok {
		return
	}
	n.Tags = tags
	n.Retained = true
}

// AddEdge inserts e into the adjacency lists. e.From and e.To must already
// name nodes present in the graph.
func (g *Graph) AddEdge(e *Edge) {
	g.out[e.From] = append(g.out[e.From], e)
	g.in[e.To] = append(g.in[e.To], e)
	g.live[e] = true
}

// RemoveEdge deletes e from the adjacency lists. Removing an edge that is
// not present (already removed) is a no-op, matching the simplifier's
// "silently skip" edge case.
func (g *Graph) RemoveEdge(e *Edge) {
	if !g.live[e] {
		return
	}
	delete(g.live, e)
	g.out[e.From] = removeEdgePtr(g.out[e.From], e)
	g.in[e.To] = removeEdgePtr(g.in[e.To], e)
}

// HasEdge reports whether e is currently present in the graph.
func (g *Graph) HasEdge(e *Edge) bool {
	return g.live[e]
}

func removeEdgePtr(s []*Edge, target *Edge) []*Edge {
	for i, e := range s {
		if e == target {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// OutDegree returns the number of edges leaving id.
func (g *Graph) OutDegree(id osm.NodeID) int { return len(g.out[id]) }

// InDegree returns the number of edges arriving at id.
func (g *Graph) InDegree(id osm.NodeID) int { return len(g.in[id]) }

// Successors returns the live out-edges of id. Callers must not retain the
// returned slice across a mutation of g.
func (g *Graph) Successors(id osm.NodeID) []*Edge { return g.out[id] }

// Predecessors returns the live in-edges of id.
func (g *Graph) Predecessors(id osm.NodeID) []*Edge { return g.in[id] }

// Edges returns every live edge in the graph, in no particular order.
func (g *Graph) Edges() []*Edge {
	edges := make([]*Edge, 0, len(g.live))
	for e := range g.live {
		edges = append(edges, e)
	}
	return edges
}

// NumNodes returns the node count.
func (g *Graph) NumNodes() int { return len(g.Nodes) }

// NumEdges returns the live edge count.
func (g *Graph) NumEdges() int { return len(g.live) }
