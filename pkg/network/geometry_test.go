package network

import (
	"math"
	"testing"

	"github.com/paulmach/osm"
)

func TestBuildGeometrySimpleEdge(t *testing.T) {
	g := NewGraph()
	g.AddNode(1, -122.3421, 47.6101)
	g.AddNode(2, -122.3421, 47.6110)
	g.AddEdge(&Edge{
		From: 1, To: 2, WayID: 1, Segment: 0,
		NDRef: []osm.NodeID{1, 2},
		Tags:  map[string]string{"highway": "footway"},
	})

	summary, err := g.BuildGeometry()
	if err != nil {
		t.Fatalf("BuildGeometry() error = %v", err)
	}
	if summary.EdgesBuilt != 1 || summary.NodesBuilt != 2 {
		t.Errorf("summary = %+v, want 1 edge / 2 nodes", summary)
	}

	e := g.Edges()[0]
	if len(e.Geometry) != 2 {
		t.Fatalf("geometry has %d coords, want 2", len(e.Geometry))
	}
	if e.NDRef != nil {
		t.Errorf("ndref should be discarded after geometry build, got %v", e.NDRef)
	}
	if e.Length < 90 || e.Length > 110 {
		t.Errorf("length = %f, want ~100m", e.Length)
	}
	if math.Mod(e.Length*10, 1) > 1e-6 {
		t.Errorf("length %f not rounded to 0.1m", e.Length)
	}
}

func TestBuildGeometryMissingNodeErrors(t *testing.T) {
	g := NewGraph()
	g.AddNode(1, 0, 0)
	g.AddEdge(&Edge{From: 1, To: 2, WayID: 1, NDRef: []osm.NodeID{1, 2}})

	if _, err := g.BuildGeometry(); err == nil {
		t.Fatal("expected error for missing node 2")
	}
}

func TestBuildGeometryZeroLengthClampedToMinimum(t *testing.T) {
	g := NewGraph()
	g.AddNode(1, -122.0, 47.0)
	g.AddNode(2, -122.0, 47.0) // identical coordinates
	g.AddEdge(&Edge{From: 1, To: 2, WayID: 1, NDRef: []osm.NodeID{1, 2}})

	if _, err := g.BuildGeometry(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := g.Edges()[0]
	if e.Length != 0.1 {
		t.Errorf("Length = %f, want 0.1 (clamped minimum)", e.Length)
	}
}
