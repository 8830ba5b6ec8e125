package network

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// GeometrySummary counts the outcome of a BuildGeometry pass.
type GeometrySummary struct {
	EdgesBuilt int
	NodesBuilt int
}

// BuildGeometry materializes per-edge polyline geometry and geodesic length
// from each edge's ndref, per §4.4. ndref is discarded from each edge once
// its geometry is built, matching the persisted form's _u_id/_v_id
// convention (From/To already carry that information). Nodes are not
// modified: each keeps its lon/lat, and NodesBuilt reports the node count.
func (g *Graph) BuildGeometry() (GeometrySummary, error) {
	var summary GeometrySummary

	for _, edge := range g.Edges() {
		if len(edge.NDRef) < 2 {
			return summary, fmt.Errorf("way %d segment %d: %w", edge.WayID, edge.Segment, ErrDegenerateGeometry)
		}

		ls := make(orb.LineString, 0, len(edge.NDRef))
		for _, nid := range edge.NDRef {
			n, ok := g.Nodes[nid]
			if !ok {
				return summary, fmt.Errorf("way %d: node %d: %w", edge.WayID, nid, ErrNodeNotFound)
			}
			ls = append(ls, orb.Point{n.Lon, n.Lat})
		}

		lengthM := math.Round(geo.Length(ls)*10) / 10
		if lengthM <= 0 {
			lengthM = 0.1
		}

		coords := make([][2]float64, len(ls))
		for i, p := range ls {
			coords[i] = [2]float64{p[0], p[1]}
		}

		edge.Geometry = coords
		edge.Length = lengthM
		edge.NDRef = nil

		summary.EdgesBuilt++
	}

	summary.NodesBuilt = len(g.Nodes)
	return summary, nil
}
