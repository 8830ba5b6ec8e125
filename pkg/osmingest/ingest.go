// Package osmingest implements the PBF streaming ingest (C2): it scans an
// OSM PBF extract and produces a raw (pre-simplification) network.Graph,
// plus the building/bridge footprints the DEM mask engine (pkg/dem) needs.
//
// It is grounded on the teacher's pkg/osm/parser.go two-pass scan over an
// osmpbf.Scanner, generalized from car-accessible highways to the
// OpenSidewalks way/node classes (pkg/tags) and from an io.ReadSeeker
// seek-back design to three streaming passes rather than two, since this
// domain needs node coordinates available while scanning ways (§4.2) in
// addition to the tag-merge pass the teacher already performs.
package osmingest

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"

	"github.com/azybler/osw-network/pkg/network"
	"github.com/azybler/osw-network/pkg/tags"
)

// Summary counts ingest outcomes for the end-of-stage report.
type Summary struct {
	WaysSeen       int
	WaysRetained   int
	NodesSeen      int
	NodesRetained  int
	Buildings      int
	Bridges        int
}

// Result is the output of Ingest: a raw graph (pre-simplification) plus
// the footprints the DEM mask engine consumes.
type Result struct {
	Graph     *network.Graph
	Buildings []Footprint
	Bridges   []Footprint
	Summary   Summary
}

// Ingest performs the three streaming passes described in the package doc
// over rs, which must support seeking back to the start between passes.
func Ingest(ctx context.Context, rs io.ReadSeeker) (*Result, error) {
	locLat, locLon, err := scanLocations(ctx, rs)
	if err != nil {
		return nil, err
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("osmingest: seek before way pass: %w: %v", ErrIo, err)
	}

	g := network.NewGraph()
	var summary Summary
	var buildings, bridges []Footprint

	scanner := osmpbf.New(ctx, rs, 1)
	scanner.SkipRelations = true
	for scanner.Scan() {
		w, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		summary.WaysSeen++

		if fp, isBuilding := buildingFootprint(w, locLat, locLon); isBuilding {
			buildings = append(buildings, fp)
			summary.Buildings++
			continue
		}
		if fp, isBridge := bridgeFootprint(w, locLat, locLon); isBridge {
			bridges = append(bridges, fp)
			summary.Bridges++
		}

		_, normTags, ok := tags.NormalizeWay(w.Tags)
		if !ok {
			continue
		}
		if len(w.Nodes) < 2 {
			continue
		}
		summary.WaysRetained++
		insertWayEdges(g, w, normTags, locLat, locLon)
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, fmt.Errorf("osmingest: way pass: %w: %v", ErrCorruptInput, err)
	}
	scanner.Close()
	log.Printf("osmingest: way pass complete: %d/%d ways retained, %d buildings, %d bridges",
		summary.WaysRetained, summary.WaysSeen, summary.Buildings, summary.Bridges)

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("osmingest: seek before node pass: %w: %v", ErrIo, err)
	}

	scanner = osmpbf.New(ctx, rs, 1)
	scanner.SkipWays = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		n, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		summary.NodesSeen++
		normTags, ok := tags.NormalizeNode(n.Tags)
		if !ok {
			continue
		}
		if _, present := g.Nodes[n.ID]; !present {
			continue
		}
		g.MergeNodeTags(n.ID, normTags)
		summary.NodesRetained++
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, fmt.Errorf("osmingest: node pass: %w: %v", ErrCorruptInput, err)
	}
	scanner.Close()
	log.Printf("osmingest: node pass complete: %d/%d nodes retained", summary.NodesRetained, summary.NodesSeen)

	return &Result{Graph: g, Buildings: buildings, Bridges: bridges, Summary: summary}, nil
}

// scanLocations performs the internal location-cache pre-scan so that node
// coordinates are available while the way pass runs, matching the "PBF
// locations available inline" requirement of §4.2.
func scanLocations(ctx context.Context, rs io.ReadSeeker) (lat, lon map[osm.NodeID]float64, err error) {
	scanner := osmpbf.New(ctx, rs, 1)
	scanner.SkipWays = true
	scanner.SkipRelations = true

	lat = make(map[osm.NodeID]float64)
	lon = make(map[osm.NodeID]float64)
	for scanner.Scan() {
		n, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		lat[n.ID] = n.Lat
		lon[n.ID] = n.Lon
	}
	if serr := scanner.Err(); serr != nil {
		scanner.Close()
		return nil, nil, fmt.Errorf("osmingest: location pre-scan: %w: %v", ErrCorruptInput, serr)
	}
	scanner.Close()
	log.Printf("osmingest: location pre-scan complete: %d node coordinates cached", len(lat))
	return lat, lon, nil
}

// insertWayEdges allocates one edge per consecutive node pair in w, per §4.2's
// Pass 1, inserting referenced node coordinates along the way.
func insertWayEdges(g *network.Graph, w *osm.Way, normTags map[string]string, locLat, locLon map[osm.NodeID]float64) {
	for _, wn := range w.Nodes {
		la, lo := locLat[wn.ID], locLon[wn.ID]
		g.AddNode(wn.ID, lo, la)
	}
	for i := 0; i < len(w.Nodes)-1; i++ {
		u := w.Nodes[i].ID
		v := w.Nodes[i+1].ID
		g.AddEdge(&network.Edge{
			From:    u,
			To:      v,
			WayID:   w.ID,
			Segment: i,
			NDRef:   []osm.NodeID{u, v},
			Tags:    normTags,
		})
	}
}
