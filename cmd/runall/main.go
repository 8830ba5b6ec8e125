// Command runall drives the full per-region build pipeline end to end:
// C2 ingest, C3 simplify, C4 geometry, then C7 curb-ramp and C6 incline
// annotation, writing the final node/edge GeoJSON pair. DEM masking (C5)
// is not run here; cmd/mask does it. Mirrors the CLI surface's "runall"
// command (§6): reads one region config, honors --workdir/OSM_OSW_WORKDIR,
// and exits nonzero on any fatal stage error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/azybler/osw-network/pkg/curbramp"
	"github.com/azybler/osw-network/pkg/dem"
	"github.com/azybler/osw-network/pkg/network"
	"github.com/azybler/osw-network/pkg/osmingest"
	"github.com/azybler/osw-network/pkg/region"
)

func main() {
	configPath := flag.String("config", "", "Path to a region config JSON file")
	workdir := flag.String("workdir", "", "Intermediate-file directory; overrides config.workdir and OSM_OSW_WORKDIR")
	flag.Parse()

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: runall --config region.json [--workdir path]")
		os.Exit(1)
	}

	f, err := os.Open(*configPath)
	if err != nil {
		log.Fatalf("open config: %v", err)
	}
	cfg, err := region.Decode(f)
	f.Close()
	if err != nil {
		log.Fatalf("decode config: %v", err)
	}

	if *workdir != "" {
		cfg.WorkDir = *workdir
	} else if env := os.Getenv("OSM_OSW_WORKDIR"); env != "" {
		cfg.WorkDir = env
	}
	if err := os.MkdirAll(cfg.WorkDir, 0o755); err != nil {
		log.Fatalf("create workdir: %v", err)
	}

	ctx := context.Background()

	pbfPath := filepath.Join(cfg.WorkDir, cfg.ID+".osm.pbf")
	log.Printf("[%s] ingest: opening %s", cfg.ID, pbfPath)
	pbf, err := os.Open(pbfPath)
	if err != nil {
		log.Fatalf("[%s] open pbf (run fetch/clip first): %v", cfg.ID, err)
	}
	result, err := osmingest.Ingest(ctx, pbf)
	pbf.Close()
	if err != nil {
		log.Fatalf("[%s] ingest: %v", cfg.ID, err)
	}
	log.Printf("[%s] ingest: %d ways retained, %d nodes retained", cfg.ID, result.Summary.WaysRetained, result.Summary.NodesRetained)

	g := result.Graph

	if cfg.Simplify {
		summary := g.Simplify()
		log.Printf("[%s] simplify: %d nodes coalesced, %d runs collapsed, %d self-loops dropped",
			cfg.ID, summary.NodesCoalesced, summary.RunsCollapsed, summary.SelfLoopsDropped)
	}

	if _, err := g.BuildGeometry(); err != nil {
		log.Fatalf("[%s] build geometry: %v", cfg.ID, err)
	}
	log.Printf("[%s] geometry: %d nodes, %d edges", cfg.ID, g.NumNodes(), g.NumEdges())

	if report := network.Components(g); report.NumComponents > 1 {
		log.Printf("[%s] components: %d weakly connected components, largest %d nodes, islands %v",
			cfg.ID, report.NumComponents, report.LargestSize, report.IslandSizes)
	}

	annotateCurbRamps(cfg, g)
	annotateIncline(cfg, g)

	nodesOut := filepath.Join(cfg.WorkDir, cfg.ID+".graph.nodes.geojson")
	edgesOut := filepath.Join(cfg.WorkDir, cfg.ID+".graph.edges.geojson")
	if err := writeGeoJSON(nodesOut, g.ToNodeFeatureCollection()); err != nil {
		log.Fatalf("[%s] write nodes: %v", cfg.ID, err)
	}
	if err := writeGeoJSON(edgesOut, g.ToEdgeFeatureCollection()); err != nil {
		log.Fatalf("[%s] write edges: %v", cfg.ID, err)
	}
	log.Printf("[%s] done: %s, %s", cfg.ID, nodesOut, edgesOut)
}

func annotateCurbRamps(cfg region.Config, g *network.Graph) {
	radius := cfg.SearchRadiusM
	if radius <= 0 {
		radius = curbramp.DefaultSearchRadiusMeters
	}
	idx := curbramp.BuildKerbIndex(g)
	curbramp.AnnotateCrossings(g, idx, radius)
	log.Printf("[%s] curbramps: %d accessible kerb points indexed", cfg.ID, idx.Len())
}

// annotateIncline is a best-effort stage: if no DEM tile index is
// available for this region (no tiles fetched yet), it logs and moves on
// rather than failing the whole build, since incline is an optional edge
// attribute per §3.
func annotateIncline(cfg region.Config, g *network.Graph) {
	tilesDir := filepath.Join(cfg.WorkDir, "tiles")
	entries, err := os.ReadDir(tilesDir)
	if err != nil || len(entries) == 0 {
		log.Printf("[%s] incline: no DEM tiles found in %s, skipping", cfg.ID, tilesDir)
		return
	}

	idx := dem.NewIndex()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		tile, err := dem.ReadTile(filepath.Join(tilesDir, entry.Name()))
		if err != nil {
			log.Printf("[%s] incline: skipping unreadable tile %s: %v", cfg.ID, entry.Name(), err)
			continue
		}
		idx.Add(tile)
	}

	annotated := 0
	for _, e := range g.Edges() {
		if len(e.Geometry) < 2 {
			continue
		}
		first := e.Geometry[0]
		last := e.Geometry[len(e.Geometry)-1]
		tile, err := idx.Lookup(first[0], first[1])
		if err != nil {
			continue
		}
		incline, ok := dem.Incline(tile, first[0], first[1], last[0], last[1], e.Length, dem.MethodIDW)
		if !ok {
			continue
		}
		v := incline
		e.Incline = &v
		annotated++
	}
	log.Printf("[%s] incline: annotated %d edges from %d tiles", cfg.ID, annotated, len(entries))
}

func writeGeoJSON(path string, fc interface{ MarshalJSON() ([]byte, error) }) error {
	b, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
