// Command infer_curbramps runs C7: build an STR-tree of accessible kerb
// points from a node GeoJSON feature collection and tag crossing edges in
// an edge GeoJSON feature collection with curbramps=1/0.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/paulmach/orb/geojson"

	"github.com/azybler/osw-network/pkg/curbramp"
	"github.com/azybler/osw-network/pkg/network"
)

func main() {
	nodesIn := flag.String("nodes", "", "Path to a node GeoJSON feature collection")
	edgesIn := flag.String("edges", "", "Path to an edge GeoJSON feature collection")
	edgesOut := flag.String("output", "", "Output edge GeoJSON path; defaults to overwriting --edges")
	radius := flag.Float64("radius-m", curbramp.DefaultSearchRadiusMeters, "Search radius in meters")
	flag.Parse()

	if *nodesIn == "" || *edgesIn == "" {
		fmt.Fprintln(os.Stderr, "Usage: infer_curbramps --nodes nodes.geojson --edges edges.geojson [--output out.geojson] [--radius-m 3]")
		os.Exit(1)
	}
	if *edgesOut == "" {
		*edgesOut = *edgesIn
	}

	nodesFC, err := readFeatureCollection(*nodesIn)
	if err != nil {
		log.Fatalf("read nodes: %v", err)
	}
	edgesFC, err := readFeatureCollection(*edgesIn)
	if err != nil {
		log.Fatalf("read edges: %v", err)
	}

	g, err := network.FromFeatureCollections(nodesFC, edgesFC)
	if err != nil {
		log.Fatalf("build graph: %v", err)
	}

	idx := curbramp.BuildKerbIndex(g)
	log.Printf("indexed %d accessible kerb points", idx.Len())

	curbramp.AnnotateCrossings(g, idx, *radius)

	withRamp := 0
	for _, e := range g.Edges() {
		if e.CurbRamps != nil && *e.CurbRamps == 1 {
			withRamp++
		}
	}
	log.Printf("tagged curbramps on %d edges", withRamp)

	b, err := g.ToEdgeFeatureCollection().MarshalJSON()
	if err != nil {
		log.Fatalf("marshal edges: %v", err)
	}
	if err := os.WriteFile(*edgesOut, b, 0o644); err != nil {
		log.Fatalf("write edges: %v", err)
	}
	log.Printf("wrote %s", *edgesOut)
}

func readFeatureCollection(path string) (*geojson.FeatureCollection, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return geojson.UnmarshalFeatureCollection(b)
}
