// Command mask runs C5: load a cached DEM tile, mask out building and
// bridge footprints read from a JSON file of {buildings, bridges}, and
// write the updated tile back to disk.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/paulmach/orb"

	"github.com/azybler/osw-network/pkg/dem"
)

type footprintFile struct {
	Buildings []orb.Ring        `json:"buildings"`
	Bridges   []orb.LineString  `json:"bridges"`
}

func main() {
	tilePath := flag.String("tile", "", "Path to a cached DEM tile file")
	footprints := flag.String("footprints", "", "Path to a JSON file of {buildings: [...], bridges: [...]}")
	bufferM := flag.Float64("bridge-buffer-m", dem.DefaultBridgeBufferMeters, "Bridge buffer distance in meters")
	output := flag.String("output", "", "Output tile path; defaults to overwriting --tile")
	flag.Parse()

	if *tilePath == "" || *footprints == "" {
		fmt.Fprintln(os.Stderr, "Usage: mask --tile tile.demtile --footprints footprints.json [--output out.demtile]")
		os.Exit(1)
	}
	if *output == "" {
		*output = *tilePath
	}

	log.Printf("reading tile %s...", *tilePath)
	tile, err := dem.ReadTile(*tilePath)
	if err != nil {
		log.Fatalf("read tile: %v", err)
	}

	log.Printf("reading footprints %s...", *footprints)
	fp, err := readFootprints(*footprints)
	if err != nil {
		log.Fatalf("read footprints: %v", err)
	}

	for _, ring := range fp.Buildings {
		tile.MaskBuildingFootprint(ring)
	}
	for _, ls := range fp.Bridges {
		tile.MaskBridgeFootprint(ls, *bufferM)
	}

	masked := 0
	for _, m := range tile.Mask {
		if m {
			masked++
		}
	}
	log.Printf("masked %d/%d pixels (%d buildings, %d bridges)", masked, len(tile.Mask), len(fp.Buildings), len(fp.Bridges))

	if err := dem.WriteTile(*output, tile); err != nil {
		log.Fatalf("write tile: %v", err)
	}
	log.Printf("wrote %s", *output)
}

func readFootprints(path string) (footprintFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return footprintFile{}, err
	}
	var fp footprintFile
	if err := json.Unmarshal(b, &fp); err != nil {
		return footprintFile{}, err
	}
	return fp, nil
}
