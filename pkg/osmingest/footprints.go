package osmingest

import "github.com/paulmach/osm"

// Footprint is a simple closed ring (buildings) or open polyline (bridges)
// of WGS84 (lon, lat) coordinates, handed to pkg/dem's mask engine. This is
// the supplemented building/bridge extraction recovered from the original
// implementation's BuildingHandler/BuildingCounter (see SPEC_FULL.md §12);
// only way-tagged footprints are extracted, not multipolygon relations.
type Footprint struct {
	WayID  osm.WayID
	Coords [][2]float64 // (lon, lat) pairs, in way node order
}

// buildingFootprint extracts a closed-ring footprint from a way tagged
// building=*, using the location cache populated by scanLocations.
func buildingFootprint(w *osm.Way, lat, lon map[osm.NodeID]float64) (Footprint, bool) {
	if w.Tags.Find("building") == "" {
		return Footprint{}, false
	}
	return wayFootprint(w, lat, lon), true
}

// bridgeFootprint extracts a linestring footprint from a way tagged
// bridge=yes or man_made=bridge; pkg/dem buffers it by a configured
// distance in local UTM before masking (§4.5).
func bridgeFootprint(w *osm.Way, lat, lon map[osm.NodeID]float64) (Footprint, bool) {
	if w.Tags.Find("bridge") != "yes" && w.Tags.Find("man_made") != "bridge" {
		return Footprint{}, false
	}
	return wayFootprint(w, lat, lon), true
}

func wayFootprint(w *osm.Way, lat, lon map[osm.NodeID]float64) Footprint {
	coords := make([][2]float64, len(w.Nodes))
	for i, wn := range w.Nodes {
		coords[i] = [2]float64{lon[wn.ID], lat[wn.ID]}
	}
	return Footprint{WayID: w.ID, Coords: coords}
}
