// Package tags implements the OpenSidewalks tag normalizer (C1): it
// classifies raw OSM way/node tags into the four retained way classes
// (sidewalk, crossing, footway, road) and the kerb node class, and produces
// the canonical tag subset each retained feature carries forward into the
// graph. Classification failure is not an error — the caller simply drops
// the feature.
package tags

import (
	"strconv"

	"github.com/paulmach/osm"
)

// WayClass is one of the four retained OSM way categories.
type WayClass int

const (
	// WayClassNone means the way did not classify into any retained category.
	WayClassNone WayClass = iota
	WayClassSidewalk
	WayClassCrossing
	WayClassFootway
	WayClassRoad
)

func (c WayClass) String() string {
	switch c {
	case WayClassSidewalk:
		return "sidewalk"
	case WayClassCrossing:
		return "crossing"
	case WayClassFootway:
		return "footway"
	case WayClassRoad:
		return "road"
	default:
		return "none"
	}
}

// roadHighwayValues are the highway= values that classify a way as "road".
var roadHighwayValues = map[string]bool{
	"primary":     true,
	"secondary":   true,
	"tertiary":    true,
	"residential": true,
	"service":     true,
}

// crossingMarked is the set of source crossing= values that normalize to "marked".
var crossingMarked = map[string]bool{
	"marked":          true,
	"uncontrolled":    true,
	"traffic_signals": true,
	"zebra":           true,
}

// accessibleKerbs is the retained set of node kerb= values.
var accessibleKerbs = map[string]bool{
	"flush":   true,
	"lowered": true,
	"rolled":  true,
	"raised":  true,
}

// ClassifyWay determines the way class from raw tags without normalizing them.
func ClassifyWay(t osm.Tags) WayClass {
	hw := t.Find("highway")
	if hw == "footway" {
		switch t.Find("footway") {
		case "sidewalk":
			return WayClassSidewalk
		case "crossing":
			return WayClassCrossing
		default:
			return WayClassFootway
		}
	}
	if roadHighwayValues[hw] {
		return WayClassRoad
	}
	return WayClassNone
}

// NormalizeWay classifies and canonicalizes way tags per §4.1. ok is false
// iff the way fails to classify into any retained category, in which case
// the caller must drop the feature rather than treat this as an error.
func NormalizeWay(t osm.Tags) (class WayClass, normalized map[string]string, ok bool) {
	class = ClassifyWay(t)
	if class == WayClassNone {
		return WayClassNone, nil, false
	}

	if class == WayClassRoad {
		out := map[string]string{"highway": t.Find("highway")}
		if w, perr := strconv.ParseFloat(t.Find("width"), 64); perr == nil {
			out["width"] = strconv.FormatFloat(w, 'f', -1, 64)
		}
		return class, out, true
	}

	out := normalizeFootwayBase(t)
	switch class {
	case WayClassSidewalk:
		out["footway"] = "sidewalk"
	case WayClassCrossing:
		out["footway"] = "crossing"
		if crossingMarked[t.Find("crossing")] {
			out["crossing"] = "marked"
		} else if t.Find("crossing") == "unmarked" {
			out["crossing"] = "unmarked"
		}
	}
	return class, out, true
}

// normalizeFootwayBase builds the shared tag subset common to footway,
// sidewalk, and crossing classes: highway plus width/incline (parsed as
// floats, silently dropped if unparsable) plus the elevator and
// opening_hours pass-through the cost function (pkg/cost) requires.
func normalizeFootwayBase(t osm.Tags) map[string]string {
	out := map[string]string{"highway": "footway"}
	if w, err := strconv.ParseFloat(t.Find("width"), 64); err == nil {
		out["width"] = strconv.FormatFloat(w, 'f', -1, 64)
	}
	if inc, err := strconv.ParseFloat(t.Find("incline"), 64); err == nil {
		out["incline"] = strconv.FormatFloat(inc, 'f', -1, 64)
	}
	if ev := t.Find("elevator"); ev != "" {
		out["elevator"] = ev
	}
	if oh := t.Find("opening_hours"); oh != "" {
		out["opening_hours"] = oh
	}
	if br := t.Find("bridge"); br != "" {
		out["bridge"] = br
	}
	return out
}

// NormalizeNode drops the barrier tag and retains kerb/tactile_surface iff
// the kerb value is in the accessible set. ok is false for any node whose
// kerb value is absent or not in that set — such nodes are not retained
// features (though they may still exist in the graph as plain shape points).
func NormalizeNode(t osm.Tags) (normalized map[string]string, ok bool) {
	kerb := t.Find("kerb")
	if !accessibleKerbs[kerb] {
		return nil, false
	}
	out := map[string]string{"kerb": kerb}
	if ts := t.Find("tactile_surface"); ts != "" {
		out["tactile_surface"] = ts
	}
	return out, true
}
