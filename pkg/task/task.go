// Package task implements the task annotator (C9): an independent
// post-process that marks graph edges as touching a mapped/validated
// polygon layer, using the same point-in-polygon predicate pkg/dem's mask
// engine uses.
package task

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/azybler/osw-network/pkg/geomutil"
	"github.com/azybler/osw-network/pkg/network"
)

// Status values a polygon layer feature may carry, per §4.9.
const (
	StatusMapped    = "MAPPED"
	StatusValidated = "VALIDATED"
)

// Attribute names C9 may set on an edge, per §4.9.
const (
	AttrCrossingsMapped = "crossings_mapped"
	AttrSidewalksMapped = "sidewalks_mapped"
)

// Layer is one polygon layer to annotate against: a single feature's
// geometry plus its taskStatus attribute.
type Layer struct {
	Polygon orb.Polygon
	Status  string
}

// Annotate implements §4.9: for each layer whose status is MAPPED or
// VALIDATED, set attribute to 1 on every edge whose geometry intersects
// the layer's polygon. Every edge not touched by any qualifying layer is
// set to 0 (the default), including edges untouched by any layer at all.
func Annotate(g *network.Graph, attribute string, layers []Layer) error {
	if attribute != AttrCrossingsMapped && attribute != AttrSidewalksMapped {
		return fmt.Errorf("%w: %s", ErrUnsupportedAttribute, attribute)
	}

	edges := g.Edges()
	for _, e := range edges {
		if e.Tags == nil {
			e.Tags = map[string]string{}
		}
		e.Tags[attribute] = "0"
	}

	for _, layer := range layers {
		if layer.Status != StatusMapped && layer.Status != StatusValidated {
			continue
		}
		for _, e := range edges {
			if e.Tags[attribute] == "1" {
				continue
			}
			if geomutil.LineStringIntersectsPolygon(edgeLineString(e), layer.Polygon) {
				e.Tags[attribute] = "1"
			}
		}
	}
	return nil
}

func edgeLineString(e *network.Edge) orb.LineString {
	ls := make(orb.LineString, len(e.Geometry))
	for i, c := range e.Geometry {
		ls[i] = orb.Point{c[0], c[1]}
	}
	return ls
}
