// Package geomutil implements the point-in-polygon and linestring/polygon
// intersection tests C5 (DEM masking) and C9 (task annotation) both need.
// orb ships geometry types but no predicate of this kind, so this is a
// deliberate stdlib-only addition (see DESIGN.md) built on orb's own point
// and ring types so callers never need to convert formats.
package geomutil

import "github.com/paulmach/orb"

// PointInRing reports whether p lies inside ring using the standard
// ray-casting (even-odd) rule. A point exactly on the boundary may return
// either true or false; callers needing exact boundary handling (§4.5's
// "distance-zero" test) should use PointOnOrInRing instead.
func PointInRing(p orb.Point, ring orb.Ring) bool {
	inside := false
	n := len(ring)
	if n < 3 {
		return false
	}
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := ring[i], ring[j]
		intersects := (pi[1] > p[1]) != (pj[1] > p[1]) &&
			p[0] < (pj[0]-pi[0])*(p[1]-pi[1])/(pj[1]-pi[1])+pi[0]
		if intersects {
			inside = !inside
		}
	}
	return inside
}

// PointOnOrInRing reports whether p lies inside ring or exactly on one of
// its edges, matching §4.5's "point falls inside the polygon (point-in-polygon
// by distance-zero test)" wording, which treats boundary pixels as masked.
func PointOnOrInRing(p orb.Point, ring orb.Ring) bool {
	if PointInRing(p, ring) {
		return true
	}
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		if pointOnSegment(p, ring[j], ring[i]) {
			return true
		}
	}
	return false
}

// PointInPolygon reports whether p lies inside poly's outer ring and
// outside all of its holes.
func PointInPolygon(p orb.Point, poly orb.Polygon) bool {
	if len(poly) == 0 {
		return false
	}
	if !PointOnOrInRing(p, poly[0]) {
		return false
	}
	for _, hole := range poly[1:] {
		if PointInRing(p, hole) {
			return false
		}
	}
	return true
}

// PointInMultiPolygon reports whether p lies inside any member of mp.
func PointInMultiPolygon(p orb.Point, mp orb.MultiPolygon) bool {
	for _, poly := range mp {
		if PointInPolygon(p, poly) {
			return true
		}
	}
	return false
}

// LineStringIntersectsPolygon reports whether any vertex of ls lies inside
// poly, or any segment of ls crosses any edge of poly's outer ring. This is
// the predicate C9's task annotator uses to flag edges touching a mapped
// polygon; it is deliberately a touches-or-crosses test, not a strict
// topological intersection, since edge geometries here are simple polylines.
func LineStringIntersectsPolygon(ls orb.LineString, poly orb.Polygon) bool {
	if len(poly) == 0 || len(ls) == 0 {
		return false
	}
	for _, p := range ls {
		if PointInPolygon(p, poly) {
			return true
		}
	}
	ring := poly[0]
	for i := 0; i+1 < len(ls); i++ {
		a, b := ls[i], ls[i+1]
		for j, k := 0, len(ring)-1; j < len(ring); k, j = j, j+1 {
			if segmentsIntersect(a, b, ring[k], ring[j]) {
				return true
			}
		}
	}
	return false
}

func pointOnSegment(p, a, b orb.Point) bool {
	cross := (p[0]-a[0])*(b[1]-a[1]) - (p[1]-a[1])*(b[0]-a[0])
	if absF(cross) > 1e-12 {
		return false
	}
	if p[0] < minF(a[0], b[0])-1e-12 || p[0] > maxF(a[0], b[0])+1e-12 {
		return false
	}
	if p[1] < minF(a[1], b[1])-1e-12 || p[1] > maxF(a[1], b[1])+1e-12 {
		return false
	}
	return true
}

func segmentsIntersect(p1, p2, p3, p4 orb.Point) bool {
	d1 := direction(p3, p4, p1)
	d2 := direction(p3, p4, p2)
	d3 := direction(p1, p2, p3)
	d4 := direction(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if d1 == 0 && pointOnSegment(p1, p3, p4) {
		return true
	}
	if d2 == 0 && pointOnSegment(p2, p3, p4) {
		return true
	}
	if d3 == 0 && pointOnSegment(p3, p1, p2) {
		return true
	}
	if d4 == 0 && pointOnSegment(p4, p1, p2) {
		return true
	}
	return false
}

func direction(a, b, c orb.Point) float64 {
	return (c[0]-a[0])*(b[1]-a[1]) - (c[1]-a[1])*(b[0]-a[0])
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
