package dem

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/azybler/osw-network/pkg/geomutil"
	"github.com/azybler/osw-network/pkg/utmproj"
)

// DefaultBridgeBufferMeters is the default buffer distance applied to
// bridge linestrings before masking, per §4.5.
const DefaultBridgeBufferMeters = 30.0

// MaskBuildingFootprint marks pixels beneath a building footprint (no
// buffer) as nodata, per §4.5 steps 2a-2f.
func (t *Tile) MaskBuildingFootprint(ring orb.Ring) {
	t.maskPolygon(orb.Polygon{ring})
}

// MaskBridgeFootprint buffers a bridge linestring by bufferMeters in a
// local UTM zone and masks the resulting polygon, per §4.5's "Bridge
// buffering" paragraph. bufferMeters <= 0 uses DefaultBridgeBufferMeters.
func (t *Tile) MaskBridgeFootprint(ls orb.LineString, bufferMeters float64) {
	if bufferMeters <= 0 {
		bufferMeters = DefaultBridgeBufferMeters
	}
	if len(ls) == 0 {
		return
	}
	poly := bufferLineStringUTM(ls, bufferMeters)
	t.maskPolygon(poly)
}

// maskPolygon implements the per-tile algorithm of §4.5: bbox in pixel
// space, clip to tile extent, skip if degenerate, distance-zero
// point-in-polygon test per pixel center.
func (t *Tile) maskPolygon(poly orb.Polygon) {
	if len(poly) == 0 || len(poly[0]) == 0 {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range poly[0] {
		x, y := t.GeoToPixel(pt[0], pt[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	x0 := int(math.Floor(minX))
	y0 := int(math.Floor(minY))
	x1 := int(math.Ceil(maxX))
	y1 := int(math.Ceil(maxY))

	if x1 <= 0 || y1 <= 0 || x0 >= t.Width || y0 >= t.Height {
		return // bbox entirely outside tile extent
	}

	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > t.Width {
		x1 = t.Width
	}
	if y1 > t.Height {
		y1 = t.Height
	}
	if x1 <= x0 || y1 <= y0 {
		return // clipped bbox has zero area
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			lon, lat := t.pixelCenterToGeo(x, y)
			if geomutil.PointInPolygon(orb.Point{lon, lat}, poly) {
				t.SetMask(x, y, true)
			}
		}
	}
}

func (t *Tile) pixelCenterToGeo(x, y int) (lon, lat float64) {
	lon = t.OriginLon + (float64(x)+0.5)*t.PixelSizeLon
	lat = t.OriginLat + (float64(y)+0.5)*t.PixelSizeLat
	return lon, lat
}

// bufferLineStringUTM implements the "Bridge buffering" paragraph of §4.5:
// project to the UTM zone of the linestring's first point, buffer by a
// fixed distance using mitered offset polygons on each side, then project
// back to WGS84.
func bufferLineStringUTM(ls orb.LineString, meters float64) orb.Polygon {
	first := ls[0]
	_, _, zone, north := utmproj.ToUTM(first[0], first[1])

	type enu struct{ e, n float64 }
	pts := make([]enu, len(ls))
	for i, pt := range ls {
		e, n := utmproj.ToUTMZone(pt[0], pt[1], zone)
		pts[i] = enu{e, n}
	}

	left := make([]enu, 0, len(pts))
	right := make([]enu, 0, len(pts))
	for i := range pts {
		var dx, dy float64
		switch {
		case len(pts) == 1:
			dx, dy = 1, 0
		case i == 0:
			dx, dy = pts[i+1].e-pts[i].e, pts[i+1].n-pts[i].n
		case i == len(pts)-1:
			dx, dy = pts[i].e-pts[i-1].e, pts[i].n-pts[i-1].n
		default:
			dx1, dy1 := pts[i].e-pts[i-1].e, pts[i].n-pts[i-1].n
			dx2, dy2 := pts[i+1].e-pts[i].e, pts[i+1].n-pts[i].n
			dx, dy = dx1+dx2, dy1+dy2
		}
		length := math.Hypot(dx, dy)
		if length == 0 {
			length = 1
		}
		nx, ny := -dy/length, dx/length // unit normal
		left = append(left, enu{pts[i].e + nx*meters, pts[i].n + ny*meters})
		right = append(right, enu{pts[i].e - nx*meters, pts[i].n - ny*meters})
	}

	ring := make(orb.Ring, 0, 2*len(pts)+1)
	for _, p := range left {
		lon, lat := inverseUTM(p.e, p.n, zone, north)
		ring = append(ring, orb.Point{lon, lat})
	}
	for i := len(right) - 1; i >= 0; i-- {
		lon, lat := inverseUTM(right[i].e, right[i].n, zone, north)
		ring = append(ring, orb.Point{lon, lat})
	}
	ring = append(ring, ring[0])
	return orb.Polygon{ring}
}

// inverseUTM recovers an approximate WGS84 point from a UTM easting/northing
// by Newton-iterating utmproj.ToUTMZone's forward projection; sufficient
// accuracy for a 30 m buffer at NED13 pixel scale.
func inverseUTM(easting, northing float64, zone int, north bool) (lon, lat float64) {
	lon = float64(zone)*6 - 183 // central meridian, initial guess
	targetNorthing := northing
	lat = (targetNorthing - utmSouthOffset(north)) / 110574.0 // initial guess

	for i := 0; i < 10; i++ {
		fe, fn := utmproj.ToUTMZone(lon, lat, zone)
		dLat := (targetNorthing - fn) / 110574.0
		dLon := (easting - fe) / (111320.0*math.Cos(lat*math.Pi/180) + 1e-9)
		lat += dLat
		lon += dLon
	}
	return lon, lat
}

func utmSouthOffset(north bool) float64 {
	if north {
		return 0
	}
	return 10_000_000
}
