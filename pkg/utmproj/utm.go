// Package utmproj implements the WGS84<->UTM projection used to buffer
// bridge linestrings in local meters (C5) and to project kerb/crossing
// points for proximity indexing (C7). No UTM library appears anywhere in
// the retrieved corpus, so this is a deliberate stdlib-only addition (see
// DESIGN.md) using the standard Snyder transverse-Mercator series used by
// USGS (the same formulas most open-source UTM packages implement).
package utmproj

import "math"

const (
	wgs84A = 6378137.0         // semi-major axis, meters
	wgs84F = 1 / 298.257223563 // flattening
	k0     = 0.9996            // UTM central-meridian scale factor
	deg2rad = math.Pi / 180
)

var (
	e2  = wgs84F * (2 - wgs84F)
	ep2 = e2 / (1 - e2)
)

// Zone returns the UTM zone number and hemisphere (true = northern) for a
// WGS84 point, using its longitude for the zone and latitude for the
// hemisphere, per §4.5's "selected from its first point" convention.
func Zone(lon, lat float64) (zone int, north bool) {
	zone = int((lon+180)/6) + 1
	if zone > 60 {
		zone = 60
	}
	if zone < 1 {
		zone = 1
	}
	return zone, lat >= 0
}

// ToUTM projects a WGS84 (lon, lat) point into the UTM zone computed from
// that same point, returning (easting, northing) in meters.
func ToUTM(lon, lat float64) (easting, northing float64, zone int, north bool) {
	zone, north = Zone(lon, lat)
	easting, northing = ToUTMZone(lon, lat, zone)
	return easting, northing, zone, north
}

// ToUTMZone projects (lon, lat) into a caller-specified UTM zone, for
// batches of points that must share a common local projection (e.g. every
// accessible kerb point in one curbramp.Index uses the zone of the first
// kerb point indexed).
func ToUTMZone(lon, lat float64, zone int) (easting, northing float64) {
	latRad := lat * deg2rad
	lonRad := lon * deg2rad
	lonOriginRad := (float64(zone)*6 - 183) * deg2rad

	sinLat := math.Sin(latRad)
	cosLat := math.Cos(latRad)
	tanLat := math.Tan(latRad)

	n := wgs84A / math.Sqrt(1-e2*sinLat*sinLat)
	t := tanLat * tanLat
	c := ep2 * cosLat * cosLat
	aTerm := cosLat * (lonRad - lonOriginRad)

	m := wgs84A * ((1-e2/4-3*e2*e2/64-5*e2*e2*e2/256)*latRad -
		(3*e2/8+3*e2*e2/32+45*e2*e2*e2/1024)*math.Sin(2*latRad) +
		(15*e2*e2/256+45*e2*e2*e2/1024)*math.Sin(4*latRad) -
		(35*e2*e2*e2/3072)*math.Sin(6*latRad))

	easting = k0*n*(aTerm+(1-t+c)*pow3(aTerm)/6+
		(5-18*t+t*t+72*c-58*ep2)*pow5(aTerm)/120) + 500000.0

	northing = k0 * (m + n*tanLat*(aTerm*aTerm/2+(5-t+9*c+4*c*c)*pow4(aTerm)/24+
		(61-58*t+t*t+600*c-330*ep2)*pow6(aTerm)/720))

	if lat < 0 {
		northing += 10_000_000.0
	}
	return easting, northing
}

func pow3(x float64) float64 { return x * x * x }
func pow4(x float64) float64 { return pow3(x) * x }
func pow5(x float64) float64 { return pow4(x) * x }
func pow6(x float64) float64 { return pow5(x) * x }
