package utmproj

import "testing"

func TestZone(t *testing.T) {
	tests := []struct {
		name      string
		lon, lat  float64
		wantZone  int
		wantNorth bool
	}{
		{"Seattle", -122.3321, 47.6062, 10, true},
		{"Greenwich", 0, 51.5, 31, true},
		{"Sydney (southern hemisphere)", 151.2, -33.9, 56, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone, north := Zone(tt.lon, tt.lat)
			if zone != tt.wantZone || north != tt.wantNorth {
				t.Errorf("Zone(%f,%f) = (%d,%v), want (%d,%v)", tt.lon, tt.lat, zone, north, tt.wantZone, tt.wantNorth)
			}
		})
	}
}

func TestToUTMRoundTripScale(t *testing.T) {
	// Two points ~100m apart north-south in Seattle should project to UTM
	// coordinates roughly 100m apart in northing, and the same zone.
	lon, lat1, lat2 := -122.3321, 47.6062, 47.6071
	e1, n1, zone1, _ := ToUTM(lon, lat1)
	e2, n2, zone2, _ := ToUTM(lon, lat2)

	if zone1 != zone2 {
		t.Fatalf("expected same zone, got %d and %d", zone1, zone2)
	}
	dNorthing := n2 - n1
	if dNorthing < 90 || dNorthing > 110 {
		t.Errorf("northing delta = %f, want ~100m", dNorthing)
	}
	if e1 <= 0 || e2 <= 0 {
		t.Errorf("easting should be positive, got %f and %f", e1, e2)
	}
}

func TestToUTMSouthernHemisphereOffset(t *testing.T) {
	_, northing, _, north := ToUTM(151.2, -33.9)
	if north {
		t.Fatal("expected southern hemisphere")
	}
	if northing < 6_000_000 {
		t.Errorf("southern hemisphere northing should include the 10,000,000m false northing offset, got %f", northing)
	}
}
