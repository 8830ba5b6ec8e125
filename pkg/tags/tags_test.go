package tags

import (
	"testing"

	"github.com/paulmach/osm"
)

func mkTags(kv ...string) osm.Tags {
	var t osm.Tags
	for i := 0; i+1 < len(kv); i += 2 {
		t = append(t, osm.Tag{Key: kv[i], Value: kv[i+1]})
	}
	return t
}

func TestClassifyWay(t *testing.T) {
	tests := []struct {
		name string
		tags osm.Tags
		want WayClass
	}{
		{"sidewalk", mkTags("highway", "footway", "footway", "sidewalk"), WayClassSidewalk},
		{"crossing", mkTags("highway", "footway", "footway", "crossing"), WayClassCrossing},
		{"plain footway", mkTags("highway", "footway"), WayClassFootway},
		{"residential road", mkTags("highway", "residential"), WayClassRoad},
		{"service road", mkTags("highway", "service"), WayClassRoad},
		{"unclassified motorway", mkTags("highway", "motorway"), WayClassNone},
		{"no tags", mkTags(), WayClassNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyWay(tt.tags); got != tt.want {
				t.Errorf("ClassifyWay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeWayFootway(t *testing.T) {
	in := mkTags("highway", "footway", "width", "1.5", "incline", "0.05",
		"elevator", "yes", "opening_hours", "Mo-Fr 08:00-18:00", "surface", "concrete")
	class, out, ok := NormalizeWay(in)
	if !ok || class != WayClassFootway {
		t.Fatalf("expected footway classification, got class=%v ok=%v", class, ok)
	}
	want := map[string]string{
		"highway":       "footway",
		"width":         "1.5",
		"incline":       "0.05",
		"elevator":      "yes",
		"opening_hours": "Mo-Fr 08:00-18:00",
	}
	for k, v := range want {
		if out[k] != v {
			t.Errorf("out[%q] = %q, want %q", k, out[k], v)
		}
	}
	if _, present := out["surface"]; present {
		t.Errorf("unrelated tag %q leaked into normalized output", "surface")
	}
}

func TestNormalizeWayUnparsableWidthDropped(t *testing.T) {
	in := mkTags("highway", "footway", "width", "not-a-number")
	_, out, ok := NormalizeWay(in)
	if !ok {
		t.Fatalf("expected ok")
	}
	if _, present := out["width"]; present {
		t.Errorf("unparsable width should have been dropped, got %q", out["width"])
	}
}

func TestNormalizeWayCrossingMarking(t *testing.T) {
	tests := []struct {
		crossing string
		want     string
	}{
		{"marked", "marked"},
		{"uncontrolled", "marked"},
		{"traffic_signals", "marked"},
		{"zebra", "marked"},
		{"unmarked", "unmarked"},
		{"island", ""},
	}
	for _, tt := range tests {
		in := mkTags("highway", "footway", "footway", "crossing", "crossing", tt.crossing)
		_, out, ok := NormalizeWay(in)
		if !ok {
			t.Fatalf("expected ok for crossing=%s", tt.crossing)
		}
		if got := out["crossing"]; got != tt.want {
			t.Errorf("crossing=%s: out[crossing] = %q, want %q", tt.crossing, got, tt.want)
		}
	}
}

func TestNormalizeWayRoadKeepsWidthOnly(t *testing.T) {
	in := mkTags("highway", "service", "width", "6", "incline", "0.02", "lanes", "2")
	class, out, ok := NormalizeWay(in)
	if !ok || class != WayClassRoad {
		t.Fatalf("expected road classification")
	}
	if out["highway"] != "service" || out["width"] != "6" {
		t.Errorf("unexpected road tag output: %+v", out)
	}
	if _, present := out["incline"]; present {
		t.Errorf("road normalization must not retain incline")
	}
}

func TestNormalizeWayRejectsUnclassified(t *testing.T) {
	in := mkTags("highway", "motorway")
	class, out, ok := NormalizeWay(in)
	if ok || class != WayClassNone || out != nil {
		t.Errorf("expected rejection of unclassified way, got class=%v ok=%v out=%v", class, ok, out)
	}
}

func TestNormalizeNodeKerb(t *testing.T) {
	tests := []struct {
		kerb string
		ok   bool
	}{
		{"flush", true},
		{"lowered", true},
		{"rolled", true},
		{"raised", true},
		{"no", false},
		{"", false},
	}
	for _, tt := range tests {
		in := mkTags("kerb", tt.kerb, "barrier", "kerb", "tactile_surface", "yes")
		out, ok := NormalizeNode(in)
		if ok != tt.ok {
			t.Fatalf("kerb=%q: ok = %v, want %v", tt.kerb, ok, tt.ok)
		}
		if !ok {
			continue
		}
		if _, present := out["barrier"]; present {
			t.Errorf("barrier tag must be dropped")
		}
		if out["tactile_surface"] != "yes" {
			t.Errorf("tactile_surface should be retained")
		}
	}
}
