package cost

import (
	"math"
	"testing"
	"time"

	"github.com/azybler/osw-network/pkg/network"
)

func intPtr(v int) *int         { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestEvaluateCrossingExcludesCurbLessWhenAvoidCurbs(t *testing.T) {
	e := &network.Edge{
		Tags:   map[string]string{"highway": "footway", "footway": "crossing"},
		Length: 5,
	}
	req := Request{AvoidCurbs: true}

	_, ok, err := Evaluate(e, req)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if ok {
		t.Fatal("expected infinite cost for curb-less crossing with avoid_curbs")
	}
}

func TestEvaluateCrossingWithCurbRampFinite(t *testing.T) {
	// Edge case 4 of §4.7: curbramps=1 -> 30 + 5/1.3 ~= 33.85.
	e := &network.Edge{
		Tags:      map[string]string{"highway": "footway", "footway": "crossing"},
		Length:    5,
		CurbRamps: intPtr(1),
	}
	req := Request{AvoidCurbs: true, BaseSpeed: BaseSpeedWalking}

	got, ok, err := Evaluate(e, req)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !ok {
		t.Fatal("expected finite cost")
	}
	want := 30 + 5/1.3
	if math.Abs(got-want) > 1e-2 {
		t.Errorf("cost = %v, want ~%v", got, want)
	}
}

func TestEvaluateUphillCutoff(t *testing.T) {
	// Edge case 5 of §4.7.
	e := &network.Edge{
		Tags:    map[string]string{"highway": "footway"},
		Length:  10,
		Incline: floatPtr(0.12),
	}

	_, ok, err := Evaluate(e, Request{UphillMax: 0.1, DownhillMax: 0.1})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if ok {
		t.Fatal("expected infinite cost: incline exceeds uphill_max")
	}

	cost, ok, err := Evaluate(e, Request{UphillMax: 0.15, DownhillMax: 0.1})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !ok {
		t.Fatal("expected finite cost when uphill_max raised above the incline")
	}
	flatCost := e.Length / BaseSpeedWalking
	if cost <= flatCost {
		t.Errorf("expected cost %v to exceed flat-grade cost %v (a steep uphill slows travel below base speed)", cost, flatCost)
	}
}

func TestEvaluateElevatorClosedOutsideOpeningHours(t *testing.T) {
	// Edge case 7 of §4.7: Sunday -> closed -> infinite; Tuesday 10:00 ->
	// open -> finite with a 45s penalty.
	e := &network.Edge{
		Tags: map[string]string{
			"highway":       "footway",
			"elevator":      "true",
			"opening_hours": "Mo-Fr 08:00-18:00",
		},
		Length: 10,
	}

	loc, err := time.LoadLocation(DefaultTimeZone)
	if err != nil {
		t.Fatal(err)
	}
	sunday := time.Date(2026, time.August, 2, 10, 0, 0, 0, loc) // a Sunday
	tuesday := time.Date(2026, time.August, 4, 10, 0, 0, 0, loc) // a Tuesday

	_, ok, err := Evaluate(e, Request{TimestampMillis: sunday.UnixMilli()})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if ok {
		t.Fatal("expected infinite cost for elevator closed on Sunday")
	}

	cost, ok, err := Evaluate(e, Request{TimestampMillis: tuesday.UnixMilli()})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !ok {
		t.Fatal("expected finite cost for elevator open on Tuesday")
	}
	want := 45 + 10/BaseSpeedWalking
	if math.Abs(cost-want) > 1e-2 {
		t.Errorf("cost = %v, want ~%v", cost, want)
	}
}

func TestEvaluateStreetAvoidanceExcludesAtMax(t *testing.T) {
	e := &network.Edge{Tags: map[string]string{"highway": "residential"}, Length: 10}
	_, ok, err := Evaluate(e, Request{StreetAvoidance: 1})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if ok {
		t.Fatal("expected infinite cost when street_avoidance >= 1")
	}
}

func TestEvaluateUnknownHighwayInfinite(t *testing.T) {
	e := &network.Edge{Tags: map[string]string{"highway": "motorway"}, Length: 10}
	_, ok, err := Evaluate(e, Request{})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if ok {
		t.Fatal("expected infinite cost for unmodeled highway class")
	}
}

func TestEvaluateUnknownTimeZoneErrors(t *testing.T) {
	e := &network.Edge{Tags: map[string]string{"highway": "footway"}, Length: 5}
	_, _, err := Evaluate(e, Request{TimeZone: "Not/AZone"})
	if err == nil {
		t.Fatal("expected error for unknown time zone")
	}
}
