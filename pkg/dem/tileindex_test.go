package dem

import (
	"errors"
	"testing"
)

func TestTileName(t *testing.T) {
	tests := []struct {
		lon, lat float64
		want     string
	}{
		{-122.5, 47.3, "n48w123"},
		{-122.0, 48.0, "n48w122"},
	}
	for _, tt := range tests {
		if got := TileName(tt.lon, tt.lat); got != tt.want {
			t.Errorf("TileName(%v,%v) = %q, want %q", tt.lon, tt.lat, got, tt.want)
		}
	}
}

func TestTileNamesForBoundsCoversEveryCell(t *testing.T) {
	names := TileNamesForBounds(Bounds{MinLon: -122.8, MinLat: 47.2, MaxLon: -121.9, MaxLat: 48.1})
	want := map[string]bool{"n48w123": true, "n49w123": true, "n48w122": true, "n49w122": true}
	if len(names) != len(want) {
		t.Fatalf("got %d tile names %v, want %d", len(names), names, len(want))
	}
	for _, n := range names {
		if !want[n] {
			t.Errorf("unexpected tile name %q", n)
		}
	}
}

func TestTileNamesForBoundsEmptyForDegenerateBounds(t *testing.T) {
	names := TileNamesForBounds(Bounds{MinLon: 5, MinLat: 5, MaxLon: 5, MaxLat: 5})
	if len(names) != 0 {
		t.Errorf("expected no tile names for degenerate bounds, got %v", names)
	}
}

func TestIndexLookup(t *testing.T) {
	tile := NewTile("n48w123", 4, 4, -123, 48, 0.25, -0.25)
	idx := NewIndex(tile)

	got, err := idx.Lookup(-122.5, 47.5)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != tile {
		t.Error("Lookup returned wrong tile")
	}

	_, err = idx.Lookup(10, 10)
	if !errors.Is(err, ErrUnknownTile) {
		t.Fatalf("expected ErrUnknownTile, got %v", err)
	}
}
