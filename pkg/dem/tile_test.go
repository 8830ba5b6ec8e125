package dem

import (
	"os"
	"path/filepath"
	"testing"
)

func sampleTile() *Tile {
	t := NewTile("n48w123", 4, 4, -123, 48, 0.25, -0.25)
	for i := range t.Elevation {
		t.Elevation[i] = float32(i) * 10
	}
	return t
}

func TestTileWriteReadRoundTrip(t *testing.T) {
	tile := sampleTile()
	tile.SetMask(1, 1, true)

	dir := t.TempDir()
	path := filepath.Join(dir, "n48w123.demtile")

	if err := WriteTile(path, tile); err != nil {
		t.Fatalf("WriteTile: %v", err)
	}
	got, err := ReadTile(path)
	if err != nil {
		t.Fatalf("ReadTile: %v", err)
	}

	if got.Width != tile.Width || got.Height != tile.Height {
		t.Fatalf("dims mismatch: got %dx%d, want %dx%d", got.Width, got.Height, tile.Width, tile.Height)
	}
	if got.Name != "n48w123" {
		t.Errorf("Name = %q, want %q (derived from file path, so Index lookups by name work after ReadTile)", got.Name, "n48w123")
	}
	for i := range tile.Elevation {
		if got.Elevation[i] != tile.Elevation[i] {
			t.Errorf("elevation[%d] = %v, want %v", i, got.Elevation[i], tile.Elevation[i])
		}
	}
	v, masked, ok := got.At(1, 1)
	if !ok || !masked {
		t.Errorf("At(1,1) = (%v,%v,%v), want masked", v, masked, ok)
	}
}

func TestReadTileRejectsCorruptMagic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.demtile")
	if err := os.WriteFile(path, []byte("not a tile file at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadTile(path); err == nil {
		t.Fatal("expected error for corrupt tile file")
	}
}

func TestReadTileRejectsTamperedChecksum(t *testing.T) {
	tile := sampleTile()
	dir := t.TempDir()
	path := filepath.Join(dir, "n48w123.demtile")
	if err := WriteTile(path, tile); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	raw[len(raw)-1] ^= 0xFF // flip a bit in the CRC32 trailer
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadTile(path); err == nil {
		t.Fatal("expected CRC32 mismatch error")
	}
}

func TestGeoToPixel(t *testing.T) {
	tile := sampleTile()
	x, y := tile.GeoToPixel(-123, 48)
	if x != 0 || y != 0 {
		t.Errorf("GeoToPixel(origin) = (%v,%v), want (0,0)", x, y)
	}
	x, y = tile.GeoToPixel(-122.5, 47.5)
	if x != 2 || y != 2 {
		t.Errorf("GeoToPixel = (%v,%v), want (2,2)", x, y)
	}
}
