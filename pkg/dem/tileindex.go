package dem

import (
	"fmt"
	"math"
)

// TileName returns the USGS NED13 tile name for the 1x1 degree cell
// containing (lon, lat), named by its north-west corner (north edge
// latitude, west edge longitude): "n{N}w{WWW}" for the western hemisphere.
func TileName(lon, lat float64) string {
	n := int(math.Ceil(lat))
	w := int(math.Ceil(-lon))
	return fmt.Sprintf("n%02dw%03d", n, w)
}

// Bounds is a WGS84 bounding box, minimum inclusive and maximum exclusive.
type Bounds struct {
	MinLon, MinLat, MaxLon, MaxLat float64
}

// TileNamesForBounds enumerates every NED13 tile name whose 1x1 degree cell
// intersects b, used to assemble the tileset a region's DEM stage must
// fetch or mask (§6).
func TileNamesForBounds(b Bounds) []string {
	if b.MaxLon <= b.MinLon || b.MaxLat <= b.MinLat {
		return nil
	}
	seen := make(map[string]bool)
	var names []string
	for lat := math.Floor(b.MinLat); lat < b.MaxLat; lat++ {
		for lon := math.Floor(b.MinLon); lon < b.MaxLon; lon++ {
			name := TileName(lon, lat+1) // north-west corner of this 1x1 cell
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// Index maps NED13 tile names to their loaded Tile, the lookup structure
// §4.6/§4.5 both consult via name.
type Index struct {
	tiles map[string]*Tile
}

// NewIndex builds an Index from a set of already-loaded tiles.
func NewIndex(tiles ...*Tile) *Index {
	idx := &Index{tiles: make(map[string]*Tile, len(tiles))}
	for _, t := range tiles {
		idx.tiles[t.Name] = t
	}
	return idx
}

// Add registers a tile under its own Name.
func (idx *Index) Add(t *Tile) {
	idx.tiles[t.Name] = t
}

// Lookup returns the tile covering (lon, lat), or ErrUnknownTile if no tile
// for that 1x1 cell has been loaded.
func (idx *Index) Lookup(lon, lat float64) (*Tile, error) {
	name := TileName(lon, lat)
	t, ok := idx.tiles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTile, name)
	}
	return t, nil
}

// Get returns the tile registered under name, if any.
func (idx *Index) Get(name string) (*Tile, bool) {
	t, ok := idx.tiles[name]
	return t, ok
}

// Names returns every tile name currently registered.
func (idx *Index) Names() []string {
	names := make([]string, 0, len(idx.tiles))
	for name := range idx.tiles {
		names = append(names, name)
	}
	return names
}
