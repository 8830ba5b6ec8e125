// Package region holds the per-region build configuration: data-source
// URLs, the work directory, and per-stage knobs a pipeline run reads from
// a region GeoJSON feature's properties (§6). The boundary polygon is not
// part of Config.
package region

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config is one region's build configuration, decoded from the properties
// object of a region GeoJSON feature.
type Config struct {
	ID               string  `json:"id" validate:"required"`
	PBFURL           string  `json:"pbf_url" validate:"required,url"`
	DEMTileBaseURL   string  `json:"dem_tile_base_url" validate:"required,url"`
	WorkDir          string  `json:"workdir" validate:"required"`
	Simplify         bool    `json:"simplify"`
	SearchRadiusM    float64 `json:"search_radius_m" validate:"gte=0"`
	BridgeBufferM    float64 `json:"bridge_buffer_m" validate:"gte=0"`
	ElevationMethod  string  `json:"elevation_method" validate:"omitempty,oneof=bilinear bicubic idw"`
	Workers          int     `json:"workers" validate:"gte=0"`
}

// DefaultConfig returns sensible defaults for the given region ID and PBF
// URL; most callers start from this and override the fields that matter.
func DefaultConfig(id, pbfURL string) Config {
	return Config{
		ID:              id,
		PBFURL:          pbfURL,
		DEMTileBaseURL:  "",
		WorkDir:         "/tmp/osw-network/" + id,
		Simplify:        true,
		SearchRadiusM:   3.0,
		BridgeBufferM:   30.0,
		ElevationMethod: "idw",
		Workers:         runtime.NumCPU(),
	}
}

// Validate checks c against its struct tags, returning every violation
// joined into a single error.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("region: invalid config for %q: %w", c.ID, err)
	}
	return nil
}

// Decode reads a region's Config from a JSON document (typically a region
// GeoJSON feature's properties object) and validates it.
func Decode(r io.Reader) (Config, error) {
	var c Config
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return Config{}, fmt.Errorf("region: decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Set is a named collection of region configs, loaded together for a
// multi-region pipeline run (§5's "region-parallel stages").
type Set struct {
	Regions []Config
}

// DecodeSet reads a JSON array of region configs and validates each.
func DecodeSet(r io.Reader) (Set, error) {
	var configs []Config
	if err := json.NewDecoder(r).Decode(&configs); err != nil {
		return Set{}, fmt.Errorf("region: decode config set: %w", err)
	}
	for _, c := range configs {
		if err := c.Validate(); err != nil {
			return Set{}, err
		}
	}
	return Set{Regions: configs}, nil
}
