package region

import (
	"strings"
	"testing"
)

func TestDefaultConfigValidatesOnceDEMTileBaseURLSet(t *testing.T) {
	c := DefaultConfig("seattle", "https://example.com/seattle.pbf")
	c.DEMTileBaseURL = "https://example.com/dem/"
	if err := c.Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}

func TestValidateRejectsMissingID(t *testing.T) {
	c := DefaultConfig("", "https://example.com/seattle.pbf")
	c.DEMTileBaseURL = "https://example.com/dem/"
	if err := c.Validate(); err == nil {
		t.Fatal("expected validation error for missing id")
	}
}

func TestValidateRejectsBadURL(t *testing.T) {
	c := DefaultConfig("seattle", "not-a-url")
	c.DEMTileBaseURL = "https://example.com/dem/"
	if err := c.Validate(); err == nil {
		t.Fatal("expected validation error for malformed pbf_url")
	}
}

func TestValidateRejectsBadElevationMethod(t *testing.T) {
	c := DefaultConfig("seattle", "https://example.com/seattle.pbf")
	c.DEMTileBaseURL = "https://example.com/dem/"
	c.ElevationMethod = "nearest"
	if err := c.Validate(); err == nil {
		t.Fatal("expected validation error for unsupported elevation_method")
	}
}

func TestDecodeSetValidatesEveryRegion(t *testing.T) {
	body := `[{"id":"a","pbf_url":"https://x/a.pbf","dem_tile_base_url":"https://x/dem","workdir":"/tmp/a"},{"id":"","pbf_url":"https://x/b.pbf","dem_tile_base_url":"https://x/dem","workdir":"/tmp/b"}]`
	_, err := DecodeSet(strings.NewReader(body))
	if err == nil {
		t.Fatal("expected error due to second region missing id")
	}
}
