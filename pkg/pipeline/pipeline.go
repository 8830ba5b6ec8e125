// Package pipeline implements the build orchestration of §5: a
// region-parallel, within-region-sequential batch pipeline running the
// ingest/simplify/geometry/annotate stages over a set of regions.
package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/azybler/osw-network/pkg/dem"
	"github.com/azybler/osw-network/pkg/network"
	"github.com/azybler/osw-network/pkg/osmingest"
	"github.com/azybler/osw-network/pkg/region"
)

// Stage identifies one pipeline phase for reporting, matching the
// ordering guarantee of §5: C2 before C3, C3 before C4, C4 before any of
// {C5, C6, C7}.
type Stage int

const (
	StageIngest Stage = iota
	StageSimplify
	StageGeometry
	StageMask
	StageInterpolate
	StageCurbRamps
)

func (s Stage) String() string {
	switch s {
	case StageIngest:
		return "ingest"
	case StageSimplify:
		return "simplify"
	case StageGeometry:
		return "geometry"
	case StageMask:
		return "mask"
	case StageInterpolate:
		return "interpolate"
	case StageCurbRamps:
		return "curbramps"
	default:
		return "unknown"
	}
}

// RegionResult aggregates one region's build outcome across stages.
type RegionResult struct {
	RegionID string
	Graph    *network.Graph
	Ingest   osmingest.Summary
	Simplify network.SimplifySummary
	Geometry network.GeometrySummary
	Err      error
}

// StageFunc runs one pipeline stage for a region. Implementations hold
// whatever per-region collaborators they need (DEM index, curb-ramp
// radius) via closures built by the caller.
type StageFunc func(ctx context.Context, cfg region.Config, result *RegionResult) error

// Run executes stages sequentially within each region but fans regions out
// across a worker pool of width workers (0 defaults to
// runtime.NumCPU(), as in region.DefaultConfig), matching §5's
// "region-parallel stages ... strictly sequential within a region" model.
// Results are returned in the same order as configs, regardless of
// completion order.
func Run(ctx context.Context, configs []region.Config, workers int, stages ...StageFunc) []RegionResult {
	results := make([]RegionResult, len(configs))
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, cfg := range configs {
		wg.Add(1)
		go func(i int, cfg region.Config) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			result := RegionResult{RegionID: cfg.ID}
			for _, stage := range stages {
				if err := ctx.Err(); err != nil {
					result.Err = err
					break
				}
				if err := stage(ctx, cfg, &result); err != nil {
					result.Err = fmt.Errorf("pipeline: region %s: %w", cfg.ID, err)
					break
				}
			}
			results[i] = result
		}(i, cfg)
	}

	wg.Wait()
	return results
}

// DEMIndexLoader loads the DEM tile index a mask/interpolate stage needs
// for a region; injected so pipeline stays decoupled from disk/network I/O.
type DEMIndexLoader func(ctx context.Context, cfg region.Config) (*dem.Index, error)
