package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/azybler/osw-network/pkg/network"
	"github.com/azybler/osw-network/pkg/region"
)

func TestRunExecutesStagesSequentiallyPerRegion(t *testing.T) {
	configs := []region.Config{
		{ID: "a"}, {ID: "b"}, {ID: "c"},
	}

	var order1, order2 StageFunc
	order1 = func(ctx context.Context, cfg region.Config, result *RegionResult) error {
		result.Graph = network.NewGraph()
		return nil
	}
	order2 = func(ctx context.Context, cfg region.Config, result *RegionResult) error {
		if result.Graph == nil {
			t.Errorf("region %s: stage 2 ran before stage 1 populated Graph", cfg.ID)
		}
		return nil
	}

	results := Run(context.Background(), configs, 2, order1, order2)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, r := range results {
		if r.RegionID != configs[i].ID {
			t.Errorf("result[%d].RegionID = %q, want %q (results must preserve config order)", i, r.RegionID, configs[i].ID)
		}
		if r.Err != nil {
			t.Errorf("region %s: unexpected error %v", r.RegionID, r.Err)
		}
	}
}

func TestRunStopsRegionOnStageError(t *testing.T) {
	configs := []region.Config{{ID: "a"}}
	wantErr := errors.New("boom")

	calledSecond := false
	failing := func(ctx context.Context, cfg region.Config, result *RegionResult) error {
		return wantErr
	}
	second := func(ctx context.Context, cfg region.Config, result *RegionResult) error {
		calledSecond = true
		return nil
	}

	results := Run(context.Background(), configs, 1, failing, second)
	if results[0].Err == nil {
		t.Fatal("expected region error to propagate")
	}
	if calledSecond {
		t.Error("expected pipeline to stop after a failing stage, not continue to the next stage")
	}
}

func TestRunRespectsCancelledContext(t *testing.T) {
	configs := []region.Config{{ID: "a"}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	stage := func(ctx context.Context, cfg region.Config, result *RegionResult) error {
		ran = true
		return nil
	}

	results := Run(ctx, configs, 1, stage)
	if results[0].Err == nil {
		t.Fatal("expected cancelled context to produce an error result")
	}
	if ran {
		t.Error("expected no stage to run once the context was already cancelled")
	}
}
