package main

import (
	"os"
	"path/filepath"
	"testing"

	"thesisdeck/config"
	"thesisdeck/deck"
	"thesisdeck/logger"
)

func newTestService(t *testing.T) (*BuildService, config.Config) {
	t.Helper()
	base := t.TempDir()
	cfg := config.Default()
	cfg.AssetDir = filepath.Join(base, "assets")
	cfg.ChartDir = filepath.Join(base, "charts")
	cfg.OutputDir = filepath.Join(base, "dist")
	cfg.LogDir = filepath.Join(base, "logs")
	if err := os.MkdirAll(cfg.AssetDir, 0755); err != nil {
		t.Fatal(err)
	}

	log := logger.NewLogger()
	if err := log.Init(cfg.LogDir); err != nil {
		t.Fatalf("logger init: %v", err)
	}
	t.Cleanup(log.Close)
	return NewBuildService(cfg, log), cfg
}

func TestValidateReportsMissingAssets(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.Validate(deck.DefaultOutline())
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	// The asset directories are empty, so every image reference must be
	// flagged; no other violation kind should appear.
	if len(res.Violations) == 0 {
		t.Fatal("expected missing asset violations for empty asset dirs")
	}
	for _, v := range res.Violations {
		if v.Kind != deck.ViolationMissingAsset {
			t.Errorf("unexpected violation kind %s: %v", v.Kind, v)
		}
	}
}

func TestGenerateChartsFillsChartDir(t *testing.T) {
	svc, cfg := newTestService(t)

	res, err := svc.GenerateCharts("test-build", false)
	if err != nil {
		t.Fatalf("generate charts: %v", err)
	}
	if len(res.Failed) != 0 {
		t.Fatalf("chart failures: %v", res.Failed)
	}
	if len(res.Rendered) != 4 {
		t.Errorf("expected 4 rendered charts, got %d", len(res.Rendered))
	}
	for _, name := range res.Rendered {
		if _, err := os.Stat(filepath.Join(cfg.ChartDir, name)); err != nil {
			t.Errorf("rendered chart %s not on disk: %v", name, err)
		}
	}

	again, err := svc.GenerateCharts("test-build-2", false)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if len(again.Skipped) != 4 {
		t.Errorf("second pass should skip all charts, skipped %d", len(again.Skipped))
	}
}

func TestWrapOperationError(t *testing.T) {
	if WrapOperationError("do", nil) != nil {
		t.Error("nil errors must stay nil")
	}
	err := WrapOperationError("assemble deck", os.ErrNotExist)
	if err == nil || err.Error() != "failed to assemble deck: file does not exist" {
		t.Errorf("unexpected message: %v", err)
	}
}
