package deck

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("stub"), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestAssetSetResolve(t *testing.T) {
	imageDir := t.TempDir()
	chartDir := t.TempDir()
	writeFile(t, filepath.Join(imageDir, "brain.png"))
	writeFile(t, filepath.Join(chartDir, "curve.png"))

	outline := []SlideSpec{
		{Number: 1, Images: []string{"brain.png"}},
		{Number: 2, Images: []string{"chart:curve.png", "gone.png"}},
		{Number: 3, Columns: []ColumnSpec{{Heading: "A", Image: "brain.png"}}},
	}

	set := NewAssetSet(imageDir, chartDir)
	violations := set.Resolve(outline)

	if len(violations) != 1 {
		t.Fatalf("expected 1 missing asset, got %d: %v", len(violations), violations)
	}
	if violations[0].Kind != ViolationMissingAsset || violations[0].Slide != 2 {
		t.Errorf("unexpected violation %v", violations[0])
	}

	asset, ok := set.Lookup("brain.png")
	if !ok {
		t.Fatal("brain.png should be recorded")
	}
	if len(asset.Slides) != 2 || asset.Slides[0] != 1 || asset.Slides[1] != 3 {
		t.Errorf("brain.png should be tracked on slides 1 and 3, got %v", asset.Slides)
	}
	if asset.Generated {
		t.Error("brain.png is a static asset, not a generated chart")
	}

	chart, ok := set.Lookup("chart:curve.png")
	if !ok {
		t.Fatal("chart reference should be recorded")
	}
	if !chart.Generated {
		t.Error("chart: references should be marked generated")
	}
	if chart.Path != filepath.Join(chartDir, "curve.png") {
		t.Errorf("chart reference should resolve into the chart dir, got %s", chart.Path)
	}
}

func TestAssetSetRead(t *testing.T) {
	imageDir := t.TempDir()
	writeFile(t, filepath.Join(imageDir, "logo.png"))

	set := NewAssetSet(imageDir, t.TempDir())
	data, err := set.Read("logo.png")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "stub" {
		t.Errorf("unexpected content %q", data)
	}

	if _, err := set.Read("nope.png"); err == nil {
		t.Error("reading a missing asset should fail")
	}
}

func TestAssetSetAllSorted(t *testing.T) {
	set := NewAssetSet(t.TempDir(), t.TempDir())
	set.Resolve([]SlideSpec{
		{Number: 1, Images: []string{"z.png", "a.png", "m.png"}},
	})
	all := set.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 assets, got %d", len(all))
	}
	if all[0].Name != "a.png" || all[2].Name != "z.png" {
		t.Errorf("assets should be sorted by name, got %v, %v, %v", all[0].Name, all[1].Name, all[2].Name)
	}
}
