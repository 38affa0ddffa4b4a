package charts

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"thesisdeck/deck"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestDefaultChartsMatchOutlineRefs(t *testing.T) {
	outline := deck.DefaultOutline()
	refs := make(map[string]int)
	for _, slide := range outline {
		for _, img := range slide.Images {
			refs[img] = slide.Number
		}
	}

	specs := DefaultCharts(deck.DefaultPalette())
	if len(specs) != 4 {
		t.Fatalf("expected 4 charts, got %d", len(specs))
	}
	for _, spec := range specs {
		slide, ok := refs[spec.Ref()]
		if !ok {
			t.Errorf("chart %s is not referenced by any slide", spec.FileName)
			continue
		}
		if slide != spec.Slide {
			t.Errorf("chart %s targets slide %d but is used on slide %d", spec.FileName, spec.Slide, slide)
		}
	}
}

func TestRenderProducesPNG(t *testing.T) {
	renderer := NewRenderer(deck.DefaultStyle(), t.TempDir())
	for _, spec := range DefaultCharts(deck.DefaultPalette()) {
		path, err := renderer.Render(spec)
		if err != nil {
			t.Fatalf("render %s: %v", spec.FileName, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if !bytes.HasPrefix(data, pngHeader) {
			t.Errorf("%s is not a PNG", spec.FileName)
		}
	}
}

func TestEncodeRejectsUnknownKind(t *testing.T) {
	renderer := NewRenderer(deck.DefaultStyle(), t.TempDir())
	_, err := renderer.Encode(Spec{FileName: "x.png", Kind: Kind("pie")})
	if err == nil {
		t.Fatal("expected an error for an unknown chart kind")
	}
}

func TestDigestTracksSpecChanges(t *testing.T) {
	specs := DefaultCharts(deck.DefaultPalette())
	a, err := Digest(specs[0])
	if err != nil {
		t.Fatal(err)
	}
	b, err := Digest(specs[0])
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("digest should be deterministic")
	}

	changed := specs[0]
	changed.Series = append([]Series(nil), changed.Series...)
	changed.Series[0].Y = append([]float64(nil), changed.Series[0].Y...)
	changed.Series[0].Y[0] += 0.1
	c, err := Digest(changed)
	if err != nil {
		t.Fatal(err)
	}
	if a == c {
		t.Error("changing the data should change the digest")
	}
}

func TestGenerateSkipsFreshCharts(t *testing.T) {
	dir := t.TempDir()
	manifest, err := OpenManifest(dir)
	if err != nil {
		t.Fatalf("open manifest: %v", err)
	}
	defer manifest.Close()

	renderer := NewRenderer(deck.DefaultStyle(), dir)
	specs := DefaultCharts(deck.DefaultPalette())

	first := Generate(specs, renderer, manifest, "build-1", false)
	if len(first.Failed) != 0 {
		t.Fatalf("first pass failed: %v", first.Failed)
	}
	if len(first.Rendered) != len(specs) {
		t.Fatalf("first pass should render everything, rendered %d", len(first.Rendered))
	}

	second := Generate(specs, renderer, manifest, "build-2", false)
	if len(second.Rendered) != 0 {
		t.Errorf("second pass should render nothing, rendered %v", second.Rendered)
	}
	if len(second.Skipped) != len(specs) {
		t.Errorf("second pass should skip everything, skipped %d", len(second.Skipped))
	}

	forced := Generate(specs, renderer, manifest, "build-3", true)
	if len(forced.Rendered) != len(specs) {
		t.Errorf("forced pass should render everything, rendered %d", len(forced.Rendered))
	}
}

func TestGenerateParallelMatchesSequential(t *testing.T) {
	dir := t.TempDir()
	manifest, err := OpenManifest(dir)
	if err != nil {
		t.Fatalf("open manifest: %v", err)
	}
	defer manifest.Close()

	renderer := NewRenderer(deck.DefaultStyle(), dir)
	specs := DefaultCharts(deck.DefaultPalette())

	res := GenerateParallel(specs, renderer, manifest, "build-1", false)
	if len(res.Failed) != 0 {
		t.Fatalf("parallel pass failed: %v", res.Failed)
	}
	if len(res.Rendered) != len(specs) {
		t.Fatalf("parallel pass should render everything, rendered %d", len(res.Rendered))
	}
	for _, spec := range specs {
		if _, err := os.Stat(filepath.Join(dir, spec.FileName)); err != nil {
			t.Errorf("missing output %s: %v", spec.FileName, err)
		}
	}

	second := GenerateParallel(specs, renderer, manifest, "build-2", false)
	if len(second.Skipped) != len(specs) {
		t.Errorf("second parallel pass should skip everything, skipped %d", len(second.Skipped))
	}
}

func TestFreshDetectsDeletedOutput(t *testing.T) {
	dir := t.TempDir()
	manifest, err := OpenManifest(dir)
	if err != nil {
		t.Fatalf("open manifest: %v", err)
	}
	defer manifest.Close()

	renderer := NewRenderer(deck.DefaultStyle(), dir)
	spec := DefaultCharts(deck.DefaultPalette())[0]

	res := Generate([]Spec{spec}, renderer, manifest, "build-1", false)
	if len(res.Rendered) != 1 {
		t.Fatalf("expected one render, got %v", res)
	}

	if err := os.Remove(filepath.Join(dir, spec.FileName)); err != nil {
		t.Fatal(err)
	}
	fresh, err := manifest.Fresh(spec, dir)
	if err != nil {
		t.Fatal(err)
	}
	if fresh {
		t.Error("a deleted output file must not count as fresh")
	}
}
