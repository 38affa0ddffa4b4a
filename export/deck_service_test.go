package export

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"thesisdeck/deck"
)

// onePixelPNG is a valid 1x1 PNG used as a stand-in asset.
var onePixelPNG, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg==")

var zipHeader = []byte{'P', 'K'}

func stubAssets(t *testing.T, names ...string) *deck.AssetSet {
	t.Helper()
	imageDir := t.TempDir()
	chartDir := t.TempDir()
	for _, name := range names {
		dir := imageDir
		if after, ok := cutChartPrefix(name); ok {
			dir = chartDir
			name = after
		}
		if err := os.WriteFile(filepath.Join(dir, name), onePixelPNG, 0644); err != nil {
			t.Fatal(err)
		}
	}
	return deck.NewAssetSet(imageDir, chartDir)
}

func cutChartPrefix(name string) (string, bool) {
	if len(name) > len(deck.ChartRefPrefix) && name[:len(deck.ChartRefPrefix)] == deck.ChartRefPrefix {
		return name[len(deck.ChartRefPrefix):], true
	}
	return name, false
}

func sampleOutline() []deck.SlideSpec {
	return []deck.SlideSpec{
		{Number: 1, Title: "Opening", Layout: deck.LayoutStatement, Background: deck.BackgroundDark,
			Statement: "Opening", Subtitle: "sub", Images: []string{"logo.png"}, Citations: []string{"c1"}},
		{Number: 2, Title: "Numbers", SectionLabel: "ACT I", Layout: deck.LayoutHeroStatistic,
			Background: deck.BackgroundLight, HeroStat: "42%", HeroCaption: "of something",
			Body: []string{"point one"}, Images: []string{"chart:fig.png"}, Citations: []string{"c2"}},
		{Number: 3, Title: "Evidence", Layout: deck.LayoutFullBleed, Background: deck.BackgroundImage,
			Body: []string{"a", "b"}, Images: []string{"scan.png"}, Citations: []string{"c3"}},
		{Number: 4, Title: "Compare", Layout: deck.LayoutSplitCompare, Background: deck.BackgroundLight,
			Columns: []deck.ColumnSpec{
				{Heading: "L", Subheading: "left", Body: []string{"x"}},
				{Heading: "R", Subheading: "right", Body: []string{"y"}},
			}, Citations: []string{"c4"}},
		{Number: 5, Title: "Panels", Layout: deck.LayoutDarkCanvas, Background: deck.BackgroundDark,
			Columns: []deck.ColumnSpec{{Heading: "1", Subheading: "step"}},
			Body:    []string{"caption"}, Citations: []string{"c5"}},
	}
}

func TestAssembleAllLayouts(t *testing.T) {
	assets := stubAssets(t, "logo.png", "chart:fig.png", "scan.png")
	svc := NewDeckService(deck.DefaultStyle(), assets)

	res, err := svc.Assemble(sampleOutline())
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if res.SlideCount != 5 {
		t.Errorf("expected 5 slides, got %d", res.SlideCount)
	}
	if len(res.SlideErrors) != 0 {
		t.Errorf("no slide should degrade, got %v", res.SlideErrors)
	}
	if !bytes.HasPrefix(res.Data, zipHeader) {
		t.Error("deck output is not a PPTX archive")
	}
}

func TestAssembleIsolatesSlideFailures(t *testing.T) {
	// Only the logo exists; slides 2 and 3 reference missing files.
	assets := stubAssets(t, "logo.png")
	svc := NewDeckService(deck.DefaultStyle(), assets)

	res, err := svc.Assemble(sampleOutline())
	if err != nil {
		t.Fatalf("missing images must degrade slides, not abort: %v", err)
	}
	if res.SlideCount != 5 {
		t.Errorf("degraded deck should still carry every slide, got %d", res.SlideCount)
	}
	if _, ok := res.SlideErrors[2]; !ok {
		t.Error("slide 2 should report its missing chart")
	}
	if _, ok := res.SlideErrors[3]; !ok {
		t.Error("slide 3 should report its missing scan")
	}
	if _, ok := res.SlideErrors[1]; ok {
		t.Error("slide 1 has its image and should not be degraded")
	}
	if !bytes.HasPrefix(res.Data, zipHeader) {
		t.Error("degraded deck should still be a valid archive")
	}
}

func TestAssembleRejectsEmptyOutline(t *testing.T) {
	svc := NewDeckService(deck.DefaultStyle(), stubAssets(t))
	if _, err := svc.Assemble(nil); err == nil {
		t.Fatal("expected an error for an empty outline")
	}
}

func TestAssembleOrdersSlidesByNumber(t *testing.T) {
	assets := stubAssets(t, "logo.png", "chart:fig.png", "scan.png")
	svc := NewDeckService(deck.DefaultStyle(), assets)

	outline := sampleOutline()
	outline[0], outline[4] = outline[4], outline[0]
	res, err := svc.Assemble(outline)
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if res.SlideCount != 5 {
		t.Errorf("expected 5 slides, got %d", res.SlideCount)
	}
}

func TestHandoutGenerate(t *testing.T) {
	data, err := NewHandoutService(deck.DefaultStyle()).Generate(sampleOutline())
	if err != nil {
		t.Fatalf("handout failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("handout output is not a PDF")
	}
}

func TestNotesGenerate(t *testing.T) {
	data, err := NewNotesService(deck.DefaultStyle()).Generate(sampleOutline())
	if err != nil {
		t.Fatalf("notes failed: %v", err)
	}
	if !bytes.HasPrefix(data, zipHeader) {
		t.Error("speaker notes output is not a DOCX archive")
	}

	if _, err := NewNotesService(deck.DefaultStyle()).Generate(nil); err == nil {
		t.Error("empty outline should be rejected")
	}
}

func TestReportGenerate(t *testing.T) {
	assets := stubAssets(t, "logo.png")
	outline := sampleOutline()
	assets.Resolve(outline)
	data, err := NewReportService(deck.DefaultStyle()).Generate(outline, assets.All())
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if !bytes.HasPrefix(data, zipHeader) {
		t.Error("report output is not an XLSX archive")
	}
}
