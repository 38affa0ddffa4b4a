package bib

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadJSONAndResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "refs.json")
	payload := `[
		{"key": "Jack 2010", "reference": "Jack CR et al. Hypothetical model of dynamic biomarkers. Lancet Neurol. 2010."},
		{"key": "Wen 2020", "reference": "Wen J et al. Convolutional neural networks for classification of Alzheimer's disease. Med Image Anal. 2020."}
	]`
	if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
		t.Fatal(err)
	}

	b, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", b.Len())
	}

	// The outline writes citations with publication details attached; they
	// should still land on the same entry.
	ref, ok := b.Resolve("Jack et al., 2010, Lancet Neurology")
	if !ok {
		t.Fatal("expected the Jack 2010 citation to resolve")
	}
	if ref == "" {
		t.Error("resolved reference should not be empty")
	}

	if _, ok := b.Resolve("Nobody et al., 1999"); ok {
		t.Error("unknown citations should not resolve")
	}
}

func TestLoadHTMLZoteroExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bibliography.html")
	html := `<html><body>
		<div class="csl-bib-body">
			<div class="csl-entry">Selvaraju, R. R., et al. (2017). Grad-CAM: Visual explanations from deep networks. ICCV.</div>
			<div class="csl-entry">Geirhos, R., et al. (2020). Shortcut learning in deep neural networks. Nature Machine Intelligence.</div>
		</div>
	</body></html>`
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		t.Fatal(err)
	}

	b, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", b.Len())
	}
	if _, ok := b.Resolve("Selvaraju et al., 2017, ICCV (Grad-CAM)"); !ok {
		t.Error("expected Selvaraju 2017 to resolve from the HTML export")
	}
	if _, ok := b.Resolve("Geirhos et al., 2020, Nature Machine Intelligence"); !ok {
		t.Error("expected Geirhos 2020 to resolve from the HTML export")
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	if _, err := Load("refs.bib"); err == nil {
		t.Error("expected an error for unsupported formats")
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Jack et al., 2010, Lancet Neurology", "jack 2010"},
		{"Jack, C.R. (2010)", "jack 2010"},
		{"WHO Dementia Fact Sheet, 2023", "who 2023"},
		{"OASIS-3 dataset", "oasis 3 dataset"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
