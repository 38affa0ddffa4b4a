package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"thesisdeck/bib"
	"thesisdeck/charts"
	"thesisdeck/config"
	"thesisdeck/deck"
	"thesisdeck/export"
	"thesisdeck/logger"
)

// buildRunID returns a fresh identifier for one pipeline run.
func buildRunID() string {
	return uuid.NewString()
}

// BuildService drives the pipeline: validate the outline, generate the
// charts, assemble the deck, and write the supporting artifacts.
type BuildService struct {
	cfg   config.Config
	log   *logger.Logger
	style deck.Style
}

// NewBuildService creates the pipeline over a configuration.
func NewBuildService(cfg config.Config, log *logger.Logger) *BuildService {
	return &BuildService{
		cfg:   cfg,
		log:   log,
		style: deck.DefaultStyle(),
	}
}

// loadBibliography returns the citation resolver, or nil when no
// bibliography is configured.
func (b *BuildService) loadBibliography() (deck.Resolver, error) {
	if b.cfg.Bibliography == "" {
		return nil, nil
	}
	bibliography, err := bib.Load(b.cfg.Bibliography)
	if err != nil {
		return nil, WrapOperationError("load bibliography", err)
	}
	b.log.Logf("Bibliography loaded: %d references from %s", bibliography.Len(), b.cfg.Bibliography)
	return bibliography, nil
}

// Validate runs the full consistency pass over the outline.
func (b *BuildService) Validate(outline []deck.SlideSpec) (deck.Result, error) {
	resolver, err := b.loadBibliography()
	if err != nil {
		return deck.Result{}, err
	}
	validator := &deck.Validator{
		Assets:    deck.NewAssetSet(b.cfg.AssetDir, b.cfg.ChartDir),
		Citations: resolver,
	}
	res := validator.Validate(outline)
	b.log.Logf("Validation: %d violation(s), %d warning(s)", len(res.Violations), len(res.Warnings))
	for _, w := range res.Warnings {
		b.log.Log("[WARN] " + w)
	}
	return res, nil
}

// GenerateCharts renders the stale charts, keeping fresh ones untouched
// unless force is set.
func (b *BuildService) GenerateCharts(buildID string, force bool) (charts.GenerateResult, error) {
	manifest, err := charts.OpenManifest(b.cfg.ChartDir)
	if err != nil {
		return charts.GenerateResult{}, WrapOperationError("open chart manifest", err)
	}
	defer manifest.Close()

	renderer := charts.NewRenderer(b.style, b.cfg.ChartDir)
	specs := charts.DefaultCharts(b.style.Palette)
	var res charts.GenerateResult
	if b.cfg.ParallelCharts {
		res = charts.GenerateParallel(specs, renderer, manifest, buildID, force)
	} else {
		res = charts.Generate(specs, renderer, manifest, buildID, force)
	}

	b.log.Logf("Charts: %d rendered, %d skipped, %d failed",
		len(res.Rendered), len(res.Skipped), len(res.Failed))
	for name, ferr := range res.Failed {
		b.log.Logf("[ERROR] chart %s: %v", name, ferr)
	}
	return res, nil
}

// Build runs the whole pipeline and writes every artifact. It fails when
// validation reports violations, when any chart fails to render, or when an
// artifact cannot be produced; failures past validation are collected so one
// run reports everything.
func (b *BuildService) Build(force bool) error {
	buildID := buildRunID()
	b.log.Logf("Build %s starting", buildID)

	outline := deck.DefaultOutline()

	chartRes, err := b.GenerateCharts(buildID, force)
	if err != nil {
		return err
	}

	res, err := b.Validate(outline)
	if err != nil {
		return err
	}
	chartSlides := make(map[string]int)
	for _, spec := range charts.DefaultCharts(b.style.Palette) {
		chartSlides[spec.FileName] = spec.Slide
	}
	for name, ferr := range chartRes.Failed {
		res.Violations = append(res.Violations, &deck.Violation{
			Kind:   deck.ViolationChartGeneration,
			Slide:  chartSlides[name],
			Detail: ferr.Error(),
		})
	}
	if err := res.Err(); err != nil {
		return err
	}
	if b.cfg.StrictWarnings && len(res.Warnings) > 0 {
		return fmt.Errorf("outline has %d style warning(s) and strict warnings are enabled", len(res.Warnings))
	}

	if err := os.MkdirAll(b.cfg.OutputDir, 0755); err != nil {
		return WrapOperationError("create output directory", err)
	}

	assets := deck.NewAssetSet(b.cfg.AssetDir, b.cfg.ChartDir)
	assets.Resolve(outline)

	var merr *multierror.Error

	deckService := export.NewDeckService(b.style, assets)
	deckRes, err := deckService.Assemble(outline)
	if err != nil {
		merr = multierror.Append(merr, WrapOperationError("assemble deck", err))
	} else {
		for num, serr := range deckRes.SlideErrors {
			b.log.Logf("[WARN] slide %d degraded: %v", num, serr)
		}
		if err := b.writeArtifact(b.cfg.DeckFile, deckRes.Data); err != nil {
			merr = multierror.Append(merr, err)
		} else {
			b.log.Logf("Deck written: %s (%d slides)", b.cfg.DeckFile, deckRes.SlideCount)
		}
	}

	handout, err := export.NewHandoutService(b.style).Generate(outline)
	if err != nil {
		merr = multierror.Append(merr, WrapOperationError("generate handout", err))
	} else if err := b.writeArtifact(b.cfg.HandoutFile, handout); err != nil {
		merr = multierror.Append(merr, err)
	} else {
		b.log.Logf("Handout written: %s", b.cfg.HandoutFile)
	}

	notes, err := export.NewNotesService(b.style).Generate(outline)
	if err != nil {
		merr = multierror.Append(merr, WrapOperationError("generate speaker notes", err))
	} else if err := b.writeArtifact(b.cfg.NotesFile, notes); err != nil {
		merr = multierror.Append(merr, err)
	} else {
		b.log.Logf("Speaker notes written: %s", b.cfg.NotesFile)
	}

	report, err := export.NewReportService(b.style).Generate(outline, assets.All())
	if err != nil {
		merr = multierror.Append(merr, WrapOperationError("generate build report", err))
	} else if err := b.writeArtifact(b.cfg.ReportFile, report); err != nil {
		merr = multierror.Append(merr, err)
	} else {
		b.log.Logf("Build report written: %s", b.cfg.ReportFile)
	}

	if err := merr.ErrorOrNil(); err != nil {
		return err
	}
	b.log.Logf("Build %s finished", buildID)
	return nil
}

// Report writes only the XLSX build report, without assembling the deck.
func (b *BuildService) Report() error {
	outline := deck.DefaultOutline()
	assets := deck.NewAssetSet(b.cfg.AssetDir, b.cfg.ChartDir)
	assets.Resolve(outline)

	data, err := export.NewReportService(b.style).Generate(outline, assets.All())
	if err != nil {
		return WrapOperationError("generate build report", err)
	}
	if err := os.MkdirAll(b.cfg.OutputDir, 0755); err != nil {
		return WrapOperationError("create output directory", err)
	}
	if err := b.writeArtifact(b.cfg.ReportFile, data); err != nil {
		return err
	}
	b.log.Logf("Build report written: %s", b.cfg.ReportFile)
	return nil
}

// writeArtifact writes one output file into the output directory.
func (b *BuildService) writeArtifact(name string, data []byte) error {
	path := filepath.Join(b.cfg.OutputDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return WrapOperationErrorf("write artifact %s", err, name)
	}
	return nil
}
