package charts

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"thesisdeck/deck"
)

// DPI is the fixed raster resolution of every generated chart.
const DPI = 300.0

// Renderer rasterizes chart specs into the output directory.
type Renderer struct {
	Style  deck.Style
	OutDir string
}

// NewRenderer returns a renderer writing into outDir.
func NewRenderer(style deck.Style, outDir string) *Renderer {
	return &Renderer{Style: style, OutDir: outDir}
}

// Render rasterizes one spec and writes its PNG. The output path is derived
// from the spec alone, so re-rendering an unchanged spec overwrites the file
// with identical bytes.
func (r *Renderer) Render(spec Spec) (string, error) {
	png, err := r.Encode(spec)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(r.OutDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create chart directory: %w", err)
	}
	path := filepath.Join(r.OutDir, spec.FileName)
	if err := os.WriteFile(path, png, 0644); err != nil {
		return "", fmt.Errorf("failed to write chart %s: %w", spec.FileName, err)
	}
	return path, nil
}

// Encode rasterizes one spec to PNG bytes without touching the filesystem.
func (r *Renderer) Encode(spec Spec) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch spec.Kind {
	case KindLine, KindROC:
		err = r.renderXY(spec, &buf)
	case KindBar:
		err = r.renderBars(spec, &buf)
	default:
		err = fmt.Errorf("unknown chart kind %q", spec.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render chart %s: %w", spec.FileName, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) pixels(inches float64) int {
	return int(inches * DPI)
}

func (r *Renderer) axisStyle() chart.Style {
	return chart.Style{
		StrokeColor: drawing.ColorFromHex(r.Style.Palette.CitationGray),
		FontColor:   drawing.ColorFromHex(r.Style.Palette.TextOnLight),
	}
}

// transparent is the background used by every chart so slides can place them
// over either canvas color.
var transparent = chart.Style{FillColor: drawing.ColorTransparent, StrokeColor: drawing.ColorTransparent}

func (r *Renderer) renderXY(spec Spec, w *bytes.Buffer) error {
	series := make([]chart.Series, 0, len(spec.Series)+1)
	for _, s := range spec.Series {
		style := chart.Style{
			StrokeColor: drawing.ColorFromHex(s.Color),
			StrokeWidth: 3,
		}
		if s.Dashed {
			style.StrokeWidth = 1.5
			style.StrokeDashArray = []float64{5, 5}
		}
		if s.Fill {
			style.FillColor = drawing.ColorFromHex(s.Color).WithAlpha(30)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.X,
			YValues: s.Y,
			Style:   style,
		})
	}
	if len(spec.Annotations) > 0 {
		notes := make([]chart.Value2, 0, len(spec.Annotations))
		for _, a := range spec.Annotations {
			notes = append(notes, chart.Value2{XValue: a.X, YValue: a.Y, Label: a.Label})
		}
		series = append(series, chart.AnnotationSeries{
			Annotations: notes,
			Style: chart.Style{
				StrokeColor: drawing.ColorFromHex(r.Style.Palette.CitationGray),
				FontColor:   drawing.ColorFromHex(r.Style.Palette.TextOnLight),
			},
		})
	}

	graph := chart.Chart{
		Title:      spec.Title,
		TitleStyle: chart.Style{FontColor: drawing.ColorFromHex(r.Style.Palette.TextOnLight)},
		Width:      r.pixels(spec.WidthIn),
		Height:     r.pixels(spec.HeightIn),
		DPI:        DPI,
		Background: transparent,
		Canvas:     transparent,
		XAxis: chart.XAxis{
			Name:  spec.XTitle,
			Style: r.axisStyle(),
		},
		YAxis: chart.YAxis{
			Name:  spec.YTitle,
			Style: r.axisStyle(),
			Range: &chart.ContinuousRange{Min: spec.YMin, Max: spec.YMax},
		},
		Series: series,
	}
	if spec.Kind == KindROC {
		graph.XAxis.Range = &chart.ContinuousRange{Min: 0, Max: 1.02}
	}
	return graph.Render(chart.PNG, w)
}

func (r *Renderer) renderBars(spec Spec, w *bytes.Buffer) error {
	bars := make([]chart.Value, 0, len(spec.Bars))
	for _, b := range spec.Bars {
		bars = append(bars, chart.Value{
			Label: b.Label,
			Value: b.Value,
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex(b.Color),
				StrokeColor: drawing.ColorFromHex(r.Style.Palette.White),
				StrokeWidth: 1,
			},
		})
	}
	graph := chart.BarChart{
		Title:      spec.Title,
		TitleStyle: chart.Style{FontColor: drawing.ColorFromHex(r.Style.Palette.TextOnLight)},
		Width:      r.pixels(spec.WidthIn),
		Height:     r.pixels(spec.HeightIn),
		DPI:        DPI,
		BarWidth:   r.pixels(0.55),
		Background: transparent,
		Canvas:     transparent,
		XAxis:      r.axisStyle(),
		YAxis: chart.YAxis{
			Name:  spec.YTitle,
			Style: r.axisStyle(),
			Range: &chart.ContinuousRange{Min: spec.YMin, Max: spec.YMax},
		},
		Bars: bars,
	}
	return graph.Render(chart.PNG, w)
}
