// Package charts renders the deck's statistical figures as 300-DPI
// transparent PNGs and keeps a manifest so unchanged charts are not
// regenerated.
package charts

import (
	"thesisdeck/deck"
)

// Kind selects the chart family.
type Kind string

const (
	KindLine Kind = "line"
	KindBar  Kind = "bar"
	KindROC  Kind = "roc"
)

// Series is one plotted line of a line or ROC chart.
type Series struct {
	Name   string
	Color  string // RRGGBB
	X      []float64
	Y      []float64
	Dashed bool
	Fill   bool // translucent area fill under the line
}

// BarValue is one bar of a bar chart.
type BarValue struct {
	Label string
	Value float64
	Color string // RRGGBB
}

// Annotation pins a bold callout to a data point.
type Annotation struct {
	X, Y  float64
	Label string
	Color string // RRGGBB
}

// Spec describes one chart: its data, target slide, and output file. The
// output path is deterministic (OutDir + FileName), which is what makes
// rebuild caching sound.
type Spec struct {
	Slide       int
	FileName    string
	Kind        Kind
	Title       string
	XTitle      string
	YTitle      string
	WidthIn     float64
	HeightIn    float64
	YMin, YMax  float64
	Series      []Series
	Bars        []BarValue
	Annotations []Annotation
}

// Ref returns the outline image reference for this chart.
func (s Spec) Ref() string {
	return deck.ChartRefPrefix + s.FileName
}

// DefaultCharts returns the four deck charts with the palette applied.
func DefaultCharts(p deck.Palette) []Spec {
	return []Spec{
		{
			Slide:    2,
			FileName: "prevalence_projection.png",
			Kind:     KindLine,
			Title:    "Projected Alzheimer's Prevalence",
			XTitle:   "Year",
			YTitle:   "Americans with AD (millions)",
			WidthIn:  8, HeightIn: 4.5,
			YMin: 5, YMax: 16,
			Series: []Series{{
				Name:  "Prevalence",
				Color: p.Copper,
				X:     []float64{2025, 2030, 2035, 2040, 2045, 2050, 2055, 2060},
				Y:     []float64{7.2, 8.4, 9.6, 10.8, 11.7, 12.5, 13.2, 13.8},
				Fill:  true,
			}},
			Annotations: []Annotation{
				{X: 2025, Y: 7.2, Label: "7.2M", Color: p.Copper},
				{X: 2060, Y: 13.8, Label: "13.8M", Color: p.Red},
			},
		},
		{
			Slide:    16,
			FileName: "ml_comparison.png",
			Kind:     KindBar,
			Title:    "Classical ML: AD Detection vs MCI Detection",
			YTitle:   "Accuracy (%)",
			WidthIn:  8, HeightIn: 4.5,
			YMin: 0, YMax: 110,
			Bars: []BarValue{
				{Label: "SVM\nAD vs HC", Value: 94.5, Color: p.Blue},
				{Label: "RF\nAD vs HC", Value: 91.0, Color: p.Copper},
				{Label: "SVM\nMCI", Value: 68.0, Color: p.Blue},
				{Label: "RF\nMCI", Value: 62.0, Color: p.Copper},
			},
		},
		{
			Slide:    19,
			FileName: "roc_curve.png",
			Kind:     KindROC,
			Title:    "ROC Curve: AD Classification",
			XTitle:   "False Positive Rate",
			YTitle:   "True Positive Rate",
			WidthIn:  5.5, HeightIn: 5.5,
			YMin: 0, YMax: 1.05,
			Series: []Series{
				{
					Name:  "Best Model (AUC = 0.93)",
					Color: p.Blue,
					X:     []float64{0, 0.02, 0.05, 0.10, 0.15, 0.25, 0.40, 0.60, 1.0},
					Y:     []float64{0, 0.45, 0.65, 0.78, 0.85, 0.92, 0.96, 0.98, 1.0},
					Fill:  true,
				},
				{
					Name:   "Chance (AUC = 0.50)",
					Color:  p.CitationGray,
					X:      []float64{0, 1},
					Y:      []float64{0, 1},
					Dashed: true,
				},
			},
			Annotations: []Annotation{
				{X: 0.10, Y: 0.78, Label: "Optimal Threshold", Color: p.Copper},
			},
		},
		{
			Slide:    23,
			FileName: "data_leakage_impact.png",
			Kind:     KindBar,
			Title:    "Impact of Data Leakage on Model Performance",
			YTitle:   "Reported Accuracy (%)",
			WidthIn:  6, HeightIn: 4.5,
			YMin: 0, YMax: 110,
			Bars: []BarValue{
				{Label: "With Data\nLeakage", Value: 95, Color: p.Red},
				{Label: "Without Data\nLeakage", Value: 67, Color: p.Green},
			},
		},
	}
}
