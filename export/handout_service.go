package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"thesisdeck/deck"
)

// HandoutService renders the printable handout: one compact section per
// slide with its headline, key copy, and sources.
type HandoutService struct {
	style deck.Style
}

// NewHandoutService creates a handout renderer.
func NewHandoutService(style deck.Style) *HandoutService {
	return &HandoutService{style: style}
}

// rgb converts an RRGGBB palette value to a maroto color.
func rgb(hex string) *props.Color {
	var r, g, b int
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return &props.Color{Red: r, Green: g, Blue: b}
}

// Generate renders the handout PDF for the outline.
func (s *HandoutService) Generate(outline []deck.SlideSpec) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithDefaultFont(&props.Font{
			Family: fontfamily.Arial,
			Size:   10,
		}).
		Build()

	m := maroto.New(cfg)

	s.addCover(m, outline)
	for _, spec := range outline {
		s.addSlideSection(m, spec)
	}
	s.addFooter(m)

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate handout: %w", err)
	}
	return document.GetBytes(), nil
}

func (s *HandoutService) addCover(m core.Maroto, outline []deck.SlideSpec) {
	title := "Presentation Handout"
	if len(outline) > 0 {
		title = strings.ReplaceAll(outline[0].Title, "\n", " ")
	}
	m.AddRow(20,
		col.New(12).Add(
			text.New(title, props.Text{
				Family: fontfamily.Arial,
				Size:   18,
				Style:  fontstyle.Bold,
				Align:  align.Center,
				Color:  rgb(s.style.Palette.TextOnLight),
			}),
		),
	)
	m.AddRow(8,
		col.New(12).Add(
			text.New(fmt.Sprintf("%d slides  •  generated %s", len(outline), time.Now().Format("2006-01-02 15:04")), props.Text{
				Size:  9,
				Align: align.Center,
				Color: rgb(s.style.Palette.CitationGray),
			}),
		),
	)
	m.AddRow(5)
}

func (s *HandoutService) addSlideSection(m core.Maroto, spec deck.SlideSpec) {
	heading := fmt.Sprintf("%d. %s", spec.Number, strings.ReplaceAll(spec.Title, "\n", " "))
	m.AddRow(8,
		col.New(12).Add(
			text.New(heading, props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Color: rgb(s.style.Palette.Copper),
			}),
		),
	)
	if spec.SectionLabel != "" {
		m.AddRow(5,
			col.New(12).Add(
				text.New(spec.SectionLabel, props.Text{
					Size:  8,
					Color: rgb(s.style.Palette.CitationGray),
				}),
			),
		)
	}

	if spec.HeroStat != "" {
		m.AddRow(6,
			col.New(12).Add(
				text.New(fmt.Sprintf("%s — %s", spec.HeroStat, spec.HeroCaption), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Color: rgb(s.style.Palette.TextOnLight),
				}),
			),
		)
	}
	if spec.Statement != "" && spec.Statement != spec.Title {
		m.AddRow(6,
			col.New(12).Add(
				text.New(strings.ReplaceAll(spec.Statement, "\n", " "), props.Text{
					Size:  10,
					Style: fontstyle.Italic,
					Color: rgb(s.style.Palette.TextOnLight),
				}),
			),
		)
	}

	for _, lineText := range spec.Body {
		m.AddRow(5,
			col.New(12).Add(
				text.New("•  "+lineText, props.Text{
					Size:  9,
					Color: rgb(s.style.Palette.TextOnLight),
				}),
			),
		)
	}
	for _, column := range spec.Columns {
		head := column.Heading
		if column.Subheading != "" {
			head += " — " + column.Subheading
		}
		m.AddRow(5,
			col.New(12).Add(
				text.New(head, props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Color: rgb(s.style.Palette.TextOnLight),
				}),
			),
		)
		for _, lineText := range column.Body {
			m.AddRow(4,
				col.New(12).Add(
					text.New("    "+lineText, props.Text{
						Size:  8,
						Color: rgb(s.style.Palette.TextOnLight),
					}),
				),
			)
		}
	}

	if len(spec.Citations) > 0 {
		m.AddRow(5,
			col.New(12).Add(
				text.New("Sources: "+strings.Join(spec.Citations, "; "), props.Text{
					Size:  7,
					Color: rgb(s.style.Palette.CitationGray),
				}),
			),
		)
	}

	m.AddRow(3, col.New(12).Add(line.New(props.Line{
		Color:     rgb(s.style.Palette.CiteBarLight),
		Thickness: 0.3,
	})))
	m.AddRow(2)
}

func (s *HandoutService) addFooter(m core.Maroto) {
	m.AddRow(8,
		col.New(12).Add(
			text.New("End of handout", props.Text{
				Size:  8,
				Align: align.Center,
				Color: rgb(s.style.Palette.CitationGray),
			}),
		),
	)
}
