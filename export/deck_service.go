// Package export turns a validated outline into the deliverable documents:
// the PPTX deck itself, a PDF handout, speaker notes, and an outline report.
package export

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"thesisdeck/deck"
)

// DeckService assembles the presentation with GoPPT.
type DeckService struct {
	style  deck.Style
	assets *deck.AssetSet
}

// NewDeckService creates a deck assembler over the resolved asset set.
func NewDeckService(style deck.Style, assets *deck.AssetSet) *DeckService {
	return &DeckService{style: style, assets: assets}
}

// Slide canvas in EMU. Positions come from the style geometry as fractions of
// these, so the grid survives a page size change in one place.
const (
	emuPerInch = 914400

	deckSlideWidth  = int64(10.0 * emuPerInch)
	deckSlideHeight = int64(5.625 * emuPerInch)
)

// fx/fy convert page fractions to EMU offsets.
func fx(frac float64) int64 { return int64(frac * float64(deckSlideWidth)) }
func fy(frac float64) int64 { return int64(frac * float64(deckSlideHeight)) }

// solidFill builds a solid fill from an RRGGBB palette value.
func solidFill(rgb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor("FF" + rgb))
}

func ink(rgb string) ppt.Color {
	return ppt.NewColor("FF" + rgb)
}

func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// DeckResult is the outcome of one assembly pass. SlideErrors maps slide
// numbers to the failure that degraded them; the deck itself always carries
// one slide per outline row.
type DeckResult struct {
	Data        []byte
	SlideCount  int
	SlideErrors map[int]error
}

// Assemble renders the full outline into a PPTX. A slide whose content fails
// (most often an unreadable image) still gets its canvas, headline, and
// citation strip, and the failure is reported in the result rather than
// aborting the deck.
func (s *DeckService) Assemble(outline []deck.SlideSpec) (*DeckResult, error) {
	if len(outline) == 0 {
		return nil, fmt.Errorf("cannot assemble an empty outline")
	}

	ordered := append([]deck.SlideSpec(nil), outline...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Number < ordered[j].Number })

	p := ppt.New()
	p.GetDocumentProperties().Title = strings.ReplaceAll(ordered[0].Title, "\n", " ")
	p.GetDocumentProperties().Creator = "deckbuild"

	res := &DeckResult{SlideErrors: make(map[int]error)}
	for i, spec := range ordered {
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}
		if err := s.renderSlide(slide, spec); err != nil {
			res.SlideErrors[spec.Number] = err
		}
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create deck writer: %w", err)
	}
	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to save deck: %w", err)
	}
	res.Data = buf.Bytes()
	res.SlideCount = len(ordered)
	return res, nil
}

// renderSlide paints one slide. Canvas, headline, accent, and citation strip
// are unconditional; only the layout body can fail.
func (s *DeckService) renderSlide(slide *ppt.Slide, spec deck.SlideSpec) error {
	s.paintCanvas(slide, spec)

	var err error
	switch spec.Layout {
	case deck.LayoutStatement:
		err = s.renderStatement(slide, spec)
	case deck.LayoutHeroStatistic:
		err = s.renderHeroStatistic(slide, spec)
	case deck.LayoutFullBleed:
		err = s.renderFullBleed(slide, spec)
	case deck.LayoutSplitCompare:
		err = s.renderSplitCompare(slide, spec)
	case deck.LayoutDarkCanvas:
		err = s.renderDarkCanvas(slide, spec)
	default:
		err = fmt.Errorf("no renderer for layout %q", spec.Layout)
	}

	s.renderCitationStrip(slide, spec)
	if err != nil {
		return fmt.Errorf("slide %d (%s): %w", spec.Number, spec.Layout, err)
	}
	return nil
}

// canvasColor returns the background fill for a slide. Image backgrounds sit
// on the dark base so uncovered areas stay coherent.
func (s *DeckService) canvasColor(spec deck.SlideSpec) string {
	if spec.Background == deck.BackgroundLight {
		return s.style.Palette.LightBG
	}
	return s.style.Palette.DarkBG
}

// textColor returns the ink color matching the slide background.
func (s *DeckService) textColor(spec deck.SlideSpec) string {
	if spec.Background == deck.BackgroundLight {
		return s.style.Palette.TextOnLight
	}
	return s.style.Palette.TextOnDark
}

// accentColor picks the accent for this slide: copper by default, red or
// green when the outline marks the slide.
func (s *DeckService) accentColor(spec deck.SlideSpec) string {
	switch {
	case spec.AccentOnRed:
		return s.style.Palette.Red
	case spec.AccentOnGreen:
		return s.style.Palette.Green
	default:
		return s.style.Palette.Copper
	}
}

func (s *DeckService) paintCanvas(slide *ppt.Slide, spec deck.SlideSpec) {
	bg := slide.CreateRichTextShape()
	bg.SetOffsetX(0).SetOffsetY(0)
	bg.SetWidth(deckSlideWidth).SetHeight(deckSlideHeight)
	bg.SetFill(solidFill(s.canvasColor(spec)))
}

// renderSectionLabel draws the small-caps kicker at the top of the slide.
func (s *DeckService) renderSectionLabel(slide *ppt.Slide, spec deck.SlideSpec) {
	if spec.SectionLabel == "" {
		return
	}
	g := s.style.Geometry
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(fx(g.MarginX)).SetOffsetY(fy(g.LabelY))
	shape.SetWidth(fx(1 - 2*g.MarginX)).SetHeight(fy(0.05))
	tr := shape.CreateTextRun(strings.ToUpper(spec.SectionLabel))
	tr.GetFont().SetSize(s.style.Typography.SizeLabel).SetBold(true).SetColor(ink(s.accentColor(spec)))
}

// renderHeadline draws the slide title with the accent line beneath it.
func (s *DeckService) renderHeadline(slide *ppt.Slide, spec deck.SlideSpec, width float64) {
	g := s.style.Geometry
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(fx(g.MarginX)).SetOffsetY(fy(g.HeadlineY))
	shape.SetWidth(fx(width)).SetHeight(fy(0.12))
	for i, line := range strings.Split(spec.Title, "\n") {
		if i > 0 {
			shape.CreateParagraph()
		}
		tr := shape.CreateTextRun(line)
		tr.GetFont().SetSize(s.style.Typography.SizeHeadline).SetBold(true).SetColor(ink(s.textColor(spec)))
	}

	accent := slide.CreateRichTextShape()
	accent.SetOffsetX(fx(g.MarginX)).SetOffsetY(fy(g.HeadlineY + 0.13))
	accent.SetWidth(fx(0.08)).SetHeight(fy(g.AccentH))
	accent.SetFill(solidFill(s.accentColor(spec)))
}

// renderBody draws a stack of body lines as bullet-free paragraphs.
func (s *DeckService) renderBody(slide *ppt.Slide, spec deck.SlideSpec, x, y, w float64, lines []string) {
	if len(lines) == 0 {
		return
	}
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(fx(x)).SetOffsetY(fy(y))
	shape.SetWidth(fx(w)).SetHeight(fy(0.9 - y - s.style.Geometry.CiteStripH))
	for i, line := range lines {
		if i > 0 {
			shape.CreateParagraph()
		}
		tr := shape.CreateTextRun(line)
		tr.GetFont().SetSize(s.style.Typography.SizeBody).SetColor(ink(s.textColor(spec)))
	}
}

// renderImage places one asset on the slide, reported as an error when the
// file cannot be read.
func (s *DeckService) renderImage(slide *ppt.Slide, ref string, x, y, w, h float64) error {
	data, err := s.assets.Read(ref)
	if err != nil {
		return fmt.Errorf("failed to place image %s: %w", ref, err)
	}
	mime := http.DetectContentType(data)
	shape := slide.CreateDrawingShape()
	shape.SetImageData(data, mime)
	shape.SetOffsetX(fx(x)).SetOffsetY(fy(y))
	shape.SetWidth(fx(w)).SetHeight(fy(h))
	return nil
}

// renderCitationStrip draws the source strip that anchors every slide.
func (s *DeckService) renderCitationStrip(slide *ppt.Slide, spec deck.SlideSpec) {
	g := s.style.Geometry
	barColor := s.style.Palette.CiteBarDark
	if spec.Background == deck.BackgroundLight {
		barColor = s.style.Palette.CiteBarLight
	}

	bar := slide.CreateRichTextShape()
	bar.SetOffsetX(0).SetOffsetY(fy(1 - g.CiteStripH))
	bar.SetWidth(deckSlideWidth).SetHeight(fy(g.CiteStripH))
	bar.SetFill(solidFill(barColor))

	tr := bar.CreateTextRun(strings.Join(spec.Citations, "   •   "))
	tr.GetFont().SetSize(s.style.Typography.SizeCitation).SetColor(ink(s.style.Palette.CitationGray))
}

// renderStatement centers an oversized declaration, used for the opening,
// act dividers, and the closing slides.
func (s *DeckService) renderStatement(slide *ppt.Slide, spec deck.SlideSpec) error {
	s.renderSectionLabel(slide, spec)

	var firstErr error
	y := 0.24
	if len(spec.Images) > 0 {
		// Crest or logo above the statement.
		if err := s.renderImage(slide, spec.Images[0], 0.46, 0.08, 0.08, 0.142); err != nil {
			firstErr = err
		}
		y = 0.30
	}

	stmt := slide.CreateRichTextShape()
	stmt.SetOffsetX(fx(0.08)).SetOffsetY(fy(y))
	stmt.SetWidth(fx(0.84)).SetHeight(fy(0.30))
	for i, line := range strings.Split(spec.Statement, "\n") {
		if i > 0 {
			stmt.CreateParagraph()
		}
		tr := stmt.CreateTextRun(line)
		tr.GetFont().SetSize(s.style.Typography.SizeStatement).SetBold(true).SetColor(ink(s.textColor(spec)))
		alignCenter(stmt.GetActiveParagraph())
	}

	if spec.Subtitle != "" {
		sub := slide.CreateRichTextShape()
		sub.SetOffsetX(fx(0.14)).SetOffsetY(fy(y + 0.32))
		sub.SetWidth(fx(0.72)).SetHeight(fy(0.14))
		tr := sub.CreateTextRun(spec.Subtitle)
		tr.GetFont().SetSize(s.style.Typography.SizeLead).SetColor(ink(s.style.Palette.CitationGray))
		alignCenter(sub.GetActiveParagraph())
	}

	if len(spec.Body) > 0 {
		by := slide.CreateRichTextShape()
		by.SetOffsetX(fx(0.14)).SetOffsetY(fy(0.74))
		by.SetWidth(fx(0.72)).SetHeight(fy(0.14))
		for i, line := range spec.Body {
			if i > 0 {
				by.CreateParagraph()
			}
			tr := by.CreateTextRun(line)
			tr.GetFont().SetSize(s.style.Typography.SizeCaption).SetColor(ink(s.textColor(spec)))
			alignCenter(by.GetActiveParagraph())
		}
	}

	// Statement slides can carry compact column cards (the methodological
	// triad closing block).
	if len(spec.Columns) > 0 {
		if err := s.renderColumnCards(slide, spec, 0.52, 0.30); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// renderHeroStatistic puts one oversized number on the left and the
// supporting evidence (body copy, chart, or cards) on the right.
func (s *DeckService) renderHeroStatistic(slide *ppt.Slide, spec deck.SlideSpec) error {
	g := s.style.Geometry
	s.renderSectionLabel(slide, spec)
	s.renderHeadline(slide, spec, 0.5)

	hero := slide.CreateRichTextShape()
	hero.SetOffsetX(fx(g.MarginX)).SetOffsetY(fy(g.ContentY))
	hero.SetWidth(fx(0.42)).SetHeight(fy(0.28))
	tr := hero.CreateTextRun(spec.HeroStat)
	tr.GetFont().SetSize(s.style.Typography.SizeHero).SetBold(true).SetColor(ink(s.accentColor(spec)))

	if spec.HeroCaption != "" {
		caption := slide.CreateRichTextShape()
		caption.SetOffsetX(fx(g.MarginX)).SetOffsetY(fy(g.ContentY + 0.29))
		caption.SetWidth(fx(0.42)).SetHeight(fy(0.08))
		ctr := caption.CreateTextRun(spec.HeroCaption)
		ctr.GetFont().SetSize(s.style.Typography.SizeLead).SetColor(ink(s.textColor(spec)))
	}

	bodyY := g.ContentY + 0.40
	if len(spec.Columns) > 0 {
		bodyY = g.ContentY + 0.36
	}
	s.renderBody(slide, spec, g.MarginX, bodyY, 0.42, spec.Body)

	var firstErr error
	if len(spec.Images) > 0 {
		if err := s.renderImage(slide, spec.Images[0], 0.52, g.ContentY, 0.43, 0.52); err != nil {
			firstErr = err
		}
	} else if len(spec.Columns) > 0 {
		if err := s.renderColumnCards(slide, spec, 0.52, g.ContentY); err != nil {
			firstErr = err
		}
	}
	return firstErr
}

// renderFullBleed devotes the right block to imagery with the argument
// running down the left.
func (s *DeckService) renderFullBleed(slide *ppt.Slide, spec deck.SlideSpec) error {
	g := s.style.Geometry
	s.renderSectionLabel(slide, spec)
	s.renderHeadline(slide, spec, g.FullBleedSplit-g.MarginX)

	textW := g.FullBleedSplit - 2*g.MarginX
	s.renderBody(slide, spec, g.MarginX, g.ContentY, textW, spec.Body)

	var firstErr error
	if len(spec.Columns) > 0 {
		if err := s.renderColumnCards(slide, spec, g.MarginX, 0.62); err != nil {
			firstErr = err
		}
	}

	imgX := g.FullBleedSplit
	imgW := 1 - g.FullBleedSplit
	imgH := (1 - g.CiteStripH) - 0.02
	n := len(spec.Images)
	for i, ref := range spec.Images {
		h := imgH / float64(n)
		if err := s.renderImage(slide, ref, imgX, 0.0+float64(i)*h, imgW, h); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// renderSplitCompare lays the columns side by side across the content band.
func (s *DeckService) renderSplitCompare(slide *ppt.Slide, spec deck.SlideSpec) error {
	g := s.style.Geometry
	s.renderSectionLabel(slide, spec)
	s.renderHeadline(slide, spec, 1-2*g.MarginX)
	return s.renderColumnCards(slide, spec, g.MarginX, g.ContentY)
}

// renderDarkCanvas draws raised panels on the dark background, one per
// column, with an optional caption line underneath.
func (s *DeckService) renderDarkCanvas(slide *ppt.Slide, spec deck.SlideSpec) error {
	g := s.style.Geometry
	s.renderSectionLabel(slide, spec)
	s.renderHeadline(slide, spec, 1-2*g.MarginX)

	cols := len(spec.Columns)
	if cols == 0 {
		s.renderBody(slide, spec, g.MarginX, g.ContentY, 1-2*g.MarginX, spec.Body)
		return nil
	}
	spacing := 0.015
	width := (1 - 2*g.MarginX - float64(cols-1)*spacing) / float64(cols)
	panelH := 0.46
	for i, col := range spec.Columns {
		x := g.MarginX + float64(i)*(width+spacing)
		panel := slide.CreateRichTextShape()
		panel.SetOffsetX(fx(x)).SetOffsetY(fy(g.ContentY))
		panel.SetWidth(fx(width)).SetHeight(fy(panelH))
		panel.SetFill(solidFill(s.style.Palette.PanelDark))

		tr := panel.CreateTextRun(col.Heading)
		tr.GetFont().SetSize(s.style.Typography.SizeHeadline).SetBold(true).SetColor(ink(s.accentColor(spec)))
		if col.Subheading != "" {
			panel.CreateParagraph()
			str := panel.CreateTextRun(col.Subheading)
			str.GetFont().SetSize(s.style.Typography.SizeBody).SetBold(true).SetColor(ink(s.style.Palette.TextOnDark))
		}
		for _, line := range col.Body {
			panel.CreateParagraph()
			btr := panel.CreateTextRun(line)
			btr.GetFont().SetSize(s.style.Typography.SizeCaption).SetColor(ink(s.style.Palette.TextOnDark))
		}
	}

	if len(spec.Body) > 0 {
		note := slide.CreateRichTextShape()
		note.SetOffsetX(fx(g.MarginX)).SetOffsetY(fy(g.ContentY + panelH + 0.03))
		note.SetWidth(fx(1 - 2*g.MarginX)).SetHeight(fy(0.10))
		tr := note.CreateTextRun(strings.Join(spec.Body, " "))
		tr.GetFont().SetSize(s.style.Typography.SizeCaption).SetColor(ink(s.style.Palette.CitationGray))
	}
	return nil
}

// renderColumnCards renders the column stack used by split, hero, and
// statement layouts, starting at (x, y) and filling the rest of the width.
func (s *DeckService) renderColumnCards(slide *ppt.Slide, spec deck.SlideSpec, x, y float64) error {
	g := s.style.Geometry
	cols := len(spec.Columns)
	if cols == 0 {
		return nil
	}
	spacing := 0.015
	total := 1 - g.MarginX - x
	width := (total - float64(cols-1)*spacing) / float64(cols)
	cardH := (1 - g.CiteStripH) - y - 0.03

	var firstErr error
	for i, col := range spec.Columns {
		cx := x + float64(i)*(width+spacing)
		card := slide.CreateRichTextShape()
		card.SetOffsetX(fx(cx)).SetOffsetY(fy(y))
		card.SetWidth(fx(width)).SetHeight(fy(cardH))
		if spec.Background != deck.BackgroundLight {
			card.SetFill(solidFill(s.style.Palette.PanelDark))
		}

		tr := card.CreateTextRun(col.Heading)
		tr.GetFont().SetSize(s.style.Typography.SizeLead).SetBold(true).SetColor(ink(s.accentColor(spec)))
		if col.Subheading != "" {
			card.CreateParagraph()
			str := card.CreateTextRun(col.Subheading)
			str.GetFont().SetSize(s.style.Typography.SizeBody).SetBold(true).SetColor(ink(s.textColor(spec)))
		}

		textTop := y + 0.10
		if col.Image != "" {
			imgH := 0.22
			if err := s.renderImage(slide, col.Image, cx, textTop, width, imgH); err != nil && firstErr == nil {
				firstErr = err
			}
			textTop += imgH + 0.02
		}
		if len(col.Body) > 0 {
			body := slide.CreateRichTextShape()
			body.SetOffsetX(fx(cx)).SetOffsetY(fy(textTop))
			body.SetWidth(fx(width)).SetHeight(fy(y + cardH - textTop))
			for j, line := range col.Body {
				if j > 0 {
					body.CreateParagraph()
				}
				btr := body.CreateTextRun(line)
				btr.GetFont().SetSize(s.style.Typography.SizeCaption).SetColor(ink(s.textColor(spec)))
			}
		}
	}
	return firstErr
}
