package deck

import "fmt"

// Layout identifies one of the five fixed slide arrangements.
type Layout string

const (
	LayoutHeroStatistic Layout = "hero_statistic"
	LayoutFullBleed     Layout = "full_bleed_image"
	LayoutSplitCompare  Layout = "split_compare"
	LayoutDarkCanvas    Layout = "dark_canvas"
	LayoutStatement     Layout = "statement"
)

// Layouts lists every valid layout value.
var Layouts = []Layout{
	LayoutHeroStatistic,
	LayoutFullBleed,
	LayoutSplitCompare,
	LayoutDarkCanvas,
	LayoutStatement,
}

// Valid reports whether l is one of the enumerated layouts.
func (l Layout) Valid() bool {
	for _, known := range Layouts {
		if l == known {
			return true
		}
	}
	return false
}

// Background selects the slide canvas treatment.
type Background string

const (
	BackgroundDark  Background = "dark"
	BackgroundLight Background = "light"
	BackgroundImage Background = "image"
)

// ColumnSpec is one column of a SplitCompare or DarkCanvas panel row.
type ColumnSpec struct {
	Heading    string
	Subheading string
	Body       []string
	Image      string // optional, resolved like SlideSpec.Images
}

// SlideSpec is one row of the outline table: everything needed to render a
// single slide.
type SlideSpec struct {
	Number       int
	Title        string
	SectionLabel string // small caps label above the title ("ACT I: THE PROBLEM")
	Layout       Layout
	Background   Background

	// HeroStat is the oversized numeric headline. Required when Layout is
	// LayoutHeroStatistic.
	HeroStat      string
	HeroCaption   string
	Statement     string // required by LayoutStatement; may contain \n
	Subtitle      string
	Body          []string
	Columns       []ColumnSpec
	Images        []string // file names, order matters
	Citations     []string
	AccentOnRed   bool // use the red accent instead of copper (critique slides)
	AccentOnGreen bool // use the green accent (forward-looking slides)
}

// IsSectionDivider reports whether the slide opens a new act of the deck.
func (s SlideSpec) IsSectionDivider() bool {
	return s.Layout == LayoutStatement && s.SectionLabel != "" && s.HeroStat == ""
}

// ViolationKind classifies an outline consistency failure.
type ViolationKind string

const (
	ViolationMissingAsset       ViolationKind = "missing_asset"
	ViolationInvalidLayout      ViolationKind = "invalid_layout"
	ViolationMissingCitation    ViolationKind = "missing_citation"
	ViolationBadNumbering       ViolationKind = "bad_numbering"
	ViolationMissingHeroStat    ViolationKind = "missing_hero_stat"
	ViolationUnresolvedCitation ViolationKind = "unresolved_citation"
	ViolationChartGeneration    ViolationKind = "chart_generation"
)

// Violation is a single outline consistency failure. Slide is 0 when the
// violation concerns the outline as a whole.
type Violation struct {
	Kind   ViolationKind
	Slide  int
	Detail string
}

func (v *Violation) Error() string {
	if v.Slide > 0 {
		return fmt.Sprintf("slide %d: %s: %s", v.Slide, v.Kind, v.Detail)
	}
	return fmt.Sprintf("outline: %s: %s", v.Kind, v.Detail)
}
