package deck

// Palette is the fixed deck color system. Values are RRGGBB hex without a
// leading # so they can feed both GoPPT (which wants AARRGGBB) and the chart
// renderer (which wants plain hex).
type Palette struct {
	DarkBG       string
	LightBG      string
	Copper       string
	Blue         string
	Red          string
	Green        string
	TextOnDark   string
	TextOnLight  string
	CitationGray string
	White        string
	PanelDark    string // raised panel fill on dark canvases
	CiteBarDark  string
	CiteBarLight string
}

// DefaultPalette returns the editorial palette used across the whole deck.
func DefaultPalette() Palette {
	return Palette{
		DarkBG:       "0D1117",
		LightBG:      "F7F5F0",
		Copper:       "C17F3A",
		Blue:         "3B82B6",
		Red:          "DC4A4A",
		Green:        "5B8C6B",
		TextOnDark:   "E8E4DE",
		TextOnLight:  "2D2D2D",
		CitationGray: "8B8680",
		White:        "FFFFFF",
		PanelDark:    "161B22",
		CiteBarDark:  "0A0D12",
		CiteBarLight: "EDEBE6",
	}
}

// Typography names the font stack. Spectral is the design font; Georgia is
// the substitute the rendering layer falls back to when it is not installed.
type Typography struct {
	Family   string
	Fallback string

	SizeTitle     int // deck title and act dividers
	SizeHeadline  int // per-slide headline
	SizeHero      int // oversized hero statistic
	SizeStatement int
	SizeLead      int
	SizeBody      int
	SizeCaption   int
	SizeLabel     int // small-caps section label
	SizeCitation  int
}

// DefaultTypography matches the serif editorial style of the deck.
func DefaultTypography() Typography {
	return Typography{
		Family:        "Spectral",
		Fallback:      "Georgia",
		SizeTitle:     36,
		SizeHeadline:  30,
		SizeHero:      80,
		SizeStatement: 36,
		SizeLead:      18,
		SizeBody:      13,
		SizeCaption:   11,
		SizeLabel:     10,
		SizeCitation:  9,
	}
}

// Geometry expresses slide positions as fractions of the 16:9 page so the
// assembler is independent of the backend's native page size.
type Geometry struct {
	MarginX        float64 // left/right content margin
	LabelY         float64 // section label baseline
	HeadlineY      float64
	ContentY       float64
	CiteStripH     float64 // citation strip height
	FullBleedSplit float64 // where the image ends on full-bleed layouts
	AccentH        float64 // accent line thickness
}

// DefaultGeometry mirrors the original plan's inch grid, normalized.
func DefaultGeometry() Geometry {
	return Geometry{
		MarginX:        0.045,
		LabelY:         0.055,
		HeadlineY:      0.135,
		ContentY:       0.30,
		CiteStripH:     0.073,
		FullBleedSplit: 0.55,
		AccentH:        0.006,
	}
}

// Style bundles the complete registry handed to the renderers.
type Style struct {
	Palette    Palette
	Typography Typography
	Geometry   Geometry
}

// DefaultStyle returns the registry the deck was designed with.
func DefaultStyle() Style {
	return Style{
		Palette:    DefaultPalette(),
		Typography: DefaultTypography(),
		Geometry:   DefaultGeometry(),
	}
}
