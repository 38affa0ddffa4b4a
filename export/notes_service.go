package export

import (
	"fmt"
	"strings"
	"time"

	goword "github.com/VantageDataChat/GoWord"
	"github.com/VantageDataChat/GoWord/style"

	"thesisdeck/deck"
)

// NotesService writes the speaker notes document: one heading per slide
// followed by the talking points and the sources to have at hand.
type NotesService struct {
	style deck.Style
}

// NewNotesService creates a speaker notes renderer.
func NewNotesService(st deck.Style) *NotesService {
	return &NotesService{style: st}
}

// Generate renders the notes DOCX for the outline.
func (s *NotesService) Generate(outline []deck.SlideSpec) ([]byte, error) {
	if len(outline) == 0 {
		return nil, fmt.Errorf("cannot generate notes for an empty outline")
	}

	doc := goword.New()
	doc.Properties.Title = strings.ReplaceAll(outline[0].Title, "\n", " ") + " — Speaker Notes"
	doc.Properties.Creator = "deckbuild"

	sec := doc.AddSection()
	sec.AddTitle(strings.ReplaceAll(outline[0].Title, "\n", " "), 1)
	sec.AddText("Speaker notes  •  "+time.Now().Format("2006-01-02"),
		&style.FontStyle{Size: 10, Color: s.style.Palette.CitationGray},
		&style.ParagraphStyle{Alignment: style.AlignCenter})
	sec.AddTextBreak(1)

	for _, spec := range outline {
		s.addSlideNotes(sec, spec)
	}

	data, err := doc.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write speaker notes: %w", err)
	}
	return data, nil
}

func (s *NotesService) addSlideNotes(sec *goword.Section, spec deck.SlideSpec) {
	heading := fmt.Sprintf("Slide %d — %s", spec.Number, strings.ReplaceAll(spec.Title, "\n", " "))
	sec.AddText(heading,
		&style.FontStyle{Bold: true, Size: 13, Color: s.style.Palette.Copper},
		nil)

	if spec.SectionLabel != "" {
		sec.AddText(spec.SectionLabel,
			&style.FontStyle{Size: 9, Color: s.style.Palette.CitationGray},
			nil)
	}

	if spec.HeroStat != "" {
		sec.AddText(fmt.Sprintf("Lead with the number: %s (%s).", spec.HeroStat, spec.HeroCaption),
			&style.FontStyle{Bold: true, Size: 11, Color: s.style.Palette.TextOnLight},
			nil)
	}
	if spec.Statement != "" {
		sec.AddText("Deliver slowly: \""+strings.ReplaceAll(spec.Statement, "\n", " ")+"\"",
			&style.FontStyle{Italic: true, Size: 11, Color: s.style.Palette.TextOnLight},
			nil)
	}
	if spec.Subtitle != "" {
		sec.AddText(spec.Subtitle,
			&style.FontStyle{Size: 10, Color: s.style.Palette.TextOnLight},
			nil)
	}

	for _, line := range spec.Body {
		sec.AddText("• "+line,
			&style.FontStyle{Size: 10, Color: s.style.Palette.TextOnLight},
			&style.ParagraphStyle{Indent: 360})
	}
	for _, column := range spec.Columns {
		head := column.Heading
		if column.Subheading != "" {
			head += " — " + column.Subheading
		}
		sec.AddText(head,
			&style.FontStyle{Bold: true, Size: 10, Color: s.style.Palette.TextOnLight},
			&style.ParagraphStyle{Indent: 360})
		for _, line := range column.Body {
			sec.AddText(line,
				&style.FontStyle{Size: 9, Color: s.style.Palette.TextOnLight},
				&style.ParagraphStyle{Indent: 720})
		}
	}

	if len(spec.Citations) > 0 {
		sec.AddText("If asked for sources: "+strings.Join(spec.Citations, "; "),
			&style.FontStyle{Size: 8, Color: s.style.Palette.CitationGray},
			&style.ParagraphStyle{SpaceAfter: 200})
	}
	sec.AddTextBreak(1)
}
