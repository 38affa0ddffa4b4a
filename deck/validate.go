package deck

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Resolver answers whether a citation key can be found in a bibliography.
// Implemented by bib.Bibliography; nil means no bibliography was configured
// and resolvability is not checked.
type Resolver interface {
	Resolve(key string) (string, bool)
}

// Validator checks a full outline for internal consistency. All violations
// are collected so a single run surfaces every problem at once.
type Validator struct {
	Assets    *AssetSet
	Citations Resolver
}

// Result carries the hard violations and the soft warnings of one pass.
type Result struct {
	Violations []*Violation
	Warnings   []string
}

// Err folds the hard violations into a single error, or nil when clean.
func (r Result) Err() error {
	if len(r.Violations) == 0 {
		return nil
	}
	var merr *multierror.Error
	for _, v := range r.Violations {
		merr = multierror.Append(merr, v)
	}
	merr.ErrorFormat = listViolations
	return merr
}

func listViolations(errs []error) string {
	lines := make([]string, 0, len(errs)+1)
	lines = append(lines, fmt.Sprintf("outline validation failed with %d violation(s):", len(errs)))
	for _, err := range errs {
		lines = append(lines, "  - "+err.Error())
	}
	return strings.Join(lines, "\n")
}

var heroStatPattern = regexp.MustCompile(`[0-9]`)

// Validate runs every consistency rule over the outline.
func (v *Validator) Validate(outline []SlideSpec) Result {
	var res Result

	res.Violations = append(res.Violations, checkNumbering(outline)...)

	for _, slide := range outline {
		if !slide.Layout.Valid() {
			res.Violations = append(res.Violations, &Violation{
				Kind:   ViolationInvalidLayout,
				Slide:  slide.Number,
				Detail: fmt.Sprintf("unknown layout %q", slide.Layout),
			})
		}
		if len(slide.Citations) == 0 {
			res.Violations = append(res.Violations, &Violation{
				Kind:   ViolationMissingCitation,
				Slide:  slide.Number,
				Detail: "slide has no citation",
			})
		}
		if slide.Layout == LayoutHeroStatistic && !heroStatPattern.MatchString(slide.HeroStat) {
			res.Violations = append(res.Violations, &Violation{
				Kind:   ViolationMissingHeroStat,
				Slide:  slide.Number,
				Detail: "hero statistic layout requires a numeric headline",
			})
		}
		if v.Citations != nil {
			for _, key := range slide.Citations {
				if _, ok := v.Citations.Resolve(key); !ok {
					res.Violations = append(res.Violations, &Violation{
						Kind:   ViolationUnresolvedCitation,
						Slide:  slide.Number,
						Detail: key,
					})
				}
			}
		}
	}

	if v.Assets != nil {
		res.Violations = append(res.Violations, v.Assets.Resolve(outline)...)
	}

	res.Warnings = checkAlternation(outline)

	sort.SliceStable(res.Violations, func(i, j int) bool {
		return res.Violations[i].Slide < res.Violations[j].Slide
	})
	return res
}

// checkNumbering verifies the contiguous 1..N rule with no duplicates.
func checkNumbering(outline []SlideSpec) []*Violation {
	var violations []*Violation
	seen := make(map[int]int, len(outline))
	for _, slide := range outline {
		seen[slide.Number]++
	}
	for num, count := range seen {
		if count > 1 {
			violations = append(violations, &Violation{
				Kind:   ViolationBadNumbering,
				Slide:  num,
				Detail: fmt.Sprintf("slide number appears %d times", count),
			})
		}
		if num < 1 || num > len(outline) {
			violations = append(violations, &Violation{
				Kind:   ViolationBadNumbering,
				Slide:  num,
				Detail: fmt.Sprintf("slide number outside 1..%d", len(outline)),
			})
		}
	}
	for want := 1; want <= len(outline); want++ {
		if seen[want] == 0 {
			violations = append(violations, &Violation{
				Kind:   ViolationBadNumbering,
				Slide:  want,
				Detail: "slide number missing from outline",
			})
		}
	}
	return violations
}

// checkAlternation applies the soft dark/light rhythm rule: act dividers sit
// on a dark canvas, and every act mixes dark and light content slides rather
// than running a single background front to back. Failures are warnings only.
func checkAlternation(outline []SlideSpec) []string {
	ordered := append([]SlideSpec(nil), outline...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Number < ordered[j].Number })

	var warnings []string
	sectionStart := 0
	flushSection := func(from, to int) {
		darks, lights := 0, 0
		for _, slide := range ordered[from:to] {
			if slide.IsSectionDivider() {
				continue
			}
			switch slide.Background {
			case BackgroundDark:
				darks++
			case BackgroundLight:
				lights++
			}
		}
		if darks+lights >= 3 && (darks == 0 || lights == 0) {
			warnings = append(warnings, fmt.Sprintf(
				"slides %d-%d: section runs a single background; the deck rhythm alternates dark and light",
				ordered[from].Number, ordered[to-1].Number))
		}
	}
	for i, slide := range ordered {
		if !slide.IsSectionDivider() {
			continue
		}
		if slide.Background != BackgroundDark {
			warnings = append(warnings, fmt.Sprintf(
				"slide %d: section divider %q is not on the dark background", slide.Number, slide.Title))
		}
		if i > sectionStart {
			flushSection(sectionStart, i)
		}
		sectionStart = i
	}
	if sectionStart < len(ordered) {
		flushSection(sectionStart, len(ordered))
	}
	return warnings
}
