package deck

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestDefaultOutlineIsValid(t *testing.T) {
	outline := DefaultOutline()
	if len(outline) != 32 {
		t.Fatalf("expected 32 slides, got %d", len(outline))
	}

	v := &Validator{}
	res := v.Validate(outline)
	if err := res.Err(); err != nil {
		t.Fatalf("default outline should validate cleanly:\n%v", err)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("default outline should produce no warnings, got %v", res.Warnings)
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	outline := []SlideSpec{
		{Number: 1, Title: "A", Layout: LayoutStatement, Background: BackgroundDark, Statement: "A", Citations: []string{"x"}},
		{Number: 1, Title: "B", Layout: Layout("mystery"), Background: BackgroundLight},
		{Number: 4, Title: "C", Layout: LayoutHeroStatistic, Background: BackgroundLight, HeroStat: "soon", Citations: []string{"y"}},
	}

	v := &Validator{}
	res := v.Validate(outline)
	err := res.Err()
	if err == nil {
		t.Fatal("expected violations")
	}

	kinds := make(map[ViolationKind]int)
	for _, viol := range res.Violations {
		kinds[viol.Kind]++
	}
	if kinds[ViolationBadNumbering] == 0 {
		t.Error("expected a numbering violation for the duplicate and the gap")
	}
	if kinds[ViolationInvalidLayout] != 1 {
		t.Errorf("expected 1 invalid layout violation, got %d", kinds[ViolationInvalidLayout])
	}
	if kinds[ViolationMissingCitation] != 1 {
		t.Errorf("expected 1 missing citation violation, got %d", kinds[ViolationMissingCitation])
	}
	if kinds[ViolationMissingHeroStat] != 1 {
		t.Errorf("expected 1 hero stat violation, got %d", kinds[ViolationMissingHeroStat])
	}
	if !strings.Contains(err.Error(), "violation(s)") {
		t.Errorf("folded error should summarize the count, got %q", err.Error())
	}
}

func TestValidateNumberingGapAndRange(t *testing.T) {
	outline := []SlideSpec{
		{Number: 1, Title: "A", Layout: LayoutStatement, Statement: "A", Background: BackgroundDark, Citations: []string{"x"}},
		{Number: 3, Title: "B", Layout: LayoutStatement, Statement: "B", Background: BackgroundDark, Citations: []string{"x"}},
	}
	res := (&Validator{}).Validate(outline)

	var gotMissing, gotOutOfRange bool
	for _, v := range res.Violations {
		if v.Kind != ViolationBadNumbering {
			continue
		}
		if v.Slide == 2 {
			gotMissing = true
		}
		if v.Slide == 3 {
			gotOutOfRange = true
		}
	}
	if !gotMissing {
		t.Error("expected slide 2 reported as missing")
	}
	if !gotOutOfRange {
		t.Error("expected slide 3 reported as out of range for a 2-slide outline")
	}
}

func TestValidateUnresolvedCitations(t *testing.T) {
	outline := []SlideSpec{
		{Number: 1, Title: "A", Layout: LayoutStatement, Statement: "A", Background: BackgroundDark,
			Citations: []string{"known", "unknown"}},
	}
	v := &Validator{Citations: resolverFunc(func(key string) (string, bool) {
		return "", key == "known"
	})}
	res := v.Validate(outline)

	var unresolved []string
	for _, viol := range res.Violations {
		if viol.Kind == ViolationUnresolvedCitation {
			unresolved = append(unresolved, viol.Detail)
		}
	}
	if len(unresolved) != 1 || unresolved[0] != "unknown" {
		t.Fatalf("expected exactly the unknown key flagged, got %v", unresolved)
	}
}

type resolverFunc func(key string) (string, bool)

func (f resolverFunc) Resolve(key string) (string, bool) { return f(key) }

func TestAlternationWarnsOnSingleBackgroundSection(t *testing.T) {
	outline := []SlideSpec{
		{Number: 1, Title: "Divider", SectionLabel: "ACT I", Layout: LayoutStatement, Statement: "D",
			Background: BackgroundDark, Citations: []string{"x"}},
		{Number: 2, Title: "A", Layout: LayoutFullBleed, Background: BackgroundLight, Citations: []string{"x"}},
		{Number: 3, Title: "B", Layout: LayoutFullBleed, Background: BackgroundLight, Citations: []string{"x"}},
		{Number: 4, Title: "C", Layout: LayoutFullBleed, Background: BackgroundLight, Citations: []string{"x"}},
	}
	res := (&Validator{}).Validate(outline)
	if err := res.Err(); err != nil {
		t.Fatalf("single-background runs are soft failures, got hard error: %v", err)
	}
	if len(res.Warnings) == 0 {
		t.Fatal("expected a rhythm warning for the all-light section")
	}
}

func TestAlternationWarnsOnLightDivider(t *testing.T) {
	outline := []SlideSpec{
		{Number: 1, Title: "Divider", SectionLabel: "ACT I", Layout: LayoutStatement, Statement: "D",
			Background: BackgroundLight, Citations: []string{"x"}},
	}
	res := (&Validator{}).Validate(outline)
	if len(res.Warnings) != 1 {
		t.Fatalf("expected exactly one warning for the light divider, got %v", res.Warnings)
	}
}

// Numbering validity is order independent: any permutation of a valid
// outline still validates. Dropping a slide breaks it unless the dropped
// slide is the last number, which just leaves a shorter contiguous outline.
func TestNumberingPermutationProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		outline := DefaultOutline()
		perm := rapid.Permutation(outline).Draw(t, "perm")

		if violations := checkNumbering(perm); len(violations) != 0 {
			t.Fatalf("permutation should keep numbering valid, got %v", violations)
		}

		drop := rapid.IntRange(0, len(perm)-1).Draw(t, "drop")
		dropped := perm[drop].Number
		truncated := append(append([]SlideSpec(nil), perm[:drop]...), perm[drop+1:]...)
		violations := checkNumbering(truncated)
		if dropped == len(perm) {
			if len(violations) != 0 {
				t.Fatalf("dropping the last number should leave a valid outline, got %v", violations)
			}
		} else if len(violations) == 0 {
			t.Fatalf("dropping slide %d should break contiguous numbering", dropped)
		}
	})
}

func TestViolationError(t *testing.T) {
	v := &Violation{Kind: ViolationMissingAsset, Slide: 5, Detail: "assets/missing.png"}
	want := "slide 5: missing_asset: assets/missing.png"
	if got := v.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
