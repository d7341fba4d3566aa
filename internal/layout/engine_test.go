package layout

import (
	"errors"
	"reflect"
	"testing"

	"cvforge/internal/document"
)

// charMeasurer counts runes, one unit each. Wide enough pages keep every
// line break predictable.
type charMeasurer struct{}

func (charMeasurer) MeasureText(text string, _ TextStyle) float64 {
	return float64(len([]rune(text)))
}

type zeroMeasurer struct{}

func (zeroMeasurer) MeasureText(string, TextStyle) float64 { return 0 }

func testStyle() Style {
	return Style{
		ID:             "test",
		Name:           "Test",
		Accent:         RGB{R: 10, G: 20, B: 30},
		HeaderRule:     RuleLine,
		TitleLayout:    TitlePlain,
		FontFamily:     "Helvetica",
		MarginLeft:     20,
		MarginRight:    20,
		MarginTop:      15,
		ParagraphWidth: 200,
		LineHeight:     5,
		NameSize:       20,
		ContactSize:    10,
		HeadingSize:    12,
		BodySize:       10,
		HeadingGap:     2,
		SectionSpacing: 5,
		EntrySpacing:   2,
		BulletIndent:   5,
		Separator:      ", ",
	}
}

func testModel() document.ContentModel {
	return document.ContentModel{
		Identity: document.Identity{
			FullName: "Jean Dupont",
			Email:    "jean.dupont@example.com",
			Phone:    "06 12 34 56 78",
		},
		TargetRole:    "Ingénieur Logiciel",
		TargetCompany: "Google",
		Sections: []document.Section{
			{
				Kind:    document.SectionObjective,
				Heading: document.HeadingFor(document.SectionObjective),
				Body:    document.Paragraph("Construire des systèmes fiables."),
			},
		},
	}
}

func textsOf(instrs []Instruction) []string {
	var texts []string
	for _, in := range instrs {
		if in.Op == OpText {
			texts = append(texts, in.Text)
		}
	}
	return texts
}

func TestLayoutSubstitutesPlaceholderForMissingSection(t *testing.T) {
	engine := NewEngine(charMeasurer{}, 210)
	order := []document.SectionKind{document.SectionObjective, document.SectionEducation}

	instrs, _, err := engine.Layout(testModel(), testStyle(), order)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}

	texts := textsOf(instrs)
	foundHeading, foundPlaceholder := false, false
	for _, text := range texts {
		if text == "FORMATION" {
			foundHeading = true
		}
		if text == document.PlaceholderText {
			foundPlaceholder = true
		}
	}
	if !foundHeading {
		t.Error("missing section heading was dropped")
	}
	if !foundPlaceholder {
		t.Error("missing section did not render the placeholder paragraph")
	}
}

func TestLayoutKeepsSectionOrder(t *testing.T) {
	engine := NewEngine(charMeasurer{}, 210)
	order := []document.SectionKind{document.SectionObjective, document.SectionEducation, document.SectionSkills}

	instrs, _, err := engine.Layout(testModel(), testStyle(), order)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}

	texts := textsOf(instrs)
	indexOf := func(want string) int {
		for i, text := range texts {
			if text == want {
				return i
			}
		}
		t.Fatalf("heading %q not rendered", want)
		return -1
	}

	objective := indexOf("OBJECTIF PROFESSIONNEL")
	education := indexOf("FORMATION")
	skills := indexOf("COMPÉTENCES")
	if !(objective < education && education < skills) {
		t.Errorf("headings out of order: objective=%d education=%d skills=%d", objective, education, skills)
	}
}

func TestLayoutHeightGrowsBeyondTopMargin(t *testing.T) {
	engine := NewEngine(charMeasurer{}, 210)
	style := testStyle()

	_, height, err := engine.Layout(testModel(), style, []document.SectionKind{document.SectionObjective})
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if height <= style.MarginTop {
		t.Errorf("content height %v not beyond top margin %v", height, style.MarginTop)
	}
}

func TestLayoutIsDeterministic(t *testing.T) {
	engine := NewEngine(charMeasurer{}, 210)
	order := []document.SectionKind{document.SectionObjective, document.SectionEducation}

	first, firstHeight, err := engine.Layout(testModel(), testStyle(), order)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	second, secondHeight, err := engine.Layout(testModel(), testStyle(), order)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if !reflect.DeepEqual(first, second) || firstHeight != secondHeight {
		t.Error("same model and style produced different instructions")
	}
}

func TestLayoutPropagatesEmptyMeasurement(t *testing.T) {
	engine := NewEngine(zeroMeasurer{}, 210)

	_, _, err := engine.Layout(testModel(), testStyle(), []document.SectionKind{document.SectionObjective})
	if !errors.Is(err, ErrEmptyMeasurement) {
		t.Fatalf("expected ErrEmptyMeasurement, got %v", err)
	}
}

func TestCenteredTitleUppercasesName(t *testing.T) {
	engine := NewEngine(charMeasurer{}, 210)
	style := testStyle()
	style.TitleLayout = TitleCentered

	instrs, _, err := engine.Layout(testModel(), style, nil)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}

	for _, text := range textsOf(instrs) {
		if text == "JEAN DUPONT" {
			return
		}
	}
	t.Error("centered title did not upper-case the name")
}

func TestBannerTitleEmitsFullWidthRect(t *testing.T) {
	engine := NewEngine(charMeasurer{}, 210)
	style := testStyle()
	style.TitleLayout = TitleBanner
	style.BannerHeight = 30

	instrs, _, err := engine.Layout(testModel(), style, nil)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}

	if len(instrs) == 0 || instrs[0].Op != OpRect {
		t.Fatal("banner title must start with a filled rect")
	}
	rect := instrs[0]
	if rect.X != 0 || rect.Y != 0 || rect.W != 210 || rect.H != 30 {
		t.Errorf("unexpected banner rect: %+v", rect)
	}
}

func TestEntriesRenderBulletMarkers(t *testing.T) {
	engine := NewEngine(charMeasurer{}, 210)
	model := testModel()
	model.Sections = append(model.Sections, document.Section{
		Kind:    document.SectionExperience,
		Heading: document.HeadingFor(document.SectionExperience),
		Body: document.EntryList(document.Entry{
			Primary:   "Développeur — Acme",
			Secondary: "2022 - 2024",
			Bullets:   []string{"Mise en place du pipeline CI"},
		}),
	})

	instrs, _, err := engine.Layout(model, testStyle(), []document.SectionKind{document.SectionExperience})
	if err != nil {
		t.Fatalf("layout: %v", err)
	}

	var sawMarker, sawBullet bool
	for _, in := range instrs {
		if in.Op != OpText {
			continue
		}
		if in.Text == "•" {
			sawMarker = true
		}
		if in.Text == "Mise en place du pipeline CI" {
			sawBullet = true
		}
	}
	if !sawMarker || !sawBullet {
		t.Errorf("bullet not rendered: marker=%v text=%v", sawMarker, sawBullet)
	}
}
