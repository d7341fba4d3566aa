package template

import (
	"reflect"
	"testing"

	"cvforge/internal/document"
	"cvforge/internal/layout"
)

func TestResolveKnownTemplates(t *testing.T) {
	for _, id := range []string{Harvard, Modern, Minimal} {
		style := Resolve(id)
		if style.ID != id {
			t.Errorf("Resolve(%q) returned style %q", id, style.ID)
		}
	}
}

func TestResolveFallsBackToMinimal(t *testing.T) {
	for _, id := range []string{"", "fancy", "HARVARD"} {
		style := Resolve(id)
		if style.ID != Minimal {
			t.Errorf("Resolve(%q) = %q, want fallback to %q", id, style.ID, Minimal)
		}
	}
}

func TestIsKnown(t *testing.T) {
	if !IsKnown(Harvard) || !IsKnown(Modern) || !IsKnown(Minimal) {
		t.Error("builtin template reported unknown")
	}
	if IsKnown("") || IsKnown("fancy") {
		t.Error("unknown template reported known")
	}
}

func TestHarvardStyleShape(t *testing.T) {
	style := Resolve(Harvard)
	if style.TitleLayout != layout.TitleCentered {
		t.Errorf("harvard title layout = %v", style.TitleLayout)
	}
	if style.HeaderRule != layout.RuleLine {
		t.Errorf("harvard header rule = %v", style.HeaderRule)
	}
	if style.FontFamily != "Times" {
		t.Errorf("harvard font = %q", style.FontFamily)
	}
}

func TestSectionOrderPerKind(t *testing.T) {
	tests := []struct {
		kind document.Kind
		want []document.SectionKind
	}{
		{document.KindFullCV, []document.SectionKind{
			document.SectionObjective,
			document.SectionEducation,
			document.SectionExperience,
			document.SectionSkills,
			document.SectionLanguages,
		}},
		{document.KindHistoryCV, []document.SectionKind{
			document.SectionCandidature,
			document.SectionProfile,
			document.SectionExperience,
		}},
		{document.KindCoverLetter, []document.SectionKind{
			document.SectionCandidature,
			document.SectionProfile,
		}},
	}

	for _, tc := range tests {
		got := SectionOrder(Minimal, tc.kind)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SectionOrder(%q) = %v, want %v", tc.kind, got, tc.want)
		}
	}
}

func TestSectionOrderReturnsCopy(t *testing.T) {
	first := SectionOrder(Harvard, document.KindFullCV)
	first[0] = document.SectionProfile

	second := SectionOrder(Harvard, document.KindFullCV)
	if second[0] != document.SectionObjective {
		t.Error("mutating a returned order leaked into the registry")
	}
}
