package compose

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"cvforge/internal/document"
	"cvforge/internal/layout"
	"cvforge/internal/template"
)

func testProfile() document.Profile {
	return document.Profile{
		Identity: document.Identity{
			FullName: "Jean Dupont",
			Email:    "jean.dupont@example.com",
			Phone:    "06 12 34 56 78",
		},
		Target: document.Target{
			Position:    "Ingénieur Logiciel",
			Company:     "Google",
			Description: "Concevoir des services distribués robustes.",
		},
		Education: []document.EducationEntry{
			{Degree: "Master Informatique", School: "Université de Lyon", Period: "2020 - 2022"},
		},
		Experiences: []document.ExperienceEntry{
			{Role: "Développeur", Company: "Acme", Period: "2022 - 2024", Bullets: []string{"Mise en place du pipeline CI"}},
		},
		Skills:    []string{"Go", "PostgreSQL"},
		Languages: []string{"Français", "Anglais"},
	}
}

func TestComposeFromProfileProducesPDF(t *testing.T) {
	composer := New()

	result, err := composer.ComposeFromProfile(testProfile(), document.KindFullCV, template.Harvard)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	if !bytes.HasPrefix(result.PDF, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
	if result.Filename != "CV_Ingénieur_Logiciel_Google.pdf" {
		t.Errorf("filename = %q", result.Filename)
	}
	if result.TemplateID != template.Harvard {
		t.Errorf("template id = %q", result.TemplateID)
	}
	if result.ContentHeight <= 0 {
		t.Errorf("content height = %v", result.ContentHeight)
	}
}

func TestComposeCoverLetterFilename(t *testing.T) {
	composer := New()

	result, err := composer.ComposeFromProfile(testProfile(), document.KindCoverLetter, template.Modern)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if result.Filename != "Lettre_Motivation_Ingénieur_Logiciel_Google.pdf" {
		t.Errorf("filename = %q", result.Filename)
	}
}

func TestComposeFromProfileRejectsHistoryKind(t *testing.T) {
	composer := New()

	if _, err := composer.ComposeFromProfile(testProfile(), document.KindHistoryCV, template.Minimal); err == nil {
		t.Fatal("expected error for history kind")
	}
}

func TestUnknownTemplateFallsBackToMinimal(t *testing.T) {
	composer := New()

	result, err := composer.ComposeFromProfile(testProfile(), document.KindFullCV, "fancy")
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if result.TemplateID != template.Minimal {
		t.Errorf("template id = %q, want fallback to %q", result.TemplateID, template.Minimal)
	}
}

func TestInstructionsAreDeterministic(t *testing.T) {
	composer := New()
	model := document.BuildCV(testProfile())

	first, firstHeight, err := composer.Instructions(model, document.KindFullCV, template.Harvard)
	if err != nil {
		t.Fatalf("instructions: %v", err)
	}
	second, secondHeight, err := composer.Instructions(model, document.KindFullCV, template.Harvard)
	if err != nil {
		t.Fatalf("instructions: %v", err)
	}

	if !reflect.DeepEqual(first, second) || firstHeight != secondHeight {
		t.Error("same model produced different instructions")
	}
}

func TestHarvardFullCVScenario(t *testing.T) {
	composer := New()
	model := document.BuildCV(testProfile())

	instrs, height, err := composer.Instructions(model, document.KindFullCV, template.Harvard)
	if err != nil {
		t.Fatalf("instructions: %v", err)
	}
	if height <= 0 {
		t.Fatalf("content height = %v", height)
	}

	var texts []string
	for _, in := range instrs {
		if in.Op == layout.OpText {
			texts = append(texts, in.Text)
		}
	}

	indexOf := func(want string) int {
		for i, text := range texts {
			if strings.Contains(text, want) {
				return i
			}
		}
		t.Fatalf("%q not rendered", want)
		return -1
	}

	name := indexOf("JEAN DUPONT")
	role := indexOf("Ingénieur Logiciel — Google")
	objective := indexOf("OBJECTIF PROFESSIONNEL")
	formation := indexOf("FORMATION")
	experience := indexOf("EXPÉRIENCE PROFESSIONNELLE")
	skills := indexOf("COMPÉTENCES")
	languages := indexOf("LANGUES")

	order := []int{name, role, objective, formation, experience, skills, languages}
	for i := 1; i < len(order); i++ {
		if order[i] <= order[i-1] {
			t.Fatalf("blocks out of order: %v", order)
		}
	}
}

func TestComposeFromRecordHandlesSparseRecord(t *testing.T) {
	composer := New()

	result, err := composer.ComposeFromRecord(document.Record{
		Title:     "CV_Analyste_BNP",
		CreatedAt: time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("compose from record: %v", err)
	}
	if !bytes.HasPrefix(result.PDF, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
	if result.TemplateID != template.Minimal {
		t.Errorf("sparse record template = %q, want %q", result.TemplateID, template.Minimal)
	}
	if !strings.HasPrefix(result.Filename, "CV_") {
		t.Errorf("filename = %q", result.Filename)
	}
}
