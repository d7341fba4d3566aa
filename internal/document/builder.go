package document

import (
	"fmt"
	"strings"
	"time"
)

// Record is the sparse input carried by a stored history entry. Every field
// except Title may be empty; builders substitute placeholders.
type Record struct {
	Title      string
	Role       string
	Company    string
	TemplateID string
	CreatedAt  time.Time
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func normalizeIdentity(id Identity) Identity {
	id.FullName = orDefault(id.FullName, DefaultRole)
	return id
}

// BuildCV assembles the full-CV content model from the profile form and
// interview data.
func BuildCV(p Profile) ContentModel {
	role := orDefault(p.Target.Position, DefaultRole)
	company := orDefault(p.Target.Company, DefaultCompany)

	model := ContentModel{
		Identity:      normalizeIdentity(p.Identity),
		TargetRole:    role,
		TargetCompany: company,
	}

	objective := strings.TrimSpace(p.Target.Description)
	if objective == "" {
		objective = fmt.Sprintf(
			"À la recherche d'un poste de %s chez %s pour mettre à profit mes compétences et contribuer aux projets de l'équipe.",
			role, company,
		)
	}
	model.Sections = append(model.Sections, Section{
		Kind:    SectionObjective,
		Heading: HeadingFor(SectionObjective),
		Body:    Paragraph(objective),
	})

	if entries := educationEntries(p.Education); len(entries) > 0 {
		model.Sections = append(model.Sections, Section{
			Kind:    SectionEducation,
			Heading: HeadingFor(SectionEducation),
			Body:    EntryList(entries...),
		})
	}

	if entries := experienceEntries(p.Experiences); len(entries) > 0 {
		model.Sections = append(model.Sections, Section{
			Kind:    SectionExperience,
			Heading: HeadingFor(SectionExperience),
			Body:    EntryList(entries...),
		})
	}

	if items := cleanItems(p.Skills); len(items) > 0 {
		model.Sections = append(model.Sections, Section{
			Kind:    SectionSkills,
			Heading: HeadingFor(SectionSkills),
			Body:    InlineList(items...),
		})
	}

	if items := cleanItems(p.Languages); len(items) > 0 {
		model.Sections = append(model.Sections, Section{
			Kind:    SectionLanguages,
			Heading: HeadingFor(SectionLanguages),
			Body:    InlineList(items...),
		})
	}

	return model
}

// BuildCoverLetter assembles the cover-letter content model. Interview
// answers, when present, become the motivation paragraphs; otherwise the
// target description is used, falling back to a generic formula.
func BuildCoverLetter(p Profile) ContentModel {
	role := orDefault(p.Target.Position, DefaultRole)
	company := orDefault(p.Target.Company, DefaultCompany)

	model := ContentModel{
		Identity:      normalizeIdentity(p.Identity),
		TargetRole:    role,
		TargetCompany: company,
	}

	model.Sections = append(model.Sections, Section{
		Kind:    SectionCandidature,
		Heading: HeadingFor(SectionCandidature),
		Body:    Paragraph(fmt.Sprintf("Objet : Candidature au poste de %s chez %s", role, company)),
	})

	var paragraphs []string
	for _, qa := range p.Interview {
		if answer := strings.TrimSpace(qa.Answer); answer != "" {
			paragraphs = append(paragraphs, answer)
		}
	}
	if len(paragraphs) == 0 {
		if desc := strings.TrimSpace(p.Target.Description); desc != "" {
			paragraphs = append(paragraphs, desc)
		}
	}
	if len(paragraphs) == 0 {
		paragraphs = append(paragraphs, fmt.Sprintf(
			"Madame, Monsieur, je vous adresse ma candidature pour le poste de %s au sein de %s. Mon parcours et ma motivation me permettront de contribuer rapidement à vos équipes.",
			role, company,
		))
	}
	paragraphs = append(paragraphs,
		"Je me tiens à votre disposition pour un entretien et vous prie d'agréer, Madame, Monsieur, l'expression de mes salutations distinguées.")

	model.Sections = append(model.Sections, Section{
		Kind:    SectionProfile,
		Heading: HeadingFor(SectionProfile),
		Body:    Paragraph(strings.Join(paragraphs, "\n")),
	})

	return model
}

// BuildFromRecord assembles the sparse content model used to re-render a
// stored history entry whose PDF object is gone. Missing role/company fall
// back to the default placeholders.
func BuildFromRecord(rec Record) ContentModel {
	role := orDefault(rec.Role, DefaultRole)
	company := orDefault(rec.Company, DefaultCompany)

	model := ContentModel{
		Identity:      Identity{FullName: orDefault(rec.Title, DefaultRole)},
		TargetRole:    role,
		TargetCompany: company,
	}

	candidature := fmt.Sprintf("Candidature au poste de %s chez %s", role, company)
	if !rec.CreatedAt.IsZero() {
		candidature += fmt.Sprintf(" — générée le %s", rec.CreatedAt.Format("02/01/2006"))
	}
	model.Sections = append(model.Sections, Section{
		Kind:    SectionCandidature,
		Heading: HeadingFor(SectionCandidature),
		Body:    Paragraph(candidature),
	})

	return model
}

func educationEntries(in []EducationEntry) []Entry {
	entries := make([]Entry, 0, len(in))
	for _, e := range in {
		primary := strings.TrimSpace(e.Degree)
		if primary == "" {
			continue
		}
		secondary := strings.TrimSpace(e.School)
		if period := strings.TrimSpace(e.Period); period != "" {
			if secondary != "" {
				secondary += " · " + period
			} else {
				secondary = period
			}
		}
		entries = append(entries, Entry{
			Primary:   primary,
			Secondary: secondary,
			Bullets:   cleanItems(e.Highlights),
		})
	}
	return entries
}

func experienceEntries(in []ExperienceEntry) []Entry {
	entries := make([]Entry, 0, len(in))
	for _, e := range in {
		primary := strings.TrimSpace(e.Role)
		if primary == "" {
			continue
		}
		if company := strings.TrimSpace(e.Company); company != "" {
			primary += " — " + company
		}
		entries = append(entries, Entry{
			Primary:   primary,
			Secondary: strings.TrimSpace(e.Period),
			Bullets:   cleanItems(e.Bullets),
		})
	}
	return entries
}

func cleanItems(in []string) []string {
	items := make([]string, 0, len(in))
	for _, item := range in {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
