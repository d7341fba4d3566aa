package document

// Kind identifies which document a content model is laid out as. The three
// kinds share one layout engine; only the template section order differs.
type Kind string

const (
	KindFullCV      Kind = "cv"
	KindHistoryCV   Kind = "history_cv"
	KindCoverLetter Kind = "cover_letter"
)

// SectionKind enumerates the named content blocks a template may order.
type SectionKind string

const (
	SectionObjective   SectionKind = "objective"
	SectionEducation   SectionKind = "education"
	SectionExperience  SectionKind = "experience"
	SectionSkills      SectionKind = "skills"
	SectionLanguages   SectionKind = "languages"
	SectionCandidature SectionKind = "candidature"
	SectionProfile     SectionKind = "profile"
)

// Placeholder values used whenever the underlying data is absent. Documents
// are always producible; missing content degrades, it never fails.
const (
	DefaultRole     = "Candidat"
	DefaultCompany  = "Entreprise"
	PlaceholderText = "Veuillez compléter cette section pour enrichir votre document."
)

// Identity is the candidate identity block rendered at the top of every
// document.
type Identity struct {
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// BodyKind discriminates the shape of a section body.
type BodyKind string

const (
	BodyParagraph  BodyKind = "paragraph"
	BodyEntries    BodyKind = "entries"
	BodyInlineList BodyKind = "inline_list"
)

// Entry is one dated item inside an Entries body, e.g. a degree or a job.
type Entry struct {
	Primary   string   `json:"primary"`
	Secondary string   `json:"secondary"`
	Bullets   []string `json:"bullets"`
}

// Body carries the content of a section in one of three shapes. Kind selects
// which field is meaningful.
type Body struct {
	Kind    BodyKind `json:"kind"`
	Text    string   `json:"text,omitempty"`
	Entries []Entry  `json:"entries,omitempty"`
	Items   []string `json:"items,omitempty"`
}

// Paragraph builds a prose body.
func Paragraph(text string) Body {
	return Body{Kind: BodyParagraph, Text: text}
}

// EntryList builds an entries body.
func EntryList(entries ...Entry) Body {
	return Body{Kind: BodyEntries, Entries: entries}
}

// InlineList builds a short-item body joined by the template separator.
func InlineList(items ...string) Body {
	return Body{Kind: BodyInlineList, Items: items}
}

// Section is one named content block. Its order inside ContentModel is
// template-independent; templates decide visual order and inclusion.
type Section struct {
	Kind    SectionKind `json:"kind"`
	Heading string      `json:"heading"`
	Body    Body        `json:"body"`
}

// ContentModel is the normalized data a document is built from.
type ContentModel struct {
	Identity      Identity  `json:"identity"`
	TargetRole    string    `json:"target_role"`
	TargetCompany string    `json:"target_company"`
	Sections      []Section `json:"sections"`
}

// Section returns the section of the given kind, if the model carries one.
func (m ContentModel) Section(kind SectionKind) (Section, bool) {
	for _, s := range m.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

var headings = map[SectionKind]string{
	SectionObjective:   "OBJECTIF PROFESSIONNEL",
	SectionEducation:   "FORMATION",
	SectionExperience:  "EXPÉRIENCE PROFESSIONNELLE",
	SectionSkills:      "COMPÉTENCES",
	SectionLanguages:   "LANGUES",
	SectionCandidature: "CANDIDATURE",
	SectionProfile:     "PROFIL",
}

// HeadingFor returns the display label for a section kind. Used both by the
// builders and by the layout engine when it substitutes a placeholder for a
// section the template orders but the model does not carry.
func HeadingFor(kind SectionKind) string {
	if h, ok := headings[kind]; ok {
		return h
	}
	return string(kind)
}

// PlaceholderSection is what the layout engine renders when a template orders
// a section the model has no data for. Guarantees a heading is never silently
// dropped.
func PlaceholderSection(kind SectionKind) Section {
	return Section{
		Kind:    kind,
		Heading: HeadingFor(kind),
		Body:    Paragraph(PlaceholderText),
	}
}
