// Package template maps template identifiers to the style rules and section
// orders the layout engine consumes. Templates are pure data: adding one
// means adding a Style value and its orders here, nothing else changes.
package template

import (
	"cvforge/internal/document"
	"cvforge/internal/layout"
)

// Builtin template identifiers.
const (
	Harvard = "harvard"
	Modern  = "modern"
	Minimal = "minimal"
)

// DefaultID is the template used when a record carries no template or an
// unknown one. The fallback is deliberate and observable: Resolve never
// fails, it degrades to Minimal.
const DefaultID = Minimal

var styles = map[string]layout.Style{
	Harvard: {
		ID:             Harvard,
		Name:           "Harvard",
		Accent:         layout.RGB{R: 139, G: 0, B: 0},
		HeadingColor:   layout.RGB{R: 139, G: 0, B: 0},
		HeaderRule:     layout.RuleLine,
		Marker:         "•",
		TitleLayout:    layout.TitleCentered,
		FontFamily:     "Times",
		MarginLeft:     20,
		MarginRight:    20,
		MarginTop:      18,
		ParagraphWidth: 170,
		LineHeight:     5.2,
		NameSize:       20,
		ContactSize:    10,
		HeadingSize:    12,
		BodySize:       10.5,
		HeadingGap:     2.5,
		SectionSpacing: 5,
		EntrySpacing:   2.5,
		BulletIndent:   5,
		Separator:      " • ",
	},
	Modern: {
		ID:             Modern,
		Name:           "Modern",
		Accent:         layout.RGB{R: 41, G: 128, B: 185},
		HeadingColor:   layout.RGB{R: 41, G: 128, B: 185},
		HeaderRule:     layout.RuleAbove,
		TitleLayout:    layout.TitleBanner,
		BannerHeight:   34,
		FontFamily:     "Helvetica",
		MarginLeft:     18,
		MarginRight:    18,
		MarginTop:      12,
		ParagraphWidth: 174,
		LineHeight:     5.4,
		NameSize:       19,
		ContactSize:    9.5,
		HeadingSize:    12,
		BodySize:       10,
		HeadingGap:     2.5,
		SectionSpacing: 5.5,
		EntrySpacing:   2.5,
		BulletIndent:   5,
		Separator:      " | ",
	},
	Minimal: {
		ID:             Minimal,
		Name:           "Minimal",
		Accent:         layout.Grey,
		HeaderRule:     layout.RuleUnderline,
		TitleLayout:    layout.TitlePlain,
		FontFamily:     "Helvetica",
		MarginLeft:     22,
		MarginRight:    22,
		MarginTop:      20,
		ParagraphWidth: 166,
		LineHeight:     5.4,
		NameSize:       22,
		ContactSize:    9.5,
		HeadingSize:    11.5,
		BodySize:       10,
		HeadingGap:     2.5,
		SectionSpacing: 6,
		EntrySpacing:   2.5,
		BulletIndent:   5,
		Separator:      ", ",
	},
}

// Resolve returns the style for id, falling back to Minimal for unknown or
// empty identifiers.
func Resolve(id string) layout.Style {
	if style, ok := styles[id]; ok {
		return style
	}
	return styles[DefaultID]
}

// IsKnown reports whether id names a builtin template.
func IsKnown(id string) bool {
	_, ok := styles[id]
	return ok
}

// Canonical section orders per document kind. The orders are shared by all
// builtin templates; a template wanting a different order would carry its
// own table here.
var orders = map[document.Kind][]document.SectionKind{
	document.KindFullCV: {
		document.SectionObjective,
		document.SectionEducation,
		document.SectionExperience,
		document.SectionSkills,
		document.SectionLanguages,
	},
	document.KindHistoryCV: {
		document.SectionCandidature,
		document.SectionProfile,
		document.SectionExperience,
	},
	document.KindCoverLetter: {
		document.SectionCandidature,
		document.SectionProfile,
	},
}

// SectionOrder returns the section kinds the given document kind renders, in
// visual order. The template id is accepted for future per-template orders;
// today all builtins share the canonical order.
func SectionOrder(_ string, kind document.Kind) []document.SectionKind {
	order := orders[kind]
	out := make([]document.SectionKind, len(order))
	copy(out, order)
	return out
}
