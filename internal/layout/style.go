package layout

// HeaderRule selects how a template decorates section headings.
type HeaderRule int

const (
	// RuleLine draws a colored rule under the heading text (Harvard).
	RuleLine HeaderRule = iota
	// RuleAbove draws a thin colored rule above the heading text (Modern).
	RuleAbove
	// RuleUnderline draws a thin grey underline under the heading (Minimal).
	RuleUnderline
)

// TitleLayout selects how the identity block is rendered.
type TitleLayout int

const (
	// TitleCentered renders the name centered and upper-cased (Harvard).
	TitleCentered TitleLayout = iota
	// TitleBanner renders a full-width filled band with light text (Modern).
	TitleBanner
	// TitlePlain renders a large left-aligned name (Minimal).
	TitlePlain
)

// Style is the full set of visual parameters distinguishing templates.
// Adding a template means adding a Style value and a section order to the
// registry; the engine and the content model stay untouched.
type Style struct {
	ID   string
	Name string

	Accent RGB
	// HeadingColor is the heading text color; zero value means black.
	HeadingColor RGB
	HeaderRule   HeaderRule
	// Marker is an optional glyph prefixed to each section heading.
	Marker      string
	TitleLayout TitleLayout
	// BannerHeight only applies to TitleBanner.
	BannerHeight float64

	FontFamily string

	MarginLeft  float64
	MarginRight float64
	MarginTop   float64

	ParagraphWidth float64
	LineHeight     float64

	NameSize    float64
	ContactSize float64
	HeadingSize float64
	BodySize    float64

	HeadingGap     float64
	SectionSpacing float64
	EntrySpacing   float64
	BulletIndent   float64

	// Separator joins InlineList items before wrapping.
	Separator string
}

// BodyFont returns the text style for body prose.
func (s Style) BodyFont() TextStyle {
	return TextStyle{Family: s.FontFamily, Size: s.BodySize, Color: Black}
}

// HeadingFont returns the text style for section headings.
func (s Style) HeadingFont() TextStyle {
	color := s.HeadingColor
	return TextStyle{Family: s.FontFamily, Style: FontBold, Size: s.HeadingSize, Color: color}
}
