package layout

import (
	"strings"

	"cvforge/internal/document"
)

// Measurer abstracts the rendering backend's text metrics. The engine never
// draws anything itself; it only needs widths to wrap and center text.
type Measurer interface {
	MeasureText(text string, font TextStyle) float64
}

// Engine turns a content model plus a template style into an ordered list of
// positioned draw instructions. It holds no state between calls: every Layout
// invocation threads its own cursor, so concurrent layouts do not interfere.
type Engine struct {
	measurer  Measurer
	pageWidth float64
}

// NewEngine builds an engine over the given measurement backend. pageWidth
// is the physical page width in renderer units.
func NewEngine(measurer Measurer, pageWidth float64) *Engine {
	return &Engine{measurer: measurer, pageWidth: pageWidth}
}

// lineHeightFor converts a font size in points to a line advance in mm.
const ptToMM = 0.3528

func lineHeightFor(size float64) float64 {
	return size * ptToMM * 1.35
}

// Layout walks the sections in template order, maintaining a monotonic
// vertical cursor, and returns the draw instructions plus the final cursor
// value (the content height). Sections the model has no data for render as a
// heading over a placeholder paragraph, never silently dropped. An empty
// order still yields the title block; page overflow is not handled here, the
// returned height lets callers decide.
func (e *Engine) Layout(model document.ContentModel, style Style, order []document.SectionKind) ([]Instruction, float64, error) {
	cursor := NewCursor(style.MarginTop)

	instrs, err := e.titleBlock(model, style, &cursor)
	if err != nil {
		return nil, 0, err
	}

	for _, kind := range order {
		section, ok := model.Section(kind)
		if !ok || emptyBody(section.Body) {
			section = document.PlaceholderSection(kind)
		}

		instrs = append(instrs, e.heading(section.Heading, style, &cursor)...)

		body, err := e.body(section.Body, style, &cursor)
		if err != nil {
			return nil, 0, err
		}
		instrs = append(instrs, body...)

		cursor.Advance(style.SectionSpacing)
	}

	return instrs, cursor.Y(), nil
}

func (e *Engine) measureBody(style Style) MeasureFunc {
	font := style.BodyFont()
	return func(text string) float64 {
		return e.measurer.MeasureText(text, font)
	}
}

// centeredX computes the X offset centering text on the page.
func (e *Engine) centeredX(text string, font TextStyle) (float64, error) {
	width := e.measurer.MeasureText(text, font)
	if width <= 0 && strings.TrimSpace(text) != "" {
		return 0, ErrEmptyMeasurement
	}
	return (e.pageWidth - width) / 2, nil
}

func (e *Engine) titleBlock(model document.ContentModel, style Style, cursor *Cursor) ([]Instruction, error) {
	switch style.TitleLayout {
	case TitleBanner:
		return e.bannerTitle(model, style, cursor)
	case TitleCentered:
		return e.centeredTitle(model, style, cursor)
	default:
		return e.plainTitle(model, style, cursor)
	}
}

func contactLine(id document.Identity) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{id.Address, id.Email, id.Phone} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " • ")
}

// centeredTitle is the Harvard treatment: upper-cased centered name, centered
// contact and role lines, closed by a full-width accent rule.
func (e *Engine) centeredTitle(model document.ContentModel, style Style, cursor *Cursor) ([]Instruction, error) {
	var instrs []Instruction

	nameFont := TextStyle{Family: style.FontFamily, Style: FontBold, Size: style.NameSize, Color: Black}
	name := strings.ToUpper(model.Identity.FullName)
	cursor.Advance(lineHeightFor(style.NameSize))
	x, err := e.centeredX(name, nameFont)
	if err != nil {
		return nil, err
	}
	instrs = append(instrs, TextRun(x, cursor.Y(), name, nameFont))

	if contact := contactLine(model.Identity); contact != "" {
		contactFont := TextStyle{Family: style.FontFamily, Size: style.ContactSize, Color: Black}
		cursor.Advance(lineHeightFor(style.ContactSize))
		x, err := e.centeredX(contact, contactFont)
		if err != nil {
			return nil, err
		}
		instrs = append(instrs, TextRun(x, cursor.Y(), contact, contactFont))
	}

	roleFont := TextStyle{Family: style.FontFamily, Style: FontItalic, Size: style.ContactSize, Color: style.Accent}
	role := model.TargetRole + " — " + model.TargetCompany
	cursor.Advance(lineHeightFor(style.ContactSize))
	x, err = e.centeredX(role, roleFont)
	if err != nil {
		return nil, err
	}
	instrs = append(instrs, TextRun(x, cursor.Y(), role, roleFont))

	cursor.Advance(2)
	instrs = append(instrs, Rule(style.MarginLeft, cursor.Y(), style.ParagraphWidth, 0.6, style.Accent))
	cursor.Advance(style.SectionSpacing)

	return instrs, nil
}

// bannerTitle is the Modern treatment: a full-width filled band with light
// name and role text, contact line beneath.
func (e *Engine) bannerTitle(model document.ContentModel, style Style, cursor *Cursor) ([]Instruction, error) {
	var instrs []Instruction

	instrs = append(instrs, FilledRect(0, 0, e.pageWidth, style.BannerHeight, style.Accent))

	nameFont := TextStyle{Family: style.FontFamily, Style: FontBold, Size: style.NameSize, Color: White}
	nameBaseline := style.BannerHeight/2 - 1
	instrs = append(instrs, TextRun(style.MarginLeft, nameBaseline, model.Identity.FullName, nameFont))

	roleFont := TextStyle{Family: style.FontFamily, Size: style.ContactSize, Color: White}
	role := model.TargetRole + " — " + model.TargetCompany
	instrs = append(instrs, TextRun(style.MarginLeft, nameBaseline+lineHeightFor(style.ContactSize)+1, role, roleFont))

	cursor.AdvanceTo(style.BannerHeight)
	if contact := contactLine(model.Identity); contact != "" {
		contactFont := TextStyle{Family: style.FontFamily, Size: style.ContactSize, Color: Grey}
		cursor.Advance(lineHeightFor(style.ContactSize) + 1)
		instrs = append(instrs, TextRun(style.MarginLeft, cursor.Y(), contact, contactFont))
	}
	cursor.Advance(style.SectionSpacing)

	return instrs, nil
}

// plainTitle is the Minimal treatment: a large left-aligned name, grey
// contact line, plain role line. No fills, no rules.
func (e *Engine) plainTitle(model document.ContentModel, style Style, cursor *Cursor) ([]Instruction, error) {
	var instrs []Instruction

	nameFont := TextStyle{Family: style.FontFamily, Style: FontBold, Size: style.NameSize, Color: Black}
	cursor.Advance(lineHeightFor(style.NameSize))
	instrs = append(instrs, TextRun(style.MarginLeft, cursor.Y(), model.Identity.FullName, nameFont))

	if contact := contactLine(model.Identity); contact != "" {
		contactFont := TextStyle{Family: style.FontFamily, Size: style.ContactSize, Color: Grey}
		cursor.Advance(lineHeightFor(style.ContactSize))
		instrs = append(instrs, TextRun(style.MarginLeft, cursor.Y(), contact, contactFont))
	}

	roleFont := TextStyle{Family: style.FontFamily, Size: style.ContactSize, Color: Black}
	role := model.TargetRole + " — " + model.TargetCompany
	cursor.Advance(lineHeightFor(style.ContactSize))
	instrs = append(instrs, TextRun(style.MarginLeft, cursor.Y(), role, roleFont))

	cursor.Advance(style.SectionSpacing)

	return instrs, nil
}

// heading emits the section heading with the template's header treatment.
func (e *Engine) heading(text string, style Style, cursor *Cursor) []Instruction {
	var instrs []Instruction
	font := style.HeadingFont()
	label := text
	if style.Marker != "" {
		label = style.Marker + " " + text
	}

	switch style.HeaderRule {
	case RuleAbove:
		cursor.Advance(1.5)
		instrs = append(instrs, Rule(style.MarginLeft, cursor.Y(), style.ParagraphWidth, 0.4, style.Accent))
		cursor.Advance(lineHeightFor(style.HeadingSize))
		instrs = append(instrs, TextRun(style.MarginLeft, cursor.Y(), label, font))
	case RuleUnderline:
		cursor.Advance(lineHeightFor(style.HeadingSize))
		instrs = append(instrs, TextRun(style.MarginLeft, cursor.Y(), label, font))
		cursor.Advance(1.2)
		instrs = append(instrs, Rule(style.MarginLeft, cursor.Y(), style.ParagraphWidth, 0.2, Grey))
	default: // RuleLine
		cursor.Advance(lineHeightFor(style.HeadingSize))
		instrs = append(instrs, TextRun(style.MarginLeft, cursor.Y(), label, font))
		cursor.Advance(1.2)
		instrs = append(instrs, Rule(style.MarginLeft, cursor.Y(), style.ParagraphWidth, 0.5, style.Accent))
	}

	cursor.Advance(style.HeadingGap)
	return instrs
}

func (e *Engine) body(body document.Body, style Style, cursor *Cursor) ([]Instruction, error) {
	switch body.Kind {
	case document.BodyEntries:
		return e.entries(body.Entries, style, cursor)
	case document.BodyInlineList:
		return e.paragraph(strings.Join(body.Items, style.Separator), style, cursor)
	default:
		return e.paragraph(body.Text, style, cursor)
	}
}

func (e *Engine) paragraph(text string, style Style, cursor *Cursor) ([]Instruction, error) {
	lines, err := Wrap(text, style.ParagraphWidth, e.measureBody(style))
	if err != nil {
		return nil, err
	}

	font := style.BodyFont()
	instrs := make([]Instruction, 0, len(lines))
	for _, line := range lines {
		cursor.Advance(style.LineHeight)
		instrs = append(instrs, TextRun(style.MarginLeft, cursor.Y(), line, font))
	}
	return instrs, nil
}

func (e *Engine) entries(entries []document.Entry, style Style, cursor *Cursor) ([]Instruction, error) {
	var instrs []Instruction

	primaryFont := TextStyle{Family: style.FontFamily, Style: FontBold, Size: style.BodySize, Color: Black}
	secondaryFont := TextStyle{Family: style.FontFamily, Style: FontItalic, Size: style.BodySize, Color: Grey}
	bodyFont := style.BodyFont()

	for _, entry := range entries {
		cursor.Advance(style.LineHeight)
		instrs = append(instrs, TextRun(style.MarginLeft, cursor.Y(), entry.Primary, primaryFont))

		if entry.Secondary != "" {
			cursor.Advance(style.LineHeight)
			instrs = append(instrs, TextRun(style.MarginLeft, cursor.Y(), entry.Secondary, secondaryFont))
		}

		bulletWidth := style.ParagraphWidth - style.BulletIndent
		for _, bullet := range entry.Bullets {
			lines, err := Wrap(bullet, bulletWidth, e.measureBody(style))
			if err != nil {
				return nil, err
			}
			for i, line := range lines {
				cursor.Advance(style.LineHeight)
				if i == 0 {
					instrs = append(instrs, TextRun(style.MarginLeft, cursor.Y(), "•", bodyFont))
				}
				instrs = append(instrs, TextRun(style.MarginLeft+style.BulletIndent, cursor.Y(), line, bodyFont))
			}
		}

		cursor.Advance(style.EntrySpacing)
	}

	return instrs, nil
}

func emptyBody(body document.Body) bool {
	switch body.Kind {
	case document.BodyEntries:
		return len(body.Entries) == 0
	case document.BodyInlineList:
		return len(body.Items) == 0
	default:
		return strings.TrimSpace(body.Text) == ""
	}
}
