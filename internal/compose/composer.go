// Package compose is the entry point of document generation: it resolves the
// content source, selects a template, runs the layout engine, and executes
// the resulting instructions against the PDF renderer.
package compose

import (
	"fmt"

	"cvforge/internal/document"
	"cvforge/internal/layout"
	"cvforge/internal/render"
	"cvforge/internal/template"
)

// Result is one finished document.
type Result struct {
	PDF           []byte
	Filename      string
	TemplateID    string
	ContentHeight float64
}

// Composer builds documents. It is stateless; each call creates its own
// renderer and cursor, so concurrent compositions are independent.
type Composer struct{}

// New returns a Composer.
func New() *Composer {
	return &Composer{}
}

// Instructions runs only the layout pass and returns the ordered draw
// instructions plus the content height. Useful for callers that want to
// inspect or compare layouts without producing bytes.
func (c *Composer) Instructions(model document.ContentModel, kind document.Kind, templateID string) ([]layout.Instruction, float64, error) {
	pdf := render.NewPDF()
	style := template.Resolve(templateID)
	order := template.SectionOrder(templateID, kind)

	engine := layout.NewEngine(pdf, pdf.PageWidth())
	return engine.Layout(model, style, order)
}

// Compose lays out the model with the chosen template and renders it to PDF
// bytes. The filename is derived from the model's target role and company.
func (c *Composer) Compose(model document.ContentModel, kind document.Kind, templateID string) (*Result, error) {
	pdf := render.NewPDF()
	style := template.Resolve(templateID)
	order := template.SectionOrder(templateID, kind)

	engine := layout.NewEngine(pdf, pdf.PageWidth())
	instrs, height, err := engine.Layout(model, style, order)
	if err != nil {
		return nil, fmt.Errorf("layout %s document: %w", kind, err)
	}

	if err := pdf.Execute(instrs); err != nil {
		return nil, fmt.Errorf("render %s document: %w", kind, err)
	}

	data, err := pdf.Bytes()
	if err != nil {
		return nil, fmt.Errorf("finalize %s document: %w", kind, err)
	}

	return &Result{
		PDF:           data,
		Filename:      Filename(kind, model.TargetRole, model.TargetCompany),
		TemplateID:    style.ID,
		ContentHeight: height,
	}, nil
}

// ComposeFromProfile builds the content model for the given kind from the
// full profile and composes it. KindHistoryCV is not a profile-sourced
// document; use ComposeFromRecord for stored entries.
func (c *Composer) ComposeFromProfile(profile document.Profile, kind document.Kind, templateID string) (*Result, error) {
	var model document.ContentModel
	switch kind {
	case document.KindCoverLetter:
		model = document.BuildCoverLetter(profile)
	case document.KindFullCV:
		model = document.BuildCV(profile)
	default:
		return nil, fmt.Errorf("compose: kind %q cannot be built from a profile", kind)
	}
	return c.Compose(model, kind, templateID)
}

// ComposeFromRecord rebuilds a document from a sparse history record. The
// record's template falls back to Minimal when unset or unknown.
func (c *Composer) ComposeFromRecord(rec document.Record) (*Result, error) {
	model := document.BuildFromRecord(rec)
	return c.Compose(model, document.KindHistoryCV, rec.TemplateID)
}
