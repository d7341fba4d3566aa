// Package render executes layout instructions against a PDF backend. The
// engine's contract ends at the ordered instruction list; everything fpdf
// specific lives here.
package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"cvforge/internal/layout"
)

// PDF wraps an fpdf document as both the measurement backend and the
// instruction executor. One PDF value per document; it is not safe for
// concurrent use.
type PDF struct {
	doc *fpdf.Fpdf
	tr  func(string) string
}

// NewPDF opens a single portrait A4 page in millimetres. Auto page breaks
// are disabled: the layout engine owns vertical placement and the current
// contract never breaks pages.
func NewPDF() *PDF {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	// Core fonts are cp1252; the translator maps the French accented text.
	tr := doc.UnicodeTranslatorFromDescriptor("")
	return &PDF{doc: doc, tr: tr}
}

// PageWidth returns the page width in mm.
func (p *PDF) PageWidth() float64 {
	w, _ := p.doc.GetPageSize()
	return w
}

// MeasureText implements layout.Measurer using fpdf font metrics.
func (p *PDF) MeasureText(text string, font layout.TextStyle) float64 {
	p.doc.SetFont(font.Family, string(font.Style), font.Size)
	return p.doc.GetStringWidth(p.tr(text))
}

// Execute draws the instruction list onto the page.
func (p *PDF) Execute(instrs []layout.Instruction) error {
	for _, in := range instrs {
		switch in.Op {
		case layout.OpText:
			p.doc.SetFont(in.Font.Family, string(in.Font.Style), in.Font.Size)
			p.doc.SetTextColor(int(in.Font.Color.R), int(in.Font.Color.G), int(in.Font.Color.B))
			p.doc.Text(in.X, in.Y, p.tr(in.Text))
		case layout.OpRule:
			p.doc.SetDrawColor(int(in.Color.R), int(in.Color.G), int(in.Color.B))
			p.doc.SetLineWidth(in.H)
			p.doc.Line(in.X, in.Y, in.X+in.W, in.Y)
		case layout.OpRect:
			p.doc.SetFillColor(int(in.Color.R), int(in.Color.G), int(in.Color.B))
			p.doc.Rect(in.X, in.Y, in.W, in.H, "F")
		default:
			return fmt.Errorf("render: unknown instruction op %q", in.Op)
		}
	}
	if p.doc.Err() {
		return fmt.Errorf("render: %w", p.doc.Error())
	}
	return nil
}

// Bytes finalizes the document and returns the PDF byte stream.
func (p *PDF) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("output pdf: %w", err)
	}
	return buf.Bytes(), nil
}
