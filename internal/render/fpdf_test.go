package render

import (
	"bytes"
	"testing"

	"cvforge/internal/layout"
)

func TestPageWidthIsA4(t *testing.T) {
	p := NewPDF()
	width := p.PageWidth()
	if width < 209 || width > 211 {
		t.Errorf("page width = %v, want ~210mm", width)
	}
}

func TestMeasureTextGrowsWithLength(t *testing.T) {
	p := NewPDF()
	font := layout.TextStyle{Family: "Helvetica", Size: 10}

	short := p.MeasureText("Ingénieur", font)
	long := p.MeasureText("Ingénieur Logiciel Senior", font)
	if short <= 0 {
		t.Fatalf("short width = %v", short)
	}
	if long <= short {
		t.Errorf("longer text not wider: %v <= %v", long, short)
	}
}

func TestExecuteAndBytesProducePDF(t *testing.T) {
	p := NewPDF()
	font := layout.TextStyle{Family: "Times", Style: layout.FontBold, Size: 12}

	instrs := []layout.Instruction{
		layout.FilledRect(0, 0, p.PageWidth(), 30, layout.RGB{R: 41, G: 128, B: 185}),
		layout.TextRun(20, 15, "Jean Dupont — Candidature", font),
		layout.Rule(20, 40, 170, 0.5, layout.Black),
	}
	if err := p.Execute(instrs); err != nil {
		t.Fatalf("execute: %v", err)
	}

	data, err := p.Bytes()
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

func TestExecuteRejectsUnknownOp(t *testing.T) {
	p := NewPDF()
	if err := p.Execute([]layout.Instruction{{Op: "circle"}}); err == nil {
		t.Fatal("expected error for unknown op")
	}
}
