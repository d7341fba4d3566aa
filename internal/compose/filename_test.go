package compose

import (
	"testing"

	"cvforge/internal/document"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name    string
		kind    document.Kind
		role    string
		company string
		want    string
	}{
		{"simple", document.KindFullCV, "Ingénieur", "Google", "CV_Ingénieur_Google.pdf"},
		{"multi word tokens", document.KindFullCV, "Chef de Produit Senior", "Acme Corp", "CV_Chef_de_Produit_Senior_Acme_Corp.pdf"},
		{"whitespace runs collapse", document.KindFullCV, "Chef   de  Projet", " Acme  Corp ", "CV_Chef_de_Projet_Acme_Corp.pdf"},
		{"blank role and company", document.KindFullCV, "", "   ", "CV_Candidat_Entreprise.pdf"},
		{"cover letter prefix", document.KindCoverLetter, "Analyste", "BNP Paribas", "Lettre_Motivation_Analyste_BNP_Paribas.pdf"},
		{"history cv uses cv prefix", document.KindHistoryCV, "Analyste", "BNP", "CV_Analyste_BNP.pdf"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Filename(tc.kind, tc.role, tc.company); got != tc.want {
				t.Errorf("Filename(%q, %q, %q) = %q, want %q", tc.kind, tc.role, tc.company, got, tc.want)
			}
		})
	}
}
