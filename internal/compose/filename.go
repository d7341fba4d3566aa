package compose

import (
	"strings"

	"cvforge/internal/document"
)

// sanitizeToken collapses whitespace runs to single underscores so the token
// is safe inside a filename. Blank input falls back to the given default.
func sanitizeToken(s, fallback string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return fallback
	}
	return strings.Join(fields, "_")
}

// Filename derives the download name for a generated document:
// CV_{position}_{company}.pdf or Lettre_Motivation_{position}_{company}.pdf,
// defaulting blank tokens to "Candidat"/"Entreprise".
func Filename(kind document.Kind, role, company string) string {
	roleToken := sanitizeToken(role, document.DefaultRole)
	companyToken := sanitizeToken(company, document.DefaultCompany)

	prefix := "CV"
	if kind == document.KindCoverLetter {
		prefix = "Lettre_Motivation"
	}
	return prefix + "_" + roleToken + "_" + companyToken + ".pdf"
}
