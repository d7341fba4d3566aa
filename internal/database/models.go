package database

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is an account. Profile holds the structured form and interview data
// the document builders consume (see internal/document.Profile).
type User struct {
	gorm.Model
	Username     string              `gorm:"uniqueIndex;size:64"`
	PasswordHash string              `gorm:"size:255"`
	Profile      datatypes.JSON      `gorm:"type:jsonb"`
	Documents    []GeneratedDocument `gorm:"constraint:OnDelete:CASCADE"`
}

// GeneratedDocument is one history entry for a produced document. Entries
// are immutable after creation; the per-user list is capped and ordered
// most-recent-first by the history store.
type GeneratedDocument struct {
	gorm.Model
	UserID     uint   `gorm:"index"`
	User       User   `gorm:"constraint:OnDelete:CASCADE"`
	Title      string `gorm:"size:255"`
	Kind       string `gorm:"size:32"`
	Role       string `gorm:"size:255"`
	Company    string `gorm:"size:255"`
	TemplateID string `gorm:"size:32"`
	ObjectKey  string `gorm:"size:512"`
}
