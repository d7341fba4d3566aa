package api

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cvforge/internal/database"
	"cvforge/internal/history"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&database.User{}, &database.GeneratedDocument{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newDocumentTestContext(t *testing.T, userID uint, docID uint) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/documents", nil)
	c.Set("userID", userID)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(docID)}}
	return c, w
}

func seedRecordWithoutObject(t *testing.T, db *gorm.DB) *database.GeneratedDocument {
	t.Helper()
	rec := &database.GeneratedDocument{
		UserID:     1,
		Title:      "CV_Analyste_BNP",
		Kind:       "cv",
		Role:       "Analyste",
		Company:    "BNP",
		TemplateID: "harvard",
		Model:      gorm.Model{CreatedAt: time.Date(2026, time.February, 2, 9, 0, 0, 0, time.UTC)},
	}
	if err := db.Create(rec).Error; err != nil {
		t.Fatalf("seed record: %v", err)
	}
	return rec
}

func TestPreviewDocumentRebuildsMissingObject(t *testing.T) {
	db := newTestDB(t)
	rec := seedRecordWithoutObject(t, db)
	handler := NewDocumentHandler(nil, nil, nil, history.NewStore(db, 10), time.Minute, 3)

	c, w := newDocumentTestContext(t, 1, rec.ID)
	handler.PreviewDocument(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "inline") || !strings.Contains(cd, "CV_Analyste_BNP.pdf") {
		t.Errorf("content disposition = %q", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF")
	}
}

func TestDownloadDocumentRebuildsMissingObject(t *testing.T) {
	db := newTestDB(t)
	rec := seedRecordWithoutObject(t, db)
	handler := NewDocumentHandler(nil, nil, nil, history.NewStore(db, 10), time.Minute, 3)

	c, w := newDocumentTestContext(t, 1, rec.ID)
	handler.DownloadDocument(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment") || !strings.Contains(cd, "CV_Analyste_BNP.pdf") {
		t.Errorf("content disposition = %q", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF")
	}
}

func TestPreviewDocumentScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	rec := seedRecordWithoutObject(t, db)
	handler := NewDocumentHandler(nil, nil, nil, history.NewStore(db, 10), time.Minute, 3)

	c, w := newDocumentTestContext(t, 2, rec.ID)
	handler.PreviewDocument(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
