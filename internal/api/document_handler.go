package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"cvforge/internal/api/middleware"
	"cvforge/internal/compose"
	"cvforge/internal/database"
	"cvforge/internal/document"
	"cvforge/internal/history"
	"cvforge/internal/storage"
	"cvforge/internal/tasks"
	"cvforge/internal/template"
)

const presignedLinkTTL = 5 * time.Minute

// DocumentHandler drives the generation pipeline from the HTTP side:
// enqueueing tasks, listing the capped history and presigning object links.
type DocumentHandler struct {
	asynqClient *asynq.Client
	redis       redis.UniversalClient
	storage     *storage.Client
	history     *history.Store
	composer    *compose.Composer
	busyFlagTTL time.Duration
	maxRetry    int
}

// NewDocumentHandler builds the document handler.
func NewDocumentHandler(asynqClient *asynq.Client, redisClient redis.UniversalClient, storageClient *storage.Client, historyStore *history.Store, busyFlagTTL time.Duration, maxRetry int) *DocumentHandler {
	return &DocumentHandler{
		asynqClient: asynqClient,
		redis:       redisClient,
		storage:     storageClient,
		history:     historyStore,
		composer:    compose.New(),
		busyFlagTTL: busyFlagTTL,
		maxRetry:    maxRetry,
	}
}

var errInvalidDocumentID = errors.New("invalid document id")

type generateRequest struct {
	Kind       string `json:"kind" binding:"required"`
	TemplateID string `json:"template_id"`
}

type documentListItem struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Kind       string    `json:"kind"`
	Role       string    `json:"role"`
	Company    string    `json:"company"`
	TemplateID string    `json:"template_id"`
	URL        string    `json:"url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Generate enqueues a generation task and returns 202. A second request for
// the same kind while one is in flight gets 409; the CV and cover-letter
// flags are independent, so both can run at once.
func (h *DocumentHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	kind := document.Kind(req.Kind)
	if kind != document.KindFullCV && kind != document.KindCoverLetter {
		BadRequest(c, "kind must be cv or cover_letter")
		return
	}

	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()

	templateID := req.TemplateID
	if !template.IsKnown(templateID) {
		templateID = template.DefaultID
	}

	acquired, err := tasks.AcquireBusy(ctx, h.redis, userID, string(kind), h.busyFlagTTL)
	if err != nil {
		Internal(c, "failed to check generation state")
		return
	}
	if !acquired {
		Conflict(c, "generation already in progress")
		return
	}

	correlationID := middleware.GetCorrelationID(c)
	task, err := tasks.NewDocumentGenerateTask(userID, string(kind), templateID, correlationID)
	if err != nil {
		_ = tasks.ReleaseBusy(ctx, h.redis, userID, string(kind))
		Internal(c, "failed to create task")
		return
	}

	info, err := h.asynqClient.Enqueue(task, asynq.MaxRetry(h.maxRetry))
	if err != nil {
		_ = tasks.ReleaseBusy(ctx, h.redis, userID, string(kind))
		Internal(c, "failed to enqueue document generation")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message":        "document generation request accepted",
		"task_id":        info.ID,
		"correlation_id": correlationID,
	})
}

// ListDocuments returns the user's generation history, most recent first.
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	records, err := h.history.List(c.Request.Context(), userID)
	if err != nil {
		Internal(c, "failed to list documents")
		return
	}

	items := make([]documentListItem, 0, len(records))
	for _, rec := range records {
		item := documentListItem{
			ID:         rec.ID,
			Title:      rec.Title,
			Kind:       rec.Kind,
			Role:       rec.Role,
			Company:    rec.Company,
			TemplateID: rec.TemplateID,
			CreatedAt:  rec.CreatedAt,
		}
		if rec.ObjectKey != "" {
			if signedURL, err := h.storage.GeneratePresignedURL(c.Request.Context(), rec.ObjectKey, presignedLinkTTL); err == nil {
				item.URL = signedURL
			} else {
				middleware.LoggerFromContext(c).Warn("presign list url failed", "object_key", rec.ObjectKey, "error", err)
			}
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, items)
}

// PreviewDocument returns a short-lived inline link for an already generated
// PDF. When the stored object is gone, a sparse fallback document is rebuilt
// from the history record and served inline.
func (h *DocumentHandler) PreviewDocument(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	rec, err := h.getDocumentForUser(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.replyLookupError(c, err)
		return
	}

	if rec.ObjectKey == "" {
		h.serveRecomposed(c, rec, "inline")
		return
	}

	signedURL, err := h.storage.GeneratePresignedURLWithParams(c.Request.Context(), rec.ObjectKey, presignedLinkTTL, map[string]string{
		"response-content-disposition": fmt.Sprintf("inline; filename=%q", rec.Title+".pdf"),
		"response-content-type":        "application/pdf",
	})
	if err != nil {
		Internal(c, "failed to generate preview link")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": signedURL})
}

// DownloadDocument returns a short-lived attachment link. The filename is
// the stored title, derived from the target role and company at generation
// time. Records whose stored object is gone get a rebuilt sparse document as
// an attachment instead.
func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	rec, err := h.getDocumentForUser(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.replyLookupError(c, err)
		return
	}

	if rec.ObjectKey == "" {
		h.serveRecomposed(c, rec, "attachment")
		return
	}

	signedURL, err := h.storage.GeneratePresignedURLWithParams(c.Request.Context(), rec.ObjectKey, presignedLinkTTL, map[string]string{
		"response-content-disposition": fmt.Sprintf("attachment; filename=%q", rec.Title+".pdf"),
	})
	if err != nil {
		Internal(c, "failed to generate download link")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": signedURL, "filename": rec.Title + ".pdf"})
}

// DeleteDocument removes one history entry and its stored PDF.
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	id, err := parseDocumentID(c.Param("id"))
	if err != nil {
		BadRequest(c, "invalid document id")
		return
	}

	ctx := c.Request.Context()
	objectKey, err := h.history.Remove(ctx, userID, id)
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			NotFound(c, "document not found")
			return
		}
		Internal(c, "failed to delete document")
		return
	}

	if err := h.storage.DeleteObject(ctx, objectKey); err != nil {
		middleware.LoggerFromContext(c).Warn("delete stored object failed", "object_key", objectKey, "error", err)
	}

	c.Status(http.StatusNoContent)
}

// ClearDocuments wipes the user's whole history and the stored PDFs.
func (h *DocumentHandler) ClearDocuments(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()
	keys, err := h.history.Clear(ctx, userID)
	if err != nil {
		Internal(c, "failed to clear documents")
		return
	}

	for _, key := range keys {
		if err := h.storage.DeleteObject(ctx, key); err != nil {
			middleware.LoggerFromContext(c).Warn("delete stored object failed", "object_key", key, "error", err)
		}
	}

	c.Status(http.StatusNoContent)
}

// serveRecomposed rebuilds a sparse document from the history record and
// writes the PDF bytes directly, bypassing object storage.
func (h *DocumentHandler) serveRecomposed(c *gin.Context, rec *database.GeneratedDocument, disposition string) {
	result, err := h.composer.ComposeFromRecord(document.Record{
		Title:      rec.Title,
		Role:       rec.Role,
		Company:    rec.Company,
		TemplateID: rec.TemplateID,
		CreatedAt:  rec.CreatedAt,
	})
	if err != nil {
		middleware.LoggerFromContext(c).Error("recompose from record failed", "document_id", rec.ID, "error", err)
		Internal(c, "failed to rebuild document")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, rec.Title+".pdf"))
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}

func (h *DocumentHandler) getDocumentForUser(ctx context.Context, idParam string, userID uint) (*database.GeneratedDocument, error) {
	id, err := parseDocumentID(idParam)
	if err != nil {
		return nil, errInvalidDocumentID
	}
	return h.history.Get(ctx, userID, id)
}

func (h *DocumentHandler) replyLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errInvalidDocumentID):
		BadRequest(c, "invalid document id")
	case errors.Is(err, history.ErrNotFound):
		NotFound(c, "document not found")
	default:
		Internal(c, "failed to query document")
	}
}

func parseDocumentID(idParam string) (uint, error) {
	id, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func userIDFromContext(c *gin.Context) (uint, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	case uint64:
		return uint(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	default:
		return 0, false
	}
}
