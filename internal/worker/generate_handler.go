package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"cvforge/internal/compose"
	"cvforge/internal/database"
	"cvforge/internal/document"
	"cvforge/internal/errcode"
	"cvforge/internal/history"
	"cvforge/internal/layout"
	"cvforge/internal/storage"
	"cvforge/internal/tasks"
)

// DocumentTaskHandler consumes document generation tasks: it builds the
// content model from the user's profile, runs the composer, uploads the PDF,
// records the history entry, releases the busy flag and notifies the user.
type DocumentTaskHandler struct {
	db          *gorm.DB
	storage     *storage.Client
	redisClient *redis.Client
	logger      *slog.Logger
	composer    *compose.Composer
	history     *history.Store
}

// NewDocumentTaskHandler builds the task handler.
func NewDocumentTaskHandler(
	db *gorm.DB,
	storageClient *storage.Client,
	redisClient *redis.Client,
	logger *slog.Logger,
	historyStore *history.Store,
) *DocumentTaskHandler {
	return &DocumentTaskHandler{
		db:          db,
		storage:     storageClient,
		redisClient: redisClient,
		logger:      logger,
		composer:    compose.New(),
		history:     historyStore,
	}
}

// ProcessTask implements asynq.Handler.
func (h *DocumentTaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) (retErr error) {
	log := h.logger

	var payload tasks.DocumentGeneratePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error("unmarshal task payload failed", slog.Any("error", err))
		return err
	}

	log = log.With(
		slog.String("correlation_id", payload.CorrelationID),
		slog.Uint64("user_id", uint64(payload.UserID)),
		slog.String("kind", payload.Kind),
	)
	log.Info("starting document generation task")

	kind := document.Kind(payload.Kind)
	if kind != document.KindFullCV && kind != document.KindCoverLetter {
		log.Warn("unknown document kind, skipping task")
		_ = tasks.ReleaseBusy(ctx, h.redisClient, payload.UserID, payload.Kind)
		return nil
	}

	defer func() {
		if retErr == nil {
			return
		}
		if !isFinalAsynqAttempt(ctx) {
			return
		}

		// Last attempt: free the flag so the user can retry, then surface
		// the failure.
		if err := tasks.ReleaseBusy(ctx, h.redisClient, payload.UserID, payload.Kind); err != nil {
			log.Error("release busy flag failed", slog.Any("error", err))
		}

		code := errcode.SystemError
		if errors.Is(retErr, layout.ErrEmptyMeasurement) {
			code = errcode.RendererUnavailable
		}
		notify := DocumentGenerationNotifyMessage{
			Status:        "error",
			Kind:          payload.Kind,
			CorrelationID: payload.CorrelationID,
			ErrorCode:     code,
			ErrorMessage:  strings.TrimSpace(retErr.Error()),
		}
		if err := h.publishNotify(ctx, payload.UserID, notify); err != nil {
			log.Error("publish error notification failed", slog.Any("error", err))
		}
	}()

	var user database.User
	if err := h.db.WithContext(ctx).First(&user, payload.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("user not found, skipping task")
			_ = tasks.ReleaseBusy(ctx, h.redisClient, payload.UserID, payload.Kind)
			return nil
		}
		log.Error("query user failed", slog.Any("error", err))
		return err
	}

	var profile document.Profile
	degraded := false
	if len(user.Profile) > 0 {
		if err := json.Unmarshal(user.Profile, &profile); err != nil {
			// A corrupt profile still produces a placeholder document.
			log.Warn("decode profile failed, generating from empty profile", slog.Any("error", err))
			profile = document.Profile{}
			degraded = true
		}
	}

	result, err := h.composer.ComposeFromProfile(profile, kind, payload.TemplateID)
	if err != nil {
		log.Error("compose document failed", slog.Any("error", err))
		return err
	}

	objectName := fmt.Sprintf("generated-documents/%d/%s.pdf", payload.UserID, uuid.NewString())
	if _, err := h.storage.UploadFile(ctx, objectName, bytes.NewReader(result.PDF), int64(len(result.PDF)), "application/pdf"); err != nil {
		log.Error("upload pdf failed", slog.Any("error", err))
		return err
	}

	rec := database.GeneratedDocument{
		UserID:     payload.UserID,
		Title:      strings.TrimSuffix(result.Filename, ".pdf"),
		Kind:       string(kind),
		Role:       profile.Target.Position,
		Company:    profile.Target.Company,
		TemplateID: result.TemplateID,
		ObjectKey:  objectName,
	}
	evicted, err := h.history.Add(ctx, &rec)
	if err != nil {
		log.Error("record history entry failed", slog.Any("error", err))
		return err
	}
	for _, key := range evicted {
		if err := h.storage.DeleteObject(ctx, key); err != nil {
			log.Warn("delete evicted object failed", slog.String("object_key", key), slog.Any("error", err))
		}
	}

	if err := tasks.ReleaseBusy(ctx, h.redisClient, payload.UserID, payload.Kind); err != nil {
		log.Error("release busy flag failed", slog.Any("error", err))
	}

	notify := DocumentGenerationNotifyMessage{
		Status:        "completed",
		Kind:          payload.Kind,
		DocumentID:    rec.ID,
		Title:         rec.Title,
		CorrelationID: payload.CorrelationID,
		ErrorCode:     errcode.OK,
	}
	if degraded {
		notify.ErrorCode = errcode.PartialContent
		notify.ErrorMessage = "profile could not be fully decoded; placeholders were used"
	}
	if err := h.publishNotify(ctx, payload.UserID, notify); err != nil {
		log.Error("publish completion notification failed", slog.Any("error", err))
		return err
	}

	log.Info("document generation task completed",
		slog.Uint64("document_id", uint64(rec.ID)),
		slog.Float64("content_height", result.ContentHeight),
	)
	return nil
}

func (h *DocumentTaskHandler) publishNotify(ctx context.Context, userID uint, notify DocumentGenerationNotifyMessage) error {
	data, err := json.Marshal(notify)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}
	channel := fmt.Sprintf("user_notify:%d", userID)
	if err := h.redisClient.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("publish redis notification to %q: %w", channel, err)
	}
	return nil
}

func isFinalAsynqAttempt(ctx context.Context) bool {
	retryCount, ok1 := asynq.GetRetryCount(ctx)
	maxRetry, ok2 := asynq.GetMaxRetry(ctx)
	if !ok1 || !ok2 {
		return false
	}
	return retryCount >= maxRetry
}
