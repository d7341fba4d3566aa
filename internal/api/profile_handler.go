package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"cvforge/internal/api/middleware"
	"cvforge/internal/database"
	"cvforge/internal/document"
)

// ProfileHandler exposes the stored applicant profile that document
// generation reads from.
type ProfileHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewProfileHandler builds the profile handler.
func NewProfileHandler(db *gorm.DB, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{db: db, logger: logger}
}

// GetProfile returns the user's profile, or an empty one when nothing has
// been saved yet.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()
	logger := middleware.LoggerFromContext(c)

	var user database.User
	if err := h.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			Unauthorized(c)
			return
		}
		logger.Error("query user failed", slog.Any("error", err))
		Internal(c, "failed to load profile")
		return
	}

	var profile document.Profile
	if len(user.Profile) > 0 {
		if err := json.Unmarshal(user.Profile, &profile); err != nil {
			logger.Warn("decode stored profile failed", slog.Any("error", err))
			profile = document.Profile{}
		}
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile replaces the user's profile with the request body.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	var profile document.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		BadRequest(c, err.Error())
		return
	}

	data, err := json.Marshal(profile)
	if err != nil {
		Internal(c, "failed to encode profile")
		return
	}

	ctx := c.Request.Context()
	logger := middleware.LoggerFromContext(c)

	if err := h.db.WithContext(ctx).
		Model(&database.User{}).
		Where("id = ?", userID).
		Update("profile", datatypes.JSON(data)).Error; err != nil {
		logger.Error("update profile failed", slog.Any("error", err))
		Internal(c, "failed to save profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}
