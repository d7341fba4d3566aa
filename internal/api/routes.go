package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"cvforge/internal/api/middleware"
	"cvforge/internal/auth"
	"cvforge/internal/config"
	"cvforge/internal/history"
	"cvforge/internal/storage"
)

// RegisterRoutes registers all API routes under /v1.
func RegisterRoutes(
	router *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	asynqClient *asynq.Client,
	authService *auth.AuthService,
	redisClient *redis.Client,
	logger *slog.Logger,
	storageClient *storage.Client,
) {
	historyStore := history.NewStore(db, cfg.Generation.HistoryLimit)

	authHandler := NewAuthHandler(db, authService, redisClient, logger, cfg.Auth.LoginRateLimitPerHour, cfg.Auth.LoginLockThreshold, cfg.Auth.LoginLockTTL, cfg.Auth.CookieDomain)
	profileHandler := NewProfileHandler(db, logger)
	documentHandler := NewDocumentHandler(asynqClient, redisClient, storageClient, historyStore, cfg.Generation.BusyFlagTTL, cfg.Generation.MaxRetry)
	wsHandler := NewWsHandler(redisClient, authService, logger, cfg.API.AllowedWSOrigins)
	authMiddleware := middleware.AuthMiddleware(authService)

	router.Use(middleware.CorrelationIDMiddleware(), middleware.SlogLoggerMiddleware(logger))

	v1 := router.Group("/v1")
	{
		v1.GET("/ws", wsHandler.HandleConnection)

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/logout", authMiddleware, authHandler.Logout)
		}

		profileGroup := v1.Group("/profile")
		profileGroup.Use(authMiddleware)
		{
			profileGroup.GET("", profileHandler.GetProfile)
			profileGroup.PUT("", profileHandler.UpdateProfile)
		}

		documentGroup := v1.Group("/documents")
		documentGroup.Use(authMiddleware)
		{
			documentGroup.POST("/generate", documentHandler.Generate)
			documentGroup.GET("", documentHandler.ListDocuments)
			documentGroup.GET("/:id/preview", documentHandler.PreviewDocument)
			documentGroup.GET("/:id/download", documentHandler.DownloadDocument)
			documentGroup.DELETE("/:id", documentHandler.DeleteDocument)
			documentGroup.DELETE("", documentHandler.ClearDocuments)
		}
	}
}
