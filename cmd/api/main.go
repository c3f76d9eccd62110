package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"profile-editor/config"
	_ "profile-editor/docs" // Important for Swagger
	v1 "profile-editor/internal/delivery/http/v1"
	"profile-editor/internal/domain"
	"profile-editor/internal/repository/memory"
	"profile-editor/internal/usecase"
	"profile-editor/pkg/logger"
	"profile-editor/pkg/preview"

	"github.com/gin-gonic/gin"
)

// @title           Profile Editor API
// @version         1.0
// @description     Per-session developer profile form with live validation and a read-only view.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey CSRFToken
// @in header
// @name X-CSRF-Token
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting profile editor", "port", cfg.Port)

	// 3. Setup Preview Store
	previews := preview.NewStore(preview.Options{
		MaxDimension: cfg.PreviewMaxDimension,
		Quality:      cfg.PreviewQuality,
	})

	// 4. Setup Session Repository
	validate := usecase.NewValidator()
	sessions := memory.NewSessionRepository(func() domain.ProfileEditor {
		return usecase.NewProfileEditor(previews, validate)
	}, cfg.SessionTTL)

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	sessions.StartJanitor(janitorCtx, cfg.SessionSweepInterval)

	// 5. Setup UseCases
	profileUC := usecase.NewProfileUsecase(sessions)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC: profileUC,
		Previews:  previews,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	stopJanitor()
	sessions.CloseAll()
	logger.Log.Info("Server exiting", "previews_left", previews.Len())
}
