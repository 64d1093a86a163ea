// @title         Resume Editor API
// @version       1.0.0
// @description   Бэкенд редактора резюме: сохранение и загрузка резюме, шаблонное улучшение секций, черновик из PDF/DOCX.
// @BasePath      /
// @schemes       http
// @host          localhost:8000
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/artem13815/resume-editor/docs"
	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	// internal imports
	"github.com/artem13815/resume-editor/api/http"
	"github.com/artem13815/resume-editor/api/http/handlers"
	"github.com/artem13815/resume-editor/api/http/presenter"
	"github.com/artem13815/resume-editor/pkg/config"
	"github.com/artem13815/resume-editor/pkg/enhance"
	"github.com/artem13815/resume-editor/pkg/health"
	"github.com/artem13815/resume-editor/pkg/health/checkers"
	"github.com/artem13815/resume-editor/pkg/logging"
	"github.com/artem13815/resume-editor/pkg/repository/filestore"
	"github.com/artem13815/resume-editor/pkg/resume"
	"github.com/artem13815/resume-editor/pkg/storage/jsondir"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	slog.SetDefault(logger)

	app := fiber.New(fiber.Config{
		ErrorHandler: presenter.ErrorHandler,
		// multipart overhead on top of the file itself
		BodyLimit: int(cfg.MaxUploadBytes) + 1<<20,
	})
	http.Use(app, http.Options{CORSOrigin: cfg.CORSOrigin, Logger: logger})

	// Storage directory is created at startup.
	dir := jsondir.Open(cfg.StorageDir)
	if err := dir.Ensure(); err != nil {
		logger.Error("prepare storage directory", "dir", cfg.StorageDir, "error", err)
		os.Exit(1)
	}

	// Wire dependencies
	resumeRepo := filestore.NewResumeRepository(dir, filestore.WithLogger(logger))
	resumeUC := resume.NewService(resumeRepo)
	resumesHandler := handlers.NewResumesHandler(resumeUC, logger, cfg.MaxUploadBytes)

	enhanceHandler := handlers.NewEnhanceHandler(enhance.NewService())

	// Health service: compose checkers
	readiness := health.NewService(checkers.NewStorageChecker(dir.Path()))
	healthHandler := handlers.NewHealthHandler(readiness)

	// Register routes
	http.Register(app, healthHandler, enhanceHandler, resumesHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Stop accepting requests on SIGINT/SIGTERM and let in-flight saves finish.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("shutdown", "error", err)
		}
	}()

	// Start server
	logger.Info("HTTP server listening", "port", cfg.Port, "storage_dir", dir.Path(), "cors_origin", cfg.CORSOrigin)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
