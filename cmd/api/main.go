package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"starter-pack-quiz/internal/config"
	"starter-pack-quiz/internal/excel"
	"starter-pack-quiz/internal/handler"
	"starter-pack-quiz/internal/logger"
	"starter-pack-quiz/internal/middleware"
	"starter-pack-quiz/internal/repository"
	"starter-pack-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Initialize storage
	repo, err := repository.NewFileResponseRepository(cfg.ResponsesDir())
	if err != nil {
		appLogger.Fatal("Failed to initialize response store", zap.Error(err))
	}

	var backups *excel.BackupManager
	if cfg.Backup.Enabled {
		backups = excel.NewBackupManager(
			filepath.Join(filepath.Dir(cfg.ResponsesDir()), "backups"),
			cfg.Backup.MaxFiles,
		)
	}
	workbook := excel.NewStore(cfg.ExcelPath(), backups)

	// Initialize services and handlers
	submissionService := service.NewSubmissionService(repo, workbook, cfg)
	submissionHandler := handler.NewSubmissionHandler(submissionService, cfg.Version)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,X-API-Key", MaxAge: 300}))
	app.Use(recover.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.Limits.GeneralMax,
		Expiration: cfg.Limits.Window,
	}))

	// API group with its stricter submission-oriented limit
	apiGroup := app.Group("/api", limiter.New(limiter.Config{
		Max:        cfg.Limits.APIMax,
		Expiration: cfg.Limits.Window,
	}))

	apiGroup.Post("/submit", submissionHandler.Submit)
	apiGroup.Get("/health", submissionHandler.Health)
	apiGroup.Get("/stats", middleware.RequireAPIKey(cfg.AdminAPIKey), submissionHandler.Stats)
	apiGroup.Get("/export", middleware.RequireAPIKey(cfg.AdminAPIKey), submissionHandler.Export)

	// Start server
	go func() {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("env", cfg.Logger.Env),
			zap.String("data_dir", cfg.ResponsesDir()),
		)
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
