// Command export regenerates the full xlsx export offline, reading every
// durable response record and writing a fresh workbook. It never touches
// the incrementally-appended shared workbook.
package main

import (
	"context"
	"flag"
	"log"

	"starter-pack-quiz/internal/config"
	"starter-pack-quiz/internal/excel"
	"starter-pack-quiz/internal/logger"
	"starter-pack-quiz/internal/repository"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	out := flag.String("out", "responses_export.xlsx", "output xlsx path")
	flag.Parse()

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

	repo, err := repository.NewFileResponseRepository(cfg.ResponsesDir())
	if err != nil {
		appLogger.Fatal("Failed to open response store", zap.Error(err))
	}

	responses, err := repo.ReadAll(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to read responses", zap.Error(err))
	}
	if len(responses) == 0 {
		appLogger.Info("No responses to export yet")
		return
	}

	f, err := excel.BuildWorkbook(responses)
	if err != nil {
		appLogger.Fatal("Failed to build workbook", zap.Error(err))
	}
	defer f.Close()

	if err := f.SaveAs(*out); err != nil {
		appLogger.Fatal("Failed to write export", zap.Error(err))
	}
	appLogger.Info("Export written",
		zap.String("file", *out),
		zap.Int("rows", len(responses)),
	)
}
