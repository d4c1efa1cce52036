package main

import (
	"context"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tripforge/travel-planner-go/internal/api"
	"github.com/tripforge/travel-planner-go/internal/config"
	"github.com/tripforge/travel-planner-go/internal/generator"
	"github.com/tripforge/travel-planner-go/internal/service"
	"github.com/tripforge/travel-planner-go/internal/storage"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	gen, err := buildGenerator(cfg, logger)
	if err != nil {
		logger.Fatal("failed to build generator", zap.Error(err))
	}

	store := storage.NewExportStore(cfg.ExportDir)
	if err := store.Ensure(); err != nil {
		logger.Fatal("failed to prepare export directory", zap.Error(err))
	}

	planner := service.NewPlannerService(gen, logger)
	exporter := service.NewExportService(store, logger)

	router := api.SetupRouter(cfg, logger, planner, exporter)

	logger.Info("server starting", zap.String("addr", cfg.Port))
	if err := router.Run(cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if level == "debug" {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

// buildGenerator selects the Gemini backend when an API key is
// configured, the deterministic mock otherwise.
func buildGenerator(cfg *config.Config, logger *zap.Logger) (generator.Generator, error) {
	if cfg.GeminiAPIKey == "" {
		logger.Info("no GEMINI_API_KEY set, using mock generator")
		return generator.NewMockGenerator(), nil
	}
	logger.Info("using Gemini generator", zap.String("model", cfg.GeminiModel))
	return generator.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
}
