package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/nikita-tita/idea-intake/config"
	"github.com/nikita-tita/idea-intake/internal/bootstrap"
	"github.com/nikita-tita/idea-intake/internal/llm"
	"github.com/nikita-tita/idea-intake/internal/logging"
	"github.com/nikita-tita/idea-intake/internal/sheets"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	logger := logging.New(cfg.App.LogLevel, cfg.App.LogFormat)
	defer logger.Sync()

	// The sheets client is bound once here and read-only afterwards.
	// Missing credentials are not fatal: the server still comes up and
	// serves health checks, and idea submissions fail with a 500.
	var appender sheets.RangeAppender
	svc, err := sheets.NewService(context.Background(), cfg.Google.CredentialsPath, cfg.Google.SheetID)
	if err != nil {
		logger.Warn("sheets client not initialized, idea submissions will fail", zap.Error(err))
	} else {
		appender = svc
	}
	writer := sheets.NewWriter(appender, logger)

	llmClient := llm.New(
		cfg.LLM.BaseURL,
		cfg.LLM.APIKey,
		cfg.LLM.Model,
		time.Duration(cfg.LLM.TimeoutSeconds)*time.Second,
		logger,
	)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		LLM:       llmClient,
		Writer:    writer,
		Logger:    logger,
		StaticDir: "web/static",
	})

	addr := ":" + cfg.Server.Port
	logger.Info("listening",
		zap.String("addr", addr),
		zap.String("env", cfg.App.Environment),
		zap.String("version", cfg.App.Version))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
