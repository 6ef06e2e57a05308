package main

import (
	"context"
	"fmt"

	"wannatrack-ai/internal/api"
	"wannatrack-ai/internal/api/handlers"
	"wannatrack-ai/pkg/config"
	"wannatrack-ai/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the receipt analyzer HTTP server.

Endpoints:
  POST /analyze    multipart form with either "text" or "file"
  GET  /health     liveness probe
  GET  /swagger/*  API documentation

Examples:
  wannatrack-ai serve
  wannatrack-ai serve --port 3000`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides SERVER_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if servePort != "" {
		cfg.Server.Port = servePort
	}

	appLogger, err := logger.New(cfg.Logger.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync(appLogger)

	appLogger.Info("Starting Wannatrack AI service",
		zap.String("llm_provider", cfg.LLM.Provider),
		zap.Strings("ocr_languages", cfg.OCR.Languages),
	)

	p, err := buildPipeline(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to build analyzer", zap.Error(err))
		return err
	}
	defer p.Close()

	app := api.SetupRouter(
		handlers.NewAnalyzeHandler(p.analyzer, appLogger),
		handlers.NewHealthHandler(cfg.LLM.Provider),
		&cfg.Server,
		appLogger,
	)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			appLogger.Error("Server failed", zap.Error(err))
		}
		return err
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server")
	if err := app.ShutdownWithContext(context.Background()); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
		return err
	}
	return nil
}
