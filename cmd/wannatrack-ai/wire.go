package main

import (
	"context"
	"fmt"
	"io"

	"wannatrack-ai/internal/service"
	"wannatrack-ai/pkg/config"

	"go.uber.org/zap"
)

// pipeline is the dependency graph shared by serve and analyze.
type pipeline struct {
	analyzer *service.AnalyzerService
	closers  []io.Closer
}

func (p *pipeline) Close() {
	for _, c := range p.closers {
		_ = c.Close()
	}
}

func buildPipeline(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*pipeline, error) {
	p := &pipeline{}

	completer, err := service.NewCompleter(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM provider: %w", err)
	}
	if c, ok := completer.(io.Closer); ok {
		p.closers = append(p.closers, c)
	}

	schema, err := service.NewReceiptSchema()
	if err != nil {
		p.Close()
		return nil, err
	}

	llmService := service.NewLLMService(completer, service.RetryPolicy{
		MaxAttempts: cfg.LLM.MaxAttempts,
		Delay:       cfg.LLM.RetryDelay,
		MaxDelay:    cfg.LLM.RetryMaxDelay,
	}, logger)

	ocrService := service.NewOCRService(
		service.NewTesseractRecognizer(cfg.OCR.Languages, cfg.OCR.TessdataPrefix),
		service.NewFitzPDFExtractor(logger),
		logger,
	)

	p.analyzer = service.NewAnalyzerService(llmService, ocrService, schema, cfg.OCR.ScratchDir, logger)
	return p, nil
}
