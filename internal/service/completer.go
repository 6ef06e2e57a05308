package service

import (
	"context"
	"fmt"

	"wannatrack-ai/pkg/config"

	"go.uber.org/zap"
)

// NewCompleter builds the provider selected by cfg.LLM.Provider.
// Callers should Close the result when it implements io.Closer.
func NewCompleter(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Completer, error) {
	switch cfg.LLM.Provider {
	case config.ProviderOpenAI:
		logger.Info("Using OpenAI model", zap.String("model", cfg.OpenAI.Model))
		return NewOpenAICompleter(&cfg.OpenAI, cfg.LLM.Timeout), nil
	case config.ProviderGigaChat:
		completer, err := NewGigaChatCompleter(ctx, &cfg.GigaChat, logger)
		if err != nil {
			return nil, err
		}
		return completer, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", cfg.LLM.Provider)
	}
}
