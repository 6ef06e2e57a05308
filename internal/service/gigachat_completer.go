package service

import (
	"context"
	"fmt"

	"wannatrack-ai/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// GigaChatCompleter sends completions to Sber GigaChat.
type GigaChatCompleter struct {
	client    *gigago.Client
	modelName string
}

func NewGigaChatCompleter(ctx context.Context, cfg *config.GigaChatConfig, logger *zap.Logger) (*GigaChatCompleter, error) {
	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	logger.Info("Using GigaChat model", zap.String("model", cfg.Model))
	return &GigaChatCompleter{client: client, modelName: cfg.Model}, nil
}

func (c *GigaChatCompleter) Name() string {
	return config.ProviderGigaChat
}

// Complete builds a model per call so concurrent requests never share
// SystemInstruction or Temperature.
func (c *GigaChatCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	model := c.client.GenerativeModel(c.modelName)
	model.SystemInstruction = req.SystemPrompt
	setFloat(&model.Temperature, req.Temperature)

	resp, err := model.Generate(ctx, []gigago.Message{
		{Role: gigago.RoleUser, Content: req.UserText},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from GigaChat")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *GigaChatCompleter) Close() error {
	if c.client != nil {
		c.client.Close()
	}
	return nil
}

func setFloat[T ~float32 | ~float64](dst *T, v float64) {
	*dst = T(v)
}
