package service

import (
	"context"
	"fmt"
	"time"

	"wannatrack-ai/internal/models"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"
)

// RetryPolicy bounds how the gateway re-asks the model.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
	MaxDelay    time.Duration
}

// DefaultRetryPolicy is three attempts with exponential backoff from 250ms.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, Delay: 250 * time.Millisecond, MaxDelay: 2 * time.Second}
}

// LLMService is the receipt gateway: it sends the analysis prompt to a
// Completer and retries until the reply parses as a JSON object.
type LLMService struct {
	completer Completer
	policy    RetryPolicy
	logger    *zap.Logger
}

func NewLLMService(completer Completer, policy RetryPolicy, logger *zap.Logger) *LLMService {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	if policy.MaxDelay < policy.Delay {
		policy.MaxDelay = policy.Delay
	}
	return &LLMService{
		completer: completer,
		policy:    policy,
		logger:    logger,
	}
}

// AnalyzeText asks the model for a receipt object. Provider errors and
// non-JSON replies are retried alike; once attempts run out the last error
// is returned wrapped in ErrTransientFailure. Schema checks happen elsewhere.
func (s *LLMService) AnalyzeText(ctx context.Context, text string) (models.RawModelResponse, error) {
	req := CompletionRequest{
		SystemPrompt: ReceiptAnalysisPrompt,
		UserText:     text,
		Temperature:  analysisTemperature,
	}

	var (
		result   models.RawModelResponse
		attempts int
	)
	start := time.Now()

	err := retry.Do(
		func() error {
			attempts++
			content, err := s.completer.Complete(ctx, req)
			if err != nil {
				return fmt.Errorf("%s completion: %w", s.completer.Name(), err)
			}
			raw, err := parseModelJSON(content)
			if err != nil {
				return err
			}
			result = raw
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(s.policy.MaxAttempts)),
		retry.Delay(s.policy.Delay),
		retry.MaxDelay(s.policy.MaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			s.logger.Warn("LLM attempt failed",
				zap.String("provider", s.completer.Name()),
				zap.Uint("attempt", n+1),
				zap.Int("max_attempts", s.policy.MaxAttempts),
				zap.Error(err),
			)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w after %d attempt(s): %w", ErrTransientFailure, attempts, err)
	}

	s.logger.Info("LLM analysis completed",
		zap.String("provider", s.completer.Name()),
		zap.String("prompt_version", PromptVersion),
		zap.Int("attempts", attempts),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}
