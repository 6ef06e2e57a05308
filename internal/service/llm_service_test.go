package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"wannatrack-ai/internal/models"
	"wannatrack-ai/internal/service"
	mock_service "wannatrack-ai/internal/service/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const receiptJSON = `{"type":"text","merchant":"Starbucks","total":12.5,"currency":"USD","date":null,"items":[],"language":"en","confidence":0.9}`

func testPolicy() service.RetryPolicy {
	return service.RetryPolicy{MaxAttempts: 3, Delay: time.Millisecond, MaxDelay: 2 * time.Millisecond}
}

func TestLLMService_AnalyzeText(t *testing.T) {
	errProvider := errors.New("connection reset")

	type reply struct {
		content string
		err     error
	}

	tests := []struct {
		name      string
		replies   []reply
		wantCalls int
		wantErr   error
		want      models.RawModelResponse
	}{
		{
			name:      "first attempt succeeds",
			replies:   []reply{{content: receiptJSON}},
			wantCalls: 1,
		},
		{
			name:      "fenced json",
			replies:   []reply{{content: "```json\n" + receiptJSON + "\n```"}},
			wantCalls: 1,
		},
		{
			name:      "json surrounded by prose",
			replies:   []reply{{content: "Here is the receipt: " + receiptJSON + " Done."}},
			wantCalls: 1,
		},
		{
			name:      "recovers after provider errors",
			replies:   []reply{{err: errProvider}, {err: errProvider}, {content: receiptJSON}},
			wantCalls: 3,
		},
		{
			name:      "recovers after malformed content",
			replies:   []reply{{content: "I cannot help with that"}, {content: receiptJSON}},
			wantCalls: 2,
		},
		{
			name:      "provider keeps failing",
			replies:   []reply{{err: errProvider}, {err: errProvider}, {err: errProvider}},
			wantCalls: 3,
			wantErr:   errProvider,
		},
		{
			name:      "content never parses",
			replies:   []reply{{content: "nope"}, {content: "[1,2,3]"}, {content: "null"}},
			wantCalls: 3,
			wantErr:   service.ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			completer := mock_service.NewMockCompleter(ctrl)
			completer.EXPECT().Name().Return("fake").AnyTimes()

			calls := 0
			completer.EXPECT().
				Complete(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req service.CompletionRequest) (string, error) {
					assert.Equal(t, service.ReceiptAnalysisPrompt, req.SystemPrompt)
					assert.Equal(t, "Coffee at Starbucks 12.50$", req.UserText)
					assert.InDelta(t, 0.2, req.Temperature, 1e-9)
					r := tt.replies[calls]
					calls++
					return r.content, r.err
				}).
				Times(tt.wantCalls)

			svc := service.NewLLMService(completer, testPolicy(), zap.NewNop())
			got, err := svc.AnalyzeText(context.Background(), "Coffee at Starbucks 12.50$")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, service.ErrTransientFailure)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Starbucks", got["merchant"])
			assert.Equal(t, 12.5, got["total"])
		})
	}
}

func TestLLMService_AtLeastOneAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	completer := mock_service.NewMockCompleter(ctrl)
	completer.EXPECT().Name().Return("fake").AnyTimes()
	completer.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("boom")).Times(1)

	svc := service.NewLLMService(completer, service.RetryPolicy{MaxAttempts: 0}, zap.NewNop())
	_, err := svc.AnalyzeText(context.Background(), "some receipt text")
	assert.ErrorIs(t, err, service.ErrTransientFailure)
}
