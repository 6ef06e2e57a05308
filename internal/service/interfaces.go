package service

import (
	"context"

	"wannatrack-ai/internal/models"
)

// CompletionRequest is one chat completion: a system instruction and the user's text.
type CompletionRequest struct {
	SystemPrompt string
	UserText     string
	Temperature  float64
}

// Completer is a chat model provider. Implementations do not retry.
//
//go:generate mockgen -destination=mocks/mock_service.go -source=interfaces.go
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Name() string
}

// ReceiptGateway returns the model's raw receipt object for a piece of text.
type ReceiptGateway interface {
	AnalyzeText(ctx context.Context, text string) (models.RawModelResponse, error)
}

// TextExtractor turns a file on disk into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, filePath string) (string, error)
}

// ImageRecognizer runs OCR over an image file.
type ImageRecognizer interface {
	Recognize(ctx context.Context, imagePath string) (string, error)
}

// PDFTextExtractor reads the embedded text layer of a PDF.
type PDFTextExtractor interface {
	ExtractPDFText(ctx context.Context, pdfPath string) (string, error)
}
