package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"wannatrack-ai/internal/dto"
	"wannatrack-ai/internal/models"
	"wannatrack-ai/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	minTextLength      = 5
	fallbackConfidence = 0.1
	lowConfidenceCap   = 0.3
)

// Upload is a receipt file received from the caller.
type Upload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// AnalyzerService turns text or a receipt file into an AnalysisResult.
type AnalyzerService struct {
	gateway    ReceiptGateway
	ocr        TextExtractor
	schema     *ReceiptSchema
	scratchDir string
	logger     *zap.Logger
}

func NewAnalyzerService(gateway ReceiptGateway, ocr TextExtractor, schema *ReceiptSchema, scratchDir string, logger *zap.Logger) *AnalyzerService {
	if scratchDir == "" {
		scratchDir = os.TempDir()
	}
	return &AnalyzerService{
		gateway:    gateway,
		ocr:        ocr,
		schema:     schema,
		scratchDir: scratchDir,
		logger:     logger,
	}
}

// Analyze runs the pipeline for one request. When file is set it takes
// precedence over text. Invalid input and schema violations are returned as
// errors wrapping ErrInvalidInput; gateway failures produce Fallback().
func (s *AnalyzerService) Analyze(ctx context.Context, text string, file *Upload) (*dto.AnalysisResult, error) {
	input, source, err := s.resolveInput(ctx, text, file)
	if err != nil {
		return nil, err
	}
	if input == "" {
		return nil, invalidInput("no input provided")
	}
	return s.analyzeText(ctx, input, source)
}

func (s *AnalyzerService) resolveInput(ctx context.Context, text string, file *Upload) (string, models.SourceKind, error) {
	if file == nil {
		return text, models.SourceText, nil
	}

	log := logger.FromContext(ctx, s.logger)

	path, err := s.persistUpload(file)
	if err != nil {
		return "", models.SourceOCR, fmt.Errorf("failed to store upload: %w", err)
	}
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Warn("Failed to remove scratch file", zap.String("path", path), zap.Error(err))
		}
	}()

	extracted, err := s.ocr.ExtractText(ctx, path)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return "", models.SourceOCR, err
		}
		// an unreadable image is treated like an empty one
		log.Warn("OCR failed, continuing with empty text",
			zap.String("filename", file.Filename),
			zap.Error(err),
		)
		return "", models.SourceOCR, nil
	}
	return extracted, models.SourceOCR, nil
}

// persistUpload copies the upload into the scratch directory under a random
// name that keeps only the original extension.
func (s *AnalyzerService) persistUpload(file *Upload) (string, error) {
	if file.Content == nil {
		return "", fmt.Errorf("upload %q has no content", file.Filename)
	}

	if err := os.MkdirAll(s.scratchDir, 0o700); err != nil {
		return "", err
	}
	path := filepath.Join(s.scratchDir, "receipt-"+uuid.NewString()+uploadExtension(file))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, file.Content); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to copy file data: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

func uploadExtension(file *Upload) string {
	if ext := strings.ToLower(filepath.Ext(file.Filename)); ext != "" {
		return ext
	}
	switch file.ContentType {
	case "image/png":
		return ".png"
	case "application/pdf":
		return ".pdf"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/tiff":
		return ".tiff"
	}
	return ""
}

func (s *AnalyzerService) analyzeText(ctx context.Context, text string, source models.SourceKind) (*dto.AnalysisResult, error) {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < minTextLength {
		return nil, invalidInput("text too short")
	}

	log := logger.FromContext(ctx, s.logger).With(zap.String("source", string(source)))

	raw, err := s.gateway.AnalyzeText(ctx, text)
	if err != nil {
		log.Error("LLM analysis failed, returning fallback result", zap.Error(err))
		return Fallback(), nil
	}

	receipt, err := s.schema.Normalize(raw)
	if err != nil {
		log.Warn("Model response rejected by schema", zap.Error(err))
		return nil, err
	}

	applyConfidenceRules(&receipt)

	log.Info("Receipt analyzed",
		zap.String("currency", receipt.Currency),
		zap.String("language", receipt.Language),
		zap.Int("items", len(receipt.Items)),
		zap.Float64("confidence", receipt.Confidence),
	)
	return toResult(receipt), nil
}

// applyConfidenceRules caps confidence for receipts without a positive total
// or a known currency. It never raises confidence.
func applyConfidenceRules(r *models.NormalizedReceipt) {
	if r.Total <= 0 {
		r.Confidence = min(r.Confidence, lowConfidenceCap)
	}
	if r.Currency == "" || r.Currency == models.CurrencyUnknown {
		r.Confidence = min(r.Confidence, lowConfidenceCap)
	}
}

// Fallback is the low-confidence result returned when the model is unavailable.
func Fallback() *dto.AnalysisResult {
	return &dto.AnalysisResult{
		Type:       models.ResultTypeText,
		Merchant:   nil,
		Total:      0,
		Currency:   models.CurrencyUnknown,
		Date:       nil,
		Items:      []dto.ReceiptItem{},
		Confidence: fallbackConfidence,
		Language:   models.LanguageAuto,
	}
}

func toResult(r models.NormalizedReceipt) *dto.AnalysisResult {
	items := make([]dto.ReceiptItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, dto.ReceiptItem{Name: it.Name, Price: it.Price})
	}
	return &dto.AnalysisResult{
		Type:       models.ResultTypeText,
		Merchant:   r.Merchant,
		Total:      r.Total,
		Currency:   r.Currency,
		Date:       r.Date,
		Items:      items,
		Confidence: r.Confidence,
		Language:   r.Language,
	}
}
