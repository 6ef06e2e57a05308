package handlers

import (
	"context"
	"errors"
	"strings"

	"wannatrack-ai/internal/dto"
	"wannatrack-ai/internal/service"
	applogger "wannatrack-ai/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	detailNoInput      = "Either file or text must be provided"
	detailBothInputs   = "Provide only one input source"
	detailUnreadable   = "Failed to read uploaded file"
	detailAnalyzeFault = "Failed to analyze input"
)

// Analyzer is the receipt pipeline the handler drives.
//
//go:generate mockgen -destination=mocks/mock_handlers.go -source=analyze_handler.go Analyzer
type Analyzer interface {
	Analyze(ctx context.Context, text string, file *service.Upload) (*dto.AnalysisResult, error)
}

type AnalyzeHandler struct {
	analyzer Analyzer
	logger   *zap.Logger
}

func NewAnalyzeHandler(analyzer Analyzer, logger *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
		logger:   logger,
	}
}

// Analyze godoc
// @Summary Analyze a receipt
// @Description Extract merchant, total, currency, date, items and language from text or a receipt image. Exactly one of file or text must be sent.
// @Tags analysis
// @Accept multipart/form-data
// @Produce json
// @Param file formData file false "Receipt image or PDF"
// @Param text formData string false "Free-form receipt text"
// @Success 200 {object} dto.AnalysisResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analyze [post]
func (h *AnalyzeHandler) Analyze(c *fiber.Ctx) error {
	text := c.FormValue("text")
	fileHeader, err := c.FormFile("file")
	hasFile := err == nil && fileHeader != nil && (fileHeader.Filename != "" || fileHeader.Size > 0)
	hasText := text != ""

	if !hasFile && !hasText {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: detailNoInput})
	}
	if hasFile && hasText {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: detailBothInputs})
	}

	ctx := c.UserContext()
	log := applogger.FromContext(ctx, h.logger)

	var upload *service.Upload
	if hasFile {
		src, err := fileHeader.Open()
		if err != nil {
			log.Warn("Failed to open uploaded file", zap.String("filename", fileHeader.Filename), zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: detailUnreadable})
		}
		defer src.Close()

		upload = &service.Upload{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get(fiber.HeaderContentType),
			Content:     src,
		}
	}

	result, err := h.analyzer.Analyze(ctx, text, upload)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Detail: invalidInputDetail(err)})
		}
		log.Error("Failed to analyze input", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: detailAnalyzeFault})
	}

	return c.JSON(result)
}

// invalidInputDetail drops the sentinel prefix so callers see only the reason.
func invalidInputDetail(err error) string {
	msg := strings.TrimPrefix(err.Error(), service.ErrInvalidInput.Error()+": ")
	if msg == "" {
		return service.ErrInvalidInput.Error()
	}
	return msg
}
