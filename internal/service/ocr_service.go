package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
	".gif":  true,
}

// OCRService routes a receipt file to the PDF text layer reader or to the
// image recognizer depending on its extension.
type OCRService struct {
	images ImageRecognizer
	pdfs   PDFTextExtractor
	logger *zap.Logger
}

func NewOCRService(images ImageRecognizer, pdfs PDFTextExtractor, logger *zap.Logger) *OCRService {
	return &OCRService{
		images: images,
		pdfs:   pdfs,
		logger: logger,
	}
}

// IsSupportedFormat reports whether ExtractText accepts files with ext.
func IsSupportedFormat(ext string) bool {
	ext = strings.ToLower(ext)
	return ext == ".pdf" || imageExtensions[ext]
}

// ExtractText returns the trimmed text of an image or PDF. Unsupported
// extensions yield ErrInvalidInput; an empty result is an error.
func (s *OCRService) ExtractText(ctx context.Context, filePath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	if !IsSupportedFormat(ext) {
		return "", invalidInput(fmt.Sprintf("unsupported file format %q", ext))
	}

	var (
		text   string
		err    error
		method string
	)
	if ext == ".pdf" {
		method = "go-fitz"
		text, err = s.pdfs.ExtractPDFText(ctx, filePath)
	} else {
		method = "tesseract"
		text, err = s.images.Recognize(ctx, filePath)
	}
	if err != nil {
		return "", fmt.Errorf("%s extraction failed: %w", method, err)
	}

	text = strings.TrimSpace(sanitizeUTF8(text))

	s.logger.Info("OCR extraction completed",
		zap.String("file", filepath.Base(filePath)),
		zap.String("method", method),
		zap.Int("text_length", len(text)),
	)

	if text == "" {
		return "", fmt.Errorf("no text extracted by %s", method)
	}
	return text, nil
}
