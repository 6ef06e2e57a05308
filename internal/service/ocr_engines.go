package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
	"go.uber.org/zap"
)

// TesseractRecognizer runs tesseract through gosseract. A client is created
// per call because gosseract clients are not safe for concurrent use.
type TesseractRecognizer struct {
	languages      []string
	tessdataPrefix string
}

func NewTesseractRecognizer(languages []string, tessdataPrefix string) *TesseractRecognizer {
	return &TesseractRecognizer{languages: languages, tessdataPrefix: tessdataPrefix}
}

func (r *TesseractRecognizer) Recognize(ctx context.Context, imagePath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if r.tessdataPrefix != "" {
		if err := client.SetTessdataPrefix(r.tessdataPrefix); err != nil {
			return "", fmt.Errorf("set tessdata prefix: %w", err)
		}
	}
	if err := client.SetLanguage(r.languages...); err != nil {
		return "", fmt.Errorf("set OCR languages %s: %w", strings.Join(r.languages, "+"), err)
	}
	if err := client.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("load image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return text, nil
}

// FitzPDFExtractor reads the text layer of every page with go-fitz.
type FitzPDFExtractor struct {
	logger *zap.Logger
}

func NewFitzPDFExtractor(logger *zap.Logger) *FitzPDFExtractor {
	return &FitzPDFExtractor{logger: logger}
}

func (e *FitzPDFExtractor) ExtractPDFText(ctx context.Context, pdfPath string) (string, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var textBuilder strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		pageText, err := doc.Text(i)
		if err != nil {
			e.logger.Warn("Failed to extract text from page",
				zap.Int("page", i+1),
				zap.String("file", pdfPath),
				zap.Error(err),
			)
			continue
		}
		if pageText != "" {
			textBuilder.WriteString(pageText)
			textBuilder.WriteString("\n")
		}
	}

	text := strings.TrimSpace(textBuilder.String())
	if text == "" {
		return "", fmt.Errorf("no text found in PDF")
	}

	e.logger.Debug("PDF text extracted",
		zap.String("file", pdfPath),
		zap.Int("pages", doc.NumPage()),
		zap.Int("text_length", len(text)),
	)
	return text, nil
}
