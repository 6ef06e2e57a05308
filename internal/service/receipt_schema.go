package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"wannatrack-ai/internal/models"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const receiptSchemaURL = "receipt.schema.json"

// receiptSchemaJSON mirrors the object requested by ReceiptAnalysisPrompt.
// Unknown top-level keys such as "type" are tolerated.
const receiptSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["total", "currency", "items", "language", "confidence"],
  "properties": {
    "merchant": {"type": ["string", "null"]},
    "total": {"type": "number"},
    "currency": {"type": "string", "pattern": "^([A-Z]{3}|UNKNOWN)$"},
    "date": {"type": ["string", "null"]},
    "items": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "price"],
        "properties": {
          "name": {"type": "string"},
          "price": {"type": "number"}
        }
      }
    },
    "language": {"type": "string", "pattern": "^([a-z]{2}|auto)$"},
    "confidence": {"type": "number", "minimum": 0, "maximum": 1}
  }
}`

// ReceiptSchema turns raw model output into a NormalizedReceipt.
// It is immutable after construction and safe for concurrent use.
type ReceiptSchema struct {
	schema *jsonschema.Schema
}

func NewReceiptSchema() (*ReceiptSchema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(receiptSchemaURL, strings.NewReader(receiptSchemaJSON)); err != nil {
		return nil, fmt.Errorf("add receipt schema: %w", err)
	}
	schema, err := compiler.Compile(receiptSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile receipt schema: %w", err)
	}
	return &ReceiptSchema{schema: schema}, nil
}

// Normalize lowercases the language, validates the result and decodes it.
// Every failure wraps ErrSchemaViolation.
func (s *ReceiptSchema) Normalize(raw models.RawModelResponse) (models.NormalizedReceipt, error) {
	var receipt models.NormalizedReceipt

	doc, err := canonicalize(raw)
	if err != nil {
		return receipt, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}

	if obj, ok := doc.(map[string]any); ok {
		if lang, ok := obj["language"].(string); ok {
			obj["language"] = strings.ToLower(lang)
		}
	}

	if err := s.schema.Validate(doc); err != nil {
		return receipt, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return receipt, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	if err := json.Unmarshal(b, &receipt); err != nil {
		return receipt, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	if receipt.Items == nil {
		receipt.Items = []models.ReceiptItem{}
	}
	return receipt, nil
}

// canonicalize round-trips the map through JSON so the validator only sees
// float64, string, bool, nil, []any and map[string]any values.
func canonicalize(raw models.RawModelResponse) (any, error) {
	if raw == nil {
		return nil, fmt.Errorf("empty model response")
	}
	b, err := json.Marshal(map[string]any(raw))
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
