package models

// SourceKind records where the analyzed text came from.
type SourceKind string

const (
	SourceText SourceKind = "text"
	SourceOCR  SourceKind = "ocr"
)

// ResultTypeText is the only discriminator value results carry today.
const ResultTypeText = "text"

// Currency and language placeholders used when the model cannot decide.
const (
	CurrencyUnknown = "UNKNOWN"
	LanguageAuto    = "auto"
)

// RawModelResponse is the untrusted JSON object decoded from a model reply.
// It must pass the receipt schema before anything reads typed fields from it.
type RawModelResponse map[string]any

type ReceiptItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// NormalizedReceipt is a schema-validated receipt.
type NormalizedReceipt struct {
	Merchant   *string       `json:"merchant"`
	Total      float64       `json:"total"`
	Currency   string        `json:"currency"`
	Date       *string       `json:"date"`
	Items      []ReceiptItem `json:"items"`
	Language   string        `json:"language"`
	Confidence float64       `json:"confidence"`
}
